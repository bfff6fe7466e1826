package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/domain/currency"
	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/domain/paymentrequest"
	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/domain/qrcode"
	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "50000", cfg.Amount)
	assert.Equal(t, "payment_qr.png", cfg.OutputPath)
	assert.Equal(t, paymentrequest.Seller{ID: "SELLER_12345", Name: "My Awesome Store"}, cfg.Seller)
	assert.Equal(t, currency.Currency{Code: "IRR", MinorUnits: 0}, cfg.Currency)
	assert.False(t, cfg.StrictMinorUnits)
	assert.Equal(t, qrcode.DefaultOptions(), cfg.QR)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := config.Load([]string{
		"--amount", "12.5",
		"--output", "out/qr.png",
		"--seller-name", "Corner Shop",
		"--currency", "usd",
		"--strict-minor-units",
		"--qr-level", "h",
		"--qr-version", "3",
		"--qr-box-size", "4",
		"--qr-border", "0",
		"--qr-fit=false",
		"--log=-4",
	})
	require.NoError(t, err)

	assert.Equal(t, "12.5", cfg.Amount)
	assert.Equal(t, "out/qr.png", cfg.OutputPath)
	assert.Equal(t, "Corner Shop", cfg.Seller.Name)
	assert.Equal(t, "USD", cfg.Currency.Code)
	assert.True(t, cfg.StrictMinorUnits)
	assert.Equal(t, qrcode.LevelH, cfg.QR.Level)
	assert.Equal(t, 3, cfg.QR.Version)
	assert.Equal(t, 4, cfg.QR.BoxSize)
	assert.Equal(t, 0, cfg.QR.Border)
	assert.False(t, cfg.QR.Fit)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("QRPAY_SELLER_ID", "SELLER_999")
	t.Setenv("QRPAY_AMOUNT", "700")
	t.Setenv("QRPAY_QR_BOX_SIZE", "6")

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "SELLER_999", cfg.Seller.ID)
	assert.Equal(t, "700", cfg.Amount)
	assert.Equal(t, 6, cfg.QR.BoxSize)

	cfg, err = config.Load([]string{"--amount", "800"})
	require.NoError(t, err)
	assert.Equal(t, "800", cfg.Amount)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][]string{
		"unknown currency": {"--currency", "XYZ"},
		"unknown level":    {"--qr-level", "Z"},
		"version":          {"--qr-version", "0"},
		"box size":         {"--qr-box-size", "0"},
		"border":           {"--qr-border=-1"},
		"seller name":      {"--seller-name", " "},
		"output":           {"--output", ""},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(args)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Load([]string{"--no-such-flag"})
	require.Error(t, err)
}
