package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/domain/currency"
	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/domain/paymentrequest"
	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/domain/qrcode"
)

const envPrefix = "QRPAY"

const (
	amountFlag        = "amount"
	amountDefault     = "50000"
	outputFlag        = "output"
	outputDefault     = "payment_qr.png"
	sellerIDFlag      = "seller-id"
	sellerIDDefault   = "SELLER_12345"
	sellerNameFlag    = "seller-name"
	sellerNameDefault = "My Awesome Store"
	currencyFlag      = "currency"
	currencyDefault   = "IRR"
	strictFlag        = "strict-minor-units"

	qrVersionFlag = "qr-version"
	qrLevelFlag   = "qr-level"
	qrBoxSizeFlag = "qr-box-size"
	qrBorderFlag  = "qr-border"
	qrFitFlag     = "qr-fit"

	logLevelFlag        = "log"
	logLevelFlagDefault = slog.LevelInfo
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Amount           string
	OutputPath       string
	Seller           paymentrequest.Seller
	Currency         currency.Currency
	StrictMinorUnits bool
	QR               qrcode.Options
	LogLevel         slog.Level
}

// Load reads command-line args, then QRPAY_* environment variables, then defaults.
func Load(args []string) (*Config, error) {
	v := viper.New()

	if err := initArgs(v, args); err != nil {
		return nil, err
	}
	initEnv(v)

	cur, err := currency.Lookup(v.GetString(currencyFlag))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	level, err := qrcode.ParseLevel(v.GetString(qrLevelFlag))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	defaults := qrcode.DefaultOptions()
	qr := qrcode.Options{
		Version:    v.GetInt(qrVersionFlag),
		Level:      level,
		BoxSize:    v.GetInt(qrBoxSizeFlag),
		Border:     v.GetInt(qrBorderFlag),
		Fit:        v.GetBool(qrFitFlag),
		Foreground: defaults.Foreground,
		Background: defaults.Background,
	}
	if err := qr.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg := &Config{
		Amount:     v.GetString(amountFlag),
		OutputPath: v.GetString(outputFlag),
		Seller: paymentrequest.Seller{
			ID:   strings.TrimSpace(v.GetString(sellerIDFlag)),
			Name: strings.TrimSpace(v.GetString(sellerNameFlag)),
		},
		Currency:         cur,
		StrictMinorUnits: v.GetBool(strictFlag),
		QR:               qr,
		LogLevel:         slog.Level(v.GetInt(logLevelFlag)),
	}

	if cfg.Seller.ID == "" || cfg.Seller.Name == "" {
		return nil, fmt.Errorf("%w: seller id and name are required", ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return nil, fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	}
	return cfg, nil
}

func initArgs(v *viper.Viper, args []string) error {
	defaults := qrcode.DefaultOptions()
	cmdLine := pflag.NewFlagSet("seller", pflag.ContinueOnError)

	cmdLine.String(amountFlag, amountDefault, "payment amount to request")
	cmdLine.String(outputFlag, outputDefault, "path of the generated QR image")
	cmdLine.String(sellerIDFlag, sellerIDDefault, "seller identifier")
	cmdLine.String(sellerNameFlag, sellerNameDefault, "seller display name")
	cmdLine.String(currencyFlag, currencyDefault, "ISO 4217 currency code")
	cmdLine.Bool(strictFlag, false, "reject amounts with more decimals than the currency allows")

	cmdLine.Int(qrVersionFlag, defaults.Version, "initial QR symbol version (1-40)")
	cmdLine.String(qrLevelFlag, defaults.Level.String(), "error correction level: L, M, Q or H")
	cmdLine.Int(qrBoxSizeFlag, defaults.BoxSize, "pixels per QR module")
	cmdLine.Int(qrBorderFlag, defaults.Border, "quiet zone width in modules")
	cmdLine.Bool(qrFitFlag, defaults.Fit, "grow the symbol version when the payload does not fit")

	cmdLine.Int(logLevelFlag, int(logLevelFlagDefault), "log level (default \"INFO\")")

	if err := cmdLine.Parse(args); err != nil {
		return err
	}
	return v.BindPFlags(cmdLine)
}

func initEnv(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		_ = v.BindEnv(key, getEnvVar(key))
	}
}

func getEnvVar(input string) string {
	res := []string{envPrefix}
	for _, s := range strings.Split(input, "-") {
		res = append(res, strings.ToUpper(s))
	}
	return strings.Join(res, "_")
}
