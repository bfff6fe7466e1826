package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/delivery/cli"
	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/infrastructure/config"
	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/infrastructure/filestore"
	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/infrastructure/qrgenerator"
	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/usecase/generaterequest"
	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/usecase/renderqr"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := initLogger(cfg.LogLevel)

	qrGen, err := qrgenerator.NewGenerator(cfg.QR)
	if err != nil {
		logger.Error("qr generator init failed", "error", err)
		os.Exit(1)
	}

	requestUC := generaterequest.NewUseCase(
		cfg.Seller,
		cfg.Currency,
		generaterequest.WithStrictMinorUnits(cfg.StrictMinorUnits),
	)
	renderUC := renderqr.NewUseCase(qrGen, filestore.NewOSStore(), renderqr.WithLogger(logger))

	handler := cli.NewHandler(requestUC, renderUC, os.Stdout)
	if _, err := handler.Run(cfg.Amount, cfg.OutputPath); err != nil {
		logger.Error("payment request failed", "error", err)
		os.Exit(1)
	}
}

func initLogger(level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
	return logger
}
