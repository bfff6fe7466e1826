package cli

import (
	"fmt"
	"io"

	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/domain/paymentrequest"
	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/usecase/generaterequest"
	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/usecase/renderqr"
)

type Handler struct {
	requestUC *generaterequest.UseCase
	renderUC  *renderqr.UseCase
	out       io.Writer
}

func NewHandler(requestUC *generaterequest.UseCase, renderUC *renderqr.UseCase, out io.Writer) *Handler {
	return &Handler{
		requestUC: requestUC,
		renderUC:  renderUC,
		out:       out,
	}
}

// Run builds a payment request for amountText and renders it to outputPath,
// reporting each step on the handler's writer.
func (h *Handler) Run(amountText, outputPath string) (string, error) {
	amount, err := paymentrequest.ParseAmount(amountText)
	if err != nil {
		return "", err
	}

	seller := h.requestUC.Seller()
	fmt.Fprintf(h.out, "Seller '%s' is requesting a payment of %s %s.\n", seller.Name, amount, h.requestUC.Currency())

	rec, err := h.requestUC.Execute(amount)
	if err != nil {
		return "", err
	}

	body, err := renderqr.MarshalRecord(rec)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(h.out, "\nGenerated Transaction Data:\n%s\n", body)

	path, err := h.renderUC.Execute(renderqr.Request{Record: rec, Path: outputPath})
	if err != nil {
		fmt.Fprintf(h.out, "Error generating QR code: %v\n", err)
		return "", err
	}

	fmt.Fprintf(h.out, "QR code successfully generated and saved to %s\n", path)
	return path, nil
}
