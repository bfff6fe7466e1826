package paymentrequest

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/domain/currency"
)

const TypePaymentRequest = "PAYMENT_REQUEST"

var ErrInvalidArgument = errors.New("invalid argument")

type Seller struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TransactionDetails struct {
	Amount        Amount    `json:"amount"`
	Currency      string    `json:"currency"`
	TransactionID uuid.UUID `json:"transaction_id"`
	Timestamp     int64     `json:"timestamp"`
}

// Record is the payload carried by the QR code. Field order is the wire order.
type Record struct {
	Type               string             `json:"type"`
	SellerInfo         Seller             `json:"seller_info"`
	TransactionDetails TransactionDetails `json:"transaction_details"`
}

func ValidateAmount(amount Amount) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be a positive number, got %s", ErrInvalidArgument, amount)
	}
	return nil
}

func New(seller Seller, amount Amount, cur currency.Currency, id uuid.UUID, at time.Time) (*Record, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	return &Record{
		Type:       TypePaymentRequest,
		SellerInfo: seller,
		TransactionDetails: TransactionDetails{
			Amount:        amount,
			Currency:      cur.Code,
			TransactionID: id,
			Timestamp:     at.Unix(),
		},
	}, nil
}
