package generaterequest

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/domain/currency"
	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/domain/paymentrequest"
)

type Option func(*UseCase)

func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) {
		uc.now = now
	}
}

func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(uc *UseCase) {
		uc.newID = newID
	}
}

// WithStrictMinorUnits rejects amounts with more fractional digits than the
// currency has minor units.
func WithStrictMinorUnits(strict bool) Option {
	return func(uc *UseCase) {
		uc.strictMinorUnits = strict
	}
}

type UseCase struct {
	seller           paymentrequest.Seller
	currency         currency.Currency
	strictMinorUnits bool
	now              func() time.Time
	newID            func() uuid.UUID
}

func NewUseCase(seller paymentrequest.Seller, cur currency.Currency, opts ...Option) *UseCase {
	uc := &UseCase{
		seller:   seller,
		currency: cur,
		now:      time.Now,
		newID:    uuid.New,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *UseCase) Seller() paymentrequest.Seller {
	return uc.seller
}

func (uc *UseCase) Currency() currency.Currency {
	return uc.currency
}

// Execute validates the amount before drawing a transaction id or reading the clock.
func (uc *UseCase) Execute(amount paymentrequest.Amount) (*paymentrequest.Record, error) {
	if err := paymentrequest.ValidateAmount(amount); err != nil {
		return nil, err
	}
	if uc.strictMinorUnits && !uc.currency.Allows(amount.Decimal()) {
		return nil, fmt.Errorf("%w: %s allows %d fractional digits, got %s",
			paymentrequest.ErrInvalidArgument, uc.currency.Code, uc.currency.MinorUnits, amount)
	}

	return paymentrequest.New(uc.seller, amount, uc.currency, uc.newID(), uc.now())
}
