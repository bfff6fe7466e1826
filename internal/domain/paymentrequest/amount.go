package paymentrequest

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is an exact decimal that serializes as a bare JSON number.
type Amount struct {
	value decimal.Decimal
}

// maxAmountDigits bounds the positional width of an amount. It covers the whole
// float64 range written out in full and still fits a version-40 QR symbol.
const maxAmountDigits = 340

// NewAmount accepts Go integer, float and decimal.Decimal values. Strings, bools and
// non-finite floats are not amounts.
func NewAmount(v any) (Amount, error) {
	a, err := toAmount(v)
	if err != nil {
		return Amount{}, err
	}
	return bounded(a)
}

func toAmount(v any) (Amount, error) {
	switch x := v.(type) {
	case int:
		return Amount{decimal.NewFromInt(int64(x))}, nil
	case int8:
		return Amount{decimal.NewFromInt(int64(x))}, nil
	case int16:
		return Amount{decimal.NewFromInt(int64(x))}, nil
	case int32:
		return Amount{decimal.NewFromInt(int64(x))}, nil
	case int64:
		return Amount{decimal.NewFromInt(x)}, nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return fromUint(uint64(x)), nil
	case uint16:
		return fromUint(uint64(x)), nil
	case uint32:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		if isNonFinite(float64(x)) {
			return Amount{}, fmt.Errorf("%w: amount %v is not a finite number", ErrInvalidArgument, x)
		}
		return Amount{decimal.NewFromFloat32(x)}, nil
	case float64:
		if isNonFinite(x) {
			return Amount{}, fmt.Errorf("%w: amount %v is not a finite number", ErrInvalidArgument, x)
		}
		return Amount{decimal.NewFromFloat(x)}, nil
	case decimal.Decimal:
		return Amount{x}, nil
	case Amount:
		return x, nil
	default:
		return Amount{}, fmt.Errorf("%w: amount of type %T is not a number", ErrInvalidArgument, v)
	}
}

// ParseAmount reads a decimal literal such as "50000" or "12.75".
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, fmt.Errorf("%w: amount is empty", ErrInvalidArgument)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: amount %q is not a number", ErrInvalidArgument, s)
	}
	return bounded(Amount{d})
}

// bounded rejects amounts whose written form would exceed maxAmountDigits, without
// expanding the exponent.
func bounded(a Amount) (Amount, error) {
	coef := a.value.Coefficient()
	coef.Abs(coef)
	if coef.BitLen() > 4*maxAmountDigits {
		return Amount{}, fmt.Errorf("%w: amount has more than %d digits", ErrInvalidArgument, maxAmountDigits)
	}

	digits := int64(len(coef.String()))
	exp := int64(a.value.Exponent())

	width := digits + exp
	if exp < 0 {
		width = max(digits, -exp+1)
	}
	if width > maxAmountDigits {
		return Amount{}, fmt.Errorf("%w: amount has more than %d digits", ErrInvalidArgument, maxAmountDigits)
	}
	return a, nil
}

func MustAmount(v any) Amount {
	a, err := NewAmount(v)
	if err != nil {
		panic(err)
	}
	return a
}

func fromUint(u uint64) Amount {
	return Amount{decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)}
}

func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) IsPositive() bool {
	return a.value.IsPositive()
}

func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

func (a Amount) String() string {
	return a.value.String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	b, err := bounded(Amount{d})
	if err != nil {
		return err
	}
	*a = b
	return nil
}
