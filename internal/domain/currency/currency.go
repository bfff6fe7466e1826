package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownCurrency = errors.New("unknown currency")

type Currency struct {
	Code       string
	MinorUnits int
}

// The rial is not subdivided in practice, so IRR carries no minor units.
var known = map[string]int{
	"IRR": 0,
	"JPY": 0,
	"USD": 2,
	"EUR": 2,
	"GBP": 2,
	"AED": 2,
	"TRY": 2,
	"KWD": 3,
}

func Lookup(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	units, ok := known[code]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return Currency{Code: code, MinorUnits: units}, nil
}

// Allows reports whether d has no more fractional digits than the currency permits.
func (c Currency) Allows(d decimal.Decimal) bool {
	return d.Round(int32(c.MinorUnits)).Equal(d)
}

func (c Currency) String() string {
	return c.Code
}
