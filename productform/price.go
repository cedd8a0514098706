package productform

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	nonPriceChars = regexp.MustCompile(`[^\d,-]`)
	maxCents      = decimal.NewFromInt(math.MaxInt64)
)

// ParsePrice reads a price typed in Brazilian notation ("R$ 1.234,56"):
// everything but digits, commas and minus signs is dropped and the first comma
// becomes the decimal point.
func ParsePrice(s string) (decimal.Decimal, error) {
	cleaned := nonPriceChars.ReplaceAllString(s, "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)
	return decimal.NewFromString(cleaned)
}

// Amount is a form price in currency units. It accepts a JSON number or a
// string in Brazilian notation. Unparseable input leaves it invalid rather
// than failing the whole body.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

func NewAmount(v decimal.Decimal) Amount {
	return Amount{Value: v, Valid: true}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if v, err := ParsePrice(s); err == nil {
			*a = NewAmount(v)
		}
		return nil
	}

	if v, err := decimal.NewFromString(string(data)); err == nil {
		*a = NewAmount(v)
	}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return []byte(a.Value.StringFixed(2)), nil
}

// FitsCents reports whether the amount in cents fits an int64.
func (a Amount) FitsCents() bool {
	return a.Value.Shift(2).Round(0).Abs().LessThanOrEqual(maxCents)
}

// Cents converts the amount to integer cents, rounding half away from zero.
// The result is only meaningful when FitsCents holds.
func (a Amount) Cents() int64 {
	return a.Value.Shift(2).Round(0).IntPart()
}

// AmountFromCents is the inverse of Cents.
func AmountFromCents(cents int64) Amount {
	return NewAmount(decimal.New(cents, -2))
}
