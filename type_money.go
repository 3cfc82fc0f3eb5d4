package betterment

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// statements are USD only, see the multi-currency non-goal.
const currency = "USD"

// Money represents a non-negative dollar value from the statement. The sign
// of a movement is conveyed by the transaction type, never by the amount,
// matching the QIF convention.
type Money struct {
	value decimal.Decimal
}

// M creates a Money from a decimal value.
func M(value decimal.Decimal) Money { return Money{value: value} }

// ParseMoney parses a statement dollar token such as "$107.45", "-$0.45" or
// "$1,234.56". Leading sign and currency markers are stripped, as are
// thousands separators.
func ParseMoney(token string) (Money, error) {
	cleaned := strings.ReplaceAll(strings.TrimLeft(token, "-$"), ",", "")
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}, err
	}
	return Money{value: value}, nil
}

// rawMoney keeps the printed sign but drops the currency marker and
// thousands separators, for the traceability columns of the tabular output.
func rawMoney(token string) string {
	return strings.ReplaceAll(strings.ReplaceAll(token, "$", ""), ",", "")
}

// String returns the value formatted as currency, e.g. "$0.05".
func (m Money) String() string {
	cur := money.GetCurrency(currency)
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Plain returns the undecorated decimal representation, e.g. "0.05", which is
// what the CSV and QIF encoders emit.
func (m Money) Plain() string { return m.value.String() }

func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }

// DivPrice derives a share count from an amount and a per-share price,
// rounded half away from zero to 6 fraction digits. The statement's own
// printed share count is only ever used as a cross-check against this value.
func (m Money) DivPrice(price Money) Quantity {
	return Quantity{value: m.value.Div(price.value).Round(sharesPrecision)}
}
