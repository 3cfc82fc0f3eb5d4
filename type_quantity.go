package betterment

import "github.com/shopspring/decimal"

// sharesPrecision is the number of fraction digits carried by derived share
// counts.
const sharesPrecision = 6

// Quantity represents a number of shares.
type Quantity struct {
	value decimal.Decimal
}

// Q creates a Quantity from a decimal value.
func Q(value decimal.Decimal) Quantity { return Quantity{value: value} }

func (q Quantity) Equal(p Quantity) bool    { return q.value.Equal(p.value) }
func (q Quantity) IsZero() bool             { return q.value.IsZero() }
func (q Quantity) Sub(p Quantity) Quantity  { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Abs() Quantity            { return Quantity{value: q.value.Abs()} }
func (q Quantity) Decimal() decimal.Decimal { return q.value }
func (q Quantity) LessThan(p Quantity) bool { return q.value.LessThan(p.value) }
func (q Quantity) String() string           { return q.value.String() }

// Fixed returns the quantity with exactly sharesPrecision fraction digits,
// e.g. "0.004188", the form emitted by the encoders.
func (q Quantity) Fixed() string { return q.value.StringFixed(sharesPrecision) }
