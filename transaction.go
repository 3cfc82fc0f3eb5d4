package betterment

import "strings"

// Type is a typed string identifying the kind of transaction.
type Type string

// Transaction types recovered from a statement. FeePay is never parsed from
// text, it is only synthesized by the fee aggregation pass.
const (
	TypeDivPay   Type = "div pay"  // dividend paid in cash
	TypeDivBuy   Type = "div buy"  // shares bought after a dividend payment
	TypeBuy      Type = "buy"      // shares bought after a deposit
	TypeFeeSell  Type = "fee sell" // shares sold to pay the advisory fee
	TypeFeePay   Type = "fee pay"  // aggregated advisory fee debit
	TypeTransfer Type = "transfer" // shares moved between goals
	TypeUnknown  Type = "unknown"  // share activity with an unrecognized description
)

// IsBuy reports whether the type is a purchase of shares.
func (t Type) IsBuy() bool { return strings.Contains(string(t), "buy") }

// IsSell reports whether the type is a sale of shares.
func (t Type) IsSell() bool { return strings.Contains(string(t), "sell") }

// Goal is the statement sub-account a transaction belongs to.
type Goal string

const (
	GoalBuildWealth Goal = "Build Wealth"
	GoalSafetyNet   Goal = "Safety Net"
	// GoalOther is the fallback for goal labelings that are recognized as
	// headers but not mapped to a known bucket.
	GoalOther Goal = "Other"
)

// Transaction is one reconstructed statement event. Different line shapes
// populate different subsets of the fields: a dividend payment has no share
// data, a synthesized fee payment has neither ticker nor description.
type Transaction struct {
	Type        Type
	Goal        Goal
	Date        Date
	Ticker      string
	Description string

	SharePrice Money    // per-share price, sign stripped
	Amount     Money    // total amount, sign stripped
	Shares     Quantity // derived from Amount/SharePrice, never read from the text

	// Raw variants keep the printed sign for the tabular output.
	RawSharePrice string
	RawAmount     string
	RawShares     string
}

// HasShares reports whether the transaction carries share data and therefore
// belongs in the tabular output.
func (t Transaction) HasShares() bool { return t.Ticker != "" && !t.SharePrice.IsZero() }

// fragment is a partially populated transaction as returned by a classifier,
// before goal assignment and backfill. The booleans record which contextual
// fields the line actually carried, so the walker's inherit step is an
// explicit operation rather than key-presence probing.
type fragment struct {
	tx      Transaction
	hasDate bool
	hasType bool
	hasDesc bool
}

// merge overlays the header half of a split share-activity line onto the
// detail half.
func (f fragment) merge(detail fragment) fragment {
	out := detail
	if f.hasDate {
		out.tx.Date, out.hasDate = f.tx.Date, true
	}
	if f.hasType {
		out.tx.Type, out.hasType = f.tx.Type, true
	}
	if f.hasDesc {
		out.tx.Description, out.hasDesc = f.tx.Description, true
	}
	return out
}

// inherit backfills date, type and description from the most recently
// completed sibling transaction, for continuation lines that omit the
// repeated context.
func (f *fragment) inherit(prev Transaction) {
	if !f.hasDate {
		f.tx.Date = prev.Date
	}
	if !f.hasType {
		f.tx.Type = prev.Type
	}
	if !f.hasDesc {
		f.tx.Description = prev.Description
	}
}
