package betterment

import (
	"errors"
	"fmt"
)

// ErrLineNotRecognized reports that a tokenized line does not match the shape
// a classifier expects. It is the normal outcome for most statement lines
// (section titles, column headers, totals); the walker skips such lines.
var ErrLineNotRecognized = errors.New("line not recognized")

// UnknownTickerError reports a ticker absent from the reference table.
// Inside a classifier it is downgraded to ErrLineNotRecognized and the line
// is dropped; at serialization time it is fatal, since the transaction was
// built against the same table and the reference data must have changed.
type UnknownTickerError struct {
	Ticker string
}

func (e *UnknownTickerError) Error() string {
	return fmt.Sprintf("unknown ticker %q", e.Ticker)
}

// MalformedTransactionError reports a transaction the serializer cannot
// render: a type outside the known buy/sell/dividend/fee kinds, or a missing
// goal. It is fatal, since it indicates the walker produced an inconsistent
// record.
type MalformedTransactionError struct {
	Tx     Transaction
	Reason string
}

func (e *MalformedTransactionError) Error() string {
	return fmt.Sprintf("malformed transaction (%s): %+v", e.Reason, e.Tx)
}
