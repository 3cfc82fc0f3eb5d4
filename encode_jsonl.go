package betterment

import (
	"fmt"
	"io"
	"log"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeJSONL renders the transactions as pcs-style ledger lines, one JSON
// object per line with stable key order, so the output can be fed straight
// into a JSONL-based portfolio tool. The mapping is:
//
//	div pay          -> dividend
//	div buy, buy     -> buy (quantity derived from amount and price)
//	fee sell         -> sell
//	fee pay          -> withdraw
//
// Transfer and unknown activity has no faithful ledger equivalent and is
// skipped with a note on stderr. Goal and description travel in the memo.
func EncodeJSONL(w io.Writer, ref *Reference, txs []Transaction) error {
	for _, tx := range txs {
		if tx.Goal == "" {
			return &MalformedTransactionError{Tx: tx, Reason: "no resolvable goal"}
		}
		line, ok, err := jsonlLine(tx)
		if err != nil {
			return err
		}
		if !ok {
			log.Printf("skipping %s transaction of %s: no ledger equivalent", tx.Type, tx.Date)
			continue
		}
		if _, err := w.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("failed to write transaction: %w", err)
		}
	}
	return nil
}

func jsonlLine(tx Transaction) ([]byte, bool, error) {
	var command string
	switch {
	case tx.Type == TypeDivPay:
		command = "dividend"
	case tx.Type == TypeFeePay:
		command = "withdraw"
	case tx.Type.IsBuy():
		command = "buy"
	case tx.Type.IsSell():
		command = "sell"
	default:
		return nil, false, nil
	}

	memo := string(tx.Goal)
	if tx.Description != "" {
		memo += ": " + tx.Description
	}

	var w jsonObjectWriter
	w.Append("command", command)
	w.Append("date", tx.Date)
	w.Optional("memo", memo)
	w.Optional("security", tx.Ticker)
	if command == "buy" || command == "sell" {
		w.Append("quantity", tx.Shares.Decimal())
	}
	w.Append("amount", tx.Amount.Decimal())
	w.Append("currency", currency)

	line, err := w.MarshalJSON()
	if err != nil {
		return nil, false, err
	}
	return line, true, nil
}
