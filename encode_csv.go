package betterment

import (
	"encoding/csv"
	"io"
)

// csvHeader is the column layout of the tabular output.
var csvHeader = []string{"Goal", "Date", "Ticker", "Ticker Name", "Description", "Shares", "Share Price", "Amount"}

// EncodeCSV renders the transactions that carry share data as comma-separated
// rows, header row first, dates in ISO-8601. The share columns use the raw
// (sign-preserving) values for traceability back to the statement.
//
// An unknown ticker here is a hard failure: the transaction was built against
// the reference table, so the table must have changed under us.
func EncodeCSV(w io.Writer, ref *Reference, txs []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, tx := range txs {
		if !tx.HasShares() {
			continue
		}
		name, err := ref.TickerName(tx.Ticker)
		if err != nil {
			return err
		}
		record := []string{
			string(tx.Goal),
			tx.Date.String(),
			tx.Ticker,
			name,
			tx.Description,
			tx.RawShares,
			tx.RawSharePrice,
			tx.RawAmount,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
