// Package renderer renders parsed statement transactions for terminal
// display.
package renderer

import (
	"fmt"
	"strings"

	betterment "github.com/fcfort/betterment-pdf-to-csv"
)

// Transactions renders the transactions as a markdown table.
func Transactions(txs []betterment.Transaction) string {
	var b strings.Builder
	b.WriteString("| Date | Goal | Type | Ticker | Description | Shares | Price | Amount |\n")
	b.WriteString("|---|---|---|---|---|---:|---:|---:|\n")
	for _, tx := range txs {
		var shares, price string
		if tx.HasShares() {
			shares = tx.Shares.Fixed()
			price = tx.SharePrice.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Date, tx.Goal, tx.Type, tx.Ticker, tx.Description, shares, price, tx.Amount.String())
	}
	return b.String()
}

// Transaction renders a single transaction to a one-line string.
func Transaction(tx betterment.Transaction) string {
	switch {
	case tx.Type == betterment.TypeDivPay:
		return fmt.Sprintf("Dividend of %s for %s", tx.Amount, tx.Ticker)
	case tx.Type == betterment.TypeFeePay:
		return fmt.Sprintf("Advisory fee of %s", tx.Amount)
	case tx.Type.IsBuy():
		return fmt.Sprintf("Bought %s of %s for %s", tx.Shares.Fixed(), tx.Ticker, tx.Amount)
	case tx.Type.IsSell():
		return fmt.Sprintf("Sold %s of %s for %s", tx.Shares.Fixed(), tx.Ticker, tx.Amount)
	default:
		return fmt.Sprintf("%s of %s", tx.Type, tx.Amount)
	}
}
