package betterment

import (
	"fmt"
	"io"
	"strings"
)

// QIF templates, per the Quicken interchange format as consumed by
// Moneydance. The initial space in the account header is necessary.
const (
	qifAccountHeader = ` !Account
NBetterment %[1]s
DBetterment %[1]s
TInvst
^`

	qifBuySell = `!Type:Invst
D%s
N%s
Y%s
I%s
Q%s
T%s
O0.00
^`

	qifDividend = `!Type:Invst
D%s
NDiv
Y%s
T%s
O0.00
L[Investment:Dividends]
^`

	// the amount appears twice per the format's own convention
	qifFee = `!Type:Invst
D%[1]s
NXOut
PAdmin Fee
T%[2]s
L[Bank Charge:Service Charges]
$%[2]s
O0.00
^`
)

// EncodeQIF renders the transactions into one QIF stream per goal, each
// opened by its account header block. Streams maps a goal to its
// destination. A transaction whose goal has no stream indicates a walker
// defect and is a MalformedTransactionError, as is any type outside the
// dividend/fee/buy/sell kinds. Nothing is written until every transaction
// has rendered, so a failure leaves no partial output.
func EncodeQIF(streams map[Goal]io.Writer, ref *Reference, txs []Transaction) error {
	blocks := make(map[Goal][]string, len(streams))
	for goal := range streams {
		blocks[goal] = []string{fmt.Sprintf(qifAccountHeader, goal)}
	}

	for _, tx := range txs {
		record, err := qifRecord(ref, tx)
		if err != nil {
			return err
		}
		if _, ok := blocks[tx.Goal]; !ok {
			return &MalformedTransactionError{Tx: tx, Reason: "no resolvable goal"}
		}
		blocks[tx.Goal] = append(blocks[tx.Goal], record)
	}

	for goal, w := range streams {
		if _, err := io.WriteString(w, strings.Join(blocks[goal], "\n")); err != nil {
			return err
		}
	}
	return nil
}

// qifRecord renders one transaction per its type.
func qifRecord(ref *Reference, tx Transaction) (string, error) {
	date := tx.Date.Format(QIFDateFormat)

	switch {
	case tx.Type == TypeDivPay:
		name, err := ref.TickerName(tx.Ticker)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(qifDividend, date, name, tx.Amount.Plain()), nil

	case tx.Type == TypeFeePay:
		return fmt.Sprintf(qifFee, date, tx.Amount.Plain()), nil

	case tx.Type.IsBuy() || tx.Type.IsSell():
		action := "Buy"
		if tx.Type.IsSell() {
			action = "Sell"
		}
		name, err := ref.TickerName(tx.Ticker)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(qifBuySell, date, action, name,
			tx.SharePrice.Plain(), tx.Shares.Fixed(), tx.Amount.Plain()), nil

	default:
		return "", &MalformedTransactionError{Tx: tx, Reason: "not a dividend, fee, buy, or sell"}
	}
}
