package betterment

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

// qifFixture builds one transaction per renderable type across both goals.
func qifFixture(t *testing.T) []Transaction {
	t.Helper()
	ref := DefaultReference()
	txs := ParseStatement(ref, [][]string{
		{"BUILD", "WEALTH"},
		{"Dividend", "Payment", "Detail"},
		{"May", "7", "2015", "MUB", "Municipal", "Bonds", "ETF", "$0.05"},
		{"Quarterly", "Activity", "Detail"},
		{"Apr", "2", "2015", "Automatic", "Deposit", "Stocks", "/", "VTI", "$107.45", "0.004", "$0.45", "0.460", "$49.46"},
		{"SAFETY", "NET"},
		{"Quarterly", "Activity", "Detail"},
		{"Jun", "30", "2015", "Advisory", "Fee", "Stocks", "/", "VTV", "$83.55", "0.012", "-$1.00", "0.592", "$49.48"},
	})
	return AggregateFees(txs)
}

func TestEncodeQIF(t *testing.T) {
	ref := DefaultReference()
	txs := qifFixture(t)

	var buildWealth, safetyNet strings.Builder
	streams := map[Goal]io.Writer{
		GoalBuildWealth: &buildWealth,
		GoalSafetyNet:   &safetyNet,
	}
	if err := EncodeQIF(streams, ref, txs); err != nil {
		t.Fatalf("EncodeQIF() returned an unexpected error: %v", err)
	}

	wantBuildWealth := ` !Account
NBetterment Build Wealth
DBetterment Build Wealth
TInvst
^
!Type:Invst
D05/07/2015
NDiv
YMunicipal Bonds ETF
T0.05
O0.00
L[Investment:Dividends]
^
!Type:Invst
D04/02/2015
NBuy
YVanguard Total Stock Market ETF
I107.45
Q0.004188
T0.45
O0.00
^`
	if got := buildWealth.String(); got != wantBuildWealth {
		t.Errorf("Build Wealth stream mismatch.\nGot:\n%s\nWant:\n%s", got, wantBuildWealth)
	}

	wantSafetyNet := ` !Account
NBetterment Safety Net
DBetterment Safety Net
TInvst
^
!Type:Invst
D06/30/2015
NSell
YVanguard Value ETF
I83.55
Q0.011969
T1
O0.00
^
!Type:Invst
D06/30/2015
NXOut
PAdmin Fee
T1
L[Bank Charge:Service Charges]
$1
O0.00
^`
	if got := safetyNet.String(); got != wantSafetyNet {
		t.Errorf("Safety Net stream mismatch.\nGot:\n%s\nWant:\n%s", got, wantSafetyNet)
	}
}

func TestEncodeQIF_MalformedTransaction(t *testing.T) {
	ref := DefaultReference()
	txs := []Transaction{{
		Type: TypeTransfer,
		Goal: GoalBuildWealth,
		Date: NewDate(2015, time.April, 2),
	}}

	var buildWealth strings.Builder
	streams := map[Goal]io.Writer{GoalBuildWealth: &buildWealth}
	err := EncodeQIF(streams, ref, txs)

	var malformed *MalformedTransactionError
	if !errors.As(err, &malformed) {
		t.Fatalf("EncodeQIF() error = %v, want MalformedTransactionError", err)
	}
	// failure must leave no partial output behind
	if buildWealth.Len() != 0 {
		t.Errorf("stream written despite failure: %q", buildWealth.String())
	}
}

func TestEncodeQIF_MissingGoalStream(t *testing.T) {
	ref := DefaultReference()
	m, _ := ParseMoney("$0.05")
	txs := []Transaction{{
		Type:   TypeDivPay,
		Goal:   GoalSafetyNet,
		Date:   NewDate(2015, time.May, 7),
		Ticker: "MUB",
		Amount: m,
	}}

	var buildWealth strings.Builder
	streams := map[Goal]io.Writer{GoalBuildWealth: &buildWealth}
	err := EncodeQIF(streams, ref, txs)

	var malformed *MalformedTransactionError
	if !errors.As(err, &malformed) {
		t.Fatalf("EncodeQIF() error = %v, want MalformedTransactionError", err)
	}
	if buildWealth.Len() != 0 {
		t.Errorf("stream written despite failure: %q", buildWealth.String())
	}
}

func TestEncodeQIF_UnknownTickerFatal(t *testing.T) {
	ref := DefaultReference()
	m, _ := ParseMoney("$0.05")
	txs := []Transaction{{
		Type:   TypeDivPay,
		Goal:   GoalBuildWealth,
		Date:   NewDate(2015, time.May, 7),
		Ticker: "ZZZZ",
		Amount: m,
	}}

	var buildWealth strings.Builder
	streams := map[Goal]io.Writer{GoalBuildWealth: &buildWealth}
	err := EncodeQIF(streams, ref, txs)

	var unknown *UnknownTickerError
	if !errors.As(err, &unknown) {
		t.Fatalf("EncodeQIF() error = %v, want UnknownTickerError", err)
	}
}
