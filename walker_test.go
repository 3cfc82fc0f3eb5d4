package betterment

import (
	"testing"
	"time"
)

func TestParseStatement_DividendPayment(t *testing.T) {
	ref := DefaultReference()
	lines := [][]string{
		{"BUILD", "WEALTH"},
		{"Dividend", "Payment", "Detail"},
		{"Date", "Fund", "Description", "Amount"},
		{"May", "7", "2015", "MUB", "iShares", "National", "AMT-Free", "Muni", "Bond", "ETF", "$0.05"},
	}

	txs := ParseStatement(ref, lines)

	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	tx := txs[0]
	if tx.Type != TypeDivPay {
		t.Errorf("Type = %q, want %q", tx.Type, TypeDivPay)
	}
	if tx.Goal != GoalBuildWealth {
		t.Errorf("Goal = %q, want %q", tx.Goal, GoalBuildWealth)
	}
	if want := NewDate(2015, time.May, 7); tx.Date != want {
		t.Errorf("Date = %s, want %s", tx.Date, want)
	}
	if tx.Ticker != "MUB" {
		t.Errorf("Ticker = %q, want %q", tx.Ticker, "MUB")
	}
	if got := tx.Amount.Plain(); got != "0.05" {
		t.Errorf("Amount = %q, want %q", got, "0.05")
	}
}

func TestParseStatement_ContinuationInheritsContext(t *testing.T) {
	// One reinvestment spread over two securities: the second line has no
	// date column and borrows date, type and description from the first.
	ref := DefaultReference()
	lines := [][]string{
		{"SAFETY", "NET"},
		{"Dividend", "Reinvestment", "Detail"},
		{"Apr", "2", "2015", "Dividend", "Reinvestment", "Stocks", "/", "VTV", "$83.55", "0.008", "$0.66", "0.592", "$49.48"},
		{"Stocks", "/", "VTI", "$107.45", "0.004", "$0.45", "0.460", "$49.46"},
	}

	txs := ParseStatement(ref, lines)

	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	first, second := txs[0], txs[1]
	if first.Ticker != "VTV" || second.Ticker != "VTI" {
		t.Fatalf("tickers = %q, %q, want VTV, VTI", first.Ticker, second.Ticker)
	}
	if second.Date != first.Date {
		t.Errorf("continuation Date = %s, want inherited %s", second.Date, first.Date)
	}
	if second.Type != TypeDivBuy {
		t.Errorf("continuation Type = %q, want %q", second.Type, TypeDivBuy)
	}
	if second.Description != "Dividend Reinvestment" {
		t.Errorf("continuation Description = %q, want %q", second.Description, "Dividend Reinvestment")
	}
	if second.Goal != GoalSafetyNet {
		t.Errorf("continuation Goal = %q, want %q", second.Goal, GoalSafetyNet)
	}
}

func TestParseStatement_ContinuationWithoutSiblingDropped(t *testing.T) {
	// A detail half with no preceding dated share line has no date to borrow,
	// so it is dropped rather than emitted half formed.
	ref := DefaultReference()
	lines := [][]string{
		{"BUILD", "WEALTH"},
		{"Quarterly", "Activity", "Detail"},
		{"Stocks", "/", "VTI", "$107.45", "0.004", "$0.45", "0.460", "$49.46"},
	}

	txs := ParseStatement(ref, lines)

	if len(txs) != 0 {
		t.Fatalf("got %d transactions, want 0", len(txs))
	}
}

func TestParseStatement_CashActivityClosesGoal(t *testing.T) {
	ref := DefaultReference()
	lines := [][]string{
		{"BUILD", "WEALTH"},
		{"Dividend", "Payment", "Detail"},
		{"CASH", "ACTIVITY"},
		// outside any goal, a well formed line must not be collected
		{"May", "7", "2015", "MUB", "iShares", "National", "AMT-Free", "Muni", "Bond", "ETF", "$0.05"},
	}

	txs := ParseStatement(ref, lines)

	if len(txs) != 0 {
		t.Fatalf("got %d transactions, want 0", len(txs))
	}
}

func TestParseStatement_GoalHeaderVariants(t *testing.T) {
	// Some statement layouts title the sections "Build Wealth Goal" instead
	// of "BUILD WEALTH"; both resolve to the same goal.
	ref := DefaultReference()
	lines := [][]string{
		{"Build", "Wealth", "Goal"},
		{"Dividend", "Payment", "Detail"},
		{"May", "7", "2015", "MUB", "iShares", "National", "AMT-Free", "Muni", "Bond", "ETF", "$0.05"},
	}

	txs := ParseStatement(ref, lines)

	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	if txs[0].Goal != GoalBuildWealth {
		t.Errorf("Goal = %q, want %q", txs[0].Goal, GoalBuildWealth)
	}
}

func TestParseStatement_GoalHeaderResetsBlock(t *testing.T) {
	// A new goal header ends the current block: share lines after it must
	// not be parsed until a new block header appears.
	ref := DefaultReference()
	lines := [][]string{
		{"BUILD", "WEALTH"},
		{"Quarterly", "Activity", "Detail"},
		{"Apr", "2", "2015", "Automatic", "Deposit", "Stocks", "/", "VTI", "$107.45", "0.004", "$0.45", "0.460", "$49.46"},
		{"SAFETY", "NET"},
		{"Apr", "3", "2015", "Automatic", "Deposit", "Stocks", "/", "VTI", "$107.45", "0.004", "$0.45", "0.460", "$49.46"},
	}

	txs := ParseStatement(ref, lines)

	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	if txs[0].Goal != GoalBuildWealth {
		t.Errorf("Goal = %q, want %q", txs[0].Goal, GoalBuildWealth)
	}
}

func TestParseStatement_UnknownTickerLineSkipped(t *testing.T) {
	// An unresolvable ticker makes its line unrecognized; the walk goes on
	// and later lines still parse.
	ref := DefaultReference()
	lines := [][]string{
		{"BUILD", "WEALTH"},
		{"Dividend", "Payment", "Detail"},
		{"May", "7", "2015", "ZZZZ", "Mystery", "Fund", "$0.10"},
		{"May", "7", "2015", "MUB", "iShares", "National", "AMT-Free", "Muni", "Bond", "ETF", "$0.05"},
	}

	txs := ParseStatement(ref, lines)

	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	if txs[0].Ticker != "MUB" {
		t.Errorf("Ticker = %q, want %q", txs[0].Ticker, "MUB")
	}
}

func TestParseStatement_BlockSwitch(t *testing.T) {
	// Dividend payments and share activity interleave; each block's lines
	// only ever reach that block's classifier.
	ref := DefaultReference()
	lines := [][]string{
		{"BUILD", "WEALTH"},
		{"Dividend", "Payment", "Detail"},
		{"May", "7", "2015", "MUB", "iShares", "National", "AMT-Free", "Muni", "Bond", "ETF", "$0.05"},
		{"Quarterly", "Activity", "Detail"},
		{"Jun", "30", "2015", "Advisory", "Fee", "Stocks", "/", "VTI", "$107.45", "0.009", "-$1.00", "0.460", "$49.46"},
	}

	txs := ParseStatement(ref, lines)

	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	if txs[0].Type != TypeDivPay {
		t.Errorf("first Type = %q, want %q", txs[0].Type, TypeDivPay)
	}
	if txs[1].Type != TypeFeeSell {
		t.Errorf("second Type = %q, want %q", txs[1].Type, TypeFeeSell)
	}
}
