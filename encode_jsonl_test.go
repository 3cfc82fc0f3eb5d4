package betterment

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestEncodeJSONL(t *testing.T) {
	ref := DefaultReference()
	txs := qifFixture(t)

	var b strings.Builder
	if err := EncodeJSONL(&b, ref, txs); err != nil {
		t.Fatalf("EncodeJSONL() returned an unexpected error: %v", err)
	}

	want := `{"command":"dividend","date":"2015-05-07","memo":"Build Wealth: Municipal Bonds ETF","security":"MUB","amount":0.05,"currency":"USD"}
{"command":"buy","date":"2015-04-02","memo":"Build Wealth: Automatic Deposit","security":"VTI","quantity":0.004188,"amount":0.45,"currency":"USD"}
{"command":"sell","date":"2015-06-30","memo":"Safety Net: Advisory Fee","security":"VTV","quantity":0.011969,"amount":1,"currency":"USD"}
{"command":"withdraw","date":"2015-06-30","memo":"Safety Net","amount":1,"currency":"USD"}
`
	if got := b.String(); got != want {
		t.Errorf("EncodeJSONL() output mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestEncodeJSONL_SkipsTransfers(t *testing.T) {
	ref := DefaultReference()
	txs := []Transaction{{
		Type: TypeTransfer,
		Goal: GoalBuildWealth,
		Date: NewDate(2015, time.April, 2),
	}}

	var b strings.Builder
	if err := EncodeJSONL(&b, ref, txs); err != nil {
		t.Fatalf("EncodeJSONL() returned an unexpected error: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("transfer should produce no ledger line, got %q", b.String())
	}
}

func TestEncodeJSONL_MissingGoalFatal(t *testing.T) {
	ref := DefaultReference()
	m, _ := ParseMoney("$0.05")
	txs := []Transaction{{
		Type:   TypeDivPay,
		Date:   NewDate(2015, time.May, 7),
		Ticker: "MUB",
		Amount: m,
	}}

	var b strings.Builder
	err := EncodeJSONL(&b, ref, txs)

	var malformed *MalformedTransactionError
	if !errors.As(err, &malformed) {
		t.Fatalf("EncodeJSONL() error = %v, want MalformedTransactionError", err)
	}
	if b.Len() != 0 {
		t.Errorf("output written despite failure: %q", b.String())
	}
}
