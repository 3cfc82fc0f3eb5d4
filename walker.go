package betterment

import (
	"errors"
	"strings"
)

// blockType is the classification of the statement section being walked.
type blockType int

const (
	blockNone blockType = iota
	blockDividend
	blockShare
)

// Sentinel phrases that switch the current block. Text extraction yields no
// structural markup, so section state is reconstructed purely from these
// header lines.
var (
	dividendHeader = "Dividend Payment Detail"
	shareHeaders   = map[string]bool{
		"Quarterly Activity Detail":    true,
		"Dividend Reinvestment Detail": true,
		"Transaction Detail":           true,
	}
)

// Walker reconstructs transactions from a statement's tokenized lines. It is
// stateful and single-use: parse each statement document with a fresh
// Walker, then concatenate the results.
type Walker struct {
	ref   *Reference
	goal  Goal
	block blockType
	last  *Transaction // most recent share transaction, for continuation lines
	txs   []Transaction
}

// NewWalker returns a Walker ready to consume one statement.
func NewWalker(ref *Reference) *Walker {
	return &Walker{ref: ref}
}

// ParseStatement walks all lines of one statement document and returns the
// transactions found, in statement order.
func ParseStatement(ref *Reference, lines [][]string) []Transaction {
	w := NewWalker(ref)
	for _, line := range lines {
		w.Walk(line)
	}
	return w.Transactions()
}

// Transactions returns the transactions accumulated so far.
func (w *Walker) Transactions() []Transaction { return w.txs }

// Walk consumes one tokenized line.
func (w *Walker) Walk(line []string) {
	if len(line) == 0 {
		return
	}
	header := strings.Join(line, " ")

	if goal, ok := w.ref.goalFor(header); ok {
		w.goal, w.block = goal, blockNone
		return
	}
	if line[0] == "CASH" && len(line) > 1 && line[1] == "ACTIVITY" {
		// cash activity closes the per-goal sections
		w.goal, w.block = "", blockNone
		return
	}
	if w.goal == "" {
		return
	}

	// The classification attempt comes before the sentinel check, so a block
	// header line is never offered to its own block's classifier.
	switch w.block {
	case blockDividend:
		if frag, err := parseDividendPayment(w.ref, line); err == nil {
			w.append(frag)
		} else if !errors.Is(err, ErrLineNotRecognized) {
			// classifiers only ever fail with ErrLineNotRecognized
			panic(err)
		}
	case blockShare:
		if frag, err := parseShareActivity(w.ref, line); err == nil {
			if frag.hasDate || w.last != nil {
				frag.inherit(w.lastOrZero())
				tx := w.append(frag)
				w.last = &tx
			}
			// a continuation line with nothing to continue from carries no
			// usable date: drop it like any unrecognized line
		} else if !errors.Is(err, ErrLineNotRecognized) {
			panic(err)
		}
	}

	if header == dividendHeader {
		w.block = blockDividend
	} else if shareHeaders[header] {
		w.block = blockShare
	}
}

// append stamps the active goal on a completed fragment and records it.
func (w *Walker) append(frag fragment) Transaction {
	frag.tx.Goal = w.goal
	w.txs = append(w.txs, frag.tx)
	return frag.tx
}

func (w *Walker) lastOrZero() Transaction {
	if w.last == nil {
		return Transaction{}
	}
	return *w.last
}
