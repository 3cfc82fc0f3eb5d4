package betterment

import "slices"

// feeKey groups advisory fee deductions that net into one ledger debit.
type feeKey struct {
	goal Goal
	date Date
}

// AggregateFees appends one synthesized "fee pay" transaction per (goal,
// date) that saw "fee sell" activity, with the summed amount. This models
// the statement's convention that the per-security share sales paying the
// advisory fee of a single period are one debit on the ledger side.
//
// It runs exactly once, after walking completes. Synthesized transactions
// are emitted in (goal, date) order so the result does not depend on the
// input order.
func AggregateFees(txs []Transaction) []Transaction {
	fees := make(map[feeKey]Money)
	for _, tx := range txs {
		if tx.Type != TypeFeeSell {
			continue
		}
		key := feeKey{goal: tx.Goal, date: tx.Date}
		fees[key] = fees[key].Add(tx.Amount)
	}

	keys := make([]feeKey, 0, len(fees))
	for key := range fees {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b feeKey) int {
		if a.goal != b.goal {
			if a.goal < b.goal {
				return -1
			}
			return 1
		}
		return a.date.Compare(b.date)
	})

	for _, key := range keys {
		txs = append(txs, Transaction{
			Type:   TypeFeePay,
			Goal:   key.goal,
			Date:   key.date,
			Amount: fees[key],
		})
	}
	return txs
}
