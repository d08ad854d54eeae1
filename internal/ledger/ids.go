// Package ledger holds the debt and transaction collections' operations.
//
// Every function treats its input slices as immutable and returns a new
// slice on change, so a snapshot handed to a reader is never modified
// underneath it.
package ledger

import (
	"math"
	"time"

	"github.com/theirongolddev/rebalance/internal/model"
)

// NextID returns a time-derived id (Unix milliseconds) that is greater than
// every id in used. Two records created in the same millisecond still get
// distinct ids. The result saturates at math.MaxInt64 rather than wrapping
// negative when an imported id is already at the limit.
func NextID(now time.Time, used ...int64) int64 {
	id := now.UnixMilli()
	for _, u := range used {
		if u == math.MaxInt64 {
			return math.MaxInt64
		}
		if u >= id {
			id = u + 1
		}
	}
	return id
}

// IDs collects the ids of both collections, for NextID.
func IDs(debts []model.Debt, txs []model.Transaction) []int64 {
	ids := make([]int64, 0, len(debts)+len(txs))
	for _, d := range debts {
		ids = append(ids, d.ID)
	}
	for _, t := range txs {
		ids = append(ids, t.ID)
	}
	return ids
}
