package ledger

import (
	"strings"
	"time"

	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/money"
)

// DefaultTxName labels a transaction saved without a name.
const DefaultTxName = "Untitled"

// NewTransaction builds a transaction from form input recorded at the given
// instant. The calendar fields come from at's location; Date is stored in
// UTC at millisecond precision. Income never carries a need/want flag.
func NewTransaction(form model.TransactionForm, at time.Time, mood *model.Mood, id int64) (model.Transaction, error) {
	raw := strings.TrimSpace(form.Amount)
	if raw == "" {
		return model.Transaction{}, ErrEmptyAmount
	}
	amount := money.SafeInt(raw)
	switch {
	case amount < 0:
		return model.Transaction{}, ErrNegativeAmount
	case amount == 0:
		return model.Transaction{}, ErrEmptyAmount
	}

	typ := form.Type
	if typ == "" {
		typ = model.Expense
	}
	if !typ.Valid() {
		return model.Transaction{}, ErrBadType
	}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		name = DefaultTxName
	}

	var isNeed *bool
	if typ == model.Expense {
		isNeed = model.Bool(form.IsNeed)
	}

	feelings := make([]string, len(form.Feelings))
	copy(feelings, form.Feelings)

	return model.Transaction{
		ID:         id,
		Date:       at.UTC().Truncate(time.Millisecond),
		Day:        at.Day(),
		Month:      int(at.Month()),
		Year:       at.Year(),
		Type:       typ,
		Name:       name,
		Amount:     money.Amount(amount),
		IsNeed:     isNeed,
		Feelings:   feelings,
		Note:       form.Note,
		MoodAtTime: mood,
	}, nil
}

// SaveTransaction validates form and either replaces the transaction with
// id editing (when editing != 0) or prepends a new one with id newID.
func SaveTransaction(
	txs []model.Transaction,
	form model.TransactionForm,
	at time.Time,
	mood *model.Mood,
	editing, newID int64,
) ([]model.Transaction, model.Transaction, error) {
	id := newID
	if editing != 0 {
		id = editing
	}
	tx, err := NewTransaction(form, at, mood, id)
	if err != nil {
		return txs, model.Transaction{}, err
	}
	if editing != 0 {
		return UpdateTransaction(txs, editing, tx), tx, nil
	}
	return AddTransaction(txs, tx), tx, nil
}

// AddTransaction prepends tx so the newest entry comes first.
func AddTransaction(txs []model.Transaction, tx model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(txs)+1)
	out = append(out, tx)
	return append(out, txs...)
}

// UpdateTransaction replaces the transaction with the given id wholesale.
func UpdateTransaction(txs []model.Transaction, id int64, tx model.Transaction) []model.Transaction {
	tx.ID = id
	out := make([]model.Transaction, len(txs))
	copy(out, txs)
	for i := range out {
		if out[i].ID == id {
			out[i] = tx
		}
	}
	return out
}

// RemoveTransaction drops the transaction with the given id, if any.
func RemoveTransaction(txs []model.Transaction, id int64) []model.Transaction {
	out := make([]model.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// FindTransaction returns the transaction with the given id.
func FindTransaction(txs []model.Transaction, id int64) (model.Transaction, bool) {
	for _, t := range txs {
		if t.ID == id {
			return t, true
		}
	}
	return model.Transaction{}, false
}

// ByDay returns the transactions recorded on one calendar day, in list order.
func ByDay(txs []model.Transaction, day, month, year int) []model.Transaction {
	var out []model.Transaction
	for _, t := range txs {
		if t.Day == day && t.Month == month && t.Year == year {
			out = append(out, t)
		}
	}
	return out
}

// ByMonth returns the transactions recorded in one calendar month.
func ByMonth(txs []model.Transaction, month, year int) []model.Transaction {
	var out []model.Transaction
	for _, t := range txs {
		if t.InMonth(year, month) {
			out = append(out, t)
		}
	}
	return out
}

// FormFrom fills a form from an existing transaction, for editing.
func FormFrom(tx model.Transaction) model.TransactionForm {
	feelings := make([]string, len(tx.Feelings))
	copy(feelings, tx.Feelings)
	return model.TransactionForm{
		Type:     tx.Type,
		Amount:   tx.Amount.String(),
		Name:     tx.Name,
		Note:     tx.Note,
		IsNeed:   tx.IsNeed == nil || *tx.IsNeed,
		Feelings: feelings,
	}
}
