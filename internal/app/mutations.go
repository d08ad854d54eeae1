package app

import (
	"time"

	"github.com/theirongolddev/rebalance/internal/ledger"
	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/store"
)

// SaveTransaction records form as a new transaction dated at (the app
// clock's now when at is zero), or replaces transaction editing when it is
// non-zero. The current mood is captured on the transaction. ok is false
// when editing names no transaction; nothing is changed then.
func (a *App) SaveTransaction(form model.TransactionForm, at time.Time, editing int64) (tx model.Transaction, ok bool, err error) {
	now := a.clock.Now()
	if at.IsZero() {
		at = now
	}

	a.mu.Lock()
	if editing != 0 {
		if _, found := ledger.FindTransaction(a.data.Transactions, editing); !found {
			a.mu.Unlock()
			return model.Transaction{}, false, nil
		}
	}
	id := ledger.NextID(now, ledger.IDs(a.data.Debts, a.data.Transactions)...)
	txs, tx, err := ledger.SaveTransaction(a.data.Transactions, form, at, a.data.Mood, editing, id)
	if err != nil {
		a.mu.Unlock()
		return model.Transaction{}, false, err
	}
	a.data.Transactions = txs
	a.mu.Unlock()

	a.persist(store.KeyTransactions)
	return tx, true, nil
}

// DeleteTransaction removes a transaction. Unknown ids are ignored.
func (a *App) DeleteTransaction(id int64) {
	a.mu.Lock()
	a.data.Transactions = ledger.RemoveTransaction(a.data.Transactions, id)
	a.mu.Unlock()
	a.persist(store.KeyTransactions)
}

// Transaction looks up a transaction by id.
func (a *App) Transaction(id int64) (model.Transaction, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return ledger.FindTransaction(a.data.Transactions, id)
}

// AddDebt creates an empty debt and returns it.
func (a *App) AddDebt(name string) model.Debt {
	now := a.clock.Now()

	a.mu.Lock()
	d := ledger.NewDebt(ledger.NextID(now, ledger.IDs(a.data.Debts, a.data.Transactions)...), name)
	a.data.Debts = ledger.AddDebt(a.data.Debts, d)
	a.mu.Unlock()

	a.persist(store.KeyDebts)
	return d
}

// UpdateDebt sets one field of a debt. Unknown ids are ignored.
func (a *App) UpdateDebt(id int64, field ledger.DebtField, value string) {
	a.mu.Lock()
	a.data.Debts = ledger.UpdateDebt(a.data.Debts, id, field, value)
	a.mu.Unlock()
	a.persist(store.KeyDebts)
}

// RemoveDebt deletes a debt. Unknown ids are ignored.
func (a *App) RemoveDebt(id int64) {
	a.mu.Lock()
	a.data.Debts = ledger.RemoveDebt(a.data.Debts, id)
	a.mu.Unlock()
	a.persist(store.KeyDebts)
}

// Debt looks up a debt by id.
func (a *App) Debt(id int64) (model.Debt, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return ledger.FindDebt(a.data.Debts, id)
}

// PayDebt applies one monthly payment to a debt and records the matching
// expense. Both collections change together or not at all. Whether a
// second payment in the same month is allowed is up to the caller; see
// ledger.IsPaidThisCalendarMonth.
func (a *App) PayDebt(id int64) (model.Transaction, error) {
	now := a.clock.Now()

	a.mu.Lock()
	debts, txs, tx, err := ledger.ApplyPayment(a.data.Debts, a.data.Transactions, id, now, a.data.Mood)
	if err != nil {
		a.mu.Unlock()
		return model.Transaction{}, err
	}
	a.data.Debts = debts
	a.data.Transactions = txs
	a.mu.Unlock()

	a.persist(store.KeyDebts, store.KeyTransactions)
	return tx, nil
}
