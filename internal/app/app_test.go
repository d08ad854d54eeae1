package app

import (
	"bytes"
	"errors"
	"log"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/rebalance/internal/clock"
	"github.com/theirongolddev/rebalance/internal/ledger"
	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/store"
)

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func openStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rebalance.db")
	s, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func newApp(t *testing.T, kv KV) *App {
	t.Helper()
	return New(kv, Config{Clock: clock.NewFixed(now), Settings: DefaultSettings()})
}

// failingKV reads nothing and rejects every write.
type failingKV struct {
	mu     sync.Mutex
	writes int
}

func (f *failingKV) Get(string) ([]byte, bool, error) { return nil, false, nil }

func (f *failingKV) SaveMany(...store.Entry) error {
	f.mu.Lock()
	f.writes++
	f.mu.Unlock()
	return errors.New("disk full")
}

func TestNewDefaults(t *testing.T) {
	s, _ := openStore(t)
	a := New(s, Config{Clock: clock.NewFixed(now), Settings: DefaultSettings(), SeedExampleDebt: true})

	snap := a.Snapshot()
	assert.Nil(t, snap.Mood)
	assert.Equal(t, DefaultSettings(), snap.Settings)
	require.Len(t, snap.Debts, 1)
	assert.Equal(t, ExampleDebt(), snap.Debts[0])
	assert.NotNil(t, snap.Transactions)
}

func TestStatePersistsAcrossReopen(t *testing.T) {
	s, path := openStore(t)
	a := newApp(t, s)

	a.SetMood(model.MoodHope)
	a.SetSavings(120000)
	a.SetInvestments(50000)
	d := a.AddDebt("card")
	a.UpdateDebt(d.ID, ledger.FieldRemaining, "9,000")
	a.UpdateDebt(d.ID, ledger.FieldMonthlyPay, "3000")
	_, _, err := a.SaveTransaction(model.TransactionForm{Type: model.Income, Amount: "40000", Name: "salary"}, time.Time{}, 0)
	require.NoError(t, err)
	_, err = a.PayDebt(d.ID)
	require.NoError(t, err)
	require.NoError(t, a.PersistErr())

	want := a.Snapshot()
	require.NoError(t, s.Close())

	s2, err := store.Open(path)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()

	got := newApp(t, s2).Snapshot()
	assert.Equal(t, want, got)
}

func TestSaveTransactionCapturesMood(t *testing.T) {
	s, _ := openStore(t)
	a := newApp(t, s)

	a.SetMood(model.MoodAnxious)
	tx, _, err := a.SaveTransaction(model.TransactionForm{Amount: "120", Name: "lunch", IsNeed: true}, time.Time{}, 0)
	require.NoError(t, err)
	require.NotNil(t, tx.MoodAtTime)
	assert.Equal(t, model.MoodAnxious, *tx.MoodAtTime)

	// Later mood changes do not rewrite history.
	a.SetMood(model.MoodCalm)
	got, ok := a.Transaction(tx.ID)
	require.True(t, ok)
	assert.Equal(t, model.MoodAnxious, *got.MoodAtTime)
}

func TestSaveTransactionRejectsEmptyAmount(t *testing.T) {
	s, _ := openStore(t)
	a := newApp(t, s)
	before := a.Snapshot()

	_, _, err := a.SaveTransaction(model.TransactionForm{Name: "nothing"}, time.Time{}, 0)
	require.ErrorIs(t, err, ledger.ErrEmptyAmount)
	assert.Equal(t, before, a.Snapshot())
}

func TestEditAndDeleteTransaction(t *testing.T) {
	s, _ := openStore(t)
	a := newApp(t, s)

	tx, _, err := a.SaveTransaction(model.TransactionForm{Amount: "100", Name: "a"}, time.Time{}, 0)
	require.NoError(t, err)
	_, ok, err := a.SaveTransaction(model.TransactionForm{Amount: "250", Name: "b"}, tx.Date, tx.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	snap := a.Snapshot()
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, "b", snap.Transactions[0].Name)

	a.DeleteTransaction(tx.ID)
	a.DeleteTransaction(tx.ID)
	assert.Empty(t, a.Snapshot().Transactions)
}

func TestEditUnknownTransactionIsNoOp(t *testing.T) {
	s, _ := openStore(t)
	a := newApp(t, s)
	_, ok, err := a.SaveTransaction(model.TransactionForm{Amount: "100", Name: "a"}, time.Time{}, 0)
	require.NoError(t, err)
	require.True(t, ok)
	before := a.Snapshot()

	tx, ok, err := a.SaveTransaction(model.TransactionForm{Amount: "250", Name: "b"}, time.Time{}, 424242)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, tx.ID)
	assert.Equal(t, before, a.Snapshot())
}

func TestPayDebtScenario(t *testing.T) {
	s, _ := openStore(t)
	a := newApp(t, s)
	d := a.AddDebt("loan")
	a.UpdateDebt(d.ID, ledger.FieldRemaining, "8000")
	a.UpdateDebt(d.ID, ledger.FieldMonthlyPay, "8000")

	tx, err := a.PayDebt(d.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8000), tx.Amount.Int64())

	paid, ok := a.Debt(d.ID)
	require.True(t, ok)
	assert.Zero(t, paid.Remaining.Int64())
	assert.True(t, ledger.IsPaidThisCalendarMonth(paid, a.Now()))

	snap := a.Snapshot()
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, tx, snap.Transactions[0])
}

func TestPayDebtWithoutMonthlyPayment(t *testing.T) {
	s, _ := openStore(t)
	a := newApp(t, s)
	d := a.AddDebt("loan")
	before := a.Snapshot()

	_, err := a.PayDebt(d.ID)
	require.ErrorIs(t, err, ledger.ErrNoMonthlyPayment)
	assert.Equal(t, before, a.Snapshot())
}

func TestSnapshotIsStableAcrossMutations(t *testing.T) {
	s, _ := openStore(t)
	a := newApp(t, s)
	_, _, err := a.SaveTransaction(model.TransactionForm{Amount: "100"}, time.Time{}, 0)
	require.NoError(t, err)

	held := a.Snapshot()
	_, _, err = a.SaveTransaction(model.TransactionForm{Amount: "200"}, time.Time{}, 0)
	require.NoError(t, err)
	a.RemoveDebt(12345)

	require.Len(t, held.Transactions, 1)
	assert.Equal(t, int64(100), held.Transactions[0].Amount.Int64())
}

func TestPersistFailureKeepsMutation(t *testing.T) {
	var buf bytes.Buffer
	kv := &failingKV{}
	a := New(kv, Config{
		Clock:    clock.NewFixed(now),
		Logger:   log.New(&buf, "", 0),
		Settings: DefaultSettings(),
	})

	a.SetSavings(500)
	assert.Equal(t, int64(500), a.Snapshot().Savings.Int64())
	require.Error(t, a.PersistErr())
	assert.Contains(t, buf.String(), "disk full")
	assert.Equal(t, 1, kv.writes)
}

func TestViews(t *testing.T) {
	s, _ := openStore(t)
	a := newApp(t, s)
	a.SetSavings(10000)
	_, _, err := a.SaveTransaction(model.TransactionForm{Type: model.Income, Amount: "5000"}, time.Time{}, 0)
	require.NoError(t, err)
	_, _, err = a.SaveTransaction(model.TransactionForm{Amount: "2000", IsNeed: true}, time.Time{}, 0)
	require.NoError(t, err)

	m := a.CurrentMonth()
	assert.Equal(t, int64(3000), m.Balance)
	assert.Len(t, a.Months(), 1)
	assert.Len(t, a.Calendar(2026, 3), 31)
	assert.Len(t, a.Day(2026, 3, 10).Items, 2)

	surv := a.Survival()
	assert.Equal(t, int64(13000), surv.LiquidAssets)
	assert.InDelta(t, 0.5, surv.Runway.Months, 1e-9)

	assert.Zero(t, a.Debts().TotalOutstanding)
	assert.False(t, a.ToggleIncludeDebt())
}

func TestImportReplacesState(t *testing.T) {
	s, _ := openStore(t)
	a := newApp(t, s)
	a.AddDebt("old")

	a.Import(model.AppData{Savings: 42, Settings: model.Settings{SurvivalCost: 1}})
	snap := a.Snapshot()
	assert.Empty(t, snap.Debts)
	assert.NotNil(t, snap.Debts)
	assert.Equal(t, int64(42), snap.Savings.Int64())
}
