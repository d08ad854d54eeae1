// Package app is the application state container. It owns the canonical
// collections, applies every mutation as a whole-collection replacement and
// then persists the result.
package app

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/theirongolddev/rebalance/internal/clock"
	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/money"
	"github.com/theirongolddev/rebalance/internal/store"
)

// KV is the persistence the app needs.
type KV interface {
	store.Getter
	SaveMany(entries ...store.Entry) error
}

// Config controls loading defaults and collaborators.
type Config struct {
	Clock  clock.Clock
	Logger *log.Logger

	// Settings is used when the store holds no settings yet.
	Settings model.Settings
	// SeedExampleDebt adds a sample debt when the store holds no debts.
	SeedExampleDebt bool
}

// DefaultSettings matches a fresh install.
func DefaultSettings() model.Settings {
	return model.Settings{IncludeDebtInSurvival: true, SurvivalCost: 25000}
}

// ExampleDebt is the sample debt a fresh install starts with.
func ExampleDebt() model.Debt {
	return model.Debt{
		ID:         1,
		Name:       "Personal loan (example)",
		Total:      300000,
		Remaining:  240000,
		MonthlyPay: 8000,
		Interest:   "3.5",
		Date:       "5",
	}
}

// App holds the current state. All methods are safe for concurrent use.
type App struct {
	kv    KV
	clock clock.Clock
	log   *log.Logger

	mu   sync.RWMutex
	data model.AppData

	persistMu sync.Mutex
	lastErr   error
}

// New loads state from kv. Absent or unreadable values fall back to
// defaults; New never fails.
func New(kv KV, cfg Config) *App {
	if cfg.Clock == nil {
		cfg.Clock = clock.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}

	var seed []model.Debt
	if cfg.SeedExampleDebt {
		seed = []model.Debt{ExampleDebt()}
	}

	a := &App{kv: kv, clock: cfg.Clock, log: cfg.Logger}
	a.data = model.AppData{
		Mood:         store.Load[*model.Mood](kv, store.KeyMood, nil),
		Savings:      store.Load[money.Amount](kv, store.KeySavings, 0),
		Investments:  store.Load[money.Amount](kv, store.KeyInvestments, 0),
		Debts:        store.Load(kv, store.KeyDebts, seed),
		Transactions: store.Load(kv, store.KeyTransactions, []model.Transaction{}),
		Settings:     store.Load(kv, store.KeySettings, cfg.Settings),
	}
	if a.data.Transactions == nil {
		a.data.Transactions = []model.Transaction{}
	}
	if a.data.Debts == nil {
		a.data.Debts = []model.Debt{}
	}
	return a
}

// Now is the app clock's current time.
func (a *App) Now() time.Time { return a.clock.Now() }

// Snapshot returns the current state. The returned slices are never
// modified by the app and must not be modified by the caller.
func (a *App) Snapshot() model.AppData {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.data
}

// PersistErr returns the error from the most recent failed write, or nil
// once a later write succeeds.
func (a *App) PersistErr() error {
	a.persistMu.Lock()
	defer a.persistMu.Unlock()
	return a.lastErr
}

// persist writes the current values of keys. Writes are serialized and
// always read the latest state, so a slow earlier write can never land
// after a newer one. A failure is logged and kept for PersistErr; the
// in-memory change stands either way.
func (a *App) persist(keys ...string) {
	a.persistMu.Lock()
	defer a.persistMu.Unlock()

	a.mu.RLock()
	entries := make([]store.Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, store.Entry{Key: k, Value: a.valueFor(k)})
	}
	a.mu.RUnlock()

	if err := a.kv.SaveMany(entries...); err != nil {
		a.lastErr = err
		a.log.Printf("rebalance: persisting %v: %v", keys, err)
		return
	}
	a.lastErr = nil
}

// valueFor must be called with mu held.
func (a *App) valueFor(key string) any {
	switch key {
	case store.KeyMood:
		return a.data.Mood
	case store.KeySavings:
		return a.data.Savings
	case store.KeyInvestments:
		return a.data.Investments
	case store.KeyDebts:
		return a.data.Debts
	case store.KeyTransactions:
		return a.data.Transactions
	case store.KeySettings:
		return a.data.Settings
	}
	return nil
}

var allKeys = []string{
	store.KeyMood, store.KeySavings, store.KeyInvestments,
	store.KeyDebts, store.KeyTransactions, store.KeySettings,
}

// SetMood records the current mood. The empty mood clears it.
func (a *App) SetMood(m model.Mood) {
	a.mu.Lock()
	a.data.Mood = model.MoodPtr(m)
	a.mu.Unlock()
	a.persist(store.KeyMood)
}

// SetSavings sets the savings balance.
func (a *App) SetSavings(v int64) {
	a.mu.Lock()
	a.data.Savings = money.Amount(v)
	a.mu.Unlock()
	a.persist(store.KeySavings)
}

// SetInvestments sets the investment balance.
func (a *App) SetInvestments(v int64) {
	a.mu.Lock()
	a.data.Investments = money.Amount(v)
	a.mu.Unlock()
	a.persist(store.KeyInvestments)
}

// SetSettings replaces the settings.
func (a *App) SetSettings(s model.Settings) {
	a.mu.Lock()
	a.data.Settings = s
	a.mu.Unlock()
	a.persist(store.KeySettings)
}

// ToggleIncludeDebt flips whether debt payments count toward the monthly
// survival cost and returns the new value.
func (a *App) ToggleIncludeDebt() bool {
	a.mu.Lock()
	a.data.Settings.IncludeDebtInSurvival = !a.data.Settings.IncludeDebtInSurvival
	v := a.data.Settings.IncludeDebtInSurvival
	a.mu.Unlock()
	a.persist(store.KeySettings)
	return v
}

// Import replaces the whole state with data.
func (a *App) Import(data model.AppData) {
	if data.Debts == nil {
		data.Debts = []model.Debt{}
	}
	if data.Transactions == nil {
		data.Transactions = []model.Transaction{}
	}
	a.mu.Lock()
	a.data = data
	a.mu.Unlock()
	a.persist(allKeys...)
}
