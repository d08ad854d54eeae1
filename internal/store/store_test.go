package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/rebalance/internal/model"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "rebalance.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestLoadAbsentKeyReturnsDefault(t *testing.T) {
	s, _ := openTemp(t)
	def := model.Settings{IncludeDebtInSurvival: true, SurvivalCost: 25000}
	assert.Equal(t, def, Load(s, KeySettings, def))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := openTemp(t)
	debts := []model.Debt{{ID: 1, Name: "card", Remaining: 1200, MonthlyPay: 300, Interest: "15", Date: "20"}}

	require.NoError(t, s.Save(KeyDebts, debts))
	assert.Equal(t, debts, Load[[]model.Debt](s, KeyDebts, nil))

	debts[0].Remaining = 900
	require.NoError(t, s.Save(KeyDebts, debts))
	assert.Equal(t, debts, Load[[]model.Debt](s, KeyDebts, nil))

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{KeyDebts}, keys)
}

func TestLoadMalformedFallsBack(t *testing.T) {
	s, path := openTemp(t)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	_, err = db.Exec(`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, '')`, KeyTransactions, `[{"id": oops`)
	require.NoError(t, err)

	def := []model.Transaction{}
	assert.Equal(t, def, Load(s, KeyTransactions, def))
}

func TestLoadTolerantAmounts(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Save(KeyDebts, []map[string]any{
		{"id": 1, "name": "old", "total": "300,000", "remaining": "240000", "monthlyPay": nil, "interest": "3.5", "date": "5"},
	}))

	got := Load[[]model.Debt](s, KeyDebts, nil)
	require.Len(t, got, 1)
	assert.Equal(t, int64(300000), got[0].Total.Int64())
	assert.Equal(t, int64(240000), got[0].Remaining.Int64())
	assert.Zero(t, got[0].MonthlyPay.Int64())
}

func TestLoadKeepsDebtsWithLegacyFields(t *testing.T) {
	s, path := openTemp(t)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	_, err = db.Exec(`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, '')`, KeyDebts,
		`[{"id":1,"name":"card","remaining":900,"interest":15,"date":5},{"id":2,"name":"loan","remaining":"4,000","interest":"3.5","date":"20"}]`)
	require.NoError(t, err)

	seed := []model.Debt{{ID: 99, Name: "seed"}}
	got := Load(s, KeyDebts, seed)
	require.Len(t, got, 2)
	assert.Equal(t, "card", got[0].Name)
	assert.Equal(t, "15", got[0].Interest)
	assert.Equal(t, "5", got[0].Date)
	assert.Equal(t, int64(4000), got[1].Remaining.Int64())
}

func TestLoadKeepsTransactionsWithEmptyDate(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Save(KeyTransactions, []map[string]any{
		{"id": 1, "date": "", "day": 5, "month": 3, "year": 2026, "type": "expense", "amount": 120},
		{"id": 2, "date": "2026-03-06T10:00:00Z", "day": 6, "month": 3, "year": 2026, "type": "income", "amount": 500},
	}))

	got := Load[[]model.Transaction](s, KeyTransactions, nil)
	require.Len(t, got, 2)
	assert.True(t, got[0].Date.IsZero())
	assert.Equal(t, 5, got[0].Day)
	assert.Equal(t, int64(500), got[1].Amount.Int64())
}

func TestSaveManyAndDelete(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.SaveMany(
		Entry{Key: KeySavings, Value: 100},
		Entry{Key: KeyInvestments, Value: 200},
	))
	assert.Equal(t, int64(100), Load[int64](s, KeySavings, 0))
	assert.Equal(t, int64(200), Load[int64](s, KeyInvestments, 0))

	require.NoError(t, s.Delete(KeySavings))
	require.NoError(t, s.Delete(KeySavings))
	assert.Equal(t, int64(-1), Load[int64](s, KeySavings, -1))
}

func TestFreshStoreIsCurrentVersion(t *testing.T) {
	s, _ := openTemp(t)
	v, err := s.Version()
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, v)
}

func TestMigrateFoldsLegacySurvival(t *testing.T) {
	s, path := openTemp(t)

	require.NoError(t, s.Save(KeyLegacySurvival, "32,000"))
	require.NoError(t, s.Save(KeySettings, map[string]any{"includeDebtInSurvival": false}))
	require.NoError(t, s.setVersion(1))
	require.NoError(t, s.Close())

	s, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	got := Load(s, KeySettings, model.Settings{})
	assert.Equal(t, model.Settings{IncludeDebtInSurvival: false, SurvivalCost: 32000}, got)

	v, err := s.Version()
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, v)
}

func TestMigrateKeepsExistingSurvivalCost(t *testing.T) {
	s, _ := openTemp(t)

	require.NoError(t, s.Save(KeyLegacySurvival, 10))
	require.NoError(t, s.Save(KeySettings, model.Settings{IncludeDebtInSurvival: true, SurvivalCost: 18000}))
	require.NoError(t, s.setVersion(1))
	require.NoError(t, s.Migrate())

	got := Load(s, KeySettings, model.Settings{})
	assert.Equal(t, int64(18000), got.SurvivalCost.Int64())
}

func TestMigrateWithoutSettingsCreatesThem(t *testing.T) {
	s, _ := openTemp(t)

	require.NoError(t, s.Save(KeyLegacySurvival, 27500))
	require.NoError(t, s.setVersion(0))
	require.NoError(t, s.Migrate())

	got := Load(s, KeySettings, model.Settings{})
	assert.Equal(t, model.Settings{IncludeDebtInSurvival: true, SurvivalCost: 27500}, got)
}
