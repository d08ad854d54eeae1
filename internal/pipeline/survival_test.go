package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/money"
)

func TestSurvivalInfiniteWithoutCost(t *testing.T) {
	s := SurvivalFor(model.AppData{}, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, s.Runway.Infinite)
	assert.Zero(t, s.LiquidShare)
}

func TestSurvivalIncludesDebt(t *testing.T) {
	in := SurvivalInput{
		Savings:             100000,
		Investments:         50000,
		CurrentMonthBalance: 5000,
		SurvivalCost:        25000,
		MonthlyDebtPayment:  8000,
	}
	s := Survival(in)
	require.False(t, s.Runway.Infinite)
	assert.Equal(t, int64(105000), s.LiquidAssets)
	assert.Equal(t, int64(155000), s.TotalAssets)
	assert.Equal(t, int64(25000), s.EffectiveMonthlyCost)
	assert.InDelta(t, 6.2, s.Runway.Months, 1e-9)

	in.IncludeDebt = true
	s = Survival(in)
	assert.Equal(t, int64(33000), s.EffectiveMonthlyCost)
	assert.InDelta(t, 4.7, s.Runway.Months, 1e-9)
}

func TestSurvivalShares(t *testing.T) {
	s := Survival(SurvivalInput{Savings: 30000, Investments: 900000, SurvivalCost: 10000})
	assert.InDelta(t, 50.0, s.LiquidShare, 1e-9)
	assert.InDelta(t, 50.0, s.InvestShare, 1e-9)

	s = Survival(SurvivalInput{Savings: 15000, SurvivalCost: 10000})
	assert.InDelta(t, 25.0, s.LiquidShare, 1e-9)

	s = Survival(SurvivalInput{CurrentMonthBalance: -5000, SurvivalCost: 10000})
	assert.Zero(t, s.LiquidShare)
	assert.InDelta(t, -0.5, s.Runway.Months, 1e-9)
}

func TestSurvivalForUsesCurrentMonthOnly(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	data := model.AppData{
		Savings: 10000,
		Transactions: []model.Transaction{
			income(1, 2026, 3, 1, 4000),
			expense(2, 2026, 3, 2, 1000, model.Bool(true)),
			income(3, 2025, 3, 1, 99999),
		},
		Debts:    []model.Debt{{ID: 1, Remaining: 1000, MonthlyPay: 500}},
		Settings: model.Settings{SurvivalCost: money.Amount(2000), IncludeDebtInSurvival: true},
	}
	s := SurvivalFor(data, now)
	assert.Equal(t, int64(13000), s.LiquidAssets)
	assert.Equal(t, int64(2500), s.EffectiveMonthlyCost)
	assert.InDelta(t, 5.2, s.Runway.Months, 1e-9)
}
