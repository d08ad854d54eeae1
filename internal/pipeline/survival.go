package pipeline

import (
	"math"
	"time"

	"github.com/theirongolddev/rebalance/internal/ledger"
	"github.com/theirongolddev/rebalance/internal/model"
)

// cushionMonths sizes the reference cushion the asset shares are drawn
// against; each share is capped at maxShare percent.
const (
	cushionMonths = 6
	maxShare      = 50.0
)

// SurvivalInput carries everything the runway projection reads.
type SurvivalInput struct {
	Savings             int64
	Investments         int64
	CurrentMonthBalance int64
	SurvivalCost        int64
	MonthlyDebtPayment  int64
	IncludeDebt         bool
}

// Survival projects how many months total assets cover the effective
// monthly cost. With no cost the runway is infinite.
func Survival(in SurvivalInput) model.SurvivalStats {
	s := model.SurvivalStats{
		LiquidAssets:         in.Savings + in.CurrentMonthBalance,
		EffectiveMonthlyCost: in.SurvivalCost,
	}
	s.TotalAssets = s.LiquidAssets + in.Investments
	if in.IncludeDebt {
		s.EffectiveMonthlyCost += in.MonthlyDebtPayment
	}

	if s.EffectiveMonthlyCost > 0 {
		months := float64(s.TotalAssets) / float64(s.EffectiveMonthlyCost)
		s.Runway = model.Runway{Months: math.Round(months*10) / 10}
	} else {
		s.Runway = model.Runway{Infinite: true}
	}

	cushion := s.EffectiveMonthlyCost * cushionMonths
	s.LiquidShare = share(s.LiquidAssets, cushion)
	s.InvestShare = share(in.Investments, cushion)
	return s
}

// SurvivalFor runs Survival over a full snapshot, using the calendar month
// containing now as the current month.
func SurvivalFor(data model.AppData, now time.Time) model.SurvivalStats {
	current := MonthStats(data.Transactions, now.Year(), int(now.Month()))
	return Survival(SurvivalInput{
		Savings:             data.Savings.Int64(),
		Investments:         data.Investments.Int64(),
		CurrentMonthBalance: current.Balance,
		SurvivalCost:        data.Settings.SurvivalCost.Int64(),
		MonthlyDebtPayment:  ledger.TotalMonthlyPayment(data.Debts),
		IncludeDebt:         data.Settings.IncludeDebtInSurvival,
	})
}

func share(amount, cushion int64) float64 {
	if amount <= 0 {
		return 0
	}
	if cushion <= 0 {
		return maxShare
	}
	return math.Min(float64(amount)/float64(cushion)*100, maxShare)
}
