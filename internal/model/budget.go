package model

// Runway is a survival-time projection: either a finite number of months or
// infinite (no monthly cost to cover).
type Runway struct {
	Infinite bool
	Months   float64 // one decimal place; meaningless when Infinite
}

// SurvivalStats holds the inputs and result of a runway projection.
type SurvivalStats struct {
	LiquidAssets         int64
	TotalAssets          int64
	EffectiveMonthlyCost int64
	Runway               Runway
	LiquidShare          float64 // percent of a six-month cushion, capped at 50
	InvestShare          float64
}
