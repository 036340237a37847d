// Package summary folds every engine's output into the comparative deltas
// and illustrative social-impact estimates the host renders. It performs no
// simulation of its own.
package summary

import (
	"fincompare/pkg/core/bank"
	"fincompare/pkg/core/household"
	"fincompare/pkg/core/housing"
	"fincompare/pkg/core/macro"
	"fincompare/pkg/core/sme"
	"fincompare/pkg/core/wealth"
)

// Illustrative elasticities: estimated effect per percentage point gained by
// the bottom-40% wealth share. Hand-set constants, not econometric output.
const (
	povertyElasticity     = 0.45
	crimeElasticity       = 0.30
	consumptionElasticity = 0.25
	gdpElasticity         = 0.15
)

// Inputs carries each engine's output for both systems.
type Inputs struct {
	Household household.Result
	SME       sme.Result
	Macro     macro.Result
	WealthConventional wealth.Result
	WealthIslamic      wealth.Result
	Housing   housing.Result
	BankConventional bank.Result
	BankIslamic      bank.Result
}

// Result holds the headline deltas, each signed so that a positive value
// favors the asset-backed system.
type Result struct {
	// Household: lifetime finance-cost saving of co-ownership vs the loan.
	FinanceCostSaving float64 `json:"finance_cost_saving"`

	// SME: survival-rate gain of profit-share finance, percentage points.
	SurvivalGainPct float64 `json:"survival_gain_pct"`
	SevereShockReductionPct float64 `json:"severe_shock_reduction_pct"`

	// Macro.
	StabilityScoreGain  float64 `json:"stability_score_gain"`
	BorrowingCostDelta  float64 `json:"borrowing_cost_delta"`
	SMEDefaultRateDelta float64 `json:"sme_default_rate_delta"`

	// Wealth distribution, percentage points.
	Bottom40GainPct      float64 `json:"bottom40_gain_pct"`
	Top20ReductionPct    float64 `json:"top20_reduction_pct"`
	InequalityScoreGain  float64 `json:"inequality_score_gain"`

	// Bank stress.
	ShortfallProbReductionPct float64 `json:"shortfall_prob_reduction_pct"`

	// Housing support pass-through.
	HouseholdsSupported float64 `json:"households_supported"`

	// Elasticity-based social estimates, driven by the bottom-40 gain.
	EstPovertyReductionPct  float64 `json:"est_poverty_reduction_pct"`
	EstCrimeReductionPct    float64 `json:"est_crime_reduction_pct"`
	EstConsumptionBoostPct  float64 `json:"est_consumption_boost_pct"`
	EstGDPBoostPct          float64 `json:"est_gdp_boost_pct"`
}

// Build computes the comparison record from already-computed engine outputs.
func Build(in Inputs) Result {
	bottom40Gain := in.WealthIslamic.Bottom40SharePct - in.WealthConventional.Bottom40SharePct

	return Result{
		FinanceCostSaving: in.Household.Conventional.TotalFinanceCost - in.Household.CoOwnership.TotalFinanceCost,

		SurvivalGainPct:         in.SME.ProfitShare.SurvivalPct - in.SME.Debt.SurvivalPct,
		SevereShockReductionPct: in.SME.Debt.SevereShockPct - in.SME.ProfitShare.SevereShockPct,

		StabilityScoreGain:  in.Macro.Islamic.StabilityScore - in.Macro.Conventional.StabilityScore,
		BorrowingCostDelta:  in.Macro.Conventional.AvgBorrowingCost - in.Macro.Islamic.AvgBorrowingCost,
		SMEDefaultRateDelta: in.Macro.Conventional.SMEDefaultRatePct - in.Macro.Islamic.SMEDefaultRatePct,

		Bottom40GainPct:     bottom40Gain,
		Top20ReductionPct:   in.WealthConventional.Top20SharePct - in.WealthIslamic.Top20SharePct,
		InequalityScoreGain: in.WealthIslamic.InequalityScore - in.WealthConventional.InequalityScore,

		ShortfallProbReductionPct: in.BankConventional.ShortfallProbPct - in.BankIslamic.ShortfallProbPct,

		HouseholdsSupported: in.Housing.HouseholdsCleared,

		EstPovertyReductionPct: bottom40Gain * povertyElasticity,
		EstCrimeReductionPct:   bottom40Gain * crimeElasticity,
		EstConsumptionBoostPct: bottom40Gain * consumptionElasticity,
		EstGDPBoostPct:         bottom40Gain * gdpElasticity,
	}
}
