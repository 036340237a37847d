// Package housing derives zakat-funded arrears relief from the wealth
// simulator's zakat flow and the housing calibration. No simulation loop;
// one pure derivation.
package housing

import (
	"math"

	"fincompare/pkg/core/calibration"
)

// Result quantifies how far an annual zakat flow goes toward clearing
// mortgage arrears for at-risk households.
type Result struct {
	AnnualZakatRevenue   float64 `json:"annual_zakat_revenue"`
	HousingFund          float64 `json:"housing_fund"`
	HouseholdsCleared    float64 `json:"households_cleared"` // uncapped: fund / average arrears
	CoverageFraction     float64 `json:"coverage_fraction"`  // capped at 1
	DefaultRateReduction float64 `json:"default_rate_reduction"`
}

// Derive computes the relief record from the average annual zakat share
// (percentage of total wealth). A zero or negative share means no wealth
// data and yields the zero result.
func Derive(zakatShareAvgPct float64, h calibration.HousingParams) Result {
	if zakatShareAvgPct <= 0 {
		return Result{}
	}

	revenue := zakatShareAvgPct / 100 * h.EligibleWealth
	fund := revenue * h.ZakatHousingFraction

	var cleared float64
	if h.AvgArrears > 0 {
		cleared = fund / h.AvgArrears
	}

	var coverage float64
	if h.AtRiskHouseholds > 0 {
		coverage = math.Min(cleared/h.AtRiskHouseholds, 1)
	}

	return Result{
		AnnualZakatRevenue:   revenue,
		HousingFund:          fund,
		HouseholdsCleared:    cleared,
		CoverageFraction:     coverage,
		DefaultRateReduction: h.DefaultProb * coverage,
	}
}
