package housing

import (
	"testing"

	"fincompare/pkg/core/calibration"

	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	h := calibration.HousingParams{
		DefaultProb:          0.012,
		EligibleWealth:       1.0e12,
		ZakatHousingFraction: 0.10,
		AvgArrears:           4000,
		AtRiskHouseholds:     100000,
	}

	// 0.02% of 1tn = 200m revenue; 10% to housing = 20m fund;
	// 20m / 4000 = 5000 households; coverage = 5000/100000 = 5%;
	// default reduction = 0.012 * 0.05 = 0.0006.
	res := Derive(0.02, h)
	require.InDelta(t, 2.0e8, res.AnnualZakatRevenue, 1)
	require.InDelta(t, 2.0e7, res.HousingFund, 1)
	require.InDelta(t, 5000, res.HouseholdsCleared, 1e-6)
	require.InDelta(t, 0.05, res.CoverageFraction, 1e-9)
	require.InDelta(t, 0.0006, res.DefaultRateReduction, 1e-12)
}

func TestDeriveCoverageCap(t *testing.T) {
	h := calibration.HousingParams{
		DefaultProb:          0.012,
		EligibleWealth:       1.0e12,
		ZakatHousingFraction: 0.50,
		AvgArrears:           1000,
		AtRiskHouseholds:     1000,
	}

	// Fund dwarfs the at-risk pool: households cleared stays uncapped while
	// coverage saturates at 1.
	res := Derive(0.5, h)
	require.Greater(t, res.HouseholdsCleared, h.AtRiskHouseholds)
	require.Equal(t, 1.0, res.CoverageFraction)
	require.Equal(t, h.DefaultProb, res.DefaultRateReduction)
}

func TestDeriveDegenerate(t *testing.T) {
	h := calibration.NewRegistry()
	p, err := h.Profile("stylised")
	require.NoError(t, err)

	require.Equal(t, Result{}, Derive(0, p.Housing))
	require.Equal(t, Result{}, Derive(-1, p.Housing))

	// Zero arrears or at-risk counts guard the divisions.
	res := Derive(0.02, calibration.HousingParams{EligibleWealth: 1e12})
	require.Zero(t, res.HouseholdsCleared)
	require.Zero(t, res.CoverageFraction)
}
