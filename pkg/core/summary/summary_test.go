package summary

import (
	"testing"

	"fincompare/pkg/core/bank"
	"fincompare/pkg/core/household"
	"fincompare/pkg/core/macro"
	"fincompare/pkg/core/sme"
	"fincompare/pkg/core/wealth"

	"github.com/stretchr/testify/require"
)

func TestBuildDeltas(t *testing.T) {
	in := Inputs{
		Household: household.Result{
			Conventional: household.PathResult{TotalFinanceCost: 180000},
			CoOwnership:  household.PathResult{TotalFinanceCost: 150000},
		},
		SME: sme.Result{
			Debt:        sme.ModeResult{SurvivalPct: 78, SevereShockPct: 40},
			ProfitShare: sme.ModeResult{SurvivalPct: 91, SevereShockPct: 25},
		},
		Macro: macro.Result{
			Conventional: macro.SystemResult{StabilityScore: 64, AvgBorrowingCost: 5.1, SMEDefaultRatePct: 22},
			Islamic:      macro.SystemResult{StabilityScore: 72, AvgBorrowingCost: 4.2, SMEDefaultRatePct: 9},
		},
		WealthConventional: wealth.Result{Top20SharePct: 52, Bottom40SharePct: 12, InequalityScore: 58},
		WealthIslamic:      wealth.Result{Top20SharePct: 44, Bottom40SharePct: 20, InequalityScore: 71},
		BankConventional:   bank.Result{ShortfallProbPct: 11.4},
		BankIslamic:        bank.Result{ShortfallProbPct: 8.1},
	}
	in.Housing.HouseholdsCleared = 5400

	res := Build(in)

	require.InDelta(t, 30000, res.FinanceCostSaving, 1e-9)
	require.InDelta(t, 13, res.SurvivalGainPct, 1e-9)
	require.InDelta(t, 15, res.SevereShockReductionPct, 1e-9)
	require.InDelta(t, 8, res.StabilityScoreGain, 1e-9)
	require.InDelta(t, 0.9, res.BorrowingCostDelta, 1e-9)
	require.InDelta(t, 13, res.SMEDefaultRateDelta, 1e-9)
	require.InDelta(t, 8, res.Bottom40GainPct, 1e-9)
	require.InDelta(t, 8, res.Top20ReductionPct, 1e-9)
	require.InDelta(t, 13, res.InequalityScoreGain, 1e-9)
	require.InDelta(t, 3.3, res.ShortfallProbReductionPct, 1e-9)
	require.Equal(t, 5400.0, res.HouseholdsSupported)

	// Elasticity pass-through: 8 points of bottom-40 gain.
	require.InDelta(t, 8*0.45, res.EstPovertyReductionPct, 1e-9)
	require.InDelta(t, 8*0.30, res.EstCrimeReductionPct, 1e-9)
	require.InDelta(t, 8*0.25, res.EstConsumptionBoostPct, 1e-9)
	require.InDelta(t, 8*0.15, res.EstGDPBoostPct, 1e-9)
}

func TestBuildZeroInputs(t *testing.T) {
	// An empty record produces an all-zero summary, never NaN.
	res := Build(Inputs{})
	require.Zero(t, res.FinanceCostSaving)
	require.Zero(t, res.Bottom40GainPct)
	require.Zero(t, res.EstPovertyReductionPct)
}
