// Package bank computes balance-sheet capital, liquidity and stress-loss
// metrics for a stylized bank under a named probability-of-default scenario.
package bank

import (
	"fmt"

	"fincompare/pkg/core/calibration"
	"fincompare/pkg/core/mathx"
)

// System selects the balance-sheet structure being stressed.
type System string

const (
	SystemConventional System = "conventional"
	SystemIslamic      System = "islamic"
)

// Fixed regulatory-style constants.
const (
	lossGivenDefault = 0.4
	// LossCoverageSentinel is reported when total expected loss is zero:
	// equity covers "no measurable risk".
	LossCoverageSentinel = 999
)

// Risk weights per asset class.
var riskWeights = assetVector{Financing: 0.75, ProfitShare: 1.00, Sukuk: 0.20, Cash: 0.00}

// Base annual probabilities of default per asset class. Asset-backed
// structures carry slightly lower base PDs per class.
var basePD = map[System]assetVector{
	SystemConventional: {Financing: 0.040, ProfitShare: 0.055, Sukuk: 0.012, Cash: 0},
	SystemIslamic:      {Financing: 0.030, ProfitShare: 0.045, Sukuk: 0.009, Cash: 0},
}

// assetVector holds one value per asset class: term financing (murabaha or
// conventional loans), profit-share (musharakah), sukuk-equivalent
// securities, and cash.
type assetVector struct {
	Financing   float64 `json:"financing"`
	ProfitShare float64 `json:"profit_share"`
	Sukuk       float64 `json:"sukuk"`
	Cash        float64 `json:"cash"`
}

// fundingVector holds one value per funding class.
type fundingVector struct {
	Deposits float64 `json:"deposits"` // mudarabah investment accounts
	Current  float64 `json:"current"`
	Equity   float64 `json:"equity"`
}

// Inputs are the raw balance-sheet fields. Mix percentages need not sum to
// 100; each group is normalized.
type Inputs struct {
	TotalAssets    float64 `json:"total_assets"`
	FinancingPct   float64 `json:"financing_pct"`
	ProfitSharePct float64 `json:"profit_share_pct"`
	SukukPct       float64 `json:"sukuk_pct"`
	CashPct        float64 `json:"cash_pct"`
	DepositsPct    float64 `json:"deposits_pct"`
	CurrentPct     float64 `json:"current_pct"`
	EquityPct      float64 `json:"equity_pct"`
	ScenarioID     string  `json:"scenario_id"`
	System         System  `json:"system"`
}

// Result is the full stress record.
type Result struct {
	AssetMix         assetVector   `json:"asset_mix"`   // normalized fractions
	FundingMix       fundingVector `json:"funding_mix"` // normalized fractions
	RWA              float64       `json:"rwa"`
	Capital          float64       `json:"capital"`
	CapitalRatio     float64       `json:"capital_ratio"`
	HQLA             float64       `json:"hqla"`
	LiquidityRatio   float64       `json:"liquidity_ratio"`
	ExpectedLoss     float64       `json:"expected_loss"`
	LossRatioPct     float64       `json:"loss_ratio_pct"`
	LossCoverage     float64       `json:"loss_coverage"`
	ShortfallProbPct float64       `json:"shortfall_prob_pct"`
}

// Stress computes the balance-sheet record. The only error is an unknown
// scenario or system identifier; numeric degeneracy (zero assets, zero
// mixes) degrades to guarded zero outputs.
func Stress(in Inputs, reg *calibration.Registry) (Result, error) {
	scen, err := reg.BankScenario(in.ScenarioID)
	if err != nil {
		return Result{}, err
	}

	pd, ok := basePD[in.System]
	if !ok {
		return Result{}, fmt.Errorf("bank: unknown system %q", in.System)
	}
	pdMult := scen.PDMultConventional
	if in.System == SystemIslamic {
		pdMult = scen.PDMultIslamic
	}

	assets := normalizeAssets(in)
	funding := normalizeFunding(in)
	total := in.TotalAssets

	exposure := assetVector{
		Financing:   total * assets.Financing,
		ProfitShare: total * assets.ProfitShare,
		Sukuk:       total * assets.Sukuk,
		Cash:        total * assets.Cash,
	}

	rwa := exposure.Financing*riskWeights.Financing +
		exposure.ProfitShare*riskWeights.ProfitShare +
		exposure.Sukuk*riskWeights.Sukuk +
		exposure.Cash*riskWeights.Cash

	capital := total * funding.Equity
	capitalRatio := 0.0
	if rwa > 0 {
		capitalRatio = capital / rwa
	}

	hqla := exposure.Sukuk + exposure.Cash
	liquidityRatio := 0.0
	if total > 0 {
		liquidityRatio = hqla / total
	}

	loss := lossGivenDefault * pdMult * (exposure.Financing*pd.Financing +
		exposure.ProfitShare*pd.ProfitShare +
		exposure.Sukuk*pd.Sukuk +
		exposure.Cash*pd.Cash)

	lossRatio := 0.0
	if total > 0 {
		lossRatio = 100 * loss / total
	}

	coverage := float64(LossCoverageSentinel)
	if loss > 0 {
		coverage = capital / loss
	}

	shortfall := mathx.Clamp(1/(coverage+0.1), 0, 1) * scen.ShortfallScale * 100

	return Result{
		AssetMix:         assets,
		FundingMix:       funding,
		RWA:              rwa,
		Capital:          capital,
		CapitalRatio:     capitalRatio,
		HQLA:             hqla,
		LiquidityRatio:   liquidityRatio,
		ExpectedLoss:     loss,
		LossRatioPct:     lossRatio,
		LossCoverage:     coverage,
		ShortfallProbPct: shortfall,
	}, nil
}

// normalizeAssets scales the four asset percentages to fractions summing to
// 1. An all-zero mix is treated as a unit total so the output stays zero
// instead of NaN.
func normalizeAssets(in Inputs) assetVector {
	total := in.FinancingPct + in.ProfitSharePct + in.SukukPct + in.CashPct
	if total == 0 {
		total = 1
	}
	return assetVector{
		Financing:   in.FinancingPct / total,
		ProfitShare: in.ProfitSharePct / total,
		Sukuk:       in.SukukPct / total,
		Cash:        in.CashPct / total,
	}
}

func normalizeFunding(in Inputs) fundingVector {
	total := in.DepositsPct + in.CurrentPct + in.EquityPct
	if total == 0 {
		total = 1
	}
	return fundingVector{
		Deposits: in.DepositsPct / total,
		Current:  in.CurrentPct / total,
		Equity:   in.EquityPct / total,
	}
}
