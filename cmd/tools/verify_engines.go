package main

import (
	"fmt"
	"os"

	"fincompare/pkg/core/bank"
	"fincompare/pkg/core/calibration"
	"fincompare/pkg/core/household"
	"fincompare/pkg/core/housing"
	"fincompare/pkg/core/macro"
	"fincompare/pkg/core/mathx"
	"fincompare/pkg/core/sme"
	"fincompare/pkg/core/summary"
	"fincompare/pkg/core/wealth"
)

// Runs every engine on the stylised profile with a fixed seed and prints the
// headline numbers, for eyeballing calibration changes against known output.
func main() {
	reg := calibration.NewRegistry()
	calib, err := reg.Profile("stylised")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	scen, _ := reg.Scenario("severe")

	fmt.Println("--- Household ---")
	hh := household.Compare(household.Inputs{
		Salary:        45000,
		Deposit:       40000,
		PropertyValue: 260000,
		TermYears:     25,
		AnnualRatePct: 5.5,
	}, calib)
	fmt.Printf("principal: %.0f\n", hh.Principal)
	fmt.Printf("conventional: payment %.2f/mo, finance cost %.0f, risk %s\n",
		hh.Conventional.MonthlyPayment, hh.Conventional.TotalFinanceCost, hh.Conventional.Risk)
	fmt.Printf("co-ownership: payment %.2f/mo, finance cost %.0f, risk %s\n",
		hh.CoOwnership.MonthlyPayment, hh.CoOwnership.TotalFinanceCost, hh.CoOwnership.Risk)

	fmt.Println("--- SME (seed 42) ---")
	smeRes := sme.Simulate(sme.Inputs{
		Revenue:         250000,
		MarginPct:       12,
		FinanceRequired: 80000,
		TermYears:       10,
	}, calib, scen, nil, mathx.NewBoxMuller(42))
	fmt.Printf("survival: debt %.1f%%, profit-share %.1f%% (%s stability)\n",
		smeRes.Debt.SurvivalPct, smeRes.ProfitShare.SurvivalPct, smeRes.StabilityLabel)
	fmt.Printf("severe shocks: debt %.1f%%, profit-share %.1f%%\n",
		smeRes.Debt.SevereShockPct, smeRes.ProfitShare.SevereShockPct)

	fmt.Println("--- National ---")
	nat := macro.Simulate(calib, scen, macro.SMESurvival{
		DebtPct:        smeRes.Debt.SurvivalPct,
		ProfitSharePct: smeRes.ProfitShare.SurvivalPct,
	})
	for _, sr := range []macro.SystemResult{nat.Conventional, nat.Islamic} {
		fmt.Printf("%s: gdp[30]=%.1f debt=%.1f unemp=%.1f borrow=%.2f stability=%.0f (computed %.1f)\n",
			sr.System, sr.Series[macro.Horizon].GDPIndex, sr.AvgDebtRatio,
			sr.AvgUnemployment, sr.AvgBorrowingCost, sr.StabilityScore, sr.ComputedStabilityScore)
	}

	fmt.Println("--- Wealth ---")
	conv := wealth.Simulate(wealth.SystemConventional, wealth.PolicyNone, calib)
	isl := wealth.Simulate(wealth.SystemIslamic, wealth.PolicyStandard, calib)
	fmt.Printf("conventional: top20 %.1f%% bottom40 %.1f%% score %.1f\n",
		conv.Top20SharePct, conv.Bottom40SharePct, conv.InequalityScore)
	fmt.Printf("islamic:      top20 %.1f%% bottom40 %.1f%% score %.1f zakat avg %.3f%%\n",
		isl.Top20SharePct, isl.Bottom40SharePct, isl.InequalityScore, isl.ZakatShareAvgPct)

	fmt.Println("--- Housing support ---")
	hs := housing.Derive(isl.ZakatShareAvgPct, calib.Housing)
	fmt.Printf("fund %.0f, households cleared %.0f, coverage %.1f%%, default reduction %.4f\n",
		hs.HousingFund, hs.HouseholdsCleared, 100*hs.CoverageFraction, hs.DefaultRateReduction)

	fmt.Println("--- Bank stress ---")
	sheet := bank.Inputs{
		TotalAssets: 5000, FinancingPct: 40, ProfitSharePct: 30, SukukPct: 20, CashPct: 10,
		DepositsPct: 60, CurrentPct: 20, EquityPct: 20,
		ScenarioID: "stress", System: bank.SystemConventional,
	}
	bc, err := bank.Stress(sheet, reg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	sheet.System = bank.SystemIslamic
	bi, _ := bank.Stress(sheet, reg)
	fmt.Printf("conventional: CAR %.3f LCR %.3f shortfall %.2f%%\n", bc.CapitalRatio, bc.LiquidityRatio, bc.ShortfallProbPct)
	fmt.Printf("islamic:      CAR %.3f LCR %.3f shortfall %.2f%%\n", bi.CapitalRatio, bi.LiquidityRatio, bi.ShortfallProbPct)

	fmt.Println("--- Summary ---")
	sum := summary.Build(summary.Inputs{
		Household:          hh,
		SME:                smeRes,
		Macro:              nat,
		WealthConventional: conv,
		WealthIslamic:      isl,
		Housing:            hs,
		BankConventional:   bc,
		BankIslamic:        bi,
	})
	fmt.Printf("finance cost saving: %.0f\n", sum.FinanceCostSaving)
	fmt.Printf("survival gain: %.1f pp, stability gain: %.0f\n", sum.SurvivalGainPct, sum.StabilityScoreGain)
	fmt.Printf("bottom-40 gain: %.1f pp -> poverty -%.2f%% crime -%.2f%% consumption +%.2f%% gdp +%.2f%%\n",
		sum.Bottom40GainPct, sum.EstPovertyReductionPct, sum.EstCrimeReductionPct,
		sum.EstConsumptionBoostPct, sum.EstGDPBoostPct)
}
