// Package calibration holds the static parameter bundles every engine is
// parameterized by: named calibration profiles, macro scenarios, SME sector
// risk profiles, and bank stress scenarios. Profiles are hand-set illustrative
// constants, not econometric estimates; they are immutable once the registry
// is built.
package calibration

// HousingParams calibrates the household engine and the housing support model.
// Rates and yields are annual fractions; incomes are annual GBP.
type HousingParams struct {
	MortgageRate        float64   `yaml:"mortgage_rate"`
	StressRate          float64   `yaml:"stress_rate"`
	TermYears           int       `yaml:"term_years"`
	LTVBands            []float64 `yaml:"ltv_bands"`
	PriceGrowth         float64   `yaml:"price_growth"`
	RentalYield         float64   `yaml:"rental_yield"`
	DefaultProb         float64   `yaml:"default_prob"`
	PTIStressThreshold  float64   `yaml:"pti_stress_threshold"`
	MedianGrossIncome   float64   `yaml:"median_gross_income"`
	MedianDisposable    float64   `yaml:"median_disposable_income"`
	DefaultPropertyValue float64  `yaml:"default_property_value"`
	DefaultDeposit      float64   `yaml:"default_deposit"`

	// Housing support model constants.
	EligibleWealth      float64 `yaml:"eligible_wealth"`
	ZakatHousingFraction float64 `yaml:"zakat_housing_fraction"`
	AvgArrears          float64 `yaml:"avg_arrears"`
	AtRiskHouseholds    float64 `yaml:"at_risk_households"`
}

// SMEParams calibrates the small-business Monte Carlo engine.
type SMEParams struct {
	SurvivalTarget    float64 `yaml:"survival_target"`
	InsolvencyRate    float64 `yaml:"insolvency_rate"`
	LoanRate          float64 `yaml:"loan_rate"`
	RecessionShock    float64 `yaml:"recession_shock"`
	RevenueVolatility float64 `yaml:"revenue_volatility"`
	RevenueGrowth     float64 `yaml:"revenue_growth"`
	DefaultMargin     float64 `yaml:"default_margin"`
}

// MacroParams calibrates the national simulator. Growth and inflation are
// annual fractions; debt ratios are multiples of income / GDP.
type MacroParams struct {
	GDPGrowth             float64 `yaml:"gdp_growth"`
	GDPVolatility         float64 `yaml:"gdp_volatility"`
	InflationAvg          float64 `yaml:"inflation_avg"`
	InflationVolatility   float64 `yaml:"inflation_volatility"`
	HouseholdDebtToIncome float64 `yaml:"household_debt_to_income"`
	PrivateCreditToGDP    float64 `yaml:"private_credit_to_gdp"`
	SMEEmploymentShare    float64 `yaml:"sme_employment_share"`
}

// TopScores are the static stability scores that override the computed
// volatility scores in the national simulator. The override is deliberate:
// headline comparisons stay consistent across arbitrary user inputs.
type TopScores struct {
	Conventional float64 `yaml:"conventional"`
	Islamic      float64 `yaml:"islamic"`
}

// Profile is one immutable named calibration bundle.
type Profile struct {
	Name      string       `yaml:"name"`
	Housing   HousingParams `yaml:"housing"`
	SME       SMEParams     `yaml:"sme"`
	Macro     MacroParams   `yaml:"macro"`
	TopScores TopScores     `yaml:"top_scores"`
}

// builtinProfiles are the two shipped calibrations. "stylised" is a round-
// number teaching calibration; "uk" leans on published UK medians.
func builtinProfiles() map[string]Profile {
	return map[string]Profile{
		"stylised": {
			Name: "stylised",
			Housing: HousingParams{
				MortgageRate:         0.055,
				StressRate:           0.080,
				TermYears:            25,
				LTVBands:             []float64{0.95, 0.90, 0.75},
				PriceGrowth:          0.035,
				RentalYield:          0.045,
				DefaultProb:          0.012,
				PTIStressThreshold:   0.35,
				MedianGrossIncome:    38000,
				MedianDisposable:     29000,
				DefaultPropertyValue: 250000,
				DefaultDeposit:       25000,
				EligibleWealth:       1.5e12,
				ZakatHousingFraction: 0.125,
				AvgArrears:           3500,
				AtRiskHouseholds:     95000,
			},
			SME: SMEParams{
				SurvivalTarget:    0.82,
				InsolvencyRate:    0.045,
				LoanRate:          0.095,
				RecessionShock:    -0.18,
				RevenueVolatility: 0.12,
				RevenueGrowth:     0.030,
				DefaultMargin:     0.12,
			},
			Macro: MacroParams{
				GDPGrowth:             0.025,
				GDPVolatility:         0.020,
				InflationAvg:          0.020,
				InflationVolatility:   0.012,
				HouseholdDebtToIncome: 1.25,
				PrivateCreditToGDP:    1.60,
				SMEEmploymentShare:    0.48,
			},
			TopScores: TopScores{Conventional: 64, Islamic: 62},
		},
		"uk": {
			Name: "uk",
			Housing: HousingParams{
				MortgageRate:         0.0525,
				StressRate:           0.0775,
				TermYears:            30,
				LTVBands:             []float64{0.95, 0.85, 0.75},
				PriceGrowth:          0.029,
				RentalYield:          0.038,
				DefaultProb:          0.009,
				PTIStressThreshold:   0.35,
				MedianGrossIncome:    35204,
				MedianDisposable:     26800,
				DefaultPropertyValue: 285000,
				DefaultDeposit:       30000,
				EligibleWealth:       1.8e12,
				ZakatHousingFraction: 0.125,
				AvgArrears:           3900,
				AtRiskHouseholds:     110000,
			},
			SME: SMEParams{
				SurvivalTarget:    0.80,
				InsolvencyRate:    0.052,
				LoanRate:          0.0875,
				RecessionShock:    -0.15,
				RevenueVolatility: 0.10,
				RevenueGrowth:     0.025,
				DefaultMargin:     0.10,
			},
			Macro: MacroParams{
				GDPGrowth:             0.016,
				GDPVolatility:         0.018,
				InflationAvg:          0.026,
				InflationVolatility:   0.015,
				HouseholdDebtToIncome: 1.26,
				PrivateCreditToGDP:    1.55,
				SMEEmploymentShare:    0.52,
			},
			TopScores: TopScores{Conventional: 60, Islamic: 59},
		},
	}
}
