package calibration

// Scenario is a named macro-shock descriptor. Shocks land only at the crisis
// years; the recession factor also scales the SME midpoint shock.
type Scenario struct {
	ID                   string  `json:"id"`
	RecessionShockFactor float64 `json:"recession_shock_factor"`
	GDPShock             float64 `json:"gdp_shock"`       // one-off growth shock, percentage points
	InflationShock       float64 `json:"inflation_shock"` // one-off inflation shock, percentage points
	CrisisStart          int     `json:"crisis_start"`
	CrisisEnd            int     `json:"crisis_end"`
}

// SectorProfile overrides the SME calibration defaults when a sector is
// selected.
type SectorProfile struct {
	ID                string  `json:"id"`
	BaseMargin        float64 `json:"base_margin"`
	RevenueVolatility float64 `json:"revenue_volatility"`
	RecessionShock    float64 `json:"recession_shock"`
}

// BankScenario scales per-asset-class probabilities of default and the final
// shortfall probability.
type BankScenario struct {
	ID                 string  `json:"id"`
	PDMultConventional float64 `json:"pd_mult_conventional"`
	PDMultIslamic      float64 `json:"pd_mult_islamic"`
	ShortfallScale     float64 `json:"shortfall_scale"`
}

func builtinScenarios() map[string]Scenario {
	return map[string]Scenario{
		"baseline": {ID: "baseline", RecessionShockFactor: 1.0},
		"moderate": {
			ID:                   "moderate",
			RecessionShockFactor: 1.25,
			GDPShock:             -1.5,
			InflationShock:       1.2,
			CrisisStart:          10,
			CrisisEnd:            11,
		},
		"severe": {
			ID:                   "severe",
			RecessionShockFactor: 1.6,
			GDPShock:             -3.5,
			InflationShock:       2.5,
			CrisisStart:          10,
			CrisisEnd:            11,
		},
	}
}

func builtinSectors() map[string]SectorProfile {
	return map[string]SectorProfile{
		"retail":        {ID: "retail", BaseMargin: 0.08, RevenueVolatility: 0.16, RecessionShock: -0.22},
		"manufacturing": {ID: "manufacturing", BaseMargin: 0.12, RevenueVolatility: 0.12, RecessionShock: -0.18},
		"services":      {ID: "services", BaseMargin: 0.15, RevenueVolatility: 0.10, RecessionShock: -0.14},
		"hospitality":   {ID: "hospitality", BaseMargin: 0.09, RevenueVolatility: 0.20, RecessionShock: -0.30},
	}
}

func builtinBankScenarios() map[string]BankScenario {
	return map[string]BankScenario{
		"normal": {ID: "normal", PDMultConventional: 1.0, PDMultIslamic: 1.0, ShortfallScale: 1.0},
		"stress": {ID: "stress", PDMultConventional: 1.5, PDMultIslamic: 1.35, ShortfallScale: 1.1},
		"severe": {ID: "severe", PDMultConventional: 2.4, PDMultIslamic: 2.0, ShortfallScale: 1.4},
	}
}
