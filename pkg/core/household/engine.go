// Package household compares a conventional repayment mortgage against a
// diminishing musharakah (co-ownership) plan over the same property price
// path, and classifies affordability risk for each.
package household

import (
	"math"

	"fincompare/pkg/core/calibration"
)

// Risk classification labels. RiskNA is returned whenever a payment-to-income
// ratio cannot be computed.
const (
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
	RiskNA       = "N/A"
)

// Inputs are the raw UI-supplied fields. Zero or negative values fall back to
// calibration defaults during resolution.
type Inputs struct {
	Salary         float64 `json:"salary"`
	Deposit        float64 `json:"deposit"`
	PropertyValue  float64 `json:"property_value"`
	TermYears      float64 `json:"term_years"`
	AnnualRatePct  float64 `json:"annual_rate_pct"`
	RentalYieldPct float64 `json:"rental_yield_pct"`
}

// CurvePoint is one annual sample of an output series.
type CurvePoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// PathResult describes one financing structure.
type PathResult struct {
	MonthlyPayment   float64      `json:"monthly_payment"` // representative: fixed for conventional, term average for co-ownership
	TotalPaid        float64      `json:"total_paid"`
	TotalFinanceCost float64      `json:"total_finance_cost"` // total paid beyond the financed principal
	FinalEquity      float64      `json:"final_equity"`
	PTI              float64      `json:"pti"`
	Risk             string       `json:"risk"`
	EquityCurve      []CurvePoint `json:"equity_curve"`
	CostCurve        []CurvePoint `json:"cost_curve"`
}

// Result is the full household comparison.
type Result struct {
	Principal       float64      `json:"principal"`
	FinalHouseValue float64      `json:"final_house_value"`
	StressedPayment float64      `json:"stressed_payment"` // conventional payment re-priced at the calibration stress rate
	Conventional    PathResult   `json:"conventional"`
	CoOwnership     PathResult   `json:"co_ownership"`
	BankShareCurve  []CurvePoint `json:"bank_share_curve"`
}

// Resolved carries fully-defaulted inputs. Resolution is a separate step so
// the fallback order is testable on its own.
type Resolved struct {
	PropertyValue float64
	Deposit       float64
	Principal     float64
	Months        int
	MonthlyRate   float64
	MonthlyYield  float64
	PriceGrowth   float64
	NetMonthly    float64
	StressRate    float64
	PTIThreshold  float64
}

// Resolve applies the documented default order: a positive input wins,
// otherwise the calibration default. Derived quantities (principal, monthly
// rates, net income) are computed last.
func Resolve(in Inputs, calib calibration.Profile) Resolved {
	h := calib.Housing

	value := in.PropertyValue
	if value <= 0 {
		value = h.DefaultPropertyValue
	}
	deposit := in.Deposit
	if deposit <= 0 {
		deposit = h.DefaultDeposit
	}
	// Fractional terms are floored to whole years so schedules always end on
	// a sampled 12-month boundary and the final bank share lands exactly at 0.
	term := math.Floor(in.TermYears)
	if term <= 0 {
		term = float64(h.TermYears)
	}
	rate := in.AnnualRatePct / 100
	if in.AnnualRatePct <= 0 {
		rate = h.MortgageRate
	}
	yield := in.RentalYieldPct / 100
	if in.RentalYieldPct <= 0 {
		yield = h.RentalYield
	}
	salary := in.Salary
	if salary <= 0 {
		salary = h.MedianGrossIncome
	}

	// Net income approximated by the calibration's disposable/gross ratio.
	netMonthly := 0.0
	if h.MedianGrossIncome > 0 {
		netMonthly = salary * (h.MedianDisposable / h.MedianGrossIncome) / 12
	}

	return Resolved{
		PropertyValue: value,
		Deposit:       deposit,
		Principal:     math.Max(value-deposit, 0),
		Months:        int(term * 12),
		MonthlyRate:   rate / 12,
		MonthlyYield:  yield / 12,
		PriceGrowth:   h.PriceGrowth,
		NetMonthly:    netMonthly,
		StressRate:    h.StressRate,
		PTIThreshold:  h.PTIStressThreshold,
	}
}

// Degenerate reports whether the resolved inputs cannot produce a schedule.
func (r Resolved) Degenerate() bool {
	return r.PropertyValue <= 0 || r.Months <= 0 || r.NetMonthly <= 0 || r.Principal <= 0
}

// Compare builds both schedules. Degenerate inputs return the zero result
// with empty curves and "N/A" risk; no error path exists.
func Compare(in Inputs, calib calibration.Profile) Result {
	res := Resolve(in, calib)
	if res.Degenerate() {
		return Result{
			Conventional: PathResult{Risk: RiskNA},
			CoOwnership:  PathResult{Risk: RiskNA},
		}
	}

	p := res.Principal
	n := res.Months
	value := res.PropertyValue

	payment := annuityPayment(p, res.MonthlyRate, n)

	// Co-ownership: the bank share starts at principal/value and shrinks by a
	// fixed step each month, reaching exactly 0 at month n.
	shareStart := p / value
	shareStep := shareStart / float64(n)
	purchase := value * shareStep

	out := Result{Principal: p, StressedPayment: annuityPayment(p, res.StressRate/12, n)}

	var cumConv, cumCo float64
	share := shareStart

	sample := func(month int) {
		year := month / 12
		hv := houseValue(value, res.PriceGrowth, month)
		balance := annuityBalance(p, res.MonthlyRate, payment, month)

		out.Conventional.EquityCurve = append(out.Conventional.EquityCurve, CurvePoint{Year: year, Value: hv - balance})
		out.Conventional.CostCurve = append(out.Conventional.CostCurve, CurvePoint{Year: year, Value: cumConv})
		out.CoOwnership.EquityCurve = append(out.CoOwnership.EquityCurve, CurvePoint{Year: year, Value: hv * (1 - share)})
		out.CoOwnership.CostCurve = append(out.CoOwnership.CostCurve, CurvePoint{Year: year, Value: cumCo})
		out.BankShareCurve = append(out.BankShareCurve, CurvePoint{Year: year, Value: share})
	}

	sample(0)
	for m := 1; m <= n; m++ {
		cumConv += payment

		// Rent accrues on the share still held at the start of the month,
		// priced off the current house value.
		hv := houseValue(value, res.PriceGrowth, m)
		cumCo += hv*share*res.MonthlyYield + purchase

		share = math.Max(share-shareStep, 0)
		if m == n {
			share = 0
		}
		if m%12 == 0 {
			sample(m)
		}
	}

	finalHV := houseValue(value, res.PriceGrowth, n)
	out.FinalHouseValue = finalHV

	out.Conventional.MonthlyPayment = payment
	out.Conventional.TotalPaid = payment * float64(n)
	out.Conventional.TotalFinanceCost = out.Conventional.TotalPaid - p
	out.Conventional.FinalEquity = finalHV - annuityBalance(p, res.MonthlyRate, payment, n)

	out.CoOwnership.MonthlyPayment = cumCo / float64(n)
	out.CoOwnership.TotalPaid = cumCo
	out.CoOwnership.TotalFinanceCost = cumCo - p
	out.CoOwnership.FinalEquity = finalHV

	out.Conventional.PTI, out.Conventional.Risk = classify(out.Conventional.MonthlyPayment, res)
	out.CoOwnership.PTI, out.CoOwnership.Risk = classify(out.CoOwnership.MonthlyPayment, res)

	return out
}

// annuityPayment is the fixed payment amortizing principal p at monthly rate
// r over n months. A zero rate degrades to straight-line repayment.
func annuityPayment(p, r float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if r == 0 {
		return p / float64(n)
	}
	return p * r / (1 - math.Pow(1+r, -float64(n)))
}

// annuityBalance is the closed-form outstanding balance after m payments.
func annuityBalance(p, r, payment float64, m int) float64 {
	if r == 0 {
		return math.Max(p-payment*float64(m), 0)
	}
	growth := math.Pow(1+r, float64(m))
	return math.Max(p*growth-payment*(growth-1)/r, 0)
}

// houseValue compounds annual price growth over fractional years.
func houseValue(value, growth float64, month int) float64 {
	return value * math.Pow(1+growth, float64(month)/12)
}

// classify buckets a representative payment against net income stressed by a
// 15% cut. A non-finite ratio yields "N/A".
func classify(payment float64, res Resolved) (float64, string) {
	stressed := res.NetMonthly * 0.85
	pti := payment / stressed
	if math.IsNaN(pti) || math.IsInf(pti, 0) {
		return 0, RiskNA
	}
	switch {
	case pti < 0.7*res.PTIThreshold:
		return pti, RiskLow
	case pti < res.PTIThreshold:
		return pti, RiskModerate
	default:
		return pti, RiskHigh
	}
}
