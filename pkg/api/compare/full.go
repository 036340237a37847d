package compare

import (
	"encoding/json"
	"net/http"

	"fincompare/pkg/core/bank"
	"fincompare/pkg/core/household"
	"fincompare/pkg/core/housing"
	"fincompare/pkg/core/macro"
	"fincompare/pkg/core/sme"
	"fincompare/pkg/core/summary"
	"fincompare/pkg/core/wealth"
)

// FullRequest drives every engine in one call.
type FullRequest struct {
	Selectors
	Household      household.Inputs `json:"household"`
	SME            sme.Inputs       `json:"sme"`
	Bank           bank.Inputs      `json:"bank"`
	BankScenarioID string           `json:"bank_scenario_id"`
}

// FullResponse is the combined record the summary layer feeds on, plus the
// summary itself.
type FullResponse struct {
	Household household.Result `json:"household"`
	SME       sme.Result       `json:"sme"`
	National  macro.Result     `json:"national"`
	Wealth    WealthResponse   `json:"wealth"`
	Housing   housing.Result   `json:"housing_support"`
	Bank      struct {
		Conventional bank.Result `json:"conventional"`
		Islamic      bank.Result `json:"islamic"`
	} `json:"bank"`
	Summary summary.Result `json:"summary"`
}

// HandleFull runs the complete comparison. Engines execute in dependency
// order: SME feeds the national simulator, wealth feeds housing support, and
// everything feeds the summary.
func (h *Handler) HandleFull(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	var req FullRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	calib, scen, err := h.resolve(req.Selectors)
	if err != nil {
		h.fail(w, "compare", err)
		return
	}
	sector, err := h.Registry.Sector(req.SME.SectorID)
	if err != nil {
		h.fail(w, "compare", err)
		return
	}

	var resp FullResponse
	resp.Household = household.Compare(req.Household, calib)
	resp.SME = sme.Simulate(req.SME, calib, scen, sector, h.normalSource(req.Selectors))
	resp.National = macro.Simulate(calib, scen, macro.SMESurvival{
		DebtPct:        resp.SME.Debt.SurvivalPct,
		ProfitSharePct: resp.SME.ProfitShare.SurvivalPct,
	})

	policy := zakatPolicy(req.ZakatPolicy)
	resp.Wealth = WealthResponse{
		Conventional: wealth.Simulate(wealth.SystemConventional, policy, calib),
		Islamic:      wealth.Simulate(wealth.SystemIslamic, policy, calib),
	}
	resp.Housing = housing.Derive(resp.Wealth.Islamic.ZakatShareAvgPct, calib.Housing)

	bankIn := req.Bank
	if req.BankScenarioID != "" {
		bankIn.ScenarioID = req.BankScenarioID
	}
	if bankIn.ScenarioID == "" {
		bankIn.ScenarioID = "normal"
	}
	bankIn.System = bank.SystemConventional
	if resp.Bank.Conventional, err = bank.Stress(bankIn, h.Registry); err != nil {
		h.fail(w, "compare", err)
		return
	}
	bankIn.System = bank.SystemIslamic
	if resp.Bank.Islamic, err = bank.Stress(bankIn, h.Registry); err != nil {
		h.fail(w, "compare", err)
		return
	}

	resp.Summary = summary.Build(summary.Inputs{
		Household:          resp.Household,
		SME:                resp.SME,
		Macro:              resp.National,
		WealthConventional: resp.Wealth.Conventional,
		WealthIslamic:      resp.Wealth.Islamic,
		Housing:            resp.Housing,
		BankConventional:   resp.Bank.Conventional,
		BankIslamic:        resp.Bank.Islamic,
	})

	h.respond(w, "compare", resp)
}
