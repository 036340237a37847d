// Package compare exposes the simulation engines over JSON. This is the
// whole presentation boundary: typed numeric fields plus named selectors in,
// engine output records plus a correlating run id out.
package compare

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fincompare/pkg/core/bank"
	"fincompare/pkg/core/calibration"
	"fincompare/pkg/core/household"
	"fincompare/pkg/core/housing"
	"fincompare/pkg/core/macro"
	"fincompare/pkg/core/mathx"
	"fincompare/pkg/core/sme"
	"fincompare/pkg/core/wealth"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Handler holds dependencies for the comparison endpoints.
type Handler struct {
	Registry *calibration.Registry
	Log      *logrus.Logger
}

// NewHandler creates a comparison handler.
func NewHandler(reg *calibration.Registry, log *logrus.Logger) *Handler {
	return &Handler{Registry: reg, Log: log}
}

// Selectors are the named lookups shared by every request. The SME sector id
// rides inside sme.Inputs instead, next to the fields it modifies.
type Selectors struct {
	CalibrationMode string `json:"calibration_mode"`
	ScenarioID      string `json:"scenario_id"`
	ZakatPolicy     string `json:"zakat_policy"`
	Seed            int64  `json:"seed"`
}

// resolve looks up profile and scenario, defaulting to "stylised"/"baseline"
// when unset. Unknown names are caller errors and fail the request.
func (h *Handler) resolve(sel Selectors) (calibration.Profile, calibration.Scenario, error) {
	mode := sel.CalibrationMode
	if mode == "" {
		mode = "stylised"
	}
	scenarioID := sel.ScenarioID
	if scenarioID == "" {
		scenarioID = "baseline"
	}

	calib, err := h.Registry.Profile(mode)
	if err != nil {
		return calibration.Profile{}, calibration.Scenario{}, err
	}
	scen, err := h.Registry.Scenario(scenarioID)
	if err != nil {
		return calibration.Profile{}, calibration.Scenario{}, err
	}
	return calib, scen, nil
}

func (h *Handler) normalSource(sel Selectors) mathx.NormalSource {
	seed := sel.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return mathx.NewBoxMuller(seed)
}

// zakatPolicy maps the selector string, defaulting to the standard rate.
func zakatPolicy(s string) wealth.ZakatPolicy {
	switch s {
	case "none":
		return wealth.PolicyNone
	case "enhanced":
		return wealth.PolicyEnhanced
	default:
		return wealth.PolicyStandard
	}
}

// cors sets the permissive headers the local UI needs and handles preflight.
func cors(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

// fail writes an error response. Unknown registry identifiers are client
// errors; everything else is a server fault.
func (h *Handler) fail(w http.ResponseWriter, endpoint string, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, calibration.ErrUnknownProfile) ||
		errors.Is(err, calibration.ErrUnknownScenario) ||
		errors.Is(err, calibration.ErrUnknownSector) ||
		errors.Is(err, calibration.ErrUnknownBankScenario) {
		status = http.StatusBadRequest
	}
	h.Log.WithFields(logrus.Fields{"endpoint": endpoint, "error": err}).Warn("request failed")
	http.Error(w, err.Error(), status)
}

func (h *Handler) respond(w http.ResponseWriter, endpoint string, payload interface{}) {
	runID := uuid.NewString()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"run_id": runID,
		"result": payload,
	})
	h.Log.WithFields(logrus.Fields{"endpoint": endpoint, "run_id": runID}).Info("computed")
}

// HandleCalibrations lists everything the registry can resolve.
func (h *Handler) HandleCalibrations(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	h.respond(w, "calibrations", map[string][]string{
		"profiles":       h.Registry.ProfileNames(),
		"scenarios":      h.Registry.ScenarioIDs(),
		"sectors":        h.Registry.SectorIDs(),
		"bank_scenarios": h.Registry.BankScenarioIDs(),
	})
}

// HouseholdRequest pairs the raw inputs with selectors.
type HouseholdRequest struct {
	Selectors
	household.Inputs
}

func (h *Handler) HandleHousehold(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	var req HouseholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	calib, _, err := h.resolve(req.Selectors)
	if err != nil {
		h.fail(w, "household", err)
		return
	}
	h.respond(w, "household", household.Compare(req.Inputs, calib))
}

// SMERequest pairs the raw inputs with selectors. A non-zero seed makes the
// run reproducible.
type SMERequest struct {
	Selectors
	sme.Inputs
}

func (h *Handler) HandleSME(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	var req SMERequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	calib, scen, err := h.resolve(req.Selectors)
	if err != nil {
		h.fail(w, "sme", err)
		return
	}
	sector, err := h.Registry.Sector(req.SectorID)
	if err != nil {
		h.fail(w, "sme", err)
		return
	}
	h.respond(w, "sme", sme.Simulate(req.Inputs, calib, scen, sector, h.normalSource(req.Selectors)))
}

// NationalRequest runs the macro simulator; the embedded SME inputs feed the
// default-rate linkage.
type NationalRequest struct {
	Selectors
	SME sme.Inputs `json:"sme"`
}

func (h *Handler) HandleNational(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	var req NationalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	calib, scen, err := h.resolve(req.Selectors)
	if err != nil {
		h.fail(w, "national", err)
		return
	}
	sector, err := h.Registry.Sector(req.SME.SectorID)
	if err != nil {
		h.fail(w, "national", err)
		return
	}
	smeRes := sme.Simulate(req.SME, calib, scen, sector, h.normalSource(req.Selectors))
	h.respond(w, "national", macro.Simulate(calib, scen, macro.SMESurvival{
		DebtPct:        smeRes.Debt.SurvivalPct,
		ProfitSharePct: smeRes.ProfitShare.SurvivalPct,
	}))
}

// WealthResponse returns both systems' distributions.
type WealthResponse struct {
	Conventional wealth.Result `json:"conventional"`
	Islamic      wealth.Result `json:"islamic"`
}

func (h *Handler) HandleWealth(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	var req Selectors
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	calib, _, err := h.resolve(req)
	if err != nil {
		h.fail(w, "wealth", err)
		return
	}
	policy := zakatPolicy(req.ZakatPolicy)
	h.respond(w, "wealth", WealthResponse{
		Conventional: wealth.Simulate(wealth.SystemConventional, policy, calib),
		Islamic:      wealth.Simulate(wealth.SystemIslamic, policy, calib),
	})
}

func (h *Handler) HandleHousingSupport(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	var req Selectors
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	calib, _, err := h.resolve(req)
	if err != nil {
		h.fail(w, "housing-support", err)
		return
	}
	isl := wealth.Simulate(wealth.SystemIslamic, zakatPolicy(req.ZakatPolicy), calib)
	h.respond(w, "housing-support", housing.Derive(isl.ZakatShareAvgPct, calib.Housing))
}

// BankRequest carries the balance-sheet fields; the scenario id rides inside
// bank.Inputs.
type BankRequest struct {
	bank.Inputs
}

func (h *Handler) HandleBank(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	var req BankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	res, err := bank.Stress(req.Inputs, h.Registry)
	if err != nil {
		h.fail(w, "bank", err)
		return
	}
	h.respond(w, "bank", res)
}
