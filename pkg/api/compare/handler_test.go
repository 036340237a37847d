package compare

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fincompare/pkg/core/calibration"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testHandler() *Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewHandler(calibration.NewRegistry(), log)
}

func post(t *testing.T, fn http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	fn(rec, req)
	return rec
}

// envelope decodes the standard {run_id, result} response.
func envelope(t *testing.T, rec *httptest.ResponseRecorder) (string, json.RawMessage) {
	t.Helper()
	var out struct {
		RunID  string          `json:"run_id"`
		Result json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.RunID, out.Result
}

func TestHandleHousehold(t *testing.T) {
	h := testHandler()
	rec := post(t, h.HandleHousehold, map[string]interface{}{
		"calibration_mode": "uk",
		"salary":           45000,
		"deposit":          40000,
		"property_value":   260000,
		"term_years":       25,
		"annual_rate_pct":  5.5,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	runID, raw := envelope(t, rec)
	require.NotEmpty(t, runID)

	var res struct {
		Principal    float64 `json:"principal"`
		Conventional struct {
			Risk        string `json:"risk"`
			EquityCurve []struct {
				Year int `json:"year"`
			} `json:"equity_curve"`
		} `json:"conventional"`
	}
	require.NoError(t, json.Unmarshal(raw, &res))
	require.Equal(t, 220000.0, res.Principal)
	require.Len(t, res.Conventional.EquityCurve, 26)
	require.NotEqual(t, "N/A", res.Conventional.Risk)
}

func TestUnknownCalibrationIs400(t *testing.T) {
	h := testHandler()
	rec := post(t, h.HandleHousehold, map[string]interface{}{
		"calibration_mode": "mars",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownBankScenarioIs400(t *testing.T) {
	h := testHandler()
	rec := post(t, h.HandleBank, map[string]interface{}{
		"total_assets": 5000,
		"scenario_id":  "meltdown",
		"system":       "conventional",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMalformedBodyIs400(t *testing.T) {
	h := testHandler()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.HandleSME(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestSMESeedReproducibility: identical seeded requests return identical
// result payloads (run ids differ).
func TestSMESeedReproducibility(t *testing.T) {
	h := testHandler()
	body := map[string]interface{}{
		"seed":             1234,
		"revenue":          250000,
		"margin_pct":       12,
		"finance_required": 80000,
		"term_years":       10,
		"sector_id":        "manufacturing",
	}

	idA, resA := envelope(t, post(t, h.HandleSME, body))
	idB, resB := envelope(t, post(t, h.HandleSME, body))

	require.NotEqual(t, idA, idB)
	require.JSONEq(t, string(resA), string(resB))
}

func TestHandleFull(t *testing.T) {
	h := testHandler()
	rec := post(t, h.HandleFull, map[string]interface{}{
		"calibration_mode": "stylised",
		"scenario_id":      "severe",
		"zakat_policy":     "standard",
		"seed":             42,
		"household": map[string]interface{}{
			"salary": 45000, "deposit": 40000, "property_value": 260000,
			"term_years": 25, "annual_rate_pct": 5.5,
		},
		"sme": map[string]interface{}{
			"revenue": 250000, "margin_pct": 12, "finance_required": 80000, "term_years": 10,
		},
		"bank": map[string]interface{}{
			"total_assets": 5000, "financing_pct": 40, "profit_share_pct": 30,
			"sukuk_pct": 20, "cash_pct": 10,
			"deposits_pct": 60, "current_pct": 20, "equity_pct": 20,
		},
		"bank_scenario_id": "stress",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	_, raw := envelope(t, rec)
	var res FullResponse
	require.NoError(t, json.Unmarshal(raw, &res))

	require.Len(t, res.National.Conventional.Series, 31)
	require.Greater(t, res.SME.Runs, 0)
	require.Greater(t, res.Wealth.Islamic.ZakatShareAvgPct, 0.0)
	require.Greater(t, res.Housing.HouseholdsCleared, 0.0)
	require.Greater(t, res.Bank.Conventional.ShortfallProbPct, 0.0)
	require.NotZero(t, res.Summary.StabilityScoreGain)
}

func TestHandleCalibrations(t *testing.T) {
	h := testHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.HandleCalibrations(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	_, raw := envelope(t, rec)
	var res map[string][]string
	require.NoError(t, json.Unmarshal(raw, &res))
	require.Contains(t, res["profiles"], "stylised")
	require.Contains(t, res["profiles"], "uk")
	require.Contains(t, res["scenarios"], "severe")
	require.Contains(t, res["bank_scenarios"], "stress")
}
