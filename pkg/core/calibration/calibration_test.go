package calibration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryLookups(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"stylised", "uk"} {
		p, err := r.Profile(name)
		require.NoError(t, err)
		require.Equal(t, name, p.Name)
		require.Greater(t, p.Housing.MortgageRate, 0.0)
		require.Greater(t, p.Housing.TermYears, 0)
		require.Greater(t, p.Macro.HouseholdDebtToIncome, 0.0)
	}

	for _, id := range []string{"baseline", "moderate", "severe"} {
		_, err := r.Scenario(id)
		require.NoError(t, err)
	}

	sec, err := r.Sector("hospitality")
	require.NoError(t, err)
	require.Equal(t, -0.30, sec.RecessionShock)

	// Empty sector id means no override.
	sec, err = r.Sector("")
	require.NoError(t, err)
	require.Nil(t, sec)

	bs, err := r.BankScenario("severe")
	require.NoError(t, err)
	require.Equal(t, 1.4, bs.ShortfallScale)
}

// TestRegistryUnknownNames verifies fail-fast behavior on bad identifiers.
func TestRegistryUnknownNames(t *testing.T) {
	r := NewRegistry()

	_, err := r.Profile("us")
	require.ErrorIs(t, err, ErrUnknownProfile)

	_, err = r.Scenario("apocalypse")
	require.ErrorIs(t, err, ErrUnknownScenario)

	_, err = r.Sector("mining")
	require.ErrorIs(t, err, ErrUnknownSector)

	_, err = r.BankScenario("mild")
	require.ErrorIs(t, err, ErrUnknownBankScenario)
}

func TestScenarioSeverityOrdering(t *testing.T) {
	r := NewRegistry()
	base, _ := r.Scenario("baseline")
	mod, _ := r.Scenario("moderate")
	sev, _ := r.Scenario("severe")

	require.Less(t, base.RecessionShockFactor, mod.RecessionShockFactor)
	require.Less(t, mod.RecessionShockFactor, sev.RecessionShockFactor)
	require.Greater(t, mod.GDPShock, sev.GDPShock, "severe GDP shock should be deeper")
	require.Equal(t, 10, sev.CrisisStart)
	require.Equal(t, 11, sev.CrisisEnd)
}

func TestLoadProfileOverrides(t *testing.T) {
	doc := `
profiles:
  test:
    housing:
      mortgage_rate: 0.0612
      term_years: 20
      default_property_value: 180000
    sme:
      loan_rate: 0.11
    macro:
      household_debt_to_income: 1.4
    top_scores:
      conventional: 50
      islamic: 55
`
	path := filepath.Join(t.TempDir(), "calibrations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	r := NewRegistry()
	require.NoError(t, r.LoadProfileOverrides(path))

	p, err := r.Profile("test")
	require.NoError(t, err)
	require.Equal(t, "test", p.Name)
	require.Equal(t, 0.0612, p.Housing.MortgageRate)
	require.Equal(t, 20, p.Housing.TermYears)
	require.Equal(t, 55.0, p.TopScores.Islamic)

	// Built-ins survive the merge.
	_, err = r.Profile("stylised")
	require.NoError(t, err)
}

func TestLoadScenarioOverrides(t *testing.T) {
	// HJSON: comments and unquoted keys are allowed.
	doc := `
{
  scenarios: {
    # a shallow recession for sensitivity runs
    mild: {
      recession_shock_factor: 1.1
      gdp_shock: -0.8
      inflation_shock: 0.5
      crisis_start: 10
      crisis_end: 11
    }
  }
  bank_scenarios: {
    extreme: {
      pd_mult_conventional: 3.0
      pd_mult_islamic: 2.5
      shortfall_scale: 1.6
    }
  }
}
`
	path := filepath.Join(t.TempDir(), "scenarios.hjson")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	r := NewRegistry()
	require.NoError(t, r.LoadScenarioOverrides(path))

	s, err := r.Scenario("mild")
	require.NoError(t, err)
	require.Equal(t, 1.1, s.RecessionShockFactor)
	require.Equal(t, -0.8, s.GDPShock)

	bs, err := r.BankScenario("extreme")
	require.NoError(t, err)
	require.Equal(t, 1.6, bs.ShortfallScale)
}

func TestLoadMissingFile(t *testing.T) {
	r := NewRegistry()
	err := r.LoadProfileOverrides("/nonexistent/calibrations.yaml")
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}
