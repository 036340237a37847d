package calibration

import (
	"fmt"
	"os"

	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"
)

// profileFile is the shape of a YAML calibration override document:
//
//	profiles:
//	  uk:
//	    housing:
//	      mortgage_rate: 0.0499
//
// Overrides are whole-profile: a named entry replaces the built-in of the
// same name (or adds a new one). Partial merging is intentionally not
// supported, so a file always states the full calibration it claims.
type profileFile struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// LoadProfileOverrides merges profiles from a YAML file into the registry.
// Call before serving; the registry is read-only afterwards.
func (r *Registry) LoadProfileOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read calibration file: %w", err)
	}

	var f profileFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse calibration file %s: %w", path, err)
	}

	for name, p := range f.Profiles {
		p.Name = name
		r.profiles[name] = p
	}
	return nil
}

// scenarioFile is the shape of an HJSON scenario override document. HJSON so
// the file can carry inline commentary on what each shock represents.
type scenarioFile struct {
	Scenarios     map[string]Scenario      `json:"scenarios"`
	Sectors       map[string]SectorProfile `json:"sectors"`
	BankScenarios map[string]BankScenario  `json:"bank_scenarios"`
}

// LoadScenarioOverrides merges scenario tables from an HJSON file into the
// registry.
func (r *Registry) LoadScenarioOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scenario file: %w", err)
	}

	var f scenarioFile
	if err := hjson.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse scenario file %s: %w", path, err)
	}

	for id, s := range f.Scenarios {
		s.ID = id
		r.scenarios[id] = s
	}
	for id, s := range f.Sectors {
		s.ID = id
		r.sectors[id] = s
	}
	for id, s := range f.BankScenarios {
		s.ID = id
		r.bankScenarios[id] = s
	}
	return nil
}
