package calibration

import (
	"errors"
	"fmt"
	"sort"
)

// Lookup failures indicate a caller programming error, not bad user input;
// they surface immediately rather than degrading to a default.
var (
	ErrUnknownProfile      = errors.New("calibration: unknown profile")
	ErrUnknownScenario     = errors.New("calibration: unknown scenario")
	ErrUnknownSector       = errors.New("calibration: unknown sector")
	ErrUnknownBankScenario = errors.New("calibration: unknown bank scenario")
)

// Registry resolves named profiles, scenarios, sectors and bank scenarios.
// Built once at startup (optionally extended from override files), then
// read-only for its lifetime.
type Registry struct {
	profiles      map[string]Profile
	scenarios     map[string]Scenario
	sectors       map[string]SectorProfile
	bankScenarios map[string]BankScenario
}

// NewRegistry returns a registry holding the built-in tables.
func NewRegistry() *Registry {
	return &Registry{
		profiles:      builtinProfiles(),
		scenarios:     builtinScenarios(),
		sectors:       builtinSectors(),
		bankScenarios: builtinBankScenarios(),
	}
}

// Profile returns the named calibration profile.
func (r *Registry) Profile(name string) (Profile, error) {
	p, ok := r.profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

// Scenario returns the named macro scenario.
func (r *Registry) Scenario(id string) (Scenario, error) {
	s, ok := r.scenarios[id]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownScenario, id)
	}
	return s, nil
}

// Sector returns the named SME sector profile. The empty id means "no sector
// selected" and resolves to nil without error.
func (r *Registry) Sector(id string) (*SectorProfile, error) {
	if id == "" {
		return nil, nil
	}
	s, ok := r.sectors[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSector, id)
	}
	return &s, nil
}

// BankScenario returns the named bank stress scenario.
func (r *Registry) BankScenario(id string) (BankScenario, error) {
	s, ok := r.bankScenarios[id]
	if !ok {
		return BankScenario{}, fmt.Errorf("%w: %q", ErrUnknownBankScenario, id)
	}
	return s, nil
}

// ProfileNames lists registered profile names, sorted.
func (r *Registry) ProfileNames() []string {
	return sortedKeys(r.profiles)
}

// ScenarioIDs lists registered macro scenario ids, sorted.
func (r *Registry) ScenarioIDs() []string {
	return sortedKeys(r.scenarios)
}

// SectorIDs lists registered SME sector ids, sorted.
func (r *Registry) SectorIDs() []string {
	return sortedKeys(r.sectors)
}

// BankScenarioIDs lists registered bank scenario ids, sorted.
func (r *Registry) BankScenarioIDs() []string {
	return sortedKeys(r.bankScenarios)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
