package core

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a named, ready-to-run experiment preset: an archetype
// selection plus a full parameter set. An empty archetype means
// "compare all four".
type Scenario struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Archetype   string     `yaml:"archetype"`
	Parameters  Parameters `yaml:"parameters"`
}

// UnmarshalYAML starts from DefaultParameters so presets only need to
// state the values they override.
func (s *Scenario) UnmarshalYAML(value *yaml.Node) error {
	type rawScenario Scenario
	raw := rawScenario{Parameters: DefaultParameters()}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*s = Scenario(raw)
	return nil
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads experiment presets from YAML. It fails on
// structural errors, duplicate names, unknown archetypes, and
// parameter sets the engine would reject, so a bad preset file is
// caught at load time rather than mid-demo.
func LoadScenarios(r io.Reader) ([]Scenario, error) {
	var payload scenarioFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("load scenarios: decode failed: %w", err)
	}

	seen := make(map[string]bool, len(payload.Scenarios))
	for i, sc := range payload.Scenarios {
		if sc.Name == "" {
			return nil, fmt.Errorf("load scenarios: scenario %d has an empty name", i)
		}
		if seen[sc.Name] {
			return nil, fmt.Errorf("load scenarios: duplicate scenario %q", sc.Name)
		}
		seen[sc.Name] = true

		if sc.Archetype != "" {
			if _, err := ParseArchetype(sc.Archetype); err != nil {
				return nil, fmt.Errorf("load scenarios: scenario %q: %w", sc.Name, err)
			}
		}
		if err := sc.Parameters.Validate(); err != nil {
			return nil, fmt.Errorf("load scenarios: scenario %q: %w", sc.Name, err)
		}
	}

	return payload.Scenarios, nil
}

// LoadScenarioFile is a convenience wrapper over LoadScenarios.
func LoadScenarioFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load scenarios: %w", err)
	}
	defer f.Close()
	return LoadScenarios(f)
}
