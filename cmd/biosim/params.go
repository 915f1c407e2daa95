package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/bionet-simulator/core"
)

// addParameterFlags registers the full simulation parameter surface on
// a command. Defaults mirror core.DefaultParameters.
func addParameterFlags(cmd *cobra.Command) {
	defaults := core.DefaultParameters()
	flags := cmd.Flags()
	flags.Int("nodes", defaults.NodeCount, "Number of nodes to generate")
	flags.Float64("damage", defaults.DamageRate, "Per-node damage probability in percent")
	flags.Float64("concentration", defaults.NutrientConcentration, "Nutrient concentration offered to every edge")
	flags.Float64("temperature", defaults.Temperature, "Temperature in °C")
	flags.Float64("humidity", defaults.Humidity, "Humidity in percent")
	flags.Float64("ph", defaults.PH, "pH of the medium")
	flags.Float64("speed", defaults.TransportSpeed, "Transport speed")
	flags.Float64("energy-rate", defaults.EnergyRate, "Energy consumed per unit transported")
	flags.Float64("noise", defaults.NoiseLevel, "Per-edge noise bound in [0,1]")
	flags.Float64("duration", defaults.SimulationSeconds, "Simulated duration in seconds")
	flags.String("scenario", "", "Use a named scenario preset instead of parameter flags")
	flags.String("scenario-file", "configs/scenarios.yaml", "Scenario preset file")
}

// resolveParameters builds the parameter set for a run. When a
// scenario preset is named it wins wholesale; otherwise the flag
// values are used. The second return value is the archetype the
// scenario names, if any.
func resolveParameters(cmd *cobra.Command) (core.Parameters, string, error) {
	if name, _ := cmd.Flags().GetString("scenario"); name != "" {
		path, _ := cmd.Flags().GetString("scenario-file")
		scenarios, err := core.LoadScenarioFile(path)
		if err != nil {
			return core.Parameters{}, "", err
		}
		for _, sc := range scenarios {
			if sc.Name == name {
				return sc.Parameters, sc.Archetype, nil
			}
		}
		return core.Parameters{}, "", fmt.Errorf("scenario %q not found in %s", name, path)
	}

	p := core.Parameters{}
	p.NodeCount, _ = cmd.Flags().GetInt("nodes")
	p.DamageRate, _ = cmd.Flags().GetFloat64("damage")
	p.NutrientConcentration, _ = cmd.Flags().GetFloat64("concentration")
	p.Temperature, _ = cmd.Flags().GetFloat64("temperature")
	p.Humidity, _ = cmd.Flags().GetFloat64("humidity")
	p.PH, _ = cmd.Flags().GetFloat64("ph")
	p.TransportSpeed, _ = cmd.Flags().GetFloat64("speed")
	p.EnergyRate, _ = cmd.Flags().GetFloat64("energy-rate")
	p.NoiseLevel, _ = cmd.Flags().GetFloat64("noise")
	p.SimulationSeconds, _ = cmd.Flags().GetFloat64("duration")
	return p, "", nil
}
