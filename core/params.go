package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidParameters = errors.New("invalid simulation parameters")

var validate = validator.New()

// Parameters is the full configuration surface for one simulation run.
// It is passed explicitly per call and never read from ambient state;
// slider state belongs to the presentation layer, which builds one of
// these per run.
type Parameters struct {
	// NodeCount is the number of nodes to generate (N >= 1).
	NodeCount int `yaml:"node_count" json:"node_count" validate:"min=1,max=200"`

	// DamageRate is the independent per-node damage probability,
	// in percent.
	DamageRate float64 `yaml:"damage_rate" json:"damage_rate" validate:"gte=0,lte=100"`

	// NutrientConcentration is the nutrient supply offered to every
	// edge.
	NutrientConcentration float64 `yaml:"nutrient_concentration" json:"nutrient_concentration" validate:"gt=0"`

	// Temperature of the environment in °C. 25 °C is the model's
	// neutral point.
	Temperature float64 `yaml:"temperature" json:"temperature" validate:"gte=0,lte=50"`

	// Humidity of the environment in percent.
	Humidity float64 `yaml:"humidity" json:"humidity" validate:"gte=0,lte=100"`

	// PH of the medium. 7.0 is neutral.
	PH float64 `yaml:"ph" json:"ph" validate:"gte=0,lte=14"`

	// TransportSpeed converts edge length into transit time.
	TransportSpeed float64 `yaml:"transport_speed" json:"transport_speed" validate:"gt=0"`

	// EnergyRate is the energy consumed per unit actually
	// transported.
	EnergyRate float64 `yaml:"energy_rate" json:"energy_rate" validate:"gte=0"`

	// NoiseLevel bounds the per-edge uniform noise draw; 0 disables
	// noise entirely.
	NoiseLevel float64 `yaml:"noise_level" json:"noise_level" validate:"gte=0,lte=1"`

	// SimulationSeconds is the modeled run duration used for the
	// throughput metric (units per simulated minute).
	SimulationSeconds float64 `yaml:"simulation_seconds" json:"simulation_seconds" validate:"gt=0"`
}

// DefaultParameters is the standard classroom setup: a mid-size
// network in a benign environment with mild noise and no damage.
func DefaultParameters() Parameters {
	return Parameters{
		NodeCount:             20,
		DamageRate:            0,
		NutrientConcentration: 50,
		Temperature:           25,
		Humidity:              60,
		PH:                    7.0,
		TransportSpeed:        5,
		EnergyRate:            0.1,
		NoiseLevel:            0.1,
		SimulationSeconds:     60,
	}
}

// Validate rejects out-of-range configurations with a descriptive
// error before any generation begins. Degenerate but in-range inputs
// (e.g. a network that ends up with zero edges) are not errors.
func (p Parameters) Validate() error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalidParameters, f.Field(), f.Tag(), f.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	return nil
}

// EnvironmentalMultiplier combines temperature, humidity and pH into
// the single factor applied to every edge's base transport:
//
//	temp_factor     = 1 + (T − 25)·0.02
//	humidity_factor = humidity / 100
//	ph_factor       = 1 − |pH − 7|·0.1
func (p Parameters) EnvironmentalMultiplier() float64 {
	tempFactor := 1 + (p.Temperature-25)*0.02
	humidityFactor := p.Humidity / 100
	phFactor := 1 - math.Abs(p.PH-7)*0.1
	return tempFactor * humidityFactor * phFactor
}
