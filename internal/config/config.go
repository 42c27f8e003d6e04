package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"uhi-engine/internal/model"
)

// Config is the process-level configuration resolved at startup.
type Config struct {
	Port        string
	Assumptions model.Assumptions
}

// DefaultAssumptions returns the statutory Law 2/2018 assumption set.
func DefaultAssumptions() model.Assumptions {
	return model.Assumptions{
		WageInflation:        0.07,
		MedicalInflation:     0.12,
		InvestmentReturnRate: 0.10,

		AdminExpensePct: 0.04,

		ParticipationRate:     1.0,
		EmployeeContrRate:     0.01,
		EmployerContrRate:     0.03,
		SelfEmployedContrRate: 0.04,
		FamilySpouseContrRate: 0.03,
		FamilyChildContrRate:  0.01,
		StateNonCapableRate:   0.05,

		CigaretteTaxLump: 3000.0,
		HighwayTollsLump: 500.0,

		MinWageAnnual: 36000.0,

		PrudentialMargin:      0.05,
		ApplyPrudentialMargin: true,
	}
}

// Load resolves the server config from the environment. When
// UHI_ASSUMPTIONS_FILE is set, the named YAML file partially overrides
// the statutory defaults; fields it omits keep their default values.
func Load() (Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	assumptions := DefaultAssumptions()
	if path := os.Getenv("UHI_ASSUMPTIONS_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("assumptions file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &assumptions); err != nil {
			return Config{}, fmt.Errorf("assumptions file %s: %w", path, err)
		}
	}

	return Config{Port: port, Assumptions: assumptions}, nil
}
