package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultAssumptions(t *testing.T) {
	a := DefaultAssumptions()

	require.Equal(t, 0.07, a.WageInflation)
	require.Equal(t, 0.12, a.MedicalInflation)
	require.Equal(t, 0.10, a.InvestmentReturnRate)
	require.Equal(t, 0.04, a.AdminExpensePct)
	require.Equal(t, 0.01, a.EmployeeContrRate)
	require.Equal(t, 0.03, a.EmployerContrRate)
	require.Equal(t, 0.04, a.SelfEmployedContrRate)
	require.Equal(t, 36000.0, a.MinWageAnnual)
	require.Equal(t, 3500.0, a.CigaretteTaxLump+a.HighwayTollsLump)
	require.True(t, a.ApplyPrudentialMargin)
	require.Equal(t, 0.05, a.PrudentialMargin)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("UHI_ASSUMPTIONS_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, DefaultAssumptions(), cfg.Assumptions)
}

func TestLoadAssumptionsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assumptions.yaml")
	override := []byte("medical_inflation: 0.15\nmin_wage_annual: 42000\napply_prudential_margin: false\n")
	require.NoError(t, os.WriteFile(path, override, 0o644))

	t.Setenv("PORT", "9090")
	t.Setenv("UHI_ASSUMPTIONS_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, 0.15, cfg.Assumptions.MedicalInflation)
	require.Equal(t, 42000.0, cfg.Assumptions.MinWageAnnual)
	require.False(t, cfg.Assumptions.ApplyPrudentialMargin)
	// Fields the file omits keep their statutory defaults.
	require.Equal(t, 0.07, cfg.Assumptions.WageInflation)
	require.Equal(t, 0.03, cfg.Assumptions.EmployerContrRate)
}

func TestLoadMissingAssumptionsFile(t *testing.T) {
	t.Setenv("UHI_ASSUMPTIONS_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestLoadMalformedAssumptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("medical_inflation: [not a number"), 0o644))
	t.Setenv("UHI_ASSUMPTIONS_FILE", path)

	_, err := Load()
	require.Error(t, err)
}
