package model

// SimulationRequest carries the caller-supplied overrides for one
// projection or Monte Carlo run. The handler pre-fills it with the
// statutory defaults before decoding, so absent fields keep their
// default values.
type SimulationRequest struct {
	WageInflation        float64 `json:"wage_inflation"`
	MedicalInflation     float64 `json:"medical_inflation"`
	InvestmentReturnRate float64 `json:"investment_return_rate"`
	AdminExpensePct      float64 `json:"admin_expense_pct"`

	ProjectionYears int  `json:"projection_years"`
	PopulationSize  int  `json:"population_size"`
	EliteMode       bool `json:"elite_mode"`

	// Trials only applies to /monte-carlo.
	Trials int `json:"trials,omitempty"`

	// PopulationCSV, when non-empty, is parsed as the population table
	// instead of sampling a synthetic one.
	PopulationCSV string `json:"population_csv,omitempty"`
}
