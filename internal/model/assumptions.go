package model

// Assumptions is the frozen bundle of economic and legal-rate parameters
// for one projection run, following the Law 2/2018 contribution schedule.
// Construct once and never mutate; every Monte Carlo trial builds its own
// copy before running the projector.
type Assumptions struct {
	// Economic assumptions
	WageInflation        float64 `json:"wage_inflation" yaml:"wage_inflation"`
	MedicalInflation     float64 `json:"medical_inflation" yaml:"medical_inflation"`
	InvestmentReturnRate float64 `json:"investment_return_rate" yaml:"investment_return_rate"`

	// Administrative assumptions. The legal cap is 5% of revenue; the
	// detector flags any year above it.
	AdminExpensePct float64 `json:"admin_expense_pct" yaml:"admin_expense_pct"`

	// Law-specific contribution rates
	ParticipationRate     float64 `json:"participation_rate" yaml:"participation_rate"`
	EmployeeContrRate     float64 `json:"employee_contr_rate" yaml:"employee_contr_rate"`
	EmployerContrRate     float64 `json:"employer_contr_rate" yaml:"employer_contr_rate"`
	SelfEmployedContrRate float64 `json:"self_employed_contr_rate" yaml:"self_employed_contr_rate"`
	FamilySpouseContrRate float64 `json:"family_spouse_contr_rate" yaml:"family_spouse_contr_rate"`
	FamilyChildContrRate  float64 `json:"family_child_contr_rate" yaml:"family_child_contr_rate"`
	StateNonCapableRate   float64 `json:"state_non_capable_rate" yaml:"state_non_capable_rate"`

	// Earmarked lump-sum revenues (annual estimates). These grow with
	// wage inflation in the projection so they do not erode in real terms.
	CigaretteTaxLump float64 `json:"cigarette_tax_lump" yaml:"cigarette_tax_lump"`
	HighwayTollsLump float64 `json:"highway_tolls_lump" yaml:"highway_tolls_lump"`

	// External constants
	MinWageAnnual float64 `json:"min_wage_annual" yaml:"min_wage_annual"`

	// PrudentialMargin is a safety loading applied on top of expected
	// medical cost when ApplyPrudentialMargin is set (default on).
	PrudentialMargin      float64 `json:"prudential_margin" yaml:"prudential_margin"`
	ApplyPrudentialMargin bool    `json:"apply_prudential_margin" yaml:"apply_prudential_margin"`
}
