package model

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type EmploymentStatus string

const (
	StatusEmployee     EmploymentStatus = "Employee"
	StatusSelfEmployed EmploymentStatus = "Self-employed"
	StatusNonCapable   EmploymentStatus = "Non-capable"
	StatusUnknown      EmploymentStatus = "Unknown"
)

// DefaultAnnualCost is the flat per-head medical cost assumed when the
// population table carries no EstimatedAnnualCost column.
const DefaultAnnualCost = 5000.0

// Individual is one row of the insured population table. Immutable once
// generated or loaded; the projector only aggregates over individuals.
type Individual struct {
	Age                 int              `json:"age"`
	Gender              Gender           `json:"gender"`
	EmploymentStatus    EmploymentStatus `json:"employment_status"`
	MonthlyWage         float64          `json:"monthly_wage"`
	SpouseInSystem      bool             `json:"spouse_in_system"`
	ChildrenCount       int              `json:"children_count"`
	EstimatedAnnualCost float64          `json:"estimated_annual_cost"`
}

// Columns records which optional attributes were present in the source
// table. An absent column degrades its revenue/cost term to zero (or to
// the flat default, for EstimatedAnnualCost) rather than failing.
type Columns struct {
	EmploymentStatus    bool
	MonthlyWage         bool
	SpouseInSystem      bool
	ChildrenCount       bool
	EstimatedAnnualCost bool
}

// Population is a read-only table of insured individuals. It is safe to
// share across concurrent Monte Carlo trials.
type Population struct {
	Members []Individual
	Columns Columns
}

func (p Population) Size() int { return len(p.Members) }
