package model

// YearRecord is one projected fiscal year. Records are produced in
// strictly increasing Year order; ReserveFund carries forward between
// years, so the sequence is inherently sequential.
type YearRecord struct {
	Year                 int        `json:"Year"`
	RevenueWageSelf      float64    `json:"Revenue_Wage_Self"`
	RevenueFamily        float64    `json:"Revenue_Family"`
	RevenueState         float64    `json:"Revenue_State"`
	RevenueOther         float64    `json:"Revenue_Other"`
	TotalRevenue         float64    `json:"Total_Revenue"`
	MedicalExpenditure   float64    `json:"Medical_Expenditure"`
	AdminExpenditure     float64    `json:"Admin_Expenditure"`
	TotalExpenditure     float64    `json:"Total_Expenditure"`
	NetCashFlow          float64    `json:"Net_Cash_Flow"`
	InvestmentIncome     float64    `json:"Investment_Income"`
	ReserveFund          float64    `json:"Reserve_Fund"`
	RequiredStateSubsidy float64    `json:"Required_State_Subsidy"`
	RiskFlags            []RiskFlag `json:"Risk_Flags"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

// RiskFlag marks one legal/actuarial threshold breach in a single
// projected year.
type RiskFlag struct {
	Level   string `json:"level"`
	Type    string `json:"type"`
	Message string `json:"msg"`
	Action  string `json:"action"`
}
