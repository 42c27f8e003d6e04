// Package audit derives explanatory and compliance summaries from a
// finished projection. Everything here consumes projector output; nothing
// feeds back into the roll-forward.
package audit

import (
	"fmt"
	"math"

	"uhi-engine/internal/model"
	"uhi-engine/internal/risk"
)

// SolvencyRatio is revenue over expenditure for one year; >= 1.0 means
// the year is self-funding. A zero denominator reports the sentinel 0.
func SolvencyRatio(totalRevenue, totalExpenditure float64) float64 {
	if totalExpenditure == 0 {
		return 0
	}
	return totalRevenue / totalExpenditure
}

// ExplainProjection attributes the expenditure growth between the first
// and last projected year to its drivers.
func ExplainProjection(records []model.YearRecord, a model.Assumptions) []string {
	if len(records) < 2 {
		return []string{"Insufficient data for trend analysis."}
	}

	first := records[0]
	last := records[len(records)-1]
	totalDelta := last.TotalExpenditure - first.TotalExpenditure

	horizon := float64(len(records) - 1)
	medGrowth := math.Pow(1+a.MedicalInflation, horizon)
	inflationImpact := last.MedicalExpenditure / medGrowth * (medGrowth - 1)
	adminDelta := last.AdminExpenditure - first.AdminExpenditure

	var inflationPct, adminPct float64
	if totalDelta > 0 {
		inflationPct = inflationImpact / totalDelta * 100
		adminPct = adminDelta / totalDelta * 100
	}

	explanations := []string{
		fmt.Sprintf("Medical inflation contributed ~%.1f%% of the projected cost rise.", inflationPct),
		fmt.Sprintf("Admin operations contributed ~%.1f%% of expenditure growth.", adminPct),
	}
	if last.RequiredStateSubsidy > 0 {
		explanations = append(explanations, "Sustainability gap: revenue growth is failing to outpace the medical trend.")
	}
	return explanations
}

// Compliance runs the three standing audits over a full projection:
// legislative (admin cap), actuarial (solvency), financial (yield vs
// medical trend).
func Compliance(records []model.YearRecord, a model.Assumptions) []model.AuditFinding {
	if len(records) == 0 {
		return []model.AuditFinding{}
	}
	last := records[len(records)-1]

	legStatus := "COMPLIANT"
	legAnalysis := "All years respect the 5% administrative expense cap."
	for _, rec := range records {
		if rec.AdminExpenditure > rec.TotalRevenue*risk.AdminExpenseCap {
			legStatus = "WARNING"
			legAnalysis = "Detected years violating the 5% administrative cap."
			break
		}
	}

	actStatus := "STABLE"
	if last.ReserveFund < 0 {
		actStatus = "INSOLVENT"
	}
	actAnalysis := fmt.Sprintf("Final-year reserve %.1f with solvency ratio %.2f; projected health is %s.",
		last.ReserveFund, SolvencyRatio(last.TotalRevenue, last.TotalExpenditure), actStatus)

	finStatus := "STABLE"
	finAnalysis := fmt.Sprintf("Investment yield (%.1f%%) keeps pace with medical inflation (%.1f%%).",
		a.InvestmentReturnRate*100, a.MedicalInflation*100)
	if a.InvestmentReturnRate < a.MedicalInflation {
		finStatus = "WARNING"
		finAnalysis = fmt.Sprintf("Investment yield (%.1f%%) trails medical inflation (%.1f%%).",
			a.InvestmentReturnRate*100, a.MedicalInflation*100)
	}

	return []model.AuditFinding{
		{Area: "Legislative", Status: legStatus, Analysis: legAnalysis, Goal: "Enforce Law 2/2018"},
		{Area: "Actuarial", Status: actStatus, Analysis: actAnalysis, Goal: "Solvency Assurance"},
		{Area: "Financial", Status: finStatus, Analysis: finAnalysis, Goal: "Asset Growth"},
	}
}

// SuggestReinsurance proposes a retention layer from the portfolio's
// expected annual medical cost.
func SuggestReinsurance(annualMedicalCost float64) string {
	retention := annualMedicalCost * 0.02
	saving := annualMedicalCost * 0.005
	return fmt.Sprintf("Retain the first %.1fM EGP of claims; estimated annual saving %.1fM EGP.",
		retention/1e6, saving/1e6)
}
