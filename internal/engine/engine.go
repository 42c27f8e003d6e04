package engine

import (
	"math"

	"uhi-engine/internal/model"
	"uhi-engine/internal/risk"
)

// baseFigures are the undiscounted year-one aggregates computed once per
// projection; the year loop only applies growth factors to them.
type baseFigures struct {
	work    float64
	family  float64
	state   float64
	other   float64
	medical float64
}

// Project rolls the population forward year by year under the given
// assumptions and returns one YearRecord per projected year. It is pure
// and deterministic: identical inputs yield identical output, and the
// population is never mutated.
func Project(pop model.Population, a model.Assumptions, years int) []model.YearRecord {
	if years <= 0 {
		return []model.YearRecord{}
	}

	base := baseYear(pop, a)
	records := make([]model.YearRecord, 0, years)
	reserve := 0.0

	for y := 0; y < years; y++ {
		wageGrowth := math.Pow(1+a.WageInflation, float64(y))
		medGrowth := math.Pow(1+a.MedicalInflation, float64(y))

		revWork := base.work * wageGrowth
		revFamily := base.family * wageGrowth
		revState := base.state * wageGrowth
		// Earmarked lumps are indexed to wage inflation as well, so
		// their real value does not erode over the horizon.
		revOther := base.other * wageGrowth

		totalRevenue := revWork + revFamily + revState + revOther

		medicalCost := base.medical * medGrowth
		marginedCost := medicalCost
		if a.ApplyPrudentialMargin {
			marginedCost = medicalCost * (1 + a.PrudentialMargin)
		}

		adminCost := totalRevenue * a.AdminExpensePct
		totalExpenditure := marginedCost + adminCost

		netCashFlow := totalRevenue - totalExpenditure
		investmentIncome := reserve * a.InvestmentReturnRate
		reserve += netCashFlow + investmentIncome

		subsidy := 0.0
		if reserve < 0 {
			subsidy = -reserve
		}

		records = append(records, model.YearRecord{
			Year:                 y + 1,
			RevenueWageSelf:      revWork,
			RevenueFamily:        revFamily,
			RevenueState:         revState,
			RevenueOther:         revOther,
			TotalRevenue:         totalRevenue,
			MedicalExpenditure:   medicalCost,
			AdminExpenditure:     adminCost,
			TotalExpenditure:     totalExpenditure,
			NetCashFlow:          netCashFlow,
			InvestmentIncome:     investmentIncome,
			ReserveFund:          reserve,
			RequiredStateSubsidy: subsidy,
			RiskFlags: risk.Detect(risk.Figures{
				TotalRevenue:         totalRevenue,
				TotalExpenditure:     totalExpenditure,
				AdminExpenditure:     adminCost,
				NetCashFlow:          netCashFlow,
				ReserveFund:          reserve,
				InvestmentReturnRate: a.InvestmentReturnRate,
				MedicalInflation:     a.MedicalInflation,
				WageInflation:        a.WageInflation,
			}),
		})
	}

	return records
}

// baseYear partitions the population once and computes the undiscounted
// aggregates. Terms whose source columns were absent contribute zero;
// a missing cost column falls back to a flat default per head. An empty
// population yields an all-zero base, lump revenues included.
func baseYear(pop model.Population, a model.Assumptions) baseFigures {
	if pop.Size() == 0 {
		return baseFigures{}
	}

	var base baseFigures

	if pop.Columns.MonthlyWage && pop.Columns.EmploymentStatus {
		var employeeWages, selfEmployedWages float64
		for _, m := range pop.Members {
			switch m.EmploymentStatus {
			case model.StatusEmployee:
				employeeWages += m.MonthlyWage
			case model.StatusSelfEmployed:
				selfEmployedWages += m.MonthlyWage
			}
		}
		base.work = employeeWages*12*(a.EmployeeContrRate+a.EmployerContrRate) +
			selfEmployedWages*12*a.SelfEmployedContrRate
	}

	if pop.Columns.MonthlyWage && pop.Columns.SpouseInSystem {
		var spouseWages float64
		for _, m := range pop.Members {
			if m.SpouseInSystem {
				spouseWages += m.MonthlyWage
			}
		}
		base.family += spouseWages * 12 * a.FamilySpouseContrRate
	}
	if pop.Columns.MonthlyWage && pop.Columns.ChildrenCount {
		var childWeightedWages float64
		for _, m := range pop.Members {
			childWeightedWages += float64(m.ChildrenCount) * m.MonthlyWage
		}
		base.family += childWeightedWages * 12 * a.FamilyChildContrRate
	}

	if pop.Columns.EmploymentStatus {
		nonCapable := 0
		for _, m := range pop.Members {
			if m.EmploymentStatus == model.StatusNonCapable {
				nonCapable++
			}
		}
		base.state = float64(nonCapable) * a.MinWageAnnual * a.StateNonCapableRate
	}

	base.other = a.CigaretteTaxLump + a.HighwayTollsLump

	if pop.Columns.EstimatedAnnualCost {
		for _, m := range pop.Members {
			base.medical += m.EstimatedAnnualCost
		}
	} else {
		base.medical = model.DefaultAnnualCost * float64(pop.Size())
	}

	return base
}
