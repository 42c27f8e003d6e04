package risk

import (
	"fmt"

	"uhi-engine/internal/model"
)

// AdminExpenseCap is the legal ceiling on administrative cost as a share
// of revenue (Article 40 policy guideline).
const AdminExpenseCap = 0.05

// InflationGapTolerance is how far medical inflation may run above wage
// growth before the gap is flagged.
const InflationGapTolerance = 0.02

// Figures is one projected year's aggregate position plus the economic
// rates it was produced under. The detector is a pure function of this
// struct; nothing carries over between years.
type Figures struct {
	TotalRevenue         float64
	TotalExpenditure     float64
	AdminExpenditure     float64
	NetCashFlow          float64
	ReserveFund          float64
	InvestmentReturnRate float64
	MedicalInflation     float64
	WageInflation        float64
}

// rules are evaluated independently and in order; each can contribute at
// most one flag per year.
var rules = []func(Figures) *model.RiskFlag{
	bankruptcy,
	inflationGap,
	legalBreach,
	liquidityTrap,
	assetErosion,
}

// Detect evaluates every rule against one year's figures and returns the
// flags that fired, in rule order.
func Detect(f Figures) []model.RiskFlag {
	var flags []model.RiskFlag
	for _, rule := range rules {
		if flag := rule(f); flag != nil {
			flags = append(flags, *flag)
		}
	}
	return flags
}

func bankruptcy(f Figures) *model.RiskFlag {
	if f.ReserveFund >= 0 {
		return nil
	}
	return &model.RiskFlag{
		Level:   model.LevelCritical,
		Type:    "Bankruptcy",
		Message: "Article 40 Guarantee Triggered: Technical insolvency projected.",
		Action:  "Immediate State Treasury Intervention Required.",
	}
}

func inflationGap(f Figures) *model.RiskFlag {
	if f.MedicalInflation <= f.WageInflation+InflationGapTolerance {
		return nil
	}
	return &model.RiskFlag{
		Level: model.LevelWarning,
		Type:  "Inflation Gap",
		Message: fmt.Sprintf("Medical inflation (%.1f%%) significantly exceeds wage growth (%.1f%%).",
			f.MedicalInflation*100, f.WageInflation*100),
		Action: "Renegotiate provider rates.",
	}
}

func legalBreach(f Figures) *model.RiskFlag {
	if f.AdminExpenditure <= f.TotalRevenue*AdminExpenseCap {
		return nil
	}
	var sharePct float64
	if f.TotalRevenue != 0 {
		sharePct = f.AdminExpenditure / f.TotalRevenue * 100
	}
	return &model.RiskFlag{
		Level:   model.LevelCritical,
		Type:    "Legal Breach",
		Message: fmt.Sprintf("Admin expenses (%.1f%%) exceed the 5%% legal cap.", sharePct),
		Action:  "Optimize admin operations.",
	}
}

func liquidityTrap(f Figures) *model.RiskFlag {
	if f.NetCashFlow >= 0 || f.ReserveFund <= 0 {
		return nil
	}
	return &model.RiskFlag{
		Level:   model.LevelWarning,
		Type:    "Liquidity Trap",
		Message: "Annual cash flow is negative; the reserve fund is absorbing operating deficits.",
		Action:  "Review contribution rates before reserves deplete.",
	}
}

func assetErosion(f Figures) *model.RiskFlag {
	if f.InvestmentReturnRate >= f.MedicalInflation {
		return nil
	}
	return &model.RiskFlag{
		Level: model.LevelWarning,
		Type:  "Asset Erosion",
		Message: fmt.Sprintf("Investment yield (%.1f%%) trails medical inflation (%.1f%%); reserves lose purchasing power.",
			f.InvestmentReturnRate*100, f.MedicalInflation*100),
		Action: "Rebalance the investment portfolio toward higher-yield assets.",
	}
}
