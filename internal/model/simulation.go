package model

// SimulationResult aggregates a Monte Carlo run: per-year percentile
// bands of the reserve fund across trials and the share of trials that
// end insolvent.
type SimulationResult struct {
	P5  []float64 `json:"p5"`
	P50 []float64 `json:"p50"`
	P95 []float64 `json:"p95"`

	// ProbInsolvency is the percentage of trials whose final-year
	// reserve fund is negative.
	ProbInsolvency float64 `json:"prob_insolvency"`

	Years []int `json:"years"`
}
