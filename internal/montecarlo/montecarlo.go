package montecarlo

import (
	"math"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"uhi-engine/internal/engine"
	"uhi-engine/internal/model"
)

// Options control one stochastic run.
type Options struct {
	Years  int
	Trials int

	// Per-trial perturbation widths. A width of zero degenerates the
	// run to the deterministic projection.
	MedicalStdDev float64
	ReturnStdDev  float64

	// Seed drives the per-trial RNGs; results are reproducible for a
	// fixed seed regardless of worker scheduling.
	Seed int64

	// Workers bounds the trial fan-out; 0 means GOMAXPROCS.
	Workers int
}

// DefaultOptions mirrors the perturbation widths the valuation engine
// has always used: both stochastic rates drawn with stddev 0.02.
func DefaultOptions(years, trials int) Options {
	if years <= 0 {
		years = 10
	}
	if trials <= 0 {
		trials = 100
	}
	return Options{
		Years:         years,
		Trials:        trials,
		MedicalStdDev: 0.02,
		ReturnStdDev:  0.02,
		Seed:          defaultSeed,
	}
}

const defaultSeed = 1337

// Simulate re-runs the projector opts.Trials times, independently
// perturbing medical inflation and investment return per trial, and
// aggregates the reserve-fund distribution. The population is shared
// read-only across trials; each trial builds its own assumptions.
func Simulate(pop model.Population, base model.Assumptions, opts Options) model.SimulationResult {
	if opts.Years <= 0 || opts.Trials <= 0 {
		return model.SimulationResult{
			P5: []float64{}, P50: []float64{}, P95: []float64{},
			Years: []int{},
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	reserves := make([][]float64, opts.Trials)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < opts.Trials; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(opts.Seed + int64(i)))

			a := base
			a.MedicalInflation = base.MedicalInflation + rng.NormFloat64()*opts.MedicalStdDev
			a.InvestmentReturnRate = base.InvestmentReturnRate + rng.NormFloat64()*opts.ReturnStdDev

			records := engine.Project(pop, a, opts.Years)
			row := make([]float64, opts.Years)
			for y, rec := range records {
				row[y] = rec.ReserveFund
			}
			reserves[i] = row
			return nil
		})
	}
	_ = g.Wait() // trials never return errors; the group only bounds fan-out

	p5 := make([]float64, opts.Years)
	p50 := make([]float64, opts.Years)
	p95 := make([]float64, opts.Years)
	years := make([]int, opts.Years)

	column := make([]float64, opts.Trials)
	for y := 0; y < opts.Years; y++ {
		for i := range reserves {
			column[i] = reserves[i][y]
		}
		sort.Float64s(column)
		p5[y] = percentile(column, 5)
		p50[y] = percentile(column, 50)
		p95[y] = percentile(column, 95)
		years[y] = y + 1
	}

	insolvent := 0
	for _, row := range reserves {
		if row[opts.Years-1] < 0 {
			insolvent++
		}
	}

	return model.SimulationResult{
		P5:             p5,
		P50:            p50,
		P95:            p95,
		ProbInsolvency: float64(insolvent) / float64(opts.Trials) * 100,
		Years:          years,
	}
}

// percentile computes the q-th percentile of an already sorted slice
// using linear interpolation between closest ranks.
func percentile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	rank := q / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
