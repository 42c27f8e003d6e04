package population

import (
	"math/rand"

	"uhi-engine/internal/model"
)

// samplerSeed is fixed so repeated samples with the same size and mode
// are identical across runs and across processes.
const samplerSeed = 42

// profile holds the mode-dependent distribution parameters for the
// synthetic population.
type profile struct {
	ageMin, ageMax    int // inclusive min, exclusive max
	statusProbs       []float64
	statuses          []model.EmploymentStatus
	wageMean, wageStd float64
	wageMin, wageMax  float64
	spouseProb        float64
	childrenProbs     []float64 // probability of 0, 1, 2, ... children
	costMean, costStd float64
	costMin, costMax  float64
}

var baselineProfile = profile{
	ageMin: 18, ageMax: 75,
	statusProbs: []float64{0.70, 0.20, 0.10},
	statuses:    []model.EmploymentStatus{model.StatusEmployee, model.StatusSelfEmployed, model.StatusNonCapable},
	wageMean:    12000, wageStd: 4000,
	wageMin: 6000, wageMax: 150000,
	spouseProb:    0.6,
	childrenProbs: []float64{0.3, 0.3, 0.3, 0.1},
	costMean:      6000, costStd: 1000,
	costMin: 1000, costMax: 30000,
}

var eliteProfile = profile{
	ageMin: 22, ageMax: 60,
	statusProbs: []float64{0.85, 0.10, 0.05},
	statuses:    []model.EmploymentStatus{model.StatusEmployee, model.StatusSelfEmployed, model.StatusNonCapable},
	wageMean:    18000, wageStd: 4000,
	wageMin: 6000, wageMax: 150000,
	spouseProb:    0.7,
	childrenProbs: []float64{0.5, 0.4, 0.1},
	costMean:      4500, costStd: 1000,
	costMin: 1000, costMax: 30000,
}

// Generate draws a synthetic population of the given size. The elite
// mode shifts the sample toward high-income formal employment. Sizes
// of zero or below yield an empty population (a valid, all-zero input
// for the projector).
func Generate(size int, elite bool) model.Population {
	cols := model.Columns{
		EmploymentStatus:    true,
		MonthlyWage:         true,
		SpouseInSystem:      true,
		ChildrenCount:       true,
		EstimatedAnnualCost: true,
	}
	if size <= 0 {
		return model.Population{Members: []model.Individual{}, Columns: cols}
	}

	p := baselineProfile
	if elite {
		p = eliteProfile
	}

	rng := rand.New(rand.NewSource(samplerSeed))
	members := make([]model.Individual, size)
	for i := range members {
		gender := model.GenderMale
		if rng.Intn(2) == 1 {
			gender = model.GenderFemale
		}
		members[i] = model.Individual{
			Age:                 p.ageMin + rng.Intn(p.ageMax-p.ageMin),
			Gender:              gender,
			EmploymentStatus:    p.statuses[categorical(rng, p.statusProbs)],
			MonthlyWage:         clippedNormal(rng, p.wageMean, p.wageStd, p.wageMin, p.wageMax),
			SpouseInSystem:      rng.Float64() < p.spouseProb,
			ChildrenCount:       categorical(rng, p.childrenProbs),
			EstimatedAnnualCost: clippedNormal(rng, p.costMean, p.costStd, p.costMin, p.costMax),
		}
	}

	return model.Population{Members: members, Columns: cols}
}

// categorical picks an index with the given probabilities. Probabilities
// are assumed to sum to 1; rounding drift falls to the last index.
func categorical(rng *rand.Rand, probs []float64) int {
	u := rng.Float64()
	var cum float64
	for i, p := range probs {
		cum += p
		if u < cum {
			return i
		}
	}
	return len(probs) - 1
}

func clippedNormal(rng *rand.Rand, mean, std, lo, hi float64) float64 {
	v := mean + rng.NormFloat64()*std
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
