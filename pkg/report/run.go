// Package report collects ghost verdicts for a run and exports them.
package report

import (
	"sort"
	"sync"

	"github.com/younsl/lbghost/internal/models"
)

// Run collects the verdicts of a single scan. It is safe for concurrent use.
type Run struct {
	mu       sync.Mutex
	verdicts []models.GhostVerdict
}

// Summary holds aggregated counts for a run
type Summary struct {
	TotalScanned   int
	Suspicious     int
	DefiniteGhosts int
	Failed         int
	ByStatus       map[models.GhostStatus]int
	ByType         map[models.LoadBalancerType]int
	Compartments   []string
}

// NewRun returns an empty Run
func NewRun() *Run {
	return &Run{}
}

// Add appends verdicts to the run
func (r *Run) Add(verdicts ...models.GhostVerdict) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.verdicts = append(r.verdicts, verdicts...)
}

// Len returns the number of verdicts collected
func (r *Run) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.verdicts)
}

// All returns every verdict sorted by score, highest first.
// Verdicts with equal scores keep the order they were added in.
func (r *Run) All() []models.GhostVerdict {
	return r.filter(func(models.GhostVerdict) bool { return true })
}

// Suspicious returns the verdicts at or above the suspicious threshold,
// sorted by score, highest first
func (r *Run) Suspicious() []models.GhostVerdict {
	return r.filter(models.GhostVerdict.IsSuspicious)
}

func (r *Run) filter(keep func(models.GhostVerdict) bool) []models.GhostVerdict {
	r.mu.Lock()
	result := make([]models.GhostVerdict, 0, len(r.verdicts))
	for _, v := range r.verdicts {
		if keep(v) {
			result = append(result, v)
		}
	}
	r.mu.Unlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})
	return result
}

// Summary computes the aggregated counts of the run
func (r *Run) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Summary{
		TotalScanned: len(r.verdicts),
		ByStatus:     make(map[models.GhostStatus]int),
		ByType:       make(map[models.LoadBalancerType]int),
	}

	compartments := make(map[string]bool)
	for _, v := range r.verdicts {
		s.ByStatus[v.Status]++
		s.ByType[v.Type]++
		if v.IsSuspicious() {
			s.Suspicious++
		}
		if v.Score >= models.ThresholdDefiniteGhost {
			s.DefiniteGhosts++
		}
		if v.Failed() {
			s.Failed++
		}
		if v.Compartment != "" && !compartments[v.Compartment] {
			compartments[v.Compartment] = true
			s.Compartments = append(s.Compartments, v.Compartment)
		}
	}
	sort.Strings(s.Compartments)

	return s
}
