package runner

import (
	"sync"

	"ssh-sweep/pkg/model"
)

// Aggregator is the single destination for finished results. Record is safe
// under concurrent workers; counts only ever go up, and their sum equals the
// number of recorded results.
type Aggregator struct {
	mu      sync.Mutex
	counts  map[model.ErrorKind]int
	results []model.Result
}

func NewAggregator() *Aggregator {
	return &Aggregator{counts: make(map[model.ErrorKind]int)}
}

// Record stores r and bumps its kind's counter.
func (a *Aggregator) Record(r model.Result) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.counts[r.Status]++
	a.results = append(a.results, r)
}

// Snapshot is a consistent copy of the aggregator's state.
type Snapshot struct {
	Counts  map[model.ErrorKind]int
	Results []model.Result
	Total   int
}

// Snapshot returns copies, so reporters can never mutate live state.
// Meaningful once the pool has drained; taking one mid-run is safe but
// reflects only the results recorded so far.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	counts := make(map[model.ErrorKind]int, len(a.counts))
	for k, v := range a.counts {
		counts[k] = v
	}
	results := append([]model.Result(nil), a.results...)
	return Snapshot{Counts: counts, Results: results, Total: len(results)}
}
