package runner

import (
	"context"
	"log"

	"ssh-sweep/pkg/model"
)

// Prober produces one finished result per spec. Satisfied by probe.Prober;
// tests substitute their own.
type Prober interface {
	Run(ctx context.Context, spec model.HostSpec) model.Result
}

// Sink receives each result as it completes, e.g. a CSV file or a sqlite
// database. Implementations serialize their own writes.
type Sink interface {
	Write(r model.Result) error
}

// Run probes every spec through a pool of at most maxJobs concurrent
// attempts, records each result, streams it to the sinks, and returns the
// final snapshot once everything has drained. Sink errors are logged and do
// not stop the run.
func Run(ctx context.Context, specs []model.HostSpec, p Prober, maxJobs int, sinks ...Sink) Snapshot {
	pool := NewPool(maxJobs)
	agg := NewAggregator()
	for _, spec := range specs {
		spec := spec
		pool.Submit(func() {
			res := p.Run(ctx, spec)
			agg.Record(res)
			for _, s := range sinks {
				if err := s.Write(res); err != nil {
					log.Printf("sink write failed for %s: %v", spec.Addr(), err)
				}
			}
		})
	}
	pool.Drain()
	return agg.Snapshot()
}
