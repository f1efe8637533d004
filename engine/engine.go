package engine

import (
	"sync"

	"go.uber.org/zap"

	"github.com/probekit/jvm-flow/bytecode"
	"github.com/probekit/jvm-flow/flow"
	"github.com/probekit/jvm-flow/probe"
)

// Options configures a pipeline run.
type Options struct {
	// Probe selects which probe categories to plan.
	Probe probe.Options
}

// DefaultOptions plans every probe category.
func DefaultOptions() Options {
	return Options{Probe: probe.DefaultOptions()}
}

// Result is the outcome of analyzing one method body. When Err is set the
// other fields describe how far processing got: Flow is nil if analysis
// itself failed, Probes is nil if planning did.
type Result struct {
	Flow   *flow.Store
	Err    error
	Probes []probe.Point
	Method string
}

// Analyze runs the full pipeline on one method body: structural
// validation, frame boundary normalization, label flow analysis and probe
// planning. The body is normalized in place.
func Analyze(body *bytecode.MethodBody, opts Options) Result {
	res := Result{Method: body.Name}
	log := Logger()

	if err := body.Validate(); err != nil {
		res.Err = err
		return res
	}

	store, err := flow.MarkLabels(body)
	if err != nil {
		res.Err = err
		return res
	}
	res.Flow = store
	log.Debug("labels marked",
		zap.String("method", body.Name),
		zap.Int("labels", store.Len()))

	points, err := probe.Plan(body, store, opts.Probe)
	if err != nil {
		res.Err = err
		return res
	}
	res.Probes = points
	log.Debug("probes planned",
		zap.String("method", body.Name),
		zap.Int("points", len(points)))

	return res
}

// AnalyzeAll runs Analyze over a set of method bodies with up to workers
// goroutines. Results are returned in input order. workers below 1 is
// treated as 1.
func AnalyzeAll(bodies []*bytecode.MethodBody, opts Options, workers int) []Result {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(bodies))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i, body := range bodies {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, body *bytecode.MethodBody) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = Analyze(body, opts)
		}(i, body)
	}
	wg.Wait()

	return results
}
