// Package engine runs the full method analysis pipeline.
//
// A run takes a method body through four stages:
//
//  1. structural validation of label references
//  2. frame boundary normalization (flow.Normalize)
//  3. label flow analysis (flow.Analyze)
//  4. probe planning (probe.Plan)
//
// Analyze processes a single body; AnalyzeAll fans a batch out over a
// bounded number of goroutines. Each body gets its own flow store, so
// results are independent and the batch order is preserved.
//
//	results := engine.AnalyzeAll(bodies, engine.DefaultOptions(), 4)
//	for _, res := range results {
//	    if res.Err != nil {
//	        ...
//	    }
//	}
//
// Logging is off by default; install a logger with SetLogger to get
// per-stage debug output.
package engine
