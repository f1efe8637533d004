// Package probe plans coverage probe insertion points from the label flow
// properties computed by the flow package.
//
// The planner does not modify bytecode. It produces an ordered list of
// Point values describing where an instrumentation writer has to insert
// probes:
//
//   - after a label that is a join point reached by fall-through
//   - on conditional jump and switch edges into a join point
//   - before every return and throw
//
// Probe IDs are assigned sequentially in stream order, so the same body
// always yields the same plan.
//
//	store, _ := flow.MarkLabels(body)
//	points, err := probe.Plan(body, store, probe.DefaultOptions())
package probe
