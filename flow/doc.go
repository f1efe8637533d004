// Package flow computes control-flow properties for the labels of one JVM
// method body.
//
// For every label the analysis answers four questions that decide where a
// coverage instrumentation pass must insert probes:
//
//   - is the label ever the destination of a control-flow edge (target)
//   - is it targeted by more than one distinct edge (multitarget, a join)
//   - is it reachable by fall-through from the preceding instruction
//     (successor)
//   - which source line owns the closest preceding method invocation, for
//     attributing probes on exceptional edges
//
// Probes are needed at join points and at reachable fall-through
// positions, not at every instruction.
//
// # Usage
//
//	store, err := flow.MarkLabels(body)
//	if err != nil {
//	    // unsupported construct or inconsistent input
//	}
//	info := store.Get(label)
//	if info.MultiTarget() && info.Successor() { ... }
//
// MarkLabels first runs Normalize, which moves line markers behind frame
// snapshots so every jump target sits on an unambiguous instruction
// boundary, then runs the single-pass Analyze. Both steps are linear in
// the stream length.
//
// # Concurrency
//
// One Store belongs to one analysis run. Runs over different method
// bodies share no state, so callers may analyze many methods in parallel
// without synchronization; the engine package provides a fan-out helper.
//
// # Unsupported input
//
// The legacy jsr/ret subroutine construct is rejected with an
// unsupported-construct error. Contemporary compilers do not emit it, and
// its dynamic return addresses cannot be described by the flag model.
package flow
