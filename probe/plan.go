package probe

import (
	"github.com/probekit/jvm-flow/bytecode"
	"github.com/probekit/jvm-flow/errors"
	"github.com/probekit/jvm-flow/flow"
)

// Kind classifies a probe insertion point.
type Kind int

const (
	// KindLabel is a probe inserted directly after a label that is both a
	// join point and reachable by fall-through. Without a probe there, the
	// fall-through path and the jump paths into the join would be
	// indistinguishable.
	KindLabel Kind = iota

	// KindBranch is a probe on the edge of a conditional jump or switch
	// case whose destination is a join point. The edge has to be split so
	// the probe observes this edge only.
	KindBranch

	// KindExit is a probe immediately before a return or throw
	// instruction, covering the path that leaves the method.
	KindExit
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindBranch:
		return "branch"
	case KindExit:
		return "exit"
	}
	return "unknown"
}

// Point is one planned probe. InsnIndex is the position in the instruction
// stream the probe attaches to; Label is the join label for label and
// branch probes, nil for exit probes. Line is the source line active at
// the point, 0 when no line marker was in scope.
type Point struct {
	Label     *bytecode.Label
	ID        int
	Kind      Kind
	InsnIndex int
	Line      int
}

// Options selects which probe categories to plan. The zero value plans
// nothing; use DefaultOptions for the standard full set.
type Options struct {
	LabelProbes  bool
	BranchProbes bool
	ExitProbes   bool
}

// DefaultOptions enables every probe category.
func DefaultOptions() Options {
	return Options{LabelProbes: true, BranchProbes: true, ExitProbes: true}
}

// Plan walks the instruction stream in order and produces the probe points
// the flow properties call for. IDs are assigned sequentially in stream
// order, so the plan is deterministic for a given body.
func Plan(body *bytecode.MethodBody, store *flow.Store, opts Options) ([]Point, error) {
	if body == nil || store == nil {
		return nil, errors.InvalidInput(errors.PhasePlan, "nil method body or flow store")
	}

	var points []Point
	line := 0
	add := func(p Point) {
		p.ID = len(points)
		p.Line = line
		points = append(points, p)
	}

	for idx, insn := range body.Instructions {
		switch insn.Class() {
		case bytecode.ClassMeta:
			switch imm := insn.Imm.(type) {
			case bytecode.LineImm:
				line = imm.Line
			case bytecode.LabelImm:
				li := store.Get(imm.Label)
				if opts.LabelProbes && li.MultiTarget() && li.Successor() {
					add(Point{Kind: KindLabel, Label: imm.Label, InsnIndex: idx})
				}
			}

		case bytecode.ClassCondJump:
			if !opts.BranchProbes {
				continue
			}
			target := insn.Imm.(bytecode.JumpImm).Target
			if store.Get(target).MultiTarget() {
				add(Point{Kind: KindBranch, Label: target, InsnIndex: idx})
			}

		case bytecode.ClassSwitch:
			if !opts.BranchProbes {
				continue
			}
			// One probe per distinct destination of this switch, matching
			// the single structural edge counted by the analysis.
			seen := make(map[*bytecode.Label]bool)
			for _, target := range insn.Targets() {
				if seen[target] {
					continue
				}
				seen[target] = true
				if store.Get(target).MultiTarget() {
					add(Point{Kind: KindBranch, Label: target, InsnIndex: idx})
				}
			}

		case bytecode.ClassTerminal:
			if opts.ExitProbes {
				add(Point{Kind: KindExit, InsnIndex: idx})
			}
		}
	}

	return points, nil
}
