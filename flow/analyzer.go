package flow

import (
	"github.com/probekit/jvm-flow/bytecode"
	"github.com/probekit/jvm-flow/errors"
)

// analyzer walks one method body and classifies every label. All state is
// local to one run; a fresh analyzer is built per method.
type analyzer struct {
	store   *Store
	defined map[*bytecode.Label]int

	// successor is true when the next label, if any, is reachable by
	// falling through from the instruction just visited.
	successor bool

	// first is true until the first real instruction is visited. The
	// method entry label is always marked as a target so that a probe can
	// be placed at entry even when no edge targets it explicitly.
	first bool

	// Active line marker, if any.
	lineStart *bytecode.Label
	line      int
	hasLine   bool
}

// Analyze performs the single forward pass over a normalized instruction
// stream plus a pass over the exception handler table, and returns the
// per-label flow properties. The handler table is visited first; the two
// passes only set flags, so their order does not affect the result.
//
// A jsr, jsr_w or ret instruction aborts the analysis immediately: the
// subroutine construct is unsupported input and any partially filled store
// is discarded.
func Analyze(body *bytecode.MethodBody) (*Store, error) {
	a := &analyzer{
		store:   NewStore(),
		defined: body.LabelPositions(),
		first:   true,
	}

	for _, tc := range body.TryCatch {
		a.visitTryCatch(tc)
	}

	for _, insn := range body.Instructions {
		if err := a.visit(body.Name, insn); err != nil {
			return nil, err
		}
	}

	return a.store, nil
}

// MarkLabels normalizes the body and analyzes it. This is the standard
// entry point for callers that hold a raw instruction stream.
func MarkLabels(body *bytecode.MethodBody) (*Store, error) {
	if err := Normalize(body); err != nil {
		return nil, err
	}
	return Analyze(body)
}

// visitTryCatch enforces a probe boundary at the protected region start
// and marks the handler entry as a jump target. When the region start is
// already the successor of other code the extra mark makes it a
// multitarget. The end label only delimits the region and is not an entry
// point.
func (a *analyzer) visitTryCatch(tc bytecode.TryCatchBlock) {
	a.store.MarkTarget(tc.Start)
	a.store.MarkTarget(tc.Handler)
}

func (a *analyzer) visit(method string, insn bytecode.Instruction) error {
	switch insn.Class() {
	case bytecode.ClassMeta:
		a.visitMeta(insn)
		return nil

	case bytecode.ClassGoto:
		imm := insn.Imm.(bytecode.JumpImm)
		if err := a.checkDefined(method, insn, imm.Target); err != nil {
			return err
		}
		a.store.MarkTarget(imm.Target)
		a.successor = false
		a.first = false

	case bytecode.ClassCondJump:
		imm := insn.Imm.(bytecode.JumpImm)
		if err := a.checkDefined(method, insn, imm.Target); err != nil {
			return err
		}
		a.store.MarkTarget(imm.Target)
		a.successor = true
		a.first = false

	case bytecode.ClassSwitch:
		return a.visitSwitch(method, insn)

	case bytecode.ClassTerminal:
		a.successor = false
		a.first = false

	case bytecode.ClassCall:
		a.successor = true
		a.first = false
		if a.hasLine {
			a.store.SetInvocationLine(a.lineStart, a.line)
		}

	case bytecode.ClassSubroutine:
		return errors.Unsupported(errors.PhaseAnalyze, method,
			"subroutine instruction "+bytecode.Mnemonic(insn.Opcode))

	default:
		a.successor = true
		a.first = false
	}
	return nil
}

// visitMeta handles label, line and frame pseudo-instructions. None of
// them changes successor or first: passing a marker is not executing an
// instruction.
func (a *analyzer) visitMeta(insn bytecode.Instruction) {
	switch imm := insn.Imm.(type) {
	case bytecode.LabelImm:
		if a.first {
			a.store.MarkTarget(imm.Label)
		}
		if a.successor {
			a.store.MarkSuccessor(imm.Label)
		}
	case bytecode.LineImm:
		a.lineStart = imm.Start
		a.line = imm.Line
		a.hasLine = true
	}
}

// visitSwitch marks every distinct destination of one switch exactly once.
// A label appearing under several case values of the same switch is one
// structural edge, not several; the dedup flag is reset for all
// destinations up front and consulted while marking.
func (a *analyzer) visitSwitch(method string, insn bytecode.Instruction) error {
	var dflt *bytecode.Label
	var labels []*bytecode.Label

	switch imm := insn.Imm.(type) {
	case bytecode.TableSwitchImm:
		dflt, labels = imm.Default, imm.Labels
	case bytecode.LookupSwitchImm:
		dflt, labels = imm.Default, imm.Labels
	default:
		return errors.Inconsistent(errors.PhaseAnalyze, method,
			"switch instruction without switch operands")
	}

	a.store.ResetDedup(dflt)
	a.store.ResetDedup(labels...)

	if err := a.checkDefined(method, insn, dflt); err != nil {
		return err
	}
	a.markTargetOnce(dflt)
	for _, l := range labels {
		if err := a.checkDefined(method, insn, l); err != nil {
			return err
		}
		a.markTargetOnce(l)
	}

	a.successor = false
	a.first = false
	return nil
}

func (a *analyzer) markTargetOnce(l *bytecode.Label) {
	if !a.store.IsDedupMarked(l) {
		a.store.MarkTarget(l)
		a.store.MarkDedup(l)
	}
}

func (a *analyzer) checkDefined(method string, insn bytecode.Instruction, l *bytecode.Label) error {
	if l == nil {
		return errors.Inconsistent(errors.PhaseAnalyze, method,
			bytecode.Mnemonic(insn.Opcode)+" references a nil label")
	}
	if _, ok := a.defined[l]; !ok {
		return errors.Inconsistent(errors.PhaseAnalyze, method,
			bytecode.Mnemonic(insn.Opcode)+" references label "+l.String()+
				" with no position in the stream")
	}
	return nil
}
