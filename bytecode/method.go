package bytecode

import (
	"github.com/probekit/jvm-flow/errors"
)

// TryCatchBlock describes one exception handler range: the protected
// region [Start, End) and the handler entry point. Type is the internal
// name of the caught exception class, or empty for a catch-all entry.
type TryCatchBlock struct {
	Start   *Label
	End     *Label
	Handler *Label
	Type    string
}

// MethodBody is the ordered instruction sequence of one method plus its
// exception handler table. The slice is mutable; flow normalization
// rewrites it in place.
type MethodBody struct {
	Name         string
	Instructions []Instruction
	TryCatch     []TryCatchBlock
}

// LabelPositions returns the stream index of every defined label.
func (b *MethodBody) LabelPositions() map[*Label]int {
	pos := make(map[*Label]int)
	for i, insn := range b.Instructions {
		if l, ok := insn.Label(); ok {
			pos[l] = i
		}
	}
	return pos
}

// Validate checks structural consistency: every label referenced by a
// jump, switch, line marker or handler range must be defined somewhere in
// the stream. A violation is a contract breach by the producer of the
// body, not a recoverable condition.
func (b *MethodBody) Validate() error {
	defined := b.LabelPositions()

	check := func(l *Label, what string) error {
		if l == nil {
			return errors.Inconsistent(errors.PhaseValidate, b.Name, what+" references a nil label")
		}
		if _, ok := defined[l]; !ok {
			return errors.Inconsistent(errors.PhaseValidate, b.Name,
				what+" references label "+l.String()+" with no position in the stream")
		}
		return nil
	}

	for _, insn := range b.Instructions {
		for _, t := range insn.Targets() {
			if err := check(t, Mnemonic(insn.Opcode)); err != nil {
				return err
			}
		}
		if imm, ok := insn.Imm.(LineImm); ok && insn.Opcode == OpPseudoLine {
			if err := check(imm.Start, "line marker"); err != nil {
				return err
			}
		}
	}

	for _, tc := range b.TryCatch {
		if err := check(tc.Start, "handler range start"); err != nil {
			return err
		}
		if err := check(tc.End, "handler range end"); err != nil {
			return err
		}
		if err := check(tc.Handler, "handler entry"); err != nil {
			return err
		}
	}

	return nil
}
