package flow

import (
	"github.com/probekit/jvm-flow/bytecode"
	"github.com/probekit/jvm-flow/errors"
)

// Normalize eliminates the ambiguity between a line marker and a frame
// snapshot sharing one stream position. A frame describes the verifier
// type state at a position; when a line marker's label coincides exactly
// with a frame, a downstream rewrite cannot separate "before the frame"
// from "after". For every line marker immediately followed by a frame the
// stream is rewritten from
//
//	<line start=L> <frame>
//
// to
//
//	<frame> nop <newlabel N> <line start=N>
//
// The nop guarantees the new label denotes a real instruction boundary.
// After all rewrites are collected, a second pass replaces occurrences of
// rewritten labels in frame stack entries. The patch cannot be folded into
// the first pass: a frame earlier in the stream may reference a label
// whose rewrite is only discovered later (a back-edge).
//
// Normalize is idempotent: on an already-normalized stream no line marker
// precedes a frame, and the body is left untouched.
func Normalize(body *bytecode.MethodBody) error {
	insns := body.Instructions
	rewrites := make(map[*bytecode.Label]*bytecode.Label)
	out := make([]bytecode.Instruction, 0, len(insns))

	for idx := 0; idx < len(insns); idx++ {
		insn := insns[idx]
		if insn.Opcode != bytecode.OpPseudoLine || idx+1 >= len(insns) ||
			insns[idx+1].Opcode != bytecode.OpPseudoFrame {
			out = append(out, insn)
			continue
		}

		line, ok := insn.Imm.(bytecode.LineImm)
		if !ok || line.Start == nil {
			return errors.Inconsistent(errors.PhaseNormalize, body.Name,
				"line marker without a start label")
		}

		newLabel := bytecode.NewLabel(line.Start.Name + "'")
		out = append(out,
			insns[idx+1],
			bytecode.Insn(bytecode.OpNop),
			bytecode.LabelAt(newLabel),
			bytecode.Line(line.Line, newLabel),
		)
		rewrites[line.Start] = newLabel
		idx++ // frame already emitted
	}

	if len(rewrites) > 0 {
		for i, insn := range out {
			if insn.Opcode != bytecode.OpPseudoFrame {
				continue
			}
			frame, ok := insn.Imm.(bytecode.FrameImm)
			if !ok {
				return errors.Inconsistent(errors.PhaseNormalize, body.Name,
					"frame pseudo-instruction without frame data")
			}
			for j, entry := range frame.Stack {
				if old, ok := entry.(*bytecode.Label); ok {
					if repl, hit := rewrites[old]; hit {
						frame.Stack[j] = repl
					}
				}
			}
			out[i].Imm = frame
		}
	}

	body.Instructions = out
	return nil
}
