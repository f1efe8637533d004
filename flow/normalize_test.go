package flow

import (
	"testing"

	"github.com/probekit/jvm-flow/bytecode"
)

func TestNormalizeMovesLineBehindFrame(t *testing.T) {
	l0 := bytecode.NewLabel("L0")
	body := &bytecode.MethodBody{
		Name: "m",
		Instructions: []bytecode.Instruction{
			bytecode.LabelAt(l0),
			bytecode.Line(10, l0),
			bytecode.Frame(bytecode.FrameSame, nil, nil),
			bytecode.Insn(bytecode.OpReturn),
		},
	}

	if err := Normalize(body); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	ops := make([]int16, len(body.Instructions))
	for i, insn := range body.Instructions {
		ops[i] = insn.Opcode
	}
	want := []int16{
		bytecode.OpPseudoLabel, // original L0, untouched
		bytecode.OpPseudoFrame,
		bytecode.OpNop,
		bytecode.OpPseudoLabel, // fresh label on a real boundary
		bytecode.OpPseudoLine,
		bytecode.OpReturn,
	}
	if len(ops) != len(want) {
		t.Fatalf("stream length = %d, want %d (%v)", len(ops), len(want), ops)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("position %d: opcode %d, want %d", i, ops[i], want[i])
		}
	}

	if got, _ := body.Instructions[0].Label(); got != l0 {
		t.Error("original label identity not preserved")
	}

	newLabel, _ := body.Instructions[3].Label()
	line := body.Instructions[4].Imm.(bytecode.LineImm)
	if line.Start != newLabel {
		t.Error("line marker not rebound to the fresh label")
	}
	if newLabel == l0 {
		t.Error("expected a fresh label, got the original")
	}
	if line.Line != 10 {
		t.Errorf("line number = %d, want 10", line.Line)
	}
}

func TestNormalizePatchesBackEdgeFrames(t *testing.T) {
	// A frame before the rewritten marker references the old start label
	// in its stack entries (uninitialized value placeholder). The patch
	// pass must follow the rewrite even though the frame appears first.
	l0 := bytecode.NewLabel("L0")
	l1 := bytecode.NewLabel("L1")
	body := &bytecode.MethodBody{
		Name: "m",
		Instructions: []bytecode.Instruction{
			bytecode.LabelAt(l1),
			bytecode.Frame(bytecode.FrameFull, nil, []interface{}{"java/lang/Object", l0}),
			bytecode.Insn(bytecode.OpNop),
			bytecode.LabelAt(l0),
			bytecode.Line(7, l0),
			bytecode.Frame(bytecode.FrameSame, nil, nil),
			bytecode.Insn(bytecode.OpReturn),
		},
	}

	if err := Normalize(body); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	var lineStart *bytecode.Label
	for _, insn := range body.Instructions {
		if imm, ok := insn.Imm.(bytecode.LineImm); ok && insn.Opcode == bytecode.OpPseudoLine {
			lineStart = imm.Start
		}
	}
	if lineStart == nil || lineStart == l0 {
		t.Fatal("line marker was not rewritten")
	}

	frame := body.Instructions[1].Imm.(bytecode.FrameImm)
	if frame.Stack[0] != "java/lang/Object" {
		t.Error("non-label stack entry modified")
	}
	if frame.Stack[1] != lineStart {
		t.Errorf("back-edge frame stack entry = %v, want rewritten label", frame.Stack[1])
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	l0 := bytecode.NewLabel("L0")
	body := &bytecode.MethodBody{
		Name: "m",
		Instructions: []bytecode.Instruction{
			bytecode.LabelAt(l0),
			bytecode.Line(3, l0),
			bytecode.Frame(bytecode.FrameSame, nil, nil),
			bytecode.Insn(bytecode.OpReturn),
		},
	}

	if err := Normalize(body); err != nil {
		t.Fatalf("first Normalize: %v", err)
	}

	first := append([]bytecode.Instruction(nil), body.Instructions...)
	if err := Normalize(body); err != nil {
		t.Fatalf("second Normalize: %v", err)
	}

	if len(body.Instructions) != len(first) {
		t.Fatalf("second run changed stream length: %d -> %d", len(first), len(body.Instructions))
	}
	for i := range first {
		if body.Instructions[i].Opcode != first[i].Opcode {
			t.Fatalf("position %d changed opcode on second run", i)
		}
		if body.Instructions[i].Imm != nil && first[i].Imm != nil {
			al, aok := body.Instructions[i].Label()
			bl, bok := first[i].Label()
			if aok && bok && al != bl {
				t.Fatalf("position %d changed label identity on second run", i)
			}
		}
	}
}

func TestNormalizeLeavesPlainStreamsAlone(t *testing.T) {
	l0 := bytecode.NewLabel("L0")
	body := &bytecode.MethodBody{
		Name: "m",
		Instructions: []bytecode.Instruction{
			bytecode.LabelAt(l0),
			bytecode.Line(1, l0),
			bytecode.Insn(bytecode.OpIConst0),
			bytecode.Frame(bytecode.FrameSame, nil, nil),
			bytecode.Insn(bytecode.OpReturn),
		},
	}

	if err := Normalize(body); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(body.Instructions) != 5 {
		t.Errorf("stream length = %d, want unchanged 5", len(body.Instructions))
	}
}
