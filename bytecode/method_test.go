package bytecode

import "testing"

func TestValidateAcceptsConsistentBody(t *testing.T) {
	l := NewLabel("L0")
	body := &MethodBody{
		Name: "ok",
		Instructions: []Instruction{
			LabelAt(l),
			Line(1, l),
			Jump(OpGoto, l),
		},
		TryCatch: []TryCatchBlock{{Start: l, End: l, Handler: l}},
	}
	if err := body.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateRejectsUndefinedReferences(t *testing.T) {
	defined := NewLabel("L0")
	missing := NewLabel("ghost")

	tests := []struct {
		name string
		body *MethodBody
	}{
		{"jump target", &MethodBody{Instructions: []Instruction{
			LabelAt(defined),
			Jump(OpGoto, missing),
		}}},
		{"switch case", &MethodBody{Instructions: []Instruction{
			LabelAt(defined),
			{Opcode: OpLookupSwitch, Imm: LookupSwitchImm{
				Keys: []int32{1}, Labels: []*Label{missing}, Default: defined,
			}},
		}}},
		{"line marker", &MethodBody{Instructions: []Instruction{
			LabelAt(defined),
			Line(5, missing),
		}}},
		{"handler range", &MethodBody{
			Instructions: []Instruction{LabelAt(defined)},
			TryCatch:     []TryCatchBlock{{Start: defined, End: defined, Handler: missing}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.body.Validate(); err == nil {
				t.Error("Validate accepted a dangling reference")
			}
		})
	}
}

func TestValidateSameNameDifferentLabel(t *testing.T) {
	// Identity, not name, decides whether a label is defined.
	defined := NewLabel("L")
	other := NewLabel("L")
	body := &MethodBody{
		Instructions: []Instruction{
			LabelAt(defined),
			Jump(OpGoto, other),
		},
	}
	if err := body.Validate(); err == nil {
		t.Error("Validate matched labels by name")
	}
}

func TestLabelPositions(t *testing.T) {
	a := NewLabel("a")
	b := NewLabel("b")
	body := &MethodBody{
		Instructions: []Instruction{
			LabelAt(a),
			Insn(OpNop),
			LabelAt(b),
			Insn(OpReturn),
		},
	}
	pos := body.LabelPositions()
	if pos[a] != 0 || pos[b] != 2 {
		t.Errorf("positions = %v", pos)
	}
}
