package jasm

import (
	"errors"
	"testing"

	"github.com/probekit/jvm-flow/bytecode"
	flowerrors "github.com/probekit/jvm-flow/errors"
)

func TestAssembleMax(t *testing.T) {
	src := `
.method max
entry:
line 3
iload 0
iload 1
if_icmpge else
iload 0
goto done
else:
line 5
iload 1
done:
line 6
ireturn
`
	body, err := Assemble(src)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if body.Name != "max" {
		t.Errorf("method name = %q, want %q", body.Name, "max")
	}

	positions := body.LabelPositions()
	if len(positions) != 3 {
		t.Fatalf("defined labels = %d, want 3", len(positions))
	}

	var jump, unconditional bytecode.Instruction
	for _, insn := range body.Instructions {
		switch insn.Opcode {
		case bytecode.OpIfICmpGe:
			jump = insn
		case bytecode.OpGoto:
			unconditional = insn
		}
	}
	var elseLabel, doneLabel *bytecode.Label
	for l := range positions {
		switch l.Name {
		case "else":
			elseLabel = l
		case "done":
			doneLabel = l
		}
	}
	if jump.Imm.(bytecode.JumpImm).Target != elseLabel {
		t.Error("if_icmpge does not target the defined else label")
	}
	if unconditional.Imm.(bytecode.JumpImm).Target != doneLabel {
		t.Error("goto does not target the defined done label")
	}

	if err := body.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestAssembleLineWithoutPrecedingLabel(t *testing.T) {
	body, err := Assemble("line 10\nreturn\n")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	// A label must be synthesized so the marker has a start position.
	l, ok := body.Instructions[0].Label()
	if !ok {
		t.Fatalf("first instruction is %v, want synthesized label", body.Instructions[0])
	}
	imm := body.Instructions[1].Imm.(bytecode.LineImm)
	if imm.Start != l || imm.Line != 10 {
		t.Errorf("line marker = %+v, want start at synthesized label, line 10", imm)
	}
}

func TestAssembleCatchDirective(t *testing.T) {
	src := `
.method guarded
L0:
invokestatic Risky.run()V
L1:
return
L2:
frame stack java/io/IOException
pop
return
.catch L0 L1 L2 java/io/IOException
`
	body, err := Assemble(src)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(body.TryCatch) != 1 {
		t.Fatalf("try/catch blocks = %d, want 1", len(body.TryCatch))
	}
	tc := body.TryCatch[0]
	if tc.Start.Name != "L0" || tc.End.Name != "L1" || tc.Handler.Name != "L2" {
		t.Errorf("catch range = %s..%s handler %s", tc.Start, tc.End, tc.Handler)
	}
	if tc.Type != "java/io/IOException" {
		t.Errorf("catch type = %q", tc.Type)
	}
}

func TestAssembleFrameForms(t *testing.T) {
	src := `
new Widget
L0:
frame stack @L0
nop
L1:
frame same
return
`
	body, err := Assemble(src)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	var frames []bytecode.FrameImm
	for _, insn := range body.Instructions {
		if imm, ok := insn.Imm.(bytecode.FrameImm); ok {
			frames = append(frames, imm)
		}
	}
	if len(frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(frames))
	}
	if frames[0].Kind != bytecode.FrameSame1 {
		t.Errorf("first frame kind = %d, want same_locals_1_stack_item", frames[0].Kind)
	}
	l, ok := frames[0].Stack[0].(*bytecode.Label)
	if !ok || l.Name != "L0" {
		t.Errorf("first frame stack entry = %v, want label L0", frames[0].Stack[0])
	}
	if frames[1].Kind != bytecode.FrameSame || len(frames[1].Stack) != 0 {
		t.Errorf("second frame = %+v, want empty same frame", frames[1])
	}
}

func TestAssembleSwitches(t *testing.T) {
	src := `
entry:
iload 0
tableswitch 0 1 default Ld L0 L1
L0:
goto Ld
L1:
goto Ld
Ld:
iload 0
lookupswitch default Le 1:L0 7:L1
Le:
return
`
	body, err := Assemble(src)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	var table bytecode.TableSwitchImm
	var lookup bytecode.LookupSwitchImm
	for _, insn := range body.Instructions {
		switch imm := insn.Imm.(type) {
		case bytecode.TableSwitchImm:
			table = imm
		case bytecode.LookupSwitchImm:
			lookup = imm
		}
	}

	if table.Min != 0 || table.Max != 1 || len(table.Labels) != 2 {
		t.Errorf("tableswitch = %+v", table)
	}
	if table.Default.Name != "Ld" {
		t.Errorf("tableswitch default = %s", table.Default)
	}
	if len(lookup.Keys) != 2 || lookup.Keys[0] != 1 || lookup.Keys[1] != 7 {
		t.Errorf("lookupswitch keys = %v", lookup.Keys)
	}
	// The same name resolves to the same label everywhere in the listing.
	if lookup.Labels[0] != table.Labels[0] {
		t.Error("L0 in lookupswitch is not the same label as in tableswitch")
	}
}

func TestAssembleOperandForms(t *testing.T) {
	src := `
bipush 100
istore 3
iinc 3 -1
ldc 12345
getstatic java/lang/System.out Ljava/io/PrintStream;
invokevirtual java/io/PrintStream.println(I)V
invokedynamic apply ()Ljava/util/function/Function;
multianewarray [[I 2
return
`
	body, err := Assemble(src)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	byOp := make(map[int16]bytecode.Instruction)
	for _, insn := range body.Instructions {
		byOp[insn.Opcode] = insn
	}

	if imm := byOp[bytecode.OpBIPush].Imm.(bytecode.IntImm); imm.Value != 100 {
		t.Errorf("bipush operand = %d", imm.Value)
	}
	if imm := byOp[bytecode.OpIStore].Imm.(bytecode.VarImm); imm.Index != 3 {
		t.Errorf("istore index = %d", imm.Index)
	}
	if imm := byOp[bytecode.OpIInc].Imm.(bytecode.IincImm); imm.Index != 3 || imm.Increment != -1 {
		t.Errorf("iinc = %+v", imm)
	}
	if imm := byOp[bytecode.OpLdc].Imm.(bytecode.LdcImm); imm.Value != int64(12345) {
		t.Errorf("ldc operand = %v", imm.Value)
	}
	field := byOp[bytecode.OpGetStatic].Imm.(bytecode.FieldImm)
	if field.Owner != "java/lang/System" || field.Name != "out" {
		t.Errorf("getstatic = %+v", field)
	}
	method := byOp[bytecode.OpInvokeVirtual].Imm.(bytecode.MethodImm)
	if method.Owner != "java/io/PrintStream" || method.Name != "println" || method.Desc != "(I)V" {
		t.Errorf("invokevirtual = %+v", method)
	}
	if method.Interface {
		t.Error("invokevirtual marked as interface call")
	}
	indy := byOp[bytecode.OpInvokeDynamic].Imm.(bytecode.InvokeDynamicImm)
	if indy.Name != "apply" {
		t.Errorf("invokedynamic name = %q", indy.Name)
	}
	arr := byOp[bytecode.OpMultiANewArray].Imm.(bytecode.MultiANewArrayImm)
	if arr.Desc != "[[I" || arr.Dims != 2 {
		t.Errorf("multianewarray = %+v", arr)
	}
}

func TestAssembleErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown mnemonic", "frobnicate\n"},
		{"undefined label", "goto nowhere\nreturn\n"},
		{"duplicate label", "L0:\nL0:\nreturn\n"},
		{"trailing operand", "nop nop\n"},
		{"bad lookupswitch pair", "lookupswitch default Ld fiveL2\nLd:\nreturn\n"},
		{"short tableswitch", "tableswitch 0 2 default Ld L0\nLd:\nL0:\nreturn\n"},
		{"bad method reference", "invokestatic missingparens\nreturn\n"},
		{"unknown directive", ".bogus\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(tt.src)
			if err == nil {
				t.Fatalf("Assemble(%q) succeeded, want error", tt.src)
			}
			var e *flowerrors.Error
			if !errors.As(err, &e) {
				t.Errorf("error %v is not a structured error", err)
			}
		})
	}
}
