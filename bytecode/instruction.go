package bytecode

// Instruction is one element of a method body. Real instructions carry a
// JVM opcode; labels, line markers and frame snapshots use the negative
// pseudo-opcodes and occupy a stream position of their own.
type Instruction struct {
	Imm    interface{}
	Opcode int16
}

// LabelImm marks a label definition at this stream position.
type LabelImm struct {
	Label *Label
}

// LineImm associates a source line number with a stream position. Start is
// the label denoting the position where the line begins.
type LineImm struct {
	Start *Label
	Line  int
}

// FrameImm is a stack map frame snapshot describing the verifier-visible
// type state at this position. Locals and Stack hold verification type
// entries; an entry may be a *Label placeholder for an uninitialized value
// created by a new instruction at that label.
type FrameImm struct {
	Locals []interface{}
	Stack  []interface{}
	Kind   int16
}

// JumpImm holds the destination for goto, jsr and all conditional jumps.
type JumpImm struct {
	Target *Label
}

// TableSwitchImm holds the dense jump table for tableswitch.
type TableSwitchImm struct {
	Labels  []*Label
	Default *Label
	Min     int32
	Max     int32
}

// LookupSwitchImm holds the sparse key/target pairs for lookupswitch.
// Keys and Labels are parallel slices.
type LookupSwitchImm struct {
	Keys    []int32
	Labels  []*Label
	Default *Label
}

// VarImm holds the local variable index for load, store and ret.
type VarImm struct {
	Index int
}

// IntImm holds the operand for bipush, sipush and newarray.
type IntImm struct {
	Value int32
}

// FieldImm holds the symbolic field reference for get/put instructions.
type FieldImm struct {
	Owner string
	Name  string
	Desc  string
}

// MethodImm holds the symbolic method reference for invoke instructions.
type MethodImm struct {
	Owner     string
	Name      string
	Desc      string
	Interface bool
}

// InvokeDynamicImm holds the call site descriptor for invokedynamic.
// Bootstrap method details are irrelevant to flow analysis and kept opaque.
type InvokeDynamicImm struct {
	Name      string
	Desc      string
	Bootstrap interface{}
}

// LdcImm holds the constant operand for ldc, ldc_w and ldc2_w.
type LdcImm struct {
	Value interface{}
}

// IincImm holds the variable index and increment for iinc.
type IincImm struct {
	Index     int
	Increment int
}

// TypeImm holds the type operand for new, anewarray, checkcast and
// instanceof.
type TypeImm struct {
	Type string
}

// MultiANewArrayImm holds the descriptor and dimension count for
// multianewarray.
type MultiANewArrayImm struct {
	Desc string
	Dims int
}

// Class is the control-flow classification of an opcode. Every opcode maps
// to exactly one class; flow analysis dispatches on the class rather than
// on individual opcodes.
type Class int

const (
	ClassOther      Class = iota // no control-transfer effect
	ClassGoto                    // unconditional jump
	ClassCondJump                // conditional jump, may fall through
	ClassSwitch                  // tableswitch or lookupswitch
	ClassTerminal                // return or athrow, no fall-through
	ClassCall                    // method invocation, may throw
	ClassSubroutine              // jsr/ret, rejected as unsupported
	ClassMeta                    // label, line marker or frame snapshot
)

// String returns the classification name.
func (c Class) String() string {
	switch c {
	case ClassOther:
		return "other"
	case ClassGoto:
		return "goto"
	case ClassCondJump:
		return "condjump"
	case ClassSwitch:
		return "switch"
	case ClassTerminal:
		return "terminal"
	case ClassCall:
		return "call"
	case ClassSubroutine:
		return "subroutine"
	case ClassMeta:
		return "meta"
	}
	return "unknown"
}

// Classify maps an opcode to its control-flow class. Opcodes outside the
// known instruction set classify as ClassOther; new control-transfer
// opcodes introduced by a class file version upgrade must be added here
// explicitly.
func Classify(op int16) Class {
	switch op {
	case OpPseudoLabel, OpPseudoLine, OpPseudoFrame:
		return ClassMeta
	case OpGoto, OpGotoW:
		return ClassGoto
	case OpIfEq, OpIfNe, OpIfLt, OpIfGe, OpIfGt, OpIfLe,
		OpIfICmpEq, OpIfICmpNe, OpIfICmpLt, OpIfICmpGe, OpIfICmpGt, OpIfICmpLe,
		OpIfACmpEq, OpIfACmpNe, OpIfNull, OpIfNonNull:
		return ClassCondJump
	case OpTableSwitch, OpLookupSwitch:
		return ClassSwitch
	case OpIReturn, OpLReturn, OpFReturn, OpDReturn, OpAReturn, OpReturn, OpAThrow:
		return ClassTerminal
	case OpInvokeVirtual, OpInvokeSpecial, OpInvokeStatic, OpInvokeInterface, OpInvokeDynamic:
		return ClassCall
	case OpJsr, OpJsrW, OpRet:
		return ClassSubroutine
	}
	return ClassOther
}

// Class returns the control-flow classification of this instruction.
func (i Instruction) Class() Class {
	return Classify(i.Opcode)
}

// Label returns the defined label if this is a label pseudo-instruction.
func (i Instruction) Label() (*Label, bool) {
	if i.Opcode == OpPseudoLabel {
		if imm, ok := i.Imm.(LabelImm); ok {
			return imm.Label, true
		}
	}
	return nil, false
}

// Targets returns all destination labels of a jump or switch instruction,
// in operand order with the switch default first. It returns nil for
// instructions without explicit targets.
func (i Instruction) Targets() []*Label {
	switch imm := i.Imm.(type) {
	case JumpImm:
		return []*Label{imm.Target}
	case TableSwitchImm:
		out := make([]*Label, 0, len(imm.Labels)+1)
		out = append(out, imm.Default)
		out = append(out, imm.Labels...)
		return out
	case LookupSwitchImm:
		out := make([]*Label, 0, len(imm.Labels)+1)
		out = append(out, imm.Default)
		out = append(out, imm.Labels...)
		return out
	}
	return nil
}

// Insn builds a plain instruction with no operands.
func Insn(op int16) Instruction {
	return Instruction{Opcode: op}
}

// Jump builds a jump instruction targeting the given label.
func Jump(op int16, target *Label) Instruction {
	return Instruction{Opcode: op, Imm: JumpImm{Target: target}}
}

// LabelAt builds the pseudo-instruction defining a label position.
func LabelAt(l *Label) Instruction {
	return Instruction{Opcode: OpPseudoLabel, Imm: LabelImm{Label: l}}
}

// Line builds a line marker starting at the given label.
func Line(line int, start *Label) Instruction {
	return Instruction{Opcode: OpPseudoLine, Imm: LineImm{Line: line, Start: start}}
}

// Frame builds a frame snapshot pseudo-instruction.
func Frame(kind int16, locals, stack []interface{}) Instruction {
	return Instruction{Opcode: OpPseudoFrame, Imm: FrameImm{Kind: kind, Locals: locals, Stack: stack}}
}
