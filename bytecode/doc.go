// Package bytecode provides an in-memory model of JVM method bodies.
//
// A method body is an ordered sequence of Instruction values. Real
// instructions carry a standard JVM opcode; label definitions, source line
// markers and stack map frames occupy stream positions of their own using
// negative pseudo-opcodes, so that structural rewrites can reorder them
// relative to instructions.
//
// # Labels
//
// Labels have identity semantics: a *Label denotes one position, and two
// labels are the same position only if they are the same pointer. Jump and
// switch instructions reference their destinations through *Label, as do
// exception handler ranges, line markers and frame stack entries for
// uninitialized values.
//
// # Classification
//
// Flow analysis never dispatches on raw opcodes. Classify maps each opcode
// into a closed control-flow taxonomy:
//
//	ClassOther       loads, stores, arithmetic, allocation, ...
//	ClassGoto        goto, goto_w
//	ClassCondJump    ifeq .. ifnonnull
//	ClassSwitch      tableswitch, lookupswitch
//	ClassTerminal    *return, athrow
//	ClassCall        invoke*
//	ClassSubroutine  jsr, jsr_w, ret (rejected as unsupported input)
//	ClassMeta        label, line and frame pseudo-instructions
//
// # Building bodies
//
// The Insn, Jump, LabelAt, Line and Frame constructors build streams
// directly:
//
//	l1 := bytecode.NewLabel("L1")
//	body := &bytecode.MethodBody{
//	    Name: "example",
//	    Instructions: []bytecode.Instruction{
//	        bytecode.Insn(bytecode.OpILoad1),
//	        bytecode.Jump(bytecode.OpIfEq, l1),
//	        bytecode.Insn(bytecode.OpReturn),
//	        bytecode.LabelAt(l1),
//	        bytecode.Insn(bytecode.OpReturn),
//	    },
//	}
//
// The jasm package assembles the same structures from a text listing.
package bytecode
