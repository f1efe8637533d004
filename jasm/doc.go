// Package jasm assembles a small textual bytecode listing format into a
// method body suitable for flow analysis.
//
// The format is line-oriented. Each line is one statement; ';' starts a
// comment running to the end of the line. Statements are:
//
//	.method <name>              method header
//	.catch L0 L1 L2 [type]      try range [L0,L1) with handler L2
//	L0:                         label definition
//	line <n>                    source line marker, bound to the label
//	                            directly above (one is synthesized if the
//	                            previous statement is not a label)
//	frame same                  stack map frame, empty stack
//	frame stack <item...>       stack map frame with stack entries; an
//	                            item prefixed with '@' is a label reference
//	<mnemonic> [operands]       a JVM instruction
//
// Jump mnemonics take a label operand. Switches are written as:
//
//	tableswitch 0 2 default Ld L0 L1 L2
//	lookupswitch default Ld 1:L0 5:L1
//
// Invocations are written as owner.name(desc)ret in one word, field
// accesses as owner.name followed by the descriptor.
//
//	body, err := jasm.Assemble(src)
package jasm
