package bytecode

// Pseudo-opcodes mark stream positions that are not executable
// instructions. They occupy a slot in a method body so that labels, line
// markers and stack map frames keep their ordering relative to real
// instructions.
const (
	OpPseudoLabel int16 = -1 // label definition at this position
	OpPseudoLine  int16 = -2 // source line marker
	OpPseudoFrame int16 = -3 // stack map frame snapshot
)

// Constant loading opcodes.
const (
	OpNop        int16 = 0x00 // nop
	OpAConstNull int16 = 0x01 // aconst_null
	OpIConstM1   int16 = 0x02 // iconst_m1
	OpIConst0    int16 = 0x03 // iconst_0
	OpIConst1    int16 = 0x04 // iconst_1
	OpIConst2    int16 = 0x05 // iconst_2
	OpIConst3    int16 = 0x06 // iconst_3
	OpIConst4    int16 = 0x07 // iconst_4
	OpIConst5    int16 = 0x08 // iconst_5
	OpLConst0    int16 = 0x09 // lconst_0
	OpLConst1    int16 = 0x0A // lconst_1
	OpFConst0    int16 = 0x0B // fconst_0
	OpFConst1    int16 = 0x0C // fconst_1
	OpFConst2    int16 = 0x0D // fconst_2
	OpDConst0    int16 = 0x0E // dconst_0
	OpDConst1    int16 = 0x0F // dconst_1
	OpBIPush     int16 = 0x10 // bipush
	OpSIPush     int16 = 0x11 // sipush
	OpLdc        int16 = 0x12 // ldc
	OpLdcW       int16 = 0x13 // ldc_w
	OpLdc2W      int16 = 0x14 // ldc2_w
)

// Local variable load opcodes.
const (
	OpILoad  int16 = 0x15 // iload
	OpLLoad  int16 = 0x16 // lload
	OpFLoad  int16 = 0x17 // fload
	OpDLoad  int16 = 0x18 // dload
	OpALoad  int16 = 0x19 // aload
	OpILoad0 int16 = 0x1A // iload_0
	OpILoad1 int16 = 0x1B // iload_1
	OpILoad2 int16 = 0x1C // iload_2
	OpILoad3 int16 = 0x1D // iload_3
	OpLLoad0 int16 = 0x1E // lload_0
	OpLLoad1 int16 = 0x1F // lload_1
	OpLLoad2 int16 = 0x20 // lload_2
	OpLLoad3 int16 = 0x21 // lload_3
	OpFLoad0 int16 = 0x22 // fload_0
	OpFLoad1 int16 = 0x23 // fload_1
	OpFLoad2 int16 = 0x24 // fload_2
	OpFLoad3 int16 = 0x25 // fload_3
	OpDLoad0 int16 = 0x26 // dload_0
	OpDLoad1 int16 = 0x27 // dload_1
	OpDLoad2 int16 = 0x28 // dload_2
	OpDLoad3 int16 = 0x29 // dload_3
	OpALoad0 int16 = 0x2A // aload_0
	OpALoad1 int16 = 0x2B // aload_1
	OpALoad2 int16 = 0x2C // aload_2
	OpALoad3 int16 = 0x2D // aload_3
)

// Array load opcodes.
const (
	OpIALoad int16 = 0x2E // iaload
	OpLALoad int16 = 0x2F // laload
	OpFALoad int16 = 0x30 // faload
	OpDALoad int16 = 0x31 // daload
	OpAALoad int16 = 0x32 // aaload
	OpBALoad int16 = 0x33 // baload
	OpCALoad int16 = 0x34 // caload
	OpSALoad int16 = 0x35 // saload
)

// Local variable store opcodes.
const (
	OpIStore  int16 = 0x36 // istore
	OpLStore  int16 = 0x37 // lstore
	OpFStore  int16 = 0x38 // fstore
	OpDStore  int16 = 0x39 // dstore
	OpAStore  int16 = 0x3A // astore
	OpIStore0 int16 = 0x3B // istore_0
	OpIStore1 int16 = 0x3C // istore_1
	OpIStore2 int16 = 0x3D // istore_2
	OpIStore3 int16 = 0x3E // istore_3
	OpLStore0 int16 = 0x3F // lstore_0
	OpLStore1 int16 = 0x40 // lstore_1
	OpLStore2 int16 = 0x41 // lstore_2
	OpLStore3 int16 = 0x42 // lstore_3
	OpFStore0 int16 = 0x43 // fstore_0
	OpFStore1 int16 = 0x44 // fstore_1
	OpFStore2 int16 = 0x45 // fstore_2
	OpFStore3 int16 = 0x46 // fstore_3
	OpDStore0 int16 = 0x47 // dstore_0
	OpDStore1 int16 = 0x48 // dstore_1
	OpDStore2 int16 = 0x49 // dstore_2
	OpDStore3 int16 = 0x4A // dstore_3
	OpAStore0 int16 = 0x4B // astore_0
	OpAStore1 int16 = 0x4C // astore_1
	OpAStore2 int16 = 0x4D // astore_2
	OpAStore3 int16 = 0x4E // astore_3
)

// Array store opcodes.
const (
	OpIAStore int16 = 0x4F // iastore
	OpLAStore int16 = 0x50 // lastore
	OpFAStore int16 = 0x51 // fastore
	OpDAStore int16 = 0x52 // dastore
	OpAAStore int16 = 0x53 // aastore
	OpBAStore int16 = 0x54 // bastore
	OpCAStore int16 = 0x55 // castore
	OpSAStore int16 = 0x56 // sastore
)

// Stack manipulation opcodes.
const (
	OpPop    int16 = 0x57 // pop
	OpPop2   int16 = 0x58 // pop2
	OpDup    int16 = 0x59 // dup
	OpDupX1  int16 = 0x5A // dup_x1
	OpDupX2  int16 = 0x5B // dup_x2
	OpDup2   int16 = 0x5C // dup2
	OpDup2X1 int16 = 0x5D // dup2_x1
	OpDup2X2 int16 = 0x5E // dup2_x2
	OpSwap   int16 = 0x5F // swap
)

// Arithmetic and logic opcodes.
const (
	OpIAdd  int16 = 0x60 // iadd
	OpLAdd  int16 = 0x61 // ladd
	OpFAdd  int16 = 0x62 // fadd
	OpDAdd  int16 = 0x63 // dadd
	OpISub  int16 = 0x64 // isub
	OpLSub  int16 = 0x65 // lsub
	OpFSub  int16 = 0x66 // fsub
	OpDSub  int16 = 0x67 // dsub
	OpIMul  int16 = 0x68 // imul
	OpLMul  int16 = 0x69 // lmul
	OpFMul  int16 = 0x6A // fmul
	OpDMul  int16 = 0x6B // dmul
	OpIDiv  int16 = 0x6C // idiv
	OpLDiv  int16 = 0x6D // ldiv
	OpFDiv  int16 = 0x6E // fdiv
	OpDDiv  int16 = 0x6F // ddiv
	OpIRem  int16 = 0x70 // irem
	OpLRem  int16 = 0x71 // lrem
	OpFRem  int16 = 0x72 // frem
	OpDRem  int16 = 0x73 // drem
	OpINeg  int16 = 0x74 // ineg
	OpLNeg  int16 = 0x75 // lneg
	OpFNeg  int16 = 0x76 // fneg
	OpDNeg  int16 = 0x77 // dneg
	OpIShl  int16 = 0x78 // ishl
	OpLShl  int16 = 0x79 // lshl
	OpIShr  int16 = 0x7A // ishr
	OpLShr  int16 = 0x7B // lshr
	OpIUShr int16 = 0x7C // iushr
	OpLUShr int16 = 0x7D // lushr
	OpIAnd  int16 = 0x7E // iand
	OpLAnd  int16 = 0x7F // land
	OpIOr   int16 = 0x80 // ior
	OpLOr   int16 = 0x81 // lor
	OpIXor  int16 = 0x82 // ixor
	OpLXor  int16 = 0x83 // lxor
	OpIInc  int16 = 0x84 // iinc
)

// Type conversion opcodes.
const (
	OpI2L int16 = 0x85 // i2l
	OpI2F int16 = 0x86 // i2f
	OpI2D int16 = 0x87 // i2d
	OpL2I int16 = 0x88 // l2i
	OpL2F int16 = 0x89 // l2f
	OpL2D int16 = 0x8A // l2d
	OpF2I int16 = 0x8B // f2i
	OpF2L int16 = 0x8C // f2l
	OpF2D int16 = 0x8D // f2d
	OpD2I int16 = 0x8E // d2i
	OpD2L int16 = 0x8F // d2l
	OpD2F int16 = 0x90 // d2f
	OpI2B int16 = 0x91 // i2b
	OpI2C int16 = 0x92 // i2c
	OpI2S int16 = 0x93 // i2s
)

// Comparison opcodes.
const (
	OpLCmp  int16 = 0x94 // lcmp
	OpFCmpL int16 = 0x95 // fcmpl
	OpFCmpG int16 = 0x96 // fcmpg
	OpDCmpL int16 = 0x97 // dcmpl
	OpDCmpG int16 = 0x98 // dcmpg
)

// Conditional jump opcodes. All of these fall through to the next
// instruction when the condition does not hold.
const (
	OpIfEq      int16 = 0x99 // ifeq
	OpIfNe      int16 = 0x9A // ifne
	OpIfLt      int16 = 0x9B // iflt
	OpIfGe      int16 = 0x9C // ifge
	OpIfGt      int16 = 0x9D // ifgt
	OpIfLe      int16 = 0x9E // ifle
	OpIfICmpEq  int16 = 0x9F // if_icmpeq
	OpIfICmpNe  int16 = 0xA0 // if_icmpne
	OpIfICmpLt  int16 = 0xA1 // if_icmplt
	OpIfICmpGe  int16 = 0xA2 // if_icmpge
	OpIfICmpGt  int16 = 0xA3 // if_icmpgt
	OpIfICmpLe  int16 = 0xA4 // if_icmple
	OpIfACmpEq  int16 = 0xA5 // if_acmpeq
	OpIfACmpNe  int16 = 0xA6 // if_acmpne
	OpIfNull    int16 = 0xC6 // ifnull
	OpIfNonNull int16 = 0xC7 // ifnonnull
)

// Unconditional control transfer opcodes.
const (
	OpGoto         int16 = 0xA7 // goto
	OpJsr          int16 = 0xA8 // jsr (subroutine call, unsupported)
	OpRet          int16 = 0xA9 // ret (subroutine return, unsupported)
	OpTableSwitch  int16 = 0xAA // tableswitch
	OpLookupSwitch int16 = 0xAB // lookupswitch
	OpGotoW        int16 = 0xC8 // goto_w
	OpJsrW         int16 = 0xC9 // jsr_w (subroutine call, unsupported)
)

// Method exit opcodes.
const (
	OpIReturn int16 = 0xAC // ireturn
	OpLReturn int16 = 0xAD // lreturn
	OpFReturn int16 = 0xAE // freturn
	OpDReturn int16 = 0xAF // dreturn
	OpAReturn int16 = 0xB0 // areturn
	OpReturn  int16 = 0xB1 // return
	OpAThrow  int16 = 0xBF // athrow
)

// Field access opcodes.
const (
	OpGetStatic int16 = 0xB2 // getstatic
	OpPutStatic int16 = 0xB3 // putstatic
	OpGetField  int16 = 0xB4 // getfield
	OpPutField  int16 = 0xB5 // putfield
)

// Method invocation opcodes.
const (
	OpInvokeVirtual   int16 = 0xB6 // invokevirtual
	OpInvokeSpecial   int16 = 0xB7 // invokespecial
	OpInvokeStatic    int16 = 0xB8 // invokestatic
	OpInvokeInterface int16 = 0xB9 // invokeinterface
	OpInvokeDynamic   int16 = 0xBA // invokedynamic
)

// Object and array opcodes.
const (
	OpNew            int16 = 0xBB // new
	OpNewArray       int16 = 0xBC // newarray
	OpANewArray      int16 = 0xBD // anewarray
	OpArrayLength    int16 = 0xBE // arraylength
	OpCheckCast      int16 = 0xC0 // checkcast
	OpInstanceOf     int16 = 0xC1 // instanceof
	OpMonitorEnter   int16 = 0xC2 // monitorenter
	OpMonitorExit    int16 = 0xC3 // monitorexit
	OpWide           int16 = 0xC4 // wide (modifier prefix)
	OpMultiANewArray int16 = 0xC5 // multianewarray
)

// Frame kinds for FrameImm. Compressed frame forms all expand to the same
// flow behavior; the kind is retained so a class writer can re-emit the
// compact encoding.
const (
	FrameNew    int16 = -1 // expanded frame with full locals and stack
	FrameFull   int16 = 0  // full_frame
	FrameAppend int16 = 1  // append_frame
	FrameChop   int16 = 2  // chop_frame
	FrameSame   int16 = 3  // same_frame
	FrameSame1  int16 = 4  // same_locals_1_stack_item_frame
)
