package cpu

import (
	"strings"
)

// OperandClass is the operand shape accepted by an opcode.
type OperandClass int

//go:generate go tool stringer -linecomment -type=OperandClass
const (
	CLASS_NONE      = OperandClass(0) // none
	CLASS_REG       = OperandClass(1) // reg
	CLASS_REG_REG   = OperandClass(2) // reg,reg
	CLASS_REG_IMM5  = OperandClass(3) // reg,imm5
	CLASS_REG_IMM16 = OperandClass(4) // reg,imm16
)

// Opcode is a Sim6 instruction mnemonic.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP   = Opcode(0)  // nop
	OP_ADD   = Opcode(1)  // add
	OP_ADDC  = Opcode(2)  // addc
	OP_INC   = Opcode(3)  // inc
	OP_SUB   = Opcode(4)  // sub
	OP_SUBB  = Opcode(5)  // subb
	OP_DEC   = Opcode(6)  // dec
	OP_CMP   = Opcode(7)  // cmp
	OP_NEG   = Opcode(8)  // neg
	OP_MOVE  = Opcode(9)  // move
	OP_PUSH  = Opcode(10) // push
	OP_POP   = Opcode(11) // pop
	OP_PUSHA = Opcode(12) // pusha
	OP_POPA  = Opcode(13) // popa
	OP_PUSHF = Opcode(14) // pushf
	OP_POPF  = Opcode(15) // popf
	OP_SWAP  = Opcode(16) // swap
	OP_IN    = Opcode(17) // in
	OP_OUT   = Opcode(18) // out
	OP_LOAD  = Opcode(19) // load
	OP_MOVI  = Opcode(20) // movi
	OP_MUL   = Opcode(21) // mul
	OP_MULU  = Opcode(22) // mulu
	OP_DIV   = Opcode(23) // div
	OP_DIVU  = Opcode(24) // divu
	OP_CSIGN = Opcode(25) // csign
	OP_NOT   = Opcode(26) // not
	OP_AND   = Opcode(27) // and
	OP_OR    = Opcode(28) // or
	OP_XOR   = Opcode(29) // xor
	OP_SRA   = Opcode(30) // sra
	OP_SRL   = Opcode(31) // srl
	OP_SLL   = Opcode(32) // sll
	OP_CLEAR = Opcode(33) // clear
	OP_CALL  = Opcode(34) // call
	OP_RET   = Opcode(35) // ret
	OP_JUMP  = Opcode(36) // jump
	OP_JEQ   = Opcode(37) // jeq
	OP_JNE   = Opcode(38) // jne
	OP_JGT   = Opcode(39) // jgt
	OP_JLE   = Opcode(40) // jle
	OP_JGTE  = Opcode(41) // jgte
	OP_JLTE  = Opcode(42) // jlte
	OP_JZRO  = Opcode(43) // jzro
	OP_JNZRO = Opcode(44) // jnzro
	OP_JOVF  = Opcode(45) // jovf
	OP_JCRY  = Opcode(46) // jcry
	OP_SCRY  = Opcode(47) // scry
	OP_CCRY  = Opcode(48) // ccry
	OP_EITR  = Opcode(49) // eitr
	OP_DITR  = Opcode(50) // ditr
	OP_INTR  = Opcode(51) // intr
	OP_INTO  = Opcode(52) // into
	OP_IRET  = Opcode(53) // iret
	OP_STORE = Opcode(54) // store
	OP_ADDU  = Opcode(55) // addu
	OP_SUBU  = Opcode(56) // subu
)

type opcodeInfo struct {
	class    OperandClass
	signed   bool
	setFlags bool
}

// opcodeTable is indexed by the 6-bit opcode value.
var opcodeTable = [...]opcodeInfo{
	OP_NOP:   {CLASS_NONE, false, false},
	OP_ADD:   {CLASS_REG_REG, true, true},
	OP_ADDC:  {CLASS_REG, true, true},
	OP_INC:   {CLASS_REG, true, true},
	OP_SUB:   {CLASS_REG_REG, true, true},
	OP_SUBB:  {CLASS_REG, true, true},
	OP_DEC:   {CLASS_REG, true, true},
	OP_CMP:   {CLASS_REG_REG, true, true},
	OP_NEG:   {CLASS_REG, true, true},
	OP_MOVE:  {CLASS_REG_REG, false, false},
	OP_PUSH:  {CLASS_REG, false, false},
	OP_POP:   {CLASS_REG, false, false},
	OP_PUSHA: {CLASS_NONE, false, false},
	OP_POPA:  {CLASS_NONE, false, false},
	OP_PUSHF: {CLASS_NONE, false, false},
	OP_POPF:  {CLASS_NONE, false, true},
	OP_SWAP:  {CLASS_REG_REG, false, false},
	OP_IN:    {CLASS_REG_IMM5, false, false},
	OP_OUT:   {CLASS_REG_IMM5, false, false},
	OP_LOAD:  {CLASS_REG_REG, false, false},
	OP_MOVI:  {CLASS_REG_IMM16, false, false},
	OP_MUL:   {CLASS_REG_REG, true, true},
	OP_MULU:  {CLASS_REG_REG, false, true},
	OP_DIV:   {CLASS_REG_REG, true, true},
	OP_DIVU:  {CLASS_REG_REG, false, true},
	OP_CSIGN: {CLASS_REG, true, true},
	OP_NOT:   {CLASS_REG, false, true},
	OP_AND:   {CLASS_REG_REG, false, true},
	OP_OR:    {CLASS_REG_REG, false, true},
	OP_XOR:   {CLASS_REG_REG, false, true},
	OP_SRA:   {CLASS_REG_REG, true, true},
	OP_SRL:   {CLASS_REG_REG, false, true},
	OP_SLL:   {CLASS_REG_REG, false, true},
	OP_CLEAR: {CLASS_REG, false, true},
	OP_CALL:  {CLASS_REG, false, false},
	OP_RET:   {CLASS_NONE, false, false},
	OP_JUMP:  {CLASS_REG, false, false},
	OP_JEQ:   {CLASS_REG, false, false},
	OP_JNE:   {CLASS_REG, false, false},
	OP_JGT:   {CLASS_REG, false, false},
	OP_JLE:   {CLASS_REG, false, false},
	OP_JGTE:  {CLASS_REG, false, false},
	OP_JLTE:  {CLASS_REG, false, false},
	OP_JZRO:  {CLASS_REG, false, false},
	OP_JNZRO: {CLASS_REG, false, false},
	OP_JOVF:  {CLASS_REG, false, false},
	OP_JCRY:  {CLASS_REG, false, false},
	OP_SCRY:  {CLASS_NONE, false, true},
	OP_CCRY:  {CLASS_NONE, false, true},
	OP_EITR:  {CLASS_NONE, false, false},
	OP_DITR:  {CLASS_NONE, false, false},
	OP_INTR:  {CLASS_REG_IMM5, false, false},
	OP_INTO:  {CLASS_REG_IMM5, false, false},
	OP_IRET:  {CLASS_NONE, false, false},
	OP_STORE: {CLASS_REG_REG, false, false},
	OP_ADDU:  {CLASS_REG_REG, false, true},
	OP_SUBU:  {CLASS_REG_REG, false, true},
}

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = map[string]Opcode{}

func init() {
	for op := range Opcode(len(opcodeTable)) {
		opcodeMap[op.String()] = op
	}
}

// OpcodeCount is the number of defined opcodes.
const OpcodeCount = len(opcodeTable)

// ParseOpcode returns the opcode for a mnemonic, ignoring case.
func ParseOpcode(word string) (op Opcode, err error) {
	op, ok := opcodeMap[strings.ToLower(word)]
	if !ok {
		err = ErrOpcodeUnknown(word)
		return
	}

	return
}

// OpcodeOf returns the opcode with the 6-bit numeric code.
func OpcodeOf(code uint16) (op Opcode, ok bool) {
	if int(code) >= len(opcodeTable) {
		return
	}
	return Opcode(code), true
}

func (op Opcode) valid() bool {
	return op >= 0 && int(op) < len(opcodeTable)
}

// Code returns the 6-bit numeric opcode.
func (op Opcode) Code() uint16 {
	return uint16(op) & 0x3f
}

// Class returns the operand shape of the opcode.
func (op Opcode) Class() OperandClass {
	if !op.valid() {
		return CLASS_NONE
	}
	return opcodeTable[op].class
}

// Signed is true for opcodes that operate on two's-complement values.
func (op Opcode) Signed() bool {
	return op.valid() && opcodeTable[op].signed
}

// SetFlags is true for opcodes that update the status flags.
func (op Opcode) SetFlags() bool {
	return op.valid() && opcodeTable[op].setFlags
}
