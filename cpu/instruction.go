// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// OperandKind is the tag of an Operand.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_REGISTER = OperandKind(0) // register
	OPERAND_SHORT    = OperandKind(1) // short immediate
	OPERAND_LONG     = OperandKind(2) // large immediate
)

// Operand is a register, an 8-bit short immediate, or a 16-bit large immediate.
type Operand struct {
	Kind     OperandKind
	Register Register // Valid if Kind is OPERAND_REGISTER.
	Value    uint16   // Valid if Kind is OPERAND_SHORT or OPERAND_LONG.
}

// RegisterOperand makes a register operand.
func RegisterOperand(reg Register) Operand {
	return Operand{Kind: OPERAND_REGISTER, Register: reg}
}

// ShortImmediate makes an 8-bit immediate operand.
func ShortImmediate(value uint8) Operand {
	return Operand{Kind: OPERAND_SHORT, Value: uint16(value)}
}

// LargeImmediate makes a 16-bit immediate operand.
func LargeImmediate(value uint16) Operand {
	return Operand{Kind: OPERAND_LONG, Value: value}
}

// IsRegister is true if the operand is a register operand.
func (op Operand) IsRegister() bool {
	return op.Kind == OPERAND_REGISTER
}

// Code returns the numeric contribution of the operand to an instruction
// word: the family code of a register, or the raw immediate value.
func (op Operand) Code() (code uint16, err error) {
	switch op.Kind {
	case OPERAND_REGISTER:
		return op.Register.Code()
	case OPERAND_SHORT:
		code = op.Value & 0xff
	default:
		code = op.Value
	}
	return
}

// String returns the assembly text of the operand.
func (op Operand) String() string {
	if op.Kind == OPERAND_REGISTER {
		return op.Register.String()
	}
	return fmt.Sprintf("%d", op.Value)
}

// Instruction is a single Sim6 instruction.
type Instruction struct {
	Opcode   Opcode
	High     bool // Operand A addresses its high byte.
	Low      bool // Operand A addresses its low byte.
	Signed   bool
	SetFlags bool
	A        Operand // Always a register.
	B        Operand
}

// NewInstruction creates an instruction, deriving the width bits from
// operand A and the signed and flag bits from the opcode.
//
// Operand A must be a register operand.
func NewInstruction(opcode Opcode, a, b Operand) Instruction {
	if !a.IsRegister() {
		panic(fmt.Sprintf("cpu: %v operand A %v is not a register", opcode, a))
	}

	return Instruction{
		Opcode:   opcode,
		High:     a.Register.IsHigh(),
		Low:      a.Register.IsLow(),
		Signed:   opcode.Signed(),
		SetFlags: opcode.SetFlags(),
		A:        a,
		B:        b,
	}
}

// String returns the assembly text of the instruction.
func (in Instruction) String() string {
	words := []string{in.Opcode.String()}

	none := RegisterOperand(REG_NONE)
	if in.B != none {
		words = append(words, in.A.String()+",", in.B.String())
	} else if in.A != none {
		words = append(words, in.A.String())
	}

	return strings.Join(words, " ")
}

// Word is an encoded instruction: a 16-bit Regular word, or a 32-bit Long
// word carrying a 16-bit immediate in its lower half.
type Word struct {
	Value uint32
	Long  bool
}

// Size returns the encoded size in bytes.
func (word Word) Size() int {
	if word.Long {
		return 4
	}
	return 2
}

// Bytes returns the big-endian encoding of the word.
func (word Word) Bytes() []byte {
	if word.Long {
		return binary.BigEndian.AppendUint32(nil, word.Value)
	}
	return binary.BigEndian.AppendUint16(nil, uint16(word.Value))
}

func bit(value bool, pos uint) uint16 {
	if value {
		return 1 << pos
	}
	return 0
}

// header returns bits 15..6 of the instruction word.
func (in Instruction) header() uint16 {
	return (in.Opcode.Code() << 10) |
		bit(in.High, 9) |
		bit(in.Low, 8) |
		bit(in.SetFlags, 7) |
		bit(in.Signed, 6)
}

// Encode packs the instruction into its binary word.
//
// A Regular word holds operand A in bits 5..3 and the raw operand B value
// OR'd into the low bits. Short immediates above 7 overlap operand A's field,
// which is kept for compatibility with existing Sim6 binaries.
func (in Instruction) Encode() (word Word, err error) {
	code_a, err := in.A.Code()
	if err != nil {
		return
	}
	code_b, err := in.B.Code()
	if err != nil {
		return
	}

	header := in.header()

	switch in.B.Kind {
	case OPERAND_LONG:
		upper := header | (code_a & 0x7)
		word = Word{Value: (uint32(upper) << 16) | uint32(code_b), Long: true}
	default:
		word = Word{Value: uint32(header | ((code_a & 0x7) << 3) | code_b)}
	}

	return
}

// Fields are the decoded bit fields of an instruction word.
type Fields struct {
	Code     uint16
	High     bool
	Low      bool
	SetFlags bool
	Signed   bool
	A        uint16
	B        uint16
}

// Decode splits an instruction word into its bit fields.
func Decode(word Word) (fields Fields) {
	upper := uint16(word.Value)
	if word.Long {
		upper = uint16(word.Value >> 16)
	}

	fields = Fields{
		Code:     (upper >> 10) & 0x3f,
		High:     (upper>>9)&1 == 1,
		Low:      (upper>>8)&1 == 1,
		SetFlags: (upper>>7)&1 == 1,
		Signed:   (upper>>6)&1 == 1,
	}

	if word.Long {
		fields.A = upper & 0x7
		fields.B = uint16(word.Value & 0xffff)
	} else {
		fields.A = (upper >> 3) & 0x7
		fields.B = upper & 0x7
	}

	return
}

// String returns a disassembly of the fields.
func (fields Fields) String() string {
	name := "invalid"
	if op, ok := OpcodeOf(fields.Code); ok {
		name = op.String()
	}

	flags := []byte("....")
	for n, set := range []bool{fields.High, fields.Low, fields.SetFlags, fields.Signed} {
		if set {
			flags[n] = "hlfs"[n]
		}
	}

	return fmt.Sprintf("%v %s a:%d b:%d", name, flags, fields.A, fields.B)
}

// ParseNumber parses a decimal, 0x hexadecimal or 0b binary number that must
// fit in bitSize bits.
func ParseNumber(word string, bitSize int) (value uint64, err error) {
	base := 10
	digits := word
	switch {
	case strings.HasPrefix(word, "0x"):
		base = 16
		digits = word[2:]
	case strings.HasPrefix(word, "0b"):
		base = 2
		digits = word[2:]
	}

	value, err = strconv.ParseUint(digits, base, bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = ErrImmediateRange
		} else {
			err = ErrParseNumber(word)
		}
		value = 0
	}

	return
}

// isImmediate is true if the word starts with a decimal digit. Hex and binary
// immediates start with their '0' prefix.
func isImmediate(word string) bool {
	return len(word) > 0 && word[0] >= '0' && word[0] <= '9'
}

// parseImmediate returns a large immediate for movi, and a short immediate
// for every other opcode.
func parseImmediate(opcode Opcode, word string) (operand Operand, err error) {
	value, err := ParseNumber(word, 16)
	if err != nil {
		return
	}

	if opcode == OP_MOVI {
		operand = LargeImmediate(uint16(value))
		return
	}

	if value > 0xff {
		err = ErrImmediateRange
		return
	}

	operand = ShortImmediate(uint8(value))
	return
}

// ParseInstruction parses a line of the form 'opcode [a[, b]]'.
//
// A missing operand is the none register. Operand B is an immediate if it
// starts with a decimal digit, otherwise a register. Words are separated by
// whitespace or commas, so 'add ax,bx' is accepted.
func ParseInstruction(line string) (in Instruction, err error) {
	words := strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}
	if len(words) > 3 {
		err = ErrOperandExtra
		return
	}

	opcode, err := ParseOpcode(words[0])
	if err != nil {
		return
	}

	reg_a := REG_NONE
	if len(words) > 1 {
		reg_a, err = ParseRegister(words[1])
		if err != nil {
			return
		}
	}

	b := RegisterOperand(REG_NONE)
	if len(words) > 2 {
		if isImmediate(words[2]) {
			b, err = parseImmediate(opcode, words[2])
		} else {
			var reg_b Register
			reg_b, err = ParseRegister(words[2])
			b = RegisterOperand(reg_b)
		}
		if err != nil {
			return
		}
	}

	in = NewInstruction(opcode, RegisterOperand(reg_a), b)
	return
}
