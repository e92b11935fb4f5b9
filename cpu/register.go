package cpu

import (
	"strings"
)

// Register is a Sim6 register identity.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_NONE = Register(0)  // none
	REG_AX   = Register(1)  // ax
	REG_AH   = Register(2)  // ah
	REG_AL   = Register(3)  // al
	REG_BX   = Register(4)  // bx
	REG_BH   = Register(5)  // bh
	REG_BL   = Register(6)  // bl
	REG_CX   = Register(7)  // cx
	REG_CH   = Register(8)  // ch
	REG_CL   = Register(9)  // cl
	REG_DX   = Register(10) // dx
	REG_DH   = Register(11) // dh
	REG_DL   = Register(12) // dl
	REG_RP   = Register(13) // rp
	REG_FP   = Register(14) // fp
	REG_BP   = Register(15) // bp
	REG_SP   = Register(16) // sp
	REG_PC   = Register(17) // pc
	REG_ST   = Register(18) // st
)

// registerWidth is the portion of a register family a Register names.
type registerWidth int

const (
	width_none = registerWidth(iota)
	width_full
	width_high
	width_low
)

type registerInfo struct {
	family uint16
	width  registerWidth
	encode bool // has an operand encoding
}

var registerTable = [...]registerInfo{
	REG_NONE: {0, width_none, true},
	REG_AX:   {0, width_full, true},
	REG_AH:   {0, width_high, true},
	REG_AL:   {0, width_low, true},
	REG_BX:   {1, width_full, true},
	REG_BH:   {1, width_high, true},
	REG_BL:   {1, width_low, true},
	REG_CX:   {2, width_full, true},
	REG_CH:   {2, width_high, true},
	REG_CL:   {2, width_low, true},
	REG_DX:   {3, width_full, true},
	REG_DH:   {3, width_high, true},
	REG_DL:   {3, width_low, true},
	REG_RP:   {4, width_full, true},
	REG_FP:   {5, width_full, true},
	REG_BP:   {6, width_full, true},
	REG_SP:   {7, width_full, true},
	REG_PC:   {0, width_none, false},
	REG_ST:   {0, width_none, false},
}

// registerMap maps the source-text register names. The status flags
// register is not addressable from source.
var registerMap = map[string]Register{}

func init() {
	for reg := range Register(len(registerTable)) {
		if reg == REG_ST {
			continue
		}
		registerMap[reg.String()] = reg
	}
}

func (reg Register) info() registerInfo {
	if reg < 0 || int(reg) >= len(registerTable) {
		return registerInfo{}
	}
	return registerTable[reg]
}

// ParseRegister returns the register named by word, ignoring case.
func ParseRegister(word string) (reg Register, err error) {
	reg, ok := registerMap[strings.ToLower(word)]
	if !ok {
		err = ErrRegisterUnknown(word)
		return
	}

	return
}

// Code returns the 3-bit family code of the register.
// The program counter and status flags have no operand encoding.
func (reg Register) Code() (code uint16, err error) {
	info := reg.info()
	if !info.encode {
		err = ErrRegisterUse{Register: reg, Reason: reasonNoEncoding}
		return
	}

	code = info.family
	return
}

// SameFamily is true when both registers share a family code.
func (reg Register) SameFamily(other Register) bool {
	a, b := reg.info(), other.info()
	return a.encode && b.encode && a.width != width_none && b.width != width_none && a.family == b.family
}

// IsHigh is true for full-width registers and high halves.
func (reg Register) IsHigh() bool {
	width := reg.info().width
	return width == width_full || width == width_high
}

// IsLow is true for full-width registers and low halves.
func (reg Register) IsLow() bool {
	width := reg.info().width
	return width == width_full || width == width_low
}

// IsFull is true for registers accessed at their full 16-bit width.
func (reg Register) IsFull() bool {
	return reg.info().width == width_full
}

// RegisterCode packs the width bits of a register pair into the 4-bit
// register code used by the validator: operand A contributes its low and high
// bits at 3 and 2, operand B at 1 and 0.
func RegisterCode(reg_a, reg_b Register) (code uint16) {
	if reg_a.IsLow() {
		code |= 0b1000
	}
	if reg_a.IsHigh() {
		code |= 0b0100
	}
	if reg_b.IsLow() {
		code |= 0b0010
	}
	if reg_b.IsHigh() {
		code |= 0b0001
	}
	return
}
