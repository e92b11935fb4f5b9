package cpu

import (
	"errors"

	"github.com/ezrec/sim6/translate"
)

var f = translate.From

var (
	// Operand errors
	ErrImmediateRange    = errors.New(f("immediate out of range"))
	ErrImmediateTooLarge = errors.New(f("immediate too large"))
	ErrOperandShape      = errors.New(f("operand shape invalid"))
	ErrOperandExtra      = errors.New(f("excessive operands"))
	ErrOpcodeMissing     = errors.New(f("opcode missing"))

	// Register errors
	ErrRegisterCode    = errors.New(f("register code invalid"))
	ErrRegisterOperand = errors.New(f("register operand invalid"))
)

const (
	reasonNoEncoding = "has no operand encoding"
	reasonNotNone    = "must be none"
	reasonIsNone     = "must not be none"
)

// ErrOpcodeUnknown is an unrecognized mnemonic.
type ErrOpcodeUnknown string

func (err ErrOpcodeUnknown) Error() string {
	return f("opcode '%v' unknown", string(err))
}

func (err ErrOpcodeUnknown) Is(target error) (ok bool) {
	_, ok = target.(ErrOpcodeUnknown)
	return
}

// ErrRegisterUnknown is an unrecognized register name.
type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("register '%v' unknown", string(err))
}

func (err ErrRegisterUnknown) Is(target error) (ok bool) {
	_, ok = target.(ErrRegisterUnknown)
	return
}

// ErrParseNumber is text that is not a decimal, 0x or 0b number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrRegisterUse is a register that cannot appear in its operand position.
type ErrRegisterUse struct {
	Register Register
	Reason   string
}

func (err ErrRegisterUse) Error() string {
	return f("register %v %v", err.Register, f(err.Reason))
}

func (err ErrRegisterUse) Unwrap() error {
	return ErrRegisterOperand
}

// ErrRegisterPair is a pair of registers of different widths, or of
// opposite halves of different registers.
type ErrRegisterPair struct {
	A, B Register
}

func (err ErrRegisterPair) Error() string {
	return f("registers %v and %v are of mixed width", err.A, err.B)
}

func (err ErrRegisterPair) Unwrap() error {
	return ErrRegisterCode
}

// ErrValidation identifies the instruction that failed validation.
type ErrValidation struct {
	Instruction Instruction
	Err         error
}

func (err ErrValidation) Error() string {
	return f("%v: %v", err.Instruction.Opcode, err.Err)
}

func (err ErrValidation) Unwrap() error {
	return err.Err
}
