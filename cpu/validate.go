package cpu

// validRegRegCodes are the register codes accepted for two-register opcodes:
// low/low, high/high, low/high, high/low and full/full.
var validRegRegCodes = map[uint16]bool{
	0b1010: true,
	0b0101: true,
	0b1001: true,
	0b0110: true,
	0b1111: true,
}

// MaxShortImmediate is the largest immediate accepted by reg,imm5 opcodes.
const MaxShortImmediate = 0x1f

// Validate confirms the operand shapes and register encodings of the
// instruction are legal for its opcode. Failures are an ErrValidation.
func (in Instruction) Validate() (err error) {
	defer func() {
		if err != nil {
			err = ErrValidation{Instruction: in, Err: err}
		}
	}()

	if !in.Opcode.valid() {
		err = ErrOpcodeUnknown(in.Opcode.String())
		return
	}

	if !in.A.IsRegister() {
		err = ErrOperandShape
		return
	}

	// pc and st are never operands.
	for _, operand := range []Operand{in.A, in.B} {
		if !operand.IsRegister() {
			continue
		}
		_, err = operand.Register.Code()
		if err != nil {
			return
		}
	}

	reg_a := in.A.Register

	switch in.Opcode.Class() {
	case CLASS_NONE:
		if !in.B.IsRegister() {
			err = ErrOperandShape
			return
		}
		err = mustBeNone(reg_a, in.B.Register)
		if err != nil {
			return
		}
		if RegisterCode(reg_a, in.B.Register) != 0 {
			err = ErrRegisterCode
			return
		}
	case CLASS_REG_REG:
		if !in.B.IsRegister() {
			err = ErrOperandShape
			return
		}
		reg_b := in.B.Register
		if !validRegRegCodes[RegisterCode(reg_a, reg_b)] {
			err = ErrRegisterCode
			return
		}
		err = validatePair(reg_a, reg_b)
	case CLASS_REG:
		if !in.B.IsRegister() {
			err = ErrOperandShape
			return
		}
		err = mustNotBeNone(reg_a)
		if err != nil {
			return
		}
		err = mustBeNone(in.B.Register)
	case CLASS_REG_IMM5:
		err = mustNotBeNone(reg_a)
		if err != nil {
			return
		}
		if in.B.Kind != OPERAND_SHORT {
			err = ErrOperandShape
			return
		}
		if in.B.Value > MaxShortImmediate {
			err = ErrImmediateTooLarge
			return
		}
	case CLASS_REG_IMM16:
		err = mustNotBeNone(reg_a)
		if err != nil {
			return
		}
		// Any 16-bit value fits.
		if in.B.Kind != OPERAND_LONG {
			err = ErrOperandShape
			return
		}
	}

	return
}

func mustBeNone(regs ...Register) error {
	for _, reg := range regs {
		if reg != REG_NONE {
			return ErrRegisterUse{Register: reg, Reason: reasonNotNone}
		}
	}
	return nil
}

func mustNotBeNone(reg Register) error {
	if reg == REG_NONE {
		return ErrRegisterUse{Register: reg, Reason: reasonIsNone}
	}
	return nil
}

// validatePair accepts registers of the same width, and the two halves of
// the same register ('move al, ah').
func validatePair(reg_a, reg_b Register) error {
	switch {
	case reg_a.IsFull() && reg_b.IsFull():
		return nil
	case reg_a.IsFull() || reg_b.IsFull():
	case reg_a.IsHigh() == reg_b.IsHigh():
		return nil
	case reg_a.SameFamily(reg_b):
		return nil
	}

	return ErrRegisterPair{A: reg_a, B: reg_b}
}
