package asm

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/sim6/cpu"
)

func TestAssemblerParse(t *testing.T) {
	assert := assert.New(t)

	source := strings.Join([]string{
		"",
		"  .code",
		"main: movi bx, @done",
		"  add ax, bx",
		"",
		"done: nop",
	}, "\n")

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)

	assert.Equal(LabelTable{
		"main": {CODE_BASE, SECTION_CODE},
		"done": {CODE_BASE + 6, SECTION_CODE},
	}, prog.Labels)
	assert.Equal(prog.Labels, asm.Labels)

	none := cpu.RegisterOperand(cpu.REG_NONE)
	instr := func(op cpu.Opcode, a, b cpu.Operand) *cpu.Instruction {
		in := cpu.NewInstruction(op, a, b)
		return &in
	}
	assert.Equal([]Item{
		{
			LineNo:      3,
			Line:        "main: movi bx, @done",
			Address:     CODE_BASE,
			Instruction: instr(cpu.OP_MOVI, cpu.RegisterOperand(cpu.REG_BX), cpu.LargeImmediate(CODE_BASE+6)),
		},
		{
			LineNo:      4,
			Line:        "add ax, bx",
			Address:     CODE_BASE + 4,
			Instruction: instr(cpu.OP_ADD, cpu.RegisterOperand(cpu.REG_AX), cpu.RegisterOperand(cpu.REG_BX)),
		},
		{
			LineNo:      6,
			Line:        "done: nop",
			Address:     CODE_BASE + 6,
			Instruction: instr(cpu.OP_NOP, none, none),
		},
	}, prog.Items)
}

func TestAssemblerConfig(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{
		Config: &Config{
			DataBase: 0x100,
			CodeBase: 0x200,
			Symbols:  map[string]uint16{"port": 7},
		},
	}

	prog, err := asm.Assemble([]string{
		".byte 1",
		"x: .byte 2",
		".code",
		"out al, @port",
		"movi ax, @x",
	})
	assert.NoError(err)

	assert.Equal(Symbol{7, SECTION_ABSOLUTE}, prog.Labels["port"])
	assert.Equal(Symbol{0x101, SECTION_DATA}, prog.Labels["x"])

	var addresses []int
	for item := range prog.All() {
		addresses = append(addresses, item.Address)
	}
	assert.Equal([]int{0x100, 0x101, 0x200, 0x202}, addresses)

	out, err := prog.Bytes()
	assert.NoError(err)
	assert.True(bytes.HasSuffix(out, []byte{0x49, 0x07, 0x53, 0x00, 0x01, 0x01}))
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		lines  []string
		lineno int
		err    error
	}){
		{[]string{".code", "addd ax, bx"}, 2, cpu.ErrOpcodeUnknown("")},
		{[]string{".byte 1", ".code", "", "movi ax, @nowhere"}, 4, ErrLabelUnknown("")},
		{[]string{".code", "add ax, bl"}, 2, cpu.ErrRegisterCode},
		{[]string{".code", "in ax, 32"}, 2, cpu.ErrImmediateTooLarge},
		{[]string{".code", "push"}, 2, cpu.ErrRegisterOperand},
		{[]string{".code", "move pc, ax"}, 2, cpu.ErrRegisterOperand},
		{[]string{".code", "nop", ".data"}, 3, ErrSectionOrder},
		{[]string{".word 0x10000"}, 1, cpu.ErrImmediateRange},
		{[]string{"", "", ".asciiz nope"}, 3, ErrDirectiveSyntax},
	}

	for n, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Assemble(entry.lines)
		assert.Nil(prog, n)
		assert.True(errors.Is(err, entry.err), "%d: %v", n, err)

		var se ErrSyntax
		if assert.True(errors.As(err, &se), n) {
			assert.Equal(entry.lineno, se.LineNo, n)
			assert.Equal(strings.TrimSpace(entry.lines[entry.lineno-1]), se.Line, n)
		}
	}
}

func TestAssemblerVerbose(t *testing.T) {
	assert := assert.New(t)

	var buff bytes.Buffer
	log.SetOutput(&buff)
	defer log.SetOutput(os.Stderr)

	asm := &Assembler{Verbose: true}
	_, err := asm.Assemble([]string{".code", "main: nop"})
	assert.NoError(err)

	assert.Contains(buff.String(), "label main = 0x5800 (code)")
	assert.Contains(buff.String(), "2: main: nop")
}

func TestAssemblerVerboseLabelOrder(t *testing.T) {
	assert := assert.New(t)

	var buff bytes.Buffer
	log.SetOutput(&buff)
	defer log.SetOutput(os.Stderr)

	asm := &Assembler{Verbose: true}
	_, err := asm.Assemble([]string{
		"zeta: .byte 1",
		"alpha: .byte 2",
		".code",
		"main: nop",
	})
	assert.NoError(err)

	text := buff.String()
	main := strings.Index(text, "label main = 0x5800 (code)")
	zeta := strings.Index(text, "label zeta = 0x9000 (data)")
	alpha := strings.Index(text, "label alpha = 0x9001 (data)")
	assert.True(main >= 0 && zeta >= 0 && alpha >= 0, text)
	assert.Less(main, zeta)
	assert.Less(zeta, alpha)
}

func TestAssemblerErrorText(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Assemble([]string{".code", "move al, bh"})
	assert.True(errors.Is(err, cpu.ErrRegisterCode))

	var se ErrSyntax
	if assert.True(errors.As(err, &se)) {
		assert.Equal(2, se.LineNo)
		assert.Equal(1, strings.Count(err.Error(), "move al, bh"), err.Error())
	}
}
