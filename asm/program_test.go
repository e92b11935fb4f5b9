package asm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/sim6/cpu"
)

var programSource = []string{
	"msg: .asciiz `Hi`",
	"count: .byte 3",
	".code",
	"main: movi ax, @msg",
	"add ax, bx",
	"jump cx",
}

func assembleProgram(t *testing.T, lines []string) *Program {
	asm := &Assembler{}
	prog, err := asm.Assemble(lines)
	if err != nil {
		t.Fatalf("%v", err)
	}
	return prog
}

func TestProgramBytes(t *testing.T) {
	assert := assert.New(t)

	prog := assembleProgram(t, programSource)

	expected := []byte(DataMarker)
	expected = append(expected, 'H', 'i', 0x00, 0x03)
	expected = append(expected, CodeMarker...)
	expected = append(expected, 0x53, 0x00, 0x90, 0x00, 0x07, 0xc1, 0x93, 0x10)

	out, err := prog.Bytes()
	assert.NoError(err)
	assert.Equal(expected, out)

	var buff bytes.Buffer
	n, err := prog.WriteTo(&buff)
	assert.NoError(err)
	assert.Equal(int64(len(expected)), n)
	assert.Equal(expected, buff.Bytes())
}

func TestProgramMarkers(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		lines    []string
		expected string
	}){
		{[]string{}, ".data:"},
		{[]string{".byte 0x41"}, ".data:A"},
		{[]string{".code:", "nop"}, ".data:.code:\x00\x00"},
		{[]string{".byte 0x41", ".code", "nop", "nop"}, ".data:A.code:\x00\x00\x00\x00"},
		{[]string{".code", "label_only:"}, ".data:"},
	}

	for n, entry := range table {
		prog := assembleProgram(t, entry.lines)
		out, err := prog.Bytes()
		assert.NoError(err, n)
		assert.Equal(entry.expected, string(out), n)
		assert.Equal(1, strings.Count(string(out), DataMarker), n)
		assert.LessOrEqual(strings.Count(string(out), CodeMarker), 1, n)
	}
}

func TestProgramItems(t *testing.T) {
	assert := assert.New(t)

	prog := assembleProgram(t, programSource)

	var addresses []int
	for item := range prog.DataItems() {
		addresses = append(addresses, item.Address)
	}
	assert.Equal([]int{DATA_BASE, DATA_BASE + 3}, addresses)

	addresses = nil
	for item := range prog.CodeItems() {
		addresses = append(addresses, item.Address)
	}
	assert.Equal([]int{CODE_BASE, CODE_BASE + 4, CODE_BASE + 6}, addresses)

	var lines []int
	for item := range prog.All() {
		lines = append(lines, item.LineNo)
	}
	assert.Equal([]int{1, 2, 4, 5, 6}, lines)
}

func TestProgramListing(t *testing.T) {
	assert := assert.New(t)

	prog := assembleProgram(t, programSource)

	var buff strings.Builder
	err := prog.Listing(&buff)
	assert.NoError(err)
	assert.Equal(
		"9000  486900    msg: .asciiz `Hi`\n"+
			"9003  03        count: .byte 3\n"+
			"5800  53009000  main: movi ax, @msg\n"+
			"5804  07c1      add ax, bx\n"+
			"5806  9310      jump cx\n",
		buff.String())
}

func TestProgramEncodeError(t *testing.T) {
	assert := assert.New(t)

	in := cpu.NewInstruction(cpu.OP_JUMP, cpu.RegisterOperand(cpu.REG_PC), cpu.RegisterOperand(cpu.REG_NONE))
	prog := &Program{
		Items: []Item{
			{LineNo: 4, Line: "jump pc", Address: CODE_BASE, Instruction: &in},
		},
	}

	out, err := prog.Bytes()
	assert.Nil(out)
	assert.True(errors.Is(err, cpu.ErrRegisterOperand))

	var se ErrSyntax
	assert.True(errors.As(err, &se))
	assert.Equal(4, se.LineNo)

	var buff bytes.Buffer
	n, err := prog.WriteTo(&buff)
	assert.Error(err)
	assert.Equal(int64(0), n)
	assert.Equal(0, buff.Len())
}
