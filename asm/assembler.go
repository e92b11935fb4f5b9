// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/ezrec/sim6/cpu"
)

// sourceLine is a trimmed, non-empty line of source text.
type sourceLine struct {
	LineNo int
	Text   string
}

// numberLines trims lines, drops empty ones, and numbers the rest by their
// position in lines.
func numberLines(lines []string) (src []sourceLine) {
	for n, text := range lines {
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}
		src = append(src, sourceLine{LineNo: n + 1, Text: text})
	}

	return
}

// Assembler is a two pass assembler for the Sim6 processor.
type Assembler struct {
	Verbose bool    // If set, verbosely logs the assembler actions.
	Config  *Config // Memory layout and predefined symbols. nil for DefaultConfig().

	Labels LabelTable // Label table of the last assembled program.
}

func (asm *Assembler) config() Config {
	if asm.Config == nil {
		return DefaultConfig()
	}
	return *asm.Config
}

// Parse reads source text and assembles it.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	return asm.Assemble(lines)
}

// Assemble translates source lines into a Program. Pass 1 resolves every
// label before pass 2 translates any line, so labels may be referenced
// before they are defined. The first error stops assembly and is returned
// as an ErrSyntax.
func (asm *Assembler) Assemble(lines []string) (prog *Program, err error) {
	config := asm.config()
	src := numberLines(lines)

	asm.Labels = nil

	labels, err := resolveLabels(src, config)
	if err != nil {
		return
	}
	asm.Labels = labels

	if asm.Verbose {
		for _, sym := range labels.Symbols() {
			log.Printf("label %v = 0x%04x (%v)\n", sym.Name, sym.Address, sym.Section)
		}
	}

	tr := NewTranslator(labels)
	data_ip := int(config.DataBase)
	code_ip := int(config.CodeBase)

	var items []Item
	for _, line := range src {
		if asm.Verbose {
			log.Printf("%v: %v\n", line.LineNo, line.Text)
		}

		item := Item{LineNo: line.LineNo, Line: line.Text}
		item.Data, item.Instruction, err = tr.Translate(line.Text)
		if err != nil {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}

		switch {
		case item.Data != nil:
			item.Address = data_ip
			data_ip += len(item.Data.Bytes)
		case item.Instruction != nil:
			item.Address = code_ip
			if item.Instruction.B.Kind == cpu.OPERAND_LONG {
				code_ip += 4
			} else {
				code_ip += 2
			}
		default:
			continue
		}

		items = append(items, item)
	}

	prog = &Program{
		Items:  items,
		Labels: labels,
	}

	return
}
