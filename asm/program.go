package asm

import (
	"encoding/hex"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/ezrec/sim6/cpu"
	"github.com/ezrec/sim6/internal"
)

// Section markers written to the object image.
const (
	DataMarker = ".data:"
	CodeMarker = ".code:"
)

// Item is one translated source line: either Data or an Instruction.
type Item struct {
	LineNo      int              // Source line number.
	Line        string           // Source text.
	Address     int              // Address of the first byte.
	Data        *Data            // Set for data directives.
	Instruction *cpu.Instruction // Set for instructions.
}

// Bytes returns the encoded bytes of the item.
func (item Item) Bytes() (out []byte, err error) {
	switch {
	case item.Data != nil:
		out = item.Data.Bytes
	case item.Instruction != nil:
		var word cpu.Word
		word, err = item.Instruction.Encode()
		if err != nil {
			return
		}
		out = word.Bytes()
	}

	return
}

// Program is an assembled Sim6 program, in source order.
type Program struct {
	Items  []Item
	Labels LabelTable
}

// DataItems iterates over the data directives.
func (prog *Program) DataItems() iter.Seq[Item] {
	return internal.IterSeqFilter(slices.Values(prog.Items), func(item Item) bool {
		return item.Data != nil
	})
}

// CodeItems iterates over the instructions.
func (prog *Program) CodeItems() iter.Seq[Item] {
	return internal.IterSeqFilter(slices.Values(prog.Items), func(item Item) bool {
		return item.Instruction != nil
	})
}

// All iterates over the data section, then the code section.
func (prog *Program) All() iter.Seq[Item] {
	return internal.IterSeqConcat(prog.DataItems(), prog.CodeItems())
}

// Bytes serializes the program: the data marker, the data bytes, then the
// code marker before the first instruction and the big-endian instruction
// words.
func (prog *Program) Bytes() (out []byte, err error) {
	out = []byte(DataMarker)

	code := false
	for item := range prog.All() {
		if item.Instruction != nil && !code {
			code = true
			out = append(out, CodeMarker...)
		}

		var bytes []byte
		bytes, err = item.Bytes()
		if err != nil {
			err = ErrSyntax{LineNo: item.LineNo, Line: item.Line, Err: err}
			out = nil
			return
		}
		out = append(out, bytes...)
	}

	return
}

// WriteTo writes the serialized program to w.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	out, err := prog.Bytes()
	if err != nil {
		return
	}

	written, err := w.Write(out)
	n = int64(written)
	return
}

// Listing writes the address, encoded bytes and source text of each item.
func (prog *Program) Listing(w io.Writer) (err error) {
	for item := range prog.All() {
		var bytes []byte
		bytes, err = item.Bytes()
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%04x  %-8s  %v\n", item.Address, hex.EncodeToString(bytes), item.Line)
		if err != nil {
			return
		}
	}

	return
}
