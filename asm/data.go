package asm

import (
	"encoding/binary"
	"strings"

	"github.com/ezrec/sim6/cpu"
)

// Data directives.
const (
	DIRECTIVE_BYTE   = ".byte"
	DIRECTIVE_WORD   = ".word"
	DIRECTIVE_LONG   = ".long"
	DIRECTIVE_ARRAY  = ".array"
	DIRECTIVE_ASCIIZ = ".asciiz"
)

// Data is the byte image of a data directive.
type Data struct {
	Bytes []byte
}

// asciizText returns the text between the first and last backtick.
func asciizText(line string) (text string, err error) {
	start := strings.IndexByte(line, '`')
	end := strings.LastIndexByte(line, '`')
	if start < 0 || end == start {
		err = ErrDirectiveSyntax
		return
	}

	text = line[start+1 : end]
	return
}

// singleValue parses the one value of a .byte, .word or .long directive.
func singleValue(words []string, bitSize int) (value uint64, err error) {
	if len(words) != 2 {
		err = ErrDirectiveSyntax
		return
	}

	return cpu.ParseNumber(words[1], bitSize)
}

// ParseData parses a data directive line into its bytes.
func ParseData(line string) (data *Data, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		err = ErrDirectiveSyntax
		return
	}

	var value uint64
	var bytes []byte

	switch words[0] {
	case DIRECTIVE_BYTE:
		value, err = singleValue(words, 8)
		bytes = []byte{byte(value)}
	case DIRECTIVE_WORD:
		value, err = singleValue(words, 16)
		bytes = binary.BigEndian.AppendUint16(nil, uint16(value))
	case DIRECTIVE_LONG:
		value, err = singleValue(words, 32)
		bytes = binary.BigEndian.AppendUint32(nil, uint32(value))
	case DIRECTIVE_ARRAY:
		bytes = make([]byte, 0, len(words)-1)
		for _, word := range words[1:] {
			value, err = cpu.ParseNumber(word, 8)
			if err != nil {
				return
			}
			bytes = append(bytes, byte(value))
		}
	case DIRECTIVE_ASCIIZ:
		var text string
		text, err = asciizText(line)
		bytes = append([]byte(text), 0)
	default:
		err = ErrDirectiveUnknown(words[0])
	}

	if err != nil {
		return
	}

	data = &Data{Bytes: bytes}
	return
}

// dataSize returns the number of bytes a directive line emits, without
// parsing its values.
func dataSize(line string) (size int, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		err = ErrDirectiveSyntax
		return
	}

	switch words[0] {
	case DIRECTIVE_BYTE:
		size = 1
	case DIRECTIVE_WORD:
		size = 2
	case DIRECTIVE_LONG:
		size = 4
	case DIRECTIVE_ARRAY:
		size = len(words) - 1
	case DIRECTIVE_ASCIIZ:
		var text string
		text, err = asciizText(line)
		size = len(text) + 1
	default:
		err = ErrDirectiveUnknown(words[0])
	}

	return
}
