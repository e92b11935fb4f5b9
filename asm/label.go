package asm

import (
	"strings"
)

// Section is the address space a label belongs to.
type Section int

//go:generate go tool stringer -linecomment -type=Section
const (
	SECTION_ABSOLUTE = Section(0) // absolute
	SECTION_DATA     = Section(1) // data
	SECTION_CODE     = Section(2) // code
)

// Symbol is a resolved label.
type Symbol struct {
	Address int
	Section Section
}

// LabelTable maps label names to their resolved symbols.
type LabelTable map[string]Symbol

// Address returns the address of a label.
func (lt LabelTable) Address(name string) (address int, ok bool) {
	sym, ok := lt[name]
	address = sym.Address
	return
}

// ValidateLabel checks a label is a non-empty identifier: a letter or
// underscore, then letters, digits or underscores.
func ValidateLabel(label string) error {
	if len(label) == 0 {
		return ErrLabelInvalid(label)
	}

	for n, c := range label {
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && n > 0:
		default:
			return ErrLabelInvalid(label)
		}
	}

	return nil
}

// splitLabel splits a 'label: rest' line. The text before the first ':' is a
// label if it is a single word that is not a directive.
func splitLabel(line string) (label string, rest string, ok bool) {
	index := strings.IndexByte(line, ':')
	if index < 0 {
		rest = line
		return
	}

	prefix := line[:index]
	if strings.HasPrefix(prefix, ".") || strings.ContainsAny(prefix, " \t`") {
		rest = line
		return
	}

	label = prefix
	rest = strings.TrimSpace(line[index+1:])
	ok = true
	return
}

// sectionMarker recognizes the '.data' and '.code' section lines.
func sectionMarker(line string) (section Section, ok bool) {
	switch strings.TrimSuffix(line, ":") {
	case ".data":
		return SECTION_DATA, true
	case ".code":
		return SECTION_CODE, true
	}
	return
}

// resolver is the pass 1 state machine.
type resolver struct {
	labels  LabelTable
	section Section
	data_ip int
	code_ip int
}

func newResolver(config Config) *resolver {
	labels := make(LabelTable, len(config.Symbols))
	for name, address := range config.Symbols {
		labels[name] = Symbol{Address: int(address), Section: SECTION_ABSOLUTE}
	}

	return &resolver{
		labels:  labels,
		section: SECTION_DATA,
		data_ip: int(config.DataBase),
		code_ip: int(config.CodeBase),
	}
}

func (rs *resolver) ip() int {
	if rs.section == SECTION_CODE {
		return rs.code_ip
	}
	return rs.data_ip
}

// line records any label on the line and advances the address counter.
func (rs *resolver) line(text string) (err error) {
	label, rest, ok := splitLabel(text)
	if ok {
		err = ValidateLabel(label)
		if err != nil {
			return
		}
		// Redefinition replaces the earlier address.
		rs.labels[label] = Symbol{Address: rs.ip(), Section: rs.section}
	}

	if len(rest) == 0 {
		return
	}

	if section, is_marker := sectionMarker(rest); is_marker {
		switch {
		case section == SECTION_CODE:
			rs.section = SECTION_CODE
		case rs.section == SECTION_CODE:
			err = ErrSectionOrder
		}
		return
	}

	if rs.section == SECTION_CODE {
		mnemonic := strings.TrimRight(strings.Fields(rest)[0], ",")
		if strings.EqualFold(mnemonic, "movi") {
			rs.code_ip += 4
		} else {
			rs.code_ip += 2
		}
		return
	}

	size, err := dataSize(rest)
	if err != nil {
		return
	}
	rs.data_ip += size

	return
}

// ResolveLabels runs pass 1 over trimmed, non-empty source lines and returns
// the address of every label.
func ResolveLabels(lines []string, config Config) (labels LabelTable, err error) {
	return resolveLabels(numberLines(lines), config)
}

func resolveLabels(src []sourceLine, config Config) (labels LabelTable, err error) {
	rs := newResolver(config)

	for _, line := range src {
		err = rs.line(line.Text)
		if err != nil {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}
	}

	labels = rs.labels
	return
}
