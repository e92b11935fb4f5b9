package asm

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ezrec/sim6/cpu"
)

// labelRef matches '@label' references.
var labelRef = regexp.MustCompile(`@\w*`)

// Translator is the pass 2 line translator. It starts in the data section
// and moves to the code section, permanently, at the '.code' line.
type Translator struct {
	Labels LabelTable // Completed pass 1 label table.
	code   bool
}

// NewTranslator creates a translator over a completed label table.
func NewTranslator(labels LabelTable) *Translator {
	return &Translator{Labels: labels}
}

// InCode is true once the translator has passed the '.code' line.
func (tr *Translator) InCode() bool {
	return tr.code
}

// substitute replaces every '@label' with the label's address in decimal.
func (tr *Translator) substitute(line string) (out string, err error) {
	out = labelRef.ReplaceAllStringFunc(line, func(ref string) string {
		name := ref[1:]
		address, ok := tr.Labels.Address(name)
		if !ok {
			if err == nil {
				err = ErrLabelUnknown(name)
			}
			return ref
		}
		return fmt.Sprintf("%d", address)
	})

	return
}

// Translate converts one trimmed source line into either a data directive or
// a validated instruction. Label-only lines and section lines produce neither.
func (tr *Translator) Translate(line string) (data *Data, in *cpu.Instruction, err error) {
	label, rest, ok := splitLabel(line)
	if ok {
		err = ValidateLabel(label)
		if err != nil {
			return
		}
	}

	if len(rest) == 0 {
		return
	}

	if section, is_marker := sectionMarker(rest); is_marker {
		switch {
		case section == SECTION_CODE:
			tr.code = true
		case tr.code:
			err = ErrSectionOrder
		}
		return
	}

	// .asciiz text is emitted verbatim.
	if tr.code || !strings.HasPrefix(rest, DIRECTIVE_ASCIIZ) {
		rest, err = tr.substitute(rest)
		if err != nil {
			return
		}
	}

	if !tr.code {
		data, err = ParseData(rest)
		return
	}

	instr, err := cpu.ParseInstruction(rest)
	if err != nil {
		return
	}

	err = instr.Validate()
	if err != nil {
		return
	}

	in = &instr
	return
}
