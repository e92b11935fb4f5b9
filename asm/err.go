package asm

import (
	"errors"

	"github.com/ezrec/sim6/translate"
)

var f = translate.From

var (
	ErrDirectiveSyntax = errors.New(f("directive syntax"))
	ErrSectionOrder    = errors.New(f(".data after .code"))
	ErrConfig          = errors.New(f("config invalid"))
)

// ErrDirectiveUnknown is an unrecognized data directive.
type ErrDirectiveUnknown string

func (err ErrDirectiveUnknown) Error() string {
	return f("directive '%v' unknown", string(err))
}

func (err ErrDirectiveUnknown) Is(target error) (ok bool) {
	_, ok = target.(ErrDirectiveUnknown)
	return
}

// ErrLabelInvalid is a label name that is not an identifier.
type ErrLabelInvalid string

func (err ErrLabelInvalid) Error() string {
	return f("label '%v' invalid", string(err))
}

func (err ErrLabelInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrLabelInvalid)
	return
}

// ErrLabelUnknown is a reference to a label that is never defined.
type ErrLabelUnknown string

func (err ErrLabelUnknown) Error() string {
	return f("label %v missing", string(err))
}

func (err ErrLabelUnknown) Is(target error) (ok bool) {
	_, ok = target.(ErrLabelUnknown)
	return
}

// ErrConfigValue is a configuration global of the wrong type or range.
type ErrConfigValue string

func (err ErrConfigValue) Error() string {
	return f("config '%v' invalid", string(err))
}

func (err ErrConfigValue) Unwrap() error {
	return ErrConfig
}

// ErrSyntax locates an error in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
