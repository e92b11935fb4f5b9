package asm

import (
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Default section base addresses.
const (
	DATA_BASE = 0x9000
	CODE_BASE = 0x5800
)

// Config holds the assembler settings.
type Config struct {
	DataBase uint16            // Address of the first data byte.
	CodeBase uint16            // Address of the first instruction.
	Symbols  map[string]uint16 // Predefined absolute labels.
}

// DefaultConfig returns the standard Sim6 memory layout.
func DefaultConfig() Config {
	return Config{
		DataBase: DATA_BASE,
		CodeBase: CODE_BASE,
	}
}

// configUint16 converts a Starlark integer global.
func configUint16(name string, value starlark.Value) (result uint16, err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = ErrConfigValue(name)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > 0xffff {
		err = ErrConfigValue(name)
		return
	}

	result = uint16(st_int64)
	return
}

// LoadConfig executes a Starlark configuration file. The file may assign
// 'data_base', 'code_base' and a 'symbols' dict of label names to addresses;
// DATA_BASE and CODE_BASE are predeclared. Other globals are ignored.
//
// src may be nil (read filename), a string or a []byte.
func LoadConfig(filename string, src any) (config Config, err error) {
	config = DefaultConfig()

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"DATA_BASE": starlark.MakeInt(DATA_BASE),
		"CODE_BASE": starlark.MakeInt(CODE_BASE),
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		return
	}

	if value, ok := globals["data_base"]; ok {
		config.DataBase, err = configUint16("data_base", value)
		if err != nil {
			return
		}
	}

	if value, ok := globals["code_base"]; ok {
		config.CodeBase, err = configUint16("code_base", value)
		if err != nil {
			return
		}
	}

	value, ok := globals["symbols"]
	if !ok {
		return
	}

	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = ErrConfigValue("symbols")
		return
	}

	config.Symbols = make(map[string]uint16, dict.Len())
	for _, item := range dict.Items() {
		key, ok := item[0].(starlark.String)
		if !ok {
			err = ErrConfigValue("symbols")
			return
		}
		name := string(key)
		err = ValidateLabel(name)
		if err != nil {
			return
		}
		config.Symbols[name], err = configUint16(name, item[1])
		if err != nil {
			return
		}
	}

	return
}
