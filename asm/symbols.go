package asm

import (
	"cmp"
	"slices"

	"gopkg.in/yaml.v3"
)

// SymbolEntry is one label of a symbol map.
type SymbolEntry struct {
	Name    string `yaml:"name"`
	Address int    `yaml:"address"`
	Section string `yaml:"section"`
}

// Symbols returns the label table sorted by address, then name.
func (lt LabelTable) Symbols() (entries []SymbolEntry) {
	for name, sym := range lt {
		entries = append(entries, SymbolEntry{
			Name:    name,
			Address: sym.Address,
			Section: sym.Section.String(),
		})
	}

	slices.SortFunc(entries, func(a, b SymbolEntry) int {
		return cmp.Or(cmp.Compare(a.Address, b.Address), cmp.Compare(a.Name, b.Name))
	})

	return
}

// SymbolMap renders the label table as a YAML document.
func SymbolMap(labels LabelTable) ([]byte, error) {
	return yaml.Marshal(struct {
		Symbols []SymbolEntry `yaml:"symbols"`
	}{
		Symbols: labels.Symbols(),
	})
}
