package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// german are the de translations of the en-US message formats.
var german = map[string]string{
	// cpu
	"immediate out of range":                 "Direktwert außerhalb des Bereichs",
	"immediate too large":                    "Direktwert zu groß",
	"operand shape invalid":                  "Operandenform ungültig",
	"excessive operands":                     "zu viele Operanden",
	"opcode missing":                         "Opcode fehlt",
	"register code invalid":                  "Registercode ungültig",
	"register operand invalid":               "Registeroperand ungültig",
	"opcode '%v' unknown":                    "Opcode '%v' unbekannt",
	"register '%v' unknown":                  "Register '%v' unbekannt",
	"'%v' is not a number":                   "'%v' ist keine Zahl",
	"register %v %v":                         "Register %v %v",
	"has no operand encoding":                "hat keine Operandenkodierung",
	"must be none":                           "muss none sein",
	"must not be none":                       "darf nicht none sein",
	"registers %v and %v are of mixed width": "Register %v und %v haben unterschiedliche Breiten",
	"%v: %v":                                 "%v: %v",

	// asm
	"directive syntax":       "Direktivensyntax fehlerhaft",
	".data after .code":      ".data nach .code",
	"config invalid":         "Konfiguration ungültig",
	"directive '%v' unknown": "Direktive '%v' unbekannt",
	"label '%v' invalid":     "Marke '%v' ungültig",
	"label %v missing":       "Marke %v fehlt",
	"config '%v' invalid":    "Konfiguration '%v' ungültig",
	"line %d '%v' %v":        "Zeile %d '%v' %v",
}

// registerCatalog adds the translations to the default message catalog.
// The en-US messages are their own keys.
func registerCatalog() (err error) {
	for key := range german {
		err = message.SetString(language.AmericanEnglish, key, key)
		if err != nil {
			return
		}
	}

	for key, msg := range german {
		err = message.SetString(language.German, key, msg)
		if err != nil {
			return
		}
	}

	return
}
