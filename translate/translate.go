// Package translate localizes the messages of the Sim6 tools.
package translate

import (
	"log"
	"os"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// DefaultLocale is used when the host reports no locale.
const DefaultLocale = "en-US"

// LocaleEnv, if set, overrides the host locale.
const LocaleEnv = "SIM6_LANG"

var printer *message.Printer

func init() {
	err := registerCatalog()
	if err != nil {
		log.Printf("sim6: catalog: %v", err)
	}

	printer = NewPrinter(Locales()...)
}

// Locales returns the preferred locales, most preferred first.
func Locales() (locales []string) {
	if env := os.Getenv(LocaleEnv); len(env) != 0 {
		locales = []string{env}
		return
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("sim6: locale: %v", err)
	}

	return
}

// NewPrinter returns a message printer for the best supported match of
// locales, falling back to DefaultLocale.
func NewPrinter(locales ...string) *message.Printer {
	locales = append(locales, DefaultLocale)

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
