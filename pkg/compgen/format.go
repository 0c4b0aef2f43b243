package compgen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

type NameStyle interface {
	Format(name string) string
}

type NameStyleFunc func(name string) string

func (f NameStyleFunc) Format(name string) string {
	return f(name)
}

// ClassStyle formats an option or widget name as an exported class name.
var ClassStyle NameStyleFunc = func(name string) string {
	return inflect.Camelize(inflect.Underscore(name))
}

// SelectorStyle dash-cases a name into the public selector form,
// e.g. "dxTextBox" -> "dx-text-box".
var SelectorStyle NameStyleFunc = func(name string) string {
	return strings.ReplaceAll(inflect.Underscore(name), "_", "-")
}

// PathStyle formats the output location for a component; identical to the
// selector form today but kept separate so the two can diverge.
var PathStyle NameStyleFunc = func(name string) string {
	return SelectorStyle(name)
}

// Plural returns the plural form of a singular option name.
func Plural(name string) string {
	return inflect.Pluralize(name)
}

// LowerFirst lower-cases the first rune only, e.g. "ValueChanged" ->
// "valueChanged".
func LowerFirst(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
