// Package inflection converts model names between their singular and plural
// forms.
//
// The default strategies are deliberately naive: Pluralize appends "s" and
// Singularize strips one trailing "s". They are predictable, allocation-free
// and good enough for conventional model names; words like "data" pass
// through unchanged rather than being guessed at. Registries that need real
// English inflection swap in [Rules], which is backed by a ruleset from
// github.com/go-openapi/inflect, or any custom [Strategy] pair.
package inflection

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Strategy transforms a single word.
type Strategy func(word string) string

// Inflector pairs the pluralize and singularize strategies used by a
// registry. A nil strategy falls back to the naive default at the call
// site, so the zero value is ready to use.
type Inflector struct {
	Pluralize   Strategy
	Singularize Strategy
}

// Default returns an inflector using the naive strategies.
func Default() Inflector {
	return Inflector{Pluralize: Pluralize, Singularize: Singularize}
}

// Rules returns an inflector backed by the default English ruleset of
// github.com/go-openapi/inflect. Unlike the naive strategies it knows
// irregular nouns ("person" / "people") and uncountables ("equipment").
func Rules() Inflector {
	rs := inflect.NewDefaultRuleset()
	return Inflector{Pluralize: rs.Pluralize, Singularize: rs.Singularize}
}

// Pluralize is the naive default pluralization: it appends "s"
// unconditionally.
func Pluralize(word string) string {
	return word + "s"
}

// Singularize is the naive default singularization: it strips one trailing
// "s" and returns any other word unchanged, so "data" stays "data".
func Singularize(word string) string {
	if strings.HasSuffix(word, "s") {
		return word[:len(word)-1]
	}
	return word
}

// Camelize converts an underscored name to UpperCamelCase, e.g.
// "blog_post" to "BlogPost".
func Camelize(word string) string {
	return inflect.Camelize(word)
}

// Underscore converts a CamelCase name to snake_case, e.g. "BlogPost" to
// "blog_post".
func Underscore(word string) string {
	return inflect.Underscore(word)
}

// Titleize upper-cases the first letter of every word. It is Unicode-aware
// and leaves the rest of each word alone, so acronyms survive.
func Titleize(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}
