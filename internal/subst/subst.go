// SPDX-License-Identifier: MPL-2.0

// Package subst checks and applies replacement templates that reference
// regular-expression capture groups, e.g. `$1`, `${2}`.
//
// The substitution itself is delegated to the regexp package's Expand so
// that the advisory checks in this package can never disagree with what the
// engine actually does. What this package adds is a static scan over the template
// that flags bare references whose boundary is ambiguous: the engine reads
// `$1abc` as the single reference `${1abc}`, not as `$1` followed by "abc",
// which silently expands to nothing.
package subst

import (
	"fmt"
	"regexp"
)

type (
	// Warning flags one ambiguous bare capture-group reference in a template.
	// Warnings are advisory: a template that produces warnings is still
	// accepted and expanded with the engine's usual rules.
	Warning struct {
		// Offset is the byte offset of the `$` that starts the reference.
		Offset int
		// Ref is the reference as the author likely intended it, e.g. "$1".
		Ref string
		// Read is the reference as the engine will actually read it,
		// e.g. "$1abc".
		Read string
	}

	// Template is a validated replacement template. The zero value is an
	// empty template; construct with New.
	Template struct {
		raw      string
		warnings []Warning
	}
)

// New scans raw once and returns the template together with any advisory
// warnings. It never fails: ambiguity is not an error.
func New(raw string) Template {
	return Template{raw: raw, warnings: check(raw)}
}

// String returns the raw template text.
func (t Template) String() string { return t.raw }

// Warnings returns the ambiguous bare references found at construction.
func (t Template) Warnings() []Warning { return t.warnings }

// Expand applies the template to the first match of re in name, using the
// engine's own reference rules. Only the first match is substituted; later
// occurrences of the pattern are left alone. Names without a match are
// returned unchanged.
func (t Template) Expand(re *regexp.Regexp, name string) string {
	m := re.FindStringSubmatchIndex(name)
	if m == nil {
		return name
	}

	out := make([]byte, 0, len(name))
	out = append(out, name[:m[0]]...)
	out = re.ExpandString(out, t.raw, name, m)
	out = append(out, name[m[1]:]...)
	return string(out)
}

// Message renders the warning the way the CLI reports it.
func (w Warning) Message() string {
	return fmt.Sprintf("capture reference `%s` at offset %d is read as `%s`; use `${%s}` to delimit it",
		w.Ref, w.Offset, w.Read, w.Ref[1:])
}

// refBoundary reports whether c would extend, or visually run into, a bare
// numeric reference. Digits, letters and `_` are folded into the reference
// name by the engine; a following `$` starts another reference with no
// visible boundary between the two.
func refBoundary(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c == '_' || c == '$':
		return true
	}
	return false
}

// check scans the template left to right for bare numeric references whose
// following byte makes the boundary ambiguous. Braced references and `$`
// escapes never warn; end of string after a reference never warns.
func check(raw string) []Warning {
	var warnings []Warning

	for i := 0; i < len(raw); {
		if raw[i] != '$' {
			i++
			continue
		}
		start := i
		i++
		if i >= len(raw) {
			break // trailing literal `$`
		}
		switch {
		case raw[i] == '$':
			// `$$` escape, the second `$` is consumed as a literal.
			i++
		case raw[i] == '{':
			// Braced reference: explicit boundary, skip to the close.
			for i < len(raw) && raw[i] != '}' {
				i++
			}
			if i < len(raw) {
				i++
			}
		case raw[i] >= '0' && raw[i] <= '9':
			// Bare numeric reference: take the maximal digit run, then
			// judge the byte after it.
			for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
				i++
			}
			if i < len(raw) && refBoundary(raw[i]) {
				read := i
				for read < len(raw) && refBoundary(raw[read]) {
					read++
				}
				warnings = append(warnings, Warning{
					Offset: start,
					Ref:    raw[start:i],
					Read:   raw[start:read],
				})
			}
		default:
			// `$` before anything else is passed through untouched by the
			// scanner; the engine may still read `$name`, but only numeric
			// references are our concern here.
			i++
		}
	}

	return warnings
}
