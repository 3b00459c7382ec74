// SPDX-License-Identifier: MPL-2.0

package subst

import (
	"regexp"
	"strings"
	"testing"
)

func TestCheckBracedReferencesNeverWarn(t *testing.T) {
	t.Parallel()

	templates := []string{
		"${1}",
		"${1}abc",
		"${1}${2}",
		"${1}_${2}",
		"x${10}9",
		"${1}$${2}",
	}

	for _, raw := range templates {
		if warns := New(raw).Warnings(); len(warns) != 0 {
			t.Errorf("template %q: expected no warnings, got %v", raw, warns)
		}
	}
}

func TestCheckBareReferenceAmbiguity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		wantRefs []string
	}{
		{name: "followed by letter", raw: "$1abc", wantRefs: []string{"$1"}},
		{name: "followed by underscore", raw: "$1_x", wantRefs: []string{"$1"}},
		{name: "followed by dollar", raw: "$1$2", wantRefs: []string{"$1"}},
		{name: "multi digit followed by letter", raw: "$12abc", wantRefs: []string{"$12"}},
		{name: "end of string", raw: "prefix-$1", wantRefs: nil},
		{name: "followed by space", raw: "$1 done", wantRefs: nil},
		{name: "followed by punctuation", raw: "$1.txt", wantRefs: nil},
		{name: "followed by dash", raw: "$1-$2", wantRefs: []string{"$2"}},
		{name: "no references", raw: "plain text", wantRefs: nil},
		{name: "lone dollar", raw: "costs $", wantRefs: nil},
		{name: "dollar before letter", raw: "$name", wantRefs: nil},
		{name: "escaped dollar", raw: "$$1", wantRefs: nil},
		{name: "two ambiguous refs", raw: "$1x $2y", wantRefs: []string{"$1", "$2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			warns := New(tt.raw).Warnings()
			if len(warns) != len(tt.wantRefs) {
				t.Fatalf("template %q: expected %d warnings, got %d (%v)",
					tt.raw, len(tt.wantRefs), len(warns), warns)
			}
			for i, want := range tt.wantRefs {
				if warns[i].Ref != want {
					t.Errorf("template %q: warning %d ref = %q, want %q", tt.raw, i, warns[i].Ref, want)
				}
			}
		})
	}
}

func TestCheckWarningOffsets(t *testing.T) {
	t.Parallel()

	warns := New("ab$1cd").Warnings()
	if len(warns) != 1 {
		t.Fatalf("expected one warning, got %v", warns)
	}
	if warns[0].Offset != 2 {
		t.Errorf("expected offset 2, got %d", warns[0].Offset)
	}
	if warns[0].Read != "$1cd" {
		t.Errorf("expected ambiguous read %q, got %q", "$1cd", warns[0].Read)
	}
}

func TestCheckDollarFollowingDigitIsFlagged(t *testing.T) {
	t.Parallel()

	// The documented example: `(a)(b)` with `$1$2` should recommend
	// `${1}${2}` because `$` runs straight into the bare reference.
	warns := New("$1$2").Warnings()
	if len(warns) != 1 {
		t.Fatalf("expected one warning for $1$2, got %v", warns)
	}
	if warns[0].Ref != "$1" || warns[0].Read != "$1$2" {
		t.Errorf("unexpected warning %+v", warns[0])
	}
}

func TestExpandUsesEngineRules(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`(a)(b)`)

	tests := []struct {
		raw  string
		in   string
		want string
	}{
		{raw: "${1}_${2}", in: "ab.txt", want: "a_b.txt"},
		{raw: "${2}${1}", in: "ab.txt", want: "ba.txt"},
		// The engine reads `$1abc` as the (unset) reference `${1abc}`,
		// which expands to nothing; this is exactly what the checker
		// warns about.
		{raw: "$1abc", in: "ab.txt", want: ".txt"},
		{raw: "${1}${2}", in: "no-match.txt", want: "no-match.txt"},
	}

	for _, tt := range tests {
		if got := New(tt.raw).Expand(re, tt.in); got != tt.want {
			t.Errorf("Expand(%q, %q) = %q, want %q", tt.raw, tt.in, got, tt.want)
		}
	}
}

func TestExpandSubstitutesFirstMatchOnly(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`ab`)

	if got := New("X").Expand(re, "abab.txt"); got != "Xab.txt" {
		t.Errorf("Expand(%q, %q) = %q, want %q", "X", "abab.txt", got, "Xab.txt")
	}

	// Capture groups still resolve against that first match.
	re = regexp.MustCompile(`(\d+)`)
	if got := New("n${1}").Expand(re, "12-34.txt"); got != "n12-34.txt" {
		t.Errorf("Expand(%q, %q) = %q, want %q", "n${1}", "12-34.txt", got, "n12-34.txt")
	}
}

func TestWarningMessageRecommendsBraces(t *testing.T) {
	t.Parallel()

	warns := New("$1abc").Warnings()
	if len(warns) != 1 {
		t.Fatalf("expected one warning, got %v", warns)
	}
	msg := warns[0].Message()
	for _, want := range []string{"$1", "$1abc", "${1}"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q does not mention %q", msg, want)
		}
	}
}
