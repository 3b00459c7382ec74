// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such file or directory")
	err := NewContext().
		WithOperation("scan directory").
		WithResource("/tmp/missing").
		Wrap(cause).
		BuildError()

	want := "failed to scan directory: /tmp/missing: no such file or directory"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestBuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if err := NewContext().WithResource("x").BuildError(); err != nil {
		t.Errorf("expected nil error without operation, got %v", err)
	}
}

func TestFormatIncludesSuggestions(t *testing.T) {
	t.Parallel()

	ae := NewContext().
		WithOperation("compile pattern").
		WithSuggestion("Escape literal dots as \\.").
		WithSuggestion("Quote the pattern to avoid shell expansion").
		Build()

	out := ae.Format(false)
	if !strings.Contains(out, "Escape literal dots") || !strings.Contains(out, "shell expansion") {
		t.Errorf("suggestions missing from %q", out)
	}
}

func TestFormatVerboseShowsErrorChain(t *testing.T) {
	t.Parallel()

	inner := errors.New("bad escape")
	ae := NewContext().
		WithOperation("compile pattern").
		Wrap(inner).
		Build()

	out := ae.Format(true)
	if !strings.Contains(out, "Error chain:") || !strings.Contains(out, "bad escape") {
		t.Errorf("error chain missing from %q", out)
	}
	if strings.Contains(ae.Format(false), "Error chain:") {
		t.Error("non-verbose format should not include the chain")
	}
}

func TestRenderFallsBackToPlainFormat(t *testing.T) {
	origRender := render
	t.Cleanup(func() { render = origRender })
	render = func(in, stylePath string) (string, error) {
		return "", errors.New("no terminal")
	}

	ae := NewContext().WithOperation("load configuration").Build()
	if got := ae.Render("dark"); got != ae.Format(false) {
		t.Errorf("expected plain fallback, got %q", got)
	}
}

func TestMarkdownStructure(t *testing.T) {
	t.Parallel()

	ae := NewContext().
		WithOperation("load configuration").
		WithResource("config.toml").
		WithSuggestion("Run `renamex config init`").
		Build()

	md := ae.Markdown()
	for _, want := range []string{"## Failed to load configuration", "`config.toml`", "### Suggestions"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}
