// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error values that carry enough context
// to be actionable: what was attempted, which resource was involved, and
// suggestions for fixing it. Errors can be rendered plainly or as a styled
// markdown card.
package issue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type (
	// ActionableError is an error with context for user-facing messages.
	//
	// Use the Context builder for construction:
	//
	//	return issue.NewContext().
	//		WithOperation("compile pattern").
	//		WithResource(pattern).
	//		WithSuggestion("Check the RE2 syntax reference").
	//		Wrap(err).
	//		BuildError()
	ActionableError struct {
		// Operation describes what was being attempted, as a verb phrase.
		Operation string
		// Resource identifies the file, path, or value involved (optional).
		Resource string
		// Suggestions provides hints on how to fix the issue (optional).
		Suggestions []string
		// Cause is the underlying error (optional).
		Cause error
	}

	// Context is a fluent builder for ActionableError values.
	Context struct {
		operation   string
		resource    string
		suggestions []string
		cause       error
	}
)

// NewContext creates a new builder.
func NewContext() *Context {
	return &Context{}
}

// WithOperation sets the operation being performed ("load configuration",
// "compile pattern"). Required; Build returns nil without it.
func (c *Context) WithOperation(op string) *Context {
	c.operation = op
	return c
}

// WithResource sets the file, path, or value involved.
func (c *Context) WithResource(res string) *Context {
	c.resource = res
	return c
}

// WithSuggestion adds one fix-it hint. May be called repeatedly.
func (c *Context) WithSuggestion(sug string) *Context {
	c.suggestions = append(c.suggestions, sug)
	return c
}

// Wrap records the underlying cause.
func (c *Context) Wrap(err error) *Context {
	c.cause = err
	return c
}

// Build creates the ActionableError, or nil when no operation was set.
func (c *Context) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: slices.Clone(c.suggestions),
		Cause:       c.cause,
	}
}

// BuildError is Build returned as the error interface, for use directly in
// return statements.
func (c *Context) BuildError() error {
	ae := c.Build()
	if ae == nil {
		return nil
	}
	return ae
}

// Error implements the error interface with a concise single-line message.
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)
	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}
	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format returns the message with suggestions, and in verbose mode the full
// error chain.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder

	msg.WriteString(e.Error())

	for _, suggestion := range e.Suggestions {
		msg.WriteString("\n  • ")
		msg.WriteString(suggestion)
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		err := e.Cause
		depth := 1
		for err != nil {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
			err = errors.Unwrap(err)
			depth++
		}
	}

	return msg.String()
}

// Markdown returns the error as a markdown document suitable for Render.
func (e *ActionableError) Markdown() string {
	var md strings.Builder

	fmt.Fprintf(&md, "## Failed to %s\n\n", e.Operation)
	if e.Resource != "" {
		fmt.Fprintf(&md, "`%s`\n\n", e.Resource)
	}
	if e.Cause != nil {
		fmt.Fprintf(&md, "%s\n\n", e.Cause.Error())
	}
	if len(e.Suggestions) > 0 {
		md.WriteString("### Suggestions\n\n")
		for _, suggestion := range e.Suggestions {
			fmt.Fprintf(&md, "- %s\n", suggestion)
		}
	}

	return md.String()
}

// render is swapped out in tests to avoid terminal detection.
var render = glamour.Render

// Render returns the error as a styled terminal card using the given
// glamour style ("dark", "light", "auto"). Falls back to the plain Format
// output when rendering fails.
func (e *ActionableError) Render(stylePath string) string {
	out, err := render(e.Markdown(), stylePath)
	if err != nil {
		return e.Format(false)
	}
	return out
}
