// Package demo holds the named demonstration scenarios and the runner that
// executes them and reports what each one wrote.
package demo

import (
	"io"
	"slices"
)

// Scenario is one named demonstration. Run builds its own values, performs
// the demonstrated calls and writes their output to w.
type Scenario struct {
	ID        string
	Set       string
	Principle string
	Variant   string
	Name      string

	// ExpectErr marks a scenario that exists to show an unsupported
	// operation. It passes only if Run fails with
	// types.ErrUnsupportedOperation.
	ExpectErr bool

	Run func(w io.Writer) error
}

// Selector narrows a scenario list. An empty field matches everything.
type Selector struct {
	Sets       []string
	Principles []string
	Variants   []string
}

// Matches reports whether s is selected.
func (sel Selector) Matches(s Scenario) bool {
	return matchAny(sel.Sets, s.Set) &&
		matchAny(sel.Principles, s.Principle) &&
		matchAny(sel.Variants, s.Variant)
}

func matchAny(want []string, v string) bool {
	return len(want) == 0 || slices.Contains(want, v)
}

// Filter returns the scenarios selected by sel, preserving order.
func Filter(scenarios []Scenario, sel Selector) []Scenario {
	var out []Scenario
	for _, s := range scenarios {
		if sel.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}
