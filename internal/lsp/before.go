package lsp

import (
	"io"

	"github.com/mesh-intelligence/solid/pkg/types"
)

// Inspector claims to be a worker but has no duty to perform.
type Inspector struct{}

// PerformDuty always fails.
func (Inspector) PerformDuty(io.Writer) error {
	return types.Unsupported("Inspector", "PerformDuty", "inspectors do not perform construction duties")
}

// Decorator is a worker whose duty was never implemented.
type Decorator struct{}

// PerformDuty always fails.
func (Decorator) PerformDuty(io.Writer) error {
	return types.Unsupported("Decorator", "PerformDuty", "")
}

// Penguin claims to be a bird.
type Penguin struct{}

// Fly always fails.
func (Penguin) Fly(io.Writer) error {
	return types.Unsupported("Penguin", "Fly", "penguins cannot fly")
}

// These assertions are the violation: the compiler accepts them, the
// behavior does not.
var (
	_ types.Worker = Inspector{}
	_ types.Worker = Decorator{}
	_ types.Bird   = Penguin{}
)
