package isp

import (
	"io"

	"github.com/mesh-intelligence/solid/pkg/types"
)

// ConstructionTasks forces every implementer to do every job.
type ConstructionTasks interface {
	BuildWall(w io.Writer) error
	InstallWiring(w io.Writer) error
	InstallPipes(w io.Writer) error
	Paint(w io.Writer) error
}

// WideBricklayer only knows how to build walls but must satisfy
// ConstructionTasks.
type WideBricklayer struct{}

var _ ConstructionTasks = WideBricklayer{}

func (WideBricklayer) BuildWall(w io.Writer) error {
	return types.WriteLine(w, types.LabelBuildWall)
}

func (WideBricklayer) InstallWiring(io.Writer) error {
	return types.Unsupported("Bricklayer", "InstallWiring", "")
}

func (WideBricklayer) InstallPipes(io.Writer) error {
	return types.Unsupported("Bricklayer", "InstallPipes", "")
}

func (WideBricklayer) Paint(io.Writer) error {
	return types.Unsupported("Bricklayer", "Paint", "")
}
