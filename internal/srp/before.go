package srp

import (
	"io"

	"github.com/mesh-intelligence/solid/pkg/types"
)

// ConstructionWorker does every job on the site.
type ConstructionWorker struct{}

// BuildWall writes the wall-building line.
func (ConstructionWorker) BuildWall(w io.Writer) error {
	return types.WriteLine(w, types.LabelBuildWall)
}

// InstallWiring writes the wiring line.
func (ConstructionWorker) InstallWiring(w io.Writer) error {
	return types.WriteLine(w, types.LabelInstallWiring)
}

// InstallPipes writes the plumbing line.
func (ConstructionWorker) InstallPipes(w io.Writer) error {
	return types.WriteLine(w, types.LabelInstallPipes)
}

// Paint writes the decorating line.
func (ConstructionWorker) Paint(w io.Writer) error {
	return types.WriteLine(w, types.LabelPaint)
}
