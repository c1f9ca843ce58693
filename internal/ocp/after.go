package ocp

import (
	"io"

	"github.com/mesh-intelligence/solid/pkg/types"
)

// WallBuilding builds a wall.
type WallBuilding struct{}

func (WallBuilding) PerformTask(w io.Writer) error {
	return types.WriteLine(w, types.LabelBuildWall)
}

// ElectricalInstallation installs wiring.
type ElectricalInstallation struct{}

func (ElectricalInstallation) PerformTask(w io.Writer) error {
	return types.WriteLine(w, types.LabelInstallWiring)
}

// PlumbingInstallation installs pipes.
type PlumbingInstallation struct{}

func (PlumbingInstallation) PerformTask(w io.Writer) error {
	return types.WriteLine(w, types.LabelInstallPipes)
}

// Decorating paints and finishes.
type Decorating struct{}

func (Decorating) PerformTask(w io.Writer) error {
	return types.WriteLine(w, types.LabelPaint)
}

var (
	_ types.Task = WallBuilding{}
	_ types.Task = ElectricalInstallation{}
	_ types.Task = PlumbingInstallation{}
	_ types.Task = Decorating{}
)

// Site starts any task it is handed. It never inspects the concrete type.
type Site struct{}

// StartWork performs task exactly once.
func (Site) StartWork(w io.Writer, task types.Task) error {
	return task.PerformTask(w)
}

// Tasks returns the four built-in tasks in schedule order.
func Tasks() []types.Task {
	return []types.Task{WallBuilding{}, ElectricalInstallation{}, PlumbingInstallation{}, Decorating{}}
}
