package srp

import (
	"io"

	"github.com/mesh-intelligence/solid/pkg/types"
)

// Bricklayer only builds walls.
type Bricklayer struct{}

func (Bricklayer) PerformDuty(w io.Writer) error {
	return types.WriteLine(w, types.LabelBuildWall)
}

// Electrician only installs wiring.
type Electrician struct{}

func (Electrician) PerformDuty(w io.Writer) error {
	return types.WriteLine(w, types.LabelInstallWiring)
}

// Plumber only installs pipes.
type Plumber struct{}

func (Plumber) PerformDuty(w io.Writer) error {
	return types.WriteLine(w, types.LabelInstallPipes)
}

// Decorator only paints.
type Decorator struct{}

func (Decorator) PerformDuty(w io.Writer) error {
	return types.WriteLine(w, types.LabelPaint)
}

var (
	_ types.Worker = Bricklayer{}
	_ types.Worker = Electrician{}
	_ types.Worker = Plumber{}
	_ types.Worker = Decorator{}
)

// Crew returns one of each worker in the order the site employs them.
func Crew() []types.Worker {
	return []types.Worker{Bricklayer{}, Electrician{}, Plumber{}, Decorator{}}
}
