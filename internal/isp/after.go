package isp

import (
	"io"

	"github.com/mesh-intelligence/solid/pkg/types"
)

type WallBuilder interface {
	BuildWall(w io.Writer) error
}

type ElectricalWorker interface {
	InstallWiring(w io.Writer) error
}

type PlumbingWorker interface {
	InstallPipes(w io.Writer) error
}

type DecoratingWorker interface {
	Paint(w io.Writer) error
}

// Bricklayer implements WallBuilder only.
type Bricklayer struct{}

func (Bricklayer) BuildWall(w io.Writer) error {
	return types.WriteLine(w, types.LabelBuildWall)
}

// Electrician implements ElectricalWorker only.
type Electrician struct{}

func (Electrician) InstallWiring(w io.Writer) error {
	return types.WriteLine(w, types.LabelInstallWiring)
}

// Plumber implements PlumbingWorker only.
type Plumber struct{}

func (Plumber) InstallPipes(w io.Writer) error {
	return types.WriteLine(w, types.LabelInstallPipes)
}

// Decorator implements DecoratingWorker only.
type Decorator struct{}

func (Decorator) Paint(w io.Writer) error {
	return types.WriteLine(w, types.LabelPaint)
}

var (
	_ WallBuilder      = Bricklayer{}
	_ ElectricalWorker = Electrician{}
	_ PlumbingWorker   = Plumber{}
	_ DecoratingWorker = Decorator{}
)
