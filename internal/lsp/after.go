package lsp

import (
	"io"

	"github.com/mesh-intelligence/solid/pkg/types"
)

// Bricklayer builds walls.
type Bricklayer struct{}

func (Bricklayer) PerformDuty(w io.Writer) error {
	return types.WriteLine(w, types.LabelBuildWall)
}

// Electrician installs wiring.
type Electrician struct{}

func (Electrician) PerformDuty(w io.Writer) error {
	return types.WriteLine(w, types.LabelInstallWiring)
}

// Inspection is the capability inspectors actually have. It is disjoint
// from types.Worker.
type Inspection interface {
	PerformInspection(w io.Writer) error
}

// SiteInspector inspects finished work.
type SiteInspector struct{}

func (SiteInspector) PerformInspection(w io.Writer) error {
	return types.WriteLine(w, types.LabelInspect)
}

// Eagle is a bird that flies.
type Eagle struct{}

func (Eagle) Fly(w io.Writer) error {
	return types.WriteLine(w, types.LabelEagleFly)
}

var (
	_ types.Worker = Bricklayer{}
	_ types.Worker = Electrician{}
	_ Inspection   = SiteInspector{}
	_ types.Bird   = Eagle{}
)
