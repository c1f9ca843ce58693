package dip

import (
	"io"

	"github.com/mesh-intelligence/solid/pkg/types"
)

// The concrete workers below share no interface; ConcreteSite names each
// one directly.

type Bricklayer struct{}

func (Bricklayer) PerformDuty(w io.Writer) error {
	return types.WriteLine(w, types.LabelBuildWall)
}

type Electrician struct{}

func (Electrician) PerformDuty(w io.Writer) error {
	return types.WriteLine(w, types.LabelInstallWiring)
}

type Plumber struct{}

func (Plumber) PerformDuty(w io.Writer) error {
	return types.WriteLine(w, types.LabelInstallPipes)
}

type Decorator struct{}

func (Decorator) PerformDuty(w io.Writer) error {
	return types.WriteLine(w, types.LabelPaint)
}

// Worker type tags understood by ConcreteSite.
const (
	TagBricklayer  = "Bricklayer"
	TagElectrician = "Electrician"
	TagPlumber     = "Plumber"
	TagDecorator   = "Decorator"
)

// ConcreteSite depends on every concrete worker type. Adding a trade means
// adding a field, a constructor parameter and a case below.
type ConcreteSite struct {
	bricklayer  Bricklayer
	electrician Electrician
	plumber     Plumber
	decorator   Decorator
}

// NewConcreteSite builds a site from the four concrete workers.
func NewConcreteSite(b Bricklayer, e Electrician, p Plumber, d Decorator) *ConcreteSite {
	return &ConcreteSite{bricklayer: b, electrician: e, plumber: p, decorator: d}
}

// StartWork performs the duty of the worker named by workerType.
// An unknown workerType does nothing and returns nil.
func (s *ConcreteSite) StartWork(w io.Writer, workerType string) error {
	switch workerType {
	case TagBricklayer:
		return s.bricklayer.PerformDuty(w)
	case TagElectrician:
		return s.electrician.PerformDuty(w)
	case TagPlumber:
		return s.plumber.PerformDuty(w)
	case TagDecorator:
		return s.decorator.PerformDuty(w)
	}
	return nil
}
