package ocp

import (
	"io"
	"slices"

	"github.com/mesh-intelligence/solid/pkg/types"
)

// Task tags understood by TaggedSite.
const (
	TagWallBuilding           = "WallBuilding"
	TagElectricalInstallation = "ElectricalInstallation"
	TagPlumbingInstallation   = "PlumbingInstallation"
	TagDecorating             = "Decorating"
)

// TaggedSite picks the work to do by comparing a tag against a fixed set of
// names. Adding a task means editing the handler table below.
type TaggedSite struct {
	handlers map[string]func(io.Writer) error
}

// NewTaggedSite returns a site with the four built-in tasks.
func NewTaggedSite() *TaggedSite {
	return &TaggedSite{
		handlers: map[string]func(io.Writer) error{
			TagWallBuilding: func(w io.Writer) error {
				return types.WriteLine(w, types.LabelBuildWall)
			},
			TagElectricalInstallation: func(w io.Writer) error {
				return types.WriteLine(w, types.LabelInstallWiring)
			},
			TagPlumbingInstallation: func(w io.Writer) error {
				return types.WriteLine(w, types.LabelInstallPipes)
			},
			TagDecorating: func(w io.Writer) error {
				return types.WriteLine(w, types.LabelPaint)
			},
		},
	}
}

// PerformTask runs the handler registered for tag.
// An unknown tag does nothing and returns nil. This is the latent bug the
// example exists to show: a typo is indistinguishable from success.
func (s *TaggedSite) PerformTask(w io.Writer, tag string) error {
	h, ok := s.handlers[tag]
	if !ok {
		return nil
	}
	return h(w)
}

// Tags returns the known tags in sorted order.
func (s *TaggedSite) Tags() []string {
	tags := make([]string, 0, len(s.handlers))
	for tag := range s.handlers {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}
