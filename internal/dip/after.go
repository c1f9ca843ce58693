package dip

import (
	"io"

	"github.com/mesh-intelligence/solid/pkg/types"
)

// Site depends only on types.Worker.
type Site struct {
	worker types.Worker
}

// NewSite returns a site that delegates to worker.
// Returns types.ErrNilCollaborator if worker is nil.
func NewSite(worker types.Worker) (*Site, error) {
	if worker == nil {
		return nil, types.ErrNilCollaborator
	}
	return &Site{worker: worker}, nil
}

// StartWork performs the injected worker's duty.
func (s *Site) StartWork(w io.Writer) error {
	return s.worker.PerformDuty(w)
}
