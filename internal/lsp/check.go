package lsp

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mesh-intelligence/solid/pkg/types"
)

// CheckSubstitutable performs every worker's duty through types.Worker and
// returns the first failure. Output of conforming workers is written to w.
// A worker that fails or writes nothing breaks the shared contract.
func CheckSubstitutable(w io.Writer, workers ...types.Worker) error {
	for i, worker := range workers {
		var buf bytes.Buffer
		if err := worker.PerformDuty(&buf); err != nil {
			return fmt.Errorf("worker %d (%T): %w", i, worker, err)
		}
		if buf.Len() == 0 {
			return fmt.Errorf("worker %d (%T): %w",
				i, worker, types.Unsupported(fmt.Sprintf("%T", worker), "PerformDuty", "no output"))
		}
		if _, err := buf.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}
