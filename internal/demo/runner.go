package demo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	charmlog "github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/mesh-intelligence/solid/pkg/types"
)

// ErrScenarioMismatch is returned by Run when at least one scenario did not
// behave as declared.
var ErrScenarioMismatch = errors.New("scenario did not behave as declared")

// Result is the outcome of one scenario.
type Result struct {
	ID        string   `json:"id"`
	Set       string   `json:"set"`
	Principle string   `json:"principle"`
	Variant   string   `json:"variant"`
	Name      string   `json:"name"`
	Lines     []string `json:"lines"`
	ExpectErr bool     `json:"expect_error"`
	Error     string   `json:"error,omitempty"`
	OK        bool     `json:"ok"`

	Err error `json:"-"`
}

// Report collects the results of one run.
type Report struct {
	RunID   string   `json:"run_id"`
	Results []Result `json:"results"`
	Failed  int      `json:"failed"`
}

// Runner executes scenarios. Each scenario writes into its own buffer so a
// failing call never interleaves partial output with the next one.
type Runner struct {
	log   *charmlog.Logger
	newID func() (uuid.UUID, error)
}

// NewRunner returns a runner that logs through log.
func NewRunner(log *charmlog.Logger) *Runner {
	return &Runner{log: log, newID: uuid.NewV7}
}

// Run executes scenarios in order and returns the report. It returns
// ErrScenarioMismatch if any scenario misbehaved, or ctx.Err() if ctx is
// done before all scenarios ran; the report is filled in either case.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) (Report, error) {
	id, err := r.newID()
	if err != nil {
		return Report{}, fmt.Errorf("generate run id: %w", err)
	}
	report := Report{RunID: id.String(), Results: make([]Result, 0, len(scenarios))}
	log := r.log.With("run_id", report.RunID)
	log.Debug("run.start", "scenarios", len(scenarios))

	for _, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res := runOne(sc)
		report.Results = append(report.Results, res)

		switch {
		case !res.OK:
			report.Failed++
			log.Error("scenario.mismatch", "id", sc.ID, "expect_error", sc.ExpectErr, "err", res.Err)
		case res.Err != nil:
			log.Info("scenario.expected_failure", "id", sc.ID, "err", res.Err)
		default:
			log.Debug("scenario.ok", "id", sc.ID, "lines", len(res.Lines))
		}
	}

	log.Debug("run.done", "failed", report.Failed)
	if report.Failed > 0 {
		return report, fmt.Errorf("%d of %d: %w", report.Failed, len(scenarios), ErrScenarioMismatch)
	}
	return report, nil
}

func runOne(sc Scenario) Result {
	var buf bytes.Buffer
	err := sc.Run(&buf)

	res := Result{
		ID:        sc.ID,
		Set:       sc.Set,
		Principle: sc.Principle,
		Variant:   sc.Variant,
		Name:      sc.Name,
		Lines:     splitLines(buf.String()),
		ExpectErr: sc.ExpectErr,
		Err:       err,
	}
	if err != nil {
		res.Error = err.Error()
	}
	if sc.ExpectErr {
		res.OK = types.IsUnsupported(err)
	} else {
		res.OK = err == nil
	}
	return res
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

// WriteText writes every output line in order. A failing scenario writes
// its error as its single line.
func (rep Report) WriteText(w io.Writer) error {
	for _, res := range rep.Results {
		for _, line := range res.Lines {
			if err := types.WriteLine(w, line); err != nil {
				return err
			}
		}
		if res.Err != nil {
			if err := types.WriteLine(w, "error: "+res.Error); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteJSON writes the report as indented JSON.
func (rep Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
