package demo

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/solid/internal/logger"
	"github.com/mesh-intelligence/solid/pkg/types"
)

func TestRunCatalog(t *testing.T) {
	report, err := NewRunner(logger.Discard()).Run(context.Background(), Catalog())
	require.NoError(t, err)

	assert.Equal(t, 0, report.Failed)
	assert.Len(t, report.Results, len(Catalog()))
	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)

	for _, res := range report.Results {
		assert.True(t, res.OK, res.ID)
	}
}

func TestRunMismatch(t *testing.T) {
	scenarios := []Scenario{
		{ID: "ok", Run: func(w io.Writer) error { return types.WriteLine(w, "fine") }},
		{ID: "should-fail", ExpectErr: true, Run: func(w io.Writer) error { return nil }},
		{ID: "wrong-error", ExpectErr: true, Run: func(w io.Writer) error { return types.ErrNilCollaborator }},
		{ID: "unexpected-error", Run: func(w io.Writer) error { return types.Unsupported("X", "Y", "") }},
	}

	report, err := NewRunner(logger.Discard()).Run(context.Background(), scenarios)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScenarioMismatch)
	assert.Equal(t, 3, report.Failed)

	ok := make([]bool, 0, len(report.Results))
	for _, res := range report.Results {
		ok = append(ok, res.OK)
	}
	assert.Equal(t, []bool{true, false, false, false}, ok)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewRunner(logger.Discard()).Run(ctx, Catalog())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results)
}

func TestRunIDFailure(t *testing.T) {
	r := NewRunner(logger.Discard())
	r.newID = func() (uuid.UUID, error) { return uuid.Nil, errors.New("entropy exhausted") }

	_, err := r.Run(context.Background(), Catalog())
	assert.ErrorContains(t, err, "generate run id")
}

func TestRunIsIdempotent(t *testing.T) {
	r := NewRunner(logger.Discard())
	sel := Selector{Sets: []string{types.SetSite}}

	first, err := r.Run(context.Background(), Filter(Catalog(), sel))
	require.NoError(t, err)
	second, err := r.Run(context.Background(), Filter(Catalog(), sel))
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, first.WriteText(&a))
	require.NoError(t, second.WriteText(&b))
	assert.Equal(t, a.String(), b.String())
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestReportWriteText(t *testing.T) {
	sel := Selector{Sets: []string{types.SetGeneral}, Principles: []string{types.PrincipleLSP}}
	report, err := NewRunner(logger.Discard()).Run(context.Background(), Filter(Catalog(), sel))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf))
	assert.Equal(t,
		"Eagle flying high.\nerror: Penguin.Fly: operation not supported: penguins cannot fly\n",
		buf.String())
}

func TestReportWriteJSON(t *testing.T) {
	sel := Selector{Sets: []string{types.SetSite}, Principles: []string{types.PrincipleDIP}}
	report, err := NewRunner(logger.Discard()).Run(context.Background(), Filter(Catalog(), sel))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report.RunID, decoded.RunID)
	require.Len(t, decoded.Results, 4)
	assert.Equal(t, "site.dip.concrete", decoded.Results[0].ID)
	assert.Equal(t, []string{"Building a wall."}, decoded.Results[0].Lines)
	assert.Empty(t, decoded.Results[1].Lines)
	assert.Equal(t, []string{"Installing electrical wiring."}, decoded.Results[3].Lines)
}
