package types

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsupported(t *testing.T) {
	err := Unsupported("Penguin", "Fly", "penguins cannot fly")

	assert.True(t, errors.Is(err, ErrUnsupportedOperation))
	assert.True(t, IsUnsupported(err))
	assert.Equal(t, "Penguin.Fly: operation not supported: penguins cannot fly", err.Error())

	var opErr *OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "Penguin", opErr.Variant)
	assert.Equal(t, "Fly", opErr.Op)
}

func TestUnsupportedWithoutReason(t *testing.T) {
	err := Unsupported("Inspector", "PerformDuty", "")
	assert.Equal(t, "Inspector.PerformDuty: operation not supported", err.Error())
}

func TestIsUnsupportedThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("run scenario: %w", Unsupported("Decorator", "PerformDuty", ""))
	assert.True(t, IsUnsupported(wrapped))
	assert.False(t, IsUnsupported(ErrNilCollaborator))
	assert.False(t, IsUnsupported(nil))
}

func TestNilOpError(t *testing.T) {
	var e *OpError
	assert.Equal(t, "<nil>", e.Error())
	assert.NoError(t, e.Unwrap())
}

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLine(&buf, LabelBuildWall))
	require.NoError(t, WriteLine(&buf, LabelBuildWall))
	assert.Equal(t, "Building a wall.\nBuilding a wall.\n", buf.String())
}

func TestFuncAdapters(t *testing.T) {
	var buf bytes.Buffer
	var w Worker = WorkerFunc(func(out io.Writer) error { return WriteLine(out, LabelPaint) })
	var task Task = TaskFunc(func(out io.Writer) error { return WriteLine(out, LabelInstallPipes) })

	require.NoError(t, w.PerformDuty(&buf))
	require.NoError(t, task.PerformTask(&buf))
	assert.Equal(t, LabelPaint+"\n"+LabelInstallPipes+"\n", buf.String())
}
