package lsp

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/solid/pkg/types"
)

func TestViolatorsAlwaysFail(t *testing.T) {
	tests := []struct {
		name    string
		call    func(io.Writer) error
		variant string
	}{
		{name: "inspector duty", call: Inspector{}.PerformDuty, variant: "Inspector"},
		{name: "decorator duty", call: Decorator{}.PerformDuty, variant: "Decorator"},
		{name: "penguin fly", call: Penguin{}.Fly, variant: "Penguin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 3 {
				var buf bytes.Buffer
				err := tt.call(&buf)
				require.Error(t, err)
				assert.ErrorIs(t, err, types.ErrUnsupportedOperation)
				assert.Empty(t, buf.String(), "a failing call must not produce partial output")

				var opErr *types.OpError
				require.True(t, errors.As(err, &opErr))
				assert.Equal(t, tt.variant, opErr.Variant)
			}
		})
	}
}

func TestPenguinErrorMessage(t *testing.T) {
	err := Penguin{}.Fly(io.Discard)
	assert.EqualError(t, err, "Penguin.Fly: operation not supported: penguins cannot fly")
}

func TestConformingVariants(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Bricklayer{}.PerformDuty(&buf))
	require.NoError(t, Electrician{}.PerformDuty(&buf))
	require.NoError(t, SiteInspector{}.PerformInspection(&buf))
	require.NoError(t, Eagle{}.Fly(&buf))

	assert.Equal(t,
		"Building a wall.\nInstalling electrical wiring.\nInspecting the construction work.\nEagle flying high.\n",
		buf.String())
}

func TestCheckSubstitutable(t *testing.T) {
	t.Run("conforming workers pass", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, CheckSubstitutable(&buf, Bricklayer{}, Electrician{}))
		assert.Equal(t, "Building a wall.\nInstalling electrical wiring.\n", buf.String())
	})

	t.Run("inspector breaks substitution", func(t *testing.T) {
		var buf bytes.Buffer
		err := CheckSubstitutable(&buf, Bricklayer{}, Inspector{}, Electrician{})
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrUnsupportedOperation)
		assert.Contains(t, err.Error(), "worker 1 (lsp.Inspector)")
		assert.Equal(t, "Building a wall.\n", buf.String())
	})

	t.Run("silent worker breaks substitution", func(t *testing.T) {
		silent := types.WorkerFunc(func(io.Writer) error { return nil })
		err := CheckSubstitutable(io.Discard, silent)
		assert.ErrorIs(t, err, types.ErrUnsupportedOperation)
	})

	t.Run("no workers is vacuously substitutable", func(t *testing.T) {
		assert.NoError(t, CheckSubstitutable(io.Discard))
	})
}
