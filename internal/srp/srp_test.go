package srp

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/solid/pkg/types"
)

func TestConstructionWorkerDoesEveryJob(t *testing.T) {
	var buf bytes.Buffer
	cw := ConstructionWorker{}

	for _, job := range []func(io.Writer) error{cw.BuildWall, cw.InstallWiring, cw.InstallPipes, cw.Paint} {
		require.NoError(t, job(&buf))
	}

	assert.Equal(t,
		"Building a wall.\nInstalling electrical wiring.\nInstalling pipes.\nPainting and adding finishing touches.\n",
		buf.String())
}

func TestWorkersPerformOneDuty(t *testing.T) {
	tests := []struct {
		name   string
		worker types.Worker
		want   string
	}{
		{name: "bricklayer", worker: Bricklayer{}, want: "Building a wall.\n"},
		{name: "electrician", worker: Electrician{}, want: "Installing electrical wiring.\n"},
		{name: "plumber", worker: Plumber{}, want: "Installing pipes.\n"},
		{name: "decorator", worker: Decorator{}, want: "Painting and adding finishing touches.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.worker.PerformDuty(&buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWorkerIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	b := Bricklayer{}
	require.NoError(t, b.PerformDuty(&buf))
	require.NoError(t, b.PerformDuty(&buf))
	assert.Equal(t, "Building a wall.\nBuilding a wall.\n", buf.String())
}

func TestCrew(t *testing.T) {
	crew := Crew()
	require.Len(t, crew, 4)

	var buf bytes.Buffer
	for _, w := range crew {
		require.NoError(t, w.PerformDuty(&buf))
	}
	assert.Equal(t, 4, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestServices(t *testing.T) {
	t.Run("authenticate user omits password", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, UserAuthenticationService{}.AuthenticateUser(&buf, "john.doe", "password"))
		assert.Equal(t, "Authenticating user: john.doe\n", buf.String())
		assert.NotContains(t, buf.String(), "password")
	})

	t.Run("send email", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EmailService{}.SendEmail(&buf, "john.doe@example.com", "Test Subject", "This is a test email."))
		assert.Equal(t,
			"Sending email to: john.doe@example.com, Subject: Test Subject, Body: This is a test email.\n",
			buf.String())
	})
}
