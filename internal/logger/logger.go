// Package logger builds the structured logger used by the CLI and the
// scenario runner.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"

	"github.com/mesh-intelligence/solid/pkg/types"
)

// Config holds the logger configuration.
type Config struct {
	Level      charmlog.Level
	Output     io.Writer
	JSON       bool
	TimeFormat string
}

// DefaultConfig logs warnings and above to stderr so stdout carries only
// demonstration output.
func DefaultConfig() Config {
	return Config{
		Level:      charmlog.WarnLevel,
		Output:     os.Stderr,
		TimeFormat: "15:04:05",
	}
}

// New returns a logger for cfg. A nil Output discards everything.
func New(cfg Config) *charmlog.Logger {
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}
	l := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           cfg.Level,
		Prefix:          "solid",
	})
	if cfg.JSON {
		l.SetFormatter(charmlog.JSONFormatter)
	} else {
		l.SetFormatter(charmlog.TextFormatter)
		l.SetStyles(defaultStyles())
	}
	return l
}

// Discard returns a logger that writes nothing.
func Discard() *charmlog.Logger {
	return New(Config{Level: charmlog.FatalLevel, Output: io.Discard})
}

// ParseLevel maps a config log level to a charm level.
// The empty string selects warn.
func ParseLevel(s string) (charmlog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case types.LogLevelDebug:
		return charmlog.DebugLevel, nil
	case types.LogLevelInfo:
		return charmlog.InfoLevel, nil
	case "", types.LogLevelWarn:
		return charmlog.WarnLevel, nil
	case types.LogLevelError:
		return charmlog.ErrorLevel, nil
	}
	return charmlog.WarnLevel, fmt.Errorf("%q: %w", s, types.ErrUnknownLogLevel)
}

func defaultStyles() *charmlog.Styles {
	styles := charmlog.DefaultStyles()
	styles.Levels[charmlog.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBU").Bold(true).Foreground(lipgloss.Color("63"))
	styles.Levels[charmlog.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").Bold(true).Foreground(lipgloss.Color("86"))
	styles.Levels[charmlog.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").Bold(true).Foreground(lipgloss.Color("192"))
	styles.Levels[charmlog.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERRO").Bold(true).Foreground(lipgloss.Color("204"))
	styles.Keys["run_id"] = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	return styles
}
