// Package cli implements the solid command-line interface.
package cli

import (
	"context"
	"errors"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/solid/internal/logger"
	"github.com/mesh-intelligence/solid/internal/paths"
	"github.com/mesh-intelligence/solid/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	logLevel  string
	jsonMode  bool
}

// app is the state shared by one command tree: flags, the loaded config and
// the logger built from it.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	log       *charmlog.Logger
}

// NewRootCmd creates the top-level "solid" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: types.DefaultConfig(), log: logger.Discard()}

	root := &cobra.Command{
		Use:   "solid",
		Short: "Demonstrations of the SOLID design principles",
		Long: "solid runs small before/after demonstrations of the five SOLID principles\n" +
			"using a construction site analogy and a general example set.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/solid)")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newListCmd(a))

	return root
}

// setup resolves the config directory, loads config.yaml and builds the
// logger. The version command needs none of it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(err)
	}
	a.configDir = dir

	cfg, err := loadConfig(dir, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return userError(err)
	}
	lc := logger.DefaultConfig()
	lc.Level = level
	lc.Output = cmd.ErrOrStderr()
	a.log = logger.New(lc)
	a.log.Debug("config.loaded", "dir", dir, "sets", cfg.Sets, "principles", cfg.Principles)
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return exitCode(NewRootCmd().ExecuteContext(context.Background()))
}

// exitError carries the exit code an error should map to.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps err to a process exit code. Errors without an explicit code
// come from cobra argument parsing and count as user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
