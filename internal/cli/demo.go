package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/solid/internal/demo"
	"github.com/mesh-intelligence/solid/pkg/types"
)

type demoFlags struct {
	sets       []string
	principles []string
	variants   []string
}

func newDemoCmd(a *app) *cobra.Command {
	var f demoFlags
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the demonstrations",
		Long: `Demo runs the demonstration scenarios in a fixed order and writes one line
per demonstrated operation to stdout. Scenarios that exist to show an
unsupported operation print their error and still count as passing.

Without flags every configured set and principle runs.

Example:
  solid demo
  solid demo --set general
  solid demo --principle lsp --variant before
  solid demo --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd, f)
		},
	}
	cmd.Flags().StringSliceVar(&f.sets, "set", nil, "scenario set to run: general, site (repeatable)")
	cmd.Flags().StringSliceVar(&f.principles, "principle", nil, "principle to run: srp, ocp, lsp, isp, dip (repeatable)")
	cmd.Flags().StringSliceVar(&f.variants, "variant", nil, "variant to run: before, after (repeatable)")
	return cmd
}

func (a *app) runDemo(cmd *cobra.Command, f demoFlags) error {
	sel, err := a.selector(f)
	if err != nil {
		return userError(err)
	}

	scenarios := demo.Filter(demo.Catalog(), sel)
	a.log.Debug("demo.selected", "count", len(scenarios))

	report, runErr := demo.NewRunner(a.log).Run(cmd.Context(), scenarios)

	out := cmd.OutOrStdout()
	if a.cfg.JSON {
		err = report.WriteJSON(out)
	} else {
		err = report.WriteText(out)
	}
	if err != nil {
		return sysError(fmt.Errorf("write output: %w", err))
	}

	if runErr != nil {
		if errors.Is(runErr, demo.ErrScenarioMismatch) {
			return sysError(runErr)
		}
		return sysError(fmt.Errorf("run demo: %w", runErr))
	}
	return nil
}

// selector merges demo flags over the loaded config. Flags replace config
// values rather than adding to them.
func (a *app) selector(f demoFlags) (demo.Selector, error) {
	sel := demo.Selector{Sets: a.cfg.Sets, Principles: a.cfg.Principles}
	if len(f.sets) > 0 {
		sel.Sets = f.sets
	}
	if len(f.principles) > 0 {
		sel.Principles = f.principles
	}
	sel.Variants = f.variants

	check := types.Config{Sets: sel.Sets, Principles: sel.Principles}
	if err := check.Validate(); err != nil {
		return demo.Selector{}, err
	}
	for _, v := range sel.Variants {
		if !slices.Contains(types.AllVariants, v) {
			return demo.Selector{}, fmt.Errorf("%q: %w", v, types.ErrUnknownVariant)
		}
	}
	return sel, nil
}
