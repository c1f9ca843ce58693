package cli

import (
	"fmt"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/solid/internal/demo"
)

// scenarioInfo is the listing form of a scenario.
type scenarioInfo struct {
	ID        string `json:"id"`
	Set       string `json:"set"`
	Principle string `json:"principle"`
	Variant   string `json:"variant"`
	Name      string `json:"name"`
	ExpectErr bool   `json:"expect_error"`
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the demonstration scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd)
		},
	}
}

func (a *app) runList(cmd *cobra.Command) error {
	scenarios := demo.Catalog()
	out := cmd.OutOrStdout()

	if a.cfg.JSON {
		infos := make([]scenarioInfo, 0, len(scenarios))
		for _, sc := range scenarios {
			infos = append(infos, scenarioInfo{
				ID: sc.ID, Set: sc.Set, Principle: sc.Principle,
				Variant: sc.Variant, Name: sc.Name, ExpectErr: sc.ExpectErr,
			})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(infos); err != nil {
			return sysError(fmt.Errorf("encode scenarios: %w", err))
		}
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, sc := range scenarios {
		mark := ""
		if sc.ExpectErr {
			mark = "(fails)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", sc.ID, sc.Name, mark)
	}
	if err := tw.Flush(); err != nil {
		return sysError(fmt.Errorf("write scenarios: %w", err))
	}
	return nil
}
