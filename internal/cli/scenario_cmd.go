package cli

import (
	"fmt"

	"github.com/alexanderramin/prazo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newScenarioCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scenario",
		Aliases: []string{"scenarios"},
		Short:   "Inspect procedure scenarios",
	}

	cmd.AddCommand(
		newScenarioListCmd(app),
		newScenarioShowCmd(app),
	)

	return cmd
}

func newScenarioListCmd(app *App) *cobra.Command {
	var format outputFormat

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := app.Scenarios.List(cmd.Context())
			if err != nil {
				return err
			}
			switch format {
			case formatJSON:
				return formatter.WriteJSON(cmd.OutOrStdout(), scenarios)
			case formatCSV:
				return errCSVUnsupported
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScenarioList(scenarios))
			return nil
		},
	}
	addFormatFlag(cmd.Flags(), &format)

	return cmd
}

func newScenarioShowCmd(app *App) *cobra.Command {
	var format outputFormat

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show a scenario and its phases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := app.Scenarios.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			switch format {
			case formatJSON:
				return formatter.WriteJSON(cmd.OutOrStdout(), sc)
			case formatCSV:
				return errCSVUnsupported
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScenario(sc))
			return nil
		},
	}
	addFormatFlag(cmd.Flags(), &format)

	return cmd
}
