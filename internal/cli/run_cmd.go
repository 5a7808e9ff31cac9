package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/prazo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// resolveRunID accepts a full run ID or a unique prefix of one.
func resolveRunID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("run ID is required")
	}

	runs, err := app.Runs.List(ctx, 0)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, r := range runs {
		if r.ID == input {
			return r.ID, nil
		}
		if strings.HasPrefix(r.ID, strings.ToLower(input)) {
			matches = append(matches, r.ID)
		}
	}

	switch len(matches) {
	case 0:
		// Let the service report the miss with its own error code.
		return input, nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("run ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newRunCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Aliases: []string{"runs"},
		Short:   "Manage archived runs",
	}

	cmd.AddCommand(
		newRunListCmd(app),
		newRunShowCmd(app),
		newRunRemoveCmd(app),
	)

	return cmd
}

func newRunListCmd(app *App) *cobra.Command {
	var (
		limit  int
		format outputFormat
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := app.Runs.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			switch format {
			case formatJSON:
				return formatter.WriteJSON(cmd.OutOrStdout(), runs)
			case formatCSV:
				return errCSVUnsupported
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRunList(runs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to show (0 for all)")
	addFormatFlag(cmd.Flags(), &format)

	return cmd
}

func newRunShowCmd(app *App) *cobra.Command {
	var format outputFormat

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveRunID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			run, err := app.Runs.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case formatJSON:
				return formatter.WriteJSON(out, run)
			case formatCSV:
				return formatter.WriteRecordsCSV(out, run.Records)
			}
			fmt.Fprint(out, formatter.FormatArchivedRun(run))
			return nil
		},
	}
	addFormatFlag(cmd.Flags(), &format)

	return cmd
}

func newRunRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete an archived run",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveRunID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Runs.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", id)
			return nil
		},
	}

	return cmd
}
