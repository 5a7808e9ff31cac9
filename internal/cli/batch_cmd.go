package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/prazo/internal/cli/formatter"
	"github.com/alexanderramin/prazo/internal/importer"
	"github.com/spf13/cobra"
)

func newBatchCmd(app *App) *cobra.Command {
	var (
		save   bool
		format outputFormat
	)

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Compute deadlines for every filing in a YAML/JSON file",
		Long: `Compute deadlines for every filing listed in FILE.

A failing filing does not stop the others; the command exits with an
error after printing all results if any filing failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadBatchSchema(args[0])
			if err != nil {
				return err
			}
			if errs := importer.ValidateBatchSchema(schema); len(errs) > 0 {
				return fmt.Errorf("invalid batch file %s:\n%w", args[0], errors.Join(errs...))
			}
			reqs, err := importer.Convert(schema)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("save") {
				for i := range reqs {
					reqs[i].Save = save
				}
			}

			results, err := app.Deadlines.ComputeBatch(cmd.Context(), reqs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case formatJSON:
				err = formatter.WriteJSON(out, formatter.BatchJSON(results))
			case formatCSV:
				err = formatter.WriteBatchCSV(out, results)
			default:
				fmt.Fprint(out, formatter.FormatBatch(results))
			}
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d filings failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Archive every run (overrides the file)")
	addFormatFlag(cmd.Flags(), &format)

	return cmd
}
