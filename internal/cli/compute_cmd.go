package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/prazo/internal/cli/formatter"
	"github.com/alexanderramin/prazo/internal/contract"
	"github.com/alexanderramin/prazo/internal/domain"
	"github.com/alexanderramin/prazo/internal/scenario"
	"github.com/spf13/cobra"
)

func newComputeCmd(app *App) *cobra.Command {
	var (
		filing       domain.Date
		scenarioName string
		scenarioFile string
		overrides    []string
		ledger       bool
		save         bool
		label        string
		format       outputFormat
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the decision deadline for a filing",
		Example: `  prazo compute --filing 2025-06-06 --scenario general
  prazo compute --filing 2025-06-06 --scenario industrial --override additional_elements=60 --ledger`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewComputeRequest(filing, scenarioName)
			req.Ref = label
			req.Ledger = ledger
			req.Save = save

			parsed, err := scenario.ParseOverrides(overrides)
			if err != nil {
				return err
			}
			if len(parsed) > 0 {
				req.Overrides = parsed
			}

			if scenarioFile != "" {
				sc, err := loadScenarioFile(scenarioFile)
				if err != nil {
					return err
				}
				req.Scenario = &sc
			}

			resp, err := app.Deadlines.Compute(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeSchedule(cmd.OutOrStdout(), format, resp)
		},
	}

	cmd.Flags().Var(newDateValue(&filing), "filing", "Filing date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "general", "Scenario name")
	cmd.Flags().StringVar(&scenarioFile, "scenario-file", "", "Use the scenario defined in this YAML/JSON file")
	cmd.Flags().StringArrayVar(&overrides, "override", nil, "Phase duration override key=days (repeatable)")
	cmd.Flags().BoolVar(&ledger, "ledger", false, "Include the day-by-day ledger (csv output lists days instead of phases)")
	cmd.Flags().BoolVar(&save, "save", false, "Archive the run")
	cmd.Flags().StringVar(&label, "label", "", "Label stored with an archived run")
	addFormatFlag(cmd.Flags(), &format)
	_ = cmd.MarkFlagRequired("filing")
	cmd.MarkFlagsMutuallyExclusive("scenario", "scenario-file")

	return cmd
}

func loadScenarioFile(path string) (domain.Scenario, error) {
	schema, err := scenario.LoadFile(path)
	if err != nil {
		return domain.Scenario{}, err
	}
	sc, err := scenario.Convert(schema)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return sc, nil
}

func writeSchedule(w io.Writer, format outputFormat, resp *contract.ComputeResponse) error {
	switch format {
	case formatJSON:
		return formatter.WriteJSON(w, formatter.RunJSON{ScheduleRun: resp.Run, Ledger: resp.Ledger})
	case formatCSV:
		if len(resp.Ledger) > 0 {
			return formatter.WriteLedgerCSV(w, resp.Ledger)
		}
		return formatter.WriteRecordsCSV(w, resp.Run.Records)
	}

	fmt.Fprint(w, formatter.FormatSchedule(resp))
	if resp.Saved {
		fmt.Fprintln(w, formatter.Dim("Saved as run "+resp.Run.ID))
	}
	return nil
}
