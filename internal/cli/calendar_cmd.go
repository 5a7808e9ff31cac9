package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/prazo/internal/cli/formatter"
	"github.com/alexanderramin/prazo/internal/contract"
	"github.com/alexanderramin/prazo/internal/domain"
	"github.com/spf13/cobra"
)

func newHolidaysCmd(app *App) *cobra.Command {
	var (
		from, to int
		format   outputFormat
	)

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List the holidays the calendar uses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("from") {
				from = time.Now().Year()
			}
			if !cmd.Flags().Changed("to") {
				to = from
			}

			list, err := app.Deadlines.Holidays(cmd.Context(), from, to)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case formatJSON:
				return formatter.WriteJSON(out, list)
			case formatCSV:
				return formatter.WriteHolidaysCSV(out, list)
			}
			fmt.Fprint(out, formatter.FormatHolidays(list))
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "First year (default current year)")
	cmd.Flags().IntVar(&to, "to", 0, "Last year (default --from)")
	addFormatFlag(cmd.Flags(), &format)

	return cmd
}

func newDayCmd(app *App) *cobra.Command {
	var (
		to     domain.Date
		format outputFormat
	)

	cmd := &cobra.Command{
		Use:   "day DATE",
		Short: "Classify a day, or a range of days with --to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			req := contract.NewClassifyRequest(day)
			if !to.IsZero() {
				req.To = to
			}

			resp, err := app.Deadlines.Classify(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case formatJSON:
				return formatter.WriteJSON(out, resp)
			case formatCSV:
				return formatter.WriteDaysCSV(out, resp.Days)
			}
			fmt.Fprint(out, formatter.FormatDays(resp))
			return nil
		},
	}

	cmd.Flags().Var(newDateValue(&to), "to", "Last day of the range (YYYY-MM-DD)")
	addFormatFlag(cmd.Flags(), &format)

	return cmd
}
