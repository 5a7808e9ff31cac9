package cli

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/alexanderramin/prazo/internal/cli/formatter"
	"github.com/alexanderramin/prazo/internal/contract"
	"github.com/alexanderramin/prazo/internal/domain"
	"github.com/spf13/cobra"
)

func newMilestoneCmd(app *App) *cobra.Command {
	var (
		deadline domain.Date
		days     int
		format   outputFormat
	)

	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Find the latest date that is N working days before a deadline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Deadlines.Milestone(cmd.Context(), contract.MilestoneRequest{Terminal: deadline, Days: days})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case formatJSON:
				return formatter.WriteJSON(out, resp)
			case formatCSV:
				cw := csv.NewWriter(out)
				_ = cw.Write([]string{"terminal", "days", "milestone"})
				_ = cw.Write([]string{resp.Terminal.String(), strconv.Itoa(resp.Days), resp.Milestone.String()})
				cw.Flush()
				return cw.Error()
			}
			fmt.Fprint(out, formatter.FormatMilestone(resp))
			return nil
		},
	}

	cmd.Flags().Var(newDateValue(&deadline), "deadline", "Terminal date (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&days, "days", "n", 0, "Working days before the deadline")
	addFormatFlag(cmd.Flags(), &format)
	_ = cmd.MarkFlagRequired("deadline")
	_ = cmd.MarkFlagRequired("days")

	return cmd
}
