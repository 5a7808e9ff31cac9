package cli

import (
	"github.com/alexanderramin/prazo/internal/cli/formatter"
	"github.com/alexanderramin/prazo/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Deadlines service.DeadlineService
	Runs      service.RunService
	Scenarios service.ScenarioService

	// IsTerminal reports whether stdout is a terminal. Nil means it is not,
	// so styling stays off unless --color=always.
	IsTerminal func() bool
}

// NewRootCmd creates the top-level "prazo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	color := colorAuto

	root := &cobra.Command{
		Use:           "prazo",
		Short:         "Statutory deadline calculator for environmental impact assessment procedures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			formatter.SetColor(color.enabled(app.IsTerminal))
		},
	}
	root.PersistentFlags().Var(&color, "color", "Styling: auto, always or never")

	root.AddCommand(
		newComputeCmd(app),
		newBatchCmd(app),
		newMilestoneCmd(app),
		newScenarioCmd(app),
		newHolidaysCmd(app),
		newDayCmd(app),
		newRunCmd(app),
	)

	return root
}
