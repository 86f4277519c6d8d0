package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/sunghoyun/vulnview/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Records service.RecordService
	Checks  service.CheckService
	Reports service.ReportService

	// IsInteractive reports whether stdin is a terminal. The bare
	// "vulnview" invocation launches the TUI only when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "vulnview" command. A bare invocation
// launches the full-screen TUI; subcommands cover scripted use.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "vulnview",
		Short: "Server vulnerability inspection console",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("interactive terminal required for the TUI; see 'vulnview --help' for subcommands")
			}
			p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	root.AddCommand(
		newChecksCmd(app),
		newRecordsCmd(app),
		newDiagCmd(app),
		newActionCmd(app),
		newReportCmd(app),
	)

	return root
}
