package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sunghoyun/vulnview/internal/cli/formatter"
)

func newChecksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "checks",
		Short: "List vulnerability check items",
		RunE: func(cmd *cobra.Command, args []string) error {
			checks, err := app.Checks.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatChecks(checks))
			return nil
		},
	}
}
