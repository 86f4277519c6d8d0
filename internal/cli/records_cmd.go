package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sunghoyun/vulnview/internal/cli/formatter"
	"github.com/sunghoyun/vulnview/internal/domain"
)

func newRecordsCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "records",
		Short: "Show the inspection record tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			groups, err := app.Records.ListDateGroups(ctx)
			if err != nil {
				return err
			}
			if date != "" {
				var filtered []*domain.DateGroup
				for _, g := range groups {
					if g.Date == date {
						filtered = append(filtered, g)
					}
				}
				groups = filtered
			}
			if len(groups) == 0 {
				fmt.Println("기록이 없습니다.")
				return nil
			}

			diagnoses := make(map[string][]*domain.DiagnosisRecord)
			actions := make(map[string][]*domain.ActionRecord)
			for _, g := range groups {
				diags, err := app.Records.ListDiagnosesByDate(ctx, g.Date)
				if err != nil {
					return err
				}
				diagnoses[g.Date] = diags
				for _, d := range diags {
					acts, err := app.Records.ListActionsByDiagnosis(ctx, d.ID)
					if err != nil {
						return err
					}
					actions[d.ID] = acts
				}
			}

			fmt.Print(formatter.RenderTree(formatter.BuildRecordTree(groups, diagnoses, actions)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Limit output to a single date (YYYY-MM-DD)")

	return cmd
}
