package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sunghoyun/vulnview/internal/domain"
)

func newReportCmd(app *App) *cobra.Command {
	var (
		date      string
		diagSeq   int
		actionSeq int
		out       string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render or export a record's report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			d, err := findDiagnosis(ctx, app, date, diagSeq)
			if err != nil {
				return err
			}

			sel := domain.DiagnosisSelection(d.ID)
			if actionSeq > 0 {
				actions, err := app.Records.ListActionsByDiagnosis(ctx, d.ID)
				if err != nil {
					return err
				}
				found := false
				for _, a := range actions {
					if a.Seq == actionSeq {
						sel = domain.ActionSelection(a.ID)
						found = true
						break
					}
				}
				if !found {
					return fmt.Errorf("no action #%d under %s", actionSeq, d.Name)
				}
			}

			p, err := app.Reports.BuildPayload(ctx, sel)
			if err != nil {
				return err
			}

			if out != "" {
				if err := app.Reports.Export(p, out); err != nil {
					return err
				}
				fmt.Printf("리포트를 저장했습니다. %s\n", out)
				return nil
			}
			fmt.Println(app.Reports.RenderText(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date of the diagnosis (default: today)")
	cmd.Flags().IntVar(&diagSeq, "diag", 0, "Sequence number of the diagnosis")
	cmd.Flags().IntVar(&actionSeq, "action", 0, "Action sequence number (0 = report on the diagnosis)")
	cmd.Flags().StringVar(&out, "out", "", "Write the report to this file instead of stdout")
	_ = cmd.MarkFlagRequired("diag")

	return cmd
}
