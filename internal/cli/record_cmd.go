package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/sunghoyun/vulnview/internal/cli/formatter"
	"github.com/sunghoyun/vulnview/internal/domain"
)

func newDiagCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "diag",
		Short: "Start a new diagnosis run",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.Records.CreateDiagnosis(context.Background(), time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.KindBadge(domain.KindDiagnosis), d.Title)
			return nil
		},
	}
}

func newActionCmd(app *App) *cobra.Command {
	var date string
	var diagSeq int

	cmd := &cobra.Command{
		Use:   "action",
		Short: "Run a remediation action under a diagnosis",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			d, err := findDiagnosis(ctx, app, date, diagSeq)
			if err != nil {
				return err
			}
			a, err := app.Records.CreateAction(ctx, d.ID, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.KindBadge(domain.KindAction), a.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date of the parent diagnosis (default: today)")
	cmd.Flags().IntVar(&diagSeq, "diag", 0, "Sequence number of the parent diagnosis")
	_ = cmd.MarkFlagRequired("diag")

	return cmd
}

// findDiagnosis resolves a diagnosis by date and per-date sequence number.
// An empty date means today.
func findDiagnosis(ctx context.Context, app *App, date string, seq int) (*domain.DiagnosisRecord, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	diags, err := app.Records.ListDiagnosesByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	for _, d := range diags {
		if d.Seq == seq {
			return d, nil
		}
	}
	return nil, fmt.Errorf("no diagnosis #%d on %s", seq, date)
}
