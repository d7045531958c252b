package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	renderschedule "github.com/mwern/courtctl/internal/adapters/render/schedule"
	"github.com/mwern/courtctl/internal/domain"
	"github.com/mwern/courtctl/internal/validate"
)

func newScheduleCmd(app *app) *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the schedule for a date range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fromDate, toDate, err := resolveDateRange(app, from, to)
			if err != nil {
				return err
			}

			if err := app.booking.Load(cmd.Context()); err != nil {
				return err
			}

			days := app.schedule.Days(fromDate, toDate)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderschedule.Render(days))
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", `first day as "DD.MM.YYYY" (default today)`)
	cmd.Flags().StringVar(&to, "to", "", `last day as "DD.MM.YYYY" (default a week from the first day)`)

	return cmd
}

// resolveDateRange applies the flag defaults: from defaults to today, to
// defaults to six days past from, so the bare command prints one week.
func resolveDateRange(app *app, from, to string) (time.Time, time.Time, error) {
	fromDate := domain.DateOf(app.now())
	if from != "" {
		parsed, err := validate.Date(from)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		fromDate = parsed
	}

	toDate := fromDate.AddDate(0, 0, 6)
	if to != "" {
		parsed, err := validate.Date(to)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		toDate = parsed
	}

	if toDate.Before(fromDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s is before start date %s",
			toDate.Format(validate.DateLayout), fromDate.Format(validate.DateLayout))
	}

	return fromDate, toDate, nil
}
