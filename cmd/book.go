package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mwern/courtctl/internal/domain"
	"github.com/mwern/courtctl/internal/validate"
)

func newBookCmd(app *app) *cobra.Command {
	var (
		name    string
		at      string
		minutes int
		yes     bool
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Make a reservation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			subject, err := validate.Name(name)
			if err != nil {
				return err
			}
			start, err := validate.DateTime(at)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := app.booking.Load(ctx); err != nil {
				return err
			}

			plan, err := app.booking.PlanBooking(subject, start)
			if err != nil {
				return err
			}
			if plan.RequiresConfirmation && !yes {
				return fmt.Errorf("%s is taken, next opening is %s (rerun with --yes to accept it): %w",
					plan.RequestedStart.Format(validate.DateTimeLayout),
					plan.Start.Format(validate.DateTimeLayout),
					domain.ErrSlotUnavailable)
			}

			reservation, err := app.booking.Book(ctx, subject, plan.Start, time.Duration(minutes)*time.Minute)
			if err != nil {
				return err
			}
			log.Debug().
				Str("subject", reservation.Subject).
				Time("start", reservation.Start).
				Msg("reservation stored")

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Reserved for %s: %s - %s\n",
				reservation.Subject,
				reservation.Start.Format(validate.DateTimeLayout),
				reservation.End.Format("15:04"))
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "who the reservation is for")
	cmd.Flags().StringVar(&at, "at", "", `start as "DD.MM.YYYY HH:MM"`)
	cmd.Flags().IntVar(&minutes, "minutes", 30, "period length in minutes: 30, 60 or 90")
	cmd.Flags().BoolVar(&yes, "yes", false, "accept the next available slot when the requested one is taken")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}
