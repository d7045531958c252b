package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mwern/courtctl/internal/validate"
)

func newCancelCmd(app *app) *cobra.Command {
	var (
		name string
		at   string
	)

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a reservation",
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

			if err := app.booking.Cancel(ctx, subject, start); err != nil {
				return err
			}
			log.Debug().Str("subject", subject).Time("start", start).Msg("reservation removed")

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Cancelled reservation for %s at %s\n",
				subject, start.Format(validate.DateTimeLayout))
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "who the reservation is for")
	cmd.Flags().StringVar(&at, "at", "", `start as "DD.MM.YYYY HH:MM"`)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}
