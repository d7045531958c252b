package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mwern/courtctl/internal/adapters/export"
	"github.com/mwern/courtctl/internal/validate"
)

func newExportCmd(app *app) *cobra.Command {
	var (
		from   string
		to     string
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Save the schedule for a date range to a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fileType, err := validate.FileType(format)
			if err != nil {
				return err
			}
			fromDate, toDate, err := resolveDateRange(app, from, to)
			if err != nil {
				return err
			}

			if err := app.booking.Load(cmd.Context()); err != nil {
				return err
			}
			reservations := app.schedule.Export(fromDate, toDate)

			file, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer func() { _ = file.Close() }()

			switch fileType {
			case "csv":
				err = export.WriteCSV(file, reservations)
			case "json":
				err = export.WriteJSON(file, reservations)
			}
			if err != nil {
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("close export file: %w", err)
			}
			log.Debug().Str("file", out).Int("reservations", len(reservations)).Msg("schedule exported")

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s saved successfully!\n", out)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", `first day as "DD.MM.YYYY" (default today)`)
	cmd.Flags().StringVar(&to, "to", "", `last day as "DD.MM.YYYY" (default a week from the first day)`)
	cmd.Flags().StringVar(&format, "format", "csv", "file type: json or csv")
	cmd.Flags().StringVar(&out, "out", "", "output file path")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
