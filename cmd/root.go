package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "courtctl",
		Short:         "courtctl: manage court reservations from the terminal",
		Long:          "courtctl manages time-slot bookings for a single shared court: make and cancel reservations, print the schedule, and export it to csv or json.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	// A bare invocation drops into the interactive menu.
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runMenu(cmd, app)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newBookCmd(app),
		newCancelCmd(app),
		newScheduleCmd(app),
		newExportCmd(app),
		newMenuCmd(app),
	)

	return rootCmd
}
