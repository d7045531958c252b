package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mwern/courtctl/internal/adapters/export"
	renderschedule "github.com/mwern/courtctl/internal/adapters/render/schedule"
	"github.com/mwern/courtctl/internal/domain"
	"github.com/mwern/courtctl/internal/validate"
)

type menuOption struct {
	number  int
	title   string
	handler func(ctx context.Context) error
}

// menuUI drives the interactive numbered-menu session. Business rules
// live in the services; the UI only prompts, confirms and prints.
type menuUI struct {
	app *app
	in  *bufio.Scanner
	out io.Writer
}

func newMenuCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive reservation menu",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, app)
		},
	}
}

func runMenu(cmd *cobra.Command, app *app) error {
	ui := &menuUI{
		app: app,
		in:  bufio.NewScanner(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}
	return ui.run(cmd.Context())
}

func (ui *menuUI) run(ctx context.Context) error {
	if err := ui.app.booking.Load(ctx); err != nil {
		return err
	}

	options := []menuOption{
		{number: 1, title: "Make a reservation", handler: ui.handleBook},
		{number: 2, title: "Cancel a reservation", handler: ui.handleCancel},
		{number: 3, title: "Print schedule", handler: ui.handleSchedule},
		{number: 4, title: "Save schedule to a file", handler: ui.handleExport},
	}
	exitChoice := len(options) + 1

	for {
		fmt.Fprintln(ui.out, "\nWhat do you want to do:")
		fmt.Fprintln(ui.out)
		for _, option := range options {
			fmt.Fprintf(ui.out, "%d. %s\n", option.number, option.title)
		}
		fmt.Fprintf(ui.out, "%d. Exit\n", exitChoice)

		raw, ok := ui.prompt(fmt.Sprintf("Enter your choice (1-%d):", exitChoice))
		if !ok {
			return nil
		}

		choice, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || choice < 1 || choice > exitChoice {
			fmt.Fprintln(ui.out, "Invalid choice.")
			continue
		}
		if choice == exitChoice {
			return nil
		}

		if err := options[choice-1].handler(ctx); err != nil {
			ui.report(err)
		}
	}
}

func (ui *menuUI) handleBook(ctx context.Context) error {
	raw, ok := ui.prompt("What's your name?")
	if !ok {
		return nil
	}
	subject, err := validate.Name(raw)
	if err != nil {
		return err
	}

	raw, ok = ui.prompt("Enter the date and time for which you would like to make a reservation {DD.MM.YYYY HH:MM}")
	if !ok {
		return nil
	}
	start, err := validate.DateTime(raw)
	if err != nil {
		return err
	}

	plan, err := ui.app.booking.PlanBooking(subject, start)
	if err != nil {
		return err
	}

	if plan.RequiresConfirmation {
		answer, ok := ui.prompt(fmt.Sprintf(
			"The time you chose is unavailable. Would you like to make a reservation for %s instead? (yes/no)",
			plan.Start.Format(validate.DateTimeLayout)))
		if !ok {
			return nil
		}
		if !strings.EqualFold(strings.TrimSpace(answer), "yes") {
			return nil
		}
	}

	if len(plan.Periods) == 0 {
		fmt.Fprintln(ui.out, "No periods are available at that time.")
		return nil
	}

	fmt.Fprintln(ui.out, "\nHow long would you like to book the court?")
	fmt.Fprintln(ui.out, "Available periods:")
	for i, period := range plan.Periods {
		fmt.Fprintf(ui.out, "%d) %d Minutes\n", i+1, int(period.Minutes()))
	}

	raw, ok = ui.prompt("")
	if !ok {
		return nil
	}
	period, err := validate.Period(raw, plan.Periods)
	if err != nil {
		return err
	}

	if _, err := ui.app.booking.Book(ctx, subject, plan.Start, period); err != nil {
		return err
	}

	fmt.Fprintln(ui.out, "Reservation successfully made!")
	return nil
}

func (ui *menuUI) handleCancel(ctx context.Context) error {
	raw, ok := ui.prompt("What's your name?")
	if !ok {
		return nil
	}
	subject, err := validate.Name(raw)
	if err != nil {
		return err
	}

	raw, ok = ui.prompt("Enter the date and time for which you would like to cancel a reservation {DD.MM.YYYY HH:MM}")
	if !ok {
		return nil
	}
	start, err := validate.DateTime(raw)
	if err != nil {
		return err
	}

	if err := ui.app.booking.Cancel(ctx, subject, start); err != nil {
		return err
	}

	fmt.Fprintln(ui.out, "Reservation successfully cancelled!")
	return nil
}

func (ui *menuUI) handleSchedule(_ context.Context) error {
	from, to, ok, err := ui.promptDateRange()
	if err != nil || !ok {
		return err
	}

	days := ui.app.schedule.Days(from, to)
	fmt.Fprintln(ui.out, renderschedule.Render(days))
	return nil
}

func (ui *menuUI) handleExport(_ context.Context) error {
	from, to, ok, err := ui.promptDateRange()
	if err != nil || !ok {
		return err
	}

	raw, ok := ui.prompt("Please enter type of the file (json/csv)")
	if !ok {
		return nil
	}
	fileType, err := validate.FileType(raw)
	if err != nil {
		return err
	}

	raw, ok = ui.prompt("What's the name of your file?")
	if !ok {
		return nil
	}
	fileName, err := validate.Name(raw)
	if err != nil {
		return err
	}

	reservations := ui.app.schedule.Export(from, to)

	file, err := os.Create(fileName)
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

	fmt.Fprintf(ui.out, "\n%s saved successfully!\n", fileName)
	return nil
}

func (ui *menuUI) promptDateRange() (from, to time.Time, ok bool, err error) {
	raw, ok := ui.prompt("Please enter the start date {DD.MM.YYYY}")
	if !ok {
		return time.Time{}, time.Time{}, false, nil
	}
	from, err = validate.Date(raw)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}

	raw, ok = ui.prompt("Please enter the end date {DD.MM.YYYY}")
	if !ok {
		return time.Time{}, time.Time{}, false, nil
	}
	to, err = validate.Date(raw)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, false, fmt.Errorf("end date %s is before start date %s",
			to.Format(validate.DateLayout), from.Format(validate.DateLayout))
	}

	return from, to, true, nil
}

func (ui *menuUI) prompt(question string) (string, bool) {
	if question != "" {
		fmt.Fprintf(ui.out, "\n%s\n\n$ ", question)
	} else {
		fmt.Fprint(ui.out, "\n$ ")
	}

	if !ui.in.Scan() {
		return "", false
	}
	return ui.in.Text(), true
}

// report translates errors into the prompts' own vocabulary. Unexpected
// failures, persistence ones included, are logged and shown verbatim.
func (ui *menuUI) report(err error) {
	switch {
	case errors.Is(err, validate.ErrEmptyName):
		fmt.Fprintln(ui.out, "Invalid name.")
	case errors.Is(err, validate.ErrFormat):
		fmt.Fprintln(ui.out, "Invalid date format.")
	case errors.Is(err, validate.ErrCalendar):
		fmt.Fprintln(ui.out, "Chosen date and time do not exist in Gregorian calendar.")
	case errors.Is(err, validate.ErrPeriodChoice):
		fmt.Fprintln(ui.out, "Chosen period not available.")
	case errors.Is(err, validate.ErrFileType):
		fmt.Fprintln(ui.out, "Invalid file format.")
	case errors.Is(err, domain.ErrLeadTimeViolated):
		fmt.Fprintln(ui.out, "Your reservation must be made at least one hour in advance.")
	case errors.Is(err, domain.ErrWeeklyQuotaReached):
		fmt.Fprintln(ui.out, "Sorry, you have reached the reservation limit for this week (2).")
	case errors.Is(err, domain.ErrReservationNotFound):
		fmt.Fprintln(ui.out, "No reservation found for the given name and date.")
	case errors.Is(err, domain.ErrPeriodUnavailable):
		fmt.Fprintln(ui.out, "Chosen period not available.")
	default:
		log.Error().Err(err).Msg("menu action failed")
		fmt.Fprintln(ui.out, err.Error())
	}
}
