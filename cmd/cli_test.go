package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fixture pins the toml store driver so the end-to-end tests run
// against a file store inside the temp home.
func writeConfigFixture(t *testing.T, home string) {
	t.Helper()

	dir := filepath.Join(home, ".courtctl")
	require.NoError(t, os.MkdirAll(dir, 0o700))

	config := fmt.Sprintf("[store]\ndriver = %q\npath = %q\n",
		"toml", filepath.Join(dir, "reservations.toml"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(config), 0o600))
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	return executeCLIWithInput(t, home, "", args...)
}

func executeCLIWithInput(t *testing.T, home, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", stdout)
}

func TestBookRequiresNameAndStartFlags(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)

	_, _, err := executeCLI(t, home, "book")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s)")
}

func TestBookRejectsMalformedStart(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)

	_, _, err := executeCLI(t, home, "book", "--name", "John", "--at", "2030-05-06 10:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected format")
}

func TestBookThenScheduleThenCancel(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)

	stdout, _, err := executeCLI(t, home, "book", "--name", "John", "--at", "06.05.2030 10:00")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Reserved for John: 06.05.2030 10:00 - 10:30")

	stdout, _, err = executeCLI(t, home, "schedule", "--from", "06.05.2030", "--to", "06.05.2030")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Monday, 06 May, 2030")
	assert.Contains(t, stdout, "* John 10:00 - 10:30")

	stdout, _, err = executeCLI(t, home, "cancel", "--name", "John", "--at", "06.05.2030 10:00")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Cancelled reservation for John at 06.05.2030 10:00")

	stdout, _, err = executeCLI(t, home, "schedule", "--from", "06.05.2030", "--to", "06.05.2030")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No reservations")
}

func TestCancelMissingReservation(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)

	_, _, err := executeCLI(t, home, "cancel", "--name", "John", "--at", "06.05.2030 10:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reservation not found")
}

func TestBookEnforcesWeeklyQuota(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)

	_, _, err := executeCLI(t, home, "book", "--name", "John", "--at", "06.05.2030 10:00")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "book", "--name", "John", "--at", "07.05.2030 10:00")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "book", "--name", "John", "--at", "08.05.2030 10:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weekly reservation quota reached")

	// The following week is open again.
	_, _, err = executeCLI(t, home, "book", "--name", "John", "--at", "13.05.2030 10:00")
	require.NoError(t, err)
}

func TestBookOccupiedSlotNeedsExplicitAccept(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)

	_, _, err := executeCLI(t, home, "book", "--name", "John", "--at", "06.05.2030 10:00", "--minutes", "60")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "book", "--name", "Kate", "--at", "06.05.2030 10:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "next opening is 06.05.2030 11:00")

	stdout, _, err := executeCLI(t, home, "book", "--name", "Kate", "--at", "06.05.2030 10:00", "--yes")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Reserved for Kate: 06.05.2030 11:00 - 11:30")
}

func TestBookRejectsPeriodCollidingWithNextReservation(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)

	_, _, err := executeCLI(t, home, "book", "--name", "John", "--at", "06.05.2030 11:00")
	require.NoError(t, err)

	// The hour before is free but only 60 minutes fit; 90 collide.
	_, _, err = executeCLI(t, home, "book", "--name", "Kate", "--at", "06.05.2030 10:00", "--minutes", "90")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "period is not available")
}

func TestExportWritesCSVAndJSON(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)

	_, _, err := executeCLI(t, home, "book", "--name", "John", "--at", "06.05.2030 10:00")
	require.NoError(t, err)

	csvPath := filepath.Join(home, "schedule.csv")
	stdout, _, err := executeCLI(t, home, "export",
		"--from", "06.05.2030", "--to", "06.05.2030",
		"--format", "csv", "--out", csvPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "saved successfully!")

	csvData, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, "name,start_date,end_date\nJohn,06.05.2030 10:00,06.05.2030 10:30\n", string(csvData))

	jsonPath := filepath.Join(home, "schedule.json")
	_, _, err = executeCLI(t, home, "export",
		"--from", "06.05.2030", "--to", "06.05.2030",
		"--format", "json", "--out", jsonPath)
	require.NoError(t, err)

	jsonData, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), "\"06.05.2030\"")
	assert.Contains(t, string(jsonData), "\"name\": \"John\"")
	assert.Contains(t, string(jsonData), "\"start_time\": \"10:00\"")
	assert.Contains(t, string(jsonData), "\"end_time\": \"10:30\"")
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)

	_, _, err := executeCLI(t, home, "export", "--format", "xml", "--out", filepath.Join(home, "schedule.xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestBareInvocationRunsMenu(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)

	stdout, _, err := executeCLIWithInput(t, home, "5\n")
	require.NoError(t, err)
	assert.Contains(t, stdout, "What do you want to do:")
}

func TestMenuExitImmediately(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)

	stdout, _, err := executeCLIWithInput(t, home, "5\n", "menu")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1. Make a reservation")
	assert.Contains(t, stdout, "5. Exit")
}

func TestMenuBookFlow(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)

	input := strings.Join([]string{
		"1",                // make a reservation
		"John",             // name
		"06.05.2030 10:00", // start
		"30",               // period in minutes
		"5",                // exit
	}, "\n") + "\n"

	stdout, _, err := executeCLIWithInput(t, home, input, "menu")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Available periods:")
	assert.Contains(t, stdout, "1) 30 Minutes")
	assert.Contains(t, stdout, "Reservation successfully made!")

	stdout, _, err = executeCLI(t, home, "schedule", "--from", "06.05.2030", "--to", "06.05.2030")
	require.NoError(t, err)
	assert.Contains(t, stdout, "* John 10:00 - 10:30")
}

func TestMenuInvalidChoiceKeepsLooping(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)

	stdout, _, err := executeCLIWithInput(t, home, "9\n5\n", "menu")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Invalid choice.")
}

func TestMenuCancelReportsMissingReservation(t *testing.T) {
	home := t.TempDir()
	writeConfigFixture(t, home)

	input := strings.Join([]string{
		"2",
		"John",
		"06.05.2030 10:00",
		"5",
	}, "\n") + "\n"

	stdout, _, err := executeCLIWithInput(t, home, input, "menu")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No reservation found for the given name and date.")
}
