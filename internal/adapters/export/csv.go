// Package export encodes schedule slices into the supported file formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mwern/courtctl/internal/domain"
)

// TimestampLayout is the timestamp format used in the tabular export.
const TimestampLayout = "02.01.2006 15:04"

var csvHeader = []string{"name", "start_date", "end_date"}

// WriteCSV writes the flat tabular schedule: a header row followed by one
// row per reservation in the order given.
func WriteCSV(w io.Writer, reservations []domain.Reservation) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range reservations {
		record := []string{
			r.Subject,
			r.Start.Format(TimestampLayout),
			r.End.Format(TimestampLayout),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
