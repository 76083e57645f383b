// Package render formats shelf listings for human output.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/NielsdaWheelz/shelf/internal/shelf"
)

// Constants for human output formatting.
const (
	// NameColumnWidth is the minimum width of the name column.
	// Longer names are printed in full and push the rest of the line right.
	NameColumnWidth = 30

	// AgeColumnWidth is the width of the age-in-minutes column.
	AgeColumnWidth = 6

	// SizeColumnWidth is the width of the size-in-bytes column.
	SizeColumnWidth = 10
)

// ShelfRow holds the fields for a single listing entry.
// This is separate from shelf.Record to allow formatting before display.
type ShelfRow struct {
	Name       string
	AgeMinutes int
	SizeBytes  int64
	Message    string
}

// FormatShelfRow converts a Record to a ShelfRow for display.
// The name is shown without the patch suffix and the message is cut to its
// first line.
func FormatShelfRow(rec shelf.Record, now time.Time) ShelfRow {
	return ShelfRow{
		Name:       shelf.BareName(rec.Name),
		AgeMinutes: shelf.AgeMinutes(rec.ModifiedAt, now),
		SizeBytes:  rec.SizeBytes,
		Message:    shelf.DisplayMessage(rec.Message),
	}
}

// WriteShelfRow writes the two-line listing entry for row:
//
//	<name>                          <age> mins old <size> bytes
//	 <message>
func WriteShelfRow(w io.Writer, row ShelfRow) error {
	if _, err := fmt.Fprintf(w, "%-*s %*d mins old %*d bytes\n",
		NameColumnWidth, row.Name,
		AgeColumnWidth, row.AgeMinutes,
		SizeColumnWidth, row.SizeBytes,
	); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, " %s\n", row.Message)
	return err
}
