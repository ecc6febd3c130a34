// Package report exports the upcoming-leave list as a PDF.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"leavedesk/internal/domain/leave"
)

// WriteUpcomingPDF renders the upcoming-leave events into a one page A4
// summary and writes it under dir. Events are rendered in the order given;
// callers pass the already-sorted upcoming list.
func WriteUpcomingPDF(dir, userName string, events []leave.DisplayEvent, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, "upcoming-leave-"+now.Format("2006-01-02")+".pdf")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Upcoming Leave")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", userName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", now.Format("2 January 2006")))
	pdf.Ln(10)

	if len(events) == 0 {
		pdf.Cell(0, 8, "No upcoming leave scheduled.")
		if err := pdf.OutputFileAndClose(filePath); err != nil {
			return "", err
		}
		return filePath, nil
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 8, "Start", "1", 0, "", false, 0, "")
	pdf.CellFormat(55, 8, "End", "1", 0, "", false, 0, "")
	pdf.CellFormat(25, 8, "Days", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, "Type", "1", 0, "", false, 0, "")
	pdf.CellFormat(25, 8, "Status", "1", 1, "", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, ev := range events {
		// The display end is exclusive; show the last day actually taken.
		endISO, err := leave.InclusiveEnd(ev.End)
		if err != nil {
			endISO = ev.Start
		}
		pdf.CellFormat(55, 8, leave.FormatDisplay(ev.Start), "1", 0, "", false, 0, "")
		pdf.CellFormat(55, 8, leave.FormatDisplay(endISO), "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", ev.Duration), "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 8, string(ev.Type), "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 8, string(ev.Status), "1", 1, "", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
