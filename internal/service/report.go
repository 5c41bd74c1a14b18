package service

import (
	"fmt"
	"time"

	"hrm/backend/internal/repository/postgres/attendance"

	"github.com/jung-kurt/gofpdf/v2"
)

// MonthlyAttendanceReport renders the per-employee present/absent summary for
// a month as a PDF table.
func MonthlyAttendanceReport(rows []attendance.ReportRow, month time.Time, fileName string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Attendance Report - %s", month.Format("January 2006")))
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(20, 8, "ID", "1", 0, "C", true, 0, "")
	pdf.CellFormat(80, 8, "Employee", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 8, "Present Days", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, "Absent Days", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		name := ""
		if row.FirstName != nil {
			name = *row.FirstName
		}
		if row.LastName != nil {
			name += " " + *row.LastName
		}

		pdf.CellFormat(20, 8, fmt.Sprintf("%d", row.EmployeeID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(80, 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%d", row.PresentDays), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%d", row.AbsentDays), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	return pdf.OutputFileAndClose(fileName)
}
