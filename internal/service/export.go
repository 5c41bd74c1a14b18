package service

import (
	"fmt"

	"hrm/backend/internal/repository/postgres/attendance"
	"hrm/backend/internal/repository/postgres/employee"

	"github.com/xuri/excelize/v2"
)

// ExportEmployees writes the roster to an xlsx file, one employee per row.
func ExportEmployees(list []employee.GetListResponse, fileName string) error {
	f := excelize.NewFile()
	sheet := "Employees"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Email", "First Name", "Last Name", "Position", "Department", "Location", "Manager", "Hire Date", "Active"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, entry := range list {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), deref(entry.Email))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), deref(entry.FirstName))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), deref(entry.LastName))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), deref(entry.Position))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), deref(entry.Department))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), deref(entry.Location))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), deref(entry.Manager))
		if entry.HireDate != nil {
			f.SetCellValue(sheet, fmt.Sprintf("I%d", rowNum), entry.HireDate.Format("2006-01-02"))
		}
		if entry.IsActive != nil {
			f.SetCellValue(sheet, fmt.Sprintf("J%d", rowNum), *entry.IsActive)
		}
		rowNum++
	}

	if err := f.SaveAs(fileName); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

// ExportAttendance writes attendance records to an xlsx file.
func ExportAttendance(list []attendance.GetListResponse, fileName string) error {
	f := excelize.NewFile()
	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Employee ID", "First Name", "Last Name", "Work Day", "Check In", "Check Out", "Status", "Notes"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, entry := range list {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.ID)
		if entry.EmployeeID != nil {
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), *entry.EmployeeID)
		}
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), deref(entry.FirstName))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), deref(entry.LastName))
		if entry.WorkDay != nil {
			f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), entry.WorkDay.Format("2006-01-02"))
		}
		if entry.CheckIn != nil {
			f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), entry.CheckIn.Format("15:04:05"))
		}
		if entry.CheckOut != nil {
			f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), entry.CheckOut.Format("15:04:05"))
		}
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), deref(entry.Status))
		f.SetCellValue(sheet, fmt.Sprintf("I%d", rowNum), deref(entry.Notes))
		rowNum++
	}

	if err := f.SaveAs(fileName); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
