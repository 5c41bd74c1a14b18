package service

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// EmployeeBadge writes a QR badge PNG for the employee. Scanning it yields
// the employee reference used by front-desk tooling.
func EmployeeBadge(employeeID int, firstName, lastName, fileName string) error {
	content := fmt.Sprintf("employee:%d|%s %s", employeeID, firstName, lastName)
	return qrcode.WriteFile(content, qrcode.Medium, 256, fileName)
}
