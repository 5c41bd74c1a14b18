package attendance

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"reflect"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/repository/postgres/attendance"
	"hrm/backend/internal/service"

	"github.com/Azure/go-autorest/autorest/date"
)

type Controller struct {
	attendance Attendance
}

func NewController(attendance Attendance) *Controller {
	return &Controller{attendance}
}

// RecordAction handles the employee's own checkIn/checkOut button.
func (uc Controller) RecordAction(c *web.Context) error {
	var request attendance.ActionRequest
	if err := c.BindFunc(&request, "Action"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.RecordAction(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetSelfList(c *web.Context) error {
	var filter attendance.SelfFilter

	if startDate, ok := c.GetQueryFunc(reflect.String, "start_date").(*string); ok {
		filter.StartDate = startDate
	}
	if endDate, ok := c.GetQueryFunc(reflect.String, "end_date").(*string); ok {
		filter.EndDate = endDate
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, err := uc.attendance.GetSelfList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetList(c *web.Context) error {
	var filter attendance.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if employeeId, ok := c.GetQueryFunc(reflect.Int, "employee_id").(*int); ok {
		filter.EmployeeID = employeeId
	}
	if date, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		filter.Date = date
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.attendance.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

// UpsertAdmin creates or corrects the record for (employee_id, date).
func (uc Controller) UpsertAdmin(c *web.Context) error {
	var request attendance.UpsertRequest
	if err := c.BindFunc(&request, "EmployeeID", "Date"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.UpsertAdmin(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) Export(c *web.Context) error {
	var filter attendance.Filter

	if employeeId, ok := c.GetQueryFunc(reflect.Int, "employee_id").(*int); ok {
		filter.EmployeeID = employeeId
	}
	if date, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		filter.Date = date
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, _, err := uc.attendance.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	fileName := filepath.Join(os.TempDir(), "attendance-export.xlsx")
	if err = service.ExportAttendance(list, fileName); err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusInternalServerError))
	}

	return c.RespondFile(fileName, "attendance.xlsx")
}

func (uc Controller) Report(c *web.Context) error {
	monthStr := c.Query("month")
	if monthStr == "" {
		return c.RespondError(web.NewRequestError(errors.New("month parameter is required"), http.StatusBadRequest))
	}

	parsedMonth, err := date.ParseDate(monthStr)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid date format"), http.StatusBadRequest))
	}

	rows, err := uc.attendance.MonthlySummary(c.Ctx, parsedMonth.Time)
	if err != nil {
		return c.RespondError(err)
	}

	fileName := filepath.Join(os.TempDir(), "attendance-report.pdf")
	if err = service.MonthlyAttendanceReport(rows, parsedMonth.Time, fileName); err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusInternalServerError))
	}

	return c.RespondFile(fileName, "attendance-report-"+parsedMonth.Time.Format("2006-01")+".pdf")
}
