package employee

import (
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/repository/postgres/employee"
	"hrm/backend/internal/service"
)

type Controller struct {
	employee Employee
}

func NewController(employee Employee) *Controller {
	return &Controller{employee}
}

func (uc Controller) GetList(c *web.Context) error {
	var filter employee.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.employee.GetList(c.Ctx, filter)
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

func (uc Controller) Create(c *web.Context) error {
	var request employee.CreateRequest
	if err := c.BindFunc(&request, "Email", "Password", "FirstName", "LastName", "HireDate"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.employee.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request employee.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	if err := uc.employee.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

// GetProfile returns the signed-in employee's own profile.
func (uc Controller) GetProfile(c *web.Context) error {
	response, err := uc.employee.GetProfile(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Export(c *web.Context) error {
	var filter employee.Filter

	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, _, err := uc.employee.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	fileName := filepath.Join(os.TempDir(), "employees-export.xlsx")
	if err = service.ExportEmployees(list, fileName); err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusInternalServerError))
	}

	return c.RespondFile(fileName, "employees.xlsx")
}

// Badge renders the employee's QR badge as a PNG download.
func (uc Controller) Badge(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.employee.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	firstName, lastName := "", ""
	if detail.FirstName != nil {
		firstName = *detail.FirstName
	}
	if detail.LastName != nil {
		lastName = *detail.LastName
	}

	fileName := filepath.Join(os.TempDir(), "badge-"+strconv.Itoa(id)+".png")
	if err = service.EmployeeBadge(id, firstName, lastName, fileName); err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusInternalServerError))
	}

	return c.RespondFile(fileName, "badge-"+strconv.Itoa(id)+".png")
}
