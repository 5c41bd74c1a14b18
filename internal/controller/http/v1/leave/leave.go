package leave

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/repository/postgres/leave"
)

type Controller struct {
	leave Leave
}

func NewController(leave Leave) *Controller {
	return &Controller{leave}
}

// Request files a new leave request for the signed-in employee.
func (uc Controller) Request(c *web.Context) error {
	var request leave.CreateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.leave.Request(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) GetSelfList(c *web.Context) error {
	var filter leave.SelfFilter

	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, err := uc.leave.GetSelfList(c.Ctx, filter)
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

func (uc Controller) OwnerUpdate(c *web.Context) error {
	var request leave.UpdateRequest
	if err := c.BindFunc(&request, "ID"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.leave.OwnerUpdate(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

// OwnerCancel removes the caller's own pending request. The id arrives as a
// query parameter.
func (uc Controller) OwnerCancel(c *web.Context) error {
	idStr := c.Query("id")
	if idStr == "" {
		return c.RespondError(web.NewRequestError(errors.New("id parameter is required"), http.StatusBadRequest))
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid id format"), http.StatusBadRequest))
	}

	if err = uc.leave.OwnerCancel(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"success": true,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetList(c *web.Context) error {
	var filter leave.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}
	if employeeId, ok := c.GetQueryFunc(reflect.Int, "employee_id").(*int); ok {
		filter.EmployeeID = employeeId
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.leave.GetList(c.Ctx, filter)
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

// AdminDecide approves or rejects a request.
func (uc Controller) AdminDecide(c *web.Context) error {
	var request leave.DecideRequest
	if err := c.BindFunc(&request, "ID", "Status"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.leave.AdminDecide(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) AdminCreate(c *web.Context) error {
	var request leave.AdminCreateRequest
	if err := c.BindFunc(&request, "EmployeeID"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.leave.AdminCreate(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}
