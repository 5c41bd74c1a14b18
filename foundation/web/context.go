package web

import (
	"context"
	"mime/multipart"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type Context struct {
	gin     *gin.Context
	Ctx     context.Context
	Request *http.Request
	Writer  gin.ResponseWriter

	queryErrs []string
	paramErrs []string
}

// BindFunc binds the JSON (or form) body into obj and verifies the named
// struct fields are present. Field names are Go field names, not JSON keys.
func (c *Context) BindFunc(obj interface{}, requiredFields ...string) error {
	if err := c.gin.ShouldBind(obj); err != nil {
		return NewRequestError(errors.Wrap(err, "binding request"), http.StatusBadRequest)
	}

	if missing := missingFields(obj, requiredFields); len(missing) > 0 {
		return NewRequestError(
			errors.Errorf("required field(s) missing: %s", strings.Join(missing, ", ")),
			http.StatusBadRequest,
		)
	}

	return nil
}

// GetQueryFunc reads an optional query parameter as the requested kind. An
// absent parameter yields a typed nil pointer; a malformed one is recorded and
// reported by ValidQuery.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.gin.GetQuery(name)

	switch kind {
	case reflect.Int:
		if !ok || value == "" {
			return (*int)(nil)
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, name+" must be an integer")
			return (*int)(nil)
		}
		return &v
	case reflect.Bool:
		if !ok || value == "" {
			return (*bool)(nil)
		}
		v, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, name+" must be a boolean")
			return (*bool)(nil)
		}
		return &v
	case reflect.String:
		if !ok || value == "" {
			return (*string)(nil)
		}
		return &value
	}

	c.queryErrs = append(c.queryErrs, name+" has unsupported kind")
	return nil
}

// ValidQuery reports query parameters GetQueryFunc could not parse.
func (c *Context) ValidQuery() error {
	if len(c.queryErrs) == 0 {
		return nil
	}
	return NewRequestError(errors.New(strings.Join(c.queryErrs, "; ")), http.StatusBadRequest)
}

// GetParam reads a path parameter as the requested kind. Failures are
// reported by ValidParam; the zero value is returned so callers can assert.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.gin.Param(name)

	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrs = append(c.paramErrs, name+" must be an integer")
			return 0
		}
		return v
	case reflect.String:
		if value == "" {
			c.paramErrs = append(c.paramErrs, name+" is required")
		}
		return value
	}

	c.paramErrs = append(c.paramErrs, name+" has unsupported kind")
	return nil
}

// ValidParam reports path parameters GetParam could not parse.
func (c *Context) ValidParam() error {
	if len(c.paramErrs) == 0 {
		return nil
	}
	return NewRequestError(errors.New(strings.Join(c.paramErrs, "; ")), http.StatusBadRequest)
}

func (c *Context) Query(name string) string {
	return c.gin.Query(name)
}

// FormFile returns the named multipart file from the request.
func (c *Context) FormFile(name string) (*multipart.FileHeader, error) {
	return c.gin.FormFile(name)
}

func (c *Context) Respond(data interface{}, status int) error {
	c.gin.JSON(status, data)
	return nil
}

// RespondFile streams a file from disk with the given download name.
func (c *Context) RespondFile(path, name string) error {
	c.gin.FileAttachment(path, name)
	return nil
}

func (c *Context) RespondError(err error) error {
	status := http.StatusInternalServerError

	var webErr *Error
	if errors.As(err, &webErr) {
		status = webErr.Status
	}

	c.gin.JSON(status, map[string]interface{}{
		"error":  err.Error(),
		"status": false,
	})

	return nil
}

// missingFields returns the named fields that are unset in obj. A field is
// unset when it is a nil pointer, an empty string/slice/map, or absent.
func missingFields(obj interface{}, fields []string) []string {
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	var missing []string
	for _, name := range fields {
		f := v.FieldByName(name)
		if !f.IsValid() {
			missing = append(missing, name)
			continue
		}
		switch f.Kind() {
		case reflect.Ptr, reflect.Interface:
			if f.IsNil() {
				missing = append(missing, name)
			}
		case reflect.String:
			if f.Len() == 0 {
				missing = append(missing, name)
			}
		case reflect.Slice, reflect.Map:
			if f.IsNil() || f.Len() == 0 {
				missing = append(missing, name)
			}
		}
	}

	return missing
}
