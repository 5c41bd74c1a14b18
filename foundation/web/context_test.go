package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (*Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	gc, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	gc.Request = req

	return NewContext(gc), w
}

func TestBindFunc_RequiredFields(t *testing.T) {
	type payload struct {
		Name   *string `json:"name"`
		Reason *string `json:"reason"`
	}

	t.Run("missing field is rejected", func(t *testing.T) {
		c, _ := newTestContext(t, http.MethodPost, "/", `{"name":"x"}`)

		var p payload
		err := c.BindFunc(&p, "Name", "Reason")
		require.Error(t, err)

		var webErr *Error
		require.True(t, errors.As(err, &webErr))
		assert.Equal(t, http.StatusBadRequest, webErr.Status)
		assert.Contains(t, err.Error(), "Reason")
	})

	t.Run("all fields present", func(t *testing.T) {
		c, _ := newTestContext(t, http.MethodPost, "/", `{"name":"x","reason":"y"}`)

		var p payload
		require.NoError(t, c.BindFunc(&p, "Name", "Reason"))
		require.NotNil(t, p.Name)
		assert.Equal(t, "x", *p.Name)
	})
}

func TestGetQueryFunc(t *testing.T) {
	t.Run("absent yields typed nil", func(t *testing.T) {
		c, _ := newTestContext(t, http.MethodGet, "/?other=1", "")

		limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int)
		require.True(t, ok)
		assert.Nil(t, limit)
		assert.NoError(t, c.ValidQuery())
	})

	t.Run("present int parses", func(t *testing.T) {
		c, _ := newTestContext(t, http.MethodGet, "/?limit=25", "")

		limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int)
		require.True(t, ok)
		require.NotNil(t, limit)
		assert.Equal(t, 25, *limit)
	})

	t.Run("malformed int reported by ValidQuery", func(t *testing.T) {
		c, _ := newTestContext(t, http.MethodGet, "/?limit=abc", "")

		limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int)
		require.True(t, ok)
		assert.Nil(t, limit)

		err := c.ValidQuery()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "limit")
	})

	t.Run("string and bool kinds", func(t *testing.T) {
		c, _ := newTestContext(t, http.MethodGet, "/?search=ann&active=true", "")

		search, ok := c.GetQueryFunc(reflect.String, "search").(*string)
		require.True(t, ok)
		require.NotNil(t, search)
		assert.Equal(t, "ann", *search)

		active, ok := c.GetQueryFunc(reflect.Bool, "active").(*bool)
		require.True(t, ok)
		require.NotNil(t, active)
		assert.True(t, *active)
	})
}

func TestGetParam(t *testing.T) {
	t.Run("int param", func(t *testing.T) {
		c, _ := newTestContext(t, http.MethodGet, "/", "")
		c.gin.Params = gin.Params{{Key: "id", Value: "42"}}

		id := c.GetParam(reflect.Int, "id").(int)
		assert.Equal(t, 42, id)
		assert.NoError(t, c.ValidParam())
	})

	t.Run("malformed int param", func(t *testing.T) {
		c, _ := newTestContext(t, http.MethodGet, "/", "")
		c.gin.Params = gin.Params{{Key: "id", Value: "forty"}}

		id := c.GetParam(reflect.Int, "id").(int)
		assert.Equal(t, 0, id)

		err := c.ValidParam()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "id")
	})
}

func TestRespondError(t *testing.T) {
	t.Run("web error keeps its status", func(t *testing.T) {
		c, w := newTestContext(t, http.MethodGet, "/", "")

		require.NoError(t, c.RespondError(NewRequestError(errors.New("row not found"), http.StatusNotFound)))
		assert.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["status"])
		assert.Contains(t, body["error"], "row not found")
	})

	t.Run("plain error maps to 500", func(t *testing.T) {
		c, w := newTestContext(t, http.MethodGet, "/", "")

		require.NoError(t, c.RespondError(errors.New("boom")))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRespond(t *testing.T) {
	c, w := newTestContext(t, http.MethodGet, "/", "")

	require.NoError(t, c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "ok!", body["data"])
}
