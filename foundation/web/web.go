// Package web is a small kit on top of gin. Handlers return errors instead of
// writing them, so a single place converts them into JSON responses.
package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler is the application handler signature. A returned error has already
// been responded by the handler itself (via RespondError); the wrapper only
// catches handlers that forget to.
type Handler func(c *Context) error

// Middleware wraps a Handler with pre/post behavior.
type Middleware func(Handler) Handler

type App struct {
	*gin.Engine
}

func NewApp() *App {
	app := &App{Engine: gin.New()}
	app.Engine.Use(gin.Logger(), gin.Recovery())

	return app
}

func (a *App) Get(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodGet, path, handler, middlewares...)
}

func (a *App) Post(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPost, path, handler, middlewares...)
}

func (a *App) Put(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPut, path, handler, middlewares...)
}

func (a *App) Patch(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPatch, path, handler, middlewares...)
}

func (a *App) Delete(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodDelete, path, handler, middlewares...)
}

func (a *App) handle(method, path string, handler Handler, middlewares ...Middleware) {
	h := handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}

	a.Engine.Handle(method, path, func(gc *gin.Context) {
		c := NewContext(gc)

		if err := h(c); err != nil {
			_ = c.RespondError(err)
		}
	})
}

// NewContext builds a *Context from a gin context. Exposed for tests and for
// routes registered on the raw engine.
func NewContext(gc *gin.Context) *Context {
	var ctx context.Context = context.Background()
	if gc.Request != nil {
		ctx = gc.Request.Context()
	}

	return &Context{
		gin:     gc,
		Ctx:     ctx,
		Request: gc.Request,
		Writer:  gc.Writer,
	}
}
