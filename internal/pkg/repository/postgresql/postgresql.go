// Package postgresql wraps the bun DB handle with the small set of helpers
// every repository leans on: claims checks, required-field validation and
// soft deletes.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/auth"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

type Database struct {
	*bun.DB
}

// NewDB opens a bun handle over pgdriver. The handle is created once at
// process start and shared by every repository.
func NewDB(username, password, host, port, dbname string, disableTLS bool) *Database {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", username, password, host, port, dbname)
	if disableTLS {
		dsn += "?sslmode=disable"
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(bundebug.FromEnv("BUNDEBUG")))

	return &Database{DB: db}
}

// CheckClaims returns the authenticated claims from ctx. With roles given, the
// caller's role must be admin or one of them; admins always pass.
func (d Database) CheckClaims(ctx context.Context, roles ...string) (auth.Claims, error) {
	claims, ok := auth.GetClaims(ctx)
	if !ok {
		return auth.Claims{}, web.NewRequestError(errors.New("missing authentication claims"), http.StatusUnauthorized)
	}

	if len(roles) > 0 && !claims.Authorized(append(roles, auth.RoleAdmin)...) {
		return auth.Claims{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden)
	}

	return claims, nil
}

// ValidateStruct checks that the named fields of request are set. Same
// semantics as web.BindFunc's required-field check, usable inside
// repositories for fields the controller could not know about.
func (d Database) ValidateStruct(request interface{}, requiredFields ...string) error {
	v := reflect.ValueOf(request)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return web.NewRequestError(errors.New("validate: not a struct"), http.StatusInternalServerError)
	}

	var missing []string
	for _, name := range requiredFields {
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
		case reflect.Int:
			if f.Int() == 0 {
				missing = append(missing, name)
			}
		}
	}

	if len(missing) > 0 {
		return web.NewRequestError(
			errors.Errorf("required field(s) missing: %s", strings.Join(missing, ", ")),
			http.StatusBadRequest,
		)
	}

	return nil
}

// DeleteRow soft-deletes the row by stamping deleted_at/deleted_by.
func (d Database) DeleteRow(ctx context.Context, table string, id int) error {
	claims, err := d.CheckClaims(ctx)
	if err != nil {
		return err
	}

	result, err := d.NewUpdate().
		Table(table).
		Where("deleted_at IS NULL AND id = ?", id).
		Set("deleted_at = ?", time.Now()).
		Set("deleted_by = ?", claims.UserId).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting from %s", table), http.StatusInternalServerError)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "checking affected rows"), http.StatusInternalServerError)
	}
	if affected == 0 {
		return web.NewRequestError(errors.New("row not found"), http.StatusNotFound)
	}

	return nil
}
