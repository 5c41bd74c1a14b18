// Package postgres holds errors shared by the postgres repositories.
package postgres

import "github.com/pkg/errors"

var ErrNotFound = errors.New("row not found")
