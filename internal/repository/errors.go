// Package repository contains the SQL-backed row store.  Registrations are
// only ever inserted: there is no update, delete or lookup path used by
// the application.
package repository

import "errors"

// ErrUnsupportedDriver is returned when a schema is requested for a
// database driver this package does not know.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// ErrRowWidth is returned when a row does not have exactly one value per
// registrations column.
var ErrRowWidth = errors.New("row has wrong number of fields")
