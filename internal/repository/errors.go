// Package repository implements MySQL data access for the service.
// Sentinel errors defined here let handlers translate storage failures
// into HTTP responses without inspecting driver errors: ErrNotFound
// becomes 404, ErrEmailExists 409 and ErrForbidden 403.
package repository

import "errors"

// ErrNotFound is returned when a row referenced by id (or by a
// user/date pair) does not exist. sql.ErrNoRows never escapes this
// package; it is always mapped to ErrNotFound.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned by user creation when the email address
// is already registered.
var ErrEmailExists = errors.New("email already exists")

// ErrForbidden is returned when the caller attempts an operation on a
// resource owned by another user.
var ErrForbidden = errors.New("forbidden")
