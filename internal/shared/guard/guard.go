// Package guard holds the precondition checks shared by every service.
//
// Each check returns nil on success or an *Error carrying the HTTP status the
// failure should surface as. Services return these errors unchanged and the
// response package turns them into the matching status at the handler boundary.
package guard

import (
	"fmt"
	"net/http"
	"reflect"

	"blog-backend/internal/shared/messages"
)

// Error is a failure with an intended HTTP status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an *Error. Statuses outside 4xx/5xx are still accepted; the
// response boundary treats unknown statuses as internal errors.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error   { return New(http.StatusBadRequest, message) }
func Unauthorized(message string) *Error { return New(http.StatusUnauthorized, message) }
func Forbidden(message string) *Error    { return New(http.StatusForbidden, message) }
func NotFound(message string) *Error     { return New(http.StatusNotFound, message) }
func Conflict(message string) *Error     { return New(http.StatusConflict, message) }

// Assert fails with status and message when cond is false.
func Assert(cond bool, status int, message string) error {
	if !cond {
		return New(status, message)
	}
	return nil
}

// Field is a named value checked by RequireFields.
type Field struct {
	Name  string
	Value any
}

func Required(name string, value any) Field {
	return Field{Name: name, Value: value}
}

// RequireFields fails with 400 on the first field whose value is nil, a nil
// pointer or an empty string.
func RequireFields(fields ...Field) error {
	for _, f := range fields {
		if isBlank(f.Value) {
			return BadRequest(messages.MissingField + f.Name)
		}
	}
	return nil
}

// EnsureOwner fails with 403 unless both ids have the same string form.
func EnsureOwner(ownerID, requesterID any, message string) error {
	if fmt.Sprint(ownerID) != fmt.Sprint(requesterID) {
		return Forbidden(message)
	}
	return nil
}

type blanker interface {
	Blank() bool
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if b, ok := v.(blanker); ok {
		return b.Blank()
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.String && rv.Len() == 0
}
