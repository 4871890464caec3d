// Package apierror carries the closed set of error classes every failure in
// the API surface is mapped to before it reaches a response writer.
package apierror

import (
	"fmt"
	"net/http"
)

type Class string

const (
	CLASS_AUTH        Class = "AUTH_ERROR"
	CLASS_INTERNAL    Class = "INTERNAL_ERROR"
	CLASS_NOT_FOUND   Class = "NOT_FOUND_ERROR"
	CLASS_BAD_REQUEST Class = "BAD_REQUEST_ERROR"
)

// Label is the small fixed set of indexed keys attached to errors for
// telemetry. Anything else goes into Annotations, unindexed.
type Label string

const (
	LABEL_MERCHANT_ID      Label = "merchantId"
	LABEL_CUSTOMER_ID      Label = "customerId"
	LABEL_TRANSACTION_ID   Label = "transactionId"
	LABEL_USER_ID          Label = "userId"
	LABEL_ANSA_STATUS_CODE Label = "ansaStatusCode"
	LABEL_PG_ERROR_CODE    Label = "pgErrorCode"
)

type Error struct {
	Class       Class
	Message     string
	Cause       error
	Annotations map[string]any
	Labels      map[Label]string
}

type Option func(*Error)

func WithCause(cause error) Option {
	return func(e *Error) { e.Cause = cause }
}

func WithAnnotation(key string, value any) Option {
	return func(e *Error) {
		if e.Annotations == nil {
			e.Annotations = map[string]any{}
		}
		e.Annotations[key] = value
	}
}

func WithLabel(label Label, value string) Option {
	return func(e *Error) {
		if e.Labels == nil {
			e.Labels = map[Label]string{}
		}
		e.Labels[label] = value
	}
}

func New(class Class, message string, opts ...Option) *Error {
	e := &Error{Class: class, Message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func Auth(message string, opts ...Option) *Error {
	return New(CLASS_AUTH, message, opts...)
}

func Internal(message string, opts ...Option) *Error {
	return New(CLASS_INTERNAL, message, opts...)
}

func NotFound(message string, opts ...Option) *Error {
	return New(CLASS_NOT_FOUND, message, opts...)
}

func BadRequest(message string, opts ...Option) *Error {
	return New(CLASS_BAD_REQUEST, message, opts...)
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Class, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Class, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Class == e.Class
}

// Status maps every class to an HTTP status code. The switch lists the whole
// closed set; a class outside it is a programming error.
func (e *Error) Status() int {
	switch e.Class {
	case CLASS_AUTH:
		return http.StatusForbidden
	case CLASS_INTERNAL:
		return http.StatusInternalServerError
	case CLASS_NOT_FOUND:
		return http.StatusNotFound
	case CLASS_BAD_REQUEST:
		return http.StatusBadRequest
	}
	panic("apierror: unknown class " + string(e.Class))
}

// Body is the fixed response text per class. Internal detail never leaks into
// the response; it lives in Message/Cause for the logs only.
func (e *Error) Body() string {
	switch e.Class {
	case CLASS_AUTH:
		return "Unauthorized"
	case CLASS_INTERNAL:
		return "Internal Server Error"
	case CLASS_NOT_FOUND:
		return "Not Found"
	case CLASS_BAD_REQUEST:
		return "Bad Request"
	}
	panic("apierror: unknown class " + string(e.Class))
}

// From wraps an arbitrary error as INTERNAL_ERROR, passing *Error through
// untouched.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return Internal("unclassified error", WithCause(err))
}

// Matches reports whether err is an *Error of the given class.
func Matches(err error, class Class) bool {
	e, ok := err.(*Error)
	return ok && e.Class == class
}
