// Package gqlerr defines the error taxonomy surfaced through GraphQL
// error extensions. Every classified failure carries one of four codes;
// anything else propagates unclassified.
package gqlerr

import "errors"

const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeBadUserInput    = "BAD_USER_INPUT"
)

// Error is a classified request error. It implements graphql-go's
// ExtendedError so the code lands in the response extensions.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions satisfies gqlerrors.ExtendedError.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func Unauthenticated(msg string) *Error {
	if msg == "" {
		msg = "not authenticated"
	}
	return &Error{Code: CodeUnauthenticated, Message: msg}
}

func Forbidden(msg string) *Error {
	if msg == "" {
		msg = "not authorized"
	}
	return &Error{Code: CodeForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	if msg == "" {
		msg = "record not found"
	}
	return &Error{Code: CodeNotFound, Message: msg}
}

func BadInput(msg string) *Error {
	if msg == "" {
		msg = "invalid input"
	}
	return &Error{Code: CodeBadUserInput, Message: msg}
}

// CodeOf returns the classification code of err, or "" when err is not
// a classified error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}

func IsBadInput(err error) bool {
	return CodeOf(err) == CodeBadUserInput
}
