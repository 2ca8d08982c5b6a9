package core

import (
	"errors"
	"fmt"
	"os"
)

// Error codes shared by all textwriter packages.
const (
	NOERROR   int = 0
	EMISSING  int = 122 // font, map or file does not exist
	EINVALID  int = 123 // malformed input, e.g. an attribute file line
	EINTERNAL int = 125 // programming error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error carrying an error code and a message suitable for
// users of the command line tool.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	return fmt.Sprintf("[%d] %s: %v", e.code, e.msg, e.error)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// WrapError wraps err, attaching an error code and a formatted user message.
// err stays reachable with errors.Is/As. A nil err is replaced by an error
// describing code.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{err, code, fmt.Sprintf(format, v...)}
}

// Error creates an error with an error code and a user message.
func Error(code int, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// Code returns the error code associated with err.
// Errors without a code report EINTERNAL, nil reports NOERROR.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e AppError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with err, or the text
// of its error code if there is none.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e AppError
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// UserError prints err to stderr in a user-facing format.
func UserError(err error) {
	var e AppError
	if errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
