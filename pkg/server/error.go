package server

import (
	"errors"
	"fmt"
)

// Error error yang dikembalikan service ke handler. msg ditampilkan ke client,
// code menentukan http status, orig error aslinya (bisa di errors.Is / errors.As).
type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
)

const (
	MessageInternalServerError = "internal server error"
	MessageUnknownLocation     = "unknown location"
	MessageNoRoute             = "no route found"
)
