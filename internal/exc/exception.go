// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"cmp"
	"fmt"
	"strings"

	"gopkg.driplang.org/parser.go/internal/idl"
)

type Exception interface {
	error
	Code() string
	Message() string
	Location() Location
}

// Location points at a file and, for diagnostics found inside its text, a
// line and column. File level problems leave the zero idl.Location.
type Location struct {
	idl.Location
	URI string
}

func (l Location) String() string {
	if l.Line == 0 {
		return l.URI
	}
	return fmt.Sprintf("%s:%d:%d", l.URI, l.Line, l.Column)
}

type exception struct {
	code     string
	message  string
	location Location
	cause    error
}

func (e *exception) Error() string {
	return fmt.Sprintf("%s -- %s: %s", e.location, e.code, e.message)
}

func (e *exception) Code() string {
	return e.code
}

func (e *exception) Message() string {
	return e.message
}

func (e *exception) Location() Location {
	return e.location
}

func (e *exception) Unwrap() error {
	return e.cause
}

func New(location Location, code string, message string) Exception {
	return &exception{
		location: location,
		message:  message,
		code:     code,
	}
}

// Wrap records err under a new code. The message of a wrapped Exception is
// carried over without its location prefix.
func Wrap(location Location, code string, err error) Exception {
	if err == nil {
		return nil
	}
	message := err.Error()
	if e, ok := err.(Exception); ok {
		message = e.Message()
	}
	return &exception{
		location: location,
		message:  message,
		code:     code,
		cause:    err,
	}
}

func WrapUnknown(location Location, err error) Exception {
	return Wrap(location, CodeUnknownFatal, err)
}

// Compare orders exceptions by file and then by offset within the file.
func Compare(a Exception, b Exception) int {
	la, lb := a.Location(), b.Location()
	return cmp.Or(
		strings.Compare(la.URI, lb.URI),
		cmp.Compare(la.Offset, lb.Offset),
	)
}
