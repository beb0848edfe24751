// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "fmt"

// An ErrorKind identifies the class of failure reported by an Error.
type ErrorKind uint8

// Error kinds.
const (
	DivisionByZero   ErrorKind = iota + 1 // the divisor or modulus is zero
	Underflow                             // the result would be negative
	InvalidCharacter                      // a string to parse is not a valid number
)

//go:generate stringer -type=ErrorKind

// An Error is returned by operations on Unsigned values that cannot produce a
// result. Use errors.Is with one of ErrDivisionByZero, ErrUnderflow or
// ErrInvalidCharacter to test for a given Kind.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return "bignum: " + e.Msg
}

// Is reports whether target is an *Error of the same Kind as e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel errors, one per ErrorKind.
var (
	ErrDivisionByZero   = &Error{DivisionByZero, "division by zero"}
	ErrUnderflow        = &Error{Underflow, "negative result"}
	ErrInvalidCharacter = &Error{InvalidCharacter, "invalid character"}
)

func errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
