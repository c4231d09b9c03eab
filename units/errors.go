/*
 * errors.go, part of atomphys.
 *
 *
 * Copyright 2024 The atomphys authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package units

import "fmt"

//Sentinel errors. Errors returned by this package wrap one of these,
//so they can be checked with errors.Is.
var (
	ErrDimensionality = PanicMsg("units: incompatible dimensions")
	ErrUnknownUnit    = PanicMsg("units: unknown unit")
	ErrSyntax         = PanicMsg("units: malformed quantity")
	ErrSystemMismatch = PanicMsg("units: quantities belong to different unit systems")
	ErrNoSystem       = PanicMsg("units: quantity has no unit system")
)

//the same as atomphys.Error but avoid circular import.
type errorInt interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

//Error is the error type for this package. Besides the message it keeps a slice
//with the functions it went through, and the sentinel it belongs to.
type Error struct {
	message  string
	deco     []string
	kind     error
	critical bool
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

//Unwrap returns the sentinel error this one belongs to.
func (err *Error) Unwrap() error { return err.kind }

func newError(kind error, caller string, format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...), deco: []string{caller}, kind: kind, critical: true}
}

//errDecorate is a helper function that decorates the error with the caller's name
//if it implements errorInt. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(errorInt); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//It is also used for the sentinel errors of the package.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }
