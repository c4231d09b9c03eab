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

package nist

import "fmt"

//ErrStatus is returned when the ASD server answers with an error status after all retries.
const ErrStatus = PanicMsg("nist: bad HTTP status")

//Error is the error type of this package.
type Error struct {
	message  string
	deco     []string
	kind     error
	critical bool
}

func (err *Error) Error() string { return err.message }

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

//Unwrap returns the sentinel error, or the underlying one.
func (err *Error) Unwrap() error { return err.kind }

func newError(kind error, caller string, format string, args ...interface{}) *Error {
	return &Error{message: kind.Error() + ": " + fmt.Sprintf(format, args...), deco: []string{caller}, kind: kind, critical: true}
}

type errorInt interface {
	Error() string
	Decorate(string) []string
}

//errDecorate decorates errors of this library with the caller's name. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(errorInt); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

//PanicMsg is the type of the sentinel errors of this package.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }
