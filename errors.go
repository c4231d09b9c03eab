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

package atomphys

import "fmt"

//Errors

//Sentinel errors, to be checked with errors.Is.
var (
	//ErrNotFound is returned by lookups that match nothing.
	ErrNotFound = PanicMsg("atomphys: not found")
	//ErrNoJ is returned when a state without total angular momentum is used where J is needed.
	ErrNoJ = PanicMsg("atomphys: state has no total angular momentum J")
	//ErrDegenerate is returned when a decay rate is set on a transition with zero frequency.
	ErrDegenerate = PanicMsg("atomphys: degenerate transition")
	//ErrNoSuchSpectrum is returned when the data source has no levels for a spectrum.
	ErrNoSuchSpectrum = PanicMsg("atomphys: no such atom or spectrum")
	//ErrUnknownElement is returned for spectrum names with no known element.
	ErrUnknownElement = PanicMsg("atomphys: unknown element")
	//ErrForeignState is returned when a transition connects states of another atom.
	ErrForeignState = PanicMsg("atomphys: state belongs to a different atom")
	//ErrNoConvergence is returned when a root search stops without converging.
	ErrNoConvergence = PanicMsg("atomphys: no convergence")
)

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call adds the string to the decoration slice and returns it. An empty string just returns the slice.
}

//CError is the concrete error type of this package.
type CError struct {
	message  string
	deco     []string
	kind     error
	critical bool
}

func (err *CError) Error() string { return err.message }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err *CError) Critical() bool { return err.critical }

//Unwrap returns the sentinel error.
func (err *CError) Unwrap() error { return err.kind }

func newError(kind error, caller string, format string, args ...interface{}) *CError {
	msg := kind.Error()
	if format != "" {
		msg += ": " + fmt.Sprintf(format, args...)
	}
	return &CError{message: msg, deco: []string{caller}, kind: kind, critical: true}
}

//errDecorate decorates the error with the caller's name before returning it,
//if it implements Error. Other errors, and nil, are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

//PanicMsg is the type of the sentinel errors and of the messages used in panics.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrIndexOutOfRange = PanicMsg("atomphys: index out of range")
	ErrNilAtom         = PanicMsg("atomphys: nil atom")
)
