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

package wigner

import "fmt"

//Sentinel errors, to be checked with errors.Is.
var (
	//ErrInvalidQuantumNumber is returned for arguments that are not integers or half-integers.
	ErrInvalidQuantumNumber = PanicMsg("wigner: arguments must be integers or half-integers")
	//ErrOverflow is returned when the factorials involved exceed what float64 can represent
	//accurately. Use an exact method for those symbols.
	ErrOverflow = PanicMsg("wigner: arguments too large for a floating point evaluation")
)

//Error is the error type of the package. It wraps one of the sentinels.
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

//Unwrap returns the sentinel error.
func (err *Error) Unwrap() error { return err.kind }

func newError(kind error, caller string, args [6]float64) *Error {
	return &Error{
		message:  fmt.Sprintf("%s: %v", kind.Error(), args),
		deco:     []string{caller},
		kind:     kind,
		critical: true,
	}
}

//PanicMsg is the type of the sentinel errors.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }
