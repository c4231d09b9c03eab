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

package polarizability

import (
	"fmt"

	"github.com/mgrau/atomphys/wigner"
)

//ErrInvalidMJ is returned for a magnetic quantum number that does not belong to
//the level. It is an invalid quantum number error, so errors.Is also matches
//wigner.ErrInvalidQuantumNumber.
var ErrInvalidMJ = PanicMsg("polarizability: mJ is not a sublevel of the level")

//Error is the error type of the package.
type Error struct {
	message  string
	deco     []string
	kinds    []error
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

//Unwrap returns the sentinel errors this one belongs to.
func (err *Error) Unwrap() []error { return err.kinds }

func mJError(caller string, mJ, J float64) *Error {
	return &Error{
		message:  fmt.Sprintf("%s: mJ=%g with J=%g", ErrInvalidMJ, mJ, J),
		deco:     []string{caller},
		kinds:    []error{ErrInvalidMJ, wigner.ErrInvalidQuantumNumber},
		critical: true,
	}
}

//the same as atomphys.Error but avoid circular import.
type errorInt interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

func errDecorate(err error, caller string) error {
	if err2, ok := err.(errorInt); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

//PanicMsg is the type of the sentinel errors.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }
