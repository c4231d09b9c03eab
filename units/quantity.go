/*
 * quantity.go, part of atomphys.
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

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/unit"
)

//Quantity is a magnitude with a physical dimension, tied to a System.
//Quantities are values; all operations return new quantities.
//
//Errors are sticky: an operation that fails (mixing dimensions, mixing
//systems) returns a quantity that carries the error, and every later
//operation on it keeps the first error. Err and To report it.
//Division by zero follows IEEE rules and gives ±Inf, not an error.
type Quantity struct {
	v   float64
	dim Dimension
	sys *System
	err error
}

//Err returns the error carried by the quantity, if any.
func (q Quantity) Err() error {
	if q.err != nil {
		return q.err
	}
	if q.sys == nil {
		return newError(ErrNoSystem, "Err", "zero-value quantity used")
	}
	return nil
}

//System returns the unit system the quantity belongs to.
func (q Quantity) System() *System { return q.sys }

//Dim returns the dimension of the quantity.
func (q Quantity) Dim() Dimension { return q.dim }

//Value returns the magnitude in the base units of the system.
func (q Quantity) Value() float64 { return q.v }

//operands checks that a binary operation is allowed and returns the error otherwise.
func (q Quantity) operands(o Quantity, caller string) error {
	if q.err != nil {
		return q.err
	}
	if o.err != nil {
		return o.err
	}
	if q.sys == nil || o.sys == nil {
		return newError(ErrNoSystem, caller, "zero-value quantity used")
	}
	if q.sys != o.sys {
		return newError(ErrSystemMismatch, caller, "cannot combine quantities from different unit systems")
	}
	return nil
}

func (q Quantity) withErr(err error) Quantity {
	return Quantity{sys: q.sys, err: err}
}

//Add returns q+o. Both must have the same dimension.
func (q Quantity) Add(o Quantity) Quantity {
	if err := q.operands(o, "Add"); err != nil {
		return q.withErr(err)
	}
	if q.dim != o.dim {
		return q.withErr(newError(ErrDimensionality, "Add", "cannot add %s and %s", q.dim, o.dim))
	}
	return Quantity{v: q.v + o.v, dim: q.dim, sys: q.sys}
}

//Sub returns q-o. Both must have the same dimension.
func (q Quantity) Sub(o Quantity) Quantity {
	if err := q.operands(o, "Sub"); err != nil {
		return q.withErr(err)
	}
	if q.dim != o.dim {
		return q.withErr(newError(ErrDimensionality, "Sub", "cannot subtract %s from %s", o.dim, q.dim))
	}
	return Quantity{v: q.v - o.v, dim: q.dim, sys: q.sys}
}

//Mul returns q*o.
func (q Quantity) Mul(o Quantity) Quantity {
	if err := q.operands(o, "Mul"); err != nil {
		return q.withErr(err)
	}
	return Quantity{v: q.v * o.v, dim: q.dim.Mul(o.dim), sys: q.sys}
}

//Div returns q/o. A zero divisor gives ±Inf (or NaN for 0/0).
func (q Quantity) Div(o Quantity) Quantity {
	if err := q.operands(o, "Div"); err != nil {
		return q.withErr(err)
	}
	return Quantity{v: q.v / o.v, dim: q.dim.Div(o.dim), sys: q.sys}
}

//Scale returns f*q.
func (q Quantity) Scale(f float64) Quantity {
	if q.err != nil {
		return q
	}
	return Quantity{v: q.v * f, dim: q.dim, sys: q.sys}
}

//Inv returns 1/q.
func (q Quantity) Inv() Quantity {
	if q.err != nil {
		return q
	}
	return Quantity{v: 1 / q.v, dim: Dimensionless.Div(q.dim), sys: q.sys}
}

//Pow returns q^n.
func (q Quantity) Pow(n int) Quantity {
	if q.err != nil {
		return q
	}
	return Quantity{v: math.Pow(q.v, float64(n)), dim: q.dim.Pow(n), sys: q.sys}
}

//Sqrt returns the square root of q. All the dimension powers of q must be even.
func (q Quantity) Sqrt() Quantity {
	if q.err != nil {
		return q
	}
	d, ok := q.dim.Half()
	if !ok {
		return q.withErr(newError(ErrDimensionality, "Sqrt", "cannot take the square root of %s", q.dim))
	}
	return Quantity{v: math.Sqrt(q.v), dim: d, sys: q.sys}
}

//Abs returns |q|.
func (q Quantity) Abs() Quantity {
	if q.err != nil {
		return q
	}
	return Quantity{v: math.Abs(q.v), dim: q.dim, sys: q.sys}
}

//Neg returns -q.
func (q Quantity) Neg() Quantity {
	return q.Scale(-1)
}

//IsInf is true if the magnitude is infinite.
func (q Quantity) IsInf() bool { return math.IsInf(q.v, 0) }

//IsZero is true if the magnitude is exactly zero.
func (q Quantity) IsZero() bool { return q.v == 0 }

//Compatible is true if o can be added to q.
func (q Quantity) Compatible(o Quantity) bool {
	return q.operands(o, "Compatible") == nil && q.dim == o.dim
}

//Cmp compares two quantities of the same dimension. It returns -1, 0 or 1.
func (q Quantity) Cmp(o Quantity) (int, error) {
	if err := q.operands(o, "Cmp"); err != nil {
		return 0, err
	}
	if q.dim != o.dim {
		return 0, newError(ErrDimensionality, "Cmp", "cannot compare %s and %s", q.dim, o.dim)
	}
	switch {
	case q.v < o.v:
		return -1, nil
	case q.v > o.v:
		return 1, nil
	}
	return 0, nil
}

//Equal is true if both quantities are valid, compatible and have the exact same magnitude.
func (q Quantity) Equal(o Quantity) bool {
	c, err := q.Cmp(o)
	return err == nil && c == 0 && !math.IsNaN(q.v)
}

//Less is true if q<o. Incompatible quantities are never less than each other.
func (q Quantity) Less(o Quantity) bool {
	c, err := q.Cmp(o)
	return err == nil && c < 0
}

//To returns the magnitude of q in the given unit expression.
func (q Quantity) To(unit string) (float64, error) {
	if err := q.Err(); err != nil {
		return 0, err
	}
	f, err := parseUnit(unit)
	if err != nil {
		return 0, errDecorate(err, "To")
	}
	if f.dim != q.dim {
		return 0, newError(ErrDimensionality, "To", "cannot convert %s to %q (%s)", q.dim, unit, f.dim)
	}
	return q.v / q.sys.scale(f), nil
}

//MustTo is like To but panics on error.
func (q Quantity) MustTo(unit string) float64 {
	v, err := q.To(unit)
	if err != nil {
		panic(err.Error())
	}
	return v
}

//SIUnit returns the quantity as a gonum value in SI units.
func (q Quantity) SIUnit() (*unit.Unit, error) {
	if err := q.Err(); err != nil {
		return nil, err
	}
	v := q.v
	if q.sys.mode == Atomic {
		v *= auScale(q.dim)
	}
	return unit.New(v, q.dim.Dimensions()), nil
}

//Float returns the magnitude of a dimensionless quantity.
func (q Quantity) Float() (float64, error) {
	return q.To("")
}

//String prints the quantity so that System.Parse reads it back exactly:
//shortest round-trip magnitude followed by the base unit of the system.
func (q Quantity) String() string {
	if q.err != nil {
		return fmt.Sprintf("<error: %s>", q.err.Error())
	}
	mode := SI
	if q.sys != nil {
		mode = q.sys.mode
	}
	v := strconv.FormatFloat(q.v, 'g', -1, 64)
	u := unitFor(q.dim, mode)
	if u == "" {
		return v
	}
	return v + " " + u
}

//Show prints the magnitude in the given unit with the given verb, for display.
//On error it falls back to String.
func (q Quantity) Show(unit string, verb string) string {
	v, err := q.To(unit)
	if err != nil {
		return q.String()
	}
	return fmt.Sprintf(verb, v) + " " + unit
}
