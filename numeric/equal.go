/*
Copyright © 2026 the KMesh authors.
This file is part of KMesh.

KMesh is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

KMesh is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with KMesh.  If not, see <http://www.gnu.org/licenses/>.
*/

/*Package numeric compares numbers and tuples of numbers within a tolerance, and
provides the small function generators used around mesh quadrature.*/
package numeric

import (
	"errors"
	"fmt"
	"math/cmplx"
	"reflect"
)

// Epsilon is the machine epsilon of float64.
const Epsilon = 2.220446049250313e-16

// DefaultTolerance is the tolerance used when none is given explicitly.
const DefaultTolerance = 10 * Epsilon

// ErrNotNumber is returned when a tuple element cannot be treated as a number.
var ErrNotNumber = errors.New("numeric: value is not a number")

// Number is the set of types that can be compared with Equal.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Tuple is an ordered group of numbers (or nested tuples) compared
// element-wise by TupleEqual.
type Tuple []interface{}

// Equal returns whether a and b differ by less than the tolerance.
// Both values are treated as complex numbers. If tol is omitted,
// DefaultTolerance is used.
func Equal[A, B Number](a A, b B, tol ...float64) bool {
	ca, _ := complexOf(a)
	cb, _ := complexOf(b)
	return within(ca, cb, tolerance(tol))
}

// IsNumber reports whether v can be compared as a number.
func IsNumber(v interface{}) bool {
	_, ok := complexOf(v)
	return ok
}

// TupleEqual returns whether a and b have the same arity and all of their
// elements are equal within the tolerance. Non-numeric elements compare
// unequal; use TupleEqualE to find out about them.
func TupleEqual(a, b Tuple, tol ...float64) bool {
	eq, err := TupleEqualE(a, b, tol...)
	return eq && err == nil
}

// TupleEqualE is TupleEqual, but it returns ErrNotNumber if any element
// pair cannot be compared.
func TupleEqualE(a, b Tuple, tol ...float64) (bool, error) {
	if len(a) != len(b) {
		return false, nil
	}
	t := tolerance(tol)
	eq := true
	for i := range a {
		e, err := elementEqual(a[i], b[i], t)
		if err != nil {
			return false, fmt.Errorf("tuple element %d: %w", i, err)
		}
		eq = eq && e
	}
	return eq, nil
}

func elementEqual(a, b interface{}, tol float64) (bool, error) {
	ta, aTuple := a.(Tuple)
	tb, bTuple := b.(Tuple)
	if aTuple || bTuple {
		if !(aTuple && bTuple) {
			return false, ErrNotNumber
		}
		return TupleEqualE(ta, tb, tol)
	}
	ca, ok := complexOf(a)
	if !ok {
		return false, fmt.Errorf("%v (%T): %w", a, a, ErrNotNumber)
	}
	cb, ok := complexOf(b)
	if !ok {
		return false, fmt.Errorf("%v (%T): %w", b, b, ErrNotNumber)
	}
	return within(ca, cb, tol), nil
}

func within(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) < tol
}

func tolerance(tol []float64) float64 {
	if len(tol) == 0 {
		return DefaultTolerance
	}
	return tol[0]
}

// complexOf converts any numeric kind, named or not, to complex128.
func complexOf(v interface{}) (complex128, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return complex(float64(rv.Int()), 0), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return complex(float64(rv.Uint()), 0), true
	case reflect.Float32, reflect.Float64:
		return complex(rv.Float(), 0), true
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex(), true
	default:
		return 0, false
	}
}
