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

package numeric

import (
	"fmt"

	"github.com/spf13/cast"
)

// Constant returns a function that ignores its argument and returns c.
func Constant[A, V any](c V) func(A) V {
	return func(A) V { return c }
}

// Bind fixes the trailing argument of f, returning a function of the
// leading argument only.
func Bind[X, A, V any](f func(X, A) V, a A) func(X) V {
	return func(x X) V { return f(x, a) }
}

// Bind2 fixes the two trailing arguments of f.
func Bind2[X, A, B, V any](f func(X, A, B) V, a A, b B) func(X) V {
	return func(x X) V { return f(x, a, b) }
}

// TupleFunc converts a function of several real arguments into a function
// of a single Tuple. Tuple elements are converted with cast, so integers and
// numeric strings are accepted.
func TupleFunc[V any](f func(...float64) V) func(Tuple) (V, error) {
	return func(t Tuple) (V, error) {
		args := make([]float64, len(t))
		for i, e := range t {
			v, err := cast.ToFloat64E(e)
			if err != nil {
				var zero V
				return zero, fmt.Errorf("numeric: tuple argument %d: %v: %w", i, err, ErrNotNumber)
			}
			args[i] = v
		}
		return f(args...), nil
	}
}

// SpreadFunc converts a function of a Tuple into a function of
// separate arguments.
func SpreadFunc[V any](f func(Tuple) V) func(...interface{}) V {
	return func(args ...interface{}) V {
		return f(Tuple(args))
	}
}
