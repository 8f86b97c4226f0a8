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

package periodic

import (
	"reflect"

	"github.com/spatialmodel/kmesh/numeric"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Scalar is the set of value types Integrate can average.
type Scalar interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Integrate returns the mean of f over the mesh points,
// (1/N) Σ f(x_i). For smooth periodic f this is the integral of f over
// the domain divided by Length, with spectral accuracy.
// Samples are accumulated in index order.
func Integrate[R Scalar](m *Mesh, f func(x float64) R) R {
	sum := f(m.Value(0))
	for i := 1; i < m.Len(); i++ {
		sum += f(m.Value(i))
	}
	return sum / divisor[R](m.Len())
}

// divisor converts n to R. Named scalar types are handled through
// their underlying kind.
func divisor[R Scalar](n int) R {
	var d R
	v := reflect.ValueOf(&d).Elem()
	switch v.Kind() {
	case reflect.Complex64, reflect.Complex128:
		v.SetComplex(complex(float64(n), 0))
	default:
		v.SetFloat(float64(n))
	}
	return d
}

// IntegrateWith is Integrate for a function taking one extra argument,
// which is passed unchanged to every call.
func IntegrateWith[R Scalar, A any](m *Mesh, f func(x float64, a A) R, a A) R {
	return Integrate(m, numeric.Bind(f, a))
}

// IntegrateVec returns the element-wise mean of the vector-valued f over
// the mesh points. It panics if f returns vectors of different lengths.
func IntegrateVec(m *Mesh, f func(x float64) []float64) []float64 {
	sum := append([]float64(nil), f(m.Value(0))...)
	for i := 1; i < m.Len(); i++ {
		floats.Add(sum, f(m.Value(i)))
	}
	floats.Scale(1/float64(m.Len()), sum)
	return sum
}

// IntegrateDense returns the element-wise mean of the matrix-valued f over
// the mesh points. It panics if f returns matrices of different shapes.
func IntegrateDense(m *Mesh, f func(x float64) mat.Matrix) *mat.Dense {
	sum := mat.DenseCopyOf(f(m.Value(0)))
	for i := 1; i < m.Len(); i++ {
		sum.Add(sum, f(m.Value(i)))
	}
	sum.Scale(1/float64(m.Len()), sum)
	return sum
}
