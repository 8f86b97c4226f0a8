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

package mesh

import (
	"fmt"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/mat"
)

// Samples is an integer-indexed collection of values aligned with
// the storage order of a mesh.
type Samples[T any] interface {
	// Len returns the number of samples.
	Len() int

	// At returns the sample at position i.
	At(i int) T
}

// Slice adapts a Go slice to Samples.
type Slice[T any] []T

// Len returns the number of samples.
func (s Slice[T]) Len() int { return len(s) }

// At returns the sample at position i.
func (s Slice[T]) At(i int) T { return s[i] }

// VecSamples adapts a gonum vector to Samples.
type VecSamples struct {
	V mat.Vector
}

// Len returns the number of samples.
func (v VecSamples) Len() int { return v.V.Len() }

// At returns the sample at position i.
func (v VecSamples) At(i int) float64 { return v.V.AtVec(i) }

// DenseSamples adapts a one-dimensional sparse.DenseArray to Samples.
type DenseSamples struct {
	A *sparse.DenseArray
}

// Len returns the number of samples.
func (d DenseSamples) Len() int { return len(d.A.Elements) }

// At returns the sample at position i.
func (d DenseSamples) At(i int) float64 { return d.A.Get(i) }

// Value resolves x on r and returns the sample stored at the resulting position.
func Value[T any](r Resolver, s Samples[T], x float64) (T, error) {
	i, err := r.Index(x)
	if err != nil {
		var zero T
		return zero, err
	}
	return sampleAt(s, i)
}

// PointValue resolves p on r and returns the sample stored at the
// resulting position.
func PointValue[T any](r Resolver, s Samples[T], p Point) (T, error) {
	i, err := r.PointIndex(p)
	if err != nil {
		var zero T
		return zero, err
	}
	return sampleAt(s, i)
}

func sampleAt[T any](s Samples[T], i int) (T, error) {
	if i < 0 || i >= s.Len() {
		var zero T
		return zero, fmt.Errorf("mesh: sample %d of %d: %w", i, s.Len(), ErrWrongIndex)
	}
	return s.At(i), nil
}
