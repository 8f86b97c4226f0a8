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

	"github.com/spatialmodel/kmesh/numeric"
)

// Point pairs an index on a mesh with the coordinate at that index.
type Point struct {
	index int
	value float64
}

// NewPoint returns a point with the given index and coordinate. The pair
// is not validated against any mesh until it is resolved by one.
func NewPoint(index int, value float64) Point {
	return Point{index: index, value: value}
}

// Index returns the index of the point.
func (p Point) Index() int { return p.index }

// Value returns the coordinate of the point.
func (p Point) Value() float64 { return p.value }

// Matches reports whether x equals the coordinate of p within
// numeric.DefaultTolerance.
func (p Point) Matches(x float64) bool {
	return numeric.Equal(p.value, x)
}

// Equal reports whether p and q have the same index and
// coordinates that are equal within numeric.DefaultTolerance.
func (p Point) Equal(q Point) bool {
	return p.index == q.index && p.Matches(q.value)
}

func (p Point) String() string {
	return fmt.Sprintf("{%d: %g}", p.index, p.value)
}
