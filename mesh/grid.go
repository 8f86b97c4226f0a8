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

// Grid is an ordered, immutable sequence of points. The point at position i
// carries index i unless the grid was assembled from points of another grid.
type Grid struct {
	points []Point
}

// NewGrid returns a grid of n points whose coordinates are
// given by coord(i) for i in [0, n).
func NewGrid(n int, coord func(i int) float64) Grid {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{index: i, value: coord(i)}
	}
	return Grid{points: points}
}

// GridFromPoints returns a grid holding copies of points, in order.
func GridFromPoints(points []Point) Grid {
	return Grid{points: append([]Point(nil), points...)}
}

// Len returns the number of points in the grid.
func (g Grid) Len() int { return len(g.points) }

// At returns the point at position i. It panics if i is out of range.
func (g Grid) At(i int) Point { return g.points[i] }

// Value returns the coordinate at position i. It panics if i is out of range.
func (g Grid) Value(i int) float64 { return g.points[i].value }

// Points returns a copy of the points in the grid.
func (g Grid) Points() []Point {
	return append([]Point(nil), g.points...)
}

// Values returns a copy of the coordinates in the grid.
func (g Grid) Values() []float64 {
	o := make([]float64, len(g.points))
	for i, p := range g.points {
		o[i] = p.value
	}
	return o
}

// Contains reports whether p's index is a position in the grid and
// the coordinate stored there matches p's coordinate.
func (g Grid) Contains(p Point) bool {
	return p.index >= 0 && p.index < len(g.points) && g.points[p.index].Matches(p.value)
}
