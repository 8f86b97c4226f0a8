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

/*Package mesh defines the point, grid and lookup contracts shared by
one-dimensional meshes.*/
package mesh

// Make sure the grid fulfills the interface.
var _ Mesh = Grid{}

// Mesh describes a one-dimensional ordered mesh.
type Mesh interface {
	// Len is the total number of points in this Mesh.
	Len() int

	// At returns the point stored at position i (where i < Len()).
	At(i int) Point
}

// Resolver is a Mesh that can translate coordinates and points
// into positions in its own storage order.
type Resolver interface {
	Mesh

	// Index returns the storage position of the coordinate x.
	// It returns an error wrapping ErrWrongIndex if x does not
	// resolve to a point of the mesh.
	Index(x float64) (int, error)

	// PointIndex returns the storage position of p.
	// It returns an error wrapping ErrWrongIndex if p does not
	// resolve to a point of the mesh.
	PointIndex(p Point) (int, error)
}
