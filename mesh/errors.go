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

import "errors"

var (
	// ErrWrongIndex is returned when a coordinate or point cannot be
	// resolved to a valid index of a mesh or of a sample collection.
	ErrWrongIndex = errors.New("mesh: wrong index")

	// ErrBadSize is returned when a mesh is requested with fewer than one point.
	ErrBadSize = errors.New("mesh: number of points must be positive")
)
