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
	"fmt"

	"github.com/spatialmodel/kmesh/mesh"
)

// Patch is a read-only selection of points from a parent mesh, stored in
// its own order. The points keep their parent indices; positions in the
// patch are found with Index and PointIndex.
type Patch struct {
	mesh.Grid

	parent *Mesh

	// local maps a parent index to a position in the patch.
	local map[int]int
}

// NewPatch returns a patch holding the parent points at the given indices,
// in the given order. Indices may repeat; a repeated point resolves to its
// last position.
func NewPatch(parent *Mesh, indices []int) (*Patch, error) {
	points := make([]mesh.Point, len(indices))
	for i, pi := range indices {
		if pi < 0 || pi >= parent.Len() {
			return nil, fmt.Errorf("periodic: patch index %d of %d-point mesh: %w",
				pi, parent.Len(), mesh.ErrWrongIndex)
		}
		points[i] = parent.At(pi)
	}
	p := &Patch{Grid: mesh.GridFromPoints(points), parent: parent}
	p.build()
	return p, nil
}

// FullPatch returns a patch holding every point of parent in parent order.
func FullPatch(parent *Mesh) *Patch {
	p := &Patch{Grid: mesh.GridFromPoints(parent.Points()), parent: parent}
	p.build()
	return p
}

// build fills the reverse index.
func (p *Patch) build() {
	p.local = make(map[int]int, p.Len())
	for i := 0; i < p.Len(); i++ {
		p.local[p.At(i).Index()] = i
	}
}

// Parent returns the mesh the patch was taken from.
func (p *Patch) Parent() *Mesh { return p.parent }

// Contains reports whether pt is a point of the parent mesh selected by p.
func (p *Patch) Contains(pt mesh.Point) bool {
	_, ok := p.local[pt.Index()]
	return ok && p.parent.Contains(pt)
}

// Index returns the position in the patch of the point nearest to x,
// which is resolved on the parent mesh.

func (p *Patch) Index(x float64) (int, error) {
	pi, err := p.parent.Index(x)
	if err != nil {
		return 0, err
	}
	return p.position(pi)
}

// PointIndex returns the position in the patch of the parent point p.
func (p *Patch) PointIndex(pt mesh.Point) (int, error) {
	pi, err := p.parent.PointIndex(pt)
	if err != nil {
		return 0, err
	}
	return p.position(pi)
}

func (p *Patch) position(parentIndex int) (int, error) {
	i, ok := p.local[parentIndex]
	if !ok {
		return 0, fmt.Errorf("periodic: parent point %d is not in patch: %w", parentIndex, mesh.ErrWrongIndex)
	}
	return i, nil
}
