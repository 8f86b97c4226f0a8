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

/*
Package periodic implements a uniform mesh on the periodic domain [0, 2π),
as used to sample momentum space, together with sub-selections of such a
mesh (patches) and mean-value quadrature over it.

A Mesh is immutable once built and may be shared between goroutines.
A Patch keeps a pointer to its parent, so the parent stays valid for as
long as the patch is reachable.
*/
package periodic

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/kmesh/mesh"
)

// Length is the length of the periodic domain.
const Length = 2 * math.Pi

// Make sure our types fulfill the interface.
var (
	_ mesh.Resolver = &Mesh{}
	_ mesh.Resolver = &Patch{}
)

// Mesh is a set of N equally spaced points i*Length/N, i in [0, N).
type Mesh struct {
	mesh.Grid
}

// New returns a mesh of n points.
func New(n int) (*Mesh, error) {
	if n <= 0 {
		return nil, fmt.Errorf("periodic: %d points: %w", n, mesh.ErrBadSize)
	}
	return &Mesh{
		Grid: mesh.NewGrid(n, func(i int) float64 {
			return float64(i) * Length / float64(n)
		}),
	}, nil
}

// Length returns the length of the domain covered by the mesh.
func (m *Mesh) Length() float64 { return Length }

// Spacing returns the distance between neighboring points.
func (m *Mesh) Spacing() float64 { return Length / float64(m.Len()) }

// Equal reports whether m and o hold the same points. A nil mesh equals
// only another nil mesh.
func (m *Mesh) Equal(o *Mesh) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.Len() == o.Len()
}

// Find returns the index of the mesh point nearest to x, and
// the offset of x from that point in units of the spacing.
// x must lie in [0, Length); otherwise found is false and the
// index and weight are zero. In builds with the kmeshdebug tag an
// x outside the domain panics instead.
func (m *Mesh) Find(x float64) (found bool, index int, weight float64) {
	n := m.Len()
	if !checkDomain("Find", x) {
		logger.WithFields(logrus.Fields{"x": x, "points": n}).
			Error("periodic: point is out of bounds [0, 2π)")
		return false, 0, 0
	}
	scaled := x / Length * float64(n)
	r := math.Round(scaled)
	if r < 0 || r > float64(n) {
		logger.WithFields(logrus.Fields{"x": x, "n": r, "points": n}).
			Error("periodic: point is out of bounds")
		return false, 0, 0
	}
	// The weight is taken before wrapping so it stays within [-0.5, 0.5].
	weight = scaled - r
	index = int(r)
	if index == n {
		index = 0
	}
	return true, index, weight
}

// Index returns the index of the mesh point nearest to x.
func (m *Mesh) Index(x float64) (int, error) {
	found, i, _ := m.Find(x)
	if !found {
		return 0, fmt.Errorf("periodic: coordinate %g: %w", x, mesh.ErrWrongIndex)
	}
	return i, nil
}

// PointIndex returns the index of p. If p was taken from this mesh its
// index is used directly; otherwise p's coordinate is resolved with Find.
func (m *Mesh) PointIndex(p mesh.Point) (int, error) {
	if m.Contains(p) {
		return p.Index(), nil
	}
	entry := logger.WithFields(logrus.Fields{"index": p.Index(), "value": p.Value()})
	if debug {
		entry.Warn("periodic: point not found on mesh, resolving by coordinate")
	} else {
		entry.Debug("periodic: point not found on mesh, resolving by coordinate")
	}
	return m.Index(p.Value())
}

// Shift translates x by delta and wraps the result into [0, Length).
func (m *Mesh) Shift(x, delta float64) float64 {
	checkDomain("Shift", x)
	out := x + delta
	out -= math.Floor(out/Length) * Length
	// Round-off in the reduction can leave out just outside the domain.
	if out < 0 {
		out += Length
	}
	if out >= Length {
		out = 0
	}
	return out
}

// ShiftPoint translates p by delta and returns the mesh point the
// result lands on.
func (m *Mesh) ShiftPoint(p mesh.Point, delta float64) (mesh.Point, error) {
	x := m.Shift(p.Value(), delta)
	found, i, _ := m.Find(x)
	if !found {
		return mesh.Point{}, fmt.Errorf("periodic: shifting %v by %g: %w", p, delta, mesh.ErrWrongIndex)
	}
	return m.At(i), nil
}
