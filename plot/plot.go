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

/*Package plot turns sampled mesh functions into series for gonum/plot.*/
package plot

import (
	"fmt"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/spatialmodel/kmesh/mesh"
)

// XYs implements the gonum.org/v1/plot/plotter.XYer interface.
type XYs []XY

// XY is an x and y value.
type XY struct{ X, Y float64 }

// Len returns the number of X,Y pairs.
func (xys XYs) Len() int {
	return len(xys)
}

// XY return the x and y values at index i, where i < Len()
func (xys XYs) XY(i int) (float64, float64) {
	return xys[i].X, xys[i].Y
}

// FromMesh pairs each coordinate of m with the sample stored at the same
// position. The number of samples must equal the number of mesh points.
func FromMesh(m mesh.Mesh, s mesh.Samples[float64]) (XYs, error) {
	if m.Len() != s.Len() {
		return nil, fmt.Errorf("plot: %d samples for %d mesh points: %w", s.Len(), m.Len(), mesh.ErrWrongIndex)
	}
	o := make(XYs, m.Len())
	for i := range o {
		o[i].X = m.At(i).Value()
		o[i].Y = s.At(i)
	}
	return o, nil
}

// Save draws xys as a line with point markers and writes it to file.
// The image format is chosen from the file extension.
func Save(file, title string, xys XYs) error {
	p, err := gplot.New()
	if err != nil {
		return err
	}
	p.Title.Text = title
	p.X.Label.Text = "k"
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	p.Add(line, points)
	if err := p.Save(5*vg.Inch, 3*vg.Inch, file); err != nil {
		return fmt.Errorf("plot: saving %s: %w", file, err)
	}
	return nil
}
