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

package plot

import (
	"errors"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spatialmodel/kmesh/mesh"
	"github.com/spatialmodel/kmesh/mesh/periodic"
)

func TestFromMesh(t *testing.T) {
	m, err := periodic.New(4)
	if err != nil {
		t.Fatal(err)
	}
	xys, err := FromMesh(m, mesh.Slice[float64]{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	want := XYs{{0, 1}, {math.Pi / 2, 2}, {math.Pi, 3}, {3 * math.Pi / 2, 4}}
	if !reflect.DeepEqual(xys, want) {
		t.Errorf("%v != %v", xys, want)
	}
	if x, y := xys.XY(2); x != math.Pi || y != 3 {
		t.Errorf("XY(2) = %g, %g", x, y)
	}
	if _, err := FromMesh(m, mesh.Slice[float64]{1}); !errors.Is(err, mesh.ErrWrongIndex) {
		t.Errorf("have error %v, want ErrWrongIndex", err)
	}
}

func TestSave(t *testing.T) {
	dir, err := ioutil.TempDir("", "kmeshplot")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	file := filepath.Join(dir, "band.png")
	if err := Save(file, "band", XYs{{0, 0}, {1, 1}, {2, 0}}); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(file); err != nil || fi.Size() == 0 {
		t.Errorf("plot not written: %v", err)
	}
}
