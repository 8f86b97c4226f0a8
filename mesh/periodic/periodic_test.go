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
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spatialmodel/kmesh/mesh"
	"github.com/spatialmodel/kmesh/numeric"
)

func TestNew(t *testing.T) {
	for _, n := range []int{0, -3} {
		if _, err := New(n); !errors.Is(err, mesh.ErrBadSize) {
			t.Errorf("New(%d): have error %v, want ErrBadSize", n, err)
		}
	}
	m, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 8 {
		t.Errorf("Len: %d != 8", m.Len())
	}
	if m.Value(0) != 0 {
		t.Errorf("first coordinate %g != 0", m.Value(0))
	}
	for i := 1; i < m.Len(); i++ {
		if !(m.Value(i) > m.Value(i-1)) {
			t.Errorf("coordinates not increasing at %d", i)
		}
		if !numeric.Equal(m.Value(i)-m.Value(i-1), m.Spacing(), 1e-14) {
			t.Errorf("spacing at %d: %g != %g", i, m.Value(i)-m.Value(i-1), m.Spacing())
		}
		if m.At(i).Index() != i {
			t.Errorf("point %d has index %d", i, m.At(i).Index())
		}
	}
	if last := m.Value(m.Len() - 1); last >= Length {
		t.Errorf("last coordinate %g outside domain", last)
	}
	if want := 3 * Length / 8; m.Value(3) != want {
		t.Errorf("coordinate 3: %g != %g", m.Value(3), want)
	}
}

func TestMeshEqual(t *testing.T) {
	a, err := New(6)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(6)
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(5)
	if err != nil {
		t.Fatal(err)
	}
	var none *Mesh
	tests := []struct {
		name string
		m, o *Mesh
		want bool
	}{
		{name: "same size", m: a, o: b, want: true},
		{name: "different size", m: a, o: c, want: false},
		{name: "nil argument", m: a, o: nil, want: false},
		{name: "nil receiver", m: none, o: a, want: false},
		{name: "both nil", m: none, o: nil, want: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if have := test.m.Equal(test.o); have != test.want {
				t.Errorf("Equal = %v, want %v", have, test.want)
			}
		})
	}
}

func TestFindRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 64, 1000} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			m, err := New(n)
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < n; i++ {
				found, index, weight := m.Find(m.Value(i))
				if !found {
					t.Fatalf("point %d not found", i)
				}
				if index != i {
					t.Errorf("point %d resolved to %d", i, index)
				}
				if !numeric.Equal(weight, 0.0, 1e-12) {
					t.Errorf("point %d weight %g", i, weight)
				}
			}
		})
	}
}

func TestFind(t *testing.T) {
	m, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	h := m.Spacing()
	tests := []struct {
		name   string
		x      float64
		found  bool
		index  int
		weight float64
	}{
		{name: "origin", x: 0, found: true, index: 0, weight: 0},
		{name: "below midpoint", x: 0.4 * h, found: true, index: 0, weight: 0.4},
		{name: "above midpoint", x: 1.6 * h, found: true, index: 2, weight: -0.4},
		{name: "wraps to origin", x: 3.7 * h, found: true, index: 0, weight: -0.3},
		{name: "negative", x: -0.1, found: false},
		{name: "domain end", x: Length, found: false},
		{name: "beyond domain", x: 10, found: false},
		{name: "NaN", x: math.NaN(), found: false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if !test.found {
				skipOutsideDomain(t)
			}
			found, index, weight := m.Find(test.x)
			if found != test.found {
				t.Fatalf("found: %v != %v", found, test.found)
			}
			if index != test.index {
				t.Errorf("index: %d != %d", index, test.index)
			}
			if !numeric.Equal(weight, test.weight, 1e-12) {
				t.Errorf("weight: %g != %g", weight, test.weight)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	m, err := New(16)
	if err != nil {
		t.Fatal(err)
	}
	i, err := m.Index(m.Value(5) + 0.1*m.Spacing())
	if err != nil {
		t.Fatal(err)
	}
	if i != 5 {
		t.Errorf("index %d != 5", i)
	}
	t.Run("outside domain", func(t *testing.T) {
		skipOutsideDomain(t)
		if _, err := m.Index(-1); !errors.Is(err, mesh.ErrWrongIndex) {
			t.Errorf("have error %v, want ErrWrongIndex", err)
		}
	})
}

// skipOutsideDomain skips checks of coordinates outside [0, Length),
// which panic in debug builds.
func skipOutsideDomain(t *testing.T) {
	t.Helper()
	if debug {
		t.Skip("coordinates outside the domain panic in debug builds")
	}
}

func TestPointIndex(t *testing.T) {
	m, err := New(10)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name  string
		p     mesh.Point
		index int
		err   error
	}{
		{name: "mesh point", p: m.At(7), index: 7},
		{name: "stale index", p: mesh.NewPoint(2, m.Value(7)), index: 7},
		{name: "index out of range", p: mesh.NewPoint(40, m.Value(3)), index: 3},
		{name: "from a finer mesh", p: mesh.NewPoint(1, m.Value(4)+1e-3), index: 4},
		{name: "outside domain", p: mesh.NewPoint(1, -2), err: mesh.ErrWrongIndex},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.err != nil {
				skipOutsideDomain(t)
			}
			i, err := m.PointIndex(test.p)
			if !errors.Is(err, test.err) {
				t.Fatalf("error: %v != %v", err, test.err)
			}
			if i != test.index {
				t.Errorf("index: %d != %d", i, test.index)
			}
		})
	}
}

func TestValue(t *testing.T) {
	m, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	samples := mesh.Slice[string]{"a", "b", "c", "d"}

	v, err := mesh.Value[string](m, samples, m.Value(2))
	if err != nil {
		t.Fatal(err)
	}
	if v != "c" {
		t.Errorf("value %q != c", v)
	}
	v, err = mesh.PointValue[string](m, samples, m.At(3))
	if err != nil {
		t.Fatal(err)
	}
	if v != "d" {
		t.Errorf("value %q != d", v)
	}
	t.Run("outside domain", func(t *testing.T) {
		skipOutsideDomain(t)
		if _, err := mesh.Value[string](m, samples, 7); !errors.Is(err, mesh.ErrWrongIndex) {
			t.Errorf("have error %v, want ErrWrongIndex", err)
		}
	})
	if _, err = mesh.Value[string](m, samples[:2], m.Value(3)); !errors.Is(err, mesh.ErrWrongIndex) {
		t.Errorf("short samples: have error %v, want ErrWrongIndex", err)
	}
}

func TestShift(t *testing.T) {
	m, err := New(6)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, delta, want float64
	}{
		{x: 1, delta: 0.5, want: 1.5},
		{x: 6, delta: 1, want: 7 - Length},
		{x: 0.5, delta: -1, want: Length - 0.5},
		{x: 0, delta: 3 * Length, want: 0},
		{x: 2, delta: -5 * Length, want: 2},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.x, test.delta), func(t *testing.T) {
			out := m.Shift(test.x, test.delta)
			if out < 0 || out >= Length {
				t.Fatalf("result %g outside domain", out)
			}
			if !samePeriodic(out, test.want, 1e-12) {
				t.Errorf("%g != %g", out, test.want)
			}
		})
	}
	// A shift that lands a hair below zero must not produce Length.
	if out := m.Shift(0, -1e-300); out < 0 || out >= Length {
		t.Errorf("result %g outside domain", out)
	}
}

// samePeriodic compares a and b as points of the periodic domain.
func samePeriodic(a, b, tol float64) bool {
	d := math.Mod(math.Abs(a-b), Length)
	return d < tol || Length-d < tol
}

func TestShiftPoint(t *testing.T) {
	for _, n := range []int{1, 5, 12} {
		m, err := New(n)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < n; i++ {
			for k := -2 * n; k <= 2*n; k++ {
				p, err := m.ShiftPoint(m.At(i), float64(k)*Length/float64(n))
				if err != nil {
					t.Fatalf("n=%d i=%d k=%d: %v", n, i, k, err)
				}
				want := ((i+k)%n + n) % n
				if p.Index() != want {
					t.Errorf("n=%d i=%d k=%d: index %d != %d", n, i, k, p.Index(), want)
				}
				if p.Value() != m.Value(want) {
					t.Errorf("n=%d i=%d k=%d: value %g is not the mesh coordinate %g",
						n, i, k, p.Value(), m.Value(want))
				}
			}
		}
	}
}

func TestIntegrate(t *testing.T) {
	t.Run("constant", func(t *testing.T) {
		for _, n := range []int{2, 3, 7, 100} {
			m, err := New(n)
			if err != nil {
				t.Fatal(err)
			}
			if v := Integrate(m, numeric.Constant[float64](0.25)); v != 0.25 {
				t.Errorf("n=%d: %g != 0.25", n, v)
			}
			if v := Integrate(m, numeric.Constant[float64](3.7)); !numeric.Equal(v, 3.7, 1e-12) {
				t.Errorf("n=%d: %g != 3.7", n, v)
			}
		}
	})
	t.Run("sin", func(t *testing.T) {
		m, err := New(4)
		if err != nil {
			t.Fatal(err)
		}
		if v := Integrate(m, math.Sin); !numeric.Equal(v, 0.0) {
			t.Errorf("%g != 0", v)
		}
	})
	t.Run("sin squared", func(t *testing.T) {
		m, err := New(16)
		if err != nil {
			t.Fatal(err)
		}
		v := Integrate(m, func(x float64) float64 { return math.Sin(x) * math.Sin(x) })
		if !numeric.Equal(v, 0.5, 1e-14) {
			t.Errorf("%g != 0.5", v)
		}
	})
	t.Run("complex", func(t *testing.T) {
		m, err := New(8)
		if err != nil {
			t.Fatal(err)
		}
		v := Integrate(m, func(x float64) complex128 {
			return complex(1, 0) + complex(math.Cos(x), math.Sin(x))
		})
		if !numeric.Equal(v, complex(1, 0), 1e-14) {
			t.Errorf("%g != 1", v)
		}
	})
	t.Run("extra argument", func(t *testing.T) {
		m, err := New(32)
		if err != nil {
			t.Fatal(err)
		}
		// Mean of cos²(x) + mu is 1/2 + mu.
		band := func(x float64, mu float64) float64 { return math.Cos(x)*math.Cos(x) + mu }
		if v := IntegrateWith(m, band, 0.3); !numeric.Equal(v, 0.8, 1e-14) {
			t.Errorf("%g != 0.8", v)
		}
	})
}

func TestIntegrateVec(t *testing.T) {
	m, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	v := IntegrateVec(m, func(x float64) []float64 {
		return []float64{1, math.Cos(x), math.Cos(x) * math.Cos(x)}
	})
	want := []float64{1, 0, 0.5}
	if len(v) != len(want) {
		t.Fatalf("length %d != %d", len(v), len(want))
	}
	for i := range want {
		if !numeric.Equal(v[i], want[i], 1e-14) {
			t.Errorf("element %d: %g != %g", i, v[i], want[i])
		}
	}
}

func TestDiagnostics(t *testing.T) {
	l, hook := logtest.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	SetLogger(l)
	defer SetLogger(logrus.StandardLogger())

	m, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	t.Run("out of domain", func(t *testing.T) {
		skipOutsideDomain(t)
		hook.Reset()
		if found, _, _ := m.Find(-1); found {
			t.Fatal("found a point outside the domain")
		}
		e := hook.LastEntry()
		if e == nil || e.Level != logrus.ErrorLevel {
			t.Fatalf("expected an error entry, got %v", e)
		}
		if e.Data["x"] != -1.0 {
			t.Errorf("logged x = %v", e.Data["x"])
		}
	})

	hook.Reset()
	if _, err := m.PointIndex(mesh.NewPoint(3, m.Value(1))); err != nil {
		t.Fatal(err)
	}
	want := logrus.DebugLevel
	if debug {
		want = logrus.WarnLevel
	}
	e := hook.LastEntry()
	if e == nil || e.Level != want {
		t.Fatalf("expected a %v entry, got %v", want, e)
	}

	hook.Reset()
	if _, err := m.PointIndex(m.At(1)); err != nil {
		t.Fatal(err)
	}
	if len(hook.Entries) != 0 {
		t.Errorf("mesh point logged %d entries", len(hook.Entries))
	}
}
