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

package cli

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx"

	"github.com/spatialmodel/kmesh/internal/expr"
	"github.com/spatialmodel/kmesh/mesh"
	"github.com/spatialmodel/kmesh/mesh/periodic"
	"github.com/spatialmodel/kmesh/plot"
)

// meshes are shared between the commands run by one process.
var meshes = periodic.NewCache(16)

// NewRootCommand returns the kmesh command and its subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "kmesh",
		Short: "Locate, shift, sample and integrate on periodic k-space meshes.",
		Long: `kmesh works with uniform meshes of N points on the periodic domain [0, 2π).
Settings can be given as flags or in a TOML file named by --config;
flags set on the command line take precedence.`,
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.String("config", "", "path to a TOML configuration file")
	pf.String("log-level", "info", "logging level (debug, info, warn, error)")
	pf.Int("points", 64, "number of mesh points")

	find := &cobra.Command{
		Use:   "find",
		Short: "Find the mesh point nearest to a coordinate.",
		RunE:  runFind,
	}
	find.Flags().Float64("x", 0, "coordinate in [0, 2π)")

	shift := &cobra.Command{
		Use:   "shift",
		Short: "Shift a mesh point periodically.",
		RunE:  runShift,
	}
	shift.Flags().Int("index", 0, "index of the point to shift")
	shift.Flags().Float64("delta", 0, "shift in coordinate units")
	shift.Flags().Int("steps", 0, "shift in mesh spacings, added to delta")

	integrate := &cobra.Command{
		Use:   "integrate",
		Short: "Average a function of x over the mesh.",
		RunE:  runIntegrate,
	}
	integrate.Flags().String("expr", "", "function of x, e.g. \"cos(x)*cos(x)\"")

	patch := &cobra.Command{
		Use:   "patch",
		Short: "Sample a function on a selection of mesh points.",
		RunE:  runPatch,
	}
	patch.Flags().String("expr", "", "function of x")
	patch.Flags().String("indices", "", "comma-separated parent indices; all points if empty")

	sample := &cobra.Command{
		Use:   "sample",
		Short: "Sample a function on the mesh and write it out.",
		RunE:  runSample,
	}
	sample.Flags().String("expr", "", "function of x")
	sample.Flags().String("xlsx", "", "write samples to this spreadsheet")
	sample.Flags().String("png", "", "plot samples to this image file")

	root.AddCommand(find, shift, integrate, patch, sample)
	return root
}

func setup(cmd *cobra.Command) (*Config, *periodic.Mesh, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	m, err := meshes.Get(cfg.Points)
	if err != nil {
		return nil, nil, err
	}
	return cfg, m, nil
}

func compile(cfg *Config) (*expr.Func, error) {
	if cfg.Expr == "" {
		return nil, fmt.Errorf("kmesh: an expression is required")
	}
	return expr.Compile(cfg.Expr, cfg.Params)
}

func runFind(cmd *cobra.Command, _ []string) error {
	cfg, m, err := setup(cmd)
	if err != nil {
		return err
	}
	if math.IsNaN(cfg.X) || cfg.X < 0 || cfg.X >= periodic.Length {
		return fmt.Errorf("kmesh: %g: %w", cfg.X, mesh.ErrWrongIndex)
	}
	found, i, w := m.Find(cfg.X)
	if !found {
		return fmt.Errorf("kmesh: %g: %w", cfg.X, mesh.ErrWrongIndex)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "index %d\tk %.10g\tweight %.6g\n", i, m.Value(i), w)
	return nil
}

func runShift(cmd *cobra.Command, _ []string) error {
	cfg, m, err := setup(cmd)
	if err != nil {
		return err
	}
	if cfg.Index < 0 || cfg.Index >= m.Len() {
		return fmt.Errorf("kmesh: point %d of %d: %w", cfg.Index, m.Len(), mesh.ErrWrongIndex)
	}
	delta := cfg.Delta + float64(cfg.Steps)*m.Spacing()
	p, err := m.ShiftPoint(m.At(cfg.Index), delta)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "index %d\tk %.10g\n", p.Index(), p.Value())
	return nil
}

func runIntegrate(cmd *cobra.Command, _ []string) error {
	cfg, m, err := setup(cmd)
	if err != nil {
		return err
	}
	f, err := compile(cfg)
	if err != nil {
		return err
	}
	mean := periodic.Integrate(m, f.Eval)
	if err := f.Err(); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"expr": f, "points": m.Len()}).Info("kmesh: integrated")
	fmt.Fprintf(cmd.OutOrStdout(), "mean %.12g\tintegral %.12g\n", mean, mean*m.Length())
	return nil
}

func runPatch(cmd *cobra.Command, _ []string) error {
	cfg, m, err := setup(cmd)
	if err != nil {
		return err
	}
	f, err := compile(cfg)
	if err != nil {
		return err
	}
	p := periodic.FullPatch(m)
	if len(cfg.Indices) > 0 {
		if p, err = periodic.NewPatch(m, cfg.Indices); err != nil {
			return err
		}
	}
	values := make(mesh.Slice[float64], p.Len())
	for j := range values {
		values[j] = f.Eval(p.Value(j))
	}
	if err := f.Err(); err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "local\tparent\tk\tf(k)")
	for j := 0; j < p.Len(); j++ {
		// Read back through the reverse index, so repeated points
		// report the value at their resolved position.
		pt := p.At(j)
		v, err := mesh.PointValue[float64](p, values, pt)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%d\t%.10g\t%.10g\n", j, pt.Index(), pt.Value(), v)
	}
	return w.Flush()
}

func runSample(cmd *cobra.Command, _ []string) error {
	cfg, m, err := setup(cmd)
	if err != nil {
		return err
	}
	f, err := compile(cfg)
	if err != nil {
		return err
	}
	values := make(mesh.Slice[float64], m.Len())
	for i := range values {
		values[i] = f.Eval(m.Value(i))
	}
	if err := f.Err(); err != nil {
		return err
	}
	if cfg.XLSX != "" {
		if err := writeXLSX(cfg.XLSX, m, values); err != nil {
			return err
		}
	}
	if cfg.PNG != "" {
		xys, err := plot.FromMesh(m, values)
		if err != nil {
			return err
		}
		if err := plot.Save(cfg.PNG, f.String(), xys); err != nil {
			return err
		}
	}
	if cfg.XLSX == "" && cfg.PNG == "" {
		return writeTable(cmd.OutOrStdout(), m, values)
	}
	return nil
}

func writeTable(out io.Writer, m *periodic.Mesh, values mesh.Slice[float64]) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "index\tk\tf(k)")
	for i, v := range values {
		fmt.Fprintf(w, "%d\t%.10g\t%.10g\n", i, m.Value(i), v)
	}
	return w.Flush()
}

func writeXLSX(file string, m *periodic.Mesh, values mesh.Slice[float64]) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("samples")
	if err != nil {
		return err
	}
	header := sheet.AddRow()
	for _, h := range []string{"index", "k", "f(k)"} {
		header.AddCell().SetString(h)
	}
	for i, v := range values {
		row := sheet.AddRow()
		row.AddCell().SetInt(i)
		row.AddCell().SetFloat(m.Value(i))
		row.AddCell().SetFloat(v)
	}
	if err := f.Save(file); err != nil {
		return fmt.Errorf("kmesh: writing %s: %v", file, err)
	}
	return nil
}
