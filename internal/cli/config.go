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

// Package cli implements the kmesh command line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// Config holds the settings shared by all commands.
type Config struct {
	Points   int
	LogLevel string

	// Expr is a function of the coordinate x, and Params are
	// additional named constants it may reference.
	Expr   string
	Params map[string]float64

	// X is the coordinate to look up.
	X float64

	// Index is the mesh index of the point to shift, by Delta
	// plus Steps mesh spacings.
	Index int
	Delta float64
	Steps int

	// Indices selects the parent points of a patch.
	Indices []int

	// XLSX and PNG are output files for sampled values.
	XLSX, PNG string
}

// loadConfig layers, from lowest to highest priority, flag defaults, the
// TOML file named by the config flag, and flags set on the command line.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	if file, err := cmd.Flags().GetString("config"); err == nil && file != "" {
		var raw map[string]interface{}
		if _, err := toml.DecodeFile(file, &raw); err != nil {
			return nil, fmt.Errorf("kmesh: reading configuration file: %v", err)
		}
		for k, val := range raw {
			v.SetDefault(k, val)
		}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	cfg := &Config{
		Points:   v.GetInt("points"),
		LogLevel: v.GetString("log-level"),
		Expr:     v.GetString("expr"),
		X:        v.GetFloat64("x"),
		Index:    v.GetInt("index"),
		Delta:    v.GetFloat64("delta"),
		Steps:    v.GetInt("steps"),
		XLSX:     v.GetString("xlsx"),
		PNG:      v.GetString("png"),
	}
	var err error
	if cfg.Indices, err = intList(v.Get("indices")); err != nil {
		return nil, fmt.Errorf("kmesh: indices: %v", err)
	}
	if cfg.Params, err = floatMap(v.Get("params")); err != nil {
		return nil, fmt.Errorf("kmesh: params: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("kmesh: %v", err)
	}
	logrus.SetLevel(level)
	logrus.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"points":  cfg.Points,
	}).Debug("kmesh: configuration loaded")
	return cfg, nil
}

// intList accepts a comma-separated string (from a flag) or a list
// (from a configuration file).
func intList(v interface{}) ([]int, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		t = strings.Trim(strings.TrimSpace(t), "[]")
		if t == "" {
			return nil, nil
		}
		parts := strings.Split(t, ",")
		o := make([]int, len(parts))
		for i, p := range parts {
			n, err := cast.ToIntE(strings.TrimSpace(p))
			if err != nil {
				return nil, err
			}
			o[i] = n
		}
		return o, nil
	default:
		return cast.ToIntSliceE(v)
	}
}

func floatMap(v interface{}) (map[string]float64, error) {
	if v == nil {
		return nil, nil
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return nil, err
	}
	o := make(map[string]float64, len(m))
	for k, val := range m {
		if o[k], err = cast.ToFloat64E(val); err != nil {
			return nil, fmt.Errorf("%s: %v", k, err)
		}
	}
	return o, nil
}
