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

// Package expr compiles textual functions of a single coordinate x,
// such as "cos(x) * cos(x) + mu", into Go functions.
package expr

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
	"github.com/spf13/cast"
)

// Func is a compiled expression of the variable x.
// The first evaluation error is kept and returned by Err; evaluations
// after it return NaN. A Func is not safe for concurrent use.
type Func struct {
	src    string
	e      *govaluate.EvaluableExpression
	params map[string]interface{}
	err    error
}

// Compile parses expression. Besides x, the expression may reference pi
// and any names given in params.
func Compile(expression string, params map[string]float64) (*Func, error) {
	e, err := govaluate.NewEvaluableExpressionWithFunctions(expression, functions)
	if err != nil {
		return nil, fmt.Errorf("expr: parsing %q: %v", expression, err)
	}
	f := &Func{
		src:    expression,
		e:      e,
		params: map[string]interface{}{"pi": math.Pi},
	}
	for k, v := range params {
		f.params[k] = v
	}
	return f, nil
}

// Eval evaluates the expression at x.
func (f *Func) Eval(x float64) float64 {
	if f.err != nil {
		return math.NaN()
	}
	f.params["x"] = x
	r, err := f.e.Evaluate(f.params)
	if err != nil {
		f.err = fmt.Errorf("expr: evaluating %q at x=%g: %v", f.src, x, err)
		return math.NaN()
	}
	v, err := cast.ToFloat64E(r)
	if err != nil {
		f.err = fmt.Errorf("expr: %q at x=%g: %v", f.src, x, err)
		return math.NaN()
	}
	return v
}

// Err returns the first error encountered by Eval.
func (f *Func) Err() error { return f.err }

func (f *Func) String() string { return f.src }

var functions = map[string]govaluate.ExpressionFunction{
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"tan":  unary(math.Tan),
	"exp":  unary(math.Exp),
	"log":  unary(math.Log),
	"sqrt": unary(math.Sqrt),
	"abs":  unary(math.Abs),
	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("pow takes 2 arguments, got %d", len(args))
		}
		a, err := cast.ToFloat64E(args[0])
		if err != nil {
			return nil, err
		}
		b, err := cast.ToFloat64E(args[1])
		if err != nil {
			return nil, err
		}
		return math.Pow(a, b), nil
	},
}

func unary(f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("function takes 1 argument, got %d", len(args))
		}
		v, err := cast.ToFloat64E(args[0])
		if err != nil {
			return nil, err
		}
		return f(v), nil
	}
}
