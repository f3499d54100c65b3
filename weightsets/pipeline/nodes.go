// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/selectionsets/pkg/support/xslices"
	"github.com/gomlx/selectionsets/weightsets"
	"github.com/gomlx/selectionsets/weightsets/curves"
	"github.com/gomlx/selectionsets/weightsets/easing"
	"github.com/pkg/errors"
)

// WeightSet is an alias, to shorten the node definitions.
type WeightSet = weightsets.WeightSet

// RunFn computes the output of a node. size is the size of the pipeline, used by sources, inputs has
// exactly Node.Inputs sets, and params were merged with Node.Defaults.
type RunFn func(size int, inputs []*WeightSet, params Params) (*WeightSet, error)

// Node defines an operation that can be used in a pipeline.
type Node struct {
	// Name used in the pipeline "op" (or source "kind") field.
	Name string

	// Description is a one-line description, used in the help of the command line.
	Description string

	// Inputs is the number of input sets. Sources have 0 inputs.
	Inputs int

	// Defaults holds every parameter accepted by the node with its default value.
	Defaults Params

	Run RunFn
}

// IsSource returns whether the node creates a set without inputs.
func (n *Node) IsSource() bool { return n.Inputs == 0 }

var registeredNodes = make(map[string]*Node)

// Register a node, making it available to pipelines.
//
// It panics if a node with the same name was already registered. To be safe, call Register during
// initialization of a package.
func Register(node *Node) {
	if _, found := registeredNodes[node.Name]; found {
		exceptions.Panicf("pipeline node %q registered twice", node.Name)
	}
	if node.Defaults == nil {
		node.Defaults = Params{}
	}
	registeredNodes[node.Name] = node
}

// Lookup returns the node registered with name, or nil if there is none.
func Lookup(name string) *Node {
	return registeredNodes[name]
}

// List returns the names of the registered nodes, sorted.
func List() []string {
	return xslices.SortedKeys(registeredNodes)
}

// unary adapts a single input operation.
func unary(fn func(v *WeightSet, p Params) (*WeightSet, error)) RunFn {
	return func(_ int, inputs []*WeightSet, p Params) (*WeightSet, error) {
		return fn(inputs[0], p)
	}
}

// binary adapts an operation on two sets without parameters.
func binary(fn func(a, b *WeightSet) (*WeightSet, error)) RunFn {
	return func(_ int, inputs []*WeightSet, _ Params) (*WeightSet, error) {
		return fn(inputs[0], inputs[1])
	}
}

// withScalar adapts an operation of a set and the "value" parameter.
func withScalar(fn func(v *WeightSet, k float32) (*WeightSet, error)) RunFn {
	return unary(func(v *WeightSet, p Params) (*WeightSet, error) {
		return fn(v, p.Float("value"))
	})
}

func init() {
	// Sources.
	Register(&Node{
		Name: "zeros", Description: "all weights set to 0",
		Run: func(size int, _ []*WeightSet, _ Params) (*WeightSet, error) {
			return weightsets.New(size)
		},
	})
	Register(&Node{
		Name: "constant", Description: "all weights set to value",
		Defaults: Params{"value": 0.0},
		Run: func(size int, _ []*WeightSet, p Params) (*WeightSet, error) {
			return weightsets.FromValues(xslices.SliceWithValue(size, p.Float("value"))...), nil
		},
	})
	Register(&Node{
		Name: "ramp", Description: "weights evenly spaced from min to max",
		Defaults: Params{"min": 0.0, "max": 1.0},
		Run: func(size int, _ []*WeightSet, p Params) (*WeightSet, error) {
			return weightsets.FromValues(xslices.Linspace(p.Float("min"), p.Float("max"), size)...), nil
		},
	})
	Register(&Node{
		Name: "random", Description: "weights drawn uniformly in [min, max] from a stream seeded with seed",
		Defaults: Params{"min": 0.0, "max": 1.0, "seed": 0},
		Run: func(size int, _ []*WeightSet, p Params) (*WeightSet, error) {
			zeros, err := weightsets.New(size)
			if err != nil {
				return nil, err
			}
			return weightsets.Randomize(zeros, weightsets.NewRandomStream(uint64(p.Int("seed"))), p.Float("min"), p.Float("max"))
		},
	})

	// Arithmetic.
	Register(&Node{Name: "add", Description: "a + b", Inputs: 2, Run: binary(weightsets.Add)})
	Register(&Node{Name: "subtract", Description: "a - b", Inputs: 2, Run: binary(weightsets.Subtract)})
	Register(&Node{Name: "multiply", Description: "a * b", Inputs: 2, Run: binary(weightsets.Multiply)})
	Register(&Node{Name: "divide", Description: "a / b, not guarded against zeros", Inputs: 2, Run: binary(weightsets.Divide)})
	Register(&Node{Name: "min", Description: "min(a, b)", Inputs: 2, Run: binary(weightsets.Min)})
	Register(&Node{Name: "max", Description: "max(a, b)", Inputs: 2, Run: binary(weightsets.Max)})
	Register(&Node{Name: "add_scalar", Description: "x + value", Inputs: 1,
		Defaults: Params{"value": 0.0}, Run: withScalar(weightsets.AddScalar)})
	Register(&Node{Name: "subtract_scalar", Description: "x - value", Inputs: 1,
		Defaults: Params{"value": 0.0}, Run: withScalar(weightsets.SubtractScalar)})
	Register(&Node{Name: "subtract_from_scalar", Description: "value - x", Inputs: 1,
		Defaults: Params{"value": 0.0},
		Run: withScalar(func(v *WeightSet, k float32) (*WeightSet, error) {
			return weightsets.SubtractFromScalar(k, v)
		})})
	Register(&Node{Name: "multiply_scalar", Description: "x * value", Inputs: 1,
		Defaults: Params{"value": 1.0}, Run: withScalar(weightsets.MultiplyByScalar)})
	Register(&Node{Name: "divide_by_scalar", Description: "x / value, value must not be 0", Inputs: 1,
		Defaults: Params{"value": 1.0}, Run: withScalar(weightsets.DivideByScalar)})
	Register(&Node{Name: "divide_scalar_by", Description: "value / x, with |x| < 0.01 replaced by ±0.01", Inputs: 1,
		Defaults: Params{"value": 1.0},
		Run: withScalar(func(v *WeightSet, k float32) (*WeightSet, error) {
			return weightsets.DivideScalarBy(k, v)
		})})
	Register(&Node{Name: "min_scalar", Description: "min(x, value)", Inputs: 1,
		Defaults: Params{"value": 0.0}, Run: withScalar(weightsets.MinScalar)})
	Register(&Node{Name: "max_scalar", Description: "max(x, value)", Inputs: 1,
		Defaults: Params{"value": 0.0}, Run: withScalar(weightsets.MaxScalar)})
	Register(&Node{Name: "one_minus", Description: "1 - x", Inputs: 1,
		Run: unary(func(v *WeightSet, _ Params) (*WeightSet, error) { return weightsets.OneMinus(v) })})
	Register(&Node{Name: "set", Description: "all weights set to value, keeping the size of the input", Inputs: 1,
		Defaults: Params{"value": 0.0}, Run: withScalar(weightsets.Set)})
	Register(&Node{Name: "clamp", Description: "x limited to [min, max]", Inputs: 1,
		Defaults: Params{"min": 0.0, "max": 1.0},
		Run: unary(func(v *WeightSet, p Params) (*WeightSet, error) {
			return weightsets.Clamp(v, p.Float("min"), p.Float("max"))
		})})
	Register(&Node{Name: "randomize", Description: "weights drawn uniformly in [min, max], keeping the size of the input", Inputs: 1,
		Defaults: Params{"min": 0.0, "max": 1.0, "seed": 0},
		Run: unary(func(v *WeightSet, p Params) (*WeightSet, error) {
			return weightsets.Randomize(v, weightsets.NewRandomStream(uint64(p.Int("seed"))), p.Float("min"), p.Float("max"))
		})})

	// Blending and easing.
	Register(&Node{Name: "lerp", Description: "a + (b-a)*alpha", Inputs: 2,
		Defaults: Params{"alpha": 0.0},
		Run: func(_ int, inputs []*WeightSet, p Params) (*WeightSet, error) {
			return weightsets.Lerp(inputs[0], inputs[1], p.Float("alpha"))
		}})
	Register(&Node{Name: "lerp_by_set", Description: "a + (b-a)*alpha, with alpha the third input", Inputs: 3,
		Run: func(_ int, inputs []*WeightSet, _ Params) (*WeightSet, error) {
			return weightsets.LerpBySet(inputs[0], inputs[1], inputs[2])
		}})
	Register(&Node{Name: "lerp_scalar", Description: "x + (value-x)*alpha", Inputs: 1,
		Defaults: Params{"value": 0.0, "alpha": 0.0},
		Run: unary(func(v *WeightSet, p Params) (*WeightSet, error) {
			return weightsets.LerpScalar(v, p.Float("value"), p.Float("alpha"))
		})})
	Register(&Node{Name: "ease", Description: "easing curve kind applied to x", Inputs: 1,
		Defaults: Params{"kind": easing.Linear.String(), "steps": 2, "exponent": 2.0},
		Run: unary(func(v *WeightSet, p Params) (*WeightSet, error) {
			var kind easing.Kind
			if err := p.Decode("kind", &kind); err != nil {
				return nil, errors.WithMessagef(err, "valid kinds are %q", easing.KindStrings())
			}
			return weightsets.Ease(v, kind, p.Int("steps"), p.Float("exponent"))
		})})

	// Remapping.
	Register(&Node{Name: "remap_to_range", Description: "x rescaled linearly so the weights span [min, max]", Inputs: 1,
		Defaults: Params{"min": 0.0, "max": 1.0},
		Run: unary(func(v *WeightSet, p Params) (*WeightSet, error) {
			return weightsets.RemapToRange(v, p.Float("min"), p.Float("max"))
		})})
	Register(&Node{Name: "ripple", Description: "x repeated ripples times, as a sawtooth or a triangle wave if up_and_down", Inputs: 1,
		Defaults: Params{"ripples": 4, "up_and_down": true},
		Run: unary(func(v *WeightSet, p Params) (*WeightSet, error) {
			return weightsets.RemapRipple(v, p.Int("ripples"), p.Bool("up_and_down"))
		})})
	Register(&Node{Name: "remap_to_curve", Description: "x mapped through a key framed curve, or a B-spline if mode is \"bspline\"", Inputs: 1,
		Defaults: Params{
			"mode":           curves.Linear.String(),
			"keys":           []any{[]any{0.0, 0.0}, []any{1.0, 1.0}},
			"degree":         3,
			"control_points": []any{0.0, 1.0 / 3, 2.0 / 3, 1.0},
		},
		Run: unary(func(v *WeightSet, p Params) (*WeightSet, error) {
			curve, err := curveFromParams(p)
			if err != nil {
				return nil, err
			}
			return weightsets.RemapToCurve(v, curve)
		})})
}

// curveFromParams builds the curve for the remap_to_curve node.
func curveFromParams(p Params) (weightsets.Curve, error) {
	if p.Text("mode") == "bspline" {
		controlPoints, err := p.Floats("control_points")
		if err != nil {
			return nil, err
		}
		return curves.NewBSpline(p.Int("degree"), 0, 1, controlPoints)
	}
	var mode curves.Mode
	if err := p.Decode("mode", &mode); err != nil {
		return nil, errors.WithMessagef(err, "valid modes are %q and \"bspline\"", curves.ModeStrings())
	}
	pairs, err := p.Pairs("keys")
	if err != nil {
		return nil, err
	}
	keys := xslices.Map(pairs, func(pair [2]float64) curves.Key {
		return curves.Key{T: float32(pair[0]), Value: float32(pair[1])}
	})
	return curves.NewKeyed(mode, keys...)
}
