// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"encoding"
	"fmt"
	"math"

	"github.com/gomlx/selectionsets/pkg/support/xslices"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Params holds the static parameters of a node, as decoded from YAML: numbers are int or float64,
// and lists are []any.
type Params map[string]any

// withDefaults returns a copy of defaults overwritten by p. It fails if p has a parameter not in defaults,
// or if its type doesn't match the default's.
func (p Params) withDefaults(defaults Params) (Params, error) {
	merged := make(Params, len(defaults))
	for key, value := range defaults {
		merged[key] = value
	}
	for _, key := range xslices.SortedKeys(p) {
		value := p[key]
		defaultValue, found := defaults[key]
		if !found {
			return nil, errors.Errorf("unknown parameter %q, valid parameters are %q", key, xslices.SortedKeys(defaults))
		}
		if !compatible(defaultValue, value) {
			return nil, errors.Errorf("parameter %q must be of type %s, got %v (%T)", key, kindOf(defaultValue), value, value)
		}
		merged[key] = value
	}
	return merged, nil
}

// kindOf names the kind of value, as used in error messages.
func kindOf(value any) string {
	switch value.(type) {
	case int, float64:
		return "number"
	case bool:
		return "bool"
	case string:
		return "string"
	case []any:
		return "list"
	default:
		return fmt.Sprintf("%T", value)
	}
}

// compatible checks whether value can be used where defaultValue is expected. Numbers are interchangeable,
// except that integer parameters only accept whole numbers. String parameters also accept enum values
// that marshal to text, e.g.: easing.Kind.
func compatible(defaultValue, value any) bool {
	if _, isString := defaultValue.(string); isString {
		if _, isText := value.(encoding.TextMarshaler); isText {
			return true
		}
	}
	if _, isInt := defaultValue.(int); isInt {
		_, err := toInt(value)
		return err == nil
	}
	return kindOf(defaultValue) == kindOf(value)
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return 0, errors.Errorf("%v (%T) is not a number", value, value)
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		if v == math.Trunc(v) {
			return int(v), nil
		}
	}
	return 0, errors.Errorf("%v (%T) is not an integer", value, value)
}

// Float returns the parameter key as a float32. The parameters must have been merged with the node
// defaults, so the parameter exists and has the right type.
func (p Params) Float(key string) float32 {
	v, _ := toFloat(p[key])
	return float32(v)
}

// Int returns the parameter key as an int.
func (p Params) Int(key string) int {
	v, _ := toInt(p[key])
	return v
}

// Bool returns the parameter key as a bool.
func (p Params) Bool(key string) bool {
	v, _ := p[key].(bool)
	return v
}

// Text returns the string parameter key.
func (p Params) Text(key string) string {
	v, _ := p[key].(string)
	return v
}

// Decode decodes the parameter key into target with YAML, so types implementing a YAML unmarshaler
// (e.g.: easing.Kind) can be read from their names.
func (p Params) Decode(key string, target any) error {
	var node yaml.Node
	if err := node.Encode(p[key]); err != nil {
		return errors.Wrapf(err, "failed to encode parameter %q", key)
	}
	if err := node.Decode(target); err != nil {
		return errors.Wrapf(err, "invalid parameter %q", key)
	}
	return nil
}

// Floats returns the list parameter key as a slice of float64.
func (p Params) Floats(key string) ([]float64, error) {
	list, _ := p[key].([]any)
	values := make([]float64, len(list))
	for ii, element := range list {
		var err error
		values[ii], err = toFloat(element)
		if err != nil {
			return nil, errors.WithMessagef(err, "parameter %q element #%d", key, ii)
		}
	}
	return values, nil
}

// Pairs returns the list parameter key, whose elements are 2-element lists of numbers, e.g.: [[0, 0], [1, 0.5]].
func (p Params) Pairs(key string) ([][2]float64, error) {
	list, _ := p[key].([]any)
	pairs := make([][2]float64, len(list))
	for ii, element := range list {
		pair, ok := element.([]any)
		if !ok || len(pair) != 2 {
			return nil, errors.Errorf("parameter %q element #%d must be a pair of numbers, got %v", key, ii, element)
		}
		for jj := range 2 {
			var err error
			pairs[ii][jj], err = toFloat(pair[jj])
			if err != nil {
				return nil, errors.WithMessagef(err, "parameter %q element #%d", key, ii)
			}
		}
	}
	return pairs, nil
}
