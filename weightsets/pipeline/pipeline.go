// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package pipeline builds and runs graphs of weightsets operations described in YAML.
//
// A pipeline has a size, shared by all its sets, a list of named sources and a list of steps. Each step
// applies a registered Node to previously defined sets, and names its output. Example:
//
//	size: 5
//	sources:
//	  - name: ramp
//	    kind: ramp
//	  - name: noise
//	    kind: random
//	    params: {max: 0.1, seed: 42}
//	steps:
//	  - op: add
//	    inputs: [ramp, noise]
//	    output: noisy
//	  - op: ease
//	    inputs: [noisy]
//	    params: {kind: ease_in_out, exponent: 3}
//	    output: eased
//
// Parameters not given take the default value of the node, see List and Lookup for the registered nodes.
package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/gomlx/selectionsets/pkg/support/fsutil"
	"github.com/gomlx/selectionsets/pkg/support/sets"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

// Source creates a named set from a source node ("zeros", "constant", "ramp" or "random").
type Source struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Params Params `yaml:"params,omitempty"`
}

// Step applies the node Op to Inputs, and names the result Output.
type Step struct {
	Op     string   `yaml:"op"`
	Inputs []string `yaml:"inputs,omitempty"`
	Params Params   `yaml:"params,omitempty"`
	Output string   `yaml:"output"`
}

// Pipeline is a sequence of operations over weight sets of the same size.
type Pipeline struct {
	Size    int      `yaml:"size"`
	Sources []Source `yaml:"sources"`
	Steps   []Step   `yaml:"steps"`
}

// task is a validated source or step, ready to run.
type task struct {
	description string
	node        *Node
	inputs      []string
	params      Params
	output      string
}

// Parse decodes and validates a pipeline in YAML. Unknown fields are an error.
func Parse(data []byte) (*Pipeline, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	p := &Pipeline{}
	if err := decoder.Decode(p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty pipeline")
		}
		return nil, errors.Wrap(err, "failed to parse pipeline")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadFile reads and parses the pipeline in path. A leading "~" in path is replaced by the user's home directory.
func LoadFile(path string) (*Pipeline, error) {
	path, err := fsutil.ReplaceTildeInDir(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read pipeline file %q", path)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "pipeline file %q", path)
	}
	return p, nil
}

// Marshal encodes the pipeline back to YAML.
func (p *Pipeline) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal pipeline")
	}
	return data, nil
}

// Validate checks that all nodes exist and that their inputs and parameters are valid.
func (p *Pipeline) Validate() error {
	_, err := p.compile()
	return err
}

// Names returns the names of all the sets defined by the pipeline, sources first, in the order they are
// defined.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.Sources)+len(p.Steps))
	for _, source := range p.Sources {
		names = append(names, source.Name)
	}
	for _, step := range p.Steps {
		names = append(names, step.Output)
	}
	return names
}

// Leaves returns the names of the sets that are not used as input by any step, in the order they are
// defined. These are the final results of the pipeline.
func (p *Pipeline) Leaves() []string {
	used := sets.Make[string]()
	for _, step := range p.Steps {
		used.Insert(step.Inputs...)
	}
	leaves := sets.MakeWith(p.Names()...).Sub(used)
	var names []string
	for _, name := range p.Names() {
		if leaves.Has(name) {
			names = append(names, name)
		}
	}
	return names
}

func (p *Pipeline) compile() ([]task, error) {
	if p.Size < 0 {
		return nil, errors.Errorf("pipeline size must be >= 0, got %d", p.Size)
	}
	defined := sets.Make[string](len(p.Sources) + len(p.Steps))
	define := func(name string) error {
		if name == "" {
			return errors.New("missing name for the output")
		}
		if defined.Has(name) {
			return errors.Errorf("set %q defined more than once", name)
		}
		defined.Insert(name)
		return nil
	}

	tasks := make([]task, 0, len(p.Sources)+len(p.Steps))
	for ii, source := range p.Sources {
		t := task{description: fmt.Sprintf("source #%d (%q)", ii, source.Kind), output: source.Name}
		t.node = Lookup(source.Kind)
		if t.node == nil || !t.node.IsSource() {
			return nil, errors.Errorf("%s: unknown source kind", t.description)
		}
		if err := define(source.Name); err != nil {
			return nil, errors.WithMessage(err, t.description)
		}
		var err error
		if t.params, err = source.Params.withDefaults(t.node.Defaults); err != nil {
			return nil, errors.WithMessage(err, t.description)
		}
		tasks = append(tasks, t)
	}

	for ii, step := range p.Steps {
		t := task{description: fmt.Sprintf("step #%d (%q)", ii, step.Op), inputs: step.Inputs, output: step.Output}
		t.node = Lookup(step.Op)
		if t.node == nil || t.node.IsSource() {
			return nil, errors.Errorf("%s: unknown operation", t.description)
		}
		if len(step.Inputs) != t.node.Inputs {
			return nil, errors.Errorf("%s: requires %d inputs, got %d", t.description, t.node.Inputs, len(step.Inputs))
		}
		for _, input := range step.Inputs {
			if !defined.Has(input) {
				return nil, errors.Errorf("%s: input %q is not defined before use, defined sets are %q",
					t.description, input, sets.Sorted(defined))
			}
		}
		if err := define(step.Output); err != nil {
			return nil, errors.WithMessage(err, t.description)
		}
		var err error
		if t.params, err = step.Params.withDefaults(t.node.Defaults); err != nil {
			return nil, errors.WithMessage(err, t.description)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Run validates and executes the pipeline, and returns all the sets it defined, by name.
func (p *Pipeline) Run() (map[string]*WeightSet, error) {
	tasks, err := p.compile()
	if err != nil {
		return nil, err
	}
	results := make(map[string]*WeightSet, len(tasks))
	for _, t := range tasks {
		inputs := make([]*WeightSet, len(t.inputs))
		for ii, name := range t.inputs {
			inputs[ii] = results[name]
		}
		output, err := t.node.Run(p.Size, inputs, t.params)
		if err != nil {
			return nil, errors.WithMessagef(err, "%s -> %q", t.description, t.output)
		}
		if klog.V(1).Enabled() {
			klog.Infof("pipeline: %s -> %q: %s", t.description, t.output, output)
		}
		results[t.output] = output
	}
	return results, nil
}
