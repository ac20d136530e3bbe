package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/schakrabortygithub/shlo/optest"
	"github.com/schakrabortygithub/shlo/tensor"
)

// Plan describes a set of fixture files to generate.
type Plan struct {
	Name string `yaml:"name"`
	Jobs []Job  `yaml:"jobs"`
}

// Job describes one fixture file: a parameter list, a shape, and how to
// fill the tensors.
type Job struct {
	Name  string   `yaml:"name"`
	Types TypeList `yaml:"types"`
	Shape []int    `yaml:"shape"`
	Synth string   `yaml:"synth"` // "random" (default) or "iota"
	Range *Range   `yaml:"range"`
}

// Range bounds the synthesized values.
type Range struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// TypeList is either a canned list selector ("arithmetic", "quantized",
// "per-tensor", "per-axis", "bool", "int", "float") or an explicit
// sequence of type names ("SI8", "SI8_F32").
type TypeList struct {
	Selector string
	Explicit []string
}

// UnmarshalYAML accepts a scalar selector or a sequence of type names.
func (t *TypeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&t.Selector)
	case yaml.SequenceNode:
		return value.Decode(&t.Explicit)
	default:
		return fmt.Errorf("types must be a selector or a list of type names, got %s", value.Tag)
	}
}

// Resolve expands the type list into parameters.
func (t TypeList) Resolve() ([]optest.Param, error) {
	if len(t.Explicit) > 0 {
		params := make([]optest.Param, 0, len(t.Explicit))
		for _, name := range t.Explicit {
			p, err := parseParam(name)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		}
		return params, nil
	}

	switch t.Selector {
	case "bool":
		return optest.BoolTypes(), nil
	case "int":
		return optest.IntTypes(), nil
	case "float":
		return optest.FloatTypes(), nil
	case "arithmetic":
		return optest.ArithmeticTypes(), nil
	case "quantized":
		return optest.QuantizedTypes(), nil
	case "per-tensor":
		return optest.PerTensorQuantizedTypes(), nil
	case "per-axis":
		return optest.PerAxisQuantizedTypes(), nil
	case "":
		return nil, fmt.Errorf("job has no types")
	default:
		return nil, fmt.Errorf("unknown type selector %q", t.Selector)
	}
}

// parseParam parses "SI8" into a single-type parameter and "SI8_F32"
// into a storage/expressed pair.
func parseParam(name string) (optest.Param, error) {
	storage, expressed, found := strings.Cut(name, "_")
	st, err := tensor.ParseDataType(storage)
	if err != nil {
		return optest.Param{}, fmt.Errorf("type entry %q: %w", name, err)
	}
	if !found {
		return optest.Single(st), nil
	}
	et, err := tensor.ParseDataType(expressed)
	if err != nil {
		return optest.Param{}, fmt.Errorf("type entry %q: %w", name, err)
	}
	return optest.Pair(st, et), nil
}

// LoadPlan reads a plan from a YAML file and validates it.
func LoadPlan(path string) (*Plan, error) {
	//nolint:gosec // G304: plan path comes from the CLI user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	if len(plan.Jobs) == 0 {
		return nil, fmt.Errorf("plan has no jobs")
	}
	seen := make(map[string]bool, len(plan.Jobs))
	for i, job := range plan.Jobs {
		if job.Name == "" {
			return nil, fmt.Errorf("job %d has no name", i)
		}
		if seen[job.Name] {
			return nil, fmt.Errorf("duplicate job name %q", job.Name)
		}
		seen[job.Name] = true
		switch job.Synth {
		case "", "random", "iota":
		default:
			return nil, fmt.Errorf("job %q: unknown synth mode %q", job.Name, job.Synth)
		}
		if job.Range != nil && job.Range.Lo > job.Range.Hi {
			return nil, fmt.Errorf("job %q: range lo %g > hi %g", job.Name, job.Range.Lo, job.Range.Hi)
		}
	}
	return &plan, nil
}
