package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/Maxime2/piecewise"
	"github.com/Maxime2/piecewise/interpolation"
	"github.com/Maxime2/piecewise/linearisation"
)

// input is a table description read from a YAML (or JSON) document.
// Numbers may be written as strings.
type input struct {
	Dump      piecewise.Dump
	Tolerance linearisation.Tolerance
}

func parseInput(data []byte) (*input, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}

	in := &input{Tolerance: linearisation.DefaultTolerance()}
	var err error
	if in.Dump.X, err = floatList(doc, "x"); err != nil {
		return nil, err
	}
	if in.Dump.Y, err = floatList(doc, "y"); err != nil {
		return nil, err
	}

	boundaries, err := list(doc, "boundaries")
	if err != nil {
		return nil, err
	}
	for i, v := range boundaries {
		b, err := cast.ToIntE(v)
		if err != nil {
			return nil, fmt.Errorf("boundaries[%d]: %w", i, err)
		}
		in.Dump.Boundaries = append(in.Dump.Boundaries, b)
	}

	interpolants, err := list(doc, "interpolants")
	if err != nil {
		return nil, err
	}
	for i, v := range interpolants {
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, fmt.Errorf("interpolants[%d]: %w", i, err)
		}
		law, err := interpolation.ParseLaw(s)
		if err != nil {
			return nil, fmt.Errorf("interpolants[%d]: %w", i, err)
		}
		in.Dump.Interpolants = append(in.Dump.Interpolants, law)
	}

	if v, ok := doc["tolerance"]; ok {
		if in.Tolerance.Tolerance, err = cast.ToFloat64E(v); err != nil {
			return nil, fmt.Errorf("tolerance: %w", err)
		}
	}
	if v, ok := doc["threshold"]; ok {
		if in.Tolerance.Threshold, err = cast.ToFloat64E(v); err != nil {
			return nil, fmt.Errorf("threshold: %w", err)
		}
	}
	return in, nil
}

func list(doc map[string]any, key string) ([]any, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return nil, nil
	}
	values, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a list, got %T", key, v)
	}
	return values, nil
}

func floatList(doc map[string]any, key string) ([]float64, error) {
	values, err := list(doc, key)
	if err != nil {
		return nil, err
	}
	result := make([]float64, len(values))
	for i, v := range values {
		if result[i], err = cast.ToFloat64E(v); err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
	}
	return result, nil
}

// parseFloats reads a comma separated list of numbers.
func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	result := make([]float64, len(fields))
	for i, f := range fields {
		v, err := cast.ToFloat64E(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

// table builds the table described by the input. Without boundaries the
// table has a single region, linear-linear unless one law is given.
func (in *input) table(opts ...piecewise.Option) (*piecewise.Table, error) {
	if len(in.Dump.Boundaries) == 0 {
		switch len(in.Dump.Interpolants) {
		case 0:
			return piecewise.New(in.Dump.X, in.Dump.Y, opts...)
		case 1:
			opts = append(opts, piecewise.WithLaw(in.Dump.Interpolants[0]))
			return piecewise.New(in.Dump.X, in.Dump.Y, opts...)
		}
	}
	return piecewise.FromDump(&in.Dump, opts...)
}
