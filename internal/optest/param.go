// Package optest provides the parameter machinery for operator tests:
// element-type test parameters, canned parameter lists, list
// combinators, input buffer synthesis, and test case naming.
package optest

import (
	"fmt"
	"strings"

	"github.com/schakrabortygithub/shlo/internal/tensor"
)

// Layout selects how a parameter's element type is quantized.
type Layout int

// Supported quantization layouts.
const (
	LayoutPlain Layout = iota
	LayoutPerTensor
	LayoutPerAxis
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case LayoutPlain:
		return "Plain"
	case LayoutPerTensor:
		return "PerTensor"
	case LayoutPerAxis:
		return "PerAxis"
	default:
		return "unknown"
	}
}

// Param identifies one element-type combination an operator test runs
// against: the storage type, the optional expressed type, and the
// quantization layout. Params are plain comparable values so lists of
// them can be concatenated, mapped, filtered, and crossed.
type Param struct {
	Storage   tensor.DataType
	Expressed tensor.DataType // Zero when the parameter is a single type.
	Layout    Layout
	Axis      tensor.Axis // Quantized dimension for LayoutPerAxis.
}

// Single creates a plain single-type parameter.
func Single(storage tensor.DataType) Param {
	return Param{Storage: storage}
}

// Pair creates a storage/expressed type pair without a layout. Apply
// PerTensor or PerAxis to request a quantized tensor type.
func Pair(storage, expressed tensor.DataType) Param {
	return Param{Storage: storage, Expressed: expressed}
}

// PerTensor wraps a storage/expressed pair with per-tensor layout.
// Panics if p has no expressed type or already has a layout.
func PerTensor(p Param) Param {
	if p.Layout != LayoutPlain || !p.Expressed.Valid() {
		panic(fmt.Sprintf("cannot apply PerTensor to %s", p.Name()))
	}
	p.Layout = LayoutPerTensor
	return p
}

// PerAxis wraps a storage/expressed pair with per-axis layout at the
// given quantized dimension. Panics if p has no expressed type, already
// has a layout, or axis is negative.
func PerAxis(p Param, axis tensor.Axis) Param {
	if p.Layout != LayoutPlain || !p.Expressed.Valid() || axis < 0 {
		panic(fmt.Sprintf("cannot apply PerAxis at %d to %s", axis, p.Name()))
	}
	p.Layout = LayoutPerAxis
	p.Axis = axis
	return p
}

// PerAxisAt returns a map function applying PerAxis at a fixed axis.
func PerAxisAt(axis tensor.Axis) func(Param) Param {
	return func(p Param) Param { return PerAxis(p, axis) }
}

// Validate checks that the parameter is well formed.
func (p Param) Validate() error {
	if !p.Storage.Valid() {
		return fmt.Errorf("storage type not set")
	}
	if p.Expressed != 0 && !p.Expressed.Valid() {
		return fmt.Errorf("invalid expressed type %d", int(p.Expressed))
	}
	switch p.Layout {
	case LayoutPlain:
		return nil
	case LayoutPerTensor, LayoutPerAxis:
		if !p.Storage.IsInt() {
			return fmt.Errorf("quantized storage must be an integer type, got %s", p.Storage)
		}
		if !p.Expressed.IsFloat() {
			return fmt.Errorf("quantized expressed type must be a float type, got %s", p.Expressed)
		}
		if p.Layout == LayoutPerAxis && p.Axis < 0 {
			return fmt.Errorf("invalid quantized dimension %d", p.Axis)
		}
		return nil
	default:
		return fmt.Errorf("invalid layout %d", int(p.Layout))
	}
}

// Name renders the canonical test-case name for the parameter:
// "SI8" for single types, "SI8_F32" for pairs, and
// "PerTensor[SI8_F32]" or "PerAxis[SI8_F32:0]" for quantized layouts.
func (p Param) Name() string {
	base := p.Storage.String()
	if p.Expressed.Valid() {
		base += "_" + p.Expressed.String()
	}
	switch p.Layout {
	case LayoutPerTensor:
		return "PerTensor[" + base + "]"
	case LayoutPerAxis:
		return fmt.Sprintf("PerAxis[%s:%d]", base, p.Axis)
	default:
		return base
	}
}

// Named is implemented by values that render their own test-case name.
type Named interface {
	Name() string
}

// JoinNames joins the names of tuple elements with ":". Cross-product
// tuples use this to build subtest names.
func JoinNames[E Named](elems []E) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.Name()
	}
	return strings.Join(parts, ":")
}

// CaseName joins non-empty name parts with ":".
func CaseName(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ":")
}
