// Copyright 2025 The SHLO Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optest

import (
	"github.com/schakrabortygithub/shlo/internal/optest"
	"github.com/schakrabortygithub/shlo/internal/tensor"
)

// Type aliases for the public API

// Param is one test parameter: a storage type, an optional expressed
// type, and a quantization layout.
type Param = optest.Param

// Layout tells how a parameter's tensor type is quantized.
type Layout = optest.Layout

// Layout constants.
const (
	LayoutPlain     Layout = optest.LayoutPlain
	LayoutPerTensor Layout = optest.LayoutPerTensor
	LayoutPerAxis   Layout = optest.LayoutPerAxis
)

// Named is implemented by values that render their own test-case name.
type Named = optest.Named

// Single returns a plain parameter for a storage type.
func Single(storage tensor.DataType) Param {
	return optest.Single(storage)
}

// Pair returns a parameter carrying a storage and an expressed type.
func Pair(storage, expressed tensor.DataType) Param {
	return optest.Pair(storage, expressed)
}

// PerTensor wraps a storage/expressed pair with per-tensor
// quantization. It panics when p is not a plain pair.
func PerTensor(p Param) Param {
	return optest.PerTensor(p)
}

// PerAxis wraps a storage/expressed pair with per-axis quantization
// along the given axis. It panics when p is not a plain pair or the
// axis is negative.
func PerAxis(p Param, axis tensor.Axis) Param {
	return optest.PerAxis(p, axis)
}

// PerAxisAt returns a function wrapping parameters with per-axis
// quantization along axis, for use with Map.
func PerAxisAt(axis tensor.Axis) func(Param) Param {
	return optest.PerAxisAt(axis)
}

// JoinNames renders a tuple of named elements as a single case name,
// joining the parts with ":".
func JoinNames[E Named](elems []E) string {
	return optest.JoinNames(elems)
}

// CaseName joins non-empty name parts with ":".
func CaseName(parts ...string) string {
	return optest.CaseName(parts...)
}

// Canned parameter lists

// BoolTypes returns the boolean storage type.
func BoolTypes() []Param { return optest.BoolTypes() }

// IntTypes returns the signed integer storage types.
func IntTypes() []Param { return optest.IntTypes() }

// FloatTypes returns the floating-point storage types.
func FloatTypes() []Param { return optest.FloatTypes() }

// ArithmeticTypes returns the integer and floating-point storage
// types.
func ArithmeticTypes() []Param { return optest.ArithmeticTypes() }

// NonQuantizedTypes returns every plain storage type, including bool.
func NonQuantizedTypes() []Param { return optest.NonQuantizedTypes() }

// QuantizedTypes returns every supported storage/expressed pair.
func QuantizedTypes() []Param { return optest.QuantizedTypes() }

// PerTensorQuantizedTypes returns QuantizedTypes with per-tensor
// layout.
func PerTensorQuantizedTypes() []Param { return optest.PerTensorQuantizedTypes() }

// PerAxisQuantizedTypes returns QuantizedTypes with per-axis layout
// along axis 0.
func PerAxisQuantizedTypes() []Param { return optest.PerAxisQuantizedTypes() }

// Combinators

// Concat concatenates parameter lists.
func Concat[E any](lists ...[]E) []E {
	return optest.Concat(lists...)
}

// Map applies f to every element of list.
func Map[E, R any](f func(E) R, list []E) []R {
	return optest.Map(f, list)
}

// Filter keeps the elements of list satisfying pred.
func Filter[E any](pred func(E) bool, list []E) []E {
	return optest.Filter(pred, list)
}

// Not negates a predicate.
func Not[E any](pred func(E) bool) func(E) bool {
	return optest.Not(pred)
}

// CrossProduct returns every combination drawing one element from each
// list, with the first list varying slowest.
func CrossProduct[E any](lists ...[]E) [][]E {
	return optest.CrossProduct(lists...)
}

// SameTypes reports whether every parameter in the tuple is the same.
func SameTypes(tuple []Param) bool {
	return optest.SameTypes(tuple)
}
