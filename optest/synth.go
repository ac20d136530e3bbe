// Copyright 2025 The SHLO Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optest

import (
	"github.com/google/go-cmp/cmp"

	"github.com/schakrabortygithub/shlo/internal/optest"
	"github.com/schakrabortygithub/shlo/internal/tensor"
)

// Generator synthesizes test tensors from a fixed seed.
type Generator = optest.Generator

// SupportedTyper is implemented by ops that advertise the storage type
// generic tests should exercise for them.
type SupportedTyper = optest.SupportedTyper

// OpCase pairs an op value with a test parameter.
type OpCase[O any] = optest.OpCase[O]

// NewGenerator returns a generator producing a reproducible stream of
// tensors for the given seed.
func NewGenerator(seed int64) *Generator {
	return optest.NewGenerator(seed)
}

// Buffer synthesis

// RandomBuffer fills a new buffer for dt with uniform random values
// spanning the storage type's full range.
func RandomBuffer[T tensor.Element](dt tensor.DataType, shape tensor.Shape) []T {
	return optest.RandomBuffer[T](dt, shape)
}

// RandomBufferRange fills a new buffer for dt with uniform random
// values from [lo, hi], clamped to the storage type's range. Integer
// endpoints are inclusive; real draws span [lo, hi).
func RandomBufferRange[T tensor.Element](dt tensor.DataType, shape tensor.Shape, lo, hi float64) []T {
	return optest.RandomBufferRange[T](dt, shape, lo, hi)
}

// IotaBuffer fills a new buffer for dt with a counting sequence
// starting at the storage type's minimum value.
func IotaBuffer[T tensor.Element](dt tensor.DataType, shape tensor.Shape) []T {
	return optest.IotaBuffer[T](dt, shape)
}

// IotaBufferRange fills a new buffer for dt with a counting sequence:
// the first element is start, and each increment past hi wraps back to
// lo.
func IotaBufferRange[T tensor.Element](dt tensor.DataType, shape tensor.Shape, start, lo, hi float64) []T {
	return optest.IotaBufferRange[T](dt, shape, start, lo, hi)
}

// Tensor synthesis

// TensorTypeFor builds the tensor type a parameter calls for,
// drawing quantization parameters from the process-wide generator.
func TensorTypeFor(p Param, shape tensor.Shape) (tensor.Type, error) {
	return optest.TensorTypeFor(p, shape)
}

// RandomTensor synthesizes a tensor for the parameter filled with
// uniform random values, using the process-wide generator.
func RandomTensor(p Param, shape tensor.Shape) (*tensor.Tensor, error) {
	return optest.RandomTensor(p, shape)
}

// IotaTensor synthesizes a tensor for the parameter filled with a
// counting sequence, using the process-wide generator.
func IotaTensor(p Param, shape tensor.Shape) (*tensor.Tensor, error) {
	return optest.IotaTensor(p, shape)
}

// Ops

// SupportedStorageType returns the storage type generic tests should
// use for op: the advertised type when op implements SupportedTyper,
// F32 otherwise.
func SupportedStorageType(op any) tensor.DataType {
	return optest.SupportedStorageType(op)
}

// WithOp pairs op with every parameter in the list.
func WithOp[O any](op O, params []Param) []OpCase[O] {
	return optest.WithOp(op, params)
}

// Comparison

// Tolerance returns a comparison option treating values within the
// given absolute or relative tolerance as equal.
func Tolerance(atol, rtol float64) cmp.Option {
	return optest.Tolerance(atol, rtol)
}

// AlmostEqual reports whether a and b differ by at most atol.
func AlmostEqual(a, b, atol float64) bool {
	return optest.AlmostEqual(a, b, atol)
}

// DiffTensors compares two tensors and returns a human-readable diff,
// or the empty string when they match.
func DiffTensors(got, want *tensor.Tensor, opts ...cmp.Option) string {
	return optest.DiffTensors(got, want, opts...)
}
