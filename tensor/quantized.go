// Copyright 2025 The SHLO Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/schakrabortygithub/shlo/internal/tensor"
)

// QuantizedElementType describes a quantized element: an integer
// storage type expressing real values through scales and zero points.
type QuantizedElementType = tensor.QuantizedElementType

// QuantizedTensorType is the type of a quantized tensor.
type QuantizedTensorType = tensor.QuantizedTensorType

// PerTensorQuantized builds a per-tensor quantized element type with a
// single scale and zero point.
//
// Example:
//
//	elem, err := tensor.PerTensorQuantized(tensor.SI8, tensor.F32, 0.5, -1)
func PerTensorQuantized(storage, expressed DataType, scale float32, zeroPoint int32) (QuantizedElementType, error) {
	return tensor.PerTensorQuantized(storage, expressed, scale, zeroPoint)
}

// PerAxisQuantized builds a per-axis quantized element type with one
// scale and zero point per channel along dim.
func PerAxisQuantized(storage, expressed DataType, scales []float32, zeroPoints []int32, dim Axis) (QuantizedElementType, error) {
	return tensor.PerAxisQuantized(storage, expressed, scales, zeroPoints, dim)
}
