// Copyright 2025 The SHLO Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/schakrabortygithub/shlo/internal/tensor"
)

// Type aliases for the public API

// Element constrains the Go storage types that back tensor data.
// Supported types: bool, int8, int16, int32, hwy.Float16,
// hwy.BFloat16, float32.
type Element = tensor.Element

// DataType identifies the storage type of a tensor element.
type DataType = tensor.DataType

// Data type constants.
const (
	I1   DataType = tensor.I1
	SI4  DataType = tensor.SI4
	SI8  DataType = tensor.SI8
	SI16 DataType = tensor.SI16
	SI32 DataType = tensor.SI32
	BF16 DataType = tensor.BF16
	F16  DataType = tensor.F16
	F32  DataType = tensor.F32
)

// Shape holds the dimensions of a tensor.
// Example: Shape{2, 3, 4} is a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Axis indexes a dimension of a shape.
type Axis = tensor.Axis

// Type describes a tensor: its shape and element type, plain or
// quantized.
type Type = tensor.Type

// TensorType is the type of a plain (non-quantized) tensor.
type TensorType = tensor.TensorType

// Tensor is a byte-backed container holding elements of a single
// storage type.
//
// Example:
//
//	typ := tensor.TensorType{Shape: tensor.Shape{2, 2}, Element: tensor.F32}
//	t, err := tensor.NewTensorFrom(typ, []float32{1, 2, 3, 4})
type Tensor = tensor.Tensor

// ParseDataType converts a canonical type name such as "SI8" or "F32"
// back into its DataType.
func ParseDataType(s string) (DataType, error) {
	return tensor.ParseDataType(s)
}

// DataTypeOf returns the DataType whose storage is T. For int8, which
// backs both SI4 and SI8, it returns SI8.
func DataTypeOf[T Element]() DataType {
	return tensor.DataTypeOf[T]()
}

// NewTensor allocates a zero-filled tensor of the given type.
func NewTensor(t Type) (*Tensor, error) {
	return tensor.NewTensor(t)
}

// NewTensorFrom allocates a tensor of the given type and copies data
// into it. The element type T must match the storage of the type's
// element data type.
//
// Example:
//
//	typ := tensor.TensorType{Shape: tensor.Shape{3}, Element: tensor.SI32}
//	t, err := tensor.NewTensorFrom(typ, []int32{1, 2, 3})
func NewTensorFrom[T Element](t Type, data []T) (*Tensor, error) {
	return tensor.NewTensorFrom(t, data)
}

// View returns a zero-copy typed view over the tensor's storage. It
// panics when T does not match the tensor's storage type.
func View[T Element](t *Tensor) []T {
	return tensor.View[T](t)
}
