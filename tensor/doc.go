// Copyright 2025 The SHLO Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the element types, shapes, and tensor
// containers of the SHLO reference library.
//
// # Overview
//
// Tensors are byte-backed containers with a static type describing
// their shape and element storage. This package provides:
//   - The DataType enumeration (I1 through F32)
//   - Plain and quantized tensor types
//   - Zero-copy typed views over tensor storage
//
// # Basic Usage
//
//	import "github.com/schakrabortygithub/shlo/tensor"
//
//	func main() {
//	    typ := tensor.TensorType{Shape: tensor.Shape{2, 3}, Element: tensor.F32}
//	    t, err := tensor.NewTensorFrom(typ, []float32{1, 2, 3, 4, 5, 6})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    values := t.AsFloat32() // zero-copy view
//	}
//
// # Supported Storage Types
//
// Each DataType maps to one Go storage type:
//   - I1: bool
//   - SI4, SI8: int8 (SI4 values occupy the low 4 bits)
//   - SI16: int16
//   - SI32: int32
//   - BF16: hwy.BFloat16
//   - F16: hwy.Float16
//   - F32: float32
//
// # Quantized Types
//
// Quantized tensors store small integers that express real values
// through scale and zero-point parameters:
//
//	elem, err := tensor.PerTensorQuantized(tensor.SI8, tensor.F32, 0.5, -1)
//	typ := tensor.QuantizedTensorType{Shape: tensor.Shape{4}, Element: elem}
//
// Per-axis quantization carries one scale and zero point per channel
// along the quantized dimension.
package tensor
