package tensor

import (
	"fmt"
	"math"
)

// noQuantizedDimension marks a per-tensor quantized element type.
const noQuantizedDimension Axis = -1

// QuantizedElementType describes how quantized elements are stored and
// interpreted: an integer storage type, a float expressed type, and the
// scale/zero-point parameters. It is a descriptor only; converting
// values between the two domains is the job of the operator kernels.
type QuantizedElementType struct {
	storage    DataType
	expressed  DataType
	scales     []float32
	zeroPoints []int32
	dim        Axis
}

// PerTensorQuantized creates a quantized element type with a single
// scale and zero point shared by the whole tensor.
func PerTensorQuantized(storage, expressed DataType, scale float32, zeroPoint int32) (QuantizedElementType, error) {
	if err := checkQuantizedTypes(storage, expressed); err != nil {
		return QuantizedElementType{}, err
	}
	if err := checkScale(scale); err != nil {
		return QuantizedElementType{}, err
	}
	if err := checkZeroPoint(storage, zeroPoint); err != nil {
		return QuantizedElementType{}, err
	}
	return QuantizedElementType{
		storage:    storage,
		expressed:  expressed,
		scales:     []float32{scale},
		zeroPoints: []int32{zeroPoint},
		dim:        noQuantizedDimension,
	}, nil
}

// PerAxisQuantized creates a quantized element type with one scale and
// zero point per slice along the quantized dimension.
func PerAxisQuantized(storage, expressed DataType, scales []float32, zeroPoints []int32, dim Axis) (QuantizedElementType, error) {
	if err := checkQuantizedTypes(storage, expressed); err != nil {
		return QuantizedElementType{}, err
	}
	if dim < 0 {
		return QuantizedElementType{}, fmt.Errorf("invalid quantized dimension %d (must be >= 0)", dim)
	}
	if len(scales) == 0 {
		return QuantizedElementType{}, fmt.Errorf("per-axis quantization requires at least one scale")
	}
	if len(scales) != len(zeroPoints) {
		return QuantizedElementType{}, fmt.Errorf("got %d scales but %d zero points", len(scales), len(zeroPoints))
	}
	for i, scale := range scales {
		if err := checkScale(scale); err != nil {
			return QuantizedElementType{}, fmt.Errorf("scale at index %d: %w", i, err)
		}
	}
	for i, zp := range zeroPoints {
		if err := checkZeroPoint(storage, zp); err != nil {
			return QuantizedElementType{}, fmt.Errorf("zero point at index %d: %w", i, err)
		}
	}
	return QuantizedElementType{
		storage:    storage,
		expressed:  expressed,
		scales:     append([]float32(nil), scales...),
		zeroPoints: append([]int32(nil), zeroPoints...),
		dim:        dim,
	}, nil
}

// checkQuantizedTypes validates the storage/expressed type combination.
func checkQuantizedTypes(storage, expressed DataType) error {
	if !storage.IsInt() {
		return fmt.Errorf("storage type must be a signed integer type, got %s", storage)
	}
	if !expressed.IsFloat() {
		return fmt.Errorf("expressed type must be a float type, got %s", expressed)
	}
	return nil
}

// checkScale validates a single quantization scale.
func checkScale(scale float32) error {
	if math.IsNaN(float64(scale)) || math.IsInf(float64(scale), 0) {
		return fmt.Errorf("scale must be finite, got %v", scale)
	}
	if scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", scale)
	}
	return nil
}

// checkZeroPoint validates that a zero point is representable in storage.
func checkZeroPoint(storage DataType, zp int32) error {
	if float64(zp) < storage.MinValue() || float64(zp) > storage.MaxValue() {
		return fmt.Errorf("zero point %d outside %s range", zp, storage)
	}
	return nil
}

// StorageType returns the integer type the elements are stored as.
func (q QuantizedElementType) StorageType() DataType {
	return q.storage
}

// ExpressedType returns the float type the elements represent.
func (q QuantizedElementType) ExpressedType() DataType {
	return q.expressed
}

// IsPerTensor reports whether a single scale/zero-point pair applies to
// the whole tensor.
func (q QuantizedElementType) IsPerTensor() bool {
	return q.dim == noQuantizedDimension
}

// IsPerAxis reports whether scales and zero points vary along an axis.
func (q QuantizedElementType) IsPerAxis() bool {
	return q.dim != noQuantizedDimension
}

// QuantizedDimension returns the axis the parameters vary along, or -1
// for per-tensor quantization.
func (q QuantizedElementType) QuantizedDimension() Axis {
	return q.dim
}

// NumChannels returns the number of scale/zero-point pairs.
func (q QuantizedElementType) NumChannels() int {
	return len(q.scales)
}

// Scales returns the quantization scales. Per-tensor types have
// exactly one.
func (q QuantizedElementType) Scales() []float32 {
	return q.scales
}

// ZeroPoints returns the quantization zero points.
func (q QuantizedElementType) ZeroPoints() []int32 {
	return q.zeroPoints
}

// Equal checks if two quantized element types are identical, including
// their parameters.
func (q QuantizedElementType) Equal(other QuantizedElementType) bool {
	if q.storage != other.storage || q.expressed != other.expressed || q.dim != other.dim {
		return false
	}
	if len(q.scales) != len(other.scales) {
		return false
	}
	for i := range q.scales {
		if q.scales[i] != other.scales[i] || q.zeroPoints[i] != other.zeroPoints[i] {
			return false
		}
	}
	return true
}

// String renders the layout and type pair, e.g. "PerTensor[SI8_F32]"
// or "PerAxis[SI8_F32:0]".
func (q QuantizedElementType) String() string {
	if q.IsPerAxis() {
		return fmt.Sprintf("PerAxis[%s_%s:%d]", q.storage, q.expressed, q.dim)
	}
	return fmt.Sprintf("PerTensor[%s_%s]", q.storage, q.expressed)
}
