package tensor

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/ajroetker/go-highway/hwy"
)

// Tensor is a flat, byte-backed element container. It pairs a Type with
// the raw little-endian storage for its elements and exposes typed views
// over that storage. There are no strides, views, or devices; operator
// tests need a place to put inputs and outputs, not a storage engine.
type Tensor struct {
	typ  Type
	data []byte
}

// NewTensor allocates a zeroed tensor of the given type.
func NewTensor(t Type) (*Tensor, error) {
	if t == nil {
		return nil, fmt.Errorf("nil tensor type")
	}
	if err := t.Dims().Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if qt, ok := t.(QuantizedTensorType); ok {
		if err := qt.Validate(); err != nil {
			return nil, fmt.Errorf("invalid quantized type: %w", err)
		}
	}
	return &Tensor{
		typ:  t,
		data: make([]byte, t.ByteSize()),
	}, nil
}

// NewTensorFrom allocates a tensor of the given type and copies data
// into its storage. The element type T must match the storage type and
// len(data) must equal the number of elements.
func NewTensorFrom[T Element](t Type, data []T) (*Tensor, error) {
	tn, err := NewTensor(t)
	if err != nil {
		return nil, err
	}
	if kindOf[T]() != t.Storage().kind() {
		var dummy T
		return nil, fmt.Errorf("element type %T does not match storage of %s", dummy, t.Storage())
	}
	if len(data) != tn.NumElements() {
		return nil, fmt.Errorf("got %d elements for shape %s (want %d)", len(data), t.Dims(), tn.NumElements())
	}
	copy(View[T](tn), data)
	return tn, nil
}

// Type returns the tensor's type.
func (t *Tensor) Type() Type {
	return t.typ
}

// Dims returns the tensor's shape.
func (t *Tensor) Dims() Shape {
	return t.typ.Dims()
}

// StorageType returns the data type elements are stored as.
func (t *Tensor) StorageType() DataType {
	return t.typ.Storage()
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.typ.Dims().NumElements()
}

// ByteSize returns the total storage size in bytes.
func (t *Tensor) ByteSize() int {
	return len(t.data)
}

// Data returns the raw byte slice backing the tensor.
// WARNING: Direct access to underlying memory. Use with caution.
func (t *Tensor) Data() []byte {
	return t.data
}

// IsQuantized reports whether the tensor has a quantized element type.
func (t *Tensor) IsQuantized() bool {
	_, ok := t.typ.(QuantizedTensorType)
	return ok
}

// Quantized returns the quantized element type when present.
func (t *Tensor) Quantized() (QuantizedElementType, bool) {
	qt, ok := t.typ.(QuantizedTensorType)
	if !ok {
		return QuantizedElementType{}, false
	}
	return qt.Element, true
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	data := make([]byte, len(t.data))
	copy(data, t.data)
	return &Tensor{typ: t.typ, data: data}
}

// View interprets the tensor's storage as a typed slice sharing memory.
// Panics if T does not match the tensor's storage type.
func View[T Element](t *Tensor) []T {
	CheckElem[T](t.StorageType())
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

// AsBool interprets the data as []bool.
// Panics if the tensor's storage type is not I1.
func (t *Tensor) AsBool() []bool {
	return View[bool](t)
}

// AsInt8 interprets the data as []int8. Both SI4 and SI8 tensors are
// byte-backed and use this accessor.
func (t *Tensor) AsInt8() []int8 {
	return View[int8](t)
}

// AsInt16 interprets the data as []int16.
// Panics if the tensor's storage type is not SI16.
func (t *Tensor) AsInt16() []int16 {
	return View[int16](t)
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's storage type is not SI32.
func (t *Tensor) AsInt32() []int32 {
	return View[int32](t)
}

// AsFloat16 interprets the data as []hwy.Float16.
// Panics if the tensor's storage type is not F16.
func (t *Tensor) AsFloat16() []hwy.Float16 {
	return View[hwy.Float16](t)
}

// AsBFloat16 interprets the data as []hwy.BFloat16.
// Panics if the tensor's storage type is not BF16.
func (t *Tensor) AsBFloat16() []hwy.BFloat16 {
	return View[hwy.BFloat16](t)
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's storage type is not F32.
func (t *Tensor) AsFloat32() []float32 {
	return View[float32](t)
}

// Float64s returns the raw storage values widened to float64. Quantized
// tensors yield their stored integers; no dequantization is applied.
func (t *Tensor) Float64s() []float64 {
	out := make([]float64, t.NumElements())
	switch t.StorageType().kind() {
	case kindBool:
		for i, v := range t.AsBool() {
			if v {
				out[i] = 1
			}
		}
	case kindInt8:
		for i, v := range t.AsInt8() {
			out[i] = float64(v)
		}
	case kindInt16:
		for i, v := range t.AsInt16() {
			out[i] = float64(v)
		}
	case kindInt32:
		for i, v := range t.AsInt32() {
			out[i] = float64(v)
		}
	case kindBFloat16:
		for i, v := range t.AsBFloat16() {
			out[i] = v.Float64()
		}
	case kindFloat16:
		for i, v := range t.AsFloat16() {
			out[i] = v.Float64()
		}
	case kindFloat32:
		for i, v := range t.AsFloat32() {
			out[i] = float64(v)
		}
	}
	return out
}

// String renders the type and the first few element values.
func (t *Tensor) String() string {
	const maxShown = 8
	values := t.Float64s()
	var b strings.Builder
	fmt.Fprintf(&b, "Tensor(%s)[", t.typ)
	for i, v := range values {
		if i == maxShown {
			b.WriteString(" ...")
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%g", v)
	}
	b.WriteByte(']')
	return b.String()
}
