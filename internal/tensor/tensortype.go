package tensor

import "fmt"

// Type describes a tensor's shape and element type. It is implemented
// by TensorType and QuantizedTensorType; code that handles both carries
// a Type and switches on the concrete variant when it matters.
type Type interface {
	// Dims returns the tensor shape.
	Dims() Shape
	// Storage returns the data type elements are stored as.
	Storage() DataType
	// ByteSize returns the total storage size in bytes.
	ByteSize() int
	// String renders the type, e.g. "2x3xF32" or "2x3xPerTensor[SI8_F32]".
	String() string
}

// TensorType describes a tensor with a plain element type.
type TensorType struct {
	Shape   Shape
	Element DataType
}

// Dims returns the tensor shape.
func (t TensorType) Dims() Shape {
	return t.Shape
}

// Storage returns the element data type.
func (t TensorType) Storage() DataType {
	return t.Element
}

// ByteSize returns the total storage size in bytes.
func (t TensorType) ByteSize() int {
	return t.Shape.NumElements() * t.Element.Size()
}

// Equal checks if two tensor types are identical.
func (t TensorType) Equal(other TensorType) bool {
	return t.Element == other.Element && t.Shape.Equal(other.Shape)
}

// String renders the type in shape-by-element form.
func (t TensorType) String() string {
	if len(t.Shape) == 0 {
		return t.Element.String()
	}
	return fmt.Sprintf("%sx%s", t.Shape, t.Element)
}

// QuantizedTensorType describes a tensor with a quantized element type.
type QuantizedTensorType struct {
	Shape   Shape
	Element QuantizedElementType
}

// Dims returns the tensor shape.
func (t QuantizedTensorType) Dims() Shape {
	return t.Shape
}

// Storage returns the integer type the elements are stored as.
func (t QuantizedTensorType) Storage() DataType {
	return t.Element.StorageType()
}

// ByteSize returns the total storage size in bytes.
func (t QuantizedTensorType) ByteSize() int {
	return t.Shape.NumElements() * t.Element.StorageType().Size()
}

// Equal checks if two quantized tensor types are identical, including
// their quantization parameters.
func (t QuantizedTensorType) Equal(other QuantizedTensorType) bool {
	return t.Shape.Equal(other.Shape) && t.Element.Equal(other.Element)
}

// String renders the type in shape-by-element form.
func (t QuantizedTensorType) String() string {
	if len(t.Shape) == 0 {
		return t.Element.String()
	}
	return fmt.Sprintf("%sx%s", t.Shape, t.Element)
}

// Validate checks a quantized tensor type's parameters against its
// shape: a per-axis element type must quantize an existing dimension
// and carry one scale per slice along it.
func (t QuantizedTensorType) Validate() error {
	if err := t.Shape.Validate(); err != nil {
		return err
	}
	if !t.Element.IsPerAxis() {
		return nil
	}
	dim := t.Element.QuantizedDimension()
	if int(dim) >= len(t.Shape) {
		return fmt.Errorf("quantized dimension %d out of range for shape %s", dim, t.Shape)
	}
	if t.Element.NumChannels() != t.Shape[dim] {
		return fmt.Errorf("got %d quantization channels for dimension of size %d", t.Element.NumChannels(), t.Shape[dim])
	}
	return nil
}
