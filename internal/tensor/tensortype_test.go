package tensor

import "testing"

func TestTensorTypeByteSize(t *testing.T) {
	tests := []struct {
		typ  TensorType
		want int
	}{
		{TensorType{Shape: Shape{2, 3}, Element: F32}, 24},
		{TensorType{Shape: Shape{2, 3}, Element: SI8}, 6},
		{TensorType{Shape: Shape{4}, Element: BF16}, 8},
		{TensorType{Shape: Shape{}, Element: SI32}, 4}, // Scalar
	}

	for _, tt := range tests {
		if got := tt.typ.ByteSize(); got != tt.want {
			t.Errorf("%s.ByteSize() = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestTensorTypeString(t *testing.T) {
	tt := TensorType{Shape: Shape{2, 3}, Element: F32}
	if got := tt.String(); got != "2x3xF32" {
		t.Errorf("String() = %q, want %q", got, "2x3xF32")
	}

	scalar := TensorType{Shape: Shape{}, Element: SI8}
	if got := scalar.String(); got != "SI8" {
		t.Errorf("scalar String() = %q, want %q", got, "SI8")
	}
}

func TestTensorTypeEqual(t *testing.T) {
	a := TensorType{Shape: Shape{2, 3}, Element: F32}
	b := TensorType{Shape: Shape{2, 3}, Element: F32}
	c := TensorType{Shape: Shape{3, 2}, Element: F32}
	d := TensorType{Shape: Shape{2, 3}, Element: F16}

	if !a.Equal(b) {
		t.Error("identical types should be equal")
	}
	if a.Equal(c) || a.Equal(d) {
		t.Error("types with different shape or element should differ")
	}
}

func TestQuantizedTensorTypeString(t *testing.T) {
	elem, _ := PerTensorQuantized(SI8, F32, 0.5, 0)
	qt := QuantizedTensorType{Shape: Shape{2, 3}, Element: elem}
	if got := qt.String(); got != "2x3xPerTensor[SI8_F32]" {
		t.Errorf("String() = %q, want %q", got, "2x3xPerTensor[SI8_F32]")
	}
}

func TestQuantizedTensorTypeStorage(t *testing.T) {
	elem, _ := PerTensorQuantized(SI4, F16, 0.5, 0)
	qt := QuantizedTensorType{Shape: Shape{8}, Element: elem}

	if got := qt.Storage(); got != SI4 {
		t.Errorf("Storage() = %v, want SI4", got)
	}
	if got := qt.ByteSize(); got != 8 {
		t.Errorf("ByteSize() = %d, want 8", got)
	}
}

func TestQuantizedTensorTypeValidate(t *testing.T) {
	perAxis, _ := PerAxisQuantized(SI8, F32, []float32{0.5, 1, 1.5}, []int32{0, 0, 0}, 1)

	good := QuantizedTensorType{Shape: Shape{2, 3}, Element: perAxis}
	if err := good.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	// Quantized dimension out of range.
	bad := QuantizedTensorType{Shape: Shape{3}, Element: perAxis}
	if err := bad.Validate(); err == nil {
		t.Error("Validate() should fail for out-of-range dimension")
	}

	// Channel count does not match the dimension size.
	mismatch := QuantizedTensorType{Shape: Shape{2, 4}, Element: perAxis}
	if err := mismatch.Validate(); err == nil {
		t.Error("Validate() should fail for channel count mismatch")
	}

	// Per-tensor types only need a valid shape.
	perTensor, _ := PerTensorQuantized(SI8, F32, 0.5, 0)
	pt := QuantizedTensorType{Shape: Shape{2, 3}, Element: perTensor}
	if err := pt.Validate(); err != nil {
		t.Errorf("per-tensor Validate() = %v, want nil", err)
	}
}
