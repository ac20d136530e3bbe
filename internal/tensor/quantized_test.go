package tensor

import (
	"math"
	"testing"
)

func TestPerTensorQuantized(t *testing.T) {
	q, err := PerTensorQuantized(SI8, F32, 0.5, -3)
	if err != nil {
		t.Fatalf("PerTensorQuantized returned error: %v", err)
	}

	if got := q.StorageType(); got != SI8 {
		t.Errorf("StorageType() = %v, want SI8", got)
	}
	if got := q.ExpressedType(); got != F32 {
		t.Errorf("ExpressedType() = %v, want F32", got)
	}
	if !q.IsPerTensor() || q.IsPerAxis() {
		t.Error("expected a per-tensor element type")
	}
	if got := q.QuantizedDimension(); got != -1 {
		t.Errorf("QuantizedDimension() = %d, want -1", got)
	}
	if got := q.NumChannels(); got != 1 {
		t.Errorf("NumChannels() = %d, want 1", got)
	}
	if got := q.Scales(); len(got) != 1 || got[0] != 0.5 {
		t.Errorf("Scales() = %v, want [0.5]", got)
	}
	if got := q.ZeroPoints(); len(got) != 1 || got[0] != -3 {
		t.Errorf("ZeroPoints() = %v, want [-3]", got)
	}
}

func TestPerTensorQuantizedErrors(t *testing.T) {
	tests := []struct {
		name      string
		storage   DataType
		expressed DataType
		scale     float32
		zeroPoint int32
	}{
		{"float storage", F16, F32, 0.5, 0},
		{"bool storage", I1, F32, 0.5, 0},
		{"int expressed", SI8, SI32, 0.5, 0},
		{"zero scale", SI8, F32, 0, 0},
		{"negative scale", SI8, F32, -1, 0},
		{"nan scale", SI8, F32, float32(math.NaN()), 0},
		{"inf scale", SI8, F32, float32(math.Inf(1)), 0},
		{"zero point above range", SI4, F32, 0.5, 8},
		{"zero point below range", SI4, F32, 0.5, -9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PerTensorQuantized(tt.storage, tt.expressed, tt.scale, tt.zeroPoint); err == nil {
				t.Errorf("PerTensorQuantized(%v, %v, %v, %d) should fail", tt.storage, tt.expressed, tt.scale, tt.zeroPoint)
			}
		})
	}
}

func TestPerAxisQuantized(t *testing.T) {
	scales := []float32{0.5, 1.0, 1.5}
	zeroPoints := []int32{-1, 0, 1}

	q, err := PerAxisQuantized(SI4, BF16, scales, zeroPoints, 0)
	if err != nil {
		t.Fatalf("PerAxisQuantized returned error: %v", err)
	}

	if !q.IsPerAxis() || q.IsPerTensor() {
		t.Error("expected a per-axis element type")
	}
	if got := q.QuantizedDimension(); got != 0 {
		t.Errorf("QuantizedDimension() = %d, want 0", got)
	}
	if got := q.NumChannels(); got != 3 {
		t.Errorf("NumChannels() = %d, want 3", got)
	}

	// Parameters are copied, not aliased.
	scales[0] = 99
	if q.Scales()[0] != 0.5 {
		t.Error("modifying the input slice affected the element type")
	}
}

func TestPerAxisQuantizedErrors(t *testing.T) {
	tests := []struct {
		name       string
		scales     []float32
		zeroPoints []int32
		dim        Axis
	}{
		{"empty scales", nil, nil, 0},
		{"length mismatch", []float32{0.5, 1.0}, []int32{0}, 0},
		{"negative dim", []float32{0.5}, []int32{0}, -1},
		{"bad scale", []float32{0.5, -1}, []int32{0, 0}, 0},
		{"bad zero point", []float32{0.5, 1.0}, []int32{0, 1000}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PerAxisQuantized(SI8, F32, tt.scales, tt.zeroPoints, tt.dim); err == nil {
				t.Error("PerAxisQuantized should fail")
			}
		})
	}
}

func TestQuantizedElementTypeEqual(t *testing.T) {
	a, _ := PerTensorQuantized(SI8, F32, 0.5, 0)
	b, _ := PerTensorQuantized(SI8, F32, 0.5, 0)
	c, _ := PerTensorQuantized(SI8, F32, 0.75, 0)
	d, _ := PerTensorQuantized(SI8, F16, 0.5, 0)
	e, _ := PerAxisQuantized(SI8, F32, []float32{0.5}, []int32{0}, 0)

	if !a.Equal(b) {
		t.Error("identical element types should be equal")
	}
	if a.Equal(c) {
		t.Error("element types with different scales should differ")
	}
	if a.Equal(d) {
		t.Error("element types with different expressed types should differ")
	}
	if a.Equal(e) {
		t.Error("per-tensor and per-axis element types should differ")
	}
}

func TestQuantizedElementTypeString(t *testing.T) {
	perTensor, _ := PerTensorQuantized(SI8, F32, 0.5, 0)
	if got := perTensor.String(); got != "PerTensor[SI8_F32]" {
		t.Errorf("String() = %q, want %q", got, "PerTensor[SI8_F32]")
	}

	perAxis, _ := PerAxisQuantized(SI4, BF16, []float32{0.5, 1}, []int32{0, 0}, 2)
	if got := perAxis.String(); got != "PerAxis[SI4_BF16:2]" {
		t.Errorf("String() = %q, want %q", got, "PerAxis[SI4_BF16:2]")
	}
}
