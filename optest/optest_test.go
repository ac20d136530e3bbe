// Copyright 2025 The SHLO Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optest_test

import (
	"bytes"
	"testing"

	"github.com/schakrabortygithub/shlo/optest"
	"github.com/schakrabortygithub/shlo/tensor"
)

// TestParamAPI verifies the Param alias exposes construction, naming
// and validation.
func TestParamAPI(t *testing.T) {
	p := optest.Pair(tensor.SI8, tensor.F32)
	if got := p.Name(); got != "SI8_F32" {
		t.Errorf("Name() = %q, want %q", got, "SI8_F32")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}

	q := optest.PerAxis(p, 1)
	if q.Layout != optest.LayoutPerAxis {
		t.Errorf("Layout = %v, want LayoutPerAxis", q.Layout)
	}
	if got := q.Name(); got != "PerAxis[SI8_F32:1]" {
		t.Errorf("Name() = %q, want %q", got, "PerAxis[SI8_F32:1]")
	}

	if got := optest.PerTensor(p).Name(); got != "PerTensor[SI8_F32]" {
		t.Errorf("Name() = %q, want %q", got, "PerTensor[SI8_F32]")
	}
}

// TestTypeListsAPI verifies the canned parameter lists are reachable
// through the facade.
func TestTypeListsAPI(t *testing.T) {
	if got := len(optest.QuantizedTypes()); got != 7 {
		t.Errorf("len(QuantizedTypes()) = %d, want 7", got)
	}
	if got := len(optest.ArithmeticTypes()); got != len(optest.IntTypes())+len(optest.FloatTypes()) {
		t.Errorf("len(ArithmeticTypes()) = %d, want %d", got, len(optest.IntTypes())+len(optest.FloatTypes()))
	}
	if got := optest.BoolTypes()[0].Storage; got != tensor.I1 {
		t.Errorf("BoolTypes()[0].Storage = %v, want I1", got)
	}
	for _, p := range optest.PerAxisQuantizedTypes() {
		if p.Layout != optest.LayoutPerAxis {
			t.Fatalf("PerAxisQuantizedTypes() returned layout %v", p.Layout)
		}
	}
}

// TestCombinatorsAPI verifies the list algebra through the facade.
func TestCombinatorsAPI(t *testing.T) {
	ints := optest.IntTypes()
	floats := optest.FloatTypes()

	all := optest.Concat(ints, floats)
	if len(all) != len(ints)+len(floats) {
		t.Fatalf("Concat length = %d, want %d", len(all), len(ints)+len(floats))
	}

	names := optest.Map(optest.Param.Name, ints)
	if names[0] != "SI4" {
		t.Errorf("Map name[0] = %q, want %q", names[0], "SI4")
	}

	quantized := optest.Filter(func(p optest.Param) bool { return p.Layout != optest.LayoutPlain }, optest.QuantizedTypes())
	if len(quantized) != 0 {
		t.Errorf("QuantizedTypes() carries layouts before wrapping: %d", len(quantized))
	}

	pairs := optest.CrossProduct(ints, floats)
	if len(pairs) != len(ints)*len(floats) {
		t.Errorf("CrossProduct length = %d, want %d", len(pairs), len(ints)*len(floats))
	}

	same := optest.Filter(optest.SameTypes, optest.CrossProduct(ints, ints))
	if len(same) != len(ints) {
		t.Errorf("SameTypes diagonal = %d, want %d", len(same), len(ints))
	}

	if got := optest.JoinNames(pairs[0]); got != "SI4:BF16" {
		t.Errorf("JoinNames = %q, want %q", got, "SI4:BF16")
	}
	if got := optest.CaseName("Add", pairs[0][0].Name()); got != "Add:SI4" {
		t.Errorf("CaseName = %q, want %q", got, "Add:SI4")
	}
}

// TestSynthesisAPI verifies buffers and tensors come back through the
// facade with reproducible contents.
func TestSynthesisAPI(t *testing.T) {
	buf := optest.RandomBuffer[int8](tensor.SI4, tensor.Shape{16})
	if len(buf) != 16 {
		t.Fatalf("RandomBuffer length = %d, want 16", len(buf))
	}
	for _, v := range buf {
		if v < -8 || v > 7 {
			t.Fatalf("RandomBuffer value %d outside SI4 range", v)
		}
	}

	iota := optest.IotaBufferRange[int32](tensor.SI32, tensor.Shape{4}, 0, 0, 2)
	want := []int32{0, 1, 2, 0}
	for i, v := range iota {
		if v != want[i] {
			t.Fatalf("IotaBufferRange = %v, want %v", iota, want)
		}
	}

	g1 := optest.NewGenerator(7)
	g2 := optest.NewGenerator(7)
	p := optest.PerTensor(optest.Pair(tensor.SI8, tensor.F32))
	a, err := g1.Random(p, tensor.Shape{3, 3})
	if err != nil {
		t.Fatalf("Random failed: %v", err)
	}
	b, err := g2.Random(p, tensor.Shape{3, 3})
	if err != nil {
		t.Fatalf("Random failed: %v", err)
	}
	if !bytes.Equal(a.Data(), b.Data()) {
		t.Error("same seed produced different tensors")
	}

	it, err := optest.IotaTensor(optest.Single(tensor.SI16), tensor.Shape{2})
	if err != nil {
		t.Fatalf("IotaTensor failed: %v", err)
	}
	vals := tensor.View[int16](it)
	if vals[0] != -32768 || vals[1] != -32767 {
		t.Errorf("IotaTensor values = %v, want [-32768 -32767]", vals)
	}

	tt, err := optest.TensorTypeFor(optest.Single(tensor.F32), tensor.Shape{2, 2})
	if err != nil {
		t.Fatalf("TensorTypeFor failed: %v", err)
	}
	if tt.Storage() != tensor.F32 {
		t.Errorf("TensorTypeFor storage = %v, want F32", tt.Storage())
	}
}

type facadeOp struct{}

func (facadeOp) SupportedStorageType() tensor.DataType { return tensor.SI32 }

// TestOpAPI verifies op helpers through the facade.
func TestOpAPI(t *testing.T) {
	if got := optest.SupportedStorageType(struct{}{}); got != tensor.F32 {
		t.Errorf("SupportedStorageType default = %v, want F32", got)
	}
	if got := optest.SupportedStorageType(facadeOp{}); got != tensor.SI32 {
		t.Errorf("SupportedStorageType = %v, want SI32", got)
	}

	cases := optest.WithOp(facadeOp{}, optest.FloatTypes())
	if len(cases) != len(optest.FloatTypes()) {
		t.Fatalf("WithOp length = %d, want %d", len(cases), len(optest.FloatTypes()))
	}
	if got := cases[0].Name(); got != "facadeOp:BF16" {
		t.Errorf("OpCase name = %q, want %q", got, "facadeOp:BF16")
	}
}

// TestComparisonAPI verifies tensor comparison through the facade.
func TestComparisonAPI(t *testing.T) {
	tt := tensor.TensorType{Shape: tensor.Shape{2}, Element: tensor.F32}
	a, err := tensor.NewTensorFrom[float32](tt, []float32{1, 2})
	if err != nil {
		t.Fatalf("NewTensorFrom failed: %v", err)
	}
	b, err := tensor.NewTensorFrom[float32](tt, []float32{1, 2.0005})
	if err != nil {
		t.Fatalf("NewTensorFrom failed: %v", err)
	}

	if diff := optest.DiffTensors(a, b); diff == "" {
		t.Error("DiffTensors reported equal for differing values")
	}
	if diff := optest.DiffTensors(a, b, optest.Tolerance(1e-2, 0)); diff != "" {
		t.Errorf("DiffTensors with tolerance reported diff:\n%s", diff)
	}

	if !optest.AlmostEqual(1.0, 1.0005, 1e-2) {
		t.Error("AlmostEqual(1.0, 1.0005, 1e-2) = false")
	}
	if optest.AlmostEqual(1.0, 1.1, 1e-3) {
		t.Error("AlmostEqual(1.0, 1.1, 1e-3) = true")
	}
}
