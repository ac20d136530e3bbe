package fixture

import (
	"errors"
	"strings"
	"testing"
)

func validationKind(t *testing.T, err error) string {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error %v is not a *ValidationError", err)
	}
	return verr.Kind
}

func TestValidateTensorName(t *testing.T) {
	valid := []string{
		"weight",
		"layer.0.bias",
		"Add:PerTensor[SI8_F32]",
		"Abs:SI32",
	}
	for _, name := range valid {
		if err := ValidateTensorName(name); err != nil {
			t.Errorf("ValidateTensorName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []struct {
		name string
		kind string
	}{
		{"", "invalid_name"},
		{"../escape", "invalid_name"},
		{"dir/tensor", "invalid_name"},
		{"dir\\tensor", "invalid_name"},
		{"nul\x00byte", "invalid_name"},
		{strings.Repeat("x", MaxTensorNameLen+1), "name_too_long"},
	}
	for _, tt := range invalid {
		err := ValidateTensorName(tt.name)
		if err == nil {
			t.Errorf("ValidateTensorName(%.20q) = nil, want error", tt.name)
			continue
		}
		if kind := validationKind(t, err); kind != tt.kind {
			t.Errorf("ValidateTensorName(%.20q) kind = %q, want %q", tt.name, kind, tt.kind)
		}
	}
}

func TestValidateTensorOffsets(t *testing.T) {
	packed := []TensorMeta{
		{Name: "a", Offset: 0, Size: 8},
		{Name: "b", Offset: 8, Size: 8},
	}
	if err := ValidateTensorOffsets(packed, 16); err != nil {
		t.Errorf("packed layout: %v", err)
	}

	gapped := []TensorMeta{
		{Name: "a", Offset: 0, Size: 8},
		{Name: "b", Offset: 16, Size: 8},
	}
	if err := ValidateTensorOffsets(gapped, 24); err != nil {
		t.Errorf("gapped layout: %v", err)
	}

	overlap := []TensorMeta{
		{Name: "a", Offset: 0, Size: 12},
		{Name: "b", Offset: 8, Size: 8},
	}
	if kind := validationKind(t, ValidateTensorOffsets(overlap, 32)); kind != "offset_overlap" {
		t.Errorf("overlap kind = %q, want offset_overlap", kind)
	}

	oob := []TensorMeta{
		{Name: "a", Offset: 0, Size: 17},
	}
	if kind := validationKind(t, ValidateTensorOffsets(oob, 16)); kind != "out_of_bounds" {
		t.Errorf("out-of-bounds kind = %q, want out_of_bounds", kind)
	}

	negative := []TensorMeta{
		{Name: "a", Offset: -1, Size: 8},
	}
	if kind := validationKind(t, ValidateTensorOffsets(negative, 16)); kind != "negative_offset" {
		t.Errorf("negative kind = %q, want negative_offset", kind)
	}
}

func TestValidateHeaderQuantMeta(t *testing.T) {
	axis := 0
	header := &Header{
		Tensors: []TensorMeta{
			{
				Name:  "q",
				Size:  4,
				Quant: &QuantMeta{Expressed: "F32", Scales: []float32{0.5, 1.0}, ZeroPoints: []int32{0}, Axis: &axis},
			},
		},
	}
	if kind := validationKind(t, ValidateHeader(header, 4, ValidationNormal)); kind != "invalid_quant" {
		t.Errorf("kind = %q, want invalid_quant", kind)
	}

	negAxis := -1
	header.Tensors[0].Quant = &QuantMeta{Expressed: "F32", Scales: []float32{0.5}, ZeroPoints: []int32{0}, Axis: &negAxis}
	if kind := validationKind(t, ValidateHeader(header, 4, ValidationNormal)); kind != "invalid_quant" {
		t.Errorf("kind = %q, want invalid_quant", kind)
	}
}

func TestValidateHeaderLevels(t *testing.T) {
	overlapping := &Header{
		Tensors: []TensorMeta{
			{Name: "a", Offset: 0, Size: 12},
			{Name: "b", Offset: 8, Size: 8},
		},
	}

	if err := ValidateHeader(overlapping, 32, ValidationStrict); err == nil {
		t.Error("strict validation missed overlapping offsets")
	}
	if err := ValidateHeader(overlapping, 32, ValidationNormal); err != nil {
		t.Errorf("normal validation checks offsets: %v", err)
	}

	badName := &Header{
		Tensors: []TensorMeta{{Name: "../x", Size: 4}},
	}
	if err := ValidateHeader(badName, 4, ValidationNormal); err == nil {
		t.Error("normal validation missed bad tensor name")
	}
	if err := ValidateHeader(badName, 4, ValidationNone); err != nil {
		t.Errorf("ValidationNone rejects input: %v", err)
	}
}
