package fixture

import (
	"fmt"
	"sort"
	"strings"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize    = 100 * 1024 * 1024 // Maximum JSON header size
	MaxTensorCount   = 100_000           // Maximum number of tensors in a file
	MaxTensorNameLen = 4096              // Maximum tensor name length
)

// ValidationLevel controls header validation strictness.
type ValidationLevel int

const (
	// ValidationStrict performs all checks, including offset overlap
	// and bounds. The default.
	ValidationStrict ValidationLevel = iota
	// ValidationNormal checks tensor counts and names only.
	ValidationNormal
	// ValidationNone skips validation. Use only with trusted input.
	ValidationNone
)

// ValidateTensorName rejects names that are unusable as keys or could
// be abused when a name is spliced into a path.
func ValidateTensorName(name string) error {
	if name == "" {
		return &ValidationError{
			Kind:    "invalid_name",
			Details: "empty tensor name",
		}
	}
	if len(name) > MaxTensorNameLen {
		return &ValidationError{
			Kind:    "name_too_long",
			Tensor:  name,
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxTensorNameLen),
		}
	}
	if strings.Contains(name, "..") {
		return &ValidationError{
			Kind:    "invalid_name",
			Tensor:  name,
			Details: "contains '..'",
		}
	}
	if strings.ContainsAny(name, "/\\") {
		return &ValidationError{
			Kind:    "invalid_name",
			Tensor:  name,
			Details: "contains path separator",
		}
	}
	if strings.Contains(name, "\x00") {
		return &ValidationError{
			Kind:    "invalid_name",
			Tensor:  name,
			Details: "contains null byte",
		}
	}
	return nil
}

// ValidateTensorOffsets checks for overlapping tensor regions and
// reads beyond the data section. Malformed files must not be able to
// alias one tensor's bytes into another.
func ValidateTensorOffsets(tensors []TensorMeta, dataSize int64) error {
	if len(tensors) > MaxTensorCount {
		return &ValidationError{
			Kind:    "too_many_tensors",
			Details: fmt.Sprintf("got %d, max %d", len(tensors), MaxTensorCount),
		}
	}

	sorted := make([]TensorMeta, len(tensors))
	copy(sorted, tensors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, t := range sorted {
		if t.Offset < 0 || t.Size < 0 {
			return &ValidationError{
				Kind:    "negative_offset",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset=%d, size=%d", t.Offset, t.Size),
			}
		}
		if t.Offset+t.Size > dataSize {
			return &ValidationError{
				Kind:    "out_of_bounds",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", t.Offset, t.Size, dataSize),
			}
		}
		if i < len(sorted)-1 {
			next := sorted[i+1]
			if t.Offset+t.Size > next.Offset {
				return &ValidationError{
					Kind:    "offset_overlap",
					Tensor:  t.Name,
					Tensor2: next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						t.Offset, t.Offset+t.Size, next.Offset, next.Offset+next.Size),
				}
			}
		}
	}
	return nil
}

// validateQuantMeta checks the structural consistency of quantization
// metadata. Value-level checks happen when the tensor type is rebuilt.
func validateQuantMeta(t TensorMeta) error {
	q := t.Quant
	if q == nil {
		return nil
	}
	if len(q.Scales) == 0 || len(q.Scales) != len(q.ZeroPoints) {
		return &ValidationError{
			Kind:    "invalid_quant",
			Tensor:  t.Name,
			Details: fmt.Sprintf("%d scales, %d zero points", len(q.Scales), len(q.ZeroPoints)),
		}
	}
	if q.Axis != nil && *q.Axis < 0 {
		return &ValidationError{
			Kind:    "invalid_quant",
			Tensor:  t.Name,
			Details: fmt.Sprintf("negative quantized axis %d", *q.Axis),
		}
	}
	return nil
}

// ValidateHeader checks the parsed header at the given level.
func ValidateHeader(h *Header, dataSize int64, level ValidationLevel) error {
	if level == ValidationNone {
		return nil
	}

	if len(h.Tensors) > MaxTensorCount {
		return &ValidationError{
			Kind:    "too_many_tensors",
			Details: fmt.Sprintf("got %d, max %d", len(h.Tensors), MaxTensorCount),
		}
	}
	for _, t := range h.Tensors {
		if err := ValidateTensorName(t.Name); err != nil {
			return err
		}
		if err := validateQuantMeta(t); err != nil {
			return err
		}
	}

	if level == ValidationStrict {
		if err := ValidateTensorOffsets(h.Tensors, dataSize); err != nil {
			return err
		}
	}
	return nil
}
