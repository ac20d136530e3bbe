package optest

import "github.com/schakrabortygithub/shlo/internal/tensor"

// The canned lists return fresh slices; callers may mutate the result.

// BoolTypes returns the boolean test parameter.
func BoolTypes() []Param {
	return []Param{Single(tensor.I1)}
}

// IntTypes returns a parameter for every signed integer type.
func IntTypes() []Param {
	return []Param{
		Single(tensor.SI4),
		Single(tensor.SI8),
		Single(tensor.SI16),
		Single(tensor.SI32),
	}
}

// FloatTypes returns a parameter for every floating-point type.
func FloatTypes() []Param {
	return []Param{
		Single(tensor.BF16),
		Single(tensor.F16),
		Single(tensor.F32),
	}
}

// ArithmeticTypes returns the integer parameters followed by the float
// parameters.
func ArithmeticTypes() []Param {
	return Concat(IntTypes(), FloatTypes())
}

// NonQuantizedTypes returns the boolean parameter followed by the
// arithmetic parameters.
func NonQuantizedTypes() []Param {
	return Concat(BoolTypes(), ArithmeticTypes())
}

// QuantizedTypes returns the supported storage/expressed pairs without
// a layout applied.
func QuantizedTypes() []Param {
	return []Param{
		Pair(tensor.SI4, tensor.F32),
		Pair(tensor.SI8, tensor.F32),
		Pair(tensor.SI16, tensor.F32),
		Pair(tensor.SI4, tensor.BF16),
		Pair(tensor.SI8, tensor.BF16),
		Pair(tensor.SI4, tensor.F16),
		Pair(tensor.SI8, tensor.F16),
	}
}

// PerTensorQuantizedTypes returns the quantized pairs with per-tensor
// layout applied.
func PerTensorQuantizedTypes() []Param {
	return Map(PerTensor, QuantizedTypes())
}

// PerAxisQuantizedTypes returns the quantized pairs quantized along
// axis 0.
func PerAxisQuantizedTypes() []Param {
	return Map(PerAxisAt(0), QuantizedTypes())
}
