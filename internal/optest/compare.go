package optest

import (
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/schakrabortygithub/shlo/internal/tensor"
)

// Tolerance returns a comparison option treating values within the
// given relative or absolute tolerance as equal.
func Tolerance(atol, rtol float64) cmp.Option {
	return cmpopts.EquateApprox(rtol, atol)
}

// AlmostEqual reports whether a and b differ by at most atol.
func AlmostEqual(a, b, atol float64) bool {
	return math.Abs(a-b) <= atol
}

// DiffTensors compares two tensors and returns a human-readable diff,
// or the empty string when they match. Tensor types must match
// exactly, including quantization parameters; element values are
// compared as widened storage values with any supplied options, such
// as Tolerance.
func DiffTensors(got, want *tensor.Tensor, opts ...cmp.Option) string {
	switch {
	case got == nil && want == nil:
		return ""
	case got == nil || want == nil:
		return fmt.Sprintf("got tensor %v, want %v", got, want)
	}

	if got.Type().String() != want.Type().String() {
		return fmt.Sprintf("tensor types differ: got %s, want %s", got.Type(), want.Type())
	}
	gq, gotQuantized := got.Quantized()
	wq, wantQuantized := want.Quantized()
	if gotQuantized != wantQuantized {
		return fmt.Sprintf("tensor types differ: got %s, want %s", got.Type(), want.Type())
	}
	if gotQuantized && !gq.Equal(wq) {
		return fmt.Sprintf("quantization parameters differ: got scales %v zero points %v, want scales %v zero points %v",
			gq.Scales(), gq.ZeroPoints(), wq.Scales(), wq.ZeroPoints())
	}

	if diff := cmp.Diff(want.Float64s(), got.Float64s(), opts...); diff != "" {
		return fmt.Sprintf("element values mismatch (-want +got):\n%s", diff)
	}
	return ""
}
