// Copyright 2025 The SHLO Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optest provides the test-support machinery for exercising
// numeric operators across storage types and quantization layouts.
//
// # Overview
//
// Operator tests repeat the same scenario over many element type
// combinations. This package provides the three pieces that make such
// tables cheap to build:
//   - Params: a test parameter names a storage type, an optional
//     expressed type, and a quantization layout
//   - Combinators: Concat, Map, Filter, and CrossProduct assemble
//     parameter lists from the canned ones
//   - Synthesis: seeded random and counting input buffers for every
//     storage type
//
// # Basic Usage
//
//	import "github.com/schakrabortygithub/shlo/optest"
//
//	for _, p := range optest.ArithmeticTypes() {
//	    t.Run(p.Name(), func(t *testing.T) {
//	        in, err := optest.RandomTensor(p, tensor.Shape{2, 3})
//	        ...
//	    })
//	}
//
// # Quantized Parameters
//
// The canned quantized lists pair every supported storage type with
// its expressed types. PerTensor and PerAxis wrap a pair with a
// layout, which shows up in the rendered case name:
//
//	optest.PerTensor(optest.Pair(tensor.SI8, tensor.F32)).Name()
//	// "PerTensor[SI8_F32]"
//
// # Reproducibility
//
// Package-level synthesis draws from a process-wide generator. Tests
// that must reproduce exact inputs create their own:
//
//	g := optest.NewGenerator(42)
//	in, err := g.Random(p, shape)
package optest
