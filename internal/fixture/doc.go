// Package fixture provides the native .shlo format for saving and
// loading synthesized test tensors.
//
// A .shlo file holds the named input and expected-output tensors of a
// test case together with the seed that produced them:
//
//	Format Structure:
//	  [64 bytes: Fixed header]
//	    0x00  Magic "SHLO"
//	    0x04  Version (uint32 LE)
//	    0x08  Flags (uint32 LE)
//	    0x10  Header size (uint64 LE)
//	    0x18  Data size (uint64 LE)
//	    0x20  SHA-256 checksum of the data section
//	  [Header: JSON metadata]
//	  [Tensor data: raw bytes, 64-byte aligned]
//
// The format supports every storage type of the library, including
// per-tensor and per-axis quantized tensors, whose scales and zero
// points travel in the JSON header.
//
// Example usage:
//
//	fx := fixture.NewFixture(seed)
//	fx.Add("input", input)
//	fx.Add("expected", expected)
//	if err := fixture.WriteFile("add_si8.shlo", fx); err != nil {
//	    log.Fatal(err)
//	}
//
//	r, err := fixture.NewReader("add_si8.shlo")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	got, err := r.LoadTensor("input")
package fixture
