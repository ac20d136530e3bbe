// Package fixture provides reading and writing of .shlo test fixture files.
//
// This package wraps the internal fixture implementation and exports a clean
// public API for persisting synthesized test tensors together with the seed
// and quantization parameters that produced them.
//
// Example usage:
//
//	import (
//	    "github.com/schakrabortygithub/shlo/fixture"
//	    "github.com/schakrabortygithub/shlo/optest"
//	    "github.com/schakrabortygithub/shlo/tensor"
//	)
//
//	// Build a fixture from synthesized tensors.
//	fx := fixture.NewFixture(42)
//	input, _ := optest.RandomTensor(optest.Single(tensor.F32), tensor.Shape{2, 3})
//	_ = fx.Add("input", input)
//	if err := fixture.WriteFile("add_case.shlo", fx); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Read it back.
//	r, err := fixture.NewReader("add_case.shlo")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	got, err := r.LoadTensor("input")
package fixture

import (
	"io"

	"github.com/schakrabortygithub/shlo/internal/fixture"
)

// Format constants.
const (
	MagicBytes      = fixture.MagicBytes
	FormatVersion   = fixture.FormatVersion
	FixedHeaderSize = fixture.FixedHeaderSize
	HeaderAlignment = fixture.HeaderAlignment
	ChecksumSize    = fixture.ChecksumSize
)

// Errors returned while reading or writing fixture files.
var (
	ErrInvalidMagic       = fixture.ErrInvalidMagic
	ErrUnsupportedVersion = fixture.ErrUnsupportedVersion
	ErrChecksumMismatch   = fixture.ErrChecksumMismatch
	ErrHeaderTooLarge     = fixture.ErrHeaderTooLarge
	ErrOutOfBounds        = fixture.ErrOutOfBounds
	ErrDuplicateTensor    = fixture.ErrDuplicateTensor
)

// Fixture is an ordered collection of named tensors plus the seed and
// metadata they were generated with.
type Fixture = fixture.Fixture

// Header is the decoded JSON header of a .shlo file.
type Header = fixture.Header

// TensorMeta describes one tensor in a fixture file.
type TensorMeta = fixture.TensorMeta

// QuantMeta carries the quantization parameters of a quantized tensor.
type QuantMeta = fixture.QuantMeta

// ValidationError describes a header validation failure.
type ValidationError = fixture.ValidationError

// ValidationLevel controls how strictly headers are validated on read.
type ValidationLevel = fixture.ValidationLevel

// Validation levels.
const (
	ValidationStrict ValidationLevel = fixture.ValidationStrict
	ValidationNormal ValidationLevel = fixture.ValidationNormal
	ValidationNone   ValidationLevel = fixture.ValidationNone
)

// NewFixture returns an empty fixture recording the given seed.
func NewFixture(seed int64) *Fixture {
	return fixture.NewFixture(seed)
}

// Writer writes fixtures to a .shlo file.
type Writer = fixture.Writer

// NewWriter creates the file at path and returns a writer for it.
func NewWriter(path string) (*Writer, error) {
	return fixture.NewWriter(path)
}

// WriteFile writes the fixture to a new .shlo file at path.
//
// Example:
//
//	fx := fixture.NewFixture(42)
//	_ = fx.Add("input", input)
//	if err := fixture.WriteFile("case.shlo", fx); err != nil {
//	    log.Fatal(err)
//	}
func WriteFile(path string, fx *Fixture) error {
	return fixture.WriteFile(path, fx)
}

// WriteTo encodes the fixture to an arbitrary writer.
func WriteTo(w io.Writer, fx *Fixture) error {
	return fixture.WriteTo(w, fx)
}

// Reader reads fixture files through buffered file I/O. Tensor data is
// read on demand, one tensor at a time.
type Reader = fixture.Reader

// ReaderOptions configures checksum verification and header validation.
type ReaderOptions = fixture.ReaderOptions

// NewReader opens a .shlo file with strict validation and verifies its
// checksum.
func NewReader(path string) (*Reader, error) {
	return fixture.NewReader(path)
}

// NewReaderWithOptions opens a .shlo file with explicit options.
//
// Example:
//
//	r, err := fixture.NewReaderWithOptions(path, fixture.ReaderOptions{
//	    SkipChecksumVerification: true,
//	    ValidationLevel:          fixture.ValidationNormal,
//	})
func NewReaderWithOptions(path string, opts ReaderOptions) (*Reader, error) {
	return fixture.NewReaderWithOptions(path, opts)
}

// ReadFrom decodes a fixture from a stream.
func ReadFrom(r io.Reader) (*Fixture, error) {
	return fixture.ReadFrom(r)
}

// MmapReader reads fixture files through memory mapping. Tensor data
// is returned as zero-copy slices into the mapped region, which stay
// valid until Close.
type MmapReader = fixture.MmapReader

// NewMmapReader memory-maps the .shlo file at path.
//
// Checksums are not verified on open; call VerifyChecksum when
// integrity matters more than startup latency.
func NewMmapReader(path string) (*MmapReader, error) {
	return fixture.NewMmapReader(path)
}

// Manifest indexes the fixture files of a generated test suite.
type Manifest = fixture.Manifest

// ManifestCase is one entry of a manifest.
type ManifestCase = fixture.ManifestCase

// ManifestFileName is the conventional manifest file name.
const ManifestFileName = fixture.ManifestFileName

// NewManifest returns a manifest with a fresh ID.
func NewManifest(name string, seed int64) *Manifest {
	return fixture.NewManifest(name, seed)
}

// LoadManifest reads a manifest from a YAML file.
func LoadManifest(path string) (*Manifest, error) {
	return fixture.LoadManifest(path)
}

// ReadFile loads a whole fixture from the .shlo file at path.
//
// Example:
//
//	fx, err := fixture.ReadFile("case.shlo")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	input, _ := fx.Get("input")
func ReadFile(path string) (*Fixture, error) {
	return fixture.ReadFile(path)
}
