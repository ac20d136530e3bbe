package fixture

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// Writer writes fixtures in .shlo format.
type Writer struct {
	file   *os.File
	closed bool
}

// NewWriter creates a .shlo file writer at path.
func NewWriter(path string) (*Writer, error) {
	//nolint:gosec // G304: fixture output path comes from the caller
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return &Writer{file: file}, nil
}

// Write writes the fixture to the file.
func (w *Writer) Write(fx *Fixture) error {
	if w.closed {
		return fmt.Errorf("writer is closed")
	}
	return encodeFixture(w.file, fx)
}

// Close closes the writer and the underlying file.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// WriteFile writes the fixture to a new file at path.
func WriteFile(path string, fx *Fixture) error {
	w, err := NewWriter(path)
	if err != nil {
		return err
	}
	if err := w.Write(fx); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// WriteTo writes the fixture to an io.Writer. This is useful for
// writing to buffers or network connections.
func WriteTo(w io.Writer, fx *Fixture) error {
	return encodeFixture(w, fx)
}

// encodeFixture serializes fx: fixed header, JSON header, alignment
// padding, then the tensor data section.
func encodeFixture(w io.Writer, fx *Fixture) error {
	header, data := buildPayload(fx)

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	flags := uint32(0)
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	for _, meta := range header.Tensors {
		if meta.Quant != nil {
			flags |= FlagHasQuantized
			break
		}
	}

	fixed := fixedHeader{
		version:    FormatVersion,
		flags:      flags,
		headerSize: uint64(len(headerJSON)),
		dataSize:   uint64(len(data)),
		checksum:   Checksum(data),
	}

	if _, err := w.Write(fixed.encode()); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header JSON: %w", err)
	}

	pos := int64(FixedHeaderSize) + int64(len(headerJSON))
	if padding := alignUp(pos) - pos; padding > 0 {
		if _, err := w.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write tensor data: %w", err)
	}
	return nil
}

// buildPayload lays the fixture's tensors out back to back and
// describes them in a header.
func buildPayload(fx *Fixture) (Header, []byte) {
	header := Header{
		FormatVersion:  FormatVersion,
		LibraryVersion: libraryVersion,
		CreatedAt:      time.Now().UTC(),
		Seed:           fx.Seed,
		Tensors:        make([]TensorMeta, 0, len(fx.entries)),
		Metadata:       fx.Metadata,
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	var total int
	for _, e := range fx.entries {
		total += e.tensor.ByteSize()
	}
	data := make([]byte, 0, total)

	var offset int64
	for _, e := range fx.entries {
		size := int64(e.tensor.ByteSize())
		header.Tensors = append(header.Tensors, TensorMeta{
			Name:   e.name,
			DType:  e.tensor.StorageType().String(),
			Shape:  []int(e.tensor.Dims()),
			Quant:  quantMetaFor(e.tensor),
			Offset: offset,
			Size:   size,
		})
		data = append(data, e.tensor.Data()...)
		offset += size
	}
	return header, data
}
