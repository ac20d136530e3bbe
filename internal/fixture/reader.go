package fixture

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/schakrabortygithub/shlo/internal/tensor"
)

// Reader reads fixtures from .shlo format.
type Reader struct {
	file       *os.File
	header     Header
	fixed      fixedHeader
	dataOffset int64 // Offset where the data section starts
	opts       ReaderOptions
	closed     bool
}

// ReaderOptions configures the behavior of Reader.
type ReaderOptions struct {
	SkipChecksumVerification bool            // Skip checksum verification (faster but less safe)
	ValidationLevel          ValidationLevel // Header validation strictness
}

// NewReader creates a .shlo file reader with strict validation.
func NewReader(path string) (*Reader, error) {
	return NewReaderWithOptions(path, ReaderOptions{ValidationLevel: ValidationStrict})
}

// NewReaderWithOptions creates a .shlo file reader with custom options.
func NewReaderWithOptions(path string, opts ReaderOptions) (*Reader, error) {
	//nolint:gosec // G304: fixture path comes from the caller
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r := &Reader{file: file, opts: opts}
	if err := r.parseHeader(); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	//nolint:gosec // G115: dataSize was bounds checked against the file size below
	dataSize := int64(r.fixed.dataSize)
	if r.dataOffset+dataSize > info.Size() {
		_ = file.Close()
		return nil, fmt.Errorf("data section extends beyond file: offset %d + size %d > %d", r.dataOffset, dataSize, info.Size())
	}

	if err := ValidateHeader(&r.header, dataSize, opts.ValidationLevel); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !opts.SkipChecksumVerification {
		if err := r.verifyChecksum(); err != nil {
			_ = file.Close()
			return nil, err
		}
	}
	return r, nil
}

// parseHeader reads the fixed header and the JSON header.
func (r *Reader) parseHeader() error {
	buf := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r.file, buf); err != nil {
		return fmt.Errorf("failed to read fixed header: %w", err)
	}

	fixed, err := parseFixedHeader(buf)
	if err != nil {
		return err
	}
	r.fixed = fixed

	headerBytes := make([]byte, fixed.headerSize)
	if _, err := io.ReadFull(r.file, headerBytes); err != nil {
		return fmt.Errorf("failed to read header JSON: %w", err)
	}
	if err := json.Unmarshal(headerBytes, &r.header); err != nil {
		return fmt.Errorf("failed to parse header JSON: %w", err)
	}

	//nolint:gosec // G115: headerSize is capped at MaxHeaderSize
	r.dataOffset = alignUp(FixedHeaderSize + int64(fixed.headerSize))
	return nil
}

// verifyChecksum recomputes the data section checksum and compares it
// against the stored one.
func (r *Reader) verifyChecksum() error {
	if _, err := r.file.Seek(r.dataOffset, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to data section: %w", err)
	}
	//nolint:gosec // G115: dataSize was bounds checked against the file size
	computed, err := ChecksumReader(io.LimitReader(r.file, int64(r.fixed.dataSize)))
	if err != nil {
		return fmt.Errorf("failed to read data section for checksum: %w", err)
	}
	return VerifyChecksum(computed, r.fixed.checksum)
}

// Header returns the file header.
func (r *Reader) Header() Header {
	return r.header
}

// Seed returns the synthesis seed recorded in the header.
func (r *Reader) Seed() int64 {
	return r.header.Seed
}

// Metadata returns the metadata map from the header.
func (r *Reader) Metadata() map[string]string {
	return r.header.Metadata
}

// Checksum returns the stored SHA-256 checksum of the data section.
func (r *Reader) Checksum() [ChecksumSize]byte {
	return r.fixed.checksum
}

// TensorNames returns all tensor names in file order.
func (r *Reader) TensorNames() []string {
	names := make([]string, len(r.header.Tensors))
	for i, meta := range r.header.Tensors {
		names[i] = meta.Name
	}
	return names
}

// TensorInfo returns the metadata of a specific tensor.
func (r *Reader) TensorInfo(name string) (*TensorMeta, error) {
	for i := range r.header.Tensors {
		if r.header.Tensors[i].Name == name {
			return &r.header.Tensors[i], nil
		}
	}
	return nil, fmt.Errorf("tensor %q not found", name)
}

// ReadTensorData reads the raw bytes of the named tensor.
func (r *Reader) ReadTensorData(name string) ([]byte, error) {
	if r.closed {
		return nil, fmt.Errorf("reader is closed")
	}

	meta, err := r.TensorInfo(name)
	if err != nil {
		return nil, err
	}

	if _, err := r.file.Seek(r.dataOffset+meta.Offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to tensor data: %w", err)
	}
	data := make([]byte, meta.Size)
	if _, err := io.ReadFull(r.file, data); err != nil {
		return nil, fmt.Errorf("failed to read tensor data: %w", err)
	}
	return data, nil
}

// LoadTensor loads a single tensor from the file.
func (r *Reader) LoadTensor(name string) (*tensor.Tensor, error) {
	if r.closed {
		return nil, fmt.Errorf("reader is closed")
	}

	meta, err := r.TensorInfo(name)
	if err != nil {
		return nil, err
	}
	data, err := r.ReadTensorData(name)
	if err != nil {
		return nil, err
	}
	return tensorFromMeta(*meta, data)
}

// ReadFixture loads every tensor into a fixture, preserving file order.
func (r *Reader) ReadFixture() (*Fixture, error) {
	if r.closed {
		return nil, fmt.Errorf("reader is closed")
	}

	fx := NewFixture(r.header.Seed)
	for k, v := range r.header.Metadata {
		fx.Metadata[k] = v
	}
	for _, meta := range r.header.Tensors {
		tn, err := r.LoadTensor(meta.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to load tensor %s: %w", meta.Name, err)
		}
		if err := fx.Add(meta.Name, tn); err != nil {
			return nil, err
		}
	}
	return fx, nil
}

// Close closes the reader and the underlying file.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.file.Close()
}

// ReadFile loads a whole fixture from the .shlo file at path.
func ReadFile(path string) (*Fixture, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	fx, err := r.ReadFixture()
	if err != nil {
		_ = r.Close()
		return nil, err
	}
	if err := r.Close(); err != nil {
		return nil, fmt.Errorf("failed to close reader: %w", err)
	}
	return fx, nil
}

// tensorFromMeta materializes a tensor from its metadata and raw bytes.
func tensorFromMeta(meta TensorMeta, data []byte) (*tensor.Tensor, error) {
	typ, err := typeFromMeta(meta)
	if err != nil {
		return nil, err
	}
	tn, err := tensor.NewTensor(typ)
	if err != nil {
		return nil, fmt.Errorf("tensor %q: %w", meta.Name, err)
	}
	if len(data) != tn.ByteSize() {
		return nil, fmt.Errorf("tensor %q: data size %d does not match type %s", meta.Name, len(data), typ)
	}
	copy(tn.Data(), data)
	return tn, nil
}

// ReadFrom reads a fixture from an io.Reader. This is useful for
// reading from buffers or network connections.
func ReadFrom(reader io.Reader) (*Fixture, error) {
	buf := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return nil, fmt.Errorf("failed to read fixed header: %w", err)
	}
	fixed, err := parseFixedHeader(buf)
	if err != nil {
		return nil, err
	}

	headerBytes := make([]byte, fixed.headerSize)
	if _, err := io.ReadFull(reader, headerBytes); err != nil {
		return nil, fmt.Errorf("failed to read header JSON: %w", err)
	}
	var header Header
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	//nolint:gosec // G115: headerSize is capped at MaxHeaderSize
	pos := FixedHeaderSize + int64(fixed.headerSize)
	if padding := alignUp(pos) - pos; padding > 0 {
		if _, err := io.CopyN(io.Discard, reader, padding); err != nil {
			return nil, fmt.Errorf("failed to skip padding: %w", err)
		}
	}

	data := make([]byte, fixed.dataSize)
	if _, err := io.ReadFull(reader, data); err != nil {
		return nil, fmt.Errorf("failed to read data section: %w", err)
	}
	if err := VerifyChecksum(Checksum(data), fixed.checksum); err != nil {
		return nil, err
	}
	if err := ValidateHeader(&header, int64(len(data)), ValidationStrict); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	fx := NewFixture(header.Seed)
	for k, v := range header.Metadata {
		fx.Metadata[k] = v
	}
	for _, meta := range header.Tensors {
		tn, err := tensorFromMeta(meta, data[meta.Offset:meta.Offset+meta.Size])
		if err != nil {
			return nil, err
		}
		if err := fx.Add(meta.Name, tn); err != nil {
			return nil, err
		}
	}
	return fx, nil
}
