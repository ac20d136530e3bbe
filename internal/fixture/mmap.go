package fixture

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/schakrabortygithub/shlo/internal/tensor"
)

// MmapReader provides memory-mapped access to .shlo files. Only the
// header is parsed up front; tensor bytes are paged in on demand, so
// large fixture sets stay cheap to open.
type MmapReader struct {
	file       *os.File
	data       []byte // mapped region, read-only
	size       int64
	header     Header
	fixed      fixedHeader
	dataOffset int64
	closed     bool
}

// NewMmapReader maps the file at path read-only and parses its header.
// Always Close the reader to unmap the file.
func NewMmapReader(path string) (*MmapReader, error) {
	//nolint:gosec // G304: fixture path comes from the caller
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	data, err := mmapFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("mmap failed: %w", err)
	}

	r := &MmapReader{
		file: file,
		data: data,
		size: stat.Size(),
	}
	if err := r.parseHeader(); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}
	return r, nil
}

// parseHeader parses the headers out of the mapped region.
func (r *MmapReader) parseHeader() error {
	if r.size < FixedHeaderSize {
		return fmt.Errorf("file too small: %d bytes", r.size)
	}
	fixed, err := parseFixedHeader(r.data[:FixedHeaderSize])
	if err != nil {
		return err
	}
	r.fixed = fixed

	//nolint:gosec // G115: headerSize is capped at MaxHeaderSize
	headerEnd := int64(FixedHeaderSize) + int64(fixed.headerSize)
	if headerEnd > r.size {
		return fmt.Errorf("header extends beyond file: header_end=%d, file_size=%d", headerEnd, r.size)
	}
	if err := json.Unmarshal(r.data[FixedHeaderSize:headerEnd], &r.header); err != nil {
		return fmt.Errorf("failed to parse header JSON: %w", err)
	}

	r.dataOffset = alignUp(headerEnd)
	//nolint:gosec // G115: dataSize is bounds checked below
	if r.dataOffset+int64(r.fixed.dataSize) > r.size {
		return fmt.Errorf("data section extends beyond file")
	}

	//nolint:gosec // G115: dataSize is bounds checked above
	return ValidateHeader(&r.header, int64(r.fixed.dataSize), ValidationStrict)
}

// Close unmaps and closes the file.
func (r *MmapReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	var err error
	if r.data != nil {
		err = munmapFile(r.data)
		r.data = nil
	}
	if closeErr := r.file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// Header returns the file header.
func (r *MmapReader) Header() Header {
	return r.header
}

// Seed returns the synthesis seed recorded in the header.
func (r *MmapReader) Seed() int64 {
	return r.header.Seed
}

// VerifyChecksum recomputes the data section checksum against the
// stored one. Opening the reader does not verify it, so callers that
// care about integrity should call this once after opening.
func (r *MmapReader) VerifyChecksum() error {
	if r.closed {
		return fmt.Errorf("reader is closed")
	}
	//nolint:gosec // G115: dataSize was bounds checked during parse
	end := r.dataOffset + int64(r.fixed.dataSize)
	return VerifyChecksum(Checksum(r.data[r.dataOffset:end]), r.fixed.checksum)
}

// TensorNames returns all tensor names in file order.
func (r *MmapReader) TensorNames() []string {
	names := make([]string, len(r.header.Tensors))
	for i, meta := range r.header.Tensors {
		names[i] = meta.Name
	}
	return names
}

// TensorInfo returns the metadata of a specific tensor.
func (r *MmapReader) TensorInfo(name string) (*TensorMeta, error) {
	for i := range r.header.Tensors {
		if r.header.Tensors[i].Name == name {
			return &r.header.Tensors[i], nil
		}
	}
	return nil, fmt.Errorf("tensor %q not found", name)
}

// TensorData returns a zero-copy slice into the mapped region. The
// slice is valid only while the reader is open and must not be
// written to.
func (r *MmapReader) TensorData(name string) ([]byte, error) {
	if r.closed {
		return nil, fmt.Errorf("reader is closed")
	}

	meta, err := r.TensorInfo(name)
	if err != nil {
		return nil, err
	}
	start := r.dataOffset + meta.Offset
	end := start + meta.Size
	if end > r.size {
		return nil, fmt.Errorf("%w: tensor %q: offset %d + size %d > file_size %d",
			ErrOutOfBounds, name, start, meta.Size, r.size)
	}
	return r.data[start:end], nil
}

// LoadTensor materializes the named tensor, copying its bytes out of
// the mapped region.
func (r *MmapReader) LoadTensor(name string) (*tensor.Tensor, error) {
	meta, err := r.TensorInfo(name)
	if err != nil {
		return nil, err
	}
	data, err := r.TensorData(name)
	if err != nil {
		return nil, err
	}
	return tensorFromMeta(*meta, data)
}

// ReadFixture loads every tensor into a fixture, preserving file order.
func (r *MmapReader) ReadFixture() (*Fixture, error) {
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
