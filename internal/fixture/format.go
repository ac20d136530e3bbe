package fixture

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/schakrabortygithub/shlo/internal/tensor"
)

// Format constants.
const (
	MagicBytes      = "SHLO"
	FormatVersion   = 1
	FixedHeaderSize = 64   // Fixed header size (0x40 bytes)
	HeaderAlignment = 64   // Tensor data starts on a 64-byte boundary
	ChecksumSize    = 32   // SHA-256 checksum size
	ChecksumOffset  = 0x20 // Checksum offset in the fixed header
)

// Flags for the .shlo format.
const (
	FlagHasMetadata  uint32 = 1 << 0 // bit 0: custom metadata included
	FlagHasQuantized uint32 = 1 << 1 // bit 1: at least one quantized tensor
)

const libraryVersion = "0.1.0"

// Header is the JSON header of a .shlo file.
type Header struct {
	FormatVersion  int               `json:"format_version"`
	LibraryVersion string            `json:"library_version"`
	CreatedAt      time.Time         `json:"created_at"`
	Seed           int64             `json:"seed"`
	Tensors        []TensorMeta      `json:"tensors"`
	Metadata       map[string]string `json:"metadata"`
}

// TensorMeta describes one tensor in the data section.
type TensorMeta struct {
	Name   string     `json:"name"`
	DType  string     `json:"dtype"` // Canonical type name (e.g. "SI8", "F32")
	Shape  []int      `json:"shape"`
	Quant  *QuantMeta `json:"quant,omitempty"`
	Offset int64      `json:"offset"` // Bytes from the start of the data section
	Size   int64      `json:"size"`   // Size in bytes
}

// QuantMeta carries the quantization parameters of a quantized tensor.
// Axis is set for per-axis quantization only.
type QuantMeta struct {
	Expressed  string    `json:"expressed"`
	Scales     []float32 `json:"scales"`
	ZeroPoints []int32   `json:"zero_points"`
	Axis       *int      `json:"axis,omitempty"`
}

// fixedHeader is the decoded form of the 64-byte fixed header.
//
//	0x00-0x03  magic "SHLO"
//	0x04-0x07  version (uint32 LE)
//	0x08-0x0B  flags (uint32 LE)
//	0x0C-0x0F  reserved
//	0x10-0x17  JSON header size (uint64 LE)
//	0x18-0x1F  data section size (uint64 LE)
//	0x20-0x3F  SHA-256 checksum of the data section
type fixedHeader struct {
	version    uint32
	flags      uint32
	headerSize uint64
	dataSize   uint64
	checksum   [ChecksumSize]byte
}

func (h fixedHeader) encode() []byte {
	buf := make([]byte, FixedHeaderSize)
	copy(buf[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(buf[4:8], h.version)
	binary.LittleEndian.PutUint32(buf[8:12], h.flags)
	binary.LittleEndian.PutUint64(buf[16:24], h.headerSize)
	binary.LittleEndian.PutUint64(buf[24:32], h.dataSize)
	copy(buf[ChecksumOffset:ChecksumOffset+ChecksumSize], h.checksum[:])
	return buf
}

func parseFixedHeader(buf []byte) (fixedHeader, error) {
	var h fixedHeader
	if len(buf) < FixedHeaderSize {
		return h, fmt.Errorf("fixed header truncated: %d bytes", len(buf))
	}
	if string(buf[0:4]) != MagicBytes {
		return h, ErrInvalidMagic
	}
	h.version = binary.LittleEndian.Uint32(buf[4:8])
	if h.version != FormatVersion {
		return h, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, h.version, FormatVersion)
	}
	h.flags = binary.LittleEndian.Uint32(buf[8:12])
	h.headerSize = binary.LittleEndian.Uint64(buf[16:24])
	h.dataSize = binary.LittleEndian.Uint64(buf[24:32])
	if h.headerSize > MaxHeaderSize {
		return h, ErrHeaderTooLarge
	}
	if h.dataSize > math.MaxInt64 {
		return h, fmt.Errorf("data section size %d does not fit in int64", h.dataSize)
	}
	copy(h.checksum[:], buf[ChecksumOffset:ChecksumOffset+ChecksumSize])
	return h, nil
}

// alignUp rounds pos up to the next HeaderAlignment boundary.
func alignUp(pos int64) int64 {
	return (pos + HeaderAlignment - 1) / HeaderAlignment * HeaderAlignment
}

// quantMetaFor extracts quantization metadata from t, or nil when t is
// not quantized.
func quantMetaFor(t *tensor.Tensor) *QuantMeta {
	q, ok := t.Quantized()
	if !ok {
		return nil
	}
	m := &QuantMeta{
		Expressed:  q.ExpressedType().String(),
		Scales:     q.Scales(),
		ZeroPoints: q.ZeroPoints(),
	}
	if q.IsPerAxis() {
		axis := int(q.QuantizedDimension())
		m.Axis = &axis
	}
	return m
}

// typeFromMeta rebuilds the tensor type described by meta.
func typeFromMeta(meta TensorMeta) (tensor.Type, error) {
	dt, err := tensor.ParseDataType(meta.DType)
	if err != nil {
		return nil, fmt.Errorf("tensor %q: %w", meta.Name, err)
	}
	shape := tensor.Shape(append([]int(nil), meta.Shape...))
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("tensor %q: %w", meta.Name, err)
	}

	if meta.Quant == nil {
		return tensor.TensorType{Shape: shape, Element: dt}, nil
	}

	expressed, err := tensor.ParseDataType(meta.Quant.Expressed)
	if err != nil {
		return nil, fmt.Errorf("tensor %q: %w", meta.Name, err)
	}

	var elem tensor.QuantizedElementType
	if meta.Quant.Axis != nil {
		elem, err = tensor.PerAxisQuantized(dt, expressed, meta.Quant.Scales, meta.Quant.ZeroPoints, tensor.Axis(*meta.Quant.Axis))
	} else {
		if len(meta.Quant.Scales) != 1 || len(meta.Quant.ZeroPoints) != 1 {
			return nil, fmt.Errorf("tensor %q: per-tensor quantization needs exactly one scale and zero point", meta.Name)
		}
		elem, err = tensor.PerTensorQuantized(dt, expressed, meta.Quant.Scales[0], meta.Quant.ZeroPoints[0])
	}
	if err != nil {
		return nil, fmt.Errorf("tensor %q: %w", meta.Name, err)
	}

	qt := tensor.QuantizedTensorType{Shape: shape, Element: elem}
	if err := qt.Validate(); err != nil {
		return nil, fmt.Errorf("tensor %q: %w", meta.Name, err)
	}
	return qt, nil
}
