package optest

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/schakrabortygithub/shlo/internal/parallel"
	"github.com/schakrabortygithub/shlo/internal/tensor"
)

// Randomized quantization parameter ranges.
const (
	scaleLo     = 0.5
	scaleHi     = 1.5
	zeroPointLo = -5
	zeroPointHi = 5
)

// Generator derives test inputs and randomized tensor types from a
// seed. It is safe for concurrent use; buffer fills derive one RNG
// stream per chunk, so a given seed produces the same bytes regardless
// of worker count.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	par parallel.Config
}

// NewGenerator creates a generator with a fixed seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		//nolint:gosec // G404: test input synthesis does not need crypto randomness
		rng: rand.New(rand.NewSource(seed)),
		par: parallel.DefaultConfig(),
	}
}

// defaultGenerator backs the package-level synthesis functions.
//
//nolint:gosec // G404: test input synthesis does not need crypto randomness
var defaultGenerator = NewGenerator(rand.Int63())

// drawSeed returns the next call seed from the generator's stream.
func (g *Generator) drawSeed() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Int63()
}

// drawFloat draws a uniform value from [lo, hi).
func (g *Generator) drawFloat(lo, hi float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rng.Float64()*(hi-lo)
}

// drawInt draws a uniform integer from [lo, hi] inclusive.
func (g *Generator) drawInt(lo, hi int64) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rng.Int63n(hi-lo+1)
}

// drawScale draws a quantization scale from [0.5, 1.5), rounded to the
// expressed type's precision.
func (g *Generator) drawScale(expressed tensor.DataType) float32 {
	v := g.drawFloat(scaleLo, scaleHi)
	switch expressed {
	case tensor.BF16:
		return hwy.NewBFloat16FromFloat64(v).Float32()
	case tensor.F16:
		return hwy.NewFloat16FromFloat64(v).Float32()
	default:
		return float32(v)
	}
}

// drawZeroPoint draws a quantization zero point from [-5, 5].
func (g *Generator) drawZeroPoint() int32 {
	return int32(g.drawInt(zeroPointLo, zeroPointHi))
}

// TensorTypeFor builds the tensor type the parameter asks for at the
// given shape. Plain parameters yield a TensorType. Quantized layouts
// yield a QuantizedTensorType with randomized parameters: scales are
// drawn from [0.5, 1.5) at the expressed type's precision and zero
// points from the integers [-5, 5]. Per-axis layouts get one pair per
// slice along the quantized dimension.
func (g *Generator) TensorTypeFor(p Param, shape tensor.Shape) (tensor.Type, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameter: %w", err)
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	switch p.Layout {
	case LayoutPerTensor:
		elem, err := tensor.PerTensorQuantized(p.Storage, p.Expressed, g.drawScale(p.Expressed), g.drawZeroPoint())
		if err != nil {
			return nil, err
		}
		return tensor.QuantizedTensorType{Shape: shape.Clone(), Element: elem}, nil

	case LayoutPerAxis:
		if int(p.Axis) >= len(shape) {
			return nil, fmt.Errorf("quantized dimension %d out of range for shape %s", p.Axis, shape)
		}
		channels := shape[p.Axis]
		scales := make([]float32, channels)
		zeroPoints := make([]int32, channels)
		for i := range scales {
			scales[i] = g.drawScale(p.Expressed)
			zeroPoints[i] = g.drawZeroPoint()
		}
		elem, err := tensor.PerAxisQuantized(p.Storage, p.Expressed, scales, zeroPoints, p.Axis)
		if err != nil {
			return nil, err
		}
		return tensor.QuantizedTensorType{Shape: shape.Clone(), Element: elem}, nil

	default:
		return tensor.TensorType{Shape: shape.Clone(), Element: p.Storage}, nil
	}
}

// Random builds the tensor type for p at shape and fills the storage
// with random values spanning its representable range.
func (g *Generator) Random(p Param, shape tensor.Shape) (*tensor.Tensor, error) {
	return g.RandomRange(p, shape, math.Inf(-1), math.Inf(1))
}

// RandomRange is Random with the requested value range intersected
// with the storage type's bounds.
func (g *Generator) RandomRange(p Param, shape tensor.Shape, lo, hi float64) (*tensor.Tensor, error) {
	typ, err := g.TensorTypeFor(p, shape)
	if err != nil {
		return nil, err
	}
	t, err := tensor.NewTensor(typ)
	if err != nil {
		return nil, err
	}
	g.fillRandomTensor(t, lo, hi)
	return t, nil
}

// Iota builds the tensor type for p at shape and fills the storage
// with a wrapping counting sequence from the storage minimum.
func (g *Generator) Iota(p Param, shape tensor.Shape) (*tensor.Tensor, error) {
	dt := p.Storage
	return g.IotaRange(p, shape, dt.MinValue(), dt.MinValue(), dt.MaxValue())
}

// IotaRange is Iota with an explicit start value and wrap range; see
// IotaBufferRange for the sequence semantics.
func (g *Generator) IotaRange(p Param, shape tensor.Shape, start, lo, hi float64) (*tensor.Tensor, error) {
	typ, err := g.TensorTypeFor(p, shape)
	if err != nil {
		return nil, err
	}
	t, err := tensor.NewTensor(typ)
	if err != nil {
		return nil, err
	}
	fillIotaTensor(t, start, lo, hi)
	return t, nil
}

// fillRandomTensor dispatches on the storage type to fill t's buffer.
func (g *Generator) fillRandomTensor(t *tensor.Tensor, lo, hi float64) {
	seed := g.drawSeed()
	dt := t.StorageType()
	switch dt {
	case tensor.I1:
		fillRandom(t.AsBool(), dt, seed, lo, hi, g.par)
	case tensor.SI4, tensor.SI8:
		fillRandom(t.AsInt8(), dt, seed, lo, hi, g.par)
	case tensor.SI16:
		fillRandom(t.AsInt16(), dt, seed, lo, hi, g.par)
	case tensor.SI32:
		fillRandom(t.AsInt32(), dt, seed, lo, hi, g.par)
	case tensor.BF16:
		fillRandom(t.AsBFloat16(), dt, seed, lo, hi, g.par)
	case tensor.F16:
		fillRandom(t.AsFloat16(), dt, seed, lo, hi, g.par)
	case tensor.F32:
		fillRandom(t.AsFloat32(), dt, seed, lo, hi, g.par)
	}
}

// fillIotaTensor dispatches on the storage type to fill t's buffer.
func fillIotaTensor(t *tensor.Tensor, start, lo, hi float64) {
	dt := t.StorageType()
	switch dt {
	case tensor.I1:
		fillIota(t.AsBool(), dt, start, lo, hi)
	case tensor.SI4, tensor.SI8:
		fillIota(t.AsInt8(), dt, start, lo, hi)
	case tensor.SI16:
		fillIota(t.AsInt16(), dt, start, lo, hi)
	case tensor.SI32:
		fillIota(t.AsInt32(), dt, start, lo, hi)
	case tensor.BF16:
		fillIota(t.AsBFloat16(), dt, start, lo, hi)
	case tensor.F16:
		fillIota(t.AsFloat16(), dt, start, lo, hi)
	case tensor.F32:
		fillIota(t.AsFloat32(), dt, start, lo, hi)
	}
}

// RandomTensor builds and fills a tensor for p using the process-wide
// generator.
func RandomTensor(p Param, shape tensor.Shape) (*tensor.Tensor, error) {
	return defaultGenerator.Random(p, shape)
}

// IotaTensor builds an iota-filled tensor for p using the process-wide
// generator.
func IotaTensor(p Param, shape tensor.Shape) (*tensor.Tensor, error) {
	return defaultGenerator.Iota(p, shape)
}

// TensorTypeFor builds the tensor type p asks for using the
// process-wide generator.
func TensorTypeFor(p Param, shape tensor.Shape) (tensor.Type, error) {
	return defaultGenerator.TensorTypeFor(p, shape)
}
