package optest

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/schakrabortygithub/shlo/internal/parallel"
	"github.com/schakrabortygithub/shlo/internal/tensor"
)

// RandomBuffer returns a typed buffer of random values spanning the
// full representable range of dt. Panics if T does not match dt's
// storage type.
func RandomBuffer[T tensor.Element](dt tensor.DataType, shape tensor.Shape) []T {
	return RandomBufferRange[T](dt, shape, dt.MinValue(), dt.MaxValue())
}

// RandomBufferRange returns a typed buffer of random values drawn from
// [lo, hi] intersected with dt's representable range. Integer types
// draw whole values inclusively; float types draw uniformly over
// [lo, hi) and store at storage precision. Panics if the intersected
// range is empty or T does not match dt's storage type.
func RandomBufferRange[T tensor.Element](dt tensor.DataType, shape tensor.Shape, lo, hi float64) []T {
	buf := newBuffer[T](dt, shape)
	fillRandom(buf, dt, defaultGenerator.drawSeed(), lo, hi, defaultGenerator.par)
	return buf
}

// IotaBuffer returns a typed buffer counting up from dt's minimum
// value. Panics if T does not match dt's storage type.
func IotaBuffer[T tensor.Element](dt tensor.DataType, shape tensor.Shape) []T {
	return IotaBufferRange[T](dt, shape, dt.MinValue(), dt.MinValue(), dt.MaxValue())
}

// IotaBufferRange returns a typed buffer holding a wrapping counting
// sequence: the first element is start (not range checked), and each
// subsequent element adds one, wrapping to lo once the value would
// exceed hi. The [lo, hi] range is intersected with dt's bounds. The
// counter advances in float64; float elements are stored at storage
// precision.
func IotaBufferRange[T tensor.Element](dt tensor.DataType, shape tensor.Shape, start, lo, hi float64) []T {
	buf := newBuffer[T](dt, shape)
	fillIota(buf, dt, start, lo, hi)
	return buf
}

// newBuffer allocates the result buffer, checking the element type and
// shape.
func newBuffer[T tensor.Element](dt tensor.DataType, shape tensor.Shape) []T {
	tensor.CheckElem[T](dt)
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("invalid shape %s: %v", shape, err))
	}
	return make([]T, shape.NumElements())
}

// clampRange intersects [lo, hi] with dt's representable range.
func clampRange(dt tensor.DataType, lo, hi float64) (float64, float64) {
	lo = math.Max(lo, dt.MinValue())
	hi = math.Min(hi, dt.MaxValue())
	if lo > hi {
		panic(fmt.Sprintf("empty %s value range [%g, %g]", dt, lo, hi))
	}
	return lo, hi
}

// intRange converts a clamped range to inclusive integer bounds.
func intRange(dt tensor.DataType, lo, hi float64) (int64, int64) {
	ilo, ihi := int64(math.Ceil(lo)), int64(math.Floor(hi))
	if ilo > ihi {
		panic(fmt.Sprintf("no %s value in range [%g, %g]", dt, lo, hi))
	}
	return ilo, ihi
}

// randInt draws a uniform integer from [lo, hi] inclusive.
func randInt(rng *rand.Rand, lo, hi int64) int64 {
	return lo + rng.Int63n(hi-lo+1)
}

// randFloat draws a uniform value from [lo, hi).
func randFloat(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// fillRandom fills buf with uniform random values from [lo, hi]
// clamped to dt's range. Chunks of the buffer get independent RNG
// streams derived from seed, so the result does not depend on the
// worker count.
func fillRandom[T tensor.Element](buf []T, dt tensor.DataType, seed int64, lo, hi float64, cfg parallel.Config) {
	lo, hi = clampRange(dt, lo, hi)
	parallel.ForChunks(len(buf), func(chunk, start, end int) {
		//nolint:gosec // G404: test input synthesis does not need crypto randomness
		rng := rand.New(rand.NewSource(seed + int64(chunk)))
		randomSlice(buf[start:end], dt, rng, lo, hi)
	}, cfg)
}

// randomSlice fills out with random values drawn from rng.
func randomSlice[T tensor.Element](out []T, dt tensor.DataType, rng *rand.Rand, lo, hi float64) {
	switch b := any(out).(type) {
	case []bool:
		ilo, ihi := intRange(dt, lo, hi)
		for i := range b {
			b[i] = randInt(rng, ilo, ihi) != 0
		}
	case []int8:
		ilo, ihi := intRange(dt, lo, hi)
		for i := range b {
			b[i] = int8(randInt(rng, ilo, ihi))
		}
	case []int16:
		ilo, ihi := intRange(dt, lo, hi)
		for i := range b {
			b[i] = int16(randInt(rng, ilo, ihi))
		}
	case []int32:
		ilo, ihi := intRange(dt, lo, hi)
		for i := range b {
			b[i] = int32(randInt(rng, ilo, ihi))
		}
	case []hwy.BFloat16:
		for i := range b {
			b[i] = hwy.NewBFloat16FromFloat64(randFloat(rng, lo, hi))
		}
	case []hwy.Float16:
		for i := range b {
			b[i] = hwy.NewFloat16FromFloat64(randFloat(rng, lo, hi))
		}
	case []float32:
		for i := range b {
			b[i] = float32(randFloat(rng, lo, hi))
		}
	}
}

// fillIota fills buf with the wrapping counting sequence described by
// IotaBufferRange.
func fillIota[T tensor.Element](buf []T, dt tensor.DataType, start, lo, hi float64) {
	lo, hi = clampRange(dt, lo, hi)
	v := start
	next := func() float64 {
		cur := v
		v++
		if v > hi {
			v = lo
		}
		return cur
	}
	switch b := any(buf).(type) {
	case []bool:
		for i := range b {
			b[i] = next() != 0
		}
	case []int8:
		for i := range b {
			b[i] = int8(next())
		}
	case []int16:
		for i := range b {
			b[i] = int16(next())
		}
	case []int32:
		for i := range b {
			b[i] = int32(next())
		}
	case []hwy.BFloat16:
		for i := range b {
			b[i] = hwy.NewBFloat16FromFloat64(next())
		}
	case []hwy.Float16:
		for i := range b {
			b[i] = hwy.NewFloat16FromFloat64(next())
		}
	case []float32:
		for i := range b {
			b[i] = float32(next())
		}
	}
}
