// Package tensor provides the core element types, shapes, and tensor
// containers for the shlo reference library.
package tensor

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// Element is a constraint for supported tensor element storage types.
// Reduced-precision floats are stored as hwy.Float16 and hwy.BFloat16.
type Element interface {
	bool | int8 | int16 | int32 | hwy.Float16 | hwy.BFloat16 | float32
}

// DataType represents runtime type information for tensor elements.
// The zero value is not a valid data type.
type DataType int

// Supported element data types.
const (
	I1 DataType = iota + 1
	SI4
	SI8
	SI16
	SI32
	BF16
	F16
	F32
)

// Largest finite values of the reduced-precision float types.
const (
	maxFloat16  = 65504.0
	maxBFloat16 = 3.3895313892515355e38
)

// Valid reports whether dt is one of the supported data types.
func (dt DataType) Valid() bool {
	return dt >= I1 && dt <= F32
}

// Size returns the byte size of one element in Go storage.
// SI4 elements occupy a full byte; see Bits for the logical width.
func (dt DataType) Size() int {
	switch dt {
	case I1, SI4, SI8:
		return 1
	case SI16, BF16, F16:
		return 2
	case SI32, F32:
		return 4
	default:
		panic("unknown data type")
	}
}

// Bits returns the logical bit width of the data type.
func (dt DataType) Bits() int {
	switch dt {
	case I1:
		return 1
	case SI4:
		return 4
	case SI8:
		return 8
	case SI16, BF16, F16:
		return 16
	case SI32, F32:
		return 32
	default:
		panic("unknown data type")
	}
}

// IsBool reports whether dt is the boolean type.
func (dt DataType) IsBool() bool {
	return dt == I1
}

// IsInt reports whether dt is a signed integer type.
func (dt DataType) IsInt() bool {
	switch dt {
	case SI4, SI8, SI16, SI32:
		return true
	default:
		return false
	}
}

// IsFloat reports whether dt is a floating-point type.
func (dt DataType) IsFloat() bool {
	switch dt {
	case BF16, F16, F32:
		return true
	default:
		return false
	}
}

// MinValue returns the smallest representable value of the data type
// as a float64. For floats this is the negated largest finite value.
func (dt DataType) MinValue() float64 {
	switch dt {
	case I1:
		return 0
	case SI4:
		return -8
	case SI8:
		return math.MinInt8
	case SI16:
		return math.MinInt16
	case SI32:
		return math.MinInt32
	case BF16:
		return -maxBFloat16
	case F16:
		return -maxFloat16
	case F32:
		return -math.MaxFloat32
	default:
		panic("unknown data type")
	}
}

// MaxValue returns the largest representable value of the data type
// as a float64. For floats this is the largest finite value.
func (dt DataType) MaxValue() float64 {
	switch dt {
	case I1:
		return 1
	case SI4:
		return 7
	case SI8:
		return math.MaxInt8
	case SI16:
		return math.MaxInt16
	case SI32:
		return math.MaxInt32
	case BF16:
		return maxBFloat16
	case F16:
		return maxFloat16
	case F32:
		return math.MaxFloat32
	default:
		panic("unknown data type")
	}
}

// String returns the canonical name for the data type.
func (dt DataType) String() string {
	switch dt {
	case I1:
		return "I1"
	case SI4:
		return "SI4"
	case SI8:
		return "SI8"
	case SI16:
		return "SI16"
	case SI32:
		return "SI32"
	case BF16:
		return "BF16"
	case F16:
		return "F16"
	case F32:
		return "F32"
	default:
		return "unknown"
	}
}

// ParseDataType converts a canonical name back to a DataType.
func ParseDataType(s string) (DataType, error) {
	switch s {
	case "I1":
		return I1, nil
	case "SI4":
		return SI4, nil
	case "SI8":
		return SI8, nil
	case "SI16":
		return SI16, nil
	case "SI32":
		return SI32, nil
	case "BF16":
		return BF16, nil
	case "F16":
		return F16, nil
	case "F32":
		return F32, nil
	default:
		return 0, fmt.Errorf("unknown data type %q", s)
	}
}

// storageKind identifies the Go type backing a DataType. SI4 and SI8
// share int8 storage and therefore the same kind.
type storageKind int

const (
	kindBool storageKind = iota
	kindInt8
	kindInt16
	kindInt32
	kindBFloat16
	kindFloat16
	kindFloat32
)

// kind returns the storage kind backing the data type.
func (dt DataType) kind() storageKind {
	switch dt {
	case I1:
		return kindBool
	case SI4, SI8:
		return kindInt8
	case SI16:
		return kindInt16
	case SI32:
		return kindInt32
	case BF16:
		return kindBFloat16
	case F16:
		return kindFloat16
	case F32:
		return kindFloat32
	default:
		panic("unknown data type")
	}
}

// kindOf infers the storage kind from a generic element type T.
func kindOf[T Element]() storageKind {
	var dummy T
	switch any(dummy).(type) {
	case bool:
		return kindBool
	case int8:
		return kindInt8
	case int16:
		return kindInt16
	case int32:
		return kindInt32
	case hwy.BFloat16:
		return kindBFloat16
	case hwy.Float16:
		return kindFloat16
	case float32:
		return kindFloat32
	default:
		panic("unsupported element type")
	}
}

// DataTypeOf infers the canonical DataType from a generic element type T.
// SI4 shares int8 storage with SI8 and cannot be inferred; int8 maps to SI8.
func DataTypeOf[T Element]() DataType {
	switch kindOf[T]() {
	case kindBool:
		return I1
	case kindInt8:
		return SI8
	case kindInt16:
		return SI16
	case kindInt32:
		return SI32
	case kindBFloat16:
		return BF16
	case kindFloat16:
		return F16
	case kindFloat32:
		return F32
	default:
		panic("unsupported element type")
	}
}

// CheckElem panics unless the generic element type T matches the Go
// storage type of dt. Used by typed accessors and buffer constructors
// to catch programmer errors early.
func CheckElem[T Element](dt DataType) {
	if kindOf[T]() != dt.kind() {
		var dummy T
		panic(fmt.Sprintf("element type %T does not match storage of %s", dummy, dt))
	}
}
