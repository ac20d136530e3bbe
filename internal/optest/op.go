package optest

import (
	"fmt"
	"strings"

	"github.com/schakrabortygithub/shlo/internal/tensor"
)

// SupportedTyper is implemented by ops that advertise the storage type
// generic tests should exercise for them. Ops that do not implement it
// are tested with F32.
type SupportedTyper interface {
	SupportedStorageType() tensor.DataType
}

// SupportedStorageType returns the storage type generic tests should
// use for op: the advertised type when op implements SupportedTyper,
// F32 otherwise.
func SupportedStorageType(op any) tensor.DataType {
	if st, ok := op.(SupportedTyper); ok {
		return st.SupportedStorageType()
	}
	return tensor.F32
}

// OpCase pairs an op value with a test parameter. Test tables over an
// op's supported types are built with WithOp.
type OpCase[O any] struct {
	Op    O
	Param Param
}

// WithOp pairs op with every parameter in the list.
func WithOp[O any](op O, params []Param) []OpCase[O] {
	cases := make([]OpCase[O], len(params))
	for i, p := range params {
		cases[i] = OpCase[O]{Op: op, Param: p}
	}
	return cases
}

// Name renders "<op>:<param>". The op part comes from a Name method
// when the op implements Named, and from the bare Go type name
// otherwise.
func (c OpCase[O]) Name() string {
	return CaseName(opName(c.Op), c.Param.Name())
}

// opName resolves a display name for an op value.
func opName(op any) string {
	if n, ok := op.(Named); ok {
		return n.Name()
	}
	name := strings.TrimPrefix(fmt.Sprintf("%T", op), "*")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
