package fixture

import (
	"fmt"

	"github.com/schakrabortygithub/shlo/internal/tensor"
)

// Fixture is an ordered collection of named tensors produced by one
// synthesis run, typically the inputs and expected outputs of a test
// case. Tensors keep their insertion order, so a fixture written and
// read back yields the same sequence.
type Fixture struct {
	Seed     int64
	Metadata map[string]string

	entries []fixtureEntry
	index   map[string]int
}

type fixtureEntry struct {
	name   string
	tensor *tensor.Tensor
}

// NewFixture returns an empty fixture recording the given seed.
func NewFixture(seed int64) *Fixture {
	return &Fixture{
		Seed:     seed,
		Metadata: make(map[string]string),
		index:    make(map[string]int),
	}
}

// Add appends a named tensor. Names must be unique within the fixture
// and pass ValidateTensorName.
func (f *Fixture) Add(name string, t *tensor.Tensor) error {
	if t == nil {
		return fmt.Errorf("tensor %q is nil", name)
	}
	if err := ValidateTensorName(name); err != nil {
		return err
	}
	if _, ok := f.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTensor, name)
	}
	if f.index == nil {
		f.index = make(map[string]int)
	}
	f.index[name] = len(f.entries)
	f.entries = append(f.entries, fixtureEntry{name: name, tensor: t})
	return nil
}

// Get returns the tensor stored under name.
func (f *Fixture) Get(name string) (*tensor.Tensor, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.entries[i].tensor, true
}

// Names returns the tensor names in insertion order.
func (f *Fixture) Names() []string {
	names := make([]string, len(f.entries))
	for i, e := range f.entries {
		names[i] = e.name
	}
	return names
}

// Len returns the number of tensors in the fixture.
func (f *Fixture) Len() int {
	return len(f.entries)
}
