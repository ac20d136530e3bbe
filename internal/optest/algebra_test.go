package optest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/schakrabortygithub/shlo/internal/tensor"
)

func TestConcat(t *testing.T) {
	got := Concat([]int{1, 2}, []int{3}, nil, []int{4, 5})
	want := []int{1, 2, 3, 4, 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Concat mismatch (-want +got):\n%s", diff)
	}

	if got := Concat[int](); len(got) != 0 {
		t.Errorf("Concat() = %v, want empty", got)
	}
}

func TestMap(t *testing.T) {
	got := Map(func(v int) int { return v * 2 }, []int{1, 2, 3})
	want := []int{2, 4, 6}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}

	if got := Map(func(v int) int { return v }, nil); len(got) != 0 {
		t.Errorf("Map(nil) = %v, want empty", got)
	}
}

func TestFilter(t *testing.T) {
	short := func(s string) bool { return len(s) == 1 }
	got := Filter(short, []string{"a", "bb", "c", "ddd"})
	want := []string{"a", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterWithNotPartitions(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	evens := Filter(even, in)
	odds := Filter(Not(even), in)

	if diff := cmp.Diff([]int{2, 4, 6, 8, 10}, evens); diff != "" {
		t.Errorf("evens mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 3, 5, 7, 9}, odds); diff != "" {
		t.Errorf("odds mismatch (-want +got):\n%s", diff)
	}
	if len(evens)+len(odds) != len(in) {
		t.Errorf("partition sizes %d+%d != %d", len(evens), len(odds), len(in))
	}
}

func TestCrossProductTwoLists(t *testing.T) {
	got := CrossProduct([]string{"int", "float"}, []string{"char", "double"})
	want := [][]string{
		{"int", "char"},
		{"int", "double"},
		{"float", "char"},
		{"float", "double"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CrossProduct mismatch (-want +got):\n%s", diff)
	}
}

func TestCrossProductThreeLists(t *testing.T) {
	got := CrossProduct([]string{"int"}, []string{"char", "double"}, []string{"float"})
	want := [][]string{
		{"int", "char", "float"},
		{"int", "double", "float"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CrossProduct mismatch (-want +got):\n%s", diff)
	}
}

func TestCrossProductDegenerate(t *testing.T) {
	if got := CrossProduct[int](); got != nil {
		t.Errorf("CrossProduct() = %v, want nil", got)
	}
	if got := CrossProduct([]int{1, 2}, nil); got != nil {
		t.Errorf("CrossProduct with empty list = %v, want nil", got)
	}
}

func TestCrossProductLength(t *testing.T) {
	got := CrossProduct(ArithmeticTypes(), FloatTypes(), BoolTypes())
	want := len(ArithmeticTypes()) * len(FloatTypes()) * len(BoolTypes())
	if len(got) != want {
		t.Errorf("len = %d, want %d", len(got), want)
	}
	for _, tuple := range got {
		if len(tuple) != 3 {
			t.Fatalf("tuple len = %d, want 3", len(tuple))
		}
	}
}

func TestSameTypes(t *testing.T) {
	tests := []struct {
		name   string
		params []Param
		want   bool
	}{
		{"empty", nil, true},
		{"single", []Param{Single(tensor.SI8)}, true},
		{"matching pair", []Param{Single(tensor.F32), Single(tensor.F32)}, true},
		{"mismatched pair", []Param{Single(tensor.F32), Single(tensor.SI8)}, false},
		{"layout differs", []Param{Pair(tensor.SI8, tensor.F32), PerTensor(Pair(tensor.SI8, tensor.F32))}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameTypes(tt.params); got != tt.want {
				t.Errorf("SameTypes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCrossProductFilterSameTypes(t *testing.T) {
	pairs := CrossProduct(ArithmeticTypes(), ArithmeticTypes())
	same := Filter(SameTypes, pairs)
	if len(same) != len(ArithmeticTypes()) {
		t.Errorf("len = %d, want %d", len(same), len(ArithmeticTypes()))
	}
	for _, tuple := range same {
		if tuple[0] != tuple[1] {
			t.Errorf("tuple %s not uniform", JoinNames(tuple))
		}
	}
}
