package optest

// Concat concatenates lists into a fresh slice, preserving order.
func Concat[E any](lists ...[]E) []E {
	total := 0
	for _, list := range lists {
		total += len(list)
	}
	out := make([]E, 0, total)
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}

// Map applies f to every element of list, returning a fresh slice.
func Map[E, R any](f func(E) R, list []E) []R {
	out := make([]R, len(list))
	for i, e := range list {
		out[i] = f(e)
	}
	return out
}

// Filter returns the elements of list for which pred is true,
// preserving order.
func Filter[E any](pred func(E) bool, list []E) []E {
	out := make([]E, 0, len(list))
	for _, e := range list {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// Not negates a predicate.
func Not[E any](pred func(E) bool) func(E) bool {
	return func(e E) bool { return !pred(e) }
}

// CrossProduct returns every combination taking one element from each
// list, as tuples in lexicographic order with the first list varying
// slowest. The result is empty when no lists are given or any list is
// empty.
func CrossProduct[E any](lists ...[]E) [][]E {
	if len(lists) == 0 {
		return nil
	}
	total := 1
	for _, list := range lists {
		total *= len(list)
	}
	if total == 0 {
		return nil
	}

	out := make([][]E, 0, total)
	idx := make([]int, len(lists))
	for {
		tuple := make([]E, len(lists))
		for i, list := range lists {
			tuple[i] = list[idx[i]]
		}
		out = append(out, tuple)

		// Advance the odometer, last position first.
		k := len(lists) - 1
		for ; k >= 0; k-- {
			idx[k]++
			if idx[k] < len(lists[k]) {
				break
			}
			idx[k] = 0
		}
		if k < 0 {
			return out
		}
	}
}

// SameTypes reports whether every parameter in the tuple is identical.
// Empty and single-element tuples are trivially uniform.
func SameTypes(tuple []Param) bool {
	for i := 1; i < len(tuple); i++ {
		if tuple[i] != tuple[0] {
			return false
		}
	}
	return true
}
