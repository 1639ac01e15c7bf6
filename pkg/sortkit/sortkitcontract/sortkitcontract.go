// Package sortkitcontract defines the behavioral requirements of the sorting
// and the sorted-sequence searching roles as reusable testing suites.
//
// Any implementation of these roles can be verified with them,
// not only the ones shipped in sortkit.
package sortkitcontract

import (
	"fmt"
	"math/bits"
	"reflect"
	"slices"
	"testing"

	"go.llib.dev/ordkit/internal/spechelper"
	"go.llib.dev/ordkit/internal/zerokit"
	"go.llib.dev/ordkit/pkg/compare"
	"go.llib.dev/ordkit/pkg/sortkit"
	"go.llib.dev/ordkit/port/contract"
	"go.llib.dev/ordkit/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

// Sort is the role of an in-place ascending slice ordering function.
type Sort[T any] func(vs []T, cmp compare.Func[T])

// Search is the role of a sorted-sequence lookup function.
// Present targets report their index and true;
// absent targets report false and the index where the target could be
// inserted while keeping the sequence sorted.
type Search[T any] func(vs []T, target T, cmp compare.Func[T]) (int, bool)

// Sorter defines what every Sort implementation owes its callers:
// an ascending result that kept every element and the order of equals.
func Sorter[T any](subject Sort[T], opts ...SorterOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("an empty sequence is a no-op without any comparison", func(t *testcase.T) {
		cmp, calls := instrument(c.compare(t))
		var vs []T
		subject(vs, cmp)
		assert.Empty(t, vs)
		assert.Equal(t, 0, *calls)
	})

	s.Test("a single element sequence stays untouched", func(t *testcase.T) {
		exp := c.makeValue(t)
		vs := []T{exp}
		subject(vs, c.compare(t))
		assert.Equal(t, []T{exp}, vs)
	})

	s.Test("the result is in ascending order", func(t *testcase.T) {
		cmp := c.compare(t)
		vs := random.Slice(t.Random.IntB(3, 42), func() T {
			return c.makeValue(t)
		})
		subject(vs, cmp)
		assert.True(t, sortkit.IsSortedFunc(vs, cmp),
			"expected an ascending sequence after sorting")
	})

	s.Test("the element multiset is preserved", func(t *testcase.T) {
		cmp := c.compare(t)
		vs := random.Slice(t.Random.IntB(3, 42), func() T {
			return c.makeValue(t)
		})
		ori := slices.Clone(vs)
		subject(vs, cmp)
		t.Must.ContainExactly(ori, vs)
	})

	s.Test("an already sorted sequence is left unchanged", func(t *testcase.T) {
		cmp := c.compare(t)
		vs := random.Slice(t.Random.IntB(3, 42), func() T {
			return c.makeValue(t)
		})
		subject(vs, cmp)
		exp := slices.Clone(vs)
		subject(vs, cmp)
		assert.Equal(t, exp, vs)
	})

	s.Test("elements that compare equal keep their original relative order", func(t *testcase.T) {
		// Pairwise distinct values projected onto tie classes:
		// the comparator only sees the class, while deep equality still
		// tells the class members apart, making reordering of equals visible.
		classCount := t.Random.IntB(2, 5)
		members := makeDistinct(t, c.makeValue, classCount*2)
		classOf := func(v T) int {
			return indexDeep(members, v) / 2
		}
		byClass := func(a, b T) int {
			return compare.Numbers(classOf(a), classOf(b))
		}

		vs := slices.Clone(members)
		spechelper.Shuffle(t.Random, vs)

		exp := make(map[int][]T)
		for _, v := range vs {
			exp[classOf(v)] = append(exp[classOf(v)], v)
		}

		subject(vs, byClass)

		assert.True(t, sortkit.IsSortedFunc(vs, byClass))
		got := make(map[int][]T)
		for _, v := range vs {
			got[classOf(v)] = append(got[classOf(v)], v)
		}
		assert.Equal(t, exp, got,
			"expected that equal elements retain the relative order they had in the input")
	})

	return s.AsSuite(fmt.Sprintf("Sorter[%s]", typeName[T]()))
}

// AdaptiveSorter is the contract of sorting algorithms that exploit existing
// order in their input, on top of everything Sorter already requires.
// General purpose O(n log n) sorts typically don't satisfy it;
// straight insertion sort does.
func AdaptiveSorter[T any](subject Sort[T], opts ...SorterOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	Sorter[T](subject, c).Spec(s)

	s.Test("an already sorted sequence costs at most a linear number of comparisons", func(t *testcase.T) {
		base := c.compare(t)
		vs := random.Slice(t.Random.IntB(64, 256), func() T {
			return c.makeValue(t)
		})
		subject(vs, base) // presort

		cmp, calls := instrument(base)
		subject(vs, cmp)

		budget := 3*len(vs) + 1
		assert.True(t, *calls <= budget, assert.Message(fmt.Sprintf(
			"sorting %d presorted elements took %d comparisons, expected at most %d",
			len(vs), *calls, budget)))
	})

	return s.AsSuite(fmt.Sprintf("AdaptiveSorter[%s]", typeName[T]()))
}

type SorterOption[T any] interface {
	option.Option[SorterConfig[T]]
}

type SorterConfig[T any] struct {
	// MakeValue creates the fixture values the suite sorts.
	MakeValue contract.Make[T]
	// Compare is the ordering the suite verifies the subject against.
	// Defaults to the natural ordering of T when one can be resolved.
	Compare compare.Func[T]
}

var _ SorterOption[int] = SorterConfig[int]{}

func (c SorterConfig[T]) Configure(o *SorterConfig[T]) {
	o.MakeValue = zerokit.Coalesce(c.MakeValue, o.MakeValue)
	o.Compare = zerokit.Coalesce(c.Compare, o.Compare)
}

func (c SorterConfig[T]) makeValue(tb testing.TB) T {
	return zerokit.Coalesce(c.MakeValue, spechelper.MakeValue[T])(tb)
}

func (c SorterConfig[T]) compare(tb testing.TB) compare.Func[T] {
	if c.Compare != nil {
		return c.Compare
	}
	cmp, ok := compare.Lookup[T]()
	assert.True(tb, ok, assert.Message(fmt.Sprintf(
		"%s has no natural ordering, please provide a Compare configuration", typeName[T]())))
	return cmp
}

// Searcher defines what every Search implementation owes its callers,
// including the logarithmic comparison budget that gives bisection its point.
func Searcher[T any](subject Search[T], opts ...SearcherOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("an empty sequence reports absence at position zero", func(t *testcase.T) {
		cmp, calls := instrument(c.compare(t))
		index, found := subject(nil, c.makeValue(t), cmp)
		assert.False(t, found)
		assert.Equal(t, 0, index)
		assert.Equal(t, 0, *calls)
	})

	s.Test("every element of a sorted sequence is located at its index", func(t *testcase.T) {
		cmp := c.compare(t)
		vs := sortedDistinct(t, c, t.Random.IntB(1, 42))
		for i := range vs {
			index, found := subject(vs, vs[i], cmp)
			assert.True(t, found, assert.Message(fmt.Sprintf(
				"expected to find the element placed at index %d", i)))
			assert.Equal(t, i, index)
		}
	})

	s.Test("a missing element reports absence at its insertion position", func(t *testcase.T) {
		cmp := c.compare(t)
		vs := sortedDistinct(t, c, t.Random.IntB(2, 42))
		gap := t.Random.IntN(len(vs))
		target := vs[gap]
		rest := slices.Delete(slices.Clone(vs), gap, gap+1)

		index, found := subject(rest, target, cmp)
		assert.False(t, found)
		assert.Equal(t, gap, index,
			"expected the index where the element could be inserted to keep the sequence sorted")
	})

	s.Test("a target below every element reports absence at position zero", func(t *testcase.T) {
		cmp := c.compare(t)
		vs := sortedDistinct(t, c, t.Random.IntB(2, 42))

		index, found := subject(vs[1:], vs[0], cmp)
		assert.False(t, found)
		assert.Equal(t, 0, index)
	})

	s.Test("a target above every element reports absence at the sequence length", func(t *testcase.T) {
		cmp := c.compare(t)
		vs := sortedDistinct(t, c, t.Random.IntB(2, 42))
		rest := vs[:len(vs)-1]

		index, found := subject(rest, vs[len(vs)-1], cmp)
		assert.False(t, found)
		assert.Equal(t, len(rest), index)
	})

	s.Test("a single element sequence reports a match at position zero", func(t *testcase.T) {
		cmp := c.compare(t)
		v := c.makeValue(t)

		index, found := subject([]T{v}, v, cmp)
		assert.True(t, found)
		assert.Equal(t, 0, index)
	})

	s.Test("the sequence is never modified", func(t *testcase.T) {
		cmp := c.compare(t)
		vs := sortedDistinct(t, c, t.Random.IntB(2, 42))
		ori := slices.Clone(vs)

		subject(vs, t.Random.SliceElement(vs).(T), cmp)
		subject(vs, c.makeValue(t), cmp)

		assert.Equal(t, ori, vs)
	})

	s.Test("repeated lookups agree, duplicate elements included", func(t *testcase.T) {
		cmp := c.compare(t)
		vs := sortedDistinct(t, c, t.Random.IntB(2, 7))
		target := t.Random.SliceElement(vs).(T)
		t.Random.Repeat(1, 3, func() {
			vs = append(vs, target)
		})
		slices.SortFunc(vs, cmp)

		index1, found1 := subject(vs, target, cmp)
		index2, found2 := subject(vs, target, cmp)

		assert.True(t, found1)
		assert.Equal(t, index1, index2)
		assert.Equal(t, found1, found2)
		assert.True(t, compare.IsEqual(cmp(vs[index1], target)),
			"expected that the reported index holds an element equal to the target")
	})

	s.Test("lookups stay within a logarithmic comparison budget", func(t *testcase.T) {
		base := c.compare(t)
		const length = 1024
		vs := random.Slice(length, func() T {
			return c.makeValue(t)
		})
		slices.SortFunc(vs, base)
		budget := 2 * (bits.Len(uint(length)) + 1)

		targets := []T{vs[0], vs[length/2], vs[length-1], t.Random.SliceElement(vs).(T)}
		for _, target := range targets {
			cmp, calls := instrument(base)
			subject(vs, target, cmp)
			assert.True(t, *calls <= budget, assert.Message(fmt.Sprintf(
				"a lookup among %d elements took %d comparisons, expected at most %d",
				length, *calls, budget)))
		}
	})

	return s.AsSuite(fmt.Sprintf("Searcher[%s]", typeName[T]()))
}

type SearcherOption[T any] interface {
	option.Option[SearcherConfig[T]]
}

type SearcherConfig[T any] struct {
	// MakeValue creates the fixture values the suite builds its sequences from.
	MakeValue contract.Make[T]
	// Compare is the ordering the fixture sequences are sorted under.
	// Defaults to the natural ordering of T when one can be resolved.
	Compare compare.Func[T]
}

var _ SearcherOption[int] = SearcherConfig[int]{}

func (c SearcherConfig[T]) Configure(o *SearcherConfig[T]) {
	o.MakeValue = zerokit.Coalesce(c.MakeValue, o.MakeValue)
	o.Compare = zerokit.Coalesce(c.Compare, o.Compare)
}

func (c SearcherConfig[T]) makeValue(tb testing.TB) T {
	return zerokit.Coalesce(c.MakeValue, spechelper.MakeValue[T])(tb)
}

func (c SearcherConfig[T]) compare(tb testing.TB) compare.Func[T] {
	if c.Compare != nil {
		return c.Compare
	}
	cmp, ok := compare.Lookup[T]()
	assert.True(tb, ok, assert.Message(fmt.Sprintf(
		"%s has no natural ordering, please provide a Compare configuration", typeName[T]())))
	return cmp
}

// --------------------------------------------------------------------------------- //

// instrument wraps cmp to count how many times the subject consults it.
func instrument[T any](cmp compare.Func[T]) (compare.Func[T], *int) {
	var calls int
	return func(a, b T) int {
		calls++
		return cmp(a, b)
	}, &calls
}

// sortedDistinct creates an ascending sequence of pairwise distinct values.
func sortedDistinct[T any](t *testcase.T, c SearcherConfig[T], n int) []T {
	vs := makeDistinct(t, c.makeValue, n)
	slices.SortFunc(vs, c.compare(t))
	return vs
}

// makeDistinct creates n values that deep equality can tell apart.
func makeDistinct[T any](t *testcase.T, mk contract.Make[T], n int) []T {
	vs := make([]T, 0, n)
	var attempts int
	for len(vs) < n {
		attempts++
		assert.True(t, attempts <= 128*n, assert.Message(fmt.Sprintf(
			"failed to make %d distinct %s values, please provide a MakeValue configuration with more entropy",
			n, typeName[T]())))
		v := mk(t)
		if 0 <= indexDeep(vs, v) {
			continue
		}
		vs = append(vs, v)
	}
	return vs
}

func indexDeep[T any](vs []T, v T) int {
	for i := range vs {
		if reflect.DeepEqual(vs[i], v) {
			return i
		}
	}
	return -1
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
