package seq

import (
	stderrors "errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/seqfns/errors"
)

func TestGet(t *testing.T) {
	p, err := Get(slices.Values(people), func(p person, _ int) bool { return p.name == "bob" })
	require.NoError(t, err)
	assert.Equal(t, person{"bob", 2}, p)
}

func TestGet_NotFound(t *testing.T) {
	_, err := Get(slices.Values(people), func(p person, _ int) bool { return p.name == "eve" })
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))
	assert.Contains(t, err.Error(), "Element not found matching criteria")
}

func TestFind(t *testing.T) {
	p, ok := Find(slices.Values(people), func(p person, _ int) bool { return p.age > 20 })
	assert.True(t, ok)
	assert.Equal(t, "amy", p.name)

	p, ok = Find(slices.Values(people), func(p person, _ int) bool { return p.age > 100 })
	assert.False(t, ok)
	assert.Zero(t, p)
}

func TestFind_StopsAtFirstMatch(t *testing.T) {
	pulled := 0
	v, ok := Find(naturals(&pulled), func(x, _ int) bool { return x == 5 })
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, 5, pulled)
}

func TestExists(t *testing.T) {
	src := slices.Values([]int{1, 2, 3})
	assert.True(t, Exists(src, func(x, _ int) bool { return x == 2 }))
	assert.False(t, Exists(src, func(x, _ int) bool { return x == 4 }))
	assert.False(t, Exists(slices.Values([]int{}), func(int, int) bool { return true }))
}

func TestExists_ShortCircuits(t *testing.T) {
	pulled := 0
	assert.True(t, Exists(counted(100, &pulled), func(x, _ int) bool { return x == 3 }))
	assert.Equal(t, 3, pulled)
}

func TestEvery(t *testing.T) {
	src := slices.Values([]int{1, 2, 3})
	assert.True(t, Every(src, func(x, _ int) bool { return x > 0 }))
	assert.False(t, Every(src, func(x, _ int) bool { return x < 2 }))
	assert.True(t, Every(slices.Values([]int{}), func(int, int) bool { return false }))
}

func TestEvery_ShortCircuits(t *testing.T) {
	pulled := 0
	assert.False(t, Every(counted(100, &pulled), func(x, _ int) bool { return x < 2 }))
	assert.Equal(t, 2, pulled)
}

func TestGroupBy(t *testing.T) {
	src := slices.Values([]person{{"amy", 1}, {"bob", 2}, {"cat", 2}, {"dot", 1}, {"eve", 3}})
	g := GroupBy(src, func(p person, _ int) int { return p.age })

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []int{1, 2, 3}, g.Keys())
	twos, ok := g.Get(2)
	require.True(t, ok)
	assert.Equal(t, []person{{"bob", 2}, {"cat", 2}}, twos)
	_, ok = g.Get(9)
	assert.False(t, ok)

	var keys []int
	for k, group := range g.All() {
		keys = append(keys, k)
		assert.NotEmpty(t, group)
	}
	assert.Equal(t, []int{1, 2, 3}, keys)

	pairs := slices.Collect(g.Pairs())
	require.Len(t, pairs, 3)
	assert.Equal(t, 1, pairs[0].Left)
	assert.Equal(t, []person{{"amy", 1}, {"dot", 1}}, pairs[0].Right)
}

func TestGroupBy_IndexAndEmpty(t *testing.T) {
	g := GroupBy(slices.Values([]string{"a", "b", "c", "d"}), func(_ string, i int) bool { return i%2 == 0 })
	evens, _ := g.Get(true)
	assert.Equal(t, []string{"a", "c"}, evens)

	empty := GroupBy(slices.Values([]string{}), func(s string, _ int) string { return s })
	assert.Zero(t, empty.Len())
}

func TestSort(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Sort(slices.Values([]int{3, 1, 2})))
	assert.Equal(t, []int{1, 1, 2}, Sort(slices.Values([]int{1, 2, 1})))
	assert.Equal(t, []int{3, 2, 1}, SortDescending(slices.Values([]int{1, 3, 2})))
	assert.Equal(t, []string{"amy", "bob", "cat"}, Sort(slices.Values([]string{"cat", "amy", "bob"})))
}

func TestSort_Trivial(t *testing.T) {
	assert.Equal(t, []int{}, Sort(slices.Values([]int{})))
	assert.Equal(t, []int{7}, SortDescending(slices.Values([]int{7})))
}

func TestSortBy(t *testing.T) {
	src := slices.Values([]string{"Cat", "amy", "BOB"})
	assert.Equal(t, []string{"amy", "BOB", "Cat"}, SortBy(src, strings.ToLower))
	assert.Equal(t, []string{"Cat", "BOB", "amy"}, SortByDescending(src, strings.ToLower))
}

func TestSortBy_EqualKeysKeepAllElements(t *testing.T) {
	got := SortBy(slices.Values(people), func(p person) int { return p.age / 100 })
	assert.ElementsMatch(t, people, got)
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, Reverse(slices.Values([]int{1, 2, 3})))
	assert.Equal(t, []int{}, Reverse(slices.Values([]int{})))
}

func TestCountAndLength(t *testing.T) {
	assert.Equal(t, 4, Count(slices.Values(people)))
	assert.Equal(t, 0, Length(slices.Values([]int{})))
}

func TestToSlice(t *testing.T) {
	assert.Equal(t, []int{1, 2}, ToSlice(slices.Values([]int{1, 2})))
	got := ToSlice(slices.Values([]int{}))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
