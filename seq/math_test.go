package seq

import (
	stderrors "errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/seqfns/errors"
)

func TestSum(t *testing.T) {
	assert.Equal(t, 6, Sum(slices.Values([]int{1, 2, 3})))
	assert.Equal(t, 0, Sum(slices.Values([]int{})))
	assert.InDelta(t, 0.75, Sum(slices.Values([]float64{0.5, 0.25})), 1e-9)
	assert.Equal(t, 80, SumBy(slices.Values(people), func(p person) int { return p.age }))
}

func TestMax(t *testing.T) {
	v, err := Max(slices.Values([]int{5, 10, 7}))
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	age, err := MaxBy(slices.Values(people), func(p person) int { return p.age })
	require.NoError(t, err)
	assert.Equal(t, 39, age)
}

func TestMin(t *testing.T) {
	v, err := Min(slices.Values([]float64{5, -1.5, 7}))
	require.NoError(t, err)
	assert.Equal(t, -1.5, v)

	age, err := MinBy(slices.Values(people), func(p person) int { return p.age })
	require.NoError(t, err)
	assert.Equal(t, 2, age)
}

func TestMean(t *testing.T) {
	v, err := Mean(slices.Values([]int{5, 6, 7, 8, 9, 10}))
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	age, err := MeanBy(slices.Values(people), func(p person) int { return p.age })
	require.NoError(t, err)
	assert.Equal(t, 20.0, age)
}

func TestAggregates_EmptyCollection(t *testing.T) {
	empty := slices.Values([]int{})

	tests := []struct {
		name string
		op   string
		run  func() error
	}{
		{"max", "max", func() error { _, err := Max(empty); return err }},
		{"maxBy", "max", func() error { _, err := MaxBy(empty, identity[int]); return err }},
		{"min", "min", func() error { _, err := Min(empty); return err }},
		{"minBy", "min", func() error { _, err := MinBy(empty, identity[int]); return err }},
		{"mean", "mean", func() error { _, err := Mean(empty); return err }},
		{"meanBy", "mean", func() error { _, err := MeanBy(empty, identity[int]); return err }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, errors.ErrEmptyCollection))
			assert.Contains(t, err.Error(), "Can't find "+tc.op+" of an empty collection")
		})
	}
}
