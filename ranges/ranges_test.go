package ranges

import (
	stderrors "errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/seqfns/errors"
)

func values(t *testing.T, spec Spec) []float64 {
	t.Helper()
	plan, err := Normalize(spec)
	require.NoError(t, err)
	return slices.Collect(plan.Values())
}

func TestNormalize_Count(t *testing.T) {
	assert.Empty(t, values(t, Count(0)))
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, values(t, Count(5)))
}

func TestNormalize_Bounds(t *testing.T) {
	tests := []struct {
		name string
		spec Bounds
		want []float64
	}{
		{"from-to", Bounds{From: 1, To: 3}, []float64{1, 2, 3}},
		{"from-to same", Bounds{From: 1, To: 1}, []float64{1}},
		{"fractional increment", Bounds{From: 1, To: 2, Increment: Step(0.5)}, []float64{1, 1.5, 2}},
		{"overshooting increment", Bounds{From: 1, To: 2, Increment: Step(5)}, []float64{1}},
		{"positive to negative", Bounds{From: 1, To: -1}, []float64{1, 0, -1}},
		{"negative to positive", Bounds{From: -1, To: 1}, []float64{-1, 0, 1}},
		{"descending fractional", Bounds{From: 1, To: -1, Increment: Step(-0.5)}, []float64{1, 0.5, 0, -0.5, -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, values(t, tc.spec))
		})
	}
}

func TestNormalize_Bounds_NeverCompletes(t *testing.T) {
	tests := []struct {
		name string
		spec Bounds
	}{
		{"zero increment", Bounds{From: 1, To: 2, Increment: Step(0)}},
		{"negative increment", Bounds{From: 1, To: 2, Increment: Step(-0.1)}},
		{"negative crossing zero", Bounds{From: -1, To: 1, Increment: Step(-1)}},
		{"reversed", Bounds{From: 2, To: 1, Increment: Step(1)}},
		{"reversed crossing zero", Bounds{From: 1, To: -1, Increment: Step(0.1)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.spec)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, errors.ErrInfiniteSequence))
		})
	}
}

func TestNormalize_Counted(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, values(t, Counted{Count: 5}))
	assert.Equal(t, []float64{3, 4, 5, 6, 7}, values(t, Counted{Start: 3, Count: 5}))
	assert.Equal(t, []float64{0, 3, 6, 9, 12}, values(t, Counted{Count: 5, Increment: Step(3)}))
	assert.Equal(t, []float64{2, 2, 2}, values(t, Counted{Start: 2, Count: 3, Increment: Step(0)}))
}

func TestInfinite_Values(t *testing.T) {
	var got []float64
	for v := range (Infinite{}).Values() {
		got = append(got, v)
		if len(got) == 4 {
			break
		}
	}
	assert.Equal(t, []float64{0, 1, 2, 3}, got)

	got = got[:0]
	for v := range (Infinite{Start: 10, Increment: Step(-2.5)}).Values() {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []float64{10, 7.5, 5}, got)
}
