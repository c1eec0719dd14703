package game

import (
	"errors"
	"math/rand"
	"testing"

	utils "github.com/minaorangina/sweep/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplePositions(t *testing.T) {
	t.Run("returns distinct positions inside the grid", func(t *testing.T) {
		r := rand.New(rand.NewSource(42))

		positions, err := SamplePositions(r, 7, 5, 30)
		require.NoError(t, err)
		require.Len(t, positions, 30)

		seen := map[Pos]bool{}
		for _, p := range positions {
			assert.False(t, seen[p], "duplicate %v", p)
			seen[p] = true

			assert.True(t, p.X >= 0 && p.X < 7, "column %d", p.X)
			assert.True(t, p.Y >= 0 && p.Y < 5, "row %d", p.Y)
		}
	})

	t.Run("can fill the whole grid", func(t *testing.T) {
		positions, err := SamplePositions(rand.New(rand.NewSource(7)), 4, 4, 16)
		require.NoError(t, err)
		assert.Len(t, positions, 16)
	})

	t.Run("redraws duplicates", func(t *testing.T) {
		src := utils.NewSequenceSource(0, 0, 0, 0, 1, 1)

		positions, err := SamplePositions(src, 2, 2, 2)
		require.NoError(t, err)

		assert.Equal(t, []Pos{{0, 0}, {1, 1}}, positions)
		assert.Equal(t, 6, src.Calls())
	})

	t.Run("draws nothing for zero positions", func(t *testing.T) {
		src := utils.NewSequenceSource(1)

		positions, err := SamplePositions(src, 3, 3, 0)
		require.NoError(t, err)

		assert.Empty(t, positions)
		assert.Equal(t, 0, src.Calls())
	})

	t.Run("refuses impossible requests instead of spinning", func(t *testing.T) {
		_, err := SamplePositions(utils.NewSequenceSource(0), 2, 2, 5)
		assert.True(t, errors.Is(err, ErrTooManyPositions))

		_, err = SamplePositions(utils.NewSequenceSource(0), 0, 2, 0)
		assert.True(t, errors.Is(err, ErrTooManyPositions))

		_, err = SamplePositions(utils.NewSequenceSource(0), 2, 2, -1)
		utils.AssertErrored(t, err)
	})
}

func TestNewRandomSource(t *testing.T) {
	src, err := NewRandomSource()
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		n := src.Intn(10)
		assert.True(t, n >= 0 && n < 10)
	}
}
