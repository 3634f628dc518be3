package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	require.Equal(t, -1, FindIndex(nil, 0))
}

func TestShuffle(t *testing.T) {
	t.Run("permutes in place", func(t *testing.T) {
		s := []int{1, 2, 3, 4, 5, 6, 7, 8}

		Shuffle(rand.New(rand.NewSource(1)), s)

		require.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, s)
	})

	t.Run("same seed same order", func(t *testing.T) {
		a := []int{1, 2, 3, 4, 5, 6, 7, 8}
		b := []int{1, 2, 3, 4, 5, 6, 7, 8}

		Shuffle(rand.New(rand.NewSource(5)), a)
		Shuffle(rand.New(rand.NewSource(5)), b)

		require.Equal(t, a, b)
	})
}
