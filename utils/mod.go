package utils

import "golang.org/x/exp/rand"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Shuffle permutes slice in place using rng.
func Shuffle[T any](rng *rand.Rand, slice []T) {
	rng.Shuffle(len(slice), func(i, j int) {
		slice[i], slice[j] = slice[j], slice[i]
	})
}
