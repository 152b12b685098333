package spread

import "math/rand/v2"

// Shuffle permutes areas in place using the Fisher-Yates algorithm.
// Every one of the len(areas)! orderings is equally likely. A nil rng uses the
// process-wide source.
func Shuffle(areas []int, rng *rand.Rand) {
	n := len(areas)
	for i := 0; i < n-1; i++ {
		j := i + randIntN(rng, n-i)
		areas[i], areas[j] = areas[j], areas[i]
	}
}

// Permutation returns a random ordering of the area indices [0, n).
func Permutation(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return nil
	}
	areas := make([]int, n)
	for i := range areas {
		areas[i] = i
	}
	Shuffle(areas, rng)
	return areas
}

func randIntN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
