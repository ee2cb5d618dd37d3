package huffpack

import (
	"math"
)

// Symbol represents one byte of input text.
type Symbol byte

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// Frequencies maps each Symbol to its number of occurrences.
type Frequencies [NumSymbols]uint64

// CountFrequencies counts the occurrences of each Symbol in text.
func CountFrequencies(text string) Frequencies {
	var freqs Frequencies
	for i := 0; i < len(text); i++ {
		freqs[text[i]]++
	}
	return freqs
}

// Total returns the sum of all counts, saturating at math.MaxUint64.
func (freqs *Frequencies) Total() uint64 {
	var sum uint64
	for _, n := range freqs {
		sum = addSaturating(sum, n)
	}
	return sum
}

// Distinct returns the number of Symbols with a non-zero count.
func (freqs *Frequencies) Distinct() int {
	var n int
	for _, count := range freqs {
		if count != 0 {
			n++
		}
	}
	return n
}

func addSaturating(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}
