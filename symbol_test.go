package huffpack

import (
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	freqs := CountFrequencies("abracadabra")

	expect := map[Symbol]uint64{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if actual := freqs[symbol]; actual != expect[Symbol(symbol)] {
			t.Errorf("symbol %q: expected %d, got %d", byte(symbol), expect[Symbol(symbol)], actual)
		}
	}
	if actual := freqs.Total(); actual != 11 {
		t.Errorf("Total: expected 11, got %d", actual)
	}
	if actual := freqs.Distinct(); actual != 5 {
		t.Errorf("Distinct: expected 5, got %d", actual)
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	freqs := CountFrequencies("")
	if freqs.Total() != 0 || freqs.Distinct() != 0 {
		t.Errorf("expected empty frequencies, got total %d, distinct %d", freqs.Total(), freqs.Distinct())
	}
}
