package zinclha

import "testing"

// TestSBoxDistinctValues records the observed number of distinct table
// entries for fixed inputs. The generator XORs entries before swapping, so
// the table is not always a permutation of 0..255; these counts are a
// regression oracle for that behavior, not a requirement that it hold.
func TestSBoxDistinctValues(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"\x00", 256},
		{"abc", 161},
		{"hello world", 166},
	}
	for _, test := range tests {
		sbox := V2.initSBox([]byte(test.input))
		seen := make(map[byte]bool)
		for _, v := range sbox {
			seen[v] = true
		}
		if got := len(seen); got != test.want {
			t.Errorf("initSBox(%q) has %d distinct values; want %d", test.input, got, test.want)
		}
	}
}

func TestSBoxDeterministic(t *testing.T) {
	input := []byte("determinism")
	first := V2.initSBox(input)
	if again := V2.initSBox(input); again != first {
		t.Error("initSBox is not deterministic")
	}
}
