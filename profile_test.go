package zinclha

import "testing"

func TestParseProfile(t *testing.T) {
	for _, p := range []*Profile{V1, V2} {
		got, err := ParseProfile(p.String())
		if got != p || err != nil {
			t.Errorf("ParseProfile(%q) = %v, %v; want %v, <nil>", p.String(), got, err, p)
		}
	}
	if got, err := ParseProfile("zinc3"); err == nil {
		t.Errorf("ParseProfile(\"zinc3\") = %v, <nil>; want _, <error>", got)
	}
}
