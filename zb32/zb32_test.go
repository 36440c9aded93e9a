package zb32

import (
	"bytes"
	"math/rand"
	"testing"
)

//nolint:gochecknoglobals
var tests = []struct {
	dec []byte
	enc string
}{
	{[]byte{}, ""},
	{[]byte{0x1f}, "0z"},
	{[]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}, "0f1h50h1h4080"},
}

func TestEncodeToString(t *testing.T) {
	for _, test := range tests {
		if got := EncodeToString(test.dec); got != test.enc {
			t.Errorf("EncodeToString(%02x) = %q; want %q", test.dec, got, test.enc)
		}
	}
}

func TestDecodeString(t *testing.T) {
	for _, test := range tests {
		got, err := DecodeString(test.enc)
		if err != nil || !bytes.Equal(got, test.dec) {
			t.Errorf("DecodeString(%q) = %02x, %v; want %02x, <nil>", test.enc, got, err, test.dec)
		}
	}

	invalidEncodings := []string{
		// invalid character
		"0t",
		// decodes to 10 one-bits, which leaves a non-zero carry
		"zz",
		// same problem in a subtler spot
		"c0",
	}
	for _, bad := range invalidEncodings {
		if got, err := DecodeString(bad); err == nil {
			t.Errorf("DecodeString(%q) = %02x, <nil>; want _, <error>", bad, got)
		}
	}
}

func TestDecodeShortDst(t *testing.T) {
	enc := EncodeToString(make([]byte, 16))
	if n, err := Decode(make([]byte, 8), []byte(enc)); err == nil {
		t.Errorf("Decode into short dst = %d, <nil>; want _, <error>", n)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for size := 0; size < 128; size++ {
		buf := make([]byte, size)
		rng.Read(buf)
		got, err := DecodeString(EncodeToString(buf))
		if err != nil || !bytes.Equal(got, buf) {
			t.Fatalf("round trip of %d bytes = %02x, %v; want %02x, <nil>", size, got, err, buf)
		}
	}
}
