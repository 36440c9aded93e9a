package zinclha

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/kuhlklay/zinc-lha/zb32"
)

// algName prefixes every typed digest representation.
const algName = "zinc-lha"

// base64Encoding is the alphabet used for base64 and SRI representations.
var base64Encoding = base64.StdEncoding

// A Digest is the 64-byte output of the hash.
// Digests are comparable with ==.
type Digest [Size]byte

// ParseDigest parses a digest
// in the format "zinc-lha:<base16|base32|base64>" or "zinc-lha-<base64>"
// (an SRI-style expression).
// It is a wrapper around [Digest.UnmarshalText].
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if err := d.UnmarshalText([]byte(s)); err != nil {
		return Digest{}, err
	}
	return d, nil
}

// Bytes appends the raw bytes of the digest to dst
// and returns the resulting slice.
func (d Digest) Bytes(dst []byte) []byte {
	return append(dst, d[:]...)
}

// String returns the bare lowercase hex form of the digest,
// the representation the zinc-lha tool prints.
func (d Digest) String() string {
	return d.RawBase16()
}

// Base16 encodes the digest with base16 (i.e. hex)
// prefixed by the algorithm name separated by a colon.
func (d Digest) Base16() string {
	return string(d.encode(true, hex.EncodedLen, base16Encode))
}

// RawBase16 encodes the digest with base16 (i.e. hex).
func (d Digest) RawBase16() string {
	return string(d.encode(false, hex.EncodedLen, base16Encode))
}

func base16Encode(dst, src []byte) {
	hex.Encode(dst, src)
}

// Base32 encodes the digest with the reversed-order base32 alphabet
// prefixed by the algorithm name separated by a colon.
func (d Digest) Base32() string {
	return string(d.encode(true, zb32.EncodedLen, zb32.Encode))
}

// RawBase32 encodes the digest with the reversed-order base32 alphabet.
func (d Digest) RawBase32() string {
	return string(d.encode(false, zb32.EncodedLen, zb32.Encode))
}

// Base64 encodes the digest with base64
// prefixed by the algorithm name separated by a colon.
func (d Digest) Base64() string {
	return string(d.encode(true, base64Encoding.EncodedLen, base64Encoding.Encode))
}

// RawBase64 encodes the digest with base64.
func (d Digest) RawBase64() string {
	return string(d.encode(false, base64Encoding.EncodedLen, base64Encoding.Encode))
}

// SRI returns the digest in the shape of a Subresource Integrity hash
// expression (e.g. "zinc-lha-Xj1CCoDle4Sh...").
// Zinc-LHA is not a registered SRI algorithm; the format is used for its
// compactness, not for browser interoperability.
func (d Digest) SRI() string {
	b, _ := d.MarshalText()
	return string(b)
}

// MarshalText formats the digest as an SRI-style expression.
// It never returns an error.
func (d Digest) MarshalText() ([]byte, error) {
	buf := d.encode(true, base64Encoding.EncodedLen, base64Encoding.Encode)
	buf[bytes.IndexByte(buf, ':')] = '-'
	return buf, nil
}

// UnmarshalText parses a digest
// in the format "zinc-lha:<base16|base32|base64>" or "zinc-lha-<base64>"
// (an SRI-style expression).
func (d *Digest) UnmarshalText(s []byte) error {
	prefix, rest, hasPrefix := bytes.Cut(s, []byte{':'})
	isSRI := false
	if !hasPrefix {
		// The SRI separator is a dash, which also appears inside the
		// algorithm name, so match the whole prefix rather than cutting
		// at the first dash.
		if !bytes.HasPrefix(s, []byte(algName+"-")) {
			return fmt.Errorf("parse digest %q: missing prefix", s)
		}
		prefix, rest = s[:len(algName)], s[len(algName)+1:]
		isSRI = true
	}
	if string(prefix) != algName {
		return fmt.Errorf("parse digest %q: unknown algorithm %q", s, prefix)
	}
	switch {
	case isSRI && len(rest) != base64Encoding.EncodedLen(Size):
		return fmt.Errorf("parse digest %q: wrong length for SRI expression", s)
	case len(rest) == hex.EncodedLen(Size):
		if _, err := hex.Decode(d[:], rest); err != nil {
			return fmt.Errorf("parse digest %q: %v", s, err)
		}
	case len(rest) == zb32.EncodedLen(Size):
		if _, err := zb32.Decode(d[:], rest); err != nil {
			return fmt.Errorf("parse digest %q: %v", s, err)
		}
	case len(rest) == base64Encoding.EncodedLen(Size):
		if _, err := base64Encoding.Decode(d[:], rest); err != nil {
			return fmt.Errorf("parse digest %q: %v", s, err)
		}
	default:
		return fmt.Errorf("parse digest %q: wrong length %d", s, len(rest))
	}
	return nil
}

func (d Digest) encode(includeType bool, encodedLen func(int) int, encode func(dst, src []byte)) []byte {
	n := encodedLen(Size)
	if includeType {
		n += len(algName) + 1
	}

	buf := make([]byte, 0, n)
	if includeType {
		buf = append(buf, algName...)
		buf = append(buf, ':')
	}
	encode(buf[len(buf):n], d[:])
	return buf[:n]
}
