/*
Package zb32 implements the reversed-order base32 encoding used for compact
digest display.

The alphabet drops the characters e, o, u and t (a habit inherited from
store-path encodings, where it keeps accidental words out of identifiers),
and the encoder consumes its input from the last byte to the first with no
padding. That reversed read order is what rules out encoding/base32, which
only supports the RFC 4648 direction. The package mirrors a subset of the
encoding/base32.Encoding method set as free functions.
*/
package zb32

import "fmt"

// alphabet is the 32-character digit set, in ascending digit order.
const alphabet = "0123456789abcdfghijklmnpqrsvwxyz"

// EncodedLen returns the length in bytes of the encoding of an input
// buffer of length n.
func EncodedLen(n int) int {
	if n == 0 {
		return 0
	}
	return (n*8-1)/5 + 1
}

// DecodedLen returns the length in bytes of the decoded data
// corresponding to n bytes of encoded data. Bits that do not fit are
// padding and must decode to zero.
func DecodedLen(n int) int {
	return n * 5 / 8
}

// Encode encodes src into EncodedLen(len(src)) bytes of dst.
func Encode(dst, src []byte) {
	l := EncodedLen(len(src))
	for n := l - 1; n >= 0; n-- {
		b := uint(n * 5)
		i := b / 8
		j := b % 8

		c := src[i] >> j
		if i+1 < uint(len(src)) {
			c |= src[i+1] << (8 - j)
		}

		dst[l-1-n] = alphabet[c&0x1f]
	}
}

// EncodeToString returns the zb32 encoding of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return string(dst)
}

// Decode decodes src into DecodedLen(len(src)) bytes of dst,
// returning the number of bytes written.
func Decode(dst, src []byte) (int, error) {
	dl := DecodedLen(len(src))
	if len(dst) < dl {
		return 0, fmt.Errorf("decode zb32: destination too short")
	}
	for i := range dst[:dl] {
		dst[i] = 0
	}

	for n := 0; n < len(src); n++ {
		c := src[len(src)-n-1]

		digit := digitValue(c)
		if digit == -1 {
			return 0, fmt.Errorf("decode zb32: character %q not in alphabet", c)
		}

		b := uint(n * 5)
		i := int(b / 8)
		j := b % 8

		dst[i] |= byte(digit) << j

		carry := byte(digit) >> (8 - j)
		if i+1 < dl {
			dst[i+1] |= carry
		} else if carry != 0 {
			// Trailing bits beyond the output length must be zero.
			return 0, fmt.Errorf("decode zb32: non-zero padding")
		}
	}

	return dl, nil
}

// DecodeString returns the bytes represented by the zb32 string s.
func DecodeString(s string) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(s)))
	if _, err := Decode(dst, []byte(s)); err != nil {
		return nil, err
	}
	return dst, nil
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		for i := 10; i < len(alphabet); i++ {
			if alphabet[i] == c {
				return i
			}
		}
	}
	return -1
}
