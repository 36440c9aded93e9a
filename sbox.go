package zinclha

import "math/bits"

// initSBox derives the 256-entry substitution table from the input bytes.
//
// The table starts as the identity permutation and is scrambled by two
// descending passes of seeded swaps. Entries are XORed with input bytes
// before each swap, so unlike an RC4-style key schedule the result is not
// guaranteed to remain a permutation of 0..255. That weakening is part of
// the published algorithm and is preserved here.
func (p *Profile) initSBox(input []byte) [256]byte {
	n := len(input)
	var sbox [256]byte
	for i := range sbox {
		sbox[i] = byte(i)
	}

	seed := input[0] + input[n-1]
	for i := 255; i >= 1; i-- {
		seed = (seed + input[i%n]) ^ sbox[i] ^ sbox[(i+7)%256] ^ bits.RotateLeft8(seed, i%5)
		j := (int(seed) ^ i) % 256
		sbox[i] ^= input[i%n]
		sbox[j] ^= input[(i+1)%n]
		sbox[i], sbox[j] = sbox[j], sbox[i]
	}
	for i := 255; i >= 1; i-- {
		seed ^= sbox[i*3%256]
		j := (int(seed) ^ i) % 256
		sbox[i] ^= input[(i+p.sboxOff)%n]
		sbox[j] ^= input[(i+(i*p.sboxMul^i))%n]
		sbox[i], sbox[j] = sbox[j], sbox[i]
	}
	return sbox
}
