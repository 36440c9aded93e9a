// Package zinclha implements the Zinc-LHA mixing construction:
// a key-dependent substitution-permutation procedure that condenses an
// arbitrary byte string into a 64-byte digest.
//
// Zinc-LHA is not a vetted cryptographic primitive. It makes no claim of
// collision or preimage resistance; the point of the construction is
// bit-for-bit reproducible diffusion, and the package goes to some length
// to preserve the exact wrapping arithmetic and traversal orders of the
// published algorithm. Use a standard hash for anything security-bearing.
//
// The whole input is hashed in one pass. There is no streaming interface:
// the substitution table, the working block and the round count all depend
// on the complete input, so nothing can be emitted before the last byte is
// known.
package zinclha

const (
	// Size is the length of a digest in bytes.
	Size = 64
	// BlockSize is the length of the working block in bytes.
	BlockSize = 64

	baseRounds = 10000
)

// Sum computes the Zinc-LHA digest of data under the default profile [V2].
func Sum(data []byte) Digest {
	return V2.Sum(data)
}

// Sum computes the Zinc-LHA digest of data under profile p.
//
// An empty (or nil) input is hashed as the single byte 0x00.
func (p *Profile) Sum(data []byte) Digest {
	input := data
	if len(input) == 0 {
		input = []byte{0}
	}

	// Only the low 16 bits of the length reach the state, so inputs whose
	// lengths differ by a multiple of 65536 alias here. Known limitation.
	var state [Size]byte
	for i := range state {
		state[i] = p.stateFill
	}
	state[0] ^= byte(len(input))
	state[1] ^= byte(len(input) >> 8)

	var block [BlockSize]byte
	if p.blockFillFromState {
		for i := range block {
			block[i] = state[0]
		}
	}
	copy(block[:], input)

	sbox := p.initSBox(input)

	for n := rounds(input); n > 0; n-- {
		p.round(&state, &block, &sbox, input)
	}
	p.endMix(&state, &block, &sbox)

	return Digest(state)
}

// rounds derives the iteration count from the first and last input bytes.
// The sum wraps at 8 bits before the reductions, so the result always
// falls in [10000, 10999].
func rounds(input []byte) int {
	return baseRounds + int(input[0]+input[len(input)-1])%255%1000
}
