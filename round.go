package zinclha

import "math/bits"

// round applies one four-pass mixing transform to the accumulator.
//
// Traversal order is load-bearing: every pass reads positions it has
// already rewritten in the same sweep, so indexes must be visited exactly
// as written here. All arithmetic wraps at 8 bits.
func (p *Profile) round(state *[Size]byte, block *[BlockSize]byte, sbox *[256]byte, input []byte) {
	n := len(input)
	ln := n
	if ln > BlockSize {
		ln = BlockSize
	}

	// Substitution-diffusion pass, pairing each index with its mirror.
	// The additive term draws from the first 8 state bytes only.
	for i := 0; i < Size; i++ {
		m := Size - 1 - i
		state[i] ^= bits.RotateLeft8(state[m], 7)
		state[i] = state[i]*0x9E + state[(i+p.pass1AddOff)%8]
		state[i] ^= bits.RotateLeft8(block[(i+4)%ln], 3)
		idx := ((i % ln) ^ (ln * int(state[i%ln]))) % Size
		state[i] = bits.RotateLeft8(state[i], int((block[idx]+sbox[idx])%8)+p.pass1RotOff)
		state[i] ^= bits.RotateLeft8(state[(i+7)%Size], 3)
		state[i] = sbox[state[i]]
	}

	// Cross mixing. The neighbor three ahead may already hold this pass's
	// output; flipping the traversal changes the digest.
	if p.pass2Descending {
		for i := Size - 1; i >= 0; i-- {
			state[i] ^= state[(i+3)%Size]
		}
	} else {
		for i := 0; i < Size; i++ {
			state[i] ^= state[(i+3)%Size]
		}
	}

	// Salt chain over the raw input. The salt carries across iterations.
	salt := bits.RotateLeft8(input[0]+input[n-1]*sbox[(n-1)%256], 3)
	for i := 0; i < Size; i++ {
		salt ^= salt * input[(i+n-1)%n]
		state[i] ^= bits.RotateLeft8(salt, i%8)
	}

	// Closing intra-round mix.
	for i := 0; i < Size; i++ {
		state[i] ^= state[(i+3)%Size]
		state[i] = bits.RotateLeft8((state[i]+state[(i+5)%Size])*state[(i+3)%Size], 5)
		idx := ((i % ln) ^ (ln * int(state[(i+3)%ln]))) % Size
		state[i] = bits.RotateLeft8(state[i], int(block[idx]%8)+1)
		state[i] ^= bits.RotateLeft8(state[(i+4)%Size], 4)
	}
}

// endMix folds the block into the accumulator one final time.
// The table lookup yields any value in 0..255; RotateLeft8 reduces the
// shift count modulo 8.
func (p *Profile) endMix(state *[Size]byte, block *[BlockSize]byte, sbox *[256]byte) {
	for i := 0; i < Size; i++ {
		state[i] ^= block[i]
		r := int(sbox[state[i]])
		if p.finalRot >= 0 {
			r = p.finalRot
		}
		state[i] = bits.RotateLeft8(state[i], r)
		state[i] = (state[i]+block[i])*3 ^ block[i]
	}
}
