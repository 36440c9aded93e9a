package zinclha

import "github.com/multiformats/go-multihash"

// MultihashCode identifies Zinc-LHA in multihash-framed digests.
// The algorithm has no registered multicodec entry, so the code sits in
// the private-use area (0x300000-0x3fffff).
const MultihashCode = 0x304c48

// Multihash returns the digest, in multihash format.
func (d Digest) Multihash() []byte {
	b, _ := multihash.Encode(d.Bytes(nil), MultihashCode)
	// "The error return is legacy; it is always nil."
	return b
}
