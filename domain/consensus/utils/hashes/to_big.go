package hashes

import (
	"math/big"

	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
)

// ToBig converts a DomainHash into a big.Int treated as a little endian
// unsigned 256-bit number. This is the only interpretation under which a
// hash is compared with a target.
func ToBig(hash *externalapi.DomainHash) *big.Int {
	// A Hash is in little-endian, but the big package wants the bytes in
	// big-endian, so reverse them.
	buf := *hash
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}

	return new(big.Int).SetBytes(buf[:])
}

// FromBig converts a non-negative big.Int that fits in 256 bits into a
// little endian DomainHash. Higher bits are dropped.
func FromBig(n *big.Int) *externalapi.DomainHash {
	var hash externalapi.DomainHash
	bigEndian := n.Bytes()
	if len(bigEndian) > externalapi.DomainHashSize {
		bigEndian = bigEndian[len(bigEndian)-externalapi.DomainHashSize:]
	}
	for i, b := range bigEndian {
		hash[len(bigEndian)-1-i] = b
	}
	return &hash
}
