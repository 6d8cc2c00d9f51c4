package externalapi

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// DomainHashSize of array used to store hashes.
const DomainHashSize = 32

// DomainHash is the domain representation of a Hash.
// It is stored as a little endian byte array.
type DomainHash [DomainHashSize]byte

// NewDomainHashFromByteSlice creates a DomainHash from the given byte slice
func NewDomainHashFromByteSlice(hashBytes []byte) (*DomainHash, error) {
	if len(hashBytes) != DomainHashSize {
		return nil, errors.Errorf("invalid hash size. Want: %d, got: %d",
			DomainHashSize, len(hashBytes))
	}
	var domainHash DomainHash
	copy(domainHash[:], hashBytes)
	return &domainHash, nil
}

// NewDomainHashFromString parses a hash from its display form, which is
// the byte-reversed hexadecimal representation of the stored bytes.
func NewDomainHashFromString(hashString string) (*DomainHash, error) {
	expectedLength := DomainHashSize * 2
	if len(hashString) != expectedLength {
		return nil, errors.Errorf("hash string length is %d, while it should be be %d",
			len(hashString), expectedLength)
	}

	hashBytes, err := hex.DecodeString(hashString)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var domainHash DomainHash
	for i, b := range hashBytes {
		domainHash[DomainHashSize-1-i] = b
	}
	return &domainHash, nil
}

// String returns the Hash as the hexadecimal string of the byte-reversed hash.
func (hash DomainHash) String() string {
	for i := 0; i < DomainHashSize/2; i++ {
		hash[i], hash[DomainHashSize-1-i] = hash[DomainHashSize-1-i], hash[i]
	}
	return hex.EncodeToString(hash[:])
}

// ByteSlice returns the bytes in this hash represented as a bytes slice.
// The hash bytes are cloned, therefore it is safe to modify the resulting slice.
func (hash *DomainHash) ByteSlice() []byte {
	clone := *hash
	return clone[:]
}

// Equal returns whether hash equals to other
func (hash *DomainHash) Equal(other *DomainHash) bool {
	if hash == nil || other == nil {
		return hash == other
	}
	return *hash == *other
}
