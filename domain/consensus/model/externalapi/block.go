package externalapi

import "bytes"

// DomainBlock represents a block
type DomainBlock struct {
	Header       *DomainBlockHeader
	Transactions []*DomainTransaction
}

// Clone returns a clone of DomainBlock
func (block *DomainBlock) Clone() *DomainBlock {
	transactionClone := make([]*DomainTransaction, len(block.Transactions))
	for i, tx := range block.Transactions {
		transactionClone[i] = tx.Clone()
	}

	return &DomainBlock{
		Header:       block.Header.Clone(),
		Transactions: transactionClone,
	}
}

// MemoryHardProof is the auxiliary payload carried by memory-hard work blocks.
// HashValue is the proof hash claimed by the producer.
type MemoryHardProof struct {
	HashData  []byte
	HashValue DomainHash
}

// Clone returns a clone of MemoryHardProof
func (proof *MemoryHardProof) Clone() *MemoryHardProof {
	if proof == nil {
		return nil
	}
	hashDataClone := make([]byte, len(proof.HashData))
	copy(hashDataClone, proof.HashData)
	return &MemoryHardProof{
		HashData:  hashDataClone,
		HashValue: proof.HashValue,
	}
}

// DomainBlockHeader represents the header part of a block
type DomainBlockHeader struct {
	Version         int32
	PrevBlockHash   DomainHash
	MerkleRoot      DomainHash
	Timestamp       int64
	Bits            uint32
	Nonce           uint32
	Height          uint64
	ProofType       ProofType
	MemoryHardProof *MemoryHardProof

	// Signature is not covered by the header hash.
	Signature []byte
}

// Clone returns a clone of DomainBlockHeader
func (header *DomainBlockHeader) Clone() *DomainBlockHeader {
	var signatureClone []byte
	if header.Signature != nil {
		signatureClone = make([]byte, len(header.Signature))
		copy(signatureClone, header.Signature)
	}
	return &DomainBlockHeader{
		Version:         header.Version,
		PrevBlockHash:   header.PrevBlockHash,
		MerkleRoot:      header.MerkleRoot,
		Timestamp:       header.Timestamp,
		Bits:            header.Bits,
		Nonce:           header.Nonce,
		Height:          header.Height,
		ProofType:       header.ProofType,
		MemoryHardProof: header.MemoryHardProof.Clone(),
		Signature:       signatureClone,
	}
}

// If this doesn't compile, it means the type definition has been changed, so it's
// an indication to update Equal and Clone accordingly.
var _ = &DomainBlockHeader{0, DomainHash{}, DomainHash{}, 0, 0, 0, 0, ProofTypeWork, nil, nil}

// Equal returns whether header equals to other
func (header *DomainBlockHeader) Equal(other *DomainBlockHeader) bool {
	if header == nil || other == nil {
		return header == other
	}

	if header.Version != other.Version ||
		header.PrevBlockHash != other.PrevBlockHash ||
		header.MerkleRoot != other.MerkleRoot ||
		header.Timestamp != other.Timestamp ||
		header.Bits != other.Bits ||
		header.Nonce != other.Nonce ||
		header.Height != other.Height ||
		header.ProofType != other.ProofType {
		return false
	}

	if (header.MemoryHardProof == nil) != (other.MemoryHardProof == nil) {
		return false
	}
	if header.MemoryHardProof != nil {
		if header.MemoryHardProof.HashValue != other.MemoryHardProof.HashValue ||
			!bytes.Equal(header.MemoryHardProof.HashData, other.MemoryHardProof.HashData) {
			return false
		}
	}

	return bytes.Equal(header.Signature, other.Signature)
}
