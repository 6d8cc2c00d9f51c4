package serialization

import (
	"io"

	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
)

// SerializeHeader writes header to w. The signature is written last and
// only when withSignature is set, so that the hashed form of a header never
// depends on its signature.
func SerializeHeader(w io.Writer, header *externalapi.DomainBlockHeader, withSignature bool) error {
	err := WriteElements(w, header.Version, header.PrevBlockHash, header.MerkleRoot, header.Timestamp,
		header.Bits, header.Nonce, header.Height, header.ProofType)
	if err != nil {
		return err
	}

	hasMemoryHardProof := header.MemoryHardProof != nil
	err = WriteElement(w, hasMemoryHardProof)
	if err != nil {
		return err
	}
	if hasMemoryHardProof {
		err = WriteElements(w, header.MemoryHardProof.HashData, header.MemoryHardProof.HashValue)
		if err != nil {
			return err
		}
	}

	if withSignature {
		return WriteElement(w, header.Signature)
	}
	return nil
}

// DeserializeHeader reads a header written by SerializeHeader with
// withSignature set.
func DeserializeHeader(r io.Reader) (*externalapi.DomainBlockHeader, error) {
	header := &externalapi.DomainBlockHeader{}
	err := ReadElements(r, &header.Version, &header.PrevBlockHash, &header.MerkleRoot, &header.Timestamp,
		&header.Bits, &header.Nonce, &header.Height, &header.ProofType)
	if err != nil {
		return nil, err
	}

	var hasMemoryHardProof bool
	err = ReadElement(r, &hasMemoryHardProof)
	if err != nil {
		return nil, err
	}
	if hasMemoryHardProof {
		header.MemoryHardProof = &externalapi.MemoryHardProof{}
		err = ReadElements(r, &header.MemoryHardProof.HashData, &header.MemoryHardProof.HashValue)
		if err != nil {
			return nil, err
		}
	}

	var signature []byte
	err = ReadElement(r, &signature)
	if err != nil {
		return nil, err
	}
	if len(signature) > 0 {
		header.Signature = signature
	}
	return header, nil
}
