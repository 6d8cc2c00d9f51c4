package serialization

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
)

func TestHeaderSerialization(t *testing.T) {
	headers := []*externalapi.DomainBlockHeader{
		{
			Version:       1,
			PrevBlockHash: externalapi.DomainHash{1, 2, 3},
			MerkleRoot:    externalapi.DomainHash{4, 5, 6},
			Timestamp:     1600000000,
			Bits:          0x1d00ffff,
			Nonce:         42,
			Height:        7,
			ProofType:     externalapi.ProofTypeWork,
		},
		{
			Version:   2,
			Timestamp: 1600000060,
			Bits:      0x1e0fffff,
			Height:    8,
			ProofType: externalapi.ProofTypeMemoryHardWork,
			MemoryHardProof: &externalapi.MemoryHardProof{
				HashData:  []byte{9, 9, 9},
				HashValue: externalapi.DomainHash{0xaa},
			},
		},
		{
			Version:   3,
			Height:    9,
			ProofType: externalapi.ProofTypeStake,
			Signature: []byte{0x30, 0x44, 0x02},
		},
	}

	for i, header := range headers {
		buf := &bytes.Buffer{}
		err := SerializeHeader(buf, header, true)
		if err != nil {
			t.Fatalf("header #%d: SerializeHeader: %+v", i, err)
		}
		deserialized, err := DeserializeHeader(buf)
		if err != nil {
			t.Fatalf("header #%d: DeserializeHeader: %+v", i, err)
		}
		if !deserialized.Equal(header) {
			t.Fatalf("header #%d: got %s want %s", i, spew.Sdump(deserialized), spew.Sdump(header))
		}
	}
}

func TestSignatureIsNotHashed(t *testing.T) {
	header := &externalapi.DomainBlockHeader{Height: 3, ProofType: externalapi.ProofTypeStake}
	unsigned := &bytes.Buffer{}
	err := SerializeHeader(unsigned, header, false)
	if err != nil {
		t.Fatalf("SerializeHeader: %+v", err)
	}

	header.Signature = []byte{1, 2, 3}
	signed := &bytes.Buffer{}
	err = SerializeHeader(signed, header, false)
	if err != nil {
		t.Fatalf("SerializeHeader: %+v", err)
	}

	if !bytes.Equal(unsigned.Bytes(), signed.Bytes()) {
		t.Fatalf("the signature leaked into the serialization without signature")
	}
}

func TestMalformedHeader(t *testing.T) {
	buf := &bytes.Buffer{}
	err := SerializeHeader(buf, &externalapi.DomainBlockHeader{Height: 1}, true)
	if err != nil {
		t.Fatalf("SerializeHeader: %+v", err)
	}

	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-3])
	_, err = DeserializeHeader(truncated)
	if !IsMalformedError(err) {
		t.Fatalf("expected a malformed error, got %+v", err)
	}
}
