package externalapi

import "fmt"

// ProofType tags a block with the mechanism its producer used to earn the
// right to extend the chain.
type ProofType uint8

// The known proof types. Any other value is invalid.
const (
	ProofTypeWork ProofType = iota
	ProofTypeMemoryHardWork
	ProofTypeStake
)

var proofTypeStrings = map[ProofType]string{
	ProofTypeWork:           "work",
	ProofTypeMemoryHardWork: "memoryhardwork",
	ProofTypeStake:          "stake",
}

// ProofTypeFromString parses the String form of a ProofType
func ProofTypeFromString(s string) (ProofType, bool) {
	for proofType, str := range proofTypeStrings {
		if str == s {
			return proofType, true
		}
	}
	return 0, false
}

func (pt ProofType) String() string {
	if str, ok := proofTypeStrings[pt]; ok {
		return str
	}
	return fmt.Sprintf("unknown(%d)", uint8(pt))
}

// IsValid returns true if pt is one of the known proof types
func (pt ProofType) IsValid() bool {
	_, ok := proofTypeStrings[pt]
	return ok
}

// IsProofOfWork returns true for both the hash-based and the memory-hard
// work variants.
func (pt ProofType) IsProofOfWork() bool {
	return pt == ProofTypeWork || pt == ProofTypeMemoryHardWork
}

// IsProofOfStake returns true if pt is ProofTypeStake
func (pt ProofType) IsProofOfStake() bool {
	return pt == ProofTypeStake
}

// RequiresMemoryHardProof returns true if a block of this type must carry a
// memory-hard proof payload.
func (pt ProofType) RequiresMemoryHardProof() bool {
	return pt == ProofTypeMemoryHardWork
}
