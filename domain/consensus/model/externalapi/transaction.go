package externalapi

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// DomainTransaction represents a transaction
type DomainTransaction struct {
	Version  int32
	Inputs   []*DomainTransactionInput
	Outputs  []*DomainTransactionOutput
	LockTime uint64
}

// DomainTransactionInput represents a transaction input
type DomainTransactionInput struct {
	PreviousOutpoint DomainOutpoint
	SignatureScript  []byte
	Sequence         uint64
}

// DomainOutpoint represents a transaction outpoint
type DomainOutpoint struct {
	TransactionID DomainTransactionID
	Index         uint32
}

// String stringifies an outpoint.
func (op DomainOutpoint) String() string {
	return fmt.Sprintf("%s:%d", op.TransactionID, op.Index)
}

// DomainTransactionOutput represents a transaction output
type DomainTransactionOutput struct {
	Value           uint64
	ScriptPublicKey []byte
}

// DomainTransactionID represents the ID of a transaction
type DomainTransactionID DomainHash

// String stringifies a transaction ID.
func (id DomainTransactionID) String() string {
	return hex.EncodeToString(id[:])
}

// Clone returns a clone of DomainTransaction
func (tx *DomainTransaction) Clone() *DomainTransaction {
	inputsClone := make([]*DomainTransactionInput, len(tx.Inputs))
	for i, input := range tx.Inputs {
		inputsClone[i] = &DomainTransactionInput{
			PreviousOutpoint: input.PreviousOutpoint,
			SignatureScript:  append([]byte(nil), input.SignatureScript...),
			Sequence:         input.Sequence,
		}
	}

	outputsClone := make([]*DomainTransactionOutput, len(tx.Outputs))
	for i, output := range tx.Outputs {
		outputsClone[i] = &DomainTransactionOutput{
			Value:           output.Value,
			ScriptPublicKey: append([]byte(nil), output.ScriptPublicKey...),
		}
	}

	return &DomainTransaction{
		Version:  tx.Version,
		Inputs:   inputsClone,
		Outputs:  outputsClone,
		LockTime: tx.LockTime,
	}
}

// Equal returns whether tx equals to other
func (tx *DomainTransaction) Equal(other *DomainTransaction) bool {
	if tx == nil || other == nil {
		return tx == other
	}

	if tx.Version != other.Version || tx.LockTime != other.LockTime ||
		len(tx.Inputs) != len(other.Inputs) || len(tx.Outputs) != len(other.Outputs) {
		return false
	}

	for i, input := range tx.Inputs {
		otherInput := other.Inputs[i]
		if input.PreviousOutpoint != otherInput.PreviousOutpoint ||
			input.Sequence != otherInput.Sequence ||
			!bytes.Equal(input.SignatureScript, otherInput.SignatureScript) {
			return false
		}
	}

	for i, output := range tx.Outputs {
		if output.Value != other.Outputs[i].Value ||
			!bytes.Equal(output.ScriptPublicKey, other.Outputs[i].ScriptPublicKey) {
			return false
		}
	}

	return true
}
