package blocksigner

import (
	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/hybridgate/domain/consensus/model"
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
	"github.com/kaspanet/hybridgate/domain/consensus/ruleerrors"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/hashes"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/txscript"
	"github.com/pkg/errors"
)

const (
	coinbaseTransactionIndex  = 0
	coinstakeTransactionIndex = 1
	coinstakeOutputIndex      = 1
)

// blockSigner signs blocks with the key of the output that designates their
// producer, and checks those signatures
type blockSigner struct {
	keystore model.Keystore
}

// New instantiates a new BlockSigner. keystore is only used for signing and
// may be nil on nodes that only verify.
func New(keystore model.Keystore) model.BlockSigner {
	return &blockSigner{
		keystore: keystore,
	}
}

// SignerIdentity returns the KeyID output pays to
func (bs *blockSigner) SignerIdentity(output *externalapi.DomainTransactionOutput) (externalapi.KeyID, error) {
	class, data := txscript.ExtractScriptPubKeyData(output.ScriptPublicKey)
	switch class {
	case txscript.PubKeyTy:
		return hashes.KeyIDFromPublicKey(data), nil
	case txscript.PubKeyHashTy:
		var keyID externalapi.KeyID
		copy(keyID[:], data)
		return keyID, nil
	default:
		return externalapi.KeyID{}, errors.Wrapf(ruleerrors.ErrUnsupportedScript, "script %x is %s",
			output.ScriptPublicKey, class)
	}
}

// signingIdentity finds the KeyID entitled to sign block. Work blocks are
// signed by the first coinbase output with a derivable identity, stake blocks
// by the second output of the coinstake.
func (bs *blockSigner) signingIdentity(block *externalapi.DomainBlock) (externalapi.KeyID, error) {
	if block.Header.ProofType.IsProofOfWork() {
		if len(block.Transactions) <= coinbaseTransactionIndex {
			return externalapi.KeyID{}, errors.Wrapf(ruleerrors.ErrNoSignableOutput, "block has no coinbase")
		}
		for _, output := range block.Transactions[coinbaseTransactionIndex].Outputs {
			keyID, err := bs.SignerIdentity(output)
			if err == nil {
				return keyID, nil
			}
		}
		return externalapi.KeyID{}, errors.Wrapf(ruleerrors.ErrNoSignableOutput,
			"no coinbase output of the work block designates a signer")
	}

	stakeOutput, err := coinstakeOutput(block)
	if err != nil {
		return externalapi.KeyID{}, errors.Wrapf(ruleerrors.ErrNoSignableOutput, "%s", err)
	}
	keyID, err := bs.SignerIdentity(stakeOutput)
	if err != nil {
		return externalapi.KeyID{}, errors.Wrapf(ruleerrors.ErrNoSignableOutput,
			"the coinstake output doesn't designate a signer: %s", err)
	}
	return keyID, nil
}

// SignBlock signs block with the key of its designated signer, as found in
// the keystore.
func (bs *blockSigner) SignBlock(block *externalapi.DomainBlock) error {
	if !block.Header.ProofType.IsValid() {
		return errors.Wrapf(ruleerrors.ErrInvalidProofType, "block has proof type %d", block.Header.ProofType)
	}

	keyID, err := bs.signingIdentity(block)
	if err != nil {
		return err
	}
	log.Debugf("Got key ID %s for block at height %d", keyID, block.Header.Height)

	if bs.keystore == nil || !bs.keystore.HasKey(keyID) {
		return errors.Wrapf(ruleerrors.ErrKeyNotFound, "key %s is not in the keystore", keyID)
	}
	key, ok := bs.keystore.GetKey(keyID)
	if !ok {
		return errors.Wrapf(ruleerrors.ErrKeyNotFound, "failed to get key %s from the keystore", keyID)
	}

	return bs.SignBlockWithKey(block, key)
}

// SignBlockWithKey signs the header hash of block with key and stores the
// serialized signature in the header
func (bs *blockSigner) SignBlockWithKey(block *externalapi.DomainBlock, key *secp256k1.ECDSAPrivateKey) error {
	if key == nil {
		return errors.Wrapf(ruleerrors.ErrSigningFailed, "no signing key")
	}

	hash := secp256k1.Hash(*consensushashing.BlockHash(block))
	signature, err := key.ECDSASign(&hash)
	if err != nil {
		return errors.Wrapf(ruleerrors.ErrSigningFailed, "failed to sign block hash with key: %s", err)
	}

	block.Header.Signature = append([]byte(nil), signature.Serialize()[:]...)
	return nil
}

// CheckBlockSignature checks the signature of block. Work blocks must not be
// signed. Stake blocks must be signed by the public key the second output of
// their coinstake pays to. A pay-to-pubkey-hash coinstake output can't be
// verified since only the hash of the key is known.
func (bs *blockSigner) CheckBlockSignature(block *externalapi.DomainBlock) error {
	header := block.Header
	if header.ProofType.IsProofOfWork() {
		if len(header.Signature) != 0 {
			return errors.Wrapf(ruleerrors.ErrUnexpectedSignature, "work block at height %d is signed",
				header.Height)
		}
		return nil
	}
	if !header.ProofType.IsProofOfStake() {
		return errors.Wrapf(ruleerrors.ErrInvalidProofType, "block at height %d has proof type %d",
			header.Height, header.ProofType)
	}
	if len(header.Signature) == 0 {
		return errors.Wrapf(ruleerrors.ErrMissingSignature, "stake block at height %d is not signed",
			header.Height)
	}

	stakeOutput, err := coinstakeOutput(block)
	if err != nil {
		return errors.Wrapf(ruleerrors.ErrInvalidPubkey, "%s", err)
	}
	class, data := txscript.ExtractScriptPubKeyData(stakeOutput.ScriptPublicKey)
	if class != txscript.PubKeyTy {
		return errors.Wrapf(ruleerrors.ErrInvalidPubkey, "coinstake output script %x is %s and "+
			"carries no public key", stakeOutput.ScriptPublicKey, class)
	}
	publicKey, err := secp256k1.DeserializeECDSAPubKey(data)
	if err != nil {
		return errors.Wrapf(ruleerrors.ErrInvalidPubkey, "invalid pubkey %x: %s", data, err)
	}

	signature, err := secp256k1.DeserializeECDSASignatureFromSlice(header.Signature)
	if err != nil {
		return errors.Wrapf(ruleerrors.ErrSignatureInvalid, "malformed signature of block at height %d: %s",
			header.Height, err)
	}
	hash := secp256k1.Hash(*consensushashing.BlockHash(block))
	if !publicKey.ECDSAVerify(&hash, signature) {
		return errors.Wrapf(ruleerrors.ErrSignatureInvalid, "signature of block at height %d doesn't "+
			"match pubkey %x", header.Height, data)
	}
	return nil
}

func coinstakeOutput(block *externalapi.DomainBlock) (*externalapi.DomainTransactionOutput, error) {
	if len(block.Transactions) <= coinstakeTransactionIndex {
		return nil, errors.New("stake block has no coinstake transaction")
	}
	coinstake := block.Transactions[coinstakeTransactionIndex]
	if len(coinstake.Outputs) <= coinstakeOutputIndex {
		return nil, errors.Errorf("coinstake transaction has %d outputs", len(coinstake.Outputs))
	}
	return coinstake.Outputs[coinstakeOutputIndex], nil
}
