package keystore

import (
	"crypto/hmac"
	"crypto/sha512"
	"sync"

	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/hybridgate/domain/consensus/model"
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/hashes"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// masterKeySalt is the HMAC key BIP-32 uses to derive a master key from a seed
var masterKeySalt = []byte("Bitcoin seed")

// Keystore is an in-memory model.Keystore. It is safe for concurrent use.
type Keystore struct {
	lock sync.RWMutex
	keys map[externalapi.KeyID]*secp256k1.ECDSAPrivateKey
}

var _ model.Keystore = (*Keystore)(nil)

// New returns an empty Keystore
func New() *Keystore {
	return &Keystore{
		keys: make(map[externalapi.KeyID]*secp256k1.ECDSAPrivateKey),
	}
}

// CreateMnemonic returns a new random 24 word BIP-39 mnemonic
func CreateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", errors.WithStack(err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return mnemonic, nil
}

// KeyFromMnemonic derives the BIP-32 master private key of the seed of mnemonic
// and passphrase
func KeyFromMnemonic(mnemonic string, passphrase string) (*secp256k1.ECDSAPrivateKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("invalid mnemonic")
	}
	seed := bip39.NewSeed(mnemonic, passphrase)

	mac := hmac.New(sha512.New, masterKeySalt)
	_, err := mac.Write(seed)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	digest := mac.Sum(nil)

	privateKey, err := secp256k1.DeserializeECDSAPrivateKeyFromSlice(digest[:32])
	if err != nil {
		return nil, errors.Wrap(err, "the seed derives an invalid private key")
	}
	return privateKey, nil
}

// NewFromMnemonic returns a Keystore holding the master key of mnemonic
func NewFromMnemonic(mnemonic string, passphrase string) (*Keystore, error) {
	privateKey, err := KeyFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	ks := New()
	_, err = ks.ImportKey(privateKey)
	if err != nil {
		return nil, err
	}
	return ks, nil
}

// SerializedPublicKey returns the compressed public key of privateKey
func SerializedPublicKey(privateKey *secp256k1.ECDSAPrivateKey) ([]byte, error) {
	publicKey, err := privateKey.ECDSAPublicKey()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	serialized, err := publicKey.Serialize()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return serialized[:], nil
}

// ImportKey adds privateKey to the keystore and returns its KeyID
func (ks *Keystore) ImportKey(privateKey *secp256k1.ECDSAPrivateKey) (externalapi.KeyID, error) {
	publicKey, err := SerializedPublicKey(privateKey)
	if err != nil {
		return externalapi.KeyID{}, err
	}
	keyID := hashes.KeyIDFromPublicKey(publicKey)

	ks.lock.Lock()
	defer ks.lock.Unlock()

	ks.keys[keyID] = privateKey
	log.Debugf("Imported key %s", keyID)
	return keyID, nil
}

// HasKey returns whether the keystore holds the key identified by keyID
func (ks *Keystore) HasKey(keyID externalapi.KeyID) bool {
	ks.lock.RLock()
	defer ks.lock.RUnlock()

	_, ok := ks.keys[keyID]
	return ok
}

// GetKey returns the key identified by keyID
func (ks *Keystore) GetKey(keyID externalapi.KeyID) (*secp256k1.ECDSAPrivateKey, bool) {
	ks.lock.RLock()
	defer ks.lock.RUnlock()

	key, ok := ks.keys[keyID]
	return key, ok
}
