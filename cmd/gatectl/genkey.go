package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/hashes"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/txscript"
	"github.com/kaspanet/hybridgate/infrastructure/keystore"
	"golang.org/x/term"
)

// signingKey is what an operator needs to pay a coinbase or a coinstake to
// a block signing key
type signingKey struct {
	publicKey []byte
	script    []byte
	keyID     externalapi.KeyID
}

func genKey(conf *genKeyConfig, out io.Writer) error {
	mnemonic := conf.Mnemonic
	if mnemonic == "" {
		var err error
		mnemonic, err = keystore.CreateMnemonic()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Mnemonic (write it down and keep it safe):\n%s\n\n", mnemonic)
	}

	passphrase := ""
	if !conf.NoPassphrase && term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := getPassword("Enter mnemonic passphrase (empty for none): ")
		if err != nil {
			return err
		}
		passphrase = string(password)
	}

	key, err := deriveSigningKey(mnemonic, passphrase)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Public key:        %x\n", key.publicKey)
	fmt.Fprintf(out, "Pay-to-pubkey:     %x\n", key.script)
	fmt.Fprintf(out, "Script class:      %s\n", txscript.GetScriptClass(key.script))
	fmt.Fprintf(out, "Key ID:            %s\n", key.keyID)
	return nil
}

func deriveSigningKey(mnemonic string, passphrase string) (*signingKey, error) {
	privateKey, err := keystore.KeyFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	publicKey, err := keystore.SerializedPublicKey(privateKey)
	if err != nil {
		return nil, err
	}
	script, err := txscript.PayToPubKeyScript(publicKey)
	if err != nil {
		return nil, err
	}
	return &signingKey{
		publicKey: publicKey,
		script:    script,
		keyID:     hashes.KeyIDFromPublicKey(publicKey),
	}, nil
}
