package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kaspanet/hybridgate/domain/consensus/ruleerrors"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/hashes"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/txscript"
	"github.com/kaspanet/hybridgate/infrastructure/config"
	"github.com/pkg/errors"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon " +
	"abandon about"

func regtestConfig(t *testing.T) *config.Config {
	cfg := config.DefaultConfig()
	cfg.AppDir = t.TempDir()
	cfg.Regtest = true
	err := cfg.Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve: %+v", err)
	}
	return cfg
}

func TestParseBits(t *testing.T) {
	tests := []struct {
		in          string
		expected    uint32
		expectedErr bool
	}{
		{"1d00ffff", 0x1d00ffff, false},
		{"0x207fffff", 0x207fffff, false},
		{"0X1e0fffff", 0x1e0fffff, false},
		{"1d00ffff00", 0, true},
		{"bits", 0, true},
		{"", 0, true},
	}
	for _, test := range tests {
		bits, err := parseBits(test.in)
		if test.expectedErr {
			if err == nil {
				t.Errorf("TestParseBits: expected an error for '%s'", test.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("TestParseBits: unexpected error for '%s': %s", test.in, err)
			continue
		}
		if bits != test.expected {
			t.Errorf("TestParseBits: '%s' parsed to %08x, want %08x", test.in, bits, test.expected)
		}
	}
}

func TestShowDifficulty(t *testing.T) {
	out := &bytes.Buffer{}
	err := showDifficulty(&difficultyConfig{Bits: "1d00ffff"}, out)
	if err != nil {
		t.Fatalf("showDifficulty: %+v", err)
	}
	output := out.String()
	expectedLines := []string{
		"Target:     00000000ffff0000000000000000000000000000000000000000000000000000\n",
		"Difficulty: 1.000000\n",
		"Work:       4295032833\n",
	}
	for _, line := range expectedLines {
		if !strings.Contains(output, line) {
			t.Errorf("TestShowDifficulty: output %q is missing %q", output, line)
		}
	}

	for _, invalidBits := range []string{"04923456", "01fedcba", "23123456"} {
		err = showDifficulty(&difficultyConfig{Bits: invalidBits}, &bytes.Buffer{})
		if err == nil {
			t.Fatalf("TestShowDifficulty: expected an error for bits %s", invalidBits)
		}
	}

	// The sign bit of a mantissa that shifts down to zero doesn't make the
	// target negative
	out.Reset()
	err = showDifficulty(&difficultyConfig{Bits: "01803456"}, out)
	if err != nil {
		t.Fatalf("showDifficulty: %+v", err)
	}
	if !strings.Contains(out.String(), "Work:       0\n") {
		t.Fatalf("TestShowDifficulty: expected no work for a zero target, got %q", out.String())
	}
}

func TestCheckPow(t *testing.T) {
	cfg := regtestConfig(t)

	out := &bytes.Buffer{}
	err := checkPow(cfg, &checkPowConfig{Hash: strings.Repeat("0", 64), Bits: "207fffff"}, out)
	if err != nil {
		t.Fatalf("checkPow: %+v", err)
	}
	if !strings.Contains(out.String(), "meets target 207fffff") {
		t.Fatalf("TestCheckPow: unexpected output %q", out.String())
	}

	err = checkPow(cfg, &checkPowConfig{Hash: strings.Repeat("f", 64), Bits: "207fffff"}, &bytes.Buffer{})
	if !errors.Is(err, ruleerrors.ErrTargetNotMet) {
		t.Fatalf("TestCheckPow: expected ErrTargetNotMet, got %v", err)
	}

	err = checkPow(cfg, &checkPowConfig{Hash: "00", Bits: "207fffff"}, &bytes.Buffer{})
	if err == nil {
		t.Fatalf("TestCheckPow: expected an error for a short hash")
	}
}

func TestAddHeaderAndNextBits(t *testing.T) {
	cfg := regtestConfig(t)

	genesisOut := &bytes.Buffer{}
	err := addHeader(cfg, &addHeaderConfig{Height: 0, Bits: "207fffff", Time: 1000, ProofType: "work"}, genesisOut)
	if err != nil {
		t.Fatalf("addHeader: %+v", err)
	}
	genesisHash := strings.TrimSpace(genesisOut.String())

	err = addHeader(cfg, &addHeaderConfig{Height: 1, Bits: "207fffff", Time: 1060, ProofType: "stake"},
		&bytes.Buffer{})
	if err != nil {
		t.Fatalf("addHeader: %+v", err)
	}

	out := &bytes.Buffer{}
	err = nextBits(cfg, &nextBitsConfig{Time: 1120}, out)
	if err != nil {
		t.Fatalf("nextBits: %+v", err)
	}
	if out.String() != "207fffff\n" {
		t.Fatalf("TestAddHeaderAndNextBits: unexpected next bits %q", out.String())
	}

	err = addHeader(cfg, &addHeaderConfig{Height: 2, Bits: "1d00ffff", Time: 1120, ProofType: "work"},
		&bytes.Buffer{})
	if !errors.Is(err, ruleerrors.ErrUnexpectedDifficulty) {
		t.Fatalf("TestAddHeaderAndNextBits: expected ErrUnexpectedDifficulty, got %v", err)
	}

	err = addHeader(cfg, &addHeaderConfig{Height: 2, Bits: "207fffff", Time: 1120, ProofType: "work",
		Prev: genesisHash}, &bytes.Buffer{})
	if !errors.Is(err, ruleerrors.ErrInvalidAncestor) {
		t.Fatalf("TestAddHeaderAndNextBits: expected ErrInvalidAncestor, got %v", err)
	}

	err = addHeader(cfg, &addHeaderConfig{Height: 2, Bits: "207fffff", Time: 1120, ProofType: "magic"},
		&bytes.Buffer{})
	if err == nil {
		t.Fatalf("TestAddHeaderAndNextBits: expected an error for an unknown proof type")
	}
}

func TestDeriveSigningKey(t *testing.T) {
	key, err := deriveSigningKey(testMnemonic, "")
	if err != nil {
		t.Fatalf("deriveSigningKey: %+v", err)
	}
	if len(key.publicKey) != 33 {
		t.Fatalf("TestDeriveSigningKey: public key is %d bytes, want 33", len(key.publicKey))
	}
	expectedScript, err := txscript.PayToPubKeyScript(key.publicKey)
	if err != nil {
		t.Fatalf("PayToPubKeyScript: %+v", err)
	}
	if !bytes.Equal(key.script, expectedScript) {
		t.Fatalf("TestDeriveSigningKey: unexpected script %x", key.script)
	}
	if key.keyID != hashes.KeyIDFromPublicKey(key.publicKey) {
		t.Fatalf("TestDeriveSigningKey: key ID doesn't match the public key")
	}

	withPassphrase, err := deriveSigningKey(testMnemonic, "TREZOR")
	if err != nil {
		t.Fatalf("deriveSigningKey: %+v", err)
	}
	if withPassphrase.keyID == key.keyID {
		t.Fatalf("TestDeriveSigningKey: passphrase didn't change the key")
	}

	_, err = deriveSigningKey("not a mnemonic", "")
	if err == nil {
		t.Fatalf("TestDeriveSigningKey: expected an error for an invalid mnemonic")
	}
}

func TestGenKey(t *testing.T) {
	out := &bytes.Buffer{}
	err := genKey(&genKeyConfig{Mnemonic: testMnemonic, NoPassphrase: true}, out)
	if err != nil {
		t.Fatalf("genKey: %+v", err)
	}
	key, err := deriveSigningKey(testMnemonic, "")
	if err != nil {
		t.Fatalf("deriveSigningKey: %+v", err)
	}
	if !strings.Contains(out.String(), key.keyID.String()) {
		t.Fatalf("TestGenKey: output %q is missing the key ID", out.String())
	}
	if !strings.Contains(out.String(), "Script class:      "+txscript.PubKeyTy.String()+"\n") {
		t.Fatalf("TestGenKey: output %q is missing the pay-to-pubkey script class", out.String())
	}
	if strings.Contains(out.String(), "Mnemonic") {
		t.Fatalf("TestGenKey: printed a mnemonic although one was given")
	}

	out.Reset()
	err = genKey(&genKeyConfig{NoPassphrase: true}, out)
	if err != nil {
		t.Fatalf("genKey: %+v", err)
	}
	if !strings.Contains(out.String(), "Mnemonic") {
		t.Fatalf("TestGenKey: a new mnemonic wasn't printed")
	}
}
