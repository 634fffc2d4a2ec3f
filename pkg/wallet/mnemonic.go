package wallet

import (
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// EntropySize is the size in bits of the wallet seed entropy.
const EntropySize = 256

// GenerateEntropy returns a new random entropy of EntropySize bits.
func GenerateEntropy() ([]byte, error) {
	return bip39.NewEntropy(EntropySize)
}

// NewMnemonic returns a new random 24-word mnemonic
func NewMnemonic() ([]string, error) {
	entropy, err := GenerateEntropy()
	if err != nil {
		return nil, err
	}
	return mnemonicFromEntropy(entropy)
}

func mnemonicFromEntropy(entropy []byte) ([]string, error) {
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, err
	}
	return strings.Split(mnemonic, " "), nil
}

func entropyFromMnemonic(mnemonic []string) ([]byte, error) {
	m := strings.Join(mnemonic, " ")
	entropy, err := bip39.EntropyFromMnemonic(m)
	if err != nil {
		return nil, ErrInvalidMnemonic
	}
	return entropy, nil
}

func generateSeedFromMnemonic(mnemonic []string) []byte {
	m := strings.Join(mnemonic, " ")
	return bip39.NewSeed(m, "")
}

func isMnemonicValid(mnemonic []string) bool {
	m := strings.Join(mnemonic, " ")
	return bip39.IsMnemonicValid(m)
}
