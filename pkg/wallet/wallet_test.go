package wallet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMnemonic = strings.Split(strings.Repeat("abandon ", 23)+"art", " ")

func TestNewWallet(t *testing.T) {
	entropy, err := GenerateEntropy()
	require.NoError(t, err)
	require.Len(t, entropy, EntropySize/8)

	wallet, err := NewWallet(NewWalletOpts{Entropy: entropy})
	if err != nil {
		t.Fatal(err)
	}
	mnemonic, err := wallet.Mnemonic()
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(t, mnemonic, 24)
	assert.Equal(t, true, isMnemonicValid(mnemonic))

	// mutating the given entropy does not affect the wallet
	entropy[0] ^= 0xff
	otherMnemonic, _ := wallet.Mnemonic()
	assert.Equal(t, mnemonic, otherMnemonic)
}

func TestFailingNewWallet(t *testing.T) {
	tests := []struct {
		opts NewWalletOpts
		err  error
	}{
		{NewWalletOpts{}, ErrNullEntropy},
		{NewWalletOpts{Entropy: make([]byte, 16)}, ErrInvalidEntropySize},
		{NewWalletOpts{Entropy: make([]byte, 33)}, ErrInvalidEntropySize},
	}
	for _, tt := range tests {
		_, err := NewWallet(tt.opts)
		assert.Equal(t, tt.err, err)
	}
}

func TestNewMnemonic(t *testing.T) {
	mnemonic, err := NewMnemonic()
	require.NoError(t, err)
	assert.Len(t, mnemonic, 24)
	assert.True(t, isMnemonicValid(mnemonic))

	other, err := NewMnemonic()
	require.NoError(t, err)
	assert.NotEqual(t, mnemonic, other)
}

func TestNewWalletFromMnemonic(t *testing.T) {
	wallet, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}
	mnemonic, _ := wallet.Mnemonic()
	assert.Equal(t, testMnemonic, mnemonic)

	otherWallet, err := NewWalletFromMnemonic(NewWalletFromMnemonicOpts{
		Mnemonic: mnemonic,
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, *wallet, *otherWallet)
}

func TestFailingNewWalletFromMnemonic(t *testing.T) {
	tests := []struct {
		opts NewWalletFromMnemonicOpts
		err  error
	}{
		{
			opts: NewWalletFromMnemonicOpts{Mnemonic: nil},
			err:  ErrNullMnemonic,
		},
		{
			opts: NewWalletFromMnemonicOpts{
				Mnemonic: strings.Split("legal winner thank year wave sausage worth useful legal winner thank yellow yellow", " "),
			},
			err: ErrInvalidMnemonic,
		},
		{
			opts: NewWalletFromMnemonicOpts{
				Mnemonic: strings.Split("letter advice cage absurd amount doctor acoustic avoid letter advice cage absurd amount doctor acoustic avoid letter always", " "),
			},
			err: ErrInvalidEntropySize,
		},
	}
	for _, tt := range tests {
		_, err := NewWalletFromMnemonic(tt.opts)
		assert.Equal(t, tt.err, err)
	}
}

func newTestWallet() (*Wallet, error) {
	return NewWallet(NewWalletOpts{Entropy: make([]byte, EntropySize/8)})
}
