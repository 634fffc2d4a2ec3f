package wallet

import (
	"errors"
	"fmt"
)

var (
	// ErrNullNetwork ...
	ErrNullNetwork = errors.New("network params are null")
	// ErrUnknownNetwork ...
	ErrUnknownNetwork = errors.New("network must be either mainnet or testnet")
	// ErrNullEntropy ...
	ErrNullEntropy = errors.New("entropy must not be null")
	// ErrNullMnemonic ...
	ErrNullMnemonic = errors.New("mnemonic is null")
	// ErrNullSeed ...
	ErrNullSeed = errors.New("seed is null")
	// ErrNullDerivationPath ...
	ErrNullDerivationPath = errors.New("derivation path must not be null")
	// ErrNullOutputScript ...
	ErrNullOutputScript = errors.New("output script must not be null")
	// ErrNullPsbt ...
	ErrNullPsbt = errors.New("psbt must not be null")

	// ErrInvalidMnemonic ...
	ErrInvalidMnemonic = errors.New("mnemonic is invalid")
	// ErrInvalidEntropySize ...
	ErrInvalidEntropySize = fmt.Errorf(
		"entropy must be exactly %d bits long", EntropySize,
	)
	// ErrInvalidDerivationPath ...
	ErrInvalidDerivationPath = errors.New("invalid derivation path")
	// ErrInvalidDerivationPathAccount ...
	ErrInvalidDerivationPathAccount = errors.New(
		"derivation path's purpose, coin type and account must be hardened " +
			"(suffix \"'\")",
	)
	// ErrInvalidDerivationPathLength ...
	ErrInvalidDerivationPathLength = errors.New(
		"derivation path must be an absolute path in the form " +
			"\"m/purpose'/coin'/account'/branch/index\"",
	)
	// ErrInvalidAddressType ...
	ErrInvalidAddressType = errors.New("address type must be either p2wpkh or p2pkh")
	// ErrInvalidOutputAddress ...
	ErrInvalidOutputAddress = errors.New("output address must be a valid address")

	// ErrEmptyInputs ...
	ErrEmptyInputs = errors.New("input list must not be empty")
	// ErrZeroOutputAmount ...
	ErrZeroOutputAmount = errors.New("output amount must not be zero")
	// ErrDustOutputAmount ...
	ErrDustOutputAmount = fmt.Errorf(
		"output amount must be greater than dust threshold (%d)", DustThreshold,
	)
	// ErrMalformedDerivationPath ...
	ErrMalformedDerivationPath = errors.New(
		"path must not start or end with a '/' and " +
			"can optionally start with 'm/' for absolute paths",
	)

	// ErrKeyDerivation is returned when the seed/path pair does not yield a
	// usable key pair or address. It's never worth retrying.
	ErrKeyDerivation = errors.New("key derivation failed")
	// ErrNegativeChange is returned when the selected inputs do not cover
	// amount plus fee.
	ErrNegativeChange = errors.New("inputs do not cover amount and fee")
	// ErrSigning is returned when a transaction can't be signed, typically
	// because the private key is missing (watch-only key).
	ErrSigning = errors.New("signing failed")
)

// Wallet data structure allows to create a new wallet from entropy/mnemonic
// and to derive the single key pair used to receive and spend funds.
type Wallet struct {
	entropy  []byte
	mnemonic []string
	seed     []byte
}

// NewWalletOpts is the struct given to the NewWallet method
type NewWalletOpts struct {
	Entropy []byte
}

func (o NewWalletOpts) validate() error {
	if len(o.Entropy) <= 0 {
		return ErrNullEntropy
	}
	if len(o.Entropy)*8 != EntropySize {
		return ErrInvalidEntropySize
	}
	return nil
}

// NewWallet creates a new wallet from the given 256-bit entropy. If no
// entropy is known yet, use GenerateEntropy first.
func NewWallet(opts NewWalletOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	mnemonic, err := mnemonicFromEntropy(opts.Entropy)
	if err != nil {
		return nil, err
	}

	entropy := make([]byte, len(opts.Entropy))
	copy(entropy, opts.Entropy)

	return &Wallet{
		entropy:  entropy,
		mnemonic: mnemonic,
		seed:     generateSeedFromMnemonic(mnemonic),
	}, nil
}

// NewWalletFromMnemonicOpts is the struct given to the NewWalletFromMnemonic
// method
type NewWalletFromMnemonicOpts struct {
	Mnemonic []string
}

func (o NewWalletFromMnemonicOpts) validate() error {
	if len(o.Mnemonic) <= 0 {
		return ErrNullMnemonic
	}
	if !isMnemonicValid(o.Mnemonic) {
		return ErrInvalidMnemonic
	}
	return nil
}

// NewWalletFromMnemonic restores a wallet from its backup mnemonic
func NewWalletFromMnemonic(opts NewWalletFromMnemonicOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	entropy, err := entropyFromMnemonic(opts.Mnemonic)
	if err != nil {
		return nil, err
	}

	return NewWallet(NewWalletOpts{Entropy: entropy})
}

func (w *Wallet) validate() error {
	if len(w.seed) <= 0 {
		return ErrNullSeed
	}
	if len(w.mnemonic) <= 0 {
		return ErrNullMnemonic
	}
	return nil
}

// Mnemonic is getter for the backup mnemonic
func (w *Wallet) Mnemonic() ([]string, error) {
	if err := w.validate(); err != nil {
		return nil, err
	}
	mnemonic := make([]string, len(w.mnemonic))
	copy(mnemonic, w.mnemonic)
	return mnemonic, nil
}
