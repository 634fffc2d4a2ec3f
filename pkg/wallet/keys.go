package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// AddressType identifies the kind of output script the wallet key locks
// funds to.
type AddressType string

const (
	// AddressP2WPKH is the native segwit address type (mona1...).
	AddressP2WPKH AddressType = "p2wpkh"
	// AddressP2PKH is the legacy base58 address type (M...).
	AddressP2PKH AddressType = "p2pkh"
)

// ParseAddressType ...
func ParseAddressType(s string) (AddressType, error) {
	switch t := AddressType(s); t {
	case AddressP2WPKH, AddressP2PKH:
		return t, nil
	default:
		return "", ErrInvalidAddressType
	}
}

func (t AddressType) scriptType() int {
	if t == AddressP2PKH {
		return P2PKH
	}
	return P2WPKH
}

// DerivedKey is the key pair derived for a path together with the output
// script and address it controls. PrivateKey is nil for watch-only keys.
type DerivedKey struct {
	PrivateKey *btcec.PrivateKey
	PublicKey  *btcec.PublicKey
	Script     []byte
	Address    string
	Path       DerivationPath
	Type       AddressType
}

// WatchOnly returns a copy of the key without its private half.
func (k *DerivedKey) WatchOnly() *DerivedKey {
	cp := *k
	cp.PrivateKey = nil
	return &cp
}

// DeriveKeyOpts is the struct given to DeriveKey method
type DeriveKeyOpts struct {
	DerivationPath string
	AddressType    AddressType
	Network        *chaincfg.Params
}

func (o DeriveKeyOpts) validate() error {
	derivationPath, err := ParseDerivationPath(o.DerivationPath)
	if err != nil {
		return err
	}
	if err := checkDerivationPath(derivationPath); err != nil {
		return err
	}
	if o.AddressType != "" {
		if _, err := ParseAddressType(string(o.AddressType)); err != nil {
			return err
		}
	}
	if o.Network == nil {
		return ErrNullNetwork
	}
	return nil
}

// DeriveKey derives the key pair, output script and address for the given
// absolute path. The result only depends on the wallet seed and the opts.
func (w *Wallet) DeriveKey(opts DeriveKeyOpts) (*DerivedKey, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyDerivation, err)
	}
	if err := w.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyDerivation, err)
	}

	addrType := opts.AddressType
	if addrType == "" {
		addrType = AddressP2WPKH
	}
	derivationPath, _ := ParseDerivationPath(opts.DerivationPath)

	hdNode, err := hdkeychain.NewMaster(w.seed, opts.Network)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyDerivation, err)
	}
	for _, step := range derivationPath {
		hdNode, err = hdNode.Derive(step)
		if err != nil {
			return nil, fmt.Errorf(
				"%w: step %d: %s", ErrKeyDerivation, step, err,
			)
		}
	}

	privateKey, err := hdNode.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyDerivation, err)
	}
	publicKey, err := hdNode.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyDerivation, err)
	}

	addr, err := addressFromPubKey(publicKey, addrType, opts.Network)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyDerivation, err)
	}
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyDerivation, err)
	}

	return &DerivedKey{
		PrivateKey: privateKey,
		PublicKey:  publicKey,
		Script:     script,
		Address:    addr.EncodeAddress(),
		Path:       derivationPath,
		Type:       addrType,
	}, nil
}

func addressFromPubKey(
	pubkey *btcec.PublicKey, addrType AddressType, net *chaincfg.Params,
) (btcutil.Address, error) {
	pubkeyHash := btcutil.Hash160(pubkey.SerializeCompressed())
	if addrType == AddressP2PKH {
		return btcutil.NewAddressPubKeyHash(pubkeyHash, net)
	}
	return btcutil.NewAddressWitnessPubKeyHash(pubkeyHash, net)
}

func checkDerivationPath(path DerivationPath) error {
	if len(path) != 5 {
		return ErrInvalidDerivationPathLength
	}
	for _, step := range path[:3] {
		if step < hdkeychain.HardenedKeyStart {
			return ErrInvalidDerivationPathAccount
		}
	}
	return nil
}
