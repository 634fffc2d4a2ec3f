package application

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tdex-network/monawallet/internal/core/ports"
	"github.com/tdex-network/monawallet/pkg/blueprint"
	"github.com/tdex-network/monawallet/pkg/wallet"
)

// Config holds everything the wallet service needs. AssetService and
// AssetResolver are optional: without them only value transfers are
// available.
type Config struct {
	Wallet         *wallet.Wallet
	DerivationPath string
	AddressType    wallet.AddressType
	Network        *chaincfg.Params
	Session        *Session

	AssetService  ports.AssetService
	AssetResolver ports.AssetMetadataResolver

	MaxOutflowPerByte uint64
	AllowUnconfirmed  bool
}

func (c Config) validate() error {
	if c.Wallet == nil {
		return ErrNullWallet
	}
	if c.Network == nil {
		return ErrNullNetwork
	}
	if c.Session == nil {
		return ErrNullSessionBackends
	}
	return nil
}

func (c Config) derivationPath() string {
	if c.DerivationPath == "" {
		return wallet.DefaultDerivationPath
	}
	return c.DerivationPath
}

func (c Config) maxOutflowPerByte() uint64 {
	if c.MaxOutflowPerByte == 0 {
		return blueprint.DefaultMaxOutflowPerByte
	}
	return c.MaxOutflowPerByte
}
