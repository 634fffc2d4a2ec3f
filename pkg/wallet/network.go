package wallet

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

const (
	// MonacoinCoinType is the SLIP44 coin type of Monacoin.
	MonacoinCoinType = 22

	monacoinMainNet wire.BitcoinNet = 0xdbb6c0fb
	monacoinTestNet wire.BitcoinNet = 0xf1c8d2fd
)

var (
	// MainNetParams defines the address and key encodings of the Monacoin
	// main network. Consensus fields are inherited from bitcoin and are
	// never used by the wallet.
	MainNetParams = newMonacoinParams(
		chaincfg.MainNetParams, "mainnet", monacoinMainNet,
		"mona", 0x32, 0x37, 0xb0, MonacoinCoinType,
	)
	// TestNetParams defines the address and key encodings of the Monacoin
	// test network.
	TestNetParams = newMonacoinParams(
		chaincfg.TestNet3Params, "testnet", monacoinTestNet,
		"tmona", 0x6f, 0x75, 0xef, 1,
	)
)

func init() {
	// bech32 prefixes are only recognized by btcutil once registered.
	for _, p := range []*chaincfg.Params{&MainNetParams, &TestNetParams} {
		if err := chaincfg.Register(p); err != nil {
			panic(err)
		}
	}
}

func newMonacoinParams(
	base chaincfg.Params, name string, net wire.BitcoinNet,
	hrp string, pkh, sh, wif byte, coinType uint32,
) chaincfg.Params {
	params := base
	params.Name = name
	params.Net = net
	params.Bech32HRPSegwit = hrp
	params.PubKeyHashAddrID = pkh
	params.ScriptHashAddrID = sh
	params.PrivateKeyID = wif
	params.HDCoinType = coinType
	return params
}

// NetworkByName returns the Monacoin params for the given network name.
func NetworkByName(name string) (*chaincfg.Params, error) {
	switch name {
	case MainNetParams.Name:
		return &MainNetParams, nil
	case TestNetParams.Name:
		return &TestNetParams, nil
	default:
		return nil, ErrUnknownNetwork
	}
}
