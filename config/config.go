package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tdex-network/monawallet/pkg/blueprint"
	"github.com/tdex-network/monawallet/pkg/explorer"
	"github.com/tdex-network/monawallet/pkg/explorer/esplora"
	"github.com/tdex-network/monawallet/pkg/explorer/monaparty"
	"github.com/tdex-network/monawallet/pkg/wallet"
)

const (
	// NetworkKey is the network to use. Either "mainnet" or "testnet"
	NetworkKey = "NETWORK"
	// AddressTypeKey is the type of the wallet address. Either "p2wpkh" or "p2pkh"
	AddressTypeKey = "ADDRESS_TYPE"
	// DerivationPathKey is the absolute HD path of the wallet key
	DerivationPathKey = "DERIVATION_PATH"
	// EsploraEndpointsKey is the comma separated list of candidate Esplora
	// REST API endpoints
	EsploraEndpointsKey = "ESPLORA_ENDPOINTS"
	// MonapartyEndpointsKey is the comma separated list of candidate Monaparty
	// JSON-RPC API endpoints
	MonapartyEndpointsKey = "MONAPARTY_ENDPOINTS"
	// PrimaryBackendKey is the backend family tried first. Either "monaparty"
	// or "esplora"
	PrimaryBackendKey = "PRIMARY_BACKEND"
	// RequestTimeoutKey are the milliseconds to wait for HTTP responses before timeouts
	RequestTimeoutKey = "REQUEST_TIMEOUT"
	// RequestRateLimitKey is the max number of requests per second to a single endpoint
	RequestRateLimitKey = "REQUEST_RATE_LIMIT"
	// FeeRateKey is the fee rate, in watanabe per virtual byte, of value transfers
	FeeRateKey = "FEE_RATE"
	// MaxOutflowPerByteKey is the max value, per byte of a remote-built asset
	// transfer, that the transaction can send to others
	MaxOutflowPerByteKey = "MAX_OUTFLOW_PER_BYTE"
	// AllowUnconfirmedKey enables spending of unconfirmed coins, only when
	// reported by a mempool-aware backend
	AllowUnconfirmedKey = "ALLOW_UNCONFIRMED"
	// AssetCacheSizeKey is the max number of asset infos kept in memory
	AssetCacheSizeKey = "ASSET_CACHE_SIZE"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// MnemonicKey is the 24-words mnemonic of the wallet seed
	MnemonicKey = "MNEMONIC"

	BackendEsplora   = esplora.Name
	BackendMonaparty = monaparty.Name
)

var vip *viper.Viper

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("MONAWALLET")
	vip.AutomaticEnv()

	vip.SetDefault(NetworkKey, "mainnet")
	vip.SetDefault(AddressTypeKey, string(wallet.AddressP2WPKH))
	vip.SetDefault(DerivationPathKey, wallet.DefaultDerivationPath)
	vip.SetDefault(EsploraEndpointsKey, "https://esplora.electrum-mona.org/api")
	vip.SetDefault(
		MonapartyEndpointsKey,
		"https://monapa.electrum-mona.org/_api,https://wallet.monaparty.me/_api",
	)
	vip.SetDefault(PrimaryBackendKey, BackendMonaparty)
	vip.SetDefault(RequestTimeoutKey, 15000)
	vip.SetDefault(RequestRateLimitKey, 10)
	vip.SetDefault(FeeRateKey, 200)
	vip.SetDefault(MaxOutflowPerByteKey, blueprint.DefaultMaxOutflowPerByte)
	vip.SetDefault(AllowUnconfirmedKey, false)
	vip.SetDefault(AssetCacheSizeKey, 1024)
	vip.SetDefault(LogLevelKey, 4)
}

//GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

//GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

//GetUint64 ...
func GetUint64(key string) uint64 {
	return vip.GetUint64(key)
}

//GetFloat ...
func GetFloat(key string) float64 {
	return vip.GetFloat64(key)
}

//GetBool ...
func GetBool(key string) bool {
	return vip.GetBool(key)
}

// Set a value for the given key
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

// IsSet returns whether the give key is set
func IsSet(key string) bool {
	return vip.IsSet(key)
}

//GetNetwork ...
func GetNetwork() *chaincfg.Params {
	net, err := wallet.NetworkByName(GetString(NetworkKey))
	if err != nil {
		return &wallet.MainNetParams
	}
	return net
}

//GetAddressType ...
func GetAddressType() wallet.AddressType {
	addrType, err := wallet.ParseAddressType(GetString(AddressTypeKey))
	if err != nil {
		return wallet.AddressP2WPKH
	}
	return addrType
}

// GetRequestTimeout returns the timeout of HTTP requests to backends.
func GetRequestTimeout() time.Duration {
	return time.Duration(GetInt(RequestTimeoutKey)) * time.Millisecond
}

// GetLogLevel ...
func GetLogLevel() log.Level {
	return log.Level(GetInt(LogLevelKey))
}

// GetMnemonic returns the current set mnemonic
func GetMnemonic() []string {
	var mnemonic []string
	if m := strings.TrimSpace(GetString(MnemonicKey)); m != "" {
		mnemonic = strings.Fields(m)
	}
	return mnemonic
}

// GetEsploraServices returns a service for every configured Esplora endpoint.
func GetEsploraServices() []explorer.Service {
	endpoints := getEndpoints(EsploraEndpointsKey)
	services := make([]explorer.Service, 0, len(endpoints))
	for _, endpoint := range endpoints {
		services = append(services, esplora.NewService(
			endpoint, GetRequestTimeout(), GetInt(RequestRateLimitKey),
		))
	}
	return services
}

// GetMonapartyServices returns a service for every configured Monaparty
// endpoint.
func GetMonapartyServices() []monaparty.Service {
	endpoints := getEndpoints(MonapartyEndpointsKey)
	services := make([]monaparty.Service, 0, len(endpoints))
	for _, endpoint := range endpoints {
		services = append(services, monaparty.NewService(
			endpoint, GetRequestTimeout(), GetInt(RequestRateLimitKey),
		))
	}
	return services
}

// Validate checks the current configuration.
func Validate() error {
	if _, err := wallet.NetworkByName(GetString(NetworkKey)); err != nil {
		return err
	}
	if _, err := wallet.ParseAddressType(GetString(AddressTypeKey)); err != nil {
		return err
	}
	if _, err := wallet.ParseDerivationPath(
		GetString(DerivationPathKey),
	); err != nil {
		return err
	}

	esploraEndpoints := getEndpoints(EsploraEndpointsKey)
	monapartyEndpoints := getEndpoints(MonapartyEndpointsKey)
	if len(esploraEndpoints)+len(monapartyEndpoints) <= 0 {
		return fmt.Errorf("at least one backend endpoint must be defined")
	}
	for _, endpoint := range append(esploraEndpoints, monapartyEndpoints...) {
		u, err := url.Parse(endpoint)
		if err != nil {
			return fmt.Errorf("endpoint %s is not a valid url: %s", endpoint, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("endpoint %s must be an http(s) url", endpoint)
		}
	}

	primary := GetString(PrimaryBackendKey)
	if primary != BackendEsplora && primary != BackendMonaparty {
		return fmt.Errorf(
			"primary backend must be either '%s' or '%s'",
			BackendMonaparty, BackendEsplora,
		)
	}

	if GetInt(RequestTimeoutKey) <= 0 {
		return fmt.Errorf("request timeout must be a positive number")
	}
	if GetInt(RequestRateLimitKey) <= 0 {
		return fmt.Errorf("request rate limit must be a positive number")
	}
	if GetFloat(FeeRateKey) <= 0 {
		return fmt.Errorf("fee rate must be a positive number")
	}
	if GetInt(MaxOutflowPerByteKey) <= 0 {
		return fmt.Errorf("max outflow per byte must be a positive number")
	}
	if GetInt(AssetCacheSizeKey) <= 0 {
		return fmt.Errorf("asset cache size must be a positive number")
	}

	level := GetInt(LogLevelKey)
	if level < int(log.PanicLevel) || level > int(log.TraceLevel) {
		return fmt.Errorf(
			"log level must be in range [%d, %d]", log.PanicLevel, log.TraceLevel,
		)
	}
	return nil
}

func getEndpoints(key string) []string {
	endpoints := make([]string, 0)
	for _, e := range strings.Split(GetString(key), ",") {
		if e = strings.TrimSpace(e); e != "" {
			endpoints = append(endpoints, e)
		}
	}
	return endpoints
}
