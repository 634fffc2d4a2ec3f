package monaparty

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *rpcError) String() string {
	if len(e.Data) > 0 {
		return fmt.Sprintf("%d %s (%s)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

// the "uxtos" spelling is the one of the remote API
type chainAddressInfoParams struct {
	Addresses         []string `json:"addresses"`
	WithUxtos         bool     `json:"with_uxtos"`
	WithLastTxnHashes bool     `json:"with_last_txn_hashes"`
}

type chainAddressInfo struct {
	Addr  string          `json:"addr"`
	Uxtos []monapartyUtxo `json:"uxtos"`
}

type monapartyUtxo struct {
	TxID          string          `json:"txid"`
	Vout          uint32          `json:"vout"`
	Amount        decimal.Decimal `json:"amount"`
	Confirmations int64           `json:"confirmations"`
}

type broadcastTxParams struct {
	SignedTxHex string `json:"signed_tx_hex"`
}

type filter struct {
	Field string `json:"field"`
	Op    string `json:"op"`
	Value string `json:"value"`
}

type getBalancesParams struct {
	Filters []filter `json:"filters"`
}

type getAssetsInfoParams struct {
	AssetsList []string `json:"assetsList"`
}

// Balance is the quantity of an asset held by an address, in base units.
type Balance struct {
	Address  string `json:"address"`
	Asset    string `json:"asset"`
	Quantity uint64 `json:"quantity"`
}

// AssetInfo holds the metadata of an asset.
type AssetInfo struct {
	Asset         string `json:"asset"`
	AssetLongname string `json:"asset_longname"`
	Owner         string `json:"owner"`
	Issuer        string `json:"issuer"`
	Description   string `json:"description"`
	Divisible     bool   `json:"divisible"`
	Locked        bool   `json:"locked"`
	Supply        uint64 `json:"supply"`
}

// CreateSendArgs are the arguments of a create_send call. Quantity is in
// base units and FeePerKB in watanabe per kilobyte.
type CreateSendArgs struct {
	Source                 string `json:"source"`
	Destination            string `json:"destination"`
	Asset                  string `json:"asset"`
	Quantity               uint64 `json:"quantity"`
	Memo                   string `json:"memo,omitempty"`
	FeePerKB               uint64 `json:"fee_per_kb,omitempty"`
	AllowUnconfirmedInputs bool   `json:"allow_unconfirmed_inputs"`
	PubKey                 string `json:"pubkey,omitempty"`
}
