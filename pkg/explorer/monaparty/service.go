package monaparty

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tdex-network/monawallet/pkg/explorer"
	"github.com/tdex-network/monawallet/pkg/httputil"
)

// Name is the backend name of monaparty services
const Name = "monaparty"

const jsonrpcVersion = "2.0"

var (
	// ErrRPC is returned when the remote procedure answers with an error object.
	ErrRPC = errors.New("monaparty rpc error")
	// ErrAddressInfoNotFound is returned when the server has no chain info for
	// the requested address.
	ErrAddressInfoNotFound = errors.New("monaparty: address info not found")
)

// Service is a monaparty API client. Besides the explorer.Service methods, it
// exposes the asset (colored-coin) layer of the protocol.
type Service interface {
	explorer.Service
	// Call invokes the given remote procedure and decodes its result into
	// result, if not nil.
	Call(ctx context.Context, method string, params, result interface{}) error
	// GetBalances returns the asset balances of the given address.
	GetBalances(ctx context.Context, address string) ([]Balance, error)
	// GetAssetsInfo returns the metadata of the given assets.
	GetAssetsInfo(ctx context.Context, assets []string) ([]AssetInfo, error)
	// CreateSend asks the server to build an unsigned asset transfer tx and
	// returns it in hex format.
	CreateSend(ctx context.Context, args CreateSendArgs) (string, error)
}

type monaparty struct {
	client *httputil.Client
}

// NewService returns a new monaparty client for the given _api endpoint.
// Monaparty only reports confirmation counts of utxos, so its services are
// not mempool-aware.
func NewService(apiURL string, timeout time.Duration, rateLimit int) Service {
	return &monaparty{httputil.NewClient(apiURL, timeout, rateLimit)}
}

func (m *monaparty) Name() string {
	return fmt.Sprintf("%s(%s)", Name, m.client.BaseURL())
}

func (m *monaparty) MempoolAware() bool {
	return false
}

func (m *monaparty) Ping(ctx context.Context) error {
	_, err := m.GetBlockHeight(ctx)
	return err
}

func (m *monaparty) Call(
	ctx context.Context, method string, params, result interface{},
) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: jsonrpcVersion,
		ID:      0,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return err
	}
	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}

	status, resp, err := m.client.NewHTTPRequest(
		ctx, http.MethodPost, "", string(body), headers,
	)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("monaparty api error: HTTP %d", status)
	}

	var res rpcResponse
	if err := json.Unmarshal([]byte(resp), &res); err != nil {
		return fmt.Errorf("invalid %s response: %w", method, err)
	}
	if res.Error != nil {
		return fmt.Errorf("%w: %s: %s", ErrRPC, method, res.Error)
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(res.Result, result); err != nil {
		return fmt.Errorf("invalid %s result: %w", method, err)
	}
	return nil
}
