package esplora

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tdex-network/monawallet/pkg/explorer"
	"github.com/tdex-network/monawallet/pkg/httputil"
)

// Name is the backend name of esplora services
const Name = "esplora"

type esplora struct {
	client *httputil.Client
}

// NewService returns a new esplora service as an explorer.Service interface.
// Esplora indexes mempool as well, so its services are mempool-aware.
func NewService(
	apiURL string, timeout time.Duration, rateLimit int,
) explorer.Service {
	return &esplora{httputil.NewClient(apiURL, timeout, rateLimit)}
}

func (e *esplora) Name() string {
	return fmt.Sprintf("%s(%s)", Name, e.client.BaseURL())
}

func (e *esplora) MempoolAware() bool {
	return true
}

func (e *esplora) Ping(ctx context.Context) error {
	_, err := e.GetBlockHeight(ctx)
	return err
}

func (e *esplora) get(ctx context.Context, path string) (string, error) {
	status, resp, err := e.client.NewHTTPRequest(
		ctx, http.MethodGet, path, "", nil,
	)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%s: %s", http.StatusText(status), resp)
	}
	return resp, nil
}
