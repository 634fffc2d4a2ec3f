package esplora

import (
	"context"
	"fmt"
	"net/http"
)

func (e *esplora) BroadcastTransaction(
	ctx context.Context, txHex string,
) (string, error) {
	headers := map[string]string{
		"Content-Type": "text/plain",
	}

	status, resp, err := e.client.NewHTTPRequest(
		ctx, http.MethodPost, "/tx", txHex, headers,
	)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("error on broadcasting tx: %s", resp)
	}

	return resp, nil
}
