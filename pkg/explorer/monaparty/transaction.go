package monaparty

import (
	"context"
	"errors"
	"fmt"
)

func (m *monaparty) BroadcastTransaction(
	ctx context.Context, txHex string,
) (string, error) {
	var txid string
	params := broadcastTxParams{SignedTxHex: txHex}
	if err := m.Call(ctx, "broadcast_tx", params, &txid); err != nil {
		return "", fmt.Errorf("error on broadcasting tx: %w", err)
	}
	if txid == "" {
		return "", errors.New("error on broadcasting tx: empty txid")
	}
	return txid, nil
}

func (m *monaparty) CreateSend(
	ctx context.Context, args CreateSendArgs,
) (string, error) {
	var txHex string
	if err := m.Call(ctx, "create_send", args, &txHex); err != nil {
		return "", fmt.Errorf("error on creating send tx: %w", err)
	}
	if txHex == "" {
		return "", errors.New("error on creating send tx: empty tx")
	}
	return txHex, nil
}
