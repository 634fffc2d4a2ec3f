package esplora

import (
	"context"
	"strconv"
)

func (e *esplora) GetBlockHeight(ctx context.Context) (int, error) {
	resp, err := e.get(ctx, "/blocks/tip/height")
	if err != nil {
		return -1, err
	}

	blockHeight, err := strconv.Atoi(resp)
	if err != nil {
		return -1, err
	}

	return blockHeight, nil
}
