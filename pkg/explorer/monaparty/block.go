package monaparty

import (
	"context"
)

func (m *monaparty) GetBlockHeight(ctx context.Context) (int, error) {
	var height int
	if err := m.Call(ctx, "get_chain_block_height", struct{}{}, &height); err != nil {
		return -1, err
	}
	return height, nil
}
