package esplora

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/monawallet/pkg/explorer"
)

const (
	testAddress = "mona1qmrsgg4du4uemnmxhn246t0kvkrpmhyl5h5hcxz"
	testTxid    = "1111111111111111111111111111111111111111111111111111111111111111"
)

func newTestServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet &&
				r.URL.Path == "/api/address/"+testAddress+"/utxo":
				w.Write([]byte(`[
					{"txid":"` + testTxid + `","vout":0,"value":100000000,
					 "status":{"confirmed":true,"block_height":100}},
					{"txid":"` + testTxid + `","vout":1,"value":2500,
					 "status":{"confirmed":false}}
				]`))
			case r.Method == http.MethodGet && r.URL.Path == "/api/blocks/tip/height":
				w.Write([]byte("2345678"))
			case r.Method == http.MethodPost && r.URL.Path == "/api/tx":
				assert.Equal(t, "text/plain", r.Header.Get("Content-Type"))
				body, _ := io.ReadAll(r.Body)
				if string(body) == "bad" {
					w.WriteHeader(http.StatusBadRequest)
					w.Write([]byte("sendrawtransaction RPC error"))
					return
				}
				w.Write([]byte(testTxid))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		},
	))
}

func TestGetUnspents(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()
	svc := NewService(srv.URL+"/api/", 0, 0)

	utxos, err := svc.GetUnspents(context.Background(), testAddress)
	require.NoError(t, err)
	require.Len(t, utxos, 2)

	assert.Equal(t, testTxid, utxos[0].Hash())
	assert.Equal(t, uint64(100000000), utxos[0].Value())
	assert.True(t, utxos[0].IsConfirmed())
	assert.Equal(t, int64(explorer.UnknownConfirmations), utxos[0].Confirmations())
	assert.Equal(t, uint32(1), utxos[1].Index())
	assert.False(t, utxos[1].IsConfirmed())

	assert.True(t, svc.MempoolAware())
	assert.Contains(t, svc.Name(), Name)
}

func TestFailingGetUnspents(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()
	svc := NewService(srv.URL+"/api", 0, 0)

	_, err := svc.GetUnspents(context.Background(), "unknown")
	assert.Error(t, err)
}

func TestGetBlockHeight(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()
	svc := NewService(srv.URL+"/api", 0, 0)

	height, err := svc.GetBlockHeight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2345678, height)
	assert.NoError(t, svc.Ping(context.Background()))
}

func TestBroadcastTransaction(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()
	svc := NewService(srv.URL+"/api", 0, 0)

	txid, err := svc.BroadcastTransaction(context.Background(), "0200")
	require.NoError(t, err)
	assert.Equal(t, testTxid, txid)

	_, err = svc.BroadcastTransaction(context.Background(), "bad")
	assert.Error(t, err)
}
