package explorer

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtxoParse(t *testing.T) {
	script, _ := hex.DecodeString("0014d8e08455bcaf33b9ecd79aaba5beccb0c3bb93f4")
	txid := "5d2f1ab1e1e6e7c1a6de8e3e7b54a1f0b2a1e5f2d4c3b2a1908f7e6d5c4b3a29"
	u := NewUtxo(txid, 3, 1000, script, true, 12)

	outpoint, prevout, err := u.Parse()
	require.NoError(t, err)
	assert.Equal(t, txid, outpoint.Hash.String())
	assert.Equal(t, uint32(3), outpoint.Index)
	assert.Equal(t, int64(1000), prevout.Value)
	assert.Equal(t, script, prevout.PkScript)
	assert.Equal(t, txid+":3", u.Key())
	assert.Equal(t, u.Key(), NewUtxo(strings.ToUpper(txid), 3, 1000, script, true, 12).Key())

	_, _, err = NewUtxo("zz", 0, 1000, script, true, 1).Parse()
	assert.Error(t, err)

	_, _, err = NewUtxo(txid, 0, 1000, nil, true, 1).Parse()
	assert.Error(t, err)

	withScript := WithScript(NewUtxo(txid, 0, 1000, nil, false, 0), script)
	assert.Equal(t, script, withScript.Script())
	assert.False(t, withScript.IsConfirmed())
}
