package wallet

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const h = hdkeychain.HardenedKeyStart

func TestParseDerivationPath(t *testing.T) {
	tests := []struct {
		input  string
		output DerivationPath
		err    error
	}{
		{"m/84'/22'/0'/0/0", DerivationPath{h + 84, h + 22, h, 0, 0}, nil},
		{"m/44'/22'/0'/1/7", DerivationPath{h + 44, h + 22, h, 1, 7}, nil},
		{"m/2147483732/2147483670/2147483648/0/0", DerivationPath{h + 84, h + 22, h, 0, 0}, nil},
		{"m/0x54'/0x16'/0x00'/0x00/0x80", DerivationPath{h + 84, h + 22, h, 0, 128}, nil},
		{"	m  /   84			'\n/\n   22	\n\n\t'   /\n0 ' /\t\t	0/0", DerivationPath{h + 84, h + 22, h, 0, 0}, nil},
		{"84'/22'/0/0", DerivationPath{h + 84, h + 22, 0, 0}, nil},
		{"0/0", DerivationPath{0, 0}, nil},

		{"", nil, ErrNullDerivationPath},
		{"m", nil, ErrMalformedDerivationPath},
		{"m/", nil, ErrMalformedDerivationPath},
		{"/84'/22'/0'/0", nil, ErrMalformedDerivationPath},
		{"0", nil, ErrMalformedDerivationPath},
		{"m/2147483648'", nil, ErrInvalidDerivationPath},
		{"m/-1'", nil, ErrInvalidDerivationPath},
		{"m/84'/abc", nil, ErrInvalidDerivationPath},
	}
	for _, tt := range tests {
		path, err := ParseDerivationPath(tt.input)
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.output, path)
	}
}

func TestDerivationPathString(t *testing.T) {
	path, err := ParseDerivationPath(DefaultDerivationPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultDerivationPath, path.String())
	assert.Equal(t, "", DerivationPath{}.String())
}
