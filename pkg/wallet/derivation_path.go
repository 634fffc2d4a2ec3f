package wallet

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// DefaultDerivationPath is the BIP84 path of the first receiving key of the
// first Monacoin account.
const DefaultDerivationPath = "m/84'/22'/0'/0/0"

// MaxHardenedValue is the max value for hardened indexes of BIP32 paths
const MaxHardenedValue = math.MaxUint32 - hdkeychain.HardenedKeyStart

// DerivationPath is the binary representation of a BIP32 path
type DerivationPath []uint32

// ParseDerivationPath converts a derivation path string like
// "m/84'/22'/0'/0/0" to its binary representation. Components can be
// decimal or hex (0x prefix), hardened ones end with "'".
func ParseDerivationPath(strPath string) (DerivationPath, error) {
	if strPath == "" {
		return nil, ErrNullDerivationPath
	}

	elems := strings.Split(strPath, "/")
	if len(elems) < 2 || containsEmptyString(elems) {
		return nil, ErrMalformedDerivationPath
	}
	if strings.TrimSpace(elems[0]) == "m" {
		elems = elems[1:]
	}

	path := make(DerivationPath, 0, len(elems))
	for _, elem := range elems {
		step, err := parsePathStep(strings.TrimSpace(elem))
		if err != nil {
			return nil, err
		}
		path = append(path, step)
	}
	return path, nil
}

func parsePathStep(elem string) (uint32, error) {
	var offset uint32
	if strings.HasSuffix(elem, "'") {
		offset = hdkeychain.HardenedKeyStart
		elem = strings.TrimSpace(strings.TrimSuffix(elem, "'"))
	}

	// base 0 accepts both decimal and 0x-prefixed components
	val, err := strconv.ParseInt(elem, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid elem '%s'", ErrInvalidDerivationPath, elem)
	}
	max := int64(math.MaxUint32 - offset)
	if val < 0 || val > max {
		return 0, fmt.Errorf(
			"%w: elem %d out of range [0, %d]", ErrInvalidDerivationPath, val, max,
		)
	}
	return offset + uint32(val), nil
}

// String converts a binary derivation path to its canonical representation
func (path DerivationPath) String() string {
	if len(path) <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("m")
	for _, step := range path {
		if step >= hdkeychain.HardenedKeyStart {
			fmt.Fprintf(&sb, "/%d'", step-hdkeychain.HardenedKeyStart)
			continue
		}
		fmt.Fprintf(&sb, "/%d", step)
	}
	return sb.String()
}

func containsEmptyString(composedPath []string) bool {
	for _, s := range composedPath {
		if strings.TrimSpace(s) == "" {
			return true
		}
	}
	return false
}
