package wallet

import (
	"math"
)

// Standard script types, used to look up input and output sizes.
const (
	P2PK = iota
	P2PKH
	P2MS
	P2SH_P2WPKH
	P2SH_P2WSH
	P2WPKH
	P2WSH
)

// EstimateTxSize makes an estimation of the virtual size of a transaction for
// which is required to specify the type of the inputs and outputs according to
// those of the standard script types (P2PK, P2PKH, P2MS, P2SH(P2WPKH),
// P2SH(P2WSH), P2WPKH, P2WSH).
// In case some inputs or outputs are of type P2MS, it is mandatory to pass
// their redeem script sizes as auxiliary slices in accordance.
func EstimateTxSize(
	inScriptTypes, inAuxiliaryRedeemScriptSize, inAuxiliaryWitnessSize,
	outScriptTypes, outAuxiliaryRedeemScriptSize []int,
) int {
	baseSize := calcTxSize(
		false,
		inScriptTypes, inAuxiliaryRedeemScriptSize, inAuxiliaryWitnessSize,
		outScriptTypes, outAuxiliaryRedeemScriptSize,
	)
	totalSize := calcTxSize(
		true,
		inScriptTypes, inAuxiliaryRedeemScriptSize, inAuxiliaryWitnessSize,
		outScriptTypes, outAuxiliaryRedeemScriptSize,
	)

	weight := baseSize*3 + totalSize
	vsize := (weight + 3) / 4

	return vsize
}

// EstimateFee returns the fee in watanabe for a transaction spending nIns
// inputs of the given address type into nOuts outputs at feeRate watanabe
// per virtual byte. Outputs are always counted at the size of the largest
// standard output (P2WSH), so the result never underestimates.
func EstimateFee(nIns, nOuts int, addrType AddressType, feeRate float64) uint64 {
	inScriptTypes := make([]int, nIns)
	for i := range inScriptTypes {
		inScriptTypes[i] = addrType.scriptType()
	}
	outScriptTypes := make([]int, nOuts)
	for i := range outScriptTypes {
		outScriptTypes[i] = P2WSH
	}

	vsize := EstimateTxSize(inScriptTypes, nil, nil, outScriptTypes, nil)
	return uint64(math.Ceil(float64(vsize) * feeRate))
}

func calcTxSize(
	withWitness bool,
	inScriptTypes, inAuxiliaryRedeemScriptSize, inAuxiliaryWitnessSize,
	outScriptTypes, outAuxiliaryRedeemScriptSize []int,
) int {
	txSize := calcTxBaseSize(
		inScriptTypes, inAuxiliaryRedeemScriptSize,
		outScriptTypes, outAuxiliaryRedeemScriptSize,
	)
	if withWitness && hasWitness(inScriptTypes) {
		// segwit marker and flag
		txSize += 2
		txSize += calcTxWitnessSize(inScriptTypes, inAuxiliaryWitnessSize)
	}
	return txSize
}

var (
	scriptSigSizeByScriptType = map[int]int{
		P2PK:        74,  // len + opcode + sig
		P2PKH:       108, // len + opcode + sig + opcode + pubkey
		P2SH_P2WPKH: 24,  // len + opcode + p2wpkh script
		P2SH_P2WSH:  36,  // len + opcode + p2wsh script
		P2WPKH:      1,   // no scriptsig, still len is serialized
		P2WSH:       1,   // no scriptsig
	}
	scriptPubKeySizeByScriptType = map[int]int{
		P2PK:        36, // len + pubkey compressed + opcode
		P2PKH:       26, // len + opcodes (3) + hash(pubkey) + opcodes (2)
		P2SH_P2WPKH: 24, // len + opcodes (2) + hash(script) + opcode
		P2SH_P2WSH:  24, // len + opcodes (2) + hash(script) + opcode
		P2WPKH:      23, // len + opcodes (2) + hash(pubkey)
		P2WSH:       35, // len + opcodes (2) + hash(script)
	}
)

func calcTxBaseSize(
	inScriptTypes, inAuxiliaryRedeemScriptSize,
	outScriptTypes, outAuxiliaryRedeemScriptSize []int,
) int {
	// hash + index + sequence
	inBaseSize := 40
	insSize := 0
	auxCount := 0
	for _, scriptType := range inScriptTypes {
		scriptSize, ok := scriptSigSizeByScriptType[scriptType]
		if !ok {
			scriptSize = inAuxiliaryRedeemScriptSize[auxCount]
			auxCount++
		}
		insSize += inBaseSize + scriptSize
	}

	// value
	outBaseSize := 8
	outsSize := 0
	auxCount = 0
	for _, scriptType := range outScriptTypes {
		scriptSize, ok := scriptPubKeySizeByScriptType[scriptType]
		if !ok {
			scriptSize = outAuxiliaryRedeemScriptSize[auxCount]
			auxCount++
		}
		outsSize += outBaseSize + scriptSize
	}

	// version + locktime
	return 8 +
		varIntSerializeSize(uint64(len(inScriptTypes))) +
		varIntSerializeSize(uint64(len(outScriptTypes))) +
		insSize + outsSize
}

func calcTxWitnessSize(inScriptTypes, inAuxiliaryWitnessSize []int) int {
	insSize := 0
	auxCount := 0
	for _, scriptType := range inScriptTypes {
		switch scriptType {
		case P2SH_P2WPKH, P2WPKH:
			// items count + len + sig + len + pubkey
			insSize += 1 + 1 + 72 + 1 + 33
		case P2SH_P2WSH, P2WSH:
			insSize += inAuxiliaryWitnessSize[auxCount]
			auxCount++
		default:
			// legacy inputs still serialize an empty witness stack
			insSize++
		}
	}
	return insSize
}

func hasWitness(inScriptTypes []int) bool {
	for _, scriptType := range inScriptTypes {
		switch scriptType {
		case P2SH_P2WPKH, P2SH_P2WSH, P2WPKH, P2WSH:
			return true
		}
	}
	return false
}

func varIntSerializeSize(val uint64) int {
	// The value is small enough to be represented by itself, so it's
	// just 1 byte.
	if val < 0xfd {
		return 1
	}

	// Discriminant 1 byte plus 2 bytes for the uint16.
	if val <= math.MaxUint16 {
		return 3
	}

	// Discriminant 1 byte plus 4 bytes for the uint32.
	if val <= math.MaxUint32 {
		return 5
	}

	// Discriminant 1 byte plus 8 bytes for the uint64.
	return 9
}
