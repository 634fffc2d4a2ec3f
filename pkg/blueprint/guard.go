package blueprint

import (
	"bytes"
	"fmt"
)

// DefaultMaxOutflowPerByte is the default cap, per byte of blueprint, of the
// value a blueprint is allowed to send to scripts other than the source one.
const DefaultMaxOutflowPerByte = uint64(100)

// CheckOutflow rejects blueprints whose net outflow, ie. the total output
// value minus what goes back to sourceScript, is greater than
// maxOutflowPerByte times the blueprint size.
func CheckOutflow(
	bp *Blueprint, sourceScript []byte, maxOutflowPerByte uint64,
) error {
	if bp == nil || bp.Tx == nil {
		return ErrNullBlueprint
	}

	total := bp.TotalOutput()
	change := uint64(0)
	for _, out := range bp.Tx.TxOut {
		if bytes.Equal(out.PkScript, sourceScript) {
			change += uint64(out.Value)
		}
	}

	outflow := total - change
	limit := maxOutflowPerByte * uint64(bp.Size())
	if outflow > limit {
		return fmt.Errorf(
			"%w: outflow %d, cap %d (%d bytes)",
			ErrExcessiveOutflow, outflow, limit, bp.Size(),
		)
	}
	return nil
}
