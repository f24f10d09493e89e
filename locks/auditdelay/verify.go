// Package auditdelay implements the audit-delay lock: a two-path
// time-delay lock guarding a Payout output. The trustee may spend it
// immediately; the owner may spend it only once a header-timestamp
// delay has elapsed since the cell was created.
package auditdelay

import (
	"encoding/binary"
	"math/bits"

	"github.com/leapdao/parent-bridge/cell"
	"github.com/leapdao/parent-bridge/log"
	"github.com/leapdao/parent-bridge/txview"
	"github.com/leapdao/parent-bridge/verr"
)

var logger = log.Default().Module("audit-delay-lock")

const argsLength = 72

// Verify checks whether the spending transaction is authorized either
// by the trustee override or by the elapsed-timeout owner path.
func Verify(a txview.Accessor) error {
	script, err := a.LoadScript()
	if err != nil {
		return verr.FromAccessor(err)
	}
	if len(script.Args) != argsLength {
		return verr.New(verr.WrongScriptArgsLength)
	}
	trusteeLockHash := cell.BytesToHash(script.Args[0:32])
	ownerLockHash := cell.BytesToHash(script.Args[32:64])
	timeoutMS := binary.BigEndian.Uint64(script.Args[64:72])

	input0LockHash, err := a.LoadCellLockHash(cell.SourceInput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	if input0LockHash == trusteeLockHash {
		return nil
	}

	inHeader, err := a.LoadHeader(cell.SourceGroupInput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	proofHeader, err := a.LoadHeader(cell.SourceHeaderDep, 1)
	if err != nil {
		return verr.FromAccessor(err)
	}

	elapsed, borrow := bits.Sub64(proofHeader.Timestamp, inHeader.Timestamp, 0)
	if borrow != 0 || elapsed < timeoutMS {
		logger.Debug("not enough time passed", "t_in", inHeader.Timestamp, "t_proof", proofHeader.Timestamp, "timeout_ms", timeoutMS)
		return verr.New(verr.NotEnoughTimePassed)
	}

	if input0LockHash != ownerLockHash {
		return verr.New(verr.NotSpentWithOwnerInput)
	}
	return nil
}
