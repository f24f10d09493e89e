// Package depositlock implements the deposit lock: a single-transition
// lock that lets a deposit cell be spent either by the bridge's own
// collection transaction (type-hash match) or by a designated owner
// path (lock-hash match).
package depositlock

import (
	"github.com/leapdao/parent-bridge/cell"
	"github.com/leapdao/parent-bridge/log"
	"github.com/leapdao/parent-bridge/txview"
	"github.com/leapdao/parent-bridge/verr"
)

var logger = log.Default().Module("deposit-lock")

const argsLength = 64

// Verify checks a on input 0 against a, the currently executing lock's
// accessor. It succeeds iff input 0's lock-hash equals the args'
// allowed_lock_hash, or input 0's type-hash equals allowed_type_hash.
func Verify(a txview.Accessor) error {
	script, err := a.LoadScript()
	if err != nil {
		return verr.FromAccessor(err)
	}

	if len(script.Args) != argsLength {
		return verr.New(verr.WrongScriptArgsLength)
	}
	allowedLockHash := cell.BytesToHash(script.Args[0:32])
	allowedTypeHash := cell.BytesToHash(script.Args[32:64])

	lockHash, err := a.LoadCellLockHash(cell.SourceInput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	typeHash, err := a.LoadCellTypeHash(cell.SourceInput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}

	isCorrectLockHash := lockHash == allowedLockHash
	isCorrectTypeHash := typeHash != nil && *typeHash == allowedTypeHash

	if !isCorrectLockHash && !isCorrectTypeHash {
		logger.Debug("missing correct type or lock script", "lock_hash", lockHash, "type_hash", typeHash)
		return verr.New(verr.MissingCorrectTypeOrLockScript)
	}
	return nil
}
