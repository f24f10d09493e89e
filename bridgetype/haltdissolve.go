package bridgetype

import (
	"github.com/leapdao/parent-bridge/cell"
	"github.com/leapdao/parent-bridge/policy"
	"github.com/leapdao/parent-bridge/txview"
	"github.com/leapdao/parent-bridge/verr"
)

// haltAndDissolveTransition destroys the bridge cell under trustee
// authority, returning its capacity to the outputs: Live(_) -> Halted.
type haltAndDissolveTransition struct{}

func (haltAndDissolveTransition) Verify(a txview.Accessor, p policy.Params, args Args, scriptHash cell.Hash) error {
	signedByTrustee, err := txview.CountMatching(a, cell.SourceInput, func(i int) (bool, error) {
		h, err := a.LoadCellLockHash(cell.SourceInput, i)
		if err != nil {
			return false, err
		}
		return h == args.TrusteeHash, nil
	})
	if err != nil {
		return verr.FromAccessor(err)
	}
	if signedByTrustee == 0 {
		return verr.New(verr.NotSignedByTrustee)
	}

	// enforceAtMostOneTypeOutput has already run in Get; HaltAndDissolve
	// additionally requires that the one slot, if any, is never used.
	dissolved, err := txview.CountMatching(a, cell.SourceOutput, func(i int) (bool, error) {
		h, err := a.LoadCellTypeHash(cell.SourceOutput, i)
		if err != nil {
			return false, err
		}
		return h != nil && *h == scriptHash, nil
	})
	if err != nil {
		return verr.FromAccessor(err)
	}
	if dissolved != 0 {
		return verr.New(verr.BridgeWasNotDissolved)
	}

	groupInputCap, err := a.LoadCellCapacity(cell.SourceGroupInput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}

	var outputTotal uint64
	outputs, err := txview.Query(a, cell.SourceOutput, func(a txview.Accessor, source cell.Source, i int) (uint64, error) {
		return a.LoadCellCapacity(source, i)
	})
	if err != nil {
		return verr.FromAccessor(err)
	}
	for _, cap := range outputs {
		outputTotal += cap
	}
	if outputTotal < groupInputCap {
		return verr.New(verr.LeftoverCapacity)
	}

	return nil
}
