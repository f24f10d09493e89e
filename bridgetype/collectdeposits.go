package bridgetype

import (
	"bytes"

	"github.com/leapdao/parent-bridge/cell"
	"github.com/leapdao/parent-bridge/policy"
	"github.com/leapdao/parent-bridge/txview"
	"github.com/leapdao/parent-bridge/verr"
)

// depositInput pairs an input's lock code hash with its capacity, the
// two fields sumDepositInputs needs from each input cell.
type depositInput struct {
	lockCodeHash cell.Hash
	capacity     uint64
}

// collectDepositsTransition absorbs deposit cells into the bridge: Live(d) -> Live(d).
type collectDepositsTransition struct{}

func (collectDepositsTransition) Verify(a txview.Accessor, p policy.Params, args Args, scriptHash cell.Hash) error {
	total, err := sumDepositInputs(a, p)
	if err != nil {
		return err
	}

	capBefore, err := a.LoadCellCapacity(cell.SourceInput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	capAfter, err := a.LoadCellCapacity(cell.SourceOutput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	if capAfter != capBefore+total {
		return verr.New(verr.DepositCapacityComputedIncorrectly)
	}

	dataBefore, err := a.LoadCellData(cell.SourceInput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	dataAfter, err := a.LoadCellData(cell.SourceOutput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	if !bytes.Equal(dataBefore, dataAfter) {
		return verr.New(verr.DepositsShouldNotChangeData)
	}

	return nil
}

// sumDepositInputs sums the capacity of every input locked by the
// deposit lock.
func sumDepositInputs(a txview.Accessor, p policy.Params) (uint64, error) {
	inputs, err := txview.Query(a, cell.SourceInput, func(a txview.Accessor, source cell.Source, i int) (depositInput, error) {
		lock, err := a.LoadCellLock(source, i)
		if err != nil {
			return depositInput{}, err
		}
		capacity, err := a.LoadCellCapacity(source, i)
		if err != nil {
			return depositInput{}, err
		}
		return depositInput{lockCodeHash: lock.CodeHash, capacity: capacity}, nil
	})
	if err != nil {
		return 0, verr.FromAccessor(err)
	}

	var total uint64
	for _, in := range inputs {
		if in.lockCodeHash == p.DepositLockCodeHash {
			total += in.capacity
		}
	}
	return total, nil
}
