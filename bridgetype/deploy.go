package bridgetype

import (
	"bytes"

	"github.com/leapdao/parent-bridge/cell"
	"github.com/leapdao/parent-bridge/policy"
	"github.com/leapdao/parent-bridge/txview"
	"github.com/leapdao/parent-bridge/verr"
)

// deployTransition creates the bridge cell: Nonexistent -> Live(∅).
type deployTransition struct{}

func (deployTransition) Verify(a txview.Accessor, p policy.Params, args Args, scriptHash cell.Hash) error {
	lock, err := a.LoadCellLock(cell.SourceOutput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	if lock.CodeHash != p.AnyoneCanSpendCodeHash {
		return verr.New(verr.WrongLockScript)
	}

	outputTypeHash, err := a.LoadCellTypeHash(cell.SourceOutput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	if outputTypeHash == nil || *outputTypeHash != scriptHash {
		return verr.New(verr.WrongTypeScript)
	}

	data, err := a.LoadCellData(cell.SourceOutput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	if len(data) != 0 {
		return verr.New(verr.DataLengthNotZero)
	}

	outputType, err := a.LoadCellType(cell.SourceOutput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	if outputType == nil || !bytes.Equal(outputType.Args, args.Bytes()) {
		return verr.New(verr.WrongStateId)
	}

	outPoint, err := a.LoadInputOutPoint(cell.SourceInput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	if inputOutPointStateID(outPoint) != args.StateID {
		return verr.New(verr.WrongStateId)
	}

	return nil
}
