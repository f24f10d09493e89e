package memtx

import (
	"github.com/leapdao/parent-bridge/cell"
	"github.com/leapdao/parent-bridge/txview"
)

type accessor struct {
	tx *Tx
}

func (a *accessor) LoadScript() (cell.Script, error) { return a.tx.Script, nil }

func (a *accessor) LoadScriptHash() (cell.Hash, error) { return a.tx.scriptHash(), nil }

func (a *accessor) LoadCell(source cell.Source, index int) (*cell.Cell, error) {
	switch source {
	case cell.SourceInput:
		if index < 0 || index >= len(a.tx.Inputs) {
			return nil, txview.ErrIndexOutOfBound
		}
		c := a.tx.Inputs[index].Cell
		return &c, nil
	case cell.SourceOutput:
		if index < 0 || index >= len(a.tx.Outputs) {
			return nil, txview.ErrIndexOutOfBound
		}
		c := a.tx.Outputs[index]
		return &c, nil
	case cell.SourceGroupInput:
		idx := a.tx.groupInputIndexes()
		if index < 0 || index >= len(idx) {
			return nil, txview.ErrIndexOutOfBound
		}
		c := a.tx.Inputs[idx[index]].Cell
		return &c, nil
	case cell.SourceGroupOutput:
		idx := a.tx.groupOutputIndexes()
		if index < 0 || index >= len(idx) {
			return nil, txview.ErrIndexOutOfBound
		}
		c := a.tx.Outputs[idx[index]]
		return &c, nil
	default:
		return nil, txview.ErrEncoding
	}
}

func (a *accessor) LoadCellLock(source cell.Source, index int) (cell.Script, error) {
	c, err := a.LoadCell(source, index)
	if err != nil {
		return cell.Script{}, err
	}
	return c.Lock, nil
}

func (a *accessor) LoadCellType(source cell.Source, index int) (*cell.Script, error) {
	c, err := a.LoadCell(source, index)
	if err != nil {
		return nil, err
	}
	return c.Type, nil
}

func (a *accessor) LoadCellLockHash(source cell.Source, index int) (cell.Hash, error) {
	c, err := a.LoadCell(source, index)
	if err != nil {
		return cell.Hash{}, err
	}
	return c.Lock.Hash(), nil
}

func (a *accessor) LoadCellTypeHash(source cell.Source, index int) (*cell.Hash, error) {
	c, err := a.LoadCell(source, index)
	if err != nil {
		return nil, err
	}
	return c.TypeHash(), nil
}

func (a *accessor) LoadCellCapacity(source cell.Source, index int) (uint64, error) {
	c, err := a.LoadCell(source, index)
	if err != nil {
		return 0, err
	}
	return c.Capacity, nil
}

func (a *accessor) LoadCellData(source cell.Source, index int) ([]byte, error) {
	c, err := a.LoadCell(source, index)
	if err != nil {
		return nil, err
	}
	return c.Data, nil
}

func (a *accessor) LoadInputOutPoint(source cell.Source, index int) (cell.OutPoint, error) {
	switch source {
	case cell.SourceInput:
		if index < 0 || index >= len(a.tx.Inputs) {
			return cell.OutPoint{}, txview.ErrIndexOutOfBound
		}
		return a.tx.Inputs[index].OutPoint, nil
	case cell.SourceGroupInput:
		idx := a.tx.groupInputIndexes()
		if index < 0 || index >= len(idx) {
			return cell.OutPoint{}, txview.ErrIndexOutOfBound
		}
		return a.tx.Inputs[idx[index]].OutPoint, nil
	default:
		return cell.OutPoint{}, txview.ErrEncoding
	}
}

func (a *accessor) LoadHeader(source cell.Source, index int) (*cell.Header, error) {
	switch source {
	case cell.SourceHeaderDep:
		if index < 0 || index >= len(a.tx.HeaderDeps) {
			return nil, txview.ErrIndexOutOfBound
		}
		h := a.tx.HeaderDeps[index]
		return &h, nil
	case cell.SourceGroupInput:
		idx := a.tx.groupInputIndexes()
		if index < 0 || index >= len(idx) {
			return nil, txview.ErrIndexOutOfBound
		}
		h := a.tx.Inputs[idx[index]].Header
		if h == nil {
			return nil, txview.ErrItemMissing
		}
		return h, nil
	default:
		return nil, txview.ErrEncoding
	}
}

func (a *accessor) LoadTxHash() (cell.Hash, error) { return a.tx.Hash(), nil }

func (a *accessor) LoadWitness(index int) ([]byte, error) {
	if index < 0 || index >= len(a.tx.Witnesses) {
		return nil, txview.ErrIndexOutOfBound
	}
	return a.tx.Witnesses[index], nil
}

func (a *accessor) CountCells(source cell.Source) (int, error) {
	switch source {
	case cell.SourceInput:
		return len(a.tx.Inputs), nil
	case cell.SourceOutput:
		return len(a.tx.Outputs), nil
	case cell.SourceGroupInput:
		return len(a.tx.groupInputIndexes()), nil
	case cell.SourceGroupOutput:
		return len(a.tx.groupOutputIndexes()), nil
	case cell.SourceHeaderDep:
		return len(a.tx.HeaderDeps), nil
	default:
		return 0, txview.ErrEncoding
	}
}
