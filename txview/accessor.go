// Package txview defines the Transaction Accessor: the read-only surface
// every verifier uses to inspect the spending transaction. It is a
// capability interface, not a concrete implementation — the host ledger's
// loader is out of scope (§1); memtx provides an in-memory implementation
// for tests and the cmd/* fixture runners.
package txview

import (
	"errors"

	"github.com/leapdao/parent-bridge/cell"
)

// Accessor errors, mapped to exit codes 1-4 by verr.FromAccessor.
var (
	ErrIndexOutOfBound  = errors.New("txview: index out of bound")
	ErrItemMissing      = errors.New("txview: item missing")
	ErrLengthNotEnough  = errors.New("txview: length not enough")
	ErrEncoding         = errors.New("txview: encoding error")
)

// Accessor is the capability surface a verifier consumes. Every method is
// a pure read over a frozen transaction snapshot; none of them mutate
// state or block.
type Accessor interface {
	// LoadScript returns the currently-executing script (code hash + args).
	LoadScript() (cell.Script, error)
	// LoadScriptHash returns the hash of the currently-executing script.
	LoadScriptHash() (cell.Hash, error)

	// LoadCell returns the full cell at (source, index).
	LoadCell(source cell.Source, index int) (*cell.Cell, error)
	// LoadCellLock returns the lock script at (source, index).
	LoadCellLock(source cell.Source, index int) (cell.Script, error)
	// LoadCellType returns the type script at (source, index), or nil if absent.
	LoadCellType(source cell.Source, index int) (*cell.Script, error)
	// LoadCellLockHash returns the hash of the lock script at (source, index).
	LoadCellLockHash(source cell.Source, index int) (cell.Hash, error)
	// LoadCellTypeHash returns the hash of the type script at (source, index), or nil if absent.
	LoadCellTypeHash(source cell.Source, index int) (*cell.Hash, error)
	// LoadCellCapacity returns the capacity at (source, index).
	LoadCellCapacity(source cell.Source, index int) (uint64, error)
	// LoadCellData returns the data field at (source, index).
	LoadCellData(source cell.Source, index int) ([]byte, error)

	// LoadInputOutPoint returns the out point consumed by the input at
	// (source, index). source must be SourceInput or SourceGroupInput.
	LoadInputOutPoint(source cell.Source, index int) (cell.OutPoint, error)

	// LoadHeader returns the header at (source, index). source must be
	// SourceHeaderDep or SourceGroupInput (the latter resolves to the
	// header the consumed input cell was created under, when known).
	LoadHeader(source cell.Source, index int) (*cell.Header, error)

	// LoadWitness returns the raw witness bytes for the input at index.
	LoadWitness(index int) ([]byte, error)

	// LoadTxHash returns the hash of the transaction itself, the root
	// digest the deposit-script lock's sighash-all check is keyed on.
	LoadTxHash() (cell.Hash, error)

	// CountCells returns the number of cells available from source. Query
	// and CountMatching do not call it; they stop at ErrIndexOutOfBound.
	CountCells(source cell.Source) (int, error)
}
