package bridgetype

import (
	"testing"

	"github.com/leapdao/parent-bridge/cell"
	"github.com/leapdao/parent-bridge/memtx"
	"github.com/leapdao/parent-bridge/verr"
)

func collectArgs() (Args, cell.Script) {
	bridgeScript := cell.Script{CodeHash: mustHash(0xbb)}
	args := Args{
		TrusteeHash: mustHash(0x99),
		Validators:  []cell.Address{mustAddr(0xf3)},
	}
	bridgeScript.Args = args.Bytes()
	return args, bridgeScript
}

func TestCollectDepositsSucceeds(t *testing.T) {
	p := testPolicy()
	_, bridgeScript := collectArgs()
	depositLock := cell.Script{CodeHash: p.DepositLockCodeHash}

	tx := &memtx.Tx{
		Script: bridgeScript,
		Inputs: []memtx.InputCell{
			{Cell: cell.Cell{Capacity: 100, Type: &bridgeScript, Lock: cell.Script{CodeHash: p.AnyoneCanSpendCodeHash}, Data: []byte{0xaa}}},
			{Cell: cell.Cell{Capacity: 30, Lock: depositLock}},
			{Cell: cell.Cell{Capacity: 20, Lock: depositLock}},
		},
		Outputs: []cell.Cell{
			{Capacity: 150, Type: &bridgeScript, Lock: cell.Script{CodeHash: p.AnyoneCanSpendCodeHash}, Data: []byte{0xaa}},
		},
		Witnesses: [][]byte{{1}},
	}

	if err := Verify(tx.Accessor(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCollectDepositsCapacityComputedIncorrectly(t *testing.T) {
	p := testPolicy()
	_, bridgeScript := collectArgs()
	depositLock := cell.Script{CodeHash: p.DepositLockCodeHash}

	tx := &memtx.Tx{
		Script: bridgeScript,
		Inputs: []memtx.InputCell{
			{Cell: cell.Cell{Capacity: 100, Type: &bridgeScript, Lock: cell.Script{CodeHash: p.AnyoneCanSpendCodeHash}}},
			{Cell: cell.Cell{Capacity: 30, Lock: depositLock}},
		},
		Outputs: []cell.Cell{
			{Capacity: 125, Type: &bridgeScript, Lock: cell.Script{CodeHash: p.AnyoneCanSpendCodeHash}},
		},
		Witnesses: [][]byte{{1}},
	}

	err := Verify(tx.Accessor(), p)
	if verr.CodeOf(err) != verr.DepositCapacityComputedIncorrectly {
		t.Fatalf("got %v, want DepositCapacityComputedIncorrectly", err)
	}
}

func TestCollectDepositsShouldNotChangeData(t *testing.T) {
	p := testPolicy()
	_, bridgeScript := collectArgs()
	depositLock := cell.Script{CodeHash: p.DepositLockCodeHash}

	tx := &memtx.Tx{
		Script: bridgeScript,
		Inputs: []memtx.InputCell{
			{Cell: cell.Cell{Capacity: 100, Type: &bridgeScript, Lock: cell.Script{CodeHash: p.AnyoneCanSpendCodeHash}, Data: []byte{0xaa}}},
			{Cell: cell.Cell{Capacity: 30, Lock: depositLock}},
		},
		Outputs: []cell.Cell{
			{Capacity: 130, Type: &bridgeScript, Lock: cell.Script{CodeHash: p.AnyoneCanSpendCodeHash}, Data: []byte{0xbb}},
		},
		Witnesses: [][]byte{{1}},
	}

	err := Verify(tx.Accessor(), p)
	if verr.CodeOf(err) != verr.DepositsShouldNotChangeData {
		t.Fatalf("got %v, want DepositsShouldNotChangeData", err)
	}
}
