package bridgetype

import (
	"testing"

	"github.com/leapdao/parent-bridge/cell"
	"github.com/leapdao/parent-bridge/memtx"
	"github.com/leapdao/parent-bridge/policy"
	"github.com/leapdao/parent-bridge/verr"
)

func mustHash(b byte) cell.Hash {
	var h cell.Hash
	h[0] = b
	return h
}

func mustAddr(b byte) cell.Address {
	var a cell.Address
	a[0] = b
	return a
}

func testPolicy() policy.Params {
	return policy.Params{
		AnyoneCanSpendCodeHash: mustHash(0xa0),
		DepositLockCodeHash:    mustHash(0xd0),
		AuditDelayCodeHash:     mustHash(0xad),
		PayoutTimeoutMS:        1000,
	}
}

func TestDeploySucceeds(t *testing.T) {
	p := testPolicy()
	bridgeScript := cell.Script{CodeHash: mustHash(0xbb)}

	outPoint := cell.OutPoint{TxHash: mustHash(0x77), Index: 0}
	stateID := inputOutPointStateID(outPoint)

	args := Args{
		StateID:     stateID,
		TrusteeHash: mustHash(0x99),
		Validators:  []cell.Address{mustAddr(0xf3)},
	}
	bridgeScript.Args = args.Bytes()

	tx := &memtx.Tx{
		Script: bridgeScript,
		Inputs: []memtx.InputCell{
			{Cell: cell.Cell{Capacity: 10}, OutPoint: outPoint},
		},
		Outputs: []cell.Cell{
			{
				Capacity: 10,
				Lock:     cell.Script{CodeHash: p.AnyoneCanSpendCodeHash},
				Type:     &bridgeScript,
			},
		},
	}

	if err := Verify(tx.Accessor(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeployEmptyValidatorList(t *testing.T) {
	p := testPolicy()
	outPoint := cell.OutPoint{TxHash: mustHash(0x77), Index: 0}
	stateID := inputOutPointStateID(outPoint)

	args := Args{StateID: stateID, TrusteeHash: mustHash(0x99)}
	raw := args.Bytes() // no validators appended: exactly 68 bytes

	bridgeScript := cell.Script{CodeHash: mustHash(0xbb), Args: raw}

	tx := &memtx.Tx{
		Script: bridgeScript,
		Inputs: []memtx.InputCell{
			{Cell: cell.Cell{Capacity: 10}, OutPoint: outPoint},
		},
		Outputs: []cell.Cell{
			{Capacity: 10, Lock: cell.Script{CodeHash: p.AnyoneCanSpendCodeHash}, Type: &bridgeScript},
		},
	}

	err := Verify(tx.Accessor(), p)
	if verr.CodeOf(err) != verr.EmptyValidatorList {
		t.Fatalf("got %v, want EmptyValidatorList", err)
	}
}
