package bridgetype

import (
	"testing"

	"github.com/leapdao/parent-bridge/cell"
	"github.com/leapdao/parent-bridge/memtx"
	"github.com/leapdao/parent-bridge/verr"
)

// haltTrusteeLock is the trustee's lock script; haltArgs uses its hash as
// the bridge's trustee hash.
func haltTrusteeLock() cell.Script {
	return cell.Script{CodeHash: mustHash(0x99)}
}

func haltArgs() (Args, cell.Script) {
	bridgeScript := cell.Script{CodeHash: mustHash(0xbb)}
	args := Args{
		TrusteeHash: haltTrusteeLock().Hash(),
		Validators:  []cell.Address{mustAddr(0xf3)},
	}
	bridgeScript.Args = args.Bytes()
	return args, bridgeScript
}

func TestHaltAndDissolveSucceeds(t *testing.T) {
	p := testPolicy()
	_, bridgeScript := haltArgs()

	trusteeLock := haltTrusteeLock()

	tx := &memtx.Tx{
		Script: bridgeScript,
		Inputs: []memtx.InputCell{
			{Cell: cell.Cell{Capacity: 100, Type: &bridgeScript, Lock: trusteeLock}},
		},
		Outputs: []cell.Cell{
			{Capacity: 60, Lock: cell.Script{CodeHash: mustHash(0x01)}},
			{Capacity: 40, Lock: cell.Script{CodeHash: mustHash(0x02)}},
		},
		Witnesses: [][]byte{{2}},
	}

	if err := Verify(tx.Accessor(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHaltAndDissolveNotSignedByTrustee(t *testing.T) {
	p := testPolicy()
	args, bridgeScript := haltArgs()
	_ = args

	tx := &memtx.Tx{
		Script: bridgeScript,
		Inputs: []memtx.InputCell{
			{Cell: cell.Cell{Capacity: 100, Type: &bridgeScript, Lock: cell.Script{CodeHash: mustHash(0x55)}}},
		},
		Outputs: []cell.Cell{
			{Capacity: 100, Lock: cell.Script{CodeHash: mustHash(0x01)}},
		},
		Witnesses: [][]byte{{2}},
	}

	err := Verify(tx.Accessor(), p)
	if verr.CodeOf(err) != verr.NotSignedByTrustee {
		t.Fatalf("got %v, want NotSignedByTrustee", err)
	}
}

func TestHaltAndDissolveBridgeWasNotDissolved(t *testing.T) {
	p := testPolicy()
	_, bridgeScript := haltArgs()
	trusteeLock := haltTrusteeLock()

	tx := &memtx.Tx{
		Script: bridgeScript,
		Inputs: []memtx.InputCell{
			{Cell: cell.Cell{Capacity: 100, Type: &bridgeScript, Lock: trusteeLock}},
		},
		Outputs: []cell.Cell{
			{Capacity: 100, Type: &bridgeScript, Lock: cell.Script{CodeHash: p.AnyoneCanSpendCodeHash}},
		},
		Witnesses: [][]byte{{2}},
	}

	err := Verify(tx.Accessor(), p)
	if verr.CodeOf(err) != verr.BridgeWasNotDissolved {
		t.Fatalf("got %v, want BridgeWasNotDissolved", err)
	}
}

func TestHaltAndDissolveLeftoverCapacity(t *testing.T) {
	p := testPolicy()
	_, bridgeScript := haltArgs()
	trusteeLock := haltTrusteeLock()

	tx := &memtx.Tx{
		Script: bridgeScript,
		Inputs: []memtx.InputCell{
			{Cell: cell.Cell{Capacity: 100, Type: &bridgeScript, Lock: trusteeLock}},
		},
		Outputs: []cell.Cell{
			{Capacity: 40, Lock: cell.Script{CodeHash: mustHash(0x01)}},
		},
		Witnesses: [][]byte{{2}},
	}

	err := Verify(tx.Accessor(), p)
	if verr.CodeOf(err) != verr.LeftoverCapacity {
		t.Fatalf("got %v, want LeftoverCapacity", err)
	}
}
