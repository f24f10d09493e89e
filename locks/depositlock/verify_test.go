package depositlock

import (
	"testing"

	"github.com/leapdao/parent-bridge/cell"
	"github.com/leapdao/parent-bridge/memtx"
	"github.com/leapdao/parent-bridge/verr"
)

func mustHash(b byte) cell.Hash {
	var h cell.Hash
	h[0] = b
	return h
}

func TestVerifyWrongArgsLength(t *testing.T) {
	script := cell.Script{CodeHash: mustHash(0xee), Args: make([]byte, 63)}
	tx := &memtx.Tx{
		Script: script,
		Inputs: []memtx.InputCell{{Cell: cell.Cell{Capacity: 100}}},
	}
	err := Verify(tx.Accessor())
	if verr.CodeOf(err) != verr.WrongScriptArgsLength {
		t.Fatalf("got %v, want WrongScriptArgsLength", err)
	}
}

func TestVerifyLockHashMatch(t *testing.T) {
	lockScript := cell.Script{CodeHash: mustHash(0x10)}
	allowedLock := lockScript.Hash()
	allowedType := mustHash(0x02)
	args := append(append([]byte{}, allowedLock.Bytes()...), allowedType.Bytes()...)

	script := cell.Script{CodeHash: mustHash(0xee), Args: args}
	tx := &memtx.Tx{
		Script: script,
		Inputs: []memtx.InputCell{{
			Cell: cell.Cell{Capacity: 100, Lock: lockScript},
		}},
	}

	if err := Verify(tx.Accessor()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerifyTypeHashMatch(t *testing.T) {
	allowedLock := mustHash(0x01)
	typeScript := cell.Script{CodeHash: mustHash(0x20)}
	allowedType := typeScript.Hash()
	args := append(append([]byte{}, allowedLock.Bytes()...), allowedType.Bytes()...)

	script := cell.Script{CodeHash: mustHash(0xee), Args: args}
	tx := &memtx.Tx{
		Script: script,
		Inputs: []memtx.InputCell{{
			Cell: cell.Cell{
				Capacity: 100,
				Lock:     cell.Script{CodeHash: mustHash(0x99)},
				Type:     &typeScript,
			},
		}},
	}

	if err := Verify(tx.Accessor()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerifyMissingCorrectTypeOrLockScript(t *testing.T) {
	allowedLock := mustHash(0x01)
	allowedType := mustHash(0x02)
	args := append(append([]byte{}, allowedLock.Bytes()...), allowedType.Bytes()...)

	script := cell.Script{CodeHash: mustHash(0xee), Args: args}
	tx := &memtx.Tx{
		Script: script,
		Inputs: []memtx.InputCell{{
			Cell: cell.Cell{Capacity: 100, Lock: cell.Script{CodeHash: mustHash(0x99)}},
		}},
	}

	err := Verify(tx.Accessor())
	if verr.CodeOf(err) != verr.MissingCorrectTypeOrLockScript {
		t.Fatalf("got %v, want MissingCorrectTypeOrLockScript", err)
	}
}
