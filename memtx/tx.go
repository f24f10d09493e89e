// Package memtx implements an in-memory txview.Accessor over a frozen,
// fully-materialized transaction. It stands in for the host ledger's
// loader (out of scope per spec §1): tests build a Tx by hand, and
// cmd/* loads one from a JSON fixture file.
package memtx

import (
	"encoding/binary"

	"github.com/leapdao/parent-bridge/bridgecrypto"
	"github.com/leapdao/parent-bridge/cell"
	"github.com/leapdao/parent-bridge/txview"
)

// InputCell is a consumed cell plus the out point it was consumed from and
// the header of the block it was live under (needed by the audit-delay
// lock's GroupInput header lookup; nil if unknown/unused).
type InputCell struct {
	Cell     cell.Cell
	OutPoint cell.OutPoint
	Header   *cell.Header
}

// Tx is a complete, static view of one spending transaction: every input
// and output cell, the per-input witnesses, and the header-dep list.
type Tx struct {
	// Script is the currently-executing script — the lock or type script
	// whose verifier is being run against this Tx.
	Script cell.Script

	Inputs     []InputCell
	Outputs    []cell.Cell
	Witnesses  [][]byte
	HeaderDeps []cell.Header
}

// scriptHash computes Script.Hash() afresh on every call; scripts are
// small so it isn't memoized, matching the stateless nature of every
// other Accessor method.
func (tx *Tx) scriptHash() cell.Hash { return tx.Script.Hash() }

// inGroup reports whether cell c carries the currently-executing script
// as its lock or its type.
func (tx *Tx) inGroup(c *cell.Cell) bool {
	h := tx.scriptHash()
	if c.Lock.Hash() == h {
		return true
	}
	if t := c.TypeHash(); t != nil && *t == h {
		return true
	}
	return false
}

func (tx *Tx) groupInputIndexes() []int {
	var idx []int
	for i := range tx.Inputs {
		if tx.inGroup(&tx.Inputs[i].Cell) {
			idx = append(idx, i)
		}
	}
	return idx
}

func (tx *Tx) groupOutputIndexes() []int {
	var idx []int
	for i := range tx.Outputs {
		if tx.inGroup(&tx.Outputs[i]) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Accessor adapts Tx to the txview.Accessor interface.
func (tx *Tx) Accessor() txview.Accessor { return &accessor{tx: tx} }

// Hash commits to the transaction except its witnesses: the executing
// script, every input's out point and referenced cell, every output
// cell, and the header-dep list. Input headers (InputCell.Header) are not
// included. It stands in for the host
// ledger's wire-level transaction hash (out of scope per §1), and is the
// root digest the deposit-script lock's sighash-all check is keyed on.
func (tx *Tx) Hash() cell.Hash {
	var buf []byte
	appendScript := func(s cell.Script) {
		buf = append(buf, s.CodeHash[:]...)
		buf = append(buf, s.Args...)
	}
	appendCell := func(c cell.Cell) {
		var capBytes [8]byte
		binary.BigEndian.PutUint64(capBytes[:], c.Capacity)
		buf = append(buf, capBytes[:]...)
		appendScript(c.Lock)
		if c.Type != nil {
			appendScript(*c.Type)
		}
		buf = append(buf, c.Data...)
	}

	appendScript(tx.Script)
	for _, in := range tx.Inputs {
		buf = append(buf, in.OutPoint.TxHash[:]...)
		var idxBytes [4]byte
		binary.BigEndian.PutUint32(idxBytes[:], in.OutPoint.Index)
		buf = append(buf, idxBytes[:]...)
		appendCell(in.Cell)
	}
	for _, out := range tx.Outputs {
		appendCell(out)
	}
	for _, h := range tx.HeaderDeps {
		var numBytes, tsBytes [8]byte
		binary.BigEndian.PutUint64(numBytes[:], h.Number)
		binary.BigEndian.PutUint64(tsBytes[:], h.Timestamp)
		buf = append(buf, numBytes[:]...)
		buf = append(buf, tsBytes[:]...)
	}

	return cell.BytesToHash(bridgecrypto.Keccak256(buf))
}
