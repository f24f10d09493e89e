package cell

import "github.com/leapdao/parent-bridge/bridgecrypto"

// Source identifies which list of cells a query reads from, mirroring the
// four cell-reference groups a verifier can see plus the header-dep list.
type Source int

const (
	// SourceInput iterates every input cell of the transaction.
	SourceInput Source = iota
	// SourceOutput iterates every output cell of the transaction.
	SourceOutput
	// SourceGroupInput iterates only the inputs whose lock or type script
	// equals the currently executing script (the "group").
	SourceGroupInput
	// SourceGroupOutput iterates only the outputs in the group.
	SourceGroupOutput
	// SourceHeaderDep iterates the transaction's header-dependency list.
	SourceHeaderDep
)

// String implements fmt.Stringer for diagnostics.
func (s Source) String() string {
	switch s {
	case SourceInput:
		return "Input"
	case SourceOutput:
		return "Output"
	case SourceGroupInput:
		return "GroupInput"
	case SourceGroupOutput:
		return "GroupOutput"
	case SourceHeaderDep:
		return "HeaderDep"
	default:
		return "Unknown"
	}
}

// Script is a (code_hash, args) pair. A cell's lock script authorizes
// spending; its optional type script enforces invariants across the
// transaction.
type Script struct {
	CodeHash Hash
	Args     []byte
}

// Hash derives the script's identity deterministically from its fields:
// keccak256(code_hash ++ args). Two scripts with the same fields always
// hash identically regardless of how they were constructed.
func (s Script) Hash() Hash {
	return Hash(bridgecrypto.Keccak256Hash(s.CodeHash[:], s.Args))
}

// IsZero reports whether the script is the zero value (no code hash, no args).
func (s Script) IsZero() bool {
	return s.CodeHash.IsZero() && len(s.Args) == 0
}

// OutPoint references a previously-created cell: the transaction that
// created it and its output index within that transaction.
type OutPoint struct {
	TxHash Hash
	Index  uint32
}

// Cell is one UTXO-style output: a capacity, a required lock script, an
// optional type script, and an opaque data payload.
type Cell struct {
	Capacity uint64
	Lock     Script
	Type     *Script
	Data     []byte
}

// TypeHash returns the cell's type script hash, or nil if it has no type
// script.
func (c *Cell) TypeHash() *Hash {
	if c.Type == nil {
		return nil
	}
	h := c.Type.Hash()
	return &h
}

// Header carries the subset of block-header fields the verifiers read.
type Header struct {
	Number    uint64
	Timestamp uint64
}
