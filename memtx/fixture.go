package memtx

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/leapdao/parent-bridge/cell"
)

// fixtureScript is the JSON-friendly mirror of cell.Script: hex strings
// instead of byte arrays/slices, so a fixture file is hand-editable.
type fixtureScript struct {
	CodeHash string `json:"code_hash"`
	Args     string `json:"args"`
}

type fixtureCell struct {
	Capacity uint64         `json:"capacity"`
	Lock     fixtureScript  `json:"lock"`
	Type     *fixtureScript `json:"type,omitempty"`
	Data     string         `json:"data"`
}

type fixtureOutPoint struct {
	TxHash string `json:"tx_hash"`
	Index  uint32 `json:"index"`
}

type fixtureHeader struct {
	Number    uint64 `json:"number"`
	Timestamp uint64 `json:"timestamp"`
}

type fixtureInputCell struct {
	Cell     fixtureCell      `json:"cell"`
	OutPoint fixtureOutPoint  `json:"out_point"`
	Header   *fixtureHeader   `json:"header,omitempty"`
}

// Fixture is the on-disk JSON transaction format cmd/* loads in place of
// the host ledger's loader (out of scope per spec §1).
type Fixture struct {
	Script     fixtureScript      `json:"script"`
	Inputs     []fixtureInputCell `json:"inputs"`
	Outputs    []fixtureCell      `json:"outputs"`
	Witnesses  []string           `json:"witnesses"`
	HeaderDeps []fixtureHeader    `json:"header_deps"`
}

// LoadFixture reads and decodes a JSON transaction fixture from path.
func LoadFixture(path string) (*Tx, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("memtx: read fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("memtx: decode fixture: %w", err)
	}
	return f.toTx()
}

func (f *Fixture) toTx() (*Tx, error) {
	script, err := f.Script.toScript()
	if err != nil {
		return nil, err
	}

	tx := &Tx{Script: script}

	for _, in := range f.Inputs {
		c, err := in.Cell.toCell()
		if err != nil {
			return nil, err
		}
		op, err := in.OutPoint.toOutPoint()
		if err != nil {
			return nil, err
		}
		ic := InputCell{Cell: c, OutPoint: op}
		if in.Header != nil {
			h := in.Header.toHeader()
			ic.Header = &h
		}
		tx.Inputs = append(tx.Inputs, ic)
	}

	for _, out := range f.Outputs {
		c, err := out.toCell()
		if err != nil {
			return nil, err
		}
		tx.Outputs = append(tx.Outputs, c)
	}

	for _, w := range f.Witnesses {
		b, err := hex.DecodeString(trim0x(w))
		if err != nil {
			return nil, fmt.Errorf("memtx: decode witness: %w", err)
		}
		tx.Witnesses = append(tx.Witnesses, b)
	}

	for _, h := range f.HeaderDeps {
		tx.HeaderDeps = append(tx.HeaderDeps, h.toHeader())
	}

	return tx, nil
}

func (s fixtureScript) toScript() (cell.Script, error) {
	codeHash, err := decodeHash(s.CodeHash)
	if err != nil {
		return cell.Script{}, fmt.Errorf("memtx: decode code_hash: %w", err)
	}
	args, err := hex.DecodeString(trim0x(s.Args))
	if err != nil {
		return cell.Script{}, fmt.Errorf("memtx: decode args: %w", err)
	}
	return cell.Script{CodeHash: codeHash, Args: args}, nil
}

func (c fixtureCell) toCell() (cell.Cell, error) {
	lock, err := c.Lock.toScript()
	if err != nil {
		return cell.Cell{}, err
	}
	var typ *cell.Script
	if c.Type != nil {
		t, err := c.Type.toScript()
		if err != nil {
			return cell.Cell{}, err
		}
		typ = &t
	}
	data, err := hex.DecodeString(trim0x(c.Data))
	if err != nil {
		return cell.Cell{}, fmt.Errorf("memtx: decode data: %w", err)
	}
	return cell.Cell{Capacity: c.Capacity, Lock: lock, Type: typ, Data: data}, nil
}

func (op fixtureOutPoint) toOutPoint() (cell.OutPoint, error) {
	h, err := decodeHash(op.TxHash)
	if err != nil {
		return cell.OutPoint{}, fmt.Errorf("memtx: decode tx_hash: %w", err)
	}
	return cell.OutPoint{TxHash: h, Index: op.Index}, nil
}

func (h fixtureHeader) toHeader() cell.Header {
	return cell.Header{Number: h.Number, Timestamp: h.Timestamp}
}

func decodeHash(s string) (cell.Hash, error) {
	b, err := hex.DecodeString(trim0x(s))
	if err != nil {
		return cell.Hash{}, err
	}
	if len(b) != cell.HashLength {
		return cell.Hash{}, fmt.Errorf("memtx: expected %d bytes, got %d", cell.HashLength, len(b))
	}
	return cell.BytesToHash(b), nil
}

func trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
