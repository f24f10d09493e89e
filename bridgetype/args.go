// Package bridgetype implements the bridge type verifier: the state
// machine governing the live bridge cell across Deploy, CollectDeposits,
// Payout and HaltAndDissolve transitions.
package bridgetype

import (
	"encoding/binary"

	"github.com/leapdao/parent-bridge/cell"
	"github.com/leapdao/parent-bridge/verr"
)

const (
	stateIDLength     = 36
	trusteeHashLength = 32
	validatorLength   = 20
	minArgsLength     = stateIDLength + trusteeHashLength
)

// Args is the parsed bridge type script args: state_id(36) || trustee_hash(32) || validators(k*20).
type Args struct {
	StateID     [stateIDLength]byte
	TrusteeHash cell.Hash
	Validators  []cell.Address
}

// parseArgs parses raw into Args, enforcing k >= 1 validators.
func parseArgs(raw []byte) (Args, error) {
	if len(raw) < minArgsLength {
		return Args{}, verr.New(verr.WrongScriptArgsLength)
	}

	var a Args
	copy(a.StateID[:], raw[0:stateIDLength])
	a.TrusteeHash = cell.BytesToHash(raw[stateIDLength : stateIDLength+trusteeHashLength])

	valBytes := raw[stateIDLength+trusteeHashLength:]
	if len(valBytes)%validatorLength != 0 {
		return Args{}, verr.New(verr.InvalidArgsEncoding)
	}
	k := len(valBytes) / validatorLength
	if k == 0 {
		return Args{}, verr.New(verr.EmptyValidatorList)
	}

	a.Validators = make([]cell.Address, k)
	for i := 0; i < k; i++ {
		a.Validators[i] = cell.BytesToAddress(valBytes[i*validatorLength : (i+1)*validatorLength])
	}
	return a, nil
}

// Bytes re-serializes a into state_id || trustee_hash || validators, the
// exact form Deploy requires output0's type args to match bit-for-bit.
func (a Args) Bytes() []byte {
	out := make([]byte, 0, stateIDLength+trusteeHashLength+len(a.Validators)*validatorLength)
	out = append(out, a.StateID[:]...)
	out = append(out, a.TrusteeHash.Bytes()...)
	for _, v := range a.Validators {
		out = append(out, v.Bytes()...)
	}
	return out
}

// indexOf returns the position of addr in a.Validators, or -1.
func (a Args) indexOf(addr cell.Address) int {
	for i, v := range a.Validators {
		if v == addr {
			return i
		}
	}
	return -1
}

// inputOutPointStateID computes state_id' = input0.out_point.tx_hash || input0.out_point.index
// (index little-endian, per the host's OutPoint convention).
func inputOutPointStateID(op cell.OutPoint) [stateIDLength]byte {
	var id [stateIDLength]byte
	copy(id[0:32], op.TxHash[:])
	binary.LittleEndian.PutUint32(id[32:36], op.Index)
	return id
}
