package bridgetype

import (
	"github.com/leapdao/parent-bridge/cell"
	"github.com/leapdao/parent-bridge/policy"
	"github.com/leapdao/parent-bridge/txview"
	"github.com/leapdao/parent-bridge/verr"
)

// Action selector bytes read from witness 0's first byte (§4.5.2).
const (
	actionPayout          byte = 0x00
	actionCollectDeposits byte = 0x01
	actionHaltAndDissolve byte = 0x02
)

// Transition is a reified, typed state transition: the Get stage is a
// total parser producing a Transition or a parse error; Verify is a pure
// function of that value plus accessor reads. Parse errors and semantic
// errors share the same verr.Code space.
type Transition interface {
	Verify(a txview.Accessor, p policy.Params, args Args, scriptHash cell.Hash) error
}

// Get parses the currently executing transaction into its transition
// kind: Deploy if no input carries the bridge's own type hash, else the
// action selected by witness 0's first byte.
func Get(a txview.Accessor) (Transition, Args, cell.Hash, error) {
	script, err := a.LoadScript()
	if err != nil {
		return nil, Args{}, cell.Hash{}, verr.FromAccessor(err)
	}
	args, err := parseArgs(script.Args)
	if err != nil {
		return nil, Args{}, cell.Hash{}, err
	}

	scriptHash, err := a.LoadScriptHash()
	if err != nil {
		return nil, Args{}, cell.Hash{}, verr.FromAccessor(err)
	}

	if err := enforceAtMostOneTypeOutput(a, scriptHash); err != nil {
		return nil, Args{}, cell.Hash{}, err
	}

	inGroupCount, err := txview.CountMatching(a, cell.SourceInput, func(i int) (bool, error) {
		h, err := a.LoadCellTypeHash(cell.SourceInput, i)
		if err != nil {
			return false, err
		}
		return h != nil && *h == scriptHash, nil
	})
	if err != nil {
		return nil, Args{}, cell.Hash{}, verr.FromAccessor(err)
	}

	if inGroupCount == 0 {
		return deployTransition{}, args, scriptHash, nil
	}

	witness, err := a.LoadWitness(0)
	if err != nil {
		return nil, Args{}, cell.Hash{}, verr.FromAccessor(err)
	}
	if len(witness) == 0 {
		return nil, Args{}, cell.Hash{}, verr.New(verr.Encoding)
	}

	switch witness[0] {
	case actionPayout:
		return payoutTransition{witness: witness}, args, scriptHash, nil
	case actionCollectDeposits:
		return collectDepositsTransition{}, args, scriptHash, nil
	case actionHaltAndDissolve:
		return haltAndDissolveTransition{}, args, scriptHash, nil
	default:
		return nil, Args{}, cell.Hash{}, verr.New(verr.StateTransitionDoesNotExist)
	}
}

// enforceAtMostOneTypeOutput is the §4.5.1 common precondition shared by
// every transition: at most one output may carry the bridge's type hash.
func enforceAtMostOneTypeOutput(a txview.Accessor, scriptHash cell.Hash) error {
	count, err := txview.CountMatching(a, cell.SourceOutput, func(i int) (bool, error) {
		h, err := a.LoadCellTypeHash(cell.SourceOutput, i)
		if err != nil {
			return false, err
		}
		return h != nil && *h == scriptHash, nil
	})
	if err != nil {
		return verr.FromAccessor(err)
	}
	if count > 1 {
		return verr.New(verr.TooManyTypeOutputs)
	}
	return nil
}

// Verify parses and verifies the currently executing transaction in one call.
func Verify(a txview.Accessor, p policy.Params) error {
	transition, args, scriptHash, err := Get(a)
	if err != nil {
		return err
	}
	return transition.Verify(a, p, args, scriptHash)
}
