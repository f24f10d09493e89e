// Package depositscript implements the deposit-script lock: a deposit
// cell's owner-reclaim path. It accepts either a Blake2b-sighash-all
// secp256k1 signature over the pubkey hash encoded in its args, or —
// failing that — co-spending with the bridge cell identified by a
// 32-byte state-id type-hash encoded in its args instead.
package depositscript

import (
	"bytes"

	"github.com/leapdao/parent-bridge/bridgecrypto"
	"github.com/leapdao/parent-bridge/cell"
	"github.com/leapdao/parent-bridge/log"
	"github.com/leapdao/parent-bridge/txview"
	"github.com/leapdao/parent-bridge/verr"
)

var logger = log.Default().Module("deposit-script-lock")

const (
	pubkeyHashArgsLength = 20
	stateIDArgsLength    = 32
	signatureLength      = 65
)

// Verify tries the signature path first; any failure there — including a
// wrongly-sized args buffer — is discarded and replaced wholesale by the
// state-id path's own outcome, matching the two-path fallback the source
// layers over Result::or_else.
func Verify(a txview.Accessor) error {
	script, err := a.LoadScript()
	if err != nil {
		return verr.FromAccessor(err)
	}
	if err := verifySignature(a, script.Args); err == nil {
		return nil
	}
	return verifyStateID(a, script.Args)
}

func verifySignature(a txview.Accessor, pubkeyHash []byte) error {
	if len(pubkeyHash) != pubkeyHashArgsLength {
		return verr.New(verr.Encoding)
	}

	txHash, err := a.LoadTxHash()
	if err != nil {
		return verr.FromAccessor(err)
	}
	sig, err := a.LoadWitness(0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	if len(sig) != signatureLength {
		return verr.New(verr.Secp256k1)
	}

	digest := bridgecrypto.Blake2b256(txHash.Bytes())
	pub, err := bridgecrypto.RecoverPubkey(digest, sig)
	if err != nil {
		logger.Debug("secp256k1 recovery failed", "err", err)
		return verr.New(verr.Secp256k1)
	}

	got := bridgecrypto.Blake160(pub)
	if !bytes.Equal(got[:], pubkeyHash) {
		return verr.New(verr.Secp256k1)
	}
	return nil
}

func verifyStateID(a txview.Accessor, stateID []byte) error {
	if len(stateID) != stateIDArgsLength {
		return verr.New(verr.Encoding)
	}

	count, err := txview.CountMatching(a, cell.SourceInput, func(i int) (bool, error) {
		typeHash, err := a.LoadCellTypeHash(cell.SourceInput, i)
		if err != nil {
			return false, err
		}
		return typeHash != nil && bytes.Equal(typeHash[:], stateID), nil
	})
	if err != nil {
		return verr.FromAccessor(err)
	}
	if count != 1 {
		return verr.New(verr.NoCellWithCorrectTypeHash)
	}
	return nil
}
