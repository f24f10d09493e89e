package bridgetype

import (
	"bytes"
	"encoding/binary"
	"math/bits"

	"github.com/leapdao/parent-bridge/bridgecrypto"
	"github.com/leapdao/parent-bridge/cell"
	"github.com/leapdao/parent-bridge/policy"
	"github.com/leapdao/parent-bridge/txview"
	"github.com/leapdao/parent-bridge/verr"
)

const (
	witnessMinLength  = 194
	receiptLength     = 128
	signatureLength   = 65
	auditDelayArgsLen = 72
)

// payoutTransition redeems a receipt against the bridge cell, appending
// its digest to the replay-prevention log: Live(d) -> Live(d || h).
type payoutTransition struct {
	witness []byte
}

func (t payoutTransition) Verify(a txview.Accessor, p policy.Params, args Args, scriptHash cell.Hash) error {
	w := t.witness
	if len(w) < witnessMinLength || (len(w)-129)%signatureLength != 0 {
		return verr.New(verr.InvalidWitnessEncoding)
	}

	receipt := cell.BytesToReceipt(w[1:129])
	h := bridgecrypto.Keccak256(receipt.Bytes())

	sigCount := (len(w) - 129) / signatureLength
	quorum := make([]bool, len(args.Validators))
	ethDigest := bridgecrypto.EthSignedMessageHash(receipt.Bytes())

	for i := 0; i < sigCount; i++ {
		sig := w[129+i*signatureLength : 129+(i+1)*signatureLength]
		signer, err := bridgecrypto.RecoverSigner(ethDigest[:], sig)
		if err != nil {
			return verr.New(verr.UnknownReceiptSigner)
		}
		pos := args.indexOf(cell.Address(signer))
		if pos < 0 {
			return verr.New(verr.UnknownReceiptSigner)
		}
		quorum[pos] = true
	}

	approved := 0
	for _, ok := range quorum {
		if ok {
			approved++
		}
	}
	threshold := (len(args.Validators) * 2) / 3
	if approved < threshold {
		return verr.New(verr.SignatureQuorumNotMet)
	}

	amount := receipt.Amount()

	input0Cap, err := a.LoadCellCapacity(cell.SourceInput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	output0Cap, err := a.LoadCellCapacity(cell.SourceOutput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	expectedOutput0, borrow := bits.Sub64(input0Cap, amount, 0)
	if borrow != 0 || output0Cap != expectedOutput0 {
		return verr.New(verr.WithdrawalCapacityComputedIncorrectly)
	}

	output1Cap, err := a.LoadCellCapacity(cell.SourceOutput, 1)
	if err != nil {
		return verr.FromAccessor(err)
	}
	if output1Cap != amount {
		return verr.New(verr.InvalidWithdrawalCapacity)
	}

	output1Lock, err := a.LoadCellLock(cell.SourceOutput, 1)
	if err != nil {
		return verr.FromAccessor(err)
	}
	if output1Lock.CodeHash != p.AuditDelayCodeHash {
		return verr.New(verr.WrongLockScript)
	}
	if len(output1Lock.Args) != auditDelayArgsLen {
		return verr.New(verr.WrongScriptArgsLength)
	}
	if !bytes.Equal(output1Lock.Args[0:32], args.TrusteeHash.Bytes()) {
		return verr.New(verr.WrongTrusteeInPayout)
	}
	if !bytes.Equal(output1Lock.Args[32:64], receipt.OwnerLockHash().Bytes()) {
		return verr.New(verr.WrongPayoutDestination)
	}
	if binary.BigEndian.Uint64(output1Lock.Args[64:72]) != p.PayoutTimeoutMS {
		return verr.New(verr.WrongTimeout)
	}

	input0Data, err := a.LoadCellData(cell.SourceInput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	output0Data, err := a.LoadCellData(cell.SourceOutput, 0)
	if err != nil {
		return verr.FromAccessor(err)
	}
	if !bytes.Equal(output0Data, append(append([]byte{}, input0Data...), h...)) {
		return verr.New(verr.DataUpdatedIncorrectly)
	}

	for i := 0; i+32 <= len(input0Data); i += 32 {
		if bytes.Equal(input0Data[i:i+32], h) {
			return verr.New(verr.ReceiptAlreadyUsed)
		}
	}

	return nil
}
