package cell

import "encoding/binary"

// ReceiptLength is the fixed wire size of a withdrawal receipt.
const ReceiptLength = 128

// Receipt is the 128-byte child-chain withdrawal authorization signed by
// the validator committee:
//
//	reserved[0:56) || amount[56:64) (u64 BE) || owner_lock_hash[64:96) || source_tx_hash[96:128)
type Receipt [ReceiptLength]byte

// BytesToReceipt copies b into a Receipt. b must be exactly ReceiptLength
// bytes; callers validate witness length before calling this.
func BytesToReceipt(b []byte) Receipt {
	var r Receipt
	copy(r[:], b)
	return r
}

// Amount returns the big-endian u64 payout amount at bytes [56:64).
func (r Receipt) Amount() uint64 {
	return binary.BigEndian.Uint64(r[56:64])
}

// OwnerLockHash returns the destination owner lock hash at bytes [64:96).
func (r Receipt) OwnerLockHash() Hash {
	return BytesToHash(r[64:96])
}

// SourceTxHash returns the originating child-chain transaction hash at
// bytes [96:128). This, combined with the receipt content as a whole, is
// what makes the receipt's Keccak-256 digest a replay-prevention key.
func (r Receipt) SourceTxHash() Hash {
	return BytesToHash(r[96:128])
}

// Bytes returns the raw 128-byte encoding.
func (r Receipt) Bytes() []byte { return r[:] }
