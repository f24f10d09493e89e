// Package bridgecrypto provides the hash and signature primitives the
// bridge verifiers need: Keccak-256 for script/receipt identity, the
// Ethereum-signed-message digest and secp256k1 recoverable-signature
// recovery for Payout quorum checking, and the Blake2b sighash-all digest
// the deposit-script lock verifies against.
package bridgecrypto

import (
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Keccak256 hashes the concatenation of data with Keccak-256 (the
// pre-standardization variant, as used throughout the Ethereum and CKB
// ecosystems — not NIST SHA3-256).
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Keccak256Hash hashes the concatenation of data and returns it as a fixed
// 32-byte array.
func Keccak256Hash(data ...[]byte) [32]byte {
	var out [32]byte
	copy(out[:], Keccak256(data...))
	return out
}

// EthSignedMessageHash computes keccak256("\x19Ethereum Signed Message:\n" +
// len(msg) + msg), the digest a Payout signature is produced over rather
// than the raw receipt hash. This matches the personal-sign convention the
// committee's off-chain signing infrastructure uses.
func EthSignedMessageHash(msg []byte) [32]byte {
	prefix := fmt.Sprintf("\x19Ethereum Signed Message:\n%d", len(msg))
	return Keccak256Hash([]byte(prefix), msg)
}
