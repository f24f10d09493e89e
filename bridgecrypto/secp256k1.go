package bridgecrypto

import (
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// secp256k1N is the order of the secp256k1 curve.
var secp256k1N, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

// secp256k1HalfN is half the curve order, used for the Homestead-style
// low-S malleability check (Design Notes: reject high-s forms).
var secp256k1HalfN = new(big.Int).Div(secp256k1N, big.NewInt(2))

// Errors returned by RecoverPubkey (and so by RecoverSigner).
var (
	ErrSignatureLength     = errors.New("bridgecrypto: signature must be 65 bytes")
	ErrSignatureMalleable  = errors.New("bridgecrypto: s is in the upper half of the curve order")
	ErrSignatureRecoverFailed = errors.New("bridgecrypto: public key recovery failed")
)

// RecoverPubkey recovers the 64-byte uncompressed public key (X||Y,
// without the leading 0x04 prefix byte) that produced a 65-byte R||S||V
// signature over hash. V may be a raw recovery id (0 or 1) or the legacy
// Ethereum encoding (27 or 28); any other value is rejected. S must
// already be in the lower half of the curve order — a high-S signature is
// a second, equally valid encoding of the same signer's intent and must
// not be accepted as a distinct signer. Used both for Payout quorum
// signatures (over the Ethereum-signed-message digest) and for the
// deposit-script lock's sighash-all signature (over a Blake2b digest).
func RecoverPubkey(hash []byte, sig []byte) ([]byte, error) {
	if len(sig) != 65 {
		return nil, ErrSignatureLength
	}

	r := new(big.Int).SetBytes(sig[0:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if s.Cmp(secp256k1HalfN) > 0 {
		return nil, ErrSignatureMalleable
	}

	rawV, err := normalizeRecoveryID(sig[64])
	if err != nil {
		return nil, err
	}

	// Decred's compact format is [recovery code || R || S] with the
	// recovery code in 27..30 signaling an uncompressed public key.
	compact := make([]byte, 65)
	compact[0] = 27 + rawV
	rBytes, sBytes := r.Bytes(), s.Bytes()
	copy(compact[1+32-len(rBytes):33], rBytes)
	copy(compact[33+32-len(sBytes):65], sBytes)

	pub, _, err := ecdsa.RecoverCompact(compact, hash)
	if err != nil {
		return nil, ErrSignatureRecoverFailed
	}

	uncompressed := pub.SerializeUncompressed()
	return uncompressed[1:], nil
}

// RecoverSigner recovers the 20-byte keccak-based address (the Payout
// quorum's validator identity) that produced sig over hash.
func RecoverSigner(hash []byte, sig []byte) (Address20, error) {
	pub, err := RecoverPubkey(hash, sig)
	if err != nil {
		return Address20{}, err
	}
	digest := Keccak256(pub)
	var addr Address20
	copy(addr[:], digest[12:32])
	return addr, nil
}

// normalizeRecoveryID maps a signature's trailing V byte to the raw
// recovery id (0 or 1) secp256k1 recovery needs.
func normalizeRecoveryID(v byte) (byte, error) {
	switch {
	case v == 0 || v == 1:
		return v, nil
	case v == 27 || v == 28:
		return v - 27, nil
	default:
		return 0, errors.New("bridgecrypto: invalid recovery id")
	}
}

// Address20 is the 20-byte low bytes of keccak256(uncompressed_pubkey).
// Defined here (rather than imported from cell) so bridgecrypto has no
// dependency on the cell package; cell.Address is bit-for-bit compatible
// and callers convert with a plain cast.
type Address20 [20]byte
