package bridgecrypto

import "golang.org/x/crypto/blake2b"

// Blake2b256 hashes the concatenation of data with 256-bit Blake2b, the
// digest algorithm the deposit-script lock's sighash-all check and its
// pubkey-hash derivation use.
func Blake2b256(data ...[]byte) []byte {
	h, _ := blake2b.New256(nil)
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil)
}

// Blake160 returns the first 20 bytes of Blake2b256(pubkey), the pubkey
// hash format the deposit-script lock's signature-path args encode.
func Blake160(pubkey []byte) Address20 {
	digest := Blake2b256(pubkey)
	var out Address20
	copy(out[:], digest[:20])
	return out
}
