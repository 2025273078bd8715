package keygen

import (
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
)

// KeyPair is a Diffie-Hellman key pair: a private scalar d in [1, n-1] and
// its public point Q = d * G. It is immutable; accessors return copies, so
// one KeyPair may be shared by concurrent signers.
type KeyPair struct {
	private *big.Int
	public  curves.Point
}

// Private returns a copy of the private scalar, or nil for an
// uninitialized key pair.
func (kp *KeyPair) Private() *big.Int {
	if kp == nil || kp.private == nil {
		return nil
	}
	return new(big.Int).Set(kp.private)
}

// Public returns the public point.
func (kp *KeyPair) Public() curves.Point {
	return kp.public
}
