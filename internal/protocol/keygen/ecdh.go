package keygen

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

// SharedSecret computes the Diffie-Hellman shared secret between kp and a
// peer's public point: the x coordinate of d * Q_peer. Both sides of an
// exchange arrive at the same value.
func SharedSecret(group curves.Group, kp *KeyPair, peer curves.Point) (*big.Int, error) {
	if kp == nil || kp.private == nil {
		return nil, ecc.ErrUninitializedKey
	}
	if err := ValidatePublicKey(group, peer); err != nil {
		return nil, errors.WithMessage(err, "ecdh peer key")
	}

	s, err := group.Multiply(kp.private, peer)
	if err != nil {
		return nil, errors.WithMessage(err, "ecdh")
	}
	if s.IsIdentity() {
		return nil, errors.Wrap(ecc.ErrInvalidPublicKey, "shared point is the identity")
	}
	return s.X(), nil
}
