package keygen

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

// GenerateKeypair draws a private scalar uniformly from [1, n-1] and derives
// its public point. A nil reader means crypto/rand.Reader.
func GenerateKeypair(group curves.Group, rand io.Reader) (*KeyPair, error) {
	d, err := group.NewScalar(rand)
	if err != nil {
		return nil, errors.WithMessage(err, "keygen")
	}
	return NewKeyPair(group, d)
}

// NewKeyPair derives the key pair for an externally supplied private scalar.
func NewKeyPair(group curves.Group, private *big.Int) (*KeyPair, error) {
	if private == nil {
		return nil, ecc.ErrUninitializedKey
	}
	if private.Sign() <= 0 || private.Cmp(group.Order()) >= 0 {
		return nil, errors.Wrap(ecc.ErrInvalidPrivateKey, "private scalar outside [1, n-1]")
	}

	d := new(big.Int).Set(private)
	q, err := group.ScalarBaseMult(d)
	if err != nil {
		return nil, errors.WithMessage(err, "deriving public key")
	}
	if q.IsIdentity() {
		// Only possible when n is not the order of G.
		return nil, errors.Wrap(ecc.ErrInvalidPrivateKey, "public key is the identity")
	}

	return &KeyPair{
		private: d,
		public:  q,
	}, nil
}

// Validate checks that the public point still equals private * G.
func (kp *KeyPair) Validate(group curves.Group) error {
	if kp == nil || kp.private == nil {
		return ecc.ErrUninitializedKey
	}
	q, err := group.ScalarBaseMult(kp.private)
	if err != nil {
		return err
	}
	if !q.Equal(kp.public) {
		return errors.Wrap(ecc.ErrInvalidPublicKey, "public key does not match private scalar")
	}
	return nil
}

// ValidatePublicKey checks that q is a non-identity point of the curve with
// reduced coordinates.
func ValidatePublicKey(group curves.Group, q curves.Point) error {
	if q.IsIdentity() {
		return errors.Wrap(ecc.ErrInvalidPublicKey, "point at infinity")
	}
	if !group.IsOnCurve(q) {
		return errors.Wrapf(ecc.ErrInvalidPublicKey, "%s is not on %s", q, group.Name())
	}
	return nil
}
