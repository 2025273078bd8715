package sign

import (
	"math/big"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/protocol/keygen"
	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

// Sign produces an ECDSA signature over a pre-hashed, hex-encoded digest:
//
//	k <- [1, n-1], P = k * G, r = P.x mod n, s = (z + r*d) / k mod n
//
// Nonces that yield P.x = 0, r = 0 or s = 0 are discarded and redrawn, up
// to the configured attempt limit.
func Sign(group curves.Group, kp *keygen.KeyPair, digestHex string, opts ...Option) (*Signature, error) {
	d := kp.Private()
	if d == nil {
		return nil, ecc.ErrUninitializedKey
	}
	o := newOptions(opts)
	n := group.Order()

	z, err := o.digestToInt(digestHex, n)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		k, err := group.NewScalar(o.rand)
		if err != nil {
			return nil, errors.WithMessage(err, "drawing nonce")
		}

		p, err := group.ScalarBaseMult(k)
		if err != nil {
			return nil, errors.WithMessage(err, "computing k * G")
		}
		if p.IsIdentity() || p.X().Sign() == 0 {
			o.logger.Debug("Degenerate nonce, retrying",
				zap.String("curve", group.Name()),
				zap.Int("attempt", attempt),
				zap.String("reason", "P.x is zero"))
			continue
		}

		r := p.X()
		r.Mod(r, n)
		if r.Sign() == 0 {
			o.logger.Debug("Degenerate nonce, retrying",
				zap.String("curve", group.Name()),
				zap.Int("attempt", attempt),
				zap.String("reason", "r is zero"))
			continue
		}

		kInv, err := curves.ModInverse(k, n)
		if err != nil {
			return nil, errors.WithMessage(err, "inverting nonce")
		}

		// s = (z + r*d) * k^-1 mod n
		s := new(big.Int).Mul(r, d)
		s.Add(s, z)
		s.Mul(s, kInv)
		s.Mod(s, n)
		if s.Sign() == 0 {
			o.logger.Debug("Degenerate nonce, retrying",
				zap.String("curve", group.Name()),
				zap.Int("attempt", attempt),
				zap.String("reason", "s is zero"))
			continue
		}

		return &Signature{R: r, S: s}, nil
	}

	o.logger.Warn("Giving up on signature",
		zap.String("curve", group.Name()),
		zap.Int("attempts", o.maxAttempts))
	return nil, errors.Wrapf(ecc.ErrNonceExhausted, "after %d attempts", o.maxAttempts)
}
