package sign

import (
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/protocol/keygen"
)

// VerifyDetailed checks sig against the public point pub and the
// hex-encoded digest, distinguishing malformed input from signatures that
// are well-formed but wrong.
func VerifyDetailed(group curves.Group, sig *Signature, pub curves.Point, digestHex string, opts ...Option) Result {
	if sig == nil || sig.R == nil || sig.S == nil {
		return malformed("missing signature component", nil)
	}

	n := group.Order()
	if !inRange(sig.R, n) {
		return malformed("r outside [1, n-1]", nil)
	}
	if !inRange(sig.S, n) {
		return malformed("s outside [1, n-1]", nil)
	}

	z, err := newOptions(opts).digestToInt(digestHex, n)
	if err != nil {
		return malformed("unparsable digest", err)
	}
	if err := keygen.ValidatePublicKey(group, pub); err != nil {
		return malformed("bad public key", err)
	}

	w, err := curves.ModInverse(sig.S, n)
	if err != nil {
		return malformed("s not invertible", err)
	}

	u1 := new(big.Int).Mul(z, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, n)

	p1, err := group.ScalarBaseMult(u1)
	if err != nil {
		return invalid("computing u1 * G", err)
	}
	p2, err := group.Multiply(u2, pub)
	if err != nil {
		return invalid("computing u2 * Q", err)
	}
	p, err := group.Add(p1, p2)
	if err != nil {
		return invalid("computing u1 * G + u2 * Q", err)
	}
	if p.IsIdentity() {
		return invalid("u1 * G + u2 * Q is the identity", nil)
	}

	v := p.X()
	v.Mod(v, n)
	if v.Cmp(sig.R) != 0 {
		return invalid("x coordinate does not match r", nil)
	}
	return Result{Status: StatusValid}
}

// Check is the fail-closed boolean form of VerifyDetailed.
func Check(group curves.Group, sig *Signature, pub curves.Point, digestHex string, opts ...Option) bool {
	return VerifyDetailed(group, sig, pub, digestHex, opts...).Valid()
}

// Verify returns nil for a valid signature and an *ecc.VerifyError
// otherwise. Every failure matches ecc.ErrInvalidSignature; use
// VerifyError.Malformed or VerifyDetailed to tell the cases apart.
func Verify(group curves.Group, sig *Signature, pub curves.Point, digestHex string, opts ...Option) error {
	res := VerifyDetailed(group, sig, pub, digestHex, opts...)
	if res.Valid() {
		return nil
	}
	return res.Err
}

// inRange reports whether 1 <= v <= n-1.
func inRange(v, n *big.Int) bool {
	return v.Sign() > 0 && v.Cmp(n) < 0
}
