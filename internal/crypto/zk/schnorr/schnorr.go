package schnorr

import (
	"errors"
	"io"
	"math/big"

	sha256 "github.com/minio/sha256-simd"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
)

// Proof represents a Schnorr proof of knowledge of a discrete logarithm.
// Proves knowledge of x such that X = x * G.
type Proof struct {
	R curves.Point // Commitment R = k * G
	S *big.Int     // Response s = k + e * x
}

// Prove generates a Schnorr proof for the secret x, public key X = x*G.
// A nil reader means crypto/rand.Reader.
func Prove(group curves.Group, x *big.Int, X curves.Point, rand io.Reader) (*Proof, error) {
	if x == nil || X.IsIdentity() {
		return nil, errors.New("schnorr: inputs cannot be nil")
	}
	if !group.IsOnCurve(X) {
		return nil, errors.New("schnorr: public key is not on the curve")
	}

	n := group.Order()

	// 1. Generate random nonce k
	k, err := group.NewScalar(rand)
	if err != nil {
		return nil, err
	}

	// 2. Compute R = k * G
	R, err := group.ScalarBaseMult(k)
	if err != nil {
		return nil, err
	}
	if R.IsIdentity() {
		return nil, errors.New("schnorr: commitment is the identity")
	}

	// 3. Compute challenge e = H(G, X, R)
	e := challenge(group, X, R)

	// 4. Compute s = k + e * x mod n
	s := new(big.Int).Mul(e, x)
	s.Add(s, k)
	s.Mod(s, n)

	return &Proof{
		R: R,
		S: s,
	}, nil
}

// Verify checks the validity of the Schnorr proof for public key X.
func (p *Proof) Verify(group curves.Group, X curves.Point) bool {
	if p == nil || p.S == nil || !group.IsOnCurve(p.R) || !group.IsOnCurve(X) {
		return false
	}

	// Check if s is in [0, n-1]
	if p.S.Sign() < 0 || p.S.Cmp(group.Order()) >= 0 {
		return false
	}

	e := challenge(group, X, p.R)

	// s*G = R + e*X
	lhs, err := group.ScalarBaseMult(p.S)
	if err != nil {
		return false
	}
	eX, err := group.Multiply(e, X)
	if err != nil {
		return false
	}
	rhs, err := group.Add(p.R, eX)
	if err != nil {
		return false
	}
	return lhs.Equal(rhs)
}

// challenge computes H(G, X, R) mod n over fixed-width coordinates.
func challenge(group curves.Group, X, R curves.Point) *big.Int {
	size := (group.Modulus().BitLen() + 7) / 8
	buf := make([]byte, size)

	h := sha256.New()
	for _, pt := range []curves.Point{group.Generator(), X, R} {
		h.Write(pt.X().FillBytes(buf))
		h.Write(pt.Y().FillBytes(buf))
	}

	e := new(big.Int).SetBytes(h.Sum(nil))
	return e.Mod(e, group.Order())
}
