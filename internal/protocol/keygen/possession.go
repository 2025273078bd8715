package keygen

import (
	"io"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/zk/schnorr"
	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

// ProvePossession returns a Schnorr proof that the holder of kp knows the
// private scalar behind kp.Public().
func (kp *KeyPair) ProvePossession(group curves.Group, rand io.Reader) (*schnorr.Proof, error) {
	if kp == nil || kp.private == nil {
		return nil, ecc.ErrUninitializedKey
	}
	return schnorr.Prove(group, kp.private, kp.public, rand)
}

// VerifyPossession checks a proof produced by ProvePossession.
func VerifyPossession(group curves.Group, pub curves.Point, proof *schnorr.Proof) bool {
	return proof.Verify(group, pub)
}
