package sign

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

// DigestToInt parses a hex-encoded message digest, with optional 0x
// prefix, as a big-endian integer. Leading zeros do not change the result.
func DigestToInt(digestHex string) (*big.Int, error) {
	z, err := curves.ParseHex(digestHex)
	if err != nil {
		return nil, errors.Wrap(ecc.ErrInvalidDigest, err.Error())
	}
	return z, nil
}

// TruncatedDigestToInt is DigestToInt followed by FIPS 186 truncation:
// a digest wider than the order n keeps only its leftmost bitlen(n) bits.
// The width is that of the encoded digest, so every hex digit counts as
// four bits, leading zeros included.
func TruncatedDigestToInt(digestHex string, n *big.Int) (*big.Int, error) {
	z, err := DigestToInt(digestHex)
	if err != nil {
		return nil, err
	}
	digits := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(digestHex), "0x"), "0X")
	if excess := 4*len(digits) - n.BitLen(); excess > 0 {
		z.Rsh(z, uint(excess))
	}
	return z, nil
}

func (o *options) digestToInt(digestHex string, n *big.Int) (*big.Int, error) {
	if o.truncate {
		return TruncatedDigestToInt(digestHex, n)
	}
	return DigestToInt(digestHex)
}
