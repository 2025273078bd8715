package curves

import (
	"io"
	"math/big"
)

// Group defines the elliptic curve group operations needed by the
// keygen and sign protocols.
type Group interface {
	// Name returns the name of the curve.
	Name() string

	// Order returns the order of the base point (n).
	Order() *big.Int

	// Modulus returns the field modulus (p).
	Modulus() *big.Int

	// Generator returns the base point G.
	Generator() Point

	// NewScalar draws a uniformly random scalar in [1, n-1].
	NewScalar(rand io.Reader) (*big.Int, error)

	// Add returns p + q under the group law.
	Add(p, q Point) (Point, error)

	// Multiply computes k * p.
	Multiply(k *big.Int, p Point) (Point, error)

	// ScalarBaseMult computes k * G.
	ScalarBaseMult(k *big.Int) (Point, error)

	// IsOnCurve reports whether p is an affine point of the curve with
	// coordinates in [0, p).
	IsOnCurve(p Point) bool
}
