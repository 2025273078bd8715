package curves

import (
	"fmt"
	"math/big"
)

// Point represents a point on a short Weierstrass curve.
// It is either the identity (point at infinity) or an affine pair (x, y).
// The zero value is the identity. Points are immutable: every operation
// returns a fresh Point and accessors hand out copies.
type Point struct {
	x, y   *big.Int
	affine bool
}

// NewPoint returns the affine point (x, y). Coordinates are copied and are
// not range checked; curve membership is the caller's concern.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x:      new(big.Int).Set(x),
		y:      new(big.Int).Set(y),
		affine: true,
	}
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return !p.affine
}

// X returns a copy of the x coordinate, or nil for the identity.
func (p Point) X() *big.Int {
	if !p.affine {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate, or nil for the identity.
func (p Point) Y() *big.Int {
	if !p.affine {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether p and q are both the identity or both affine with
// equal coordinates. No modular reduction is applied.
func (p Point) Equal(q Point) bool {
	if p.affine != q.affine {
		return false
	}
	if !p.affine {
		return true
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// Negate returns the additive inverse (x, m - y) for field modulus m.
func (p Point) Negate(m *big.Int) Point {
	if !p.affine {
		return p
	}
	return Point{
		x:      new(big.Int).Set(p.x),
		y:      new(big.Int).Sub(m, p.y),
		affine: true,
	}
}

// Mod reduces both coordinates into [0, m).
func (p Point) Mod(m *big.Int) Point {
	if !p.affine {
		return p
	}
	return Point{
		x:      new(big.Int).Mod(p.x, m),
		y:      new(big.Int).Mod(p.y, m),
		affine: true,
	}
}

func (p Point) String() string {
	if !p.affine {
		return "{inf}"
	}
	return fmt.Sprintf("{%s, %s}", p.x, p.y)
}
