package curves

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Curve is a short Weierstrass curve y^2 = x^3 + Ax + B over GF(p) together
// with a base point G of order n. Domain parameters never change after
// construction, so a Curve is safe for concurrent use.
type Curve struct {
	name string
	a, b *big.Int
	p    *big.Int
	n    *big.Int
	g    Point
}

var _ Group = (*Curve)(nil)

// New returns a curve for the given domain parameters. Only structural
// problems (missing values, modulus or order below 2) are rejected; use
// Validate for the full consistency check.
func New(name string, a, b, p, n *big.Int, g Point) (*Curve, error) {
	if a == nil || b == nil || p == nil || n == nil {
		return nil, errors.Wrap(ecc.ErrInvalidParams, "missing coefficient, modulus or order")
	}
	if p.Cmp(two) < 0 || n.Cmp(two) < 0 {
		return nil, errors.Wrap(ecc.ErrInvalidParams, "modulus and order must be at least 2")
	}
	if g.IsIdentity() {
		return nil, errors.Wrap(ecc.ErrInvalidParams, "base point is the identity")
	}
	return &Curve{
		name: name,
		a:    new(big.Int).Set(a),
		b:    new(big.Int).Set(b),
		p:    new(big.Int).Set(p),
		n:    new(big.Int).Set(n),
		g:    g,
	}, nil
}

// NewValidated is New followed by Validate.
func NewValidated(name string, a, b, p, n *big.Int, g Point) (*Curve, error) {
	c, err := New(name, a, b, p, n, g)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Curve) Name() string {
	return c.name
}

func (c *Curve) A() *big.Int { return new(big.Int).Set(c.a) }

func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }

func (c *Curve) Order() *big.Int {
	return new(big.Int).Set(c.n)
}

func (c *Curve) Modulus() *big.Int {
	return new(big.Int).Set(c.p)
}

func (c *Curve) Generator() Point {
	return c.g
}

// NewScalar draws a uniformly random scalar in [1, n-1].
// A nil reader means crypto/rand.Reader.
func (c *Curve) NewScalar(r io.Reader) (*big.Int, error) {
	if r == nil {
		r = rand.Reader
	}
	// Generate random integer in [0, n-2], then shift by one
	bound := new(big.Int).Sub(c.n, one)
	k, err := rand.Int(r, bound)
	if err != nil {
		return nil, errors.Wrap(err, "drawing random scalar")
	}
	return k.Add(k, one), nil
}

// Negate returns -p.
func (c *Curve) Negate(p Point) Point {
	return p.Negate(c.p).Mod(c.p)
}

// Add returns p1 + p2 under the group law. Inputs are compared after
// reduction mod p, so the identity and doubling cases are recognised for
// unreduced coordinates too. An ErrUndefinedInverse error means at least
// one input is not a point of this curve.
func (c *Curve) Add(p1, p2 Point) (Point, error) {
	if p1.IsIdentity() {
		return p2, nil
	}
	if p2.IsIdentity() {
		return p1, nil
	}

	a, b := p1.Mod(c.p), p2.Mod(c.p)

	// P + (-P) = O
	if a.Equal(c.Negate(b)) {
		return Identity(), nil
	}

	var num, den *big.Int
	if a.Equal(b) {
		// (3x^2 + A) / 2y
		num = new(big.Int).Mul(a.x, a.x)
		num.Mul(num, three)
		num.Add(num, c.a)
		den = new(big.Int).Lsh(a.y, 1)
	} else {
		// (y2 - y1) / (x2 - x1)
		num = new(big.Int).Sub(b.y, a.y)
		den = new(big.Int).Sub(b.x, a.x)
	}

	inv, err := ModInverse(den, c.p)
	if err != nil {
		return Point{}, errors.WithMessagef(err, "adding %s and %s", a, b)
	}
	lambda := num.Mul(num, inv)
	lambda.Mod(lambda, c.p)

	x := new(big.Int).Mul(lambda, lambda)
	x.Sub(x, a.x)
	x.Sub(x, b.x)
	x.Mod(x, c.p)

	y := new(big.Int).Sub(a.x, x)
	y.Mul(y, lambda)
	y.Sub(y, a.y)
	y.Mod(y, c.p)

	return Point{x: x, y: y, affine: true}, nil
}

// Double returns p + p.
func (c *Curve) Double(p Point) (Point, error) {
	return c.Add(p, p)
}

// Multiply computes k * p by double-and-add, scanning k from the least
// significant bit. k = 0 yields the identity.
func (c *Curve) Multiply(k *big.Int, p Point) (Point, error) {
	if k == nil || k.Sign() < 0 {
		return Point{}, errors.Wrapf(ecc.ErrNegativeScalar, "scalar %v", k)
	}

	q := Identity()
	addend := p
	bits := k.BitLen()
	for i := 0; i < bits; i++ {
		var err error
		if k.Bit(i) == 1 {
			if q, err = c.Add(q, addend); err != nil {
				return Point{}, err
			}
		}
		// The doubling after the top bit would be discarded.
		if i+1 < bits {
			if addend, err = c.Add(addend, addend); err != nil {
				return Point{}, err
			}
		}
	}
	return q.Mod(c.p), nil
}

// ScalarBaseMult computes k * G.
func (c *Curve) ScalarBaseMult(k *big.Int) (Point, error) {
	return c.Multiply(k, c.g)
}

// IsOnCurve reports whether p is affine, has coordinates in [0, p) and
// satisfies the curve equation. The identity is not on the curve.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.IsIdentity() {
		return false
	}
	if p.x.Sign() < 0 || p.x.Cmp(c.p) >= 0 || p.y.Sign() < 0 || p.y.Cmp(c.p) >= 0 {
		return false
	}

	// y^2
	lhs := new(big.Int).Mul(p.y, p.y)
	lhs.Mod(lhs, c.p)

	// x^3 + Ax + B
	rhs := new(big.Int).Mul(p.x, p.x)
	rhs.Add(rhs, c.a)
	rhs.Mul(rhs, p.x)
	rhs.Add(rhs, c.b)
	rhs.Mod(rhs, c.p)

	return lhs.Cmp(rhs) == 0
}

// Validate checks the domain parameters: p and n are (probable) primes,
// A and B are reduced, the curve is non-singular, G lies on the curve and
// n * G is the identity.
func (c *Curve) Validate() error {
	if !c.p.ProbablyPrime(20) {
		return errors.Wrap(ecc.ErrInvalidParams, "field modulus is not prime")
	}
	if !c.n.ProbablyPrime(20) {
		return errors.Wrap(ecc.ErrInvalidParams, "base point order is not prime")
	}
	if c.a.Sign() < 0 || c.a.Cmp(c.p) >= 0 || c.b.Sign() < 0 || c.b.Cmp(c.p) >= 0 {
		return errors.Wrap(ecc.ErrInvalidParams, "coefficients not reduced mod p")
	}
	if c.discriminant().Sign() == 0 {
		return errors.Wrap(ecc.ErrInvalidParams, "curve is singular")
	}
	if !c.IsOnCurve(c.g) {
		return errors.Wrap(ecc.ErrInvalidParams, "base point is not on the curve")
	}
	ng, err := c.ScalarBaseMult(c.n)
	if err != nil {
		return errors.Wrapf(ecc.ErrInvalidParams, "computing n * G: %v", err)
	}
	if !ng.IsIdentity() {
		return errors.Wrap(ecc.ErrInvalidParams, "n * G is not the identity")
	}
	return nil
}

// discriminant returns 4A^3 + 27B^2 mod p.
func (c *Curve) discriminant() *big.Int {
	a3 := new(big.Int).Exp(c.a, three, c.p)
	a3.Lsh(a3, 2)
	b2 := new(big.Int).Mul(c.b, c.b)
	b2.Mul(b2, big.NewInt(27))
	d := a3.Add(a3, b2)
	return d.Mod(d, c.p)
}

func (c *Curve) String() string {
	return fmt.Sprintf("y^2 = x^3 + %sx + %s (mod %s)", c.a, c.b, c.p)
}

// ModInverse returns a^-1 mod m. It fails with ErrUndefinedInverse when a
// is congruent to zero or otherwise not invertible.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	r := new(big.Int).Mod(a, m)
	if r.Sign() == 0 {
		return nil, errors.Wrapf(ecc.ErrUndefinedInverse, "%s mod %s", a, m)
	}
	inv := new(big.Int).ModInverse(r, m)
	if inv == nil {
		return nil, errors.Wrapf(ecc.ErrUndefinedInverse, "%s mod %s", a, m)
	}
	return inv, nil
}
