package curves

import "sync"

// p192Params is the NIST P-192 domain from FIPS 186-3, appendix D.1.2.1.
// A is p - 3.
var p192Params = Params{
	Name: "P-192",
	P:    "fffffffffffffffffffffffffffffffeffffffffffffffff",
	N:    "ffffffffffffffffffffffff99def836146bc9b1b4d22831",
	A:    "fffffffffffffffffffffffffffffffefffffffffffffffc",
	B:    "64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1",
	Gx:   "188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012",
	Gy:   "07192b95ffc8da78631011ed6b24cdd573f977a11e794811",
}

var (
	p192     *Curve
	p192Once sync.Once
)

// P192 returns the P-192 reference curve.
func P192() *Curve {
	p192Once.Do(func() {
		c, err := p192Params.Curve()
		if err != nil {
			panic(err)
		}
		p192 = c
	})
	return p192
}
