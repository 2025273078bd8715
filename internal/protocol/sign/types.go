package sign

import (
	"fmt"
	"io"
	"math/big"

	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

// Signature is an ECDSA signature (r, s). Both components lie in [1, n-1]
// when produced by Sign.
type Signature struct {
	R *big.Int
	S *big.Int
}

func (sig *Signature) String() string {
	if sig == nil {
		return "<nil>"
	}
	return fmt.Sprintf("(%x, %x)", sig.R, sig.S)
}

// Status classifies the outcome of a verification.
// The zero value is StatusInvalid so an unset Result never passes.
type Status int

const (
	// StatusInvalid: well-formed, but the curve equation does not hold.
	StatusInvalid Status = iota
	// StatusMalformed: range violation, bad digest or bad public key.
	StatusMalformed
	// StatusValid: the signature verified.
	StatusValid
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusMalformed:
		return "malformed"
	default:
		return "invalid"
	}
}

// Result is the outcome of VerifyDetailed. Err is nil exactly when Status
// is StatusValid, and is otherwise an *ecc.VerifyError.
type Result struct {
	Status Status
	Err    error
}

// Valid reports whether the signature verified.
func (r Result) Valid() bool {
	return r.Status == StatusValid && r.Err == nil
}

func malformed(reason string, err error) Result {
	return Result{Status: StatusMalformed, Err: ecc.NewVerifyError(reason, true, err)}
}

func invalid(reason string, err error) Result {
	return Result{Status: StatusInvalid, Err: ecc.NewVerifyError(reason, false, err)}
}

const defaultMaxNonceAttempts = 64

type options struct {
	rand        io.Reader
	logger      *zap.Logger
	maxAttempts int
	truncate    bool
}

// Option configures Sign and the verification functions. Only
// WithDigestTruncation affects verification; the rest are ignored there.
type Option func(*options)

// WithRand sets the nonce source. Defaults to crypto/rand.Reader.
func WithRand(r io.Reader) Option {
	return func(o *options) { o.rand = r }
}

// WithLogger sets the logger used for nonce retry events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMaxNonceAttempts bounds how many nonces Sign draws before giving up.
func WithMaxNonceAttempts(n int) Option {
	return func(o *options) { o.maxAttempts = n }
}

// WithDigestTruncation truncates digests wider than the order n to their
// leftmost bitlen(n) bits, as FIPS 186 does. Signer and verifier must agree
// on this setting.
func WithDigestTruncation() Option {
	return func(o *options) { o.truncate = true }
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:      zap.NewNop(),
		maxAttempts: defaultMaxNonceAttempts,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.maxAttempts <= 0 {
		o.maxAttempts = 1
	}
	return o
}
