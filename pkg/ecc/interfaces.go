package ecc

import "errors"

// Common errors returned by the curve and protocol packages.
var (
	// ErrInvalidSignature is the single fail-closed outcome of verification.
	// Both malformed and cryptographically invalid signatures match it.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrUndefinedInverse is returned when a modular inverse is requested
	// for an operand congruent to zero. It indicates a malformed point or
	// a logic error below the identity guards and is never retried.
	ErrUndefinedInverse = errors.New("modular inverse undefined")

	// ErrUninitializedKey is returned when signing without a private key.
	ErrUninitializedKey = errors.New("uninitialized key")

	// ErrNonceExhausted is returned when every nonce drawn during signing
	// was degenerate.
	ErrNonceExhausted = errors.New("no usable nonce found")

	ErrInvalidPublicKey  = errors.New("invalid public key")
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidDigest     = errors.New("invalid digest")
	ErrNegativeScalar    = errors.New("negative scalar")
	ErrInvalidParams     = errors.New("invalid domain parameters")
)
