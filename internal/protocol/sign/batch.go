package sign

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/protocol/keygen"
	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

// BatchSignResult holds the result of a batch signing operation.
// Signatures[i] signs Digests[i].
type BatchSignResult struct {
	Digests    []string
	Signatures []*Signature
}

// SignBatch signs multiple digests with the same key pair. Every signature
// uses its own fresh nonce. The first failure aborts the batch.
func SignBatch(group curves.Group, kp *keygen.KeyPair, digests []string, opts ...Option) (*BatchSignResult, error) {
	if len(digests) == 0 {
		return nil, errors.Wrap(ecc.ErrInvalidDigest, "empty batch")
	}

	res := &BatchSignResult{
		Digests:    append([]string(nil), digests...),
		Signatures: make([]*Signature, 0, len(digests)),
	}
	for i, h := range digests {
		sig, err := Sign(group, kp, h, opts...)
		if err != nil {
			return nil, errors.WithMessagef(err, "batch item %d", i)
		}
		res.Signatures = append(res.Signatures, sig)
	}
	return res, nil
}

// VerifyBatch verifies every signature of a batch against pub concurrently.
// The returned slice is in batch order. Per-item failures are reported in
// the results, never as the returned error.
func VerifyBatch(group curves.Group, batch *BatchSignResult, pub curves.Point, opts ...Option) ([]Result, error) {
	if batch == nil || len(batch.Digests) != len(batch.Signatures) {
		return nil, errors.New("batch digests and signatures differ in length")
	}

	results := make([]Result, len(batch.Digests))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range batch.Digests {
		g.Go(func() error {
			results[i] = VerifyDetailed(group, batch.Signatures[i], pub, batch.Digests[i], opts...)
			return nil
		})
	}
	return results, g.Wait()
}
