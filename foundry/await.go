package foundry

import (
	"context"
	"fmt"
	"time"
)

// VectorStoreRetriever is the single remote query the readiness wait needs.
// *Client implements it; tests script it.
type VectorStoreRetriever interface {
	RetrieveVectorStore(ctx context.Context, id string) (VectorStore, error)
}

// AwaitOptions configure the readiness wait.
type AwaitOptions struct {
	// Interval is the delay between status checks.
	Interval time.Duration
	// MaxPolls bounds the number of status checks. 0 means unbounded, which
	// keeps the calling goroutine blocked for as long as the store stays
	// in_progress.
	MaxPolls int
}

// AwaitReady re-queries the vector store until it reaches a terminal status.
// It returns the store on completed, ErrVectorStoreFailed on failed, and
// ErrProvisioningTimeout if MaxPolls checks pass without a terminal status.
// Context cancellation is honored between polls; the in-flight query itself
// is carried by the same context.
func AwaitReady(ctx context.Context, src VectorStoreRetriever, id string, optFns ...func(o *AwaitOptions)) (VectorStore, error) {
	opts := AwaitOptions{Interval: time.Second}
	for _, fn := range optFns {
		fn(&opts)
	}
	for polls := 1; ; polls++ {
		vs, err := src.RetrieveVectorStore(ctx, id)
		if err != nil {
			return VectorStore{}, err
		}
		if vs.Status.Terminal() {
			if vs.Status == VectorStoreFailed {
				return vs, fmt.Errorf("%w: %s", ErrVectorStoreFailed, id)
			}
			return vs, nil
		}
		if opts.MaxPolls > 0 && polls >= opts.MaxPolls {
			return vs, fmt.Errorf("%w: %s after %d polls", ErrProvisioningTimeout, id, polls)
		}
		select {
		case <-ctx.Done():
			return vs, ctx.Err()
		case <-time.After(opts.Interval):
		}
	}
}
