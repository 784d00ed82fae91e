package foundry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRetriever plays back a fixed status sequence, repeating the final
// status once the script runs out.
type scriptedRetriever struct {
	statuses []VectorStoreStatus
	calls    int
}

func (r *scriptedRetriever) RetrieveVectorStore(_ context.Context, id string) (VectorStore, error) {
	i := r.calls
	if i >= len(r.statuses) {
		i = len(r.statuses) - 1
	}
	r.calls++
	return VectorStore{ID: id, Status: r.statuses[i]}, nil
}

func fastPoll(o *AwaitOptions) { o.Interval = time.Millisecond }

func TestAwaitReady_CompletesAfterScriptedPolls(t *testing.T) {
	src := &scriptedRetriever{statuses: []VectorStoreStatus{
		VectorStoreInProgress, VectorStoreInProgress, VectorStoreCompleted,
	}}

	vs, err := AwaitReady(context.Background(), src, "vs_1", fastPoll)
	require.NoError(t, err)
	assert.Equal(t, VectorStoreCompleted, vs.Status)
	assert.Equal(t, 3, src.calls)
}

func TestAwaitReady_FailedStatus(t *testing.T) {
	src := &scriptedRetriever{statuses: []VectorStoreStatus{
		VectorStoreInProgress, VectorStoreFailed,
	}}

	_, err := AwaitReady(context.Background(), src, "vs_1", fastPoll)
	require.ErrorIs(t, err, ErrVectorStoreFailed)
	assert.Equal(t, 2, src.calls)
}

func TestAwaitReady_PollBound(t *testing.T) {
	src := &scriptedRetriever{statuses: []VectorStoreStatus{VectorStoreInProgress}}

	_, err := AwaitReady(context.Background(), src, "vs_1", func(o *AwaitOptions) {
		o.Interval = time.Millisecond
		o.MaxPolls = 3
	})
	require.ErrorIs(t, err, ErrProvisioningTimeout)
	assert.Equal(t, 3, src.calls)
}

func TestAwaitReady_ContextCancellation(t *testing.T) {
	src := &scriptedRetriever{statuses: []VectorStoreStatus{VectorStoreInProgress}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AwaitReady(ctx, src, "vs_1", func(o *AwaitOptions) { o.Interval = time.Minute })
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, src.calls)
}
