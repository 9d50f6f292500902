package insight

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Veraticus/pennywise/internal/model"
)

// DefaultTimeout bounds an insight request. The remote service has no
// specified latency; without a deadline a stalled request would pin the
// in-flight slot forever.
const DefaultTimeout = 60 * time.Second

// Requester wraps a Client with the application's call policy: the snapshot
// is captured at invocation time, at most one request is in flight, and
// every request runs under a bounded deadline. Failed requests are never
// retried automatically; retry is the user's call.
type Requester struct {
	client   Client
	timeout  time.Duration
	inFlight atomic.Bool
}

// NewRequester creates a requester around the given client. A non-positive
// timeout selects DefaultTimeout.
func NewRequester(client Client, timeout time.Duration) *Requester {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Requester{client: client, timeout: timeout}
}

// Request asks the provider for an insight over the given snapshot. A call
// made while another is in flight fails immediately with ErrBusy. Store
// mutations made after the call starts are not observed: the snapshot is
// copied on entry.
func (r *Requester) Request(ctx context.Context, txns []model.Transaction, language string) (model.Insight, error) {
	if !r.inFlight.CompareAndSwap(false, true) {
		return model.Insight{}, ErrBusy
	}
	defer r.inFlight.Store(false)

	snapshot := make([]model.Transaction, len(txns))
	copy(snapshot, txns)

	reqCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	ins, err := r.client.Advise(reqCtx, snapshot, language)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return model.Insight{}, fmt.Errorf("%w after %s", ErrTimeout, r.timeout)
		}
		return model.Insight{}, err
	}
	return ins, nil
}
