package gdebug

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gordian-engine/gdbc/internal/gtest"
	"github.com/stretchr/testify/require"
)

// fakeQuery answers from a list of results, repeating the last one.
type fakeQuery struct {
	mu      sync.Mutex
	results []bool
	errs    []error
}

func (q *fakeQuery) query() (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	res, err := q.results[0], q.errs[0]
	if len(q.results) > 1 {
		q.results, q.errs = q.results[1:], q.errs[1:]
	}
	return res, err
}

func TestWatch_changes(t *testing.T) {
	t.Parallel()

	transient := errors.New("transient")
	q := &fakeQuery{
		results: []bool{false, false, true, true, false, false},
		errs:    []error{nil, nil, nil, transient, nil, nil},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan Change)
	errCh := make(chan error, 1)
	go func() {
		errCh <- watch(ctx, gtest.NewLogger(t), time.Millisecond, q.query, out)
	}()

	require.False(t, gtest.ReceiveSoon(t, out).Attached)
	require.True(t, gtest.ReceiveSoon(t, out).Attached)
	// The transient error keeps the previous state, so the next change is to false.
	require.False(t, gtest.ReceiveSoon(t, out).Attached)

	cancel()
	require.ErrorIs(t, gtest.ReceiveSoon(t, errCh), context.Canceled)
}

func TestWatch_unavailable(t *testing.T) {
	t.Parallel()

	q := &fakeQuery{results: []bool{false}, errs: []error{ErrDetectionUnavailable}}

	err := watch(context.Background(), gtest.NewLogger(t), time.Millisecond, q.query, make(chan Change))
	require.ErrorIs(t, err, ErrDetectionUnavailable)
}

func TestWatch_canceledBeforeInitialSend(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancelCause(context.Background())
	stop := errors.New("stop")
	cancel(stop)

	q := &fakeQuery{results: []bool{true}, errs: []error{nil}}

	// Nobody receives from out.
	err := watch(ctx, gtest.NewLogger(t), time.Millisecond, q.query, make(chan Change))
	require.ErrorIs(t, err, stop)
}
