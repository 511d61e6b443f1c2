package framework

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type runFunc func(context.Context) error

func (f runFunc) Run(ctx context.Context) error { return f(ctx) }

func TestRunnerAggregatesErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	errA, errB := errors.New("a"), errors.New("b")
	r := NewRunner().Go(
		NamedRun("a", runFunc(func(context.Context) error { return errA })),
		runFunc(func(context.Context) error { return nil }),
		NamedRun("b", runFunc(func(context.Context) error { return errB })),
	)
	err := r.Wait()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errA))
	assert.True(t, errors.Is(err, errB))
}

func TestRunnerCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunnerWith(ctx).Go(runFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))
	cancel()
	assert.NoError(t, r.Wait())
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestRunWithContextCloser(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	stop := make(chan struct{})
	var closed int
	closer := closerFunc(func() error {
		closed++
		close(stop)
		return nil
	})
	cancel()
	err := RunWithContextCloser(ctx, closer, func() error {
		<-stop
		return nil
	})
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, 1, closed)

	closed = 0
	err = RunWithContextCloser(context.Background(), closerFunc(func() error {
		closed++
		return nil
	}), func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, 1, closed)
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	assert.NoError(t, errs.Add(nil).Aggregate())
	errs.Add(errors.New("x"), nil, errors.New("y"))
	assert.Equal(t, "Multiple errors:\nx\ny", errs.Aggregate().Error())
}
