package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bibbox-fbs/internal/domain"
)

func TestRunFBSProgressCancelsCall(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- runFBSProgress(ctx, &bytes.Buffer{}, "Checkout", 2, func(ctx context.Context, progress fbsProgress) error {
			progress.Started("5010")
			close(started)
			<-ctx.Done()
			return ctx.Err()
		})
	}()

	<-started
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("progress did not stop after cancel")
	}
}

func TestRunFBSProgressReturnsCallError(t *testing.T) {
	want := errors.New("fbs unavailable")

	err := runFBSProgress(context.Background(), &bytes.Buffer{}, "Renew", 1, func(_ context.Context, progress fbsProgress) error {
		progress.Started("5010")
		progress.Finished(domain.CirculationResult{ItemIdentifier: "5010", ScreenMessage: "no"})
		return want
	})
	require.ErrorIs(t, err, want)
}

func TestCheckoutShowsItemProgress(t *testing.T) {
	home := t.TempDir()
	fbs, endpoint := newFakeFBS(t)
	fbs.delay = 150 * time.Millisecond
	require.NoError(t, writeConfigFixture(home, endpoint))

	_, stderr, err := executeCLI(t, home, "checkout", "5010", "5011", "--patron", "1234567890", "--pin", validPin)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Checkout 2/2 5011")
}
