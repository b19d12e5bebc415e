package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akj2003/GamingHub/internal/game/tictactoe"
	"github.com/akj2003/GamingHub/internal/hub"
	"github.com/akj2003/GamingHub/internal/store"
)

func TestRunCleanupUsesIdleTTL(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Save(context.Background(), hub.NewSession("u", tictactoe.New())))

	w := NewWorker(st, time.Hour, time.Hour)
	assert.Zero(t, w.runCleanup(context.Background()))
	assert.Equal(t, 1, st.Len())

	w.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	assert.Equal(t, 1, w.runCleanup(context.Background()))
	assert.Zero(t, st.Len())
}

func TestStartSweepsPeriodically(t *testing.T) {
	st := store.NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewWorker(st, 10*time.Millisecond, time.Millisecond)
	w.Start(ctx)

	require.NoError(t, st.Save(context.Background(), hub.NewSession("u", tictactoe.New())))
	assert.Eventually(t, func() bool { return st.Len() == 0 }, 2*time.Second, 5*time.Millisecond)
}
