package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/debtbook/internal/storage"
	"github.com/mmynk/debtbook/internal/storage/storagetest"
)

func TestMemoryStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return New()
	})
}

func TestMemoryStoreDoesNotShareSlices(t *testing.T) {
	ctx := context.Background()
	s := New()

	l := storagetest.SampleLedger()
	require.NoError(t, s.SaveLedger(ctx, l))
	l.People[0].Name = "changed after save"

	got, err := s.LoadLedger(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Zed", got.People[0].Name)

	got.People[0].Name = "changed after load"
	again, err := s.LoadLedger(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Zed", again.People[0].Name)
}
