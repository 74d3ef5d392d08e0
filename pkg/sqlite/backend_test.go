package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/moracle/pkg/types"
)

func TestNewBackend_RoundTrip(t *testing.T) {
	store := NewBackend()
	require.NoError(t, store.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	defer store.Detach()

	card, err := types.NewCard("Grizzly Bears", "{1}{G}", "Creature — Bear", "", "2", "2", "")
	require.NoError(t, err)
	require.NoError(t, store.ReplaceCards([]types.Card{card}, types.Import{Source: "test"}))

	got, err := store.Find("GRIZZLY BEARS")
	require.NoError(t, err)
	assert.Equal(t, card, got)
}
