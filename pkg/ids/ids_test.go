package ids_test

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/pkg/ids"
)

func TestNew_UnicosYOrdenados(t *testing.T) {
	prev := ""
	seen := make(map[string]struct{}, 500)
	for i := 0; i < 500; i++ {
		id := ids.New()
		require.Len(t, id, 26)
		_, dup := seen[id]
		require.False(t, dup, "id repetido %s", id)
		seen[id] = struct{}{}
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestAt_ConservaLaMarcaDeTiempo(t *testing.T) {
	ts := time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)
	id, err := ulid.Parse(ids.At(ts))
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(ts), id.Time())
}
