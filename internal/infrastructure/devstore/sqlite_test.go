package devstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-sync/internal/infrastructure/devstore"
)

func abrir(t *testing.T) *devstore.Store {
	t.Helper()
	s, err := devstore.Open(filepath.Join(t.TempDir(), "terminal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGet_ClaveAusenteDevuelveVacio(t *testing.T) {
	s := abrir(t)
	v, err := s.Get("requestId")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestSet_UltimaEscrituraGana(t *testing.T) {
	s := abrir(t)
	require.NoError(t, s.Set("requestId", "req-1"))
	require.NoError(t, s.Set("requestId", "req-2"))

	v, err := s.Get("requestId")
	require.NoError(t, err)
	assert.Equal(t, "req-2", v)
}

func TestRemove_EsIdempotente(t *testing.T) {
	s := abrir(t)
	require.NoError(t, s.Set("selectedAreaId", "area-cocina"))
	require.NoError(t, s.Remove("selectedAreaId"))
	require.NoError(t, s.Remove("selectedAreaId"))

	v, err := s.Get("selectedAreaId")
	require.NoError(t, err)
	assert.Empty(t, v)
}

// El archivo sobrevive entre aperturas: lo persistido se relee tal cual.
func TestOpen_PersisteEntreSesiones(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terminal.db")

	s, err := devstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("requestId", "req-9"))
	require.NoError(t, s.Close())

	s2, err := devstore.Open(path)
	require.NoError(t, err)
	defer s2.Close()

	v, err := s2.Get("requestId")
	require.NoError(t, err)
	assert.Equal(t, "req-9", v)
}
