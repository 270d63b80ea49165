package secret_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econmap/internal/secret"
)

// mapStore is an in-memory SecretStore.
type mapStore map[string][]byte

func (m mapStore) Get(key string) ([]byte, error)      { return m[key], nil }
func (m mapStore) Set(key string, value []byte) error { m[key] = value; return nil }
func (m mapStore) Delete(key string) error            { delete(m, key); return nil }

func TestEnvName(t *testing.T) {
	assert.Equal(t, "ECONMAP_SECRET_MIRROR_DB", secret.EnvName("mirror-db"))
	assert.Equal(t, "ECONMAP_SECRET_PG_PASS_2", secret.EnvName("pg.pass 2"))
}

func TestEnvStore_Get(t *testing.T) {
	t.Setenv("ECONMAP_SECRET_MIRROR_DB", "hunter2")
	s := secret.NewEnvStore()

	v, err := s.Get("mirror-db")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", string(v))

	v, err = s.Get("absent")
	require.NoError(t, err)
	assert.Empty(t, v)

	assert.ErrorIs(t, s.Set("k", []byte("v")), secret.ErrReadOnly)
}

func TestChain_FirstNonEmptyWins(t *testing.T) {
	env := &secret.EnvStore{Getenv: func(name string) string {
		if name == "ECONMAP_SECRET_A" {
			return "from-env"
		}
		return ""
	}}
	fallback := mapStore{"a": []byte("from-map"), "b": []byte("only-map")}
	chain := secret.Chain{env, fallback}

	v, err := secret.Lookup(chain, "a")
	require.NoError(t, err)
	assert.Equal(t, "from-env", v)

	v, err = secret.Lookup(chain, "b")
	require.NoError(t, err)
	assert.Equal(t, "only-map", v)

	require.NoError(t, chain.Set("c", []byte("new")))
	assert.Equal(t, "new", string(fallback["c"]))
	require.NoError(t, chain.Delete("c"))
	assert.NotContains(t, fallback, "c")
}

func TestLookup_EmptyKey(t *testing.T) {
	v, err := secret.Lookup(mapStore{}, "")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestChain_EmptyIsReadOnly(t *testing.T) {
	assert.ErrorIs(t, secret.Chain{}.Set("k", nil), secret.ErrReadOnly)
}
