package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petquest/internal/storage"
	"petquest/internal/storage/compliance"
)

func TestSQLiteCompliance(t *testing.T) {
	compliance.RunKVComplianceTest(t, func() (storage.KV, func()) {
		path := filepath.Join(t.TempDir(), "test.db")
		kv, err := storage.Open(context.Background(), path)
		require.NoError(t, err)
		return kv, func() { _ = kv.Close() }
	})
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "petquest.db")

	kv, err := storage.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, kv.SetMany(ctx, map[string][]byte{"motivi_points": []byte("420")}))
	require.NoError(t, kv.Close())

	kv, err = storage.Open(ctx, path)
	require.NoError(t, err)
	defer kv.Close()

	v, ok, err := kv.Get(ctx, "motivi_points")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "420", string(v))
}

func TestResolveDBPath(t *testing.T) {
	got, err := storage.ResolveDBPath("/tmp/x.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", got)

	def, err := storage.DefaultDBPath()
	require.NoError(t, err)
	got, err = storage.ResolveDBPath("  ")
	require.NoError(t, err)
	assert.Equal(t, def, got)
}
