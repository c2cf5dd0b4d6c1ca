// Package compliance holds behaviour checks shared by every storage.KV
// implementation.
package compliance

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petquest/internal/storage"
)

// RunKVComplianceTest runs the shared suite. setup returns a fresh, empty
// store and a cleanup func.
func RunKVComplianceTest(t *testing.T, setup func() (storage.KV, func())) {
	t.Helper()
	ctx := context.Background()

	t.Run("MissingKey", func(t *testing.T) {
		kv, cleanup := setup()
		defer cleanup()

		v, ok, err := kv.Get(ctx, "motivi_nope")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("SetManyThenGet", func(t *testing.T) {
		kv, cleanup := setup()
		defer cleanup()

		require.NoError(t, kv.SetMany(ctx, map[string][]byte{
			"motivi_points": []byte("150"),
			"motivi_tasks":  []byte(`[]`),
		}))

		v, ok, err := kv.Get(ctx, "motivi_points")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "150", string(v))

		v, ok, err = kv.Get(ctx, "motivi_tasks")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "[]", string(v))
	})

	t.Run("Overwrite", func(t *testing.T) {
		kv, cleanup := setup()
		defer cleanup()

		require.NoError(t, kv.SetMany(ctx, map[string][]byte{"k": []byte("a")}))
		require.NoError(t, kv.SetMany(ctx, map[string][]byte{"k": []byte("b")}))

		v, ok, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "b", string(v))
	})

	t.Run("EmptySetManyIsNoop", func(t *testing.T) {
		kv, cleanup := setup()
		defer cleanup()

		require.NoError(t, kv.SetMany(ctx, nil))
		keys, err := kv.Keys(ctx)
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("DeleteAndKeys", func(t *testing.T) {
		kv, cleanup := setup()
		defer cleanup()

		require.NoError(t, kv.SetMany(ctx, map[string][]byte{
			"b": []byte("2"),
			"a": []byte("1"),
			"c": []byte("3"),
		}))
		require.NoError(t, kv.Delete(ctx, "b"))
		require.NoError(t, kv.Delete(ctx, "missing"))

		keys, err := kv.Keys(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, keys)
	})

	t.Run("ValuesAreNotAliased", func(t *testing.T) {
		kv, cleanup := setup()
		defer cleanup()

		in := []byte("xyz")
		require.NoError(t, kv.SetMany(ctx, map[string][]byte{"k": in}))
		in[0] = 'Q'

		out, _, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "xyz", string(out))
		out[0] = 'Z'

		again, _, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "xyz", string(again))
	})

	t.Run("ConcurrentWriters", func(t *testing.T) {
		kv, cleanup := setup()
		defer cleanup()

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				key := fmt.Sprintf("k%d", i)
				assert.NoError(t, kv.SetMany(ctx, map[string][]byte{key: []byte(key)}))
			}(i)
		}
		wg.Wait()

		keys, err := kv.Keys(ctx)
		require.NoError(t, err)
		assert.Len(t, keys, 8)
	})
}
