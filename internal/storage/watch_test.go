package storage

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "local")
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	seen := make(map[string]bool)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Watch(ctx, dir, 20*time.Millisecond, nil, func(keys []string) {
			mu.Lock()
			defer mu.Unlock()
			for _, k := range keys {
				seen[k] = true
			}
		})
	}()

	// Keep writing until the watcher has registered and reported the key.
	assert.Eventually(t, func() bool {
		_ = kv.SetItem("cart", "[]")
		mu.Lock()
		defer mu.Unlock()
		return seen["cart"]
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope"), 0, nil, func([]string) {})
	require.Error(t, err)
}
