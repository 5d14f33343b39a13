package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	svc := newTestService(t, nil)
	path := writeFile(t, "live.tasks", "- [ ] one\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lists := make(chan *List, 4)
	done := make(chan error, 1)
	go func() {
		done <- svc.Watch(ctx, path, func(l *List, err error) {
			if err == nil {
				lists <- l
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("- [ ] one\n- [x] two\n"), 0644))

	select {
	case l := <-lists:
		assert.Len(t, l.Result.Items, 3)
		assert.True(t, l.Result.Items[1].Completed)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
