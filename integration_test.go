//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-lists/pkg/edit"
	"github.com/mattsolo1/grove-lists/pkg/models"
	"github.com/mattsolo1/grove-lists/pkg/service"
	"github.com/mattsolo1/grove-lists/pkg/view"
)

func TestIntegration(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "project.tasks")
	content := strings.Join([]string{
		"- [ ] Release 1.0 !high @core #release",
		"  - [x] Freeze API #release",
		"  - [ ] Write changelog !low @docs",
		"    - [ ] Collect PR titles",
		"- [ ] Plan 2.0 !medium @core",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	logger.SetLevel(logrus.DebugLevel)

	svc, err := service.New(&service.Config{DefaultSort: "priority"}, logrus.NewEntry(logger))
	require.NoError(t, err)

	t.Run("ParseAndGroup", func(t *testing.T) {
		list, err := svc.Load(path)
		require.NoError(t, err)
		require.Len(t, list.Result.Items, 5)

		svc.Session.SetGroupMode(models.GroupProject)
		groups := svc.View(list)
		// Priority sort is ascending through the list, so low comes first.
		assert.Equal(t, []string{"docs", "core", view.LabelNoProject}, groups.Labels())

		core, _ := groups.Get("core")
		assert.Equal(t, "- [ ] Plan 2.0 !medium @core", core[0].Text)
		assert.Contains(t, logs.String(), "Parsed list")
	})

	t.Run("Outline", func(t *testing.T) {
		list, err := svc.Load(path)
		require.NoError(t, err)

		idx := svc.Outline(list)
		roots := idx.Roots()
		require.Len(t, roots, 2)
		children := idx.Children(roots[0])
		require.Len(t, children, 2)
		assert.Len(t, idx.Children(children[1]), 1)
	})

	t.Run("EditCycle", func(t *testing.T) {
		list, err := svc.ToggleComplete(path, 0)
		require.NoError(t, err)
		assert.True(t, list.Result.Items[0].Completed)

		_, name, err := svc.ChangePriority(path, 4, edit.Up)
		require.NoError(t, err)
		assert.Equal(t, "high", name)

		_, _, err = svc.ChangePriority(path, 3, edit.Up)
		assert.ErrorIs(t, err, edit.ErrNoPriority)

		_, err = svc.SetPriority(path, 3, "critical")
		require.NoError(t, err)
		_, _, err = svc.ChangePriority(path, 3, edit.Up)
		assert.ErrorIs(t, err, edit.ErrAlreadyHighest)
	})

	t.Run("Watch", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		reloaded := make(chan *service.List, 1)
		go func() {
			_ = svc.Watch(ctx, path, func(l *service.List, err error) {
				if err == nil {
					select {
					case reloaded <- l:
					default:
					}
				}
			})
		}()

		time.Sleep(200 * time.Millisecond)
		_, err := svc.ToggleComplete(path, 1)
		require.NoError(t, err)

		select {
		case l := <-reloaded:
			assert.False(t, l.Result.Items[1].Completed)
		case <-ctx.Done():
			t.Fatal("watcher did not report the edit")
		}
	})
}
