package janitor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"terabox-dl-bot/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepRemovesOnlyStaleFiles(t *testing.T) {
	dir := t.TempDir()

	stale := filepath.Join(dir, "orphaned.mp4")
	require.NoError(t, os.WriteFile(stale, []byte("partial"), 0644))
	old := time.Now().Add(-3 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	fresh := filepath.Join(dir, "in-progress.mp4")
	require.NoError(t, os.WriteFile(fresh, []byte("partial"), 0644))

	sub := filepath.Join(dir, "subdir")
	require.NoError(t, os.Mkdir(sub, 0755))

	svc := NewDefaultService(&config.JanitorCfg{Interval: time.Hour, MaxAge: 2 * time.Hour}, dir)
	svc.(*DefaultService).sweep()

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(fresh)
	assert.NoError(t, err)

	_, err = os.Stat(sub)
	assert.NoError(t, err)
}
