package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"v1.0.0", "1.0.0"},
		{"1.0.0", "1.0.0"},
		{"v2.3.4-beta.1", "2.3.4-beta.1"},
		{"", ""},
		{"dev", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeVersion(tt.input))
		})
	}
}

func TestIsNewerVersion(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{"newer patch", "1.0.0", "1.0.1", true},
		{"newer minor", "1.0.0", "1.1.0", true},
		{"newer major", "1.0.0", "2.0.0", true},
		{"same version", "1.0.0", "1.0.0", false},
		{"older version", "2.0.0", "1.0.0", false},
		{"v prefix on current", "v1.0.0", "1.1.0", true},
		{"v prefix on latest", "1.0.0", "v1.1.0", true},
		{"dev never updates", "dev", "1.0.0", false},
		{"empty never updates", "", "1.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNewerVersion(tt.current, tt.latest))
		})
	}
}

func TestIsCacheValid(t *testing.T) {
	tests := []struct {
		name      string
		checkedAt time.Time
		want      bool
	}{
		{"fresh cache", time.Now().Add(-1 * time.Hour), true},
		{"stale cache", time.Now().Add(-25 * time.Hour), false},
		{"just before TTL", time.Now().Add(-updateCheckCacheTTL + time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := &updateCache{LatestVersion: "1.0.0", CheckedAt: tt.checkedAt}
			assert.Equal(t, tt.want, isCacheValid(cache))
		})
	}
}

func TestUpdateCacheReadWrite(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache := &updateCache{
		LatestVersion: "1.2.3",
		CheckedAt:     time.Now().Truncate(time.Second),
	}
	require.NoError(t, writeUpdateCache(cache))

	path, err := cachePath()
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err, "cache file should exist")

	readBack, err := readUpdateCache()
	require.NoError(t, err)
	assert.Equal(t, cache.LatestVersion, readBack.LatestVersion)
	assert.Equal(t, cache.CheckedAt.Unix(), readBack.CheckedAt.Unix())
}

func TestReadUpdateCacheNotExists(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	_, err := readUpdateCache()
	assert.Error(t, err)
}

func TestReadUpdateCacheInvalidJSON(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", tempDir)

	cacheDir := filepath.Join(tempDir, "gcssh")
	require.NoError(t, os.MkdirAll(cacheDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "update-check"),
		[]byte("{not json"), 0o644))

	_, err := readUpdateCache()
	assert.Error(t, err)
}

func TestCheckForUpdateDisabledByEnv(t *testing.T) {
	t.Setenv("GCSSH_NO_UPDATE_CHECK", "1")
	assert.Empty(t, checkForUpdate())
}

func TestCheckForUpdateUsesFreshCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("GCSSH_NO_UPDATE_CHECK", "")

	require.NoError(t, writeUpdateCache(&updateCache{
		LatestVersion: "99.0.0",
		CheckedAt:     time.Now(),
	}))

	SetVersionInfo("1.0.0", "none", "unknown")
	defer SetVersionInfo("dev", "none", "unknown")

	assert.Equal(t, "99.0.0", checkForUpdate())
}
