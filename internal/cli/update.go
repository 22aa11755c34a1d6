package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const (
	// githubReleasesURL is the GitHub API endpoint for releases
	githubReleasesURL = "https://api.github.com/repos/gcssh/gcssh/releases/latest"

	// updateCheckCacheTTL is how long a check result stays fresh
	updateCheckCacheTTL = 24 * time.Hour

	// updateCheckTimeout is the max time to wait for the GitHub API
	updateCheckTimeout = 3 * time.Second
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer release",
	Long: `Check GitHub for a newer gcssh release.

The result is cached for 24 hours. Set GCSSH_NO_UPDATE_CHECK=1 to disable
update checks entirely.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateCommand()
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

// updateCommand performs an explicit update check, bypassing the cache.
func updateCommand() error {
	if os.Getenv("GCSSH_NO_UPDATE_CHECK") == "1" {
		fmt.Println("Update checks are disabled (GCSSH_NO_UPDATE_CHECK=1).")
		return nil
	}

	latest, err := fetchLatestVersion()
	if err != nil {
		return fmt.Errorf("couldn't reach GitHub: %w", err)
	}

	_ = writeUpdateCache(&updateCache{LatestVersion: latest, CheckedAt: time.Now()})

	if isNewerVersion(version, latest) {
		fmt.Printf("A new version is available: %s\n", formatVersion(latest))
		fmt.Println("Update with: go install gcssh/cmd/gcssh@latest")
		return nil
	}

	fmt.Printf("gcssh %s is up to date.\n", formatVersion(version))
	return nil
}

// githubRelease holds the relevant fields from GitHub's release API
type githubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// updateCache stores a cached update check result
type updateCache struct {
	LatestVersion string    `json:"latest_version"`
	CheckedAt     time.Time `json:"checked_at"`
}

// cachePath returns the path to the update check cache file, honoring
// XDG_CACHE_HOME.
func cachePath() (string, error) {
	cacheDir := os.Getenv("XDG_CACHE_HOME")
	if cacheDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		cacheDir = filepath.Join(homeDir, ".cache")
	}
	return filepath.Join(cacheDir, "gcssh", "update-check"), nil
}

func readUpdateCache() (*updateCache, error) {
	path, err := cachePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cache updateCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, err
	}
	return &cache, nil
}

func writeUpdateCache(cache *updateCache) error {
	path, err := cachePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	data, err := json.Marshal(cache)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func isCacheValid(cache *updateCache) bool {
	return time.Since(cache.CheckedAt) < updateCheckCacheTTL
}

// fetchLatestVersion fetches the latest release tag from GitHub
func fetchLatestVersion() (string, error) {
	client := &http.Client{Timeout: updateCheckTimeout}

	req, err := http.NewRequest("GET", githubReleasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "gcssh-cli")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github api returned %d", resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}
	return release.TagName, nil
}

func normalizeVersion(v string) string {
	return strings.TrimPrefix(v, "v")
}

// isNewerVersion returns true if latest is newer than current. Plain string
// comparison is enough for semver tags.
func isNewerVersion(current, latest string) bool {
	current = normalizeVersion(current)
	latest = normalizeVersion(latest)

	// Dev builds never prompt for updates
	if current == "dev" || current == "" {
		return false
	}
	return latest > current
}

// checkForUpdate returns the latest version when an update is available,
// empty string otherwise. Prefers the cache; network errors are silent.
func checkForUpdate() string {
	if os.Getenv("GCSSH_NO_UPDATE_CHECK") == "1" {
		return ""
	}

	cache, err := readUpdateCache()
	if err == nil && isCacheValid(cache) {
		if isNewerVersion(version, cache.LatestVersion) {
			return cache.LatestVersion
		}
		return ""
	}

	latest, err := fetchLatestVersion()
	if err != nil {
		return ""
	}
	_ = writeUpdateCache(&updateCache{LatestVersion: latest, CheckedAt: time.Now()})

	if isNewerVersion(version, latest) {
		return latest
	}
	return ""
}

// checkAndDisplayUpdate prints a notice when a newer release exists.
func checkAndDisplayUpdate() {
	latest := checkForUpdate()
	if latest == "" {
		return
	}

	fmt.Println()
	fmt.Printf("A new version is available: %s\n", formatVersion(latest))
	fmt.Println("Update with: go install gcssh/cmd/gcssh@latest")
}
