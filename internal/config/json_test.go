package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"upload_url":     "http://files.example:9000/up",
		"max_file_size":  1000000,
		"allowed_types":  []string{".txt", "image/*"},
		"upload_timeout": "90s",
		"transport":      "s3",
		"s3_bucket":      "uploads",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "http://files.example:9000/up", cfg.UploadURL)
		assert.Equal(t, int64(1000000), cfg.MaxFileSize)
		assert.Equal(t, []string{".txt", "image/*"}, cfg.AllowedTypes)
		assert.Equal(t, 90*time.Second, cfg.UploadTimeout)
		assert.Equal(t, TransportS3, cfg.Transport)
		assert.Equal(t, "uploads", cfg.S3Bucket)
	})

	t.Run("no config flag leaves values unchanged", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			UploadURL:     "http://defaults:1234/up",
			UploadTimeout: 42 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "http://defaults:1234/up", cfg.UploadURL)
		assert.Equal(t, 42*time.Second, cfg.UploadTimeout)
	})

	t.Run("absent fields keep earlier values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"upload_url": "http://partial:1/up",
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "http://partial:1/up", cfg.UploadURL)
		assert.Equal(t, int64(100<<20), cfg.MaxFileSize)
		assert.Equal(t, 60*time.Second, cfg.UploadTimeout)
	})
}
