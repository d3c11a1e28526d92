package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overrides from flags", func(t *testing.T) {
		os.Args = []string{"testbin",
			"-u", "http://files.example:9000/up",
			"-m", "1000000",
			"-t", ".txt, image/*",
			"-o", "15",
			"-k", "s3",
		}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "http://files.example:9000/up", cfg.UploadURL)
		assert.Equal(t, int64(1000000), cfg.MaxFileSize)
		assert.Equal(t, []string{".txt", "image/*"}, cfg.AllowedTypes)
		assert.Equal(t, 15*time.Second, cfg.UploadTimeout)
		assert.Equal(t, TransportS3, cfg.Transport)
	})

	t.Run("no flags keeps defaults", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "http://127.0.0.1:8080/upload", cfg.UploadURL)
		assert.Equal(t, 60*time.Second, cfg.UploadTimeout)
		assert.Empty(t, cfg.AllowedTypes)
	})
}
