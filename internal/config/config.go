package config

import "time"

// Transport kinds selectable at startup.
const (
	TransportHTTP = "http"
	TransportS3   = "s3"
)

// Config holds runtime settings for the uploadhub CLI.
//
// Fields:
//   - UploadURL: destination endpoint for the HTTP transport.
//   - MaxFileSize: per-file size limit in bytes; 0 disables the limit.
//   - AllowedTypes: accepted type patterns (".txt", "image/*"); empty
//     accepts everything.
//   - UploadTimeout: upper bound for a single upload.
//   - Transport: which transport to use, TransportHTTP or TransportS3.
//   - S3*: settings for the S3 transport (MinIO-compatible endpoints work
//     via S3BaseEndpoint).
type Config struct {
	UploadURL     string
	MaxFileSize   int64
	AllowedTypes  []string
	UploadTimeout time.Duration
	Transport     string

	S3Region       string
	S3Bucket       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.UploadURL = "http://127.0.0.1:8080/upload"
	c.MaxFileSize = 100 << 20
	c.AllowedTypes = nil
	c.UploadTimeout = 60 * time.Second
	c.Transport = TransportHTTP
	c.S3Region = "us-east-1"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
