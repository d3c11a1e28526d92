package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mkravets/uploadhub/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The upload
// timeout is a Go duration string like "90s"; after parsing, values are
// copied into the runtime Config.
type JsonConfig struct {
	UploadURL     string   `json:"upload_url"`
	MaxFileSize   *int64   `json:"max_file_size"`
	AllowedTypes  []string `json:"allowed_types"`
	UploadTimeout string   `json:"upload_timeout"`
	Transport     string   `json:"transport"`

	S3Region       string `json:"s3_region"`
	S3Bucket       string `json:"s3_bucket"`
	S3BaseEndpoint string `json:"s3_endpoint"`
	S3AccessKey    string `json:"s3_access_key"`
	S3SecretKey    string `json:"s3_secret_key"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.ConfigFileFlag().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the file override the config; absent fields keep
// their earlier values. Panics on read or unmarshal errors (caller should
// recover if desired). Intended usage is: defaults -> parseJson ->
// parseFlags, where later stages override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.UploadURL != "" {
		cfg.UploadURL = jc.UploadURL
	}
	if jc.MaxFileSize != nil {
		cfg.MaxFileSize = *jc.MaxFileSize
	}
	if jc.AllowedTypes != nil {
		cfg.AllowedTypes = jc.AllowedTypes
	}
	if jc.UploadTimeout != "" {
		d, err := time.ParseDuration(jc.UploadTimeout)
		if err != nil {
			panic(err)
		}
		cfg.UploadTimeout = d
	}
	if jc.Transport != "" {
		cfg.Transport = jc.Transport
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
}
