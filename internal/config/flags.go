package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/mkravets/uploadhub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-u string   upload destination URL (default from Config)
//	-m int      max file size in bytes (default from Config)
//	-t string   comma-separated allowed type patterns
//	-o int      upload timeout in seconds (default from Config)
//	-k string   transport kind: http or s3
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-m", "-t", "-o", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.UploadURL, "u", cfg.UploadURL, "upload destination URL")
	fs.Int64Var(&cfg.MaxFileSize, "m", cfg.MaxFileSize, "max file size in bytes (0 = unlimited)")
	allowedTypes := fs.String("t", strings.Join(cfg.AllowedTypes, ","), "comma-separated allowed type patterns")
	uploadTimeout := fs.Int("o", int(cfg.UploadTimeout.Seconds()), "upload timeout (in seconds)")
	fs.StringVar(&cfg.Transport, "k", cfg.Transport, "transport kind (http or s3)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.UploadTimeout = time.Duration(*uploadTimeout) * time.Second
	cfg.AllowedTypes = splitTypes(*allowedTypes)
}

func splitTypes(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
