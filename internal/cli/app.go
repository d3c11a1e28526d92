// Package cli wires the upload manager, a transport and the config into the
// uploadhub command-line application.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mkravets/uploadhub/internal/config"
	"github.com/mkravets/uploadhub/internal/logging"
	"github.com/mkravets/uploadhub/internal/mimex"
	"github.com/mkravets/uploadhub/internal/sizefmt"
	"github.com/mkravets/uploadhub/internal/uploader"
	"github.com/mkravets/uploadhub/internal/uploader/transport"
)

type App struct {
	config  *config.Config
	manager *uploader.Manager
	log     logging.Logger
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {

	var tr uploader.Transport
	switch cfg.Transport {
	case config.TransportS3:
		tr = transport.NewS3(transport.S3Settings{
			Region:       cfg.S3Region,
			Bucket:       cfg.S3Bucket,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
	case config.TransportHTTP, "":
		tr = transport.NewHTTP()
	default:
		return nil, fmt.Errorf("unknown transport %q", cfg.Transport)
	}

	m := uploader.NewManager(uploader.Options{
		UploadURL: cfg.UploadURL,
		Policy: uploader.Policy{
			MaxSizeBytes:        cfg.MaxFileSize,
			AllowedTypePatterns: cfg.AllowedTypes,
		},
		Timeout: cfg.UploadTimeout,
	}, tr, log)

	return &App{config: cfg, manager: m, log: log}, nil
}

// Manager exposes the upload manager, e.g. for tests.
func (a *App) Manager() *uploader.Manager {
	return a.manager
}

// Run submits every path as an upload and blocks until all of them reach a
// terminal state or ctx is cancelled (which cancels the remaining uploads).
// It returns an error when any upload was rejected or failed.
func (a *App) Run(ctx context.Context, paths []string) error {

	if len(paths) == 0 {
		return errors.New("no files to upload")
	}

	candidates := make([]uploader.RawFile, 0, len(paths))
	for _, p := range paths {
		c, err := loadCandidate(p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		candidates = append(candidates, c)
	}

	recs := a.manager.Submit(candidates)
	a.watch(ctx, recs)
	a.manager.Wait()

	var bad int
	for _, rec := range a.manager.List() {
		switch rec.Status {
		case uploader.StatusRejected, uploader.StatusFailed:
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d uploads did not complete", bad, len(recs))
	}
	return nil
}

// watch polls the manager until every record is terminal, logging progress
// along the way. On ctx cancellation the remaining uploads are cancelled.
func (a *App) watch(ctx context.Context, recs []uploader.Record) {

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			for _, rec := range recs {
				a.manager.Cancel(rec.ID)
			}
			return
		case <-ticker.C:
			pending := false
			for _, rec := range a.manager.List() {
				if rec.Status == uploader.StatusUploading {
					pending = true
					a.log.Debug(ctx, "uploading",
						"name", rec.Name,
						"size", sizefmt.Format(rec.Size),
						"percent", rec.Progress)
				}
			}
			if !pending {
				return
			}
		}
	}
}

func loadCandidate(path string) (uploader.RawFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return uploader.RawFile{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return uploader.RawFile{}, err
	}

	name := info.Name()
	return uploader.RawFile{
		Name:     name,
		Size:     int64(len(data)),
		MimeType: mimex.TypeByName(name),
		Content:  data,
	}, nil
}
