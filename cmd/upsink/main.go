package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/mkravets/uploadhub/internal/filex"
	"github.com/mkravets/uploadhub/internal/logging"
	"github.com/mkravets/uploadhub/internal/sink"
)

func main() {

	addr := flag.String("a", "127.0.0.1:8080", "address to listen on")
	dirName := flag.String("d", "uploads", "directory for received files (empty to discard)")
	maxBytes := flag.Int64("m", 100<<20, "max upload size in bytes")
	flag.Parse()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	dir := ""
	if *dirName != "" {
		var err error
		dir, err = filex.EnsureSubDir(*dirName)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	h := sink.New(dir, *maxBytes, logger)

	log.Printf("upload sink listening on %s", *addr)
	if err := http.ListenAndServe(*addr, h.Routes()); err != nil {
		log.Fatalf("%v", err)
	}
}
