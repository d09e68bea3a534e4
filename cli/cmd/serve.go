package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fdlang/fdl/internal/api"
	"github.com/fdlang/fdl/log"
)

// Serve parses a document once and serves it over HTTP until interrupted.
type Serve struct {
	File string `arg:"" default:"-" help:"FDL input file or '-' for stdin" name:"file"`
	Addr string `       default:":8080" help:"Listen address" short:"a"`
}

const shutdownTimeout = 5 * time.Second

// Run executes the serve command.
func (s *Serve) Run(ctx context.Context) (err error) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	doc, err := loadDocument(ctx, s.File)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    s.Addr,
		Handler: api.NewServer(doc, log.Default()),
	}

	errs := make(chan error, 1)

	go func() {
		errs <- srv.ListenAndServe()
	}()

	log.InfoContext(ctx, "serving document",
		slog.String("file", s.File),
		slog.String("addr", s.Addr),
		slog.Int("sections", doc.Len()),
	)

	select {
	case err = <-errs:
		return err

	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
