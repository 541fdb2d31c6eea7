package daemon

import (
	"context"
	"errors"
	"net/http"
	"time"

	"quill/internal/logging"
	"quill/internal/store"
)

type Daemon struct {
	addr    string
	token   string
	version string
	server  *http.Server
	notes   store.NoteStore
	logger  logging.Logger
}

func New(addr, token, version string, notes store.NoteStore, logger logging.Logger) *Daemon {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Daemon{
		addr:    addr,
		token:   token,
		version: version,
		notes:   notes,
		logger:  logger,
	}
}

func (d *Daemon) Run(ctx context.Context) error {
	api := &API{
		Version: d.version,
		Notes:   d.notes,
		Logger:  d.logger,
	}

	mux := http.NewServeMux()
	api.RegisterRoutes(mux)

	handler := LoggingMiddleware(d.logger, TokenAuthMiddleware(d.token, mux))
	d.server = &http.Server{
		Addr:    d.addr,
		Handler: handler,
	}
	api.Shutdown = d.server.Shutdown

	errCh := make(chan error, 1)
	go func() {
		d.logger.Info("daemon_listening", logging.F("addr", d.addr))
		errCh <- d.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := shutdownContext()
		defer cancel()
		if err := d.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return d.notes.Close()
	case err := <-errCh:
		_ = d.notes.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func shutdownContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}
