package server

import (
	"context"
	"errors"
	"net/http"
	"time"
)

const httpShutdownTimeout = 5 * time.Second

// Start serves the configured transport until it ends or ctx is done.
func (s *Server) Start(ctx context.Context) error {
	switch s.transportType {
	case TransportSSE, TransportStreamable:
		return s.serveHTTP(ctx)
	}
	return s.serveStdio(ctx)
}

func (s *Server) serveStdio(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- s.Stdio(ctx).ListenAndServe()
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (s *Server) serveHTTP(ctx context.Context) error {
	httpSrv := s.HTTP(ctx, "")
	done := make(chan error, 1)
	go func() {
		done <- httpSrv.ListenAndServe()
	}()
	select {
	case err := <-done:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

// Shutdown rejects new requests, cancels every in-flight one and waits for them to return.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mux.Lock()
	s.closing = true
	s.mux.Unlock()

	s.activeCalls.Range(func(_ string, call *activeCall) bool {
		call.cancel()
		return true
	})
	done := make(chan struct{})
	go func() {
		s.inFlight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
