package server

import (
	"context"
	"errors"
	"log"
	"net/http"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Server wraps the trip-planning API in an h2c-capable http.Server so
// HTTP/2 works without TLS behind a terminating proxy.
type Server struct {
	httpServer *http.Server
	env        string
}

func New(port, env string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    port,
			Handler: h2c.NewHandler(handler, &http2.Server{}),
		},
		env: env,
	}
}

func (s *Server) Start() error {
	log.Printf("tripmate api listening on %s (env=%s)", s.httpServer.Addr, s.env)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting new connections and drains in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
