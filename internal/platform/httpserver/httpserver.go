package httpserver

import (
	"net/http"
	"time"

	"rollcall/internal/platform/config"
)

// writeGrace leaves room to flush a response after the request timeout fires.
const writeGrace = 5 * time.Second

// New builds the HTTP server. The write timeout follows the request timeout
// so large exports are not cut off mid-stream.
func New(cfg config.Server, handler http.Handler) *http.Server {
	writeTimeout := 60 * time.Second
	if cfg.RequestTimeout > 0 {
		writeTimeout = cfg.RequestTimeout + writeGrace
	}
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       120 * time.Second,
	}
}
