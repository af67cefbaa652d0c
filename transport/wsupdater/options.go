package wsupdater

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
)

// Options configures a Handler.
type Options struct {
	// ReadTimeout is the maximum time to wait for a message from the
	// client. Default: 60 seconds.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait when sending a message.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// HeartbeatInterval is the time between ping frames. Default: 30
	// seconds.
	HeartbeatInterval time.Duration

	// MaxMessageSize is the maximum size of an incoming message, in
	// bytes. Default: 64KB.
	MaxMessageSize int64

	// CheckOrigin validates the request's Origin header before
	// upgrading. Default: SameOriginCheck.
	CheckOrigin func(r *http.Request) bool

	// Logger receives connection lifecycle and decode-error logs.
	Logger *slog.Logger
}

// Option configures Options.
type Option func(*Options)

func WithReadTimeout(d time.Duration) Option       { return func(o *Options) { o.ReadTimeout = d } }
func WithWriteTimeout(d time.Duration) Option      { return func(o *Options) { o.WriteTimeout = d } }
func WithHeartbeatInterval(d time.Duration) Option { return func(o *Options) { o.HeartbeatInterval = d } }
func WithMaxMessageSize(n int64) Option            { return func(o *Options) { o.MaxMessageSize = n } }
func WithCheckOrigin(fn func(*http.Request) bool) Option {
	return func(o *Options) { o.CheckOrigin = fn }
}
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }

func defaultOptions() Options {
	return Options{
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		HeartbeatInterval: 30 * time.Second,
		MaxMessageSize:    64 * 1024,
		CheckOrigin:       SameOriginCheck,
		Logger:            slog.Default(),
	}
}

// SameOriginCheck rejects cross-origin upgrade requests, comparing the
// Origin header's host against the request's Host. A request with no
// Origin header (same-origin navigations, non-browser clients) passes.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if r.Host == "" {
		return false
	}
	return originURL.Host == r.Host
}

func (o Options) upgrader() websocket.Upgrader {
	return websocket.Upgrader{CheckOrigin: o.CheckOrigin}
}
