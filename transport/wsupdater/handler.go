// Package wsupdater implements a runtime.Updater over a WebSocket
// connection: an http.Handler that upgrades each request, boots a
// runtime for it, relays reconciled trees and patches out as JSON
// frames, and decodes inbound event and client-hook frames back into
// runtime calls. Framing is plain JSON text frames rather than a
// custom binary protocol, for simplicity and easy debugging.
package wsupdater

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-go/reactui/runtime"
)

// Handler upgrades incoming requests to WebSocket connections and runs
// one runtime per connection.
type Handler struct {
	root   runtime.RootFunc
	opts   Options
	rtOpts []runtime.Option
}

// New builds a Handler that boots a fresh instance of root for every
// connection. rtOpts are forwarded to runtime.New for each connection's
// runtime (e.g. runtime.WithMetrics, runtime.WithTracer).
func New(root runtime.RootFunc, opts []Option, rtOpts ...runtime.Option) *Handler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Handler{root: root, opts: o, rtOpts: rtOpts}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	upgrader := h.opts.upgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.opts.Logger.Error("wsupdater: upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(h.opts.MaxMessageSize)
	conn.SetReadDeadline(time.Now().Add(h.opts.ReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(h.opts.ReadTimeout))
		return nil
	})

	updater := &connUpdater{conn: conn, writeTimeout: h.opts.WriteTimeout}
	rt := runtime.New(h.root, updater, append([]runtime.Option{runtime.WithLogger(h.opts.Logger)}, h.rtOpts...)...)
	rt.Start()
	defer rt.Stop()

	done := make(chan struct{})
	go h.heartbeat(conn, updater, done)
	defer close(done)

	h.readLoop(conn, rt, updater)
}

func (h *Handler) readLoop(conn *websocket.Conn, rt *runtime.Runtime, updater *connUpdater) {
	for {
		conn.SetReadDeadline(time.Now().Add(h.opts.ReadTimeout))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				h.opts.Logger.Error("wsupdater: read error", "error", err)
			}
			return
		}

		var f inFrame
		if err := json.Unmarshal(msg, &f); err != nil {
			h.opts.Logger.Error("wsupdater: decode error", "error", err)
			continue
		}

		switch f.Kind {
		case kindEvent:
			rt.ProcessEvent(f.HandlerID, f.Payload)

		case kindClientEvent:
			hookID, event := f.HookID, f.Event
			go func() {
				err := rt.ProcessClientHook(hookID, event, f.Payload, func(reply any) {
					if err := updater.sendClientReply(hookID, reply); err != nil {
						h.opts.Logger.Warn("wsupdater: client reply failed", "hook_id", hookID, "error", err)
					}
				})
				if err != nil && !errors.Is(err, runtime.ErrRuntimeClosed) {
					h.opts.Logger.Warn("wsupdater: client hook dispatch failed", "hook_id", hookID, "error", err)
				}
			}()

		default:
			h.opts.Logger.Warn("wsupdater: unknown frame kind", "kind", f.Kind)
		}
	}
}

func (h *Handler) heartbeat(conn *websocket.Conn, updater *connUpdater, done <-chan struct{}) {
	ticker := time.NewTicker(h.opts.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := updater.ping(); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
