package wsupdater

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-go/reactui/adapter/htmljson"
	"github.com/vango-go/reactui/runtime"
)

// connUpdater implements runtime.Updater over a single WebSocket
// connection: every write takes the connection's write lock and a
// fresh write deadline, matching gorilla/websocket's
// single-writer-at-a-time requirement.
type connUpdater struct {
	conn         *websocket.Conn
	writeTimeout time.Duration

	mu sync.Mutex
}

func (c *connUpdater) Send(update runtime.RenderedUpdate) error {
	var f outFrame
	switch update.Kind {
	case runtime.FullUpdate:
		f = outFrame{Kind: kindFull, Tree: htmljson.Render(update.Full)}
	case runtime.PatchUpdate:
		f = outFrame{Kind: kindPatch, Patch: htmljson.RenderPatch(update.Delta)}
	}
	return c.writeJSON(f)
}

func (c *connUpdater) SendClientEvent(hookID, event string, payload any) error {
	return c.writeJSON(outFrame{Kind: kindClientEvent, HookID: hookID, Event: event, Payload: payload})
}

func (c *connUpdater) sendClientReply(hookID string, payload any) error {
	return c.writeJSON(outFrame{Kind: kindClientReply, HookID: hookID, Payload: payload})
}

func (c *connUpdater) writeJSON(f outFrame) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	return c.conn.WriteJSON(f)
}

func (c *connUpdater) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}
