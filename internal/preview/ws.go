package preview

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

type renderMsg struct {
	Type string `json:"type"`
	HTML string `json:"html"`
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  4 * 1024,
	WriteBufferSize: 32 * 1024,
	CheckOrigin:     sameOrigin,
}

// sameOrigin admits requests without an Origin (non-browser clients) and
// browser pages served by this server.
func sameOrigin(r *http.Request) bool {
	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

const writeWait = 10 * time.Second

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sub, current, ok := s.hub.subscribe()
	if !ok {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		return
	}
	defer s.hub.unsubscribe(sub)

	// Drain client frames so close/ping control messages get processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					s.log.Debug("websocket read", "error", err)
				}
				return
			}
		}
	}()

	if err := writeRender(conn, current); err != nil {
		return
	}
	for {
		select {
		case <-done:
			return
		case html, ok := <-sub.send:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
				return
			}
			if err := writeRender(conn, html); err != nil {
				s.log.Debug("websocket write", "error", err)
				return
			}
		}
	}
}

func writeRender(conn *websocket.Conn, html string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(renderMsg{Type: "render", HTML: html})
}
