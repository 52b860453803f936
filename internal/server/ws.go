package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func timeNowDeadline() time.Time { return time.Now().Add(5 * time.Second) }

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// chatStream upgrades to a websocket, reads one chat request, and
// writes each stream chunk as a text frame. The concatenation of all
// frames equals the full response text.
func (h *handler) chatStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	var dto chatRequestDTO
	if err := conn.ReadJSON(&dto); err != nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInvalidFramePayloadData, "invalid chat request"),
			timeNowDeadline())
		return
	}

	for chunk := range h.svc.ChatStream(r.Context(), dto.toChatRequest()) {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(chunk)); err != nil {
			// Consumer went away; the underlying call already
			// completed, nothing else to release.
			return
		}
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		timeNowDeadline())
}
