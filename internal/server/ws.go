package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// handleWS answers one chatRequest frame with one chatReply frame, in order,
// until the client closes the connection.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxBodyBytes)

	ctx := r.Context()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("WebSocket closed", "err", err)
			}
			return
		}

		var reply chatReply
		var req chatRequest
		if err := json.Unmarshal(data, &req); err != nil {
			reply = chatReply{Error: "invalid frame: " + err.Error(), Code: CodeBadRequest}
		} else {
			_, reply = s.converse(ctx, req)
		}

		if err := conn.WriteJSON(reply); err != nil {
			slog.Debug("WebSocket write failed", "err", err)
			return
		}
	}
}
