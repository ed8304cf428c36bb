package handlers

import (
	"net/http"
	"strings"

	"rolechat/roleplay"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsInbound struct {
	Text  string `json:"text"`
	Skill string `json:"skill"`
}

type wsOutbound struct {
	RoleName  string `json:"role_name"`
	ReplyText string `json:"reply_text"`
	Error     string `json:"error,omitempty"`
}

// handleChatWS runs an interactive chat loop over a WebSocket, bound to an
// existing session. Each inbound text message produces one reply and one
// appended turn, same as the REST chat path.
func (s *Server) handleChatWS(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	sess, ok := s.store.Get(sessionID)
	if !ok {
		writeError(w, s.logger, http.StatusNotFound, codeSessionNotFound, "unknown session id")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.With(map[string]any{"error": err}).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	logger := s.logger.With(map[string]any{"session": sess.ID, "role": sess.RoleName})
	logger.Info("websocket chat connected")

	for {
		var in wsInbound
		if err := conn.ReadJSON(&in); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.With(map[string]any{"error": err}).Debug("websocket read ended")
			}
			return
		}
		if strings.TrimSpace(in.Text) == "" {
			if err := conn.WriteJSON(wsOutbound{Error: "text must not be empty"}); err != nil {
				return
			}
			continue
		}
		skill, err := roleplay.ParseSkill(in.Skill)
		if err != nil {
			if err := conn.WriteJSON(wsOutbound{Error: err.Error()}); err != nil {
				return
			}
			continue
		}

		reply := s.engine.Reply(r.Context(), sess.RoleName, sess.Card, skill, sess.History(), in.Text)
		s.store.AppendTurn(sess.ID, in.Text, reply)

		if err := conn.WriteJSON(wsOutbound{RoleName: sess.RoleName, ReplyText: reply}); err != nil {
			logger.With(map[string]any{"error": err}).Debug("websocket write failed")
			return
		}
	}
}
