package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"rolechat/roleplay"
)

type startSessionRequest struct {
	RoleName    string `json:"role_name"`
	MemoryLimit int    `json:"memory_limit"`
}

type startSessionResponse struct {
	SessionID string `json:"session_id"`
	RoleName  string `json:"role_name"`
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if !decodeBody(w, r, s.logger, &req) {
		return
	}
	roleName := strings.TrimSpace(req.RoleName)
	if roleName == "" {
		writeError(w, s.logger, http.StatusBadRequest, codeMissingField, "role_name must not be empty")
		return
	}
	if req.MemoryLimit == 0 {
		req.MemoryLimit = 6
	}

	card := s.cards.Build(r.Context(), roleName)
	id := s.store.Create(roleName, card, req.MemoryLimit)
	s.logger.With(map[string]any{"session": id, "role": roleName}).Info("session started")

	writeJSON(w, s.logger, http.StatusOK, startSessionResponse{SessionID: id, RoleName: roleName})
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
	Skill     string `json:"skill"`
	// Voice overrides the resolved voice id for this reply; passed through
	// to the gateway without validation.
	Voice string `json:"voice,omitempty"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	RoleName  string `json:"role_name"`
	ReplyText string `json:"reply_text"`
	AudioURL  string `json:"audio_url,omitempty"`
	TTSB64    string `json:"tts_b64,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeBody(w, r, s.logger, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, s.logger, http.StatusBadRequest, codeMissingField, "text must not be empty")
		return
	}
	skill, err := roleplay.ParseSkill(req.Skill)
	if err != nil {
		writeError(w, s.logger, http.StatusBadRequest, codeInvalidSkill, err.Error())
		return
	}
	sess, ok := s.store.Get(req.SessionID)
	if !ok {
		writeError(w, s.logger, http.StatusNotFound, codeSessionNotFound, "unknown session id")
		return
	}

	reply := s.engine.Reply(r.Context(), sess.RoleName, sess.Card, skill, sess.History(), req.Text)
	s.store.AppendTurn(sess.ID, req.Text, reply)

	resp := chatResponse{
		SessionID: sess.ID,
		RoleName:  sess.RoleName,
		ReplyText: reply,
	}

	voice := s.voices.PickVoice(sess.RoleName, reply, req.Voice)
	if audio, err := s.speech.Synthesize(r.Context(), reply, voice); err == nil {
		if url, saveErr := s.saveAudio("audio", ".mp3", audio); saveErr == nil {
			resp.AudioURL = url
		} else {
			s.logger.With(map[string]any{"error": saveErr}).Warn("failed to store synthesized audio")
		}
		resp.TTSB64 = base64.StdEncoding.EncodeToString(audio)
	} else {
		// TTS is best-effort; the response stays text-only.
		s.logger.With(map[string]any{"session": sess.ID, "error": err}).Debug("tts skipped")
	}

	writeJSON(w, s.logger, http.StatusOK, resp)
}
