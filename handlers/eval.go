package handlers

import (
	"net/http"
	"strings"

	"rolechat/roleplay"
)

type evalRequest struct {
	RoleName string   `json:"role_name"`
	Cases    []string `json:"cases"`
	Keywords []string `json:"keywords"`
}

type evalDetail struct {
	Question string `json:"q"`
	Reply    string `json:"reply"`
	OK       bool   `json:"ok"`
}

type evalResponse struct {
	Passed  int          `json:"passed"`
	Total   int          `json:"total"`
	Details []evalDetail `json:"details"`
}

// handleEval runs each test question through the chat path with empty
// history and reports pass/fail on required-keyword presence in the reply.
func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	var req evalRequest
	if !decodeBody(w, r, s.logger, &req) {
		return
	}
	if strings.TrimSpace(req.RoleName) == "" {
		writeError(w, s.logger, http.StatusBadRequest, codeMissingField, "role_name must not be empty")
		return
	}

	card := s.cards.Build(r.Context(), req.RoleName)
	resp := evalResponse{Total: len(req.Cases), Details: make([]evalDetail, 0, len(req.Cases))}
	for _, q := range req.Cases {
		reply := s.engine.Reply(r.Context(), req.RoleName, card, roleplay.SkillKnowledge, nil, q)
		ok := containsAll(reply, req.Keywords)
		if ok {
			resp.Passed++
		}
		resp.Details = append(resp.Details, evalDetail{Question: q, Reply: reply, OK: ok})
	}
	writeJSON(w, s.logger, http.StatusOK, resp)
}

func containsAll(s string, keywords []string) bool {
	for _, k := range keywords {
		if !strings.Contains(s, k) {
			return false
		}
	}
	return true
}
