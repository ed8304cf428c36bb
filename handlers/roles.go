package handlers

import (
	"net/http"
	"strings"

	"rolechat/roleplay"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleRolesList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, roleplay.Roster())
}

type roleHit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s *Server) handleRolesSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	entries := roleplay.SearchRoster(q)
	hits := make([]roleHit, 0, len(entries))
	for _, e := range entries {
		hits = append(hits, roleHit{ID: e.ID, Name: e.Name})
	}
	writeJSON(w, s.logger, http.StatusOK, hits)
}

type roleSkill struct {
	Skill       string `json:"skill"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
}

func (s *Server) handleRoleSkills(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if strings.TrimSpace(name) == "" {
		writeError(w, s.logger, http.StatusBadRequest, codeMissingField, "role name must not be empty")
		return
	}
	skills := make([]roleSkill, 0, len(roleplay.AllSkills()))
	for _, sk := range roleplay.AllSkills() {
		skills = append(skills, roleSkill{
			Skill:       string(sk),
			Description: sk.Description(),
			Prompt:      sk.Template(name),
		})
	}
	writeJSON(w, s.logger, http.StatusOK, map[string]any{"role_name": name, "skills": skills})
}

type rolesChatRequest struct {
	RoleName string `json:"role_name"`
	Text     string `json:"text"`
	Skill    string `json:"skill"`
}

type rolesChatResponse struct {
	RoleName  string `json:"role_name"`
	ReplyText string `json:"reply_text"`
}

// handleRolesChat is the stateless chat path: no session, no history.
func (s *Server) handleRolesChat(w http.ResponseWriter, r *http.Request) {
	var req rolesChatRequest
	if !decodeBody(w, r, s.logger, &req) {
		return
	}
	roleName := strings.TrimSpace(req.RoleName)
	if roleName == "" {
		writeError(w, s.logger, http.StatusBadRequest, codeMissingField, "role_name must not be empty")
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

	card := s.cards.Build(r.Context(), roleName)
	reply := s.engine.Reply(r.Context(), roleName, card, skill, nil, req.Text)
	writeJSON(w, s.logger, http.StatusOK, rolesChatResponse{RoleName: roleName, ReplyText: reply})
}
