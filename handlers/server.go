// Package handlers exposes the roleplay engine and gateway clients as an
// HTTP API.
package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"rolechat/core"
	"rolechat/factories"
	"rolechat/roleplay"
	"rolechat/services/chat"
	"rolechat/services/speech"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Server wires the domain components to the HTTP surface.
type Server struct {
	router   chi.Router
	settings factories.Settings
	logger   *core.Logger

	store  *roleplay.Store
	cards  *roleplay.CardBuilder
	engine *roleplay.Engine
	voices *roleplay.VoiceResolver
	speech *speech.Client
}

// NewServer builds the HTTP server around the given gateway clients.
func NewServer(settings factories.Settings, chatClient *chat.Client, speechClient *speech.Client, logger *core.Logger) (*Server, error) {
	if logger == nil {
		logger = core.GetLogger()
	}

	s := &Server{
		settings: settings,
		logger:   logger,
		store:    roleplay.NewStore(),
		cards:    roleplay.NewCardBuilder(chatClient, logger),
		engine:   roleplay.NewEngine(chatClient, logger),
		voices:   roleplay.NewVoiceResolver(settings.DefaultVoice, ""),
		speech:   speechClient,
	}

	for _, sub := range []string{"audio", "uploads"} {
		if err := os.MkdirAll(filepath.Join(settings.StaticDir, sub), 0o755); err != nil {
			return nil, err
		}
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", s.handleHealthz)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/session/start", s.handleStartSession)
		r.Post("/chat", s.handleChat)
		r.Get("/chat/ws", s.handleChatWS)
		r.Post("/asr", s.handleASRUpload)
		r.Post("/asr/url", s.handleASRURL)
		r.Get("/voice/list", s.handleVoiceList)
		r.Post("/eval", s.handleEval)
		r.Route("/roles", func(r chi.Router) {
			r.Get("/list", s.handleRolesList)
			r.Get("/search", s.handleRolesSearch)
			r.Get("/{name}/skills", s.handleRoleSkills)
			r.Post("/chat", s.handleRolesChat)
		})
	})

	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(settings.StaticDir)))
	r.Get("/static/*", fileServer.ServeHTTP)

	s.router = r
	return s, nil
}

// Router returns the root HTTP handler.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, map[string]any{
		"ok":          true,
		"use_gateway": s.settings.GatewayAPIKey != "",
		"base_url":    s.settings.GatewayBaseURL,
		"tts_enabled": s.settings.TTSEnabled,
	})
}
