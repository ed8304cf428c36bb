// Package factories assembles configuration and service clients from the
// process environment.
package factories

import (
	"os"
	"strconv"
	"strings"
	"time"

	"rolechat/core"
	"rolechat/services/chat"
	"rolechat/services/speech"
)

// Settings is the full configuration surface, loaded from environment
// variables (a .env file is loaded by main before this runs).
type Settings struct {
	// ListenAddr is the HTTP bind address.
	ListenAddr string
	// GatewayBaseURL is the OpenAI-compatible AI gateway, e.g.
	// https://openai.qiniu.com/v1 or https://api.openai.com/v1.
	GatewayBaseURL string
	// GatewayAPIKey authenticates all gateway calls (chat, ASR, TTS).
	GatewayAPIKey string
	// ChatModel is the default chat-completion model id.
	ChatModel string
	// GatewayTimeout bounds each outbound gateway call.
	GatewayTimeout time.Duration
	// TTSEnabled toggles speech synthesis; when false chat responses are
	// text-only.
	TTSEnabled bool
	// DefaultVoice is used when no role alias or override applies.
	DefaultVoice string
	// SpeedRatio is the synthesis playback speed.
	SpeedRatio float64
	// PublicBaseURL is the externally reachable base used to build links
	// to stored audio files.
	PublicBaseURL string
	// StaticDir is the local directory for uploaded and generated audio.
	StaticDir string
}

// SettingsFromEnv reads the configuration from environment variables,
// falling back to development defaults.
func SettingsFromEnv() Settings {
	return Settings{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8000"),
		GatewayBaseURL: strings.TrimRight(getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"), "/"),
		GatewayAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		ChatModel:      getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
		GatewayTimeout: time.Duration(getEnvAsFloat("OPENAI_TIMEOUT", 60)) * time.Second,
		TTSEnabled:     getEnv("USE_TTS", "0") == "1",
		DefaultVoice:   getEnv("QINIU_TTS_VOICE", "qiniu_zh_female_tmjxxy"),
		SpeedRatio:     getEnvAsFloat("QINIU_TTS_SPEED", 1.0),
		PublicBaseURL:  strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8000"), "/"),
		StaticDir:      getEnv("STATIC_DIR", "static"),
	}
}

// NewChatClient builds the chat gateway client from the settings.
func (s Settings) NewChatClient(logger *core.Logger) *chat.Client {
	return chat.NewClient(chat.Config{
		APIKey:  s.GatewayAPIKey,
		BaseURL: s.GatewayBaseURL,
		Model:   s.ChatModel,
		Timeout: s.GatewayTimeout,
	}, logger)
}

// NewSpeechClient builds the voice gateway client from the settings.
func (s Settings) NewSpeechClient(logger *core.Logger) *speech.Client {
	return speech.NewClient(speech.Config{
		BaseURL:      s.GatewayBaseURL,
		APIKey:       s.GatewayAPIKey,
		TTSEnabled:   s.TTSEnabled,
		DefaultVoice: s.DefaultVoice,
		SpeedRatio:   s.SpeedRatio,
		Timeout:      s.GatewayTimeout,
	}, logger)
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsFloat gets an environment variable as float with a default fallback
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return defaultValue
	}
	return val
}
