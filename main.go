package main

import (
	"net/http"
	"os"

	"rolechat/core"
	"rolechat/factories"
	"rolechat/handlers"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		core.GetLogger().With(map[string]any{"error": err}).Warn("No .env file found or failed to load")
	}

	if os.Getenv("APP_ENV") == "production" {
		core.SetLogger(*core.NewProductionLogger())
	}
	logger := core.GetLogger()
	defer logger.Sync()

	settings := factories.SettingsFromEnv()
	if settings.GatewayAPIKey == "" {
		logger.Warn("OPENAI_API_KEY not set: chat replies will use placeholders, ASR/TTS disabled")
	}

	chatClient := settings.NewChatClient(logger)
	speechClient := settings.NewSpeechClient(logger)

	server, err := handlers.NewServer(settings, chatClient, speechClient, logger)
	if err != nil {
		logger.With(map[string]any{"error": err}).Fatal("failed to build server")
	}

	logger.With(map[string]any{
		"addr":    settings.ListenAddr,
		"gateway": settings.GatewayBaseURL,
		"model":   settings.ChatModel,
		"tts":     settings.TTSEnabled,
	}).Info("listening")

	if err := http.ListenAndServe(settings.ListenAddr, server.Router()); err != nil {
		logger.With(map[string]any{"error": err}).Fatal("server stopped")
	}
}
