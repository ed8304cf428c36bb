package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"rolechat/utils/audio"

	"github.com/google/uuid"
)

// maxUploadBytes bounds multipart audio uploads.
const maxUploadBytes = 32 << 20

type asrResponse struct {
	Text     string `json:"text"`
	AudioURL string `json:"audio_url,omitempty"`
}

// handleASRUpload accepts a multipart audio file, stores it under the
// static dir so the gateway can fetch it by URL, and returns the
// transcript. G.711 telephony uploads are converted to WAV first. The
// optional "engine" form field selects direct whisper-style upload
// ("whisper") instead of the URL-based gateway ASR.
func (s *Server) handleASRUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, s.logger, http.StatusBadRequest, codeInvalidPayload, "invalid multipart form: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, s.logger, http.StatusBadRequest, codeMissingField, "file field is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !strings.HasPrefix(contentType, "audio/") && !isKnownAudioExt(ext) {
		writeError(w, s.logger, http.StatusBadRequest, codeBadAudio, "file must be audio (audio/* content type or a known audio extension)")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, s.logger, http.StatusBadRequest, codeInvalidPayload, "failed to read upload: "+err.Error())
		return
	}

	// Telephony codecs get decoded to WAV before hitting the gateway.
	if codec, ok := audio.DetectTelephonyCodec(ext); ok {
		wav, convErr := audio.TelephonyToWAV(codec, data)
		if convErr != nil {
			writeError(w, s.logger, http.StatusBadRequest, codeBadAudio, convErr.Error())
			return
		}
		data = wav
		ext = ".wav"
	}
	if ext == "" {
		ext = ".wav"
	}

	language := r.FormValue("language")

	if r.FormValue("engine") == "whisper" {
		text, trErr := s.speech.TranscribeFile(r.Context(), bytes.NewReader(data), "audio"+ext)
		if trErr != nil {
			writeGatewayError(w, s.logger, trErr)
			return
		}
		writeJSON(w, s.logger, http.StatusOK, asrResponse{Text: text})
		return
	}

	url, err := s.saveAudio("uploads", ext, data)
	if err != nil {
		writeError(w, s.logger, http.StatusInternalServerError, codeUpstreamError, "failed to store upload: "+err.Error())
		return
	}

	text, err := s.speech.TranscribeURL(r.Context(), url, language)
	if err != nil {
		writeGatewayError(w, s.logger, err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, asrResponse{Text: text, AudioURL: url})
}

type asrURLRequest struct {
	AudioURL string `json:"audio_url"`
	Language string `json:"language"`
}

func (s *Server) handleASRURL(w http.ResponseWriter, r *http.Request) {
	var req asrURLRequest
	if !decodeBody(w, r, s.logger, &req) {
		return
	}
	if strings.TrimSpace(req.AudioURL) == "" {
		writeError(w, s.logger, http.StatusBadRequest, codeMissingField, "audio_url must not be empty")
		return
	}
	text, err := s.speech.TranscribeURL(r.Context(), req.AudioURL, req.Language)
	if err != nil {
		writeGatewayError(w, s.logger, err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, asrResponse{Text: text})
}

func (s *Server) handleVoiceList(w http.ResponseWriter, r *http.Request) {
	status, body, err := s.speech.ListVoices(r.Context())
	if err != nil {
		writeGatewayError(w, s.logger, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		s.logger.With(map[string]any{"error": err}).Error("failed to relay voice list")
	}
}

// saveAudio writes audio bytes under the static dir and returns the
// externally reachable URL for them.
func (s *Server) saveAudio(subdir, ext string, data []byte) (string, error) {
	name := uuid.New().String() + ext
	path := filepath.Join(s.settings.StaticDir, subdir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return fmt.Sprintf("%s/static/%s/%s", s.settings.PublicBaseURL, subdir, name), nil
}

func isKnownAudioExt(ext string) bool {
	switch ext {
	case ".wav", ".mp3", ".m4a", ".ogg", ".flac", ".webm", ".ulaw", ".ul", ".pcmu", ".alaw", ".al", ".pcma":
		return true
	}
	return false
}
