package speech

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"

	"rolechat/core"
)

func TestSynthesizeDecodesBase64Audio(t *testing.T) {
	audio := []byte("fake-mp3-bytes")
	var gotPayload map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotPayload)
		json.NewEncoder(w).Encode(map[string]string{
			"data": base64.StdEncoding.EncodeToString(audio),
		})
	})

	got, err := c.Synthesize(context.Background(), "你好世界", "qiniu_zh_male_yzcs")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if string(got) != string(audio) {
		t.Fatalf("audio bytes = %q, want %q", got, audio)
	}

	audioCfg := gotPayload["audio"].(map[string]any)
	if audioCfg["voice_type"] != "qiniu_zh_male_yzcs" {
		t.Fatalf("voice_type = %v", audioCfg["voice_type"])
	}
	if audioCfg["encoding"] != "mp3" {
		t.Fatalf("encoding = %v", audioCfg["encoding"])
	}
}

func TestSynthesizeTruncatesLongText(t *testing.T) {
	var sentText string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Request struct {
				Text string `json:"text"`
			} `json:"request"`
		}
		json.NewDecoder(r.Body).Decode(&payload)
		sentText = payload.Request.Text
		json.NewEncoder(w).Encode(map[string]string{"data": base64.StdEncoding.EncodeToString([]byte("x"))})
	})

	long := strings.Repeat("很", 1000)
	if _, err := c.Synthesize(context.Background(), long, "v"); err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if utf8.RuneCountInString(sentText) != maxTTSChars {
		t.Fatalf("sent %d runes, want %d", utf8.RuneCountInString(sentText), maxTTSChars)
	}
}

func TestSynthesizeDisabledByConfig(t *testing.T) {
	c := NewClient(Config{APIKey: "key", BaseURL: "http://unused", TTSEnabled: false}, core.NewDevelopmentLogger())
	_, err := c.Synthesize(context.Background(), "text", "v")
	if !errors.Is(err, core.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable when TTS disabled, got %v", err)
	}
}

func TestSynthesizeUsesDefaultVoice(t *testing.T) {
	var gotVoice string
	srvClient := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Audio struct {
				VoiceType string `json:"voice_type"`
			} `json:"audio"`
		}
		json.NewDecoder(r.Body).Decode(&payload)
		gotVoice = payload.Audio.VoiceType
		json.NewEncoder(w).Encode(map[string]string{"data": base64.StdEncoding.EncodeToString([]byte("x"))})
	})
	srvClient.cfg.DefaultVoice = "fallback_voice"

	if _, err := srvClient.Synthesize(context.Background(), "text", ""); err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if gotVoice != "fallback_voice" {
		t.Fatalf("voice = %q, want default voice", gotVoice)
	}
}

func TestSynthesizeMissingDataField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})
	if _, err := c.Synthesize(context.Background(), "text", "v"); err == nil {
		t.Fatal("expected error when response has no audio payload")
	}
}

func TestSynthesizeUpstreamFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})
	_, err := c.Synthesize(context.Background(), "text", "v")
	var ge *core.GatewayError
	if !errors.As(err, &ge) {
		t.Fatalf("expected *core.GatewayError, got %v", err)
	}
}

func TestListVoicesRelaysUpstream(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/voice/list" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing auth header")
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"voice_type":"qiniu_zh_male_yzcs"}]`))
	})

	status, body, err := c.ListVoices(context.Background())
	if err != nil {
		t.Fatalf("ListVoices: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(string(body), "qiniu_zh_male_yzcs") {
		t.Fatalf("body = %q", body)
	}
}
