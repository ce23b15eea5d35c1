package tts

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/satriahrh/monologue/domain/entities"
)

type capturedRequest struct {
	method  string
	path    string
	headers http.Header
	body    ElevenLabsRequest
}

func newFakeElevenLabs(t *testing.T, status int, audio []byte) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var captured []capturedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body ElevenLabsRequest
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		captured = append(captured, capturedRequest{
			method:  r.Method,
			path:    r.URL.Path,
			headers: r.Header.Clone(),
			body:    body,
		})

		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = io.WriteString(w, `{"detail":{"status":"quota_exceeded"}}`)
			return
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write(audio)
	}))
	t.Cleanup(server.Close)
	return server, &captured
}

func ptr(v float64) *float64 {
	return &v
}

func TestNewElevenLabsTTS(t *testing.T) {
	logger := zaptest.NewLogger(t)

	// Test without API key
	_, err := NewElevenLabsTTS(ElevenLabsConfig{}, logger)
	if err == nil {
		t.Error("Expected error when API key is not set")
	}

	// Test with API key
	tts, err := NewElevenLabsTTS(ElevenLabsConfig{APIKey: "test-api-key"}, logger)
	if err != nil {
		t.Fatalf("Failed to create ElevenLabsTTS: %v", err)
	}

	if tts.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", tts.apiKey)
	}

	if tts.VoiceID() != defaultVoiceID {
		t.Errorf("Expected default voice ID '%s', got '%s'", defaultVoiceID, tts.VoiceID())
	}

	if tts.modelID != defaultModelID {
		t.Errorf("Expected default model ID '%s', got '%s'", defaultModelID, tts.modelID)
	}

	if tts.stability != 0.5 || tts.clarity != 0.5 {
		t.Errorf("Expected default voice settings 0.5/0.5, got %f/%f", tts.stability, tts.clarity)
	}
}

func TestValidateElevenLabsConfig(t *testing.T) {
	cases := []ElevenLabsConfig{
		{APIKey: "k", Stability: ptr(1.5)},
		{APIKey: "k", Stability: ptr(-0.1)},
		{APIKey: "k", Clarity: ptr(2)},
	}
	for _, config := range cases {
		if err := ValidateElevenLabsConfig(config); err == nil {
			t.Errorf("Expected validation error for %+v", config)
		}
	}
}

func TestElevenLabsTTS_SynthesizeAudio(t *testing.T) {
	audio := []byte("ID3\x04\x00fake-mpeg-frames")
	server, captured := newFakeElevenLabs(t, http.StatusOK, audio)

	tts, err := NewElevenLabsTTS(ElevenLabsConfig{
		APIKey:     "test-api-key",
		APIBaseURL: server.URL + "/",
		VoiceID:    "voice-123",
	}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Failed to create ElevenLabsTTS: %v", err)
	}

	result, err := tts.SynthesizeAudio(context.Background(), "Hello listeners")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if string(result.Data) != string(audio) {
		t.Errorf("Expected audio body to be returned unchanged")
	}
	if result.MIMEType != entities.MIMETypeMPEG {
		t.Errorf("Expected MIME type %s, got %s", entities.MIMETypeMPEG, result.MIMEType)
	}

	if len(*captured) != 1 {
		t.Fatalf("Expected one request, got %d", len(*captured))
	}
	req := (*captured)[0]
	if req.method != http.MethodPost || req.path != "/text-to-speech/voice-123" {
		t.Errorf("Unexpected request %s %s", req.method, req.path)
	}
	if req.headers.Get("xi-api-key") != "test-api-key" {
		t.Errorf("Expected API key header, got %q", req.headers.Get("xi-api-key"))
	}
	if req.headers.Get("Accept") != "audio/mpeg" {
		t.Errorf("Expected Accept audio/mpeg, got %q", req.headers.Get("Accept"))
	}
	if req.body.Text != "Hello listeners" || req.body.ModelID != "eleven_multilingual_v2" {
		t.Errorf("Unexpected request body %+v", req.body)
	}
	if req.body.VoiceSettings.Stability != 0.5 || req.body.VoiceSettings.SimilarityBoost != 0.5 {
		t.Errorf("Unexpected voice settings %+v", req.body.VoiceSettings)
	}
}

func TestElevenLabsTTS_SynthesizeAudio_ZeroVoiceSettings(t *testing.T) {
	server, captured := newFakeElevenLabs(t, http.StatusOK, []byte("ID3"))

	tts, err := NewElevenLabsTTS(ElevenLabsConfig{
		APIKey:     "k",
		APIBaseURL: server.URL,
		Stability:  ptr(0),
		Clarity:    ptr(0),
	}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Failed to create ElevenLabsTTS: %v", err)
	}

	if _, err := tts.SynthesizeAudio(context.Background(), "Hello"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	settings := (*captured)[0].body.VoiceSettings
	if settings.Stability != 0 || settings.SimilarityBoost != 0 {
		t.Errorf("Expected explicit zero voice settings, got %+v", settings)
	}
}

// Calls are bounded by the caller's context, not a fixed client timeout.
func TestElevenLabsTTS_NoClientTimeout(t *testing.T) {
	tts, err := NewElevenLabsTTS(ElevenLabsConfig{APIKey: "k"}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Failed to create ElevenLabsTTS: %v", err)
	}
	if tts.httpClient.Timeout != 0 {
		t.Errorf("Expected no client timeout, got %s", tts.httpClient.Timeout)
	}
}

func TestElevenLabsTTS_SynthesizeAudio_ProviderError(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusInternalServerError} {
		server, _ := newFakeElevenLabs(t, status, nil)

		tts, err := NewElevenLabsTTS(ElevenLabsConfig{APIKey: "k", APIBaseURL: server.URL}, zaptest.NewLogger(t))
		if err != nil {
			t.Fatalf("Failed to create ElevenLabsTTS: %v", err)
		}

		if _, err := tts.SynthesizeAudio(context.Background(), "Hello"); err == nil {
			t.Errorf("Expected error for status %d", status)
		}
	}
}

func TestElevenLabsTTS_SynthesizeAudio_EmptyBody(t *testing.T) {
	server, _ := newFakeElevenLabs(t, http.StatusOK, nil)

	tts, err := NewElevenLabsTTS(ElevenLabsConfig{APIKey: "k", APIBaseURL: server.URL}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Failed to create ElevenLabsTTS: %v", err)
	}

	if _, err := tts.SynthesizeAudio(context.Background(), "Hello"); err == nil {
		t.Error("Expected error for empty audio body")
	}
}

func TestElevenLabsTTS_SynthesizeAudio_EmptyText(t *testing.T) {
	tts, err := NewElevenLabsTTS(ElevenLabsConfig{APIKey: "test-api-key"}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Failed to create ElevenLabsTTS: %v", err)
	}

	ctx := context.Background()
	if _, err = tts.SynthesizeAudio(ctx, ""); err == nil {
		t.Error("Expected error for empty text")
	}

	if _, err = tts.SynthesizeAudio(ctx, "   "); err == nil {
		t.Error("Expected error for whitespace-only text")
	}
}

func TestElevenLabsTTS_SynthesizeAudio_Cancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	tts, err := NewElevenLabsTTS(ElevenLabsConfig{APIKey: "k", APIBaseURL: server.URL}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Failed to create ElevenLabsTTS: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := tts.SynthesizeAudio(ctx, "Hello"); err == nil {
		t.Error("Expected error when the context deadline passes")
	}
}

func TestElevenLabsTTS_GetAvailableVoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/voices" || r.Header.Get("xi-api-key") != "k" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `{"voices":[{"voice_id":"v1","name":"Rachel","category":"premade"},{"voice_id":"v2","name":"Adam"}]}`)
	}))
	defer server.Close()

	tts, err := NewElevenLabsTTS(ElevenLabsConfig{APIKey: "k", APIBaseURL: server.URL}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Failed to create ElevenLabsTTS: %v", err)
	}

	voices, err := tts.GetAvailableVoices(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(voices) != 2 || voices[0].VoiceID != "v1" || voices[1].Name != "Adam" {
		t.Errorf("Unexpected voices %+v", voices)
	}
}

// Integration test - only runs if ELEVENLABS_API_KEY is set with real API key
func TestElevenLabsTTS_SynthesizeAudio_Integration(t *testing.T) {
	apiKey := os.Getenv("ELEVENLABS_API_KEY")
	if apiKey == "" || apiKey == "test-api-key" {
		t.Skip("Skipping integration test - set ELEVENLABS_API_KEY environment variable with real API key")
	}

	tts, err := NewElevenLabsTTS(ElevenLabsConfig{
		APIKey:  apiKey,
		VoiceID: os.Getenv("ELEVENLABS_VOICE_ID"),
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to create ElevenLabsTTS: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	audio, err := tts.SynthesizeAudio(ctx, "This is an integration test of the monologue service.")
	if err != nil {
		t.Fatalf("Failed to convert text to speech: %v", err)
	}

	if len(audio.Data) == 0 {
		t.Error("No audio data received")
	}

	t.Logf("Integration test completed: received %d bytes", len(audio.Data))
}
