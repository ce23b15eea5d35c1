package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/satriahrh/monologue/domain/entities"
	"github.com/satriahrh/monologue/domain/repositories"
)

const (
	defaultAPIBaseURL  = "https://api.elevenlabs.io/v1"
	defaultVoiceID     = "21m00Tcm4TlvDq8ikWAM"   // Rachel voice
	defaultModelID     = "eleven_multilingual_v2" // Default model ID
	defaultStability   = 0.5                      // Default voice stability
	defaultClarity     = 0.5                      // Default voice clarity/similarity_boost
	errorBodyLimit     = 4096
)

// ElevenLabsConfig holds configuration for the ElevenLabsTTS adapter
// Required fields:
// - APIKey: Your Eleven Labs API key
// Optional fields with defaults:
// - APIBaseURL: The base URL for the Eleven Labs API (default: "https://api.elevenlabs.io/v1")
// - VoiceID: The voice ID to use (default: "21m00Tcm4TlvDq8ikWAM" - Rachel voice)
// - ModelID: The model ID to use (default: "eleven_multilingual_v2")
// - Stability: Voice stability value between 0 and 1 (default: 0.5)
// - Clarity: Voice clarity/similarity boost value between 0 and 1 (default: 0.5)
type ElevenLabsConfig struct {
	APIKey     string   // Required: Your Eleven Labs API key
	APIBaseURL string   // Optional: The base URL for the Eleven Labs API
	VoiceID    string   // Optional: The voice ID to use
	ModelID    string   // Optional: The model ID to use
	Stability  *float64 // Optional: Voice stability value between 0 and 1; nil uses the default
	Clarity    *float64 // Optional: Voice clarity/similarity boost value between 0 and 1; nil uses the default
}

// ElevenLabsTTS implements TextToSpeech interface using Eleven Labs API
type ElevenLabsTTS struct {
	apiKey     string
	apiBaseURL string
	voiceID    string
	modelID    string
	stability  float64
	clarity    float64
	httpClient *http.Client
	logger     *zap.Logger
}

// Ensure ElevenLabsTTS implements the TextToSpeech interface
var _ repositories.TextToSpeech = (*ElevenLabsTTS)(nil)

// ElevenLabsVoiceSettings represents voice settings for Eleven Labs API
type ElevenLabsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// ElevenLabsRequest represents the request payload for Eleven Labs TTS API
type ElevenLabsRequest struct {
	Text          string                  `json:"text"`
	ModelID       string                  `json:"model_id"`
	VoiceSettings ElevenLabsVoiceSettings `json:"voice_settings"`
}

// Voice is a voice available to the configured account
type Voice struct {
	VoiceID  string `json:"voice_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ValidateElevenLabsConfig validates the ElevenLabsConfig
func ValidateElevenLabsConfig(config ElevenLabsConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("eleven labs API key is required")
	}

	// Validate stability is in the valid range
	if s := config.Stability; s != nil && (*s < 0 || *s > 1) {
		return fmt.Errorf("stability must be between 0 and 1, got %f", *s)
	}

	// Validate clarity is in the valid range
	if c := config.Clarity; c != nil && (*c < 0 || *c > 1) {
		return fmt.Errorf("clarity must be between 0 and 1, got %f", *c)
	}

	return nil
}

// NewElevenLabsTTS creates a new Eleven Labs TTS instance
func NewElevenLabsTTS(config ElevenLabsConfig, logger *zap.Logger) (*ElevenLabsTTS, error) {
	// Validate required configuration
	if err := ValidateElevenLabsConfig(config); err != nil {
		return nil, err
	}

	// Apply defaults where needed
	apiBaseURL := strings.TrimRight(config.APIBaseURL, "/")
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
		logger.Info("Using default API base URL", zap.String("apiBaseURL", apiBaseURL))
	}

	voiceID := config.VoiceID
	if voiceID == "" {
		voiceID = defaultVoiceID
		logger.Info("Using default voice ID", zap.String("voiceID", voiceID))
	}

	modelID := config.ModelID
	if modelID == "" {
		modelID = defaultModelID
		logger.Info("Using default model ID", zap.String("modelID", modelID))
	}

	stability := float64(defaultStability)
	if config.Stability != nil {
		stability = *config.Stability
	} else {
		logger.Info("Using default stability", zap.Float64("stability", stability))
	}

	clarity := float64(defaultClarity)
	if config.Clarity != nil {
		clarity = *config.Clarity
	} else {
		logger.Info("Using default clarity", zap.Float64("clarity", clarity))
	}

	return &ElevenLabsTTS{
		apiKey:     config.APIKey,
		apiBaseURL: apiBaseURL,
		voiceID:    voiceID,
		modelID:    modelID,
		stability:  stability,
		clarity:    clarity,
		httpClient: &http.Client{},
		logger:     logger,
	}, nil
}

// SynthesizeAudio converts text to MPEG audio with a single buffered request.
// Any non-2xx answer is a failure regardless of status code. The call is
// bounded only by ctx.
func (e *ElevenLabsTTS) SynthesizeAudio(ctx context.Context, text string) (entities.Audio, error) {
	if strings.TrimSpace(text) == "" {
		return entities.Audio{}, fmt.Errorf("text cannot be empty")
	}

	e.logger.Info("Converting text to speech",
		zap.Int("textLength", len(text)),
		zap.String("voiceID", e.voiceID),
		zap.String("modelID", e.modelID))

	request := ElevenLabsRequest{
		Text:    text,
		ModelID: e.modelID,
		VoiceSettings: ElevenLabsVoiceSettings{
			Stability:       e.stability,
			SimilarityBoost: e.clarity,
		},
	}

	requestBody, err := json.Marshal(request)
	if err != nil {
		return entities.Audio{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", e.apiBaseURL, e.voiceID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return entities.Audio{}, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Accept", entities.MIMETypeMPEG)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("xi-api-key", e.apiKey)

	e.logger.Debug("Sending request to Eleven Labs API", zap.String("url", url))

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return entities.Audio{}, fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		e.logger.Error("Eleven Labs API returned error",
			zap.Int("statusCode", resp.StatusCode),
			zap.String("response", string(errorBody)))
		return entities.Audio{}, fmt.Errorf("eleven labs API returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.Audio{}, fmt.Errorf("failed to read audio response: %w", err)
	}
	if len(data) == 0 {
		return entities.Audio{}, fmt.Errorf("eleven labs API returned an empty audio body")
	}

	e.logger.Info("Successfully received response from Eleven Labs API",
		zap.String("contentType", resp.Header.Get("Content-Type")),
		zap.Int("totalBytes", len(data)))

	return entities.Audio{Data: data, MIMEType: entities.MIMETypeMPEG}, nil
}

// GetAvailableVoices retrieves available voices from Eleven Labs API
func (e *ElevenLabsTTS) GetAvailableVoices(ctx context.Context) ([]Voice, error) {
	url := fmt.Sprintf("%s/voices", e.apiBaseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("xi-api-key", e.apiKey)

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, fmt.Errorf("API returned error %d: %s", resp.StatusCode, string(errorBody))
	}

	var voicesResponse struct {
		Voices []Voice `json:"voices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&voicesResponse); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	e.logger.Info("Retrieved available voices", zap.Int("count", len(voicesResponse.Voices)))
	return voicesResponse.Voices, nil
}

// VoiceID returns the voice used for synthesis
func (e *ElevenLabsTTS) VoiceID() string {
	return e.voiceID
}
