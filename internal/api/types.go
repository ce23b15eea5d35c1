package api

// GenerateRequest represents the request payload for monologue generation
type GenerateRequest struct {
	Topic string `json:"topic"`
}

// GenerateResponse represents a generated monologue. Audio is a base64 data URI.
type GenerateResponse struct {
	Script string `json:"script"`
	Audio  string `json:"audio"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	TTS     string `json:"tts"`
}

// Client-facing error messages
const (
	MessageInvalidRequest = "Invalid request body."
	MessageBodyTooLarge   = "Request body is too large."
	MessageTopicRequired  = "Topic is required."
	MessageTopicTooLong   = "Topic is too long."
	MessageGeneric        = "Something went wrong."
	MessageAudioFailed    = "Failed to generate audio."
	MessageAudioRead      = "Failed to read audio file."
)
