package entities

import (
	"encoding/base64"
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxTopicLength is the longest topic, in runes, accepted from a client
const MaxTopicLength = 200

// Audio MIME types produced by the synthesizers
const (
	MIMETypeMPEG = "audio/mpeg"
	MIMETypeWAV  = "audio/wav"
)

// Topic is a validated, whitespace-trimmed monologue topic
type Topic string

// NewTopic validates raw client input and returns it as a Topic
func NewTopic(raw string) (Topic, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyTopic
	}
	if utf8.RuneCountInString(trimmed) > MaxTopicLength {
		return "", ErrTopicTooLong
	}
	return Topic(trimmed), nil
}

func (t Topic) String() string {
	return string(t)
}

// Audio holds synthesized speech and the MIME type it was produced in
type Audio struct {
	Data     []byte `json:"-"`
	MIMEType string `json:"mime_type"`
}

// Validate checks that the audio carries data and a MIME type
func (a Audio) Validate() error {
	if len(a.Data) == 0 {
		return errors.New("audio data is empty")
	}
	if a.MIMEType == "" {
		return errors.New("audio MIME type is required")
	}
	return nil
}

// DataURI renders the audio inline as data:<mime>;base64,<payload>
func (a Audio) DataURI() string {
	return "data:" + a.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// Extension returns a file extension matching the MIME type
func (a Audio) Extension() string {
	switch a.MIMEType {
	case MIMETypeWAV:
		return ".wav"
	case MIMETypeMPEG:
		return ".mp3"
	default:
		return ".bin"
	}
}

// Monologue is the result of one generation request. It lives for a single
// request/response cycle and is never stored.
type Monologue struct {
	Topic  Topic  `json:"topic"`
	Script string `json:"script"`
	Audio  Audio  `json:"audio"`
}
