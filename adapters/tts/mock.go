package tts

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/satriahrh/monologue/domain/entities"
	"github.com/satriahrh/monologue/domain/repositories"
)

const (
	mockSampleRate     = 16000
	mockSamplesPerChar = 80
	mockMaxSamples     = mockSampleRate * 30
)

// MockTextToSpeech is an offline stand-in that renders a silent-ish PCM WAV
// whose length follows the text length
type MockTextToSpeech struct {
	logger *zap.Logger
}

var _ repositories.TextToSpeech = (*MockTextToSpeech)(nil)

// NewMockTextToSpeech creates a new mock text-to-speech service
func NewMockTextToSpeech(logger *zap.Logger) *MockTextToSpeech {
	return &MockTextToSpeech{
		logger: logger,
	}
}

// SynthesizeAudio implements repositories.TextToSpeech
func (t *MockTextToSpeech) SynthesizeAudio(ctx context.Context, text string) (entities.Audio, error) {
	if err := ctx.Err(); err != nil {
		return entities.Audio{}, err
	}
	if strings.TrimSpace(text) == "" {
		return entities.Audio{}, fmt.Errorf("text cannot be empty")
	}

	samples := min(len(text)*mockSamplesPerChar, mockMaxSamples)

	t.logger.Info("Processing mock text-to-speech",
		zap.Int("textLength", len(text)),
		zap.Int("samples", samples))

	// Fill with a low amplitude pattern to simulate audio data
	pcm := make([]int16, samples)
	for i := range pcm {
		pcm[i] = int16((i%64)-32) * 16
	}

	data, err := encodeWAV(pcm, mockSampleRate)
	if err != nil {
		return entities.Audio{}, err
	}
	return entities.Audio{Data: data, MIMEType: entities.MIMETypeWAV}, nil
}

// encodeWAV wraps 16-bit mono PCM samples in a RIFF/WAVE container
func encodeWAV(pcm []int16, sampleRate int) ([]byte, error) {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	dataSize := uint32(len(pcm) * bitsPerSample / 8)
	blockAlign := uint16(channels * bitsPerSample / 8)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	if err := binary.Write(&buf, binary.LittleEndian, uint32(36)+dataSize); err != nil {
		return nil, fmt.Errorf("write wav header: %w", err)
	}
	buf.WriteString("WAVEfmt ")
	format := []any{
		uint32(16),
		uint16(1), // PCM
		uint16(channels),
		uint32(sampleRate),
		uint32(sampleRate) * uint32(blockAlign),
		blockAlign,
		uint16(bitsPerSample),
	}
	for _, v := range format {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("write wav format: %w", err)
		}
	}
	buf.WriteString("data")
	if err := binary.Write(&buf, binary.LittleEndian, dataSize); err != nil {
		return nil, fmt.Errorf("write wav data size: %w", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, pcm); err != nil {
		return nil, fmt.Errorf("write wav samples: %w", err)
	}
	return buf.Bytes(), nil
}
