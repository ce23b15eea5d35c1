package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/satriahrh/monologue/domain/entities"
	"github.com/satriahrh/monologue/domain/repositories"
)

const scriptSnippetLength = 100

// Timeouts bounds each outbound provider call. Zero leaves the call bounded
// only by the caller's context.
type Timeouts struct {
	Generation time.Duration
	Synthesis  time.Duration
}

// MonologueService runs the topic -> script -> audio pipeline
type MonologueService struct {
	llm          repositories.LargeLanguageModel
	textToSpeech repositories.TextToSpeech
	timeouts     Timeouts
	logger       *zap.Logger
}

// NewMonologueService creates a new monologue service
func NewMonologueService(
	llm repositories.LargeLanguageModel,
	tts repositories.TextToSpeech,
	timeouts Timeouts,
	logger *zap.Logger,
) *MonologueService {
	return &MonologueService{
		llm:          llm,
		textToSpeech: tts,
		timeouts:     timeouts,
		logger:       logger,
	}
}

// Generate validates the topic, asks the LLM for a script and synthesizes it.
// Any failure aborts the whole request; no partial result is returned.
func (s *MonologueService) Generate(ctx context.Context, rawTopic string) (*entities.Monologue, error) {
	topic, err := entities.NewTopic(rawTopic)
	if err != nil {
		s.logger.Warn("Rejected topic", zap.String("topic", rawTopic), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Received topic", zap.String("topic", topic.String()))

	// Step 1: Script generation
	script, err := s.generateScript(ctx, topic)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Generated script",
		zap.String("snippet", snippet(script, scriptSnippetLength)),
		zap.Int("length", len(script)))

	// Step 2: Speech synthesis
	audio, err := s.synthesize(ctx, script)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Synthesized audio",
		zap.String("mimeType", audio.MIMEType),
		zap.Int("audioSize", len(audio.Data)))

	return &entities.Monologue{
		Topic:  topic,
		Script: script,
		Audio:  audio,
	}, nil
}

func (s *MonologueService) generateScript(ctx context.Context, topic entities.Topic) (string, error) {
	ctx, cancel := withOptionalTimeout(ctx, s.timeouts.Generation)
	defer cancel()

	script, err := s.llm.Generate(ctx, BuildPrompt(topic))
	if err != nil {
		s.logger.Error("Script generation failed", zap.Error(err))
		return "", fmt.Errorf("%w: %w", entities.ErrScriptGeneration, err)
	}

	script = strings.TrimSpace(script)
	if script == "" {
		s.logger.Error("Script generation returned empty text")
		return "", fmt.Errorf("%w: empty script", entities.ErrScriptGeneration)
	}
	return script, nil
}

func (s *MonologueService) synthesize(ctx context.Context, script string) (entities.Audio, error) {
	ctx, cancel := withOptionalTimeout(ctx, s.timeouts.Synthesis)
	defer cancel()

	audio, err := s.textToSpeech.SynthesizeAudio(ctx, script)
	if err != nil {
		s.logger.Error("Speech synthesis failed", zap.Error(err))
		return entities.Audio{}, fmt.Errorf("synthesize audio: %w", err)
	}
	if err := audio.Validate(); err != nil {
		s.logger.Error("Speech synthesis returned unusable audio", zap.Error(err))
		return entities.Audio{}, fmt.Errorf("synthesize audio: %w", err)
	}
	return audio, nil
}

func withOptionalTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// snippet returns at most n runes of text, marking truncation with "..."
func snippet(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n]) + "..."
}
