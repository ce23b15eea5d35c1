package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/satriahrh/monologue/adapters/llm"
	"github.com/satriahrh/monologue/adapters/tts"
	"github.com/satriahrh/monologue/domain/repositories"
	"github.com/satriahrh/monologue/internal/config"
	"github.com/satriahrh/monologue/usecase"
)

// newLLM builds the configured text-generation adapter
func newLLM(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories.LargeLanguageModel, error) {
	switch cfg.LLMProvider {
	case config.LLMProviderMock:
		logger.Warn("Using mock LLM provider")
		return llm.NewMockGeminiClient(), nil
	case config.LLMProviderGemini:
		return llm.NewGeminiLLM(ctx, llm.GeminiConfig{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			BaseURL: cfg.Gemini.BaseURL,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
}

// newTextToSpeech builds the configured speech synthesis adapter
func newTextToSpeech(cfg config.Config, logger *zap.Logger) (repositories.TextToSpeech, error) {
	switch cfg.TTSProvider {
	case config.TTSProviderMock:
		logger.Warn("Using mock TTS provider")
		return tts.NewMockTextToSpeech(logger), nil
	case config.TTSProviderLocal:
		return tts.NewLocalTTS(tts.LocalConfig{
			Binary:  cfg.LocalTTS.Binary,
			Rate:    cfg.LocalTTS.Rate,
			TempDir: cfg.LocalTTS.TempDir,
		}, logger)
	case config.TTSProviderElevenLabs:
		return newElevenLabs(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown tts provider %q", cfg.TTSProvider)
	}
}

func newElevenLabs(cfg config.Config, logger *zap.Logger) (*tts.ElevenLabsTTS, error) {
	return tts.NewElevenLabsTTS(tts.ElevenLabsConfig{
		APIKey:     cfg.ElevenLabs.APIKey,
		APIBaseURL: cfg.ElevenLabs.APIBaseURL,
		VoiceID:    cfg.ElevenLabs.VoiceID,
		ModelID:    cfg.ElevenLabs.ModelID,
		Stability:  &cfg.ElevenLabs.Stability,
		Clarity:    &cfg.ElevenLabs.Clarity,
	}, logger)
}

// newMonologueService wires both adapters into the pipeline
func newMonologueService(ctx context.Context, cfg config.Config, logger *zap.Logger) (*usecase.MonologueService, error) {
	llmService, err := newLLM(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init llm: %w", err)
	}

	textToSpeech, err := newTextToSpeech(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init tts: %w", err)
	}

	return usecase.NewMonologueService(llmService, textToSpeech, usecase.Timeouts{
		Generation: cfg.GenerationTimeout,
		Synthesis:  cfg.SynthesisTimeout,
	}, logger), nil
}
