package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Provider names accepted in configuration
const (
	LLMProviderGemini = "gemini"
	LLMProviderMock   = "mock"

	TTSProviderElevenLabs = "elevenlabs"
	TTSProviderLocal      = "local"
	TTSProviderMock       = "mock"
)

// Defaults applied before the file and environment are read
const (
	DefaultPort              = "5000"
	DefaultLogLevel          = "info"
	DefaultGenerationTimeout = 60 * time.Second
	DefaultSynthesisTimeout  = 120 * time.Second
	DefaultLocalRate         = 1.0
	DefaultGeminiModel       = "gemini-1.5-flash"
	DefaultVoiceStability    = 0.5
	DefaultSimilarityBoost   = 0.5
)

// Config is the complete service configuration
type Config struct {
	Port              string        `yaml:"port"`
	LogLevel          string        `yaml:"log_level"`
	LLMProvider       string        `yaml:"llm_provider"`
	TTSProvider       string        `yaml:"tts_provider"`
	GenerationTimeout time.Duration `yaml:"generation_timeout"`
	SynthesisTimeout  time.Duration `yaml:"synthesis_timeout"`

	Gemini     GeminiConfig     `yaml:"gemini"`
	ElevenLabs ElevenLabsConfig `yaml:"elevenlabs"`
	LocalTTS   LocalTTSConfig   `yaml:"local_tts"`
}

// GeminiConfig configures the text-generation provider
type GeminiConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// ElevenLabsConfig configures the cloud speech provider
type ElevenLabsConfig struct {
	APIKey     string  `yaml:"api_key"`
	VoiceID    string  `yaml:"voice_id"`
	ModelID    string  `yaml:"model_id"`
	APIBaseURL string  `yaml:"api_base_url"`
	Stability  float64 `yaml:"stability"`
	Clarity    float64 `yaml:"similarity_boost"`
}

// LocalTTSConfig configures the OS speech utility
type LocalTTSConfig struct {
	Binary  string  `yaml:"binary"`
	Rate    float64 `yaml:"rate"`
	TempDir string  `yaml:"temp_dir"`
}

// Default returns a configuration with every default applied
func Default() Config {
	return Config{
		Port:              DefaultPort,
		LogLevel:          DefaultLogLevel,
		LLMProvider:       LLMProviderGemini,
		TTSProvider:       TTSProviderElevenLabs,
		GenerationTimeout: DefaultGenerationTimeout,
		SynthesisTimeout:  DefaultSynthesisTimeout,
		Gemini: GeminiConfig{
			Model: DefaultGeminiModel,
		},
		ElevenLabs: ElevenLabsConfig{
			Stability: DefaultVoiceStability,
			Clarity:   DefaultSimilarityBoost,
		},
		LocalTTS: LocalTTSConfig{
			Rate: DefaultLocalRate,
		},
	}
}

// Validate checks the configuration for the selected providers
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Port) == "" {
		errs = append(errs, errors.New("port is required"))
	}

	switch c.LLMProvider {
	case LLMProviderGemini:
		if c.Gemini.APIKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required for the gemini provider"))
		}
	case LLMProviderMock:
	default:
		errs = append(errs, fmt.Errorf("unknown llm provider %q", c.LLMProvider))
	}

	switch c.TTSProvider {
	case TTSProviderElevenLabs:
		if c.ElevenLabs.APIKey == "" {
			errs = append(errs, errors.New("ELEVENLABS_API_KEY is required for the elevenlabs provider"))
		}
		if c.ElevenLabs.Stability < 0 || c.ElevenLabs.Stability > 1 {
			errs = append(errs, fmt.Errorf("elevenlabs stability must be between 0 and 1, got %v", c.ElevenLabs.Stability))
		}
		if c.ElevenLabs.Clarity < 0 || c.ElevenLabs.Clarity > 1 {
			errs = append(errs, fmt.Errorf("elevenlabs similarity boost must be between 0 and 1, got %v", c.ElevenLabs.Clarity))
		}
	case TTSProviderLocal:
		if c.LocalTTS.Rate <= 0 || c.LocalTTS.Rate > 4 {
			errs = append(errs, fmt.Errorf("local tts rate must be in (0, 4], got %v", c.LocalTTS.Rate))
		}
	case TTSProviderMock:
	default:
		errs = append(errs, fmt.Errorf("unknown tts provider %q", c.TTSProvider))
	}

	if c.GenerationTimeout <= 0 {
		errs = append(errs, fmt.Errorf("generation timeout must be positive, got %s", c.GenerationTimeout))
	}
	if c.SynthesisTimeout <= 0 {
		errs = append(errs, fmt.Errorf("synthesis timeout must be positive, got %s", c.SynthesisTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
