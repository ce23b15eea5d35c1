package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Loader builds a Config from defaults, an optional YAML file and the
// environment, in that order of precedence. Tests can override Lookup and
// ReadFile to inject deterministic inputs.
type Loader struct {
	Path     string
	Lookup   func(string) (string, bool)
	ReadFile func(string) ([]byte, error)
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment. Missing files are ignored; existing variables win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	return nil
}

// Load retrieves the configuration and validates it
func (l Loader) Load() (Config, error) {
	if l.Lookup == nil {
		l.Lookup = os.LookupEnv
	}
	if l.ReadFile == nil {
		l.ReadFile = os.ReadFile
	}

	cfg := Default()

	if l.Path != "" {
		raw, err := l.ReadFile(l.Path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", l.Path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", l.Path, err)
		}
	}

	if err := l.applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.LLMProvider = strings.ToLower(cfg.LLMProvider)
	cfg.TTSProvider = strings.ToLower(cfg.TTSProvider)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (l Loader) applyEnv(cfg *Config) error {
	overrideString(l.Lookup, "PORT", &cfg.Port)
	overrideString(l.Lookup, "LOG_LEVEL", &cfg.LogLevel)
	overrideString(l.Lookup, "LLM_PROVIDER", &cfg.LLMProvider)
	overrideString(l.Lookup, "TTS_PROVIDER", &cfg.TTSProvider)

	overrideString(l.Lookup, "GEMINI_API_KEY", &cfg.Gemini.APIKey)
	overrideString(l.Lookup, "GEMINI_MODEL", &cfg.Gemini.Model)
	overrideString(l.Lookup, "GEMINI_BASE_URL", &cfg.Gemini.BaseURL)

	overrideString(l.Lookup, "ELEVENLABS_API_KEY", &cfg.ElevenLabs.APIKey)
	overrideString(l.Lookup, "ELEVENLABS_VOICE_ID", &cfg.ElevenLabs.VoiceID)
	overrideString(l.Lookup, "ELEVENLABS_MODEL_ID", &cfg.ElevenLabs.ModelID)
	overrideString(l.Lookup, "ELEVENLABS_API_BASE_URL", &cfg.ElevenLabs.APIBaseURL)

	overrideString(l.Lookup, "LOCAL_TTS_BINARY", &cfg.LocalTTS.Binary)
	overrideString(l.Lookup, "LOCAL_TTS_TEMP_DIR", &cfg.LocalTTS.TempDir)

	if err := overrideFloat(l.Lookup, "ELEVENLABS_STABILITY", &cfg.ElevenLabs.Stability); err != nil {
		return err
	}
	if err := overrideFloat(l.Lookup, "ELEVENLABS_SIMILARITY_BOOST", &cfg.ElevenLabs.Clarity); err != nil {
		return err
	}
	if err := overrideFloat(l.Lookup, "LOCAL_TTS_RATE", &cfg.LocalTTS.Rate); err != nil {
		return err
	}
	if err := overrideDuration(l.Lookup, "GENERATION_TIMEOUT", &cfg.GenerationTimeout); err != nil {
		return err
	}
	if err := overrideDuration(l.Lookup, "SYNTHESIS_TIMEOUT", &cfg.SynthesisTimeout); err != nil {
		return err
	}
	return nil
}

func lookupTrimmed(lookup func(string) (string, bool), key string) (string, bool) {
	value, ok := lookup(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func overrideString(lookup func(string) (string, bool), key string, target *string) {
	if value, ok := lookupTrimmed(lookup, key); ok {
		*target = value
	}
}

func overrideFloat(lookup func(string) (string, bool), key string, target *float64) error {
	value, ok := lookupTrimmed(lookup, key)
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", key, err)
	}
	*target = parsed
	return nil
}

func overrideDuration(lookup func(string) (string, bool), key string, target *time.Duration) error {
	value, ok := lookupTrimmed(lookup, key)
	if !ok {
		return nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", key, err)
	}
	*target = parsed
	return nil
}
