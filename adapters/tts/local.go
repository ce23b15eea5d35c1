package tts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/satriahrh/monologue/domain/entities"
	"github.com/satriahrh/monologue/domain/repositories"
)

const (
	defaultRate     = 1.0
	maxRate         = 4.0
	baseWordsPerMin = 175
	tempFilePrefix  = "monologue-"
	waitDelay       = 2 * time.Second
)

type synthesizerKind int

const (
	kindESpeak synthesizerKind = iota
	kindSay
)

// LocalConfig holds configuration for the LocalTTS adapter
type LocalConfig struct {
	Binary  string  // Optional: synthesizer path; detected from PATH when empty
	Rate    float64 // Optional: speech rate multiplier in (0, 4] (default: 1.0)
	TempDir string  // Optional: directory for per-request audio files (default: os.TempDir())
}

// LocalTTS implements TextToSpeech with an OS speech utility (espeak-ng,
// espeak or macOS say). Every call renders into its own temp WAV file which
// is removed before the call returns.
type LocalTTS struct {
	binary  string
	kind    synthesizerKind
	rate    float64
	tempDir string
	logger  *zap.Logger
}

var _ repositories.TextToSpeech = (*LocalTTS)(nil)

// NewLocalTTS creates a local synthesizer, resolving the binary to use
func NewLocalTTS(config LocalConfig, logger *zap.Logger) (*LocalTTS, error) {
	rate := config.Rate
	if rate == 0 {
		rate = defaultRate
	}
	if rate < 0 || rate > maxRate {
		return nil, fmt.Errorf("speech rate must be between 0 and %.0f, got %f", maxRate, rate)
	}

	binary := config.Binary
	if binary == "" {
		detected, err := detectSynthesizer()
		if err != nil {
			return nil, err
		}
		binary = detected
		logger.Info("Using detected speech synthesizer", zap.String("binary", binary))
	} else if _, err := exec.LookPath(binary); err != nil {
		return nil, fmt.Errorf("speech synthesizer %q not available: %w", binary, err)
	}

	tempDir := config.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	return &LocalTTS{
		binary:  binary,
		kind:    kindOf(binary),
		rate:    rate,
		tempDir: tempDir,
		logger:  logger,
	}, nil
}

func detectSynthesizer() (string, error) {
	candidates := []string{"espeak-ng", "espeak"}
	if runtime.GOOS == "darwin" {
		candidates = []string{"say"}
	}
	for _, bin := range candidates {
		if path, err := exec.LookPath(bin); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("speech synthesizer not available: install %s", strings.Join(candidates, " or "))
}

func kindOf(binary string) synthesizerKind {
	if filepath.Base(binary) == "say" {
		return kindSay
	}
	return kindESpeak
}

// SynthesizeAudio renders text to WAV and returns the file contents.
// Synthesis and read failures are reported as ErrSynthesisFailed and
// ErrAudioRead respectively.
func (l *LocalTTS) SynthesizeAudio(ctx context.Context, text string) (entities.Audio, error) {
	if strings.TrimSpace(text) == "" {
		return entities.Audio{}, fmt.Errorf("%w: text cannot be empty", entities.ErrSynthesisFailed)
	}

	path := filepath.Join(l.tempDir, tempFilePrefix+uuid.NewString()+".wav")
	defer l.removeTemp(path)

	l.logger.Info("Synthesizing speech locally",
		zap.String("binary", l.binary),
		zap.Float64("rate", l.rate),
		zap.String("path", path))

	cmd := exec.CommandContext(ctx, l.binary, l.args(path)...)
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	if err := cmd.Run(); err != nil {
		l.logger.Error("Speech synthesizer failed",
			zap.Error(err),
			zap.String("stderr", strings.TrimSpace(stderr.String())))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return entities.Audio{}, fmt.Errorf("%w: %w", entities.ErrSynthesisFailed, ctxErr)
		}
		return entities.Audio{}, fmt.Errorf("%w: %s: %w", entities.ErrSynthesisFailed, filepath.Base(l.binary), err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Error("Failed to read synthesized audio", zap.Error(err), zap.String("path", path))
		return entities.Audio{}, fmt.Errorf("%w: %w", entities.ErrAudioRead, err)
	}
	if len(data) == 0 {
		return entities.Audio{}, fmt.Errorf("%w: synthesizer produced no audio", entities.ErrSynthesisFailed)
	}

	return entities.Audio{Data: data, MIMEType: entities.MIMETypeWAV}, nil
}

// args builds the synthesizer command line; text is always fed on stdin
func (l *LocalTTS) args(outPath string) []string {
	wpm := strconv.Itoa(int(math.Round(baseWordsPerMin * l.rate)))
	switch l.kind {
	case kindSay:
		return []string{"-r", wpm, "--file-format=WAVE", "--data-format=LEI16@22050", "-o", outPath, "-f", "-"}
	default:
		return []string{"-s", wpm, "-w", outPath, "--stdin"}
	}
}

// removeTemp deletes the per-request file. Failures are logged only.
func (l *LocalTTS) removeTemp(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		l.logger.Warn("Failed to delete temporary audio file", zap.String("path", path), zap.Error(err))
	}
}
