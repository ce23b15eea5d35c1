package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/satriahrh/monologue/internal/config"
)

var (
	cfgFile  string
	envFiles []string
)

var rootCmd = &cobra.Command{
	Use:   "monologue",
	Short: "Generate spoken podcast monologues from a topic",
	Long: `monologue asks a language model for a short podcast-style monologue
on a topic and turns it into speech with ElevenLabs or a local synthesizer.

Commands:
  serve     - HTTP API (POST /api/generate)
  generate  - one-shot generation from the command line
  voices    - list ElevenLabs voices for ELEVENLABS_VOICE_ID`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (environment variables take precedence)")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "dotenv files to load")
}

// loadConfig reads dotenv files, the optional YAML file and the environment
func loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return config.Config{}, err
	}
	return config.Loader{Path: cfgFile}.Load()
}

// newLogger builds a production zap logger at the configured level
func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(parsed)
	return zapConfig.Build()
}
