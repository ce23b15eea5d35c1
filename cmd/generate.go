package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var outPath string

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate one monologue and write its audio to a file",
	Example: `  monologue generate the history of coffee
  monologue generate --out coffee.mp3 "the history of coffee"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "audio output path (default: monologue.<ext>)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	monologueService, err := newMonologueService(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	monologue, err := monologueService.Generate(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	path := outPath
	if path == "" {
		path = "monologue" + monologue.Audio.Extension()
	}
	if err := os.WriteFile(path, monologue.Audio.Data, 0o644); err != nil {
		return fmt.Errorf("write audio: %w", err)
	}

	logger.Info("Monologue written", zap.String("path", path), zap.Int("bytes", len(monologue.Audio.Data)))
	fmt.Fprintln(cmd.OutOrStdout(), monologue.Script)
	return nil
}
