package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List ElevenLabs voices available to the API key",
	RunE:  runVoices,
}

func init() {
	rootCmd.AddCommand(voicesCmd)
}

func runVoices(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	elevenLabs, err := newElevenLabs(cfg, logger)
	if err != nil {
		return err
	}

	voices, err := elevenLabs.GetAvailableVoices(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VOICE ID\tNAME\tCATEGORY")
	for _, voice := range voices {
		marker := ""
		if voice.VoiceID == elevenLabs.VoiceID() {
			marker = " (configured)"
		}
		fmt.Fprintf(w, "%s\t%s%s\t%s\n", voice.VoiceID, voice.Name, marker, voice.Category)
	}
	return w.Flush()
}
