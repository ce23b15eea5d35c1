package repositories

import (
	"context"

	"github.com/satriahrh/monologue/domain/entities"
)

// TextToSpeech abstracts speech synthesis backends, cloud or local
type TextToSpeech interface {
	// SynthesizeAudio converts text to a fully buffered audio clip
	SynthesizeAudio(ctx context.Context, text string) (entities.Audio, error)
}
