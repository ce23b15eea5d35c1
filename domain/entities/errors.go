package entities

import "errors"

var (
	// ErrEmptyTopic is returned when the topic is missing or blank
	ErrEmptyTopic = errors.New("topic is required")
	// ErrTopicTooLong is returned when the topic exceeds MaxTopicLength
	ErrTopicTooLong = errors.New("topic is too long")

	// ErrScriptGeneration marks failures of the text-generation provider
	ErrScriptGeneration = errors.New("script generation failed")

	// ErrSynthesisFailed marks a local synthesizer that could not produce audio
	ErrSynthesisFailed = errors.New("speech synthesis failed")
	// ErrAudioRead marks a synthesized audio file that could not be read back
	ErrAudioRead = errors.New("failed to read synthesized audio")
)
