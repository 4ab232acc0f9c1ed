// Package transcription is a stub speech-to-text provider. No speech model is
// wired in: Transcribe returns a fixed transcript and fixed voice metrics so
// the answer-analysis pipeline can run end to end.
package transcription

import (
	"context"
	aiapimodels "interview-prep-backend/models/api/ai"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Transcribe(ctx context.Context, recordingID string) (resp aiapimodels.TranscriptionResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const mockTranscript = "This is a mock transcript. Speech-to-text is not connected in this build."

func (i impl) Transcribe(ctx context.Context, recordingID string) (resp aiapimodels.TranscriptionResponse, err error) {
	log.
		WithField("recording_id", recordingID).
		Debug("transcription stub called")
	return aiapimodels.TranscriptionResponse{
		Transcript: mockTranscript,
		Voice: aiapimodels.VoiceMetrics{
			Volume:         75,
			Stability:      80,
			PauseFrequency: 20,
		},
		IsMock: true,
	}, nil
}
