// Package facial is a stub facial-emotion provider. No vision model is wired
// in: Analyze returns fixed confidence and positivity values.
package facial

import (
	"context"
	aiapimodels "interview-prep-backend/models/api/ai"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Analyze(ctx context.Context, recordingID string) (resp aiapimodels.FacialAnalysisResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) Analyze(ctx context.Context, recordingID string) (resp aiapimodels.FacialAnalysisResponse, err error) {
	log.
		WithField("recording_id", recordingID).
		Debug("facial analysis stub called")
	return aiapimodels.FacialAnalysisResponse{
		FacialConfidence:  85,
		EmotionPositivity: 40, // -100..100 scale
		DominantEmotion:   "neutral",
		IsMock:            true,
	}, nil
}
