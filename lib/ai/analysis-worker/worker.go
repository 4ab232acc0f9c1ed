package analysisworker

import (
	"context"
	"interview-prep-backend/db"
	"interview-prep-backend/lib/ai/evaluation"
	"interview-prep-backend/lib/ai/facial"
	"interview-prep-backend/lib/ai/transcription"
	"interview-prep-backend/lib/confidence"
	questionstore "interview-prep-backend/lib/question/store"
	sessionhandler "interview-prep-backend/lib/session"
	answerstore "interview-prep-backend/lib/session/answer-store"
	sessionstore "interview-prep-backend/lib/session/store"
	baseworker "interview-prep-backend/lib/utils/base-worker"
	"interview-prep-backend/models"
	dbmodels "interview-prep-backend/models/db"
	"time"
)

const (
	firstRunDelay = 5 * time.Second
	handlePeriod  = 30 * time.Second
	batchSize     = 20
)

// scores submitted answers: analysis stubs first, then the confidence
// aggregation
func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl:      *baseworker.NewInstance("AnswerAnalysisWorker", firstRunDelay, handlePeriod),
		answerStore:   answerstore.NewInstance(db.DB),
		sessionStore:  sessionstore.NewInstance(db.DB),
		questionStore: questionstore.NewInstance(db.DB),
		transcription: transcription.Instance,
		facial:        facial.Instance,
		evaluation:    evaluation.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	answerStore   answerstore.Provider
	sessionStore  sessionstore.Provider
	questionStore questionstore.Provider
	transcription transcription.Provider
	facial        facial.Provider
	evaluation    evaluation.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.answerStore.GetPendingAnalysis(batchSize)
	if err != nil {
		logger.WithError(err).Error("error fetching answers pending analysis")
		return
	}
	for _, answer := range list {
		err := i.analyze(ctx, answer)
		if err != nil {
			logger.WithError(err).
				WithField("answer_id", answer.ID).
				Error("error analyzing answer")
			updErr := i.answerStore.Update(answer.ID, map[string]interface{}{
				"analysis_status": models.AnalysisFailed,
			})
			if updErr != nil {
				logger.WithError(updErr).
					WithField("answer_id", answer.ID).
					Error("error marking answer as failed")
			}
			continue
		}
		logger.
			WithField("answer_id", answer.ID).
			Info("answer analyzed")
		err = i.refreshSessionScore(answer.SessionID)
		if err != nil {
			logger.WithError(err).
				WithField("session_id", answer.SessionID).
				Error("error refreshing session score")
		}
	}
}

// a session closed before all of its answers were analyzed carries a score
// computed from a partial set; recompute it once the late answer lands
func (i impl) refreshSessionScore(sessionID string) error {
	session, err := i.sessionStore.GetByID(sessionID)
	if err != nil {
		return err
	}
	if session == nil || session.Status == models.SessionActive {
		return nil
	}
	answers, err := i.answerStore.GetBySession(sessionID)
	if err != nil {
		return err
	}
	return i.sessionStore.Update(sessionID, map[string]interface{}{
		"score": sessionhandler.SessionScore(answers),
	})
}

func (i impl) analyze(ctx context.Context, answer dbmodels.SessionAnswer) error {
	voice, err := i.transcription.Transcribe(ctx, answer.RecordingID)
	if err != nil {
		return err
	}
	face, err := i.facial.Analyze(ctx, answer.RecordingID)
	if err != nil {
		return err
	}
	questionText := ""
	question, err := i.questionStore.GetByID(answer.QuestionID)
	if err != nil {
		return err
	}
	if question != nil {
		questionText = question.Text
	}
	eval, err := i.evaluation.Evaluate(questionText, answer.AnswerText)
	if err != nil {
		return err
	}

	result := confidence.Aggregate(confidence.Inputs{
		VoiceVolume:        voice.Voice.Volume,
		VoiceStability:     voice.Voice.Stability,
		PauseFrequency:     voice.Voice.PauseFrequency,
		FacialConfidence:   face.FacialConfidence,
		EmotionPositivity:  face.EmotionPositivity,
		AnswerQuality:      eval.Quality,
		AnswerCompleteness: eval.Completeness,
	})

	updMap := map[string]interface{}{
		"transcript":          voice.Transcript,
		"voice_volume":        voice.Voice.Volume,
		"voice_stability":     voice.Voice.Stability,
		"pause_frequency":     voice.Voice.PauseFrequency,
		"facial_confidence":   face.FacialConfidence,
		"emotion_positivity":  face.EmotionPositivity,
		"answer_quality":      eval.Quality,
		"answer_completeness": eval.Completeness,
		"feedback":            eval.Feedback,
		"confidence_score":    result.Score,
		"confidence_level":    result.Level,
		"analysis_status":     models.AnalysisDone,
	}
	return i.answerStore.Update(answer.ID, updMap)
}
