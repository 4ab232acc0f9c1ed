package analysisworker

import (
	"context"
	"testing"

	questionstore "interview-prep-backend/lib/question/store"
	answerstore "interview-prep-backend/lib/session/answer-store"
	sessionstore "interview-prep-backend/lib/session/store"
	baseworker "interview-prep-backend/lib/utils/base-worker"
	"interview-prep-backend/models"
	aiapimodels "interview-prep-backend/models/api/ai"
	dbmodels "interview-prep-backend/models/db"

	"github.com/stretchr/testify/require"
)

type stubAnswerStore struct {
	answerstore.Provider
	pending []dbmodels.SessionAnswer
	updates map[string]map[string]interface{}
}

func (s *stubAnswerStore) GetPendingAnalysis(limit int) ([]dbmodels.SessionAnswer, error) {
	return s.pending, nil
}

func (s *stubAnswerStore) Update(answerID string, updMap map[string]interface{}) error {
	s.updates[answerID] = updMap
	return nil
}

func (s *stubAnswerStore) GetBySession(sessionID string) ([]dbmodels.SessionAnswer, error) {
	var list []dbmodels.SessionAnswer
	for _, a := range s.pending {
		if a.SessionID != sessionID {
			continue
		}
		if upd, ok := s.updates[a.ID]; ok {
			a.AnalysisStatus = upd["analysis_status"].(models.AnswerAnalysisStatus)
			a.ConfidenceScore = upd["confidence_score"].(int)
		}
		list = append(list, a)
	}
	return list, nil
}

type stubSessionStore struct {
	sessionstore.Provider
	rec     *dbmodels.PracticeSession
	updates map[string]interface{}
}

func (s *stubSessionStore) GetByID(sessionID string) (*dbmodels.PracticeSession, error) {
	return s.rec, nil
}

func (s *stubSessionStore) Update(sessionID string, updMap map[string]interface{}) error {
	s.updates = updMap
	return nil
}

type stubQuestionStore struct {
	questionstore.Provider
}

func (s stubQuestionStore) GetByID(questionID string) (*dbmodels.Question, error) {
	return &dbmodels.Question{Text: "Tell me about yourself."}, nil
}

type stubTranscription struct{}

func (stubTranscription) Transcribe(ctx context.Context, recordingID string) (aiapimodels.TranscriptionResponse, error) {
	return aiapimodels.TranscriptionResponse{
		Transcript: "sample transcript",
		Voice:      aiapimodels.VoiceMetrics{Volume: 75, Stability: 80, PauseFrequency: 20},
	}, nil
}

type stubFacial struct{}

func (stubFacial) Analyze(ctx context.Context, recordingID string) (aiapimodels.FacialAnalysisResponse, error) {
	return aiapimodels.FacialAnalysisResponse{FacialConfidence: 85, EmotionPositivity: 40}, nil
}

type stubEvaluation struct{}

func (stubEvaluation) Evaluate(questionText, answerText string) (aiapimodels.EvaluationResponse, error) {
	return aiapimodels.EvaluationResponse{Quality: 78, Completeness: 82}, nil
}

func newWorker(sessionStatus models.SessionStatus) (impl, *stubAnswerStore, *stubSessionStore) {
	answers := &stubAnswerStore{
		pending: []dbmodels.SessionAnswer{
			{BaseModel: dbmodels.BaseModel{ID: "a1"}, SessionID: "s1", QuestionID: "q1", AnswerText: "an answer"},
		},
		updates: map[string]map[string]interface{}{},
	}
	sessions := &stubSessionStore{
		rec: &dbmodels.PracticeSession{
			BaseModel: dbmodels.BaseModel{ID: "s1"},
			Status:    sessionStatus,
		},
	}
	w := impl{
		BaseImpl:      *baseworker.NewInstance("AnswerAnalysisWorker", 0, 0),
		answerStore:   answers,
		sessionStore:  sessions,
		questionStore: stubQuestionStore{},
		transcription: stubTranscription{},
		facial:        stubFacial{},
		evaluation:    stubEvaluation{},
	}
	return w, answers, sessions
}

func TestHandleRefreshesClosedSessionScore(t *testing.T) {
	// answer analyzed only after the session was completed: the session score
	// must catch up with the late result
	w, answers, sessions := newWorker(models.SessionCompleted)

	w.handle(context.Background())

	upd := answers.updates["a1"]
	require.NotNil(t, upd)
	require.Equal(t, models.AnalysisDone, upd["analysis_status"])
	require.Equal(t, 81, upd["confidence_score"])

	require.NotNil(t, sessions.updates)
	require.Equal(t, 81, sessions.updates["score"])
}

func TestHandleLeavesActiveSessionScoreAlone(t *testing.T) {
	w, answers, sessions := newWorker(models.SessionActive)

	w.handle(context.Background())

	require.NotNil(t, answers.updates["a1"])
	require.Nil(t, sessions.updates)
}
