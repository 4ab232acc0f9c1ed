package sessionhandler

import (
	"testing"
	"time"

	answerstore "interview-prep-backend/lib/session/answer-store"
	sessionstore "interview-prep-backend/lib/session/store"
	"interview-prep-backend/models"
	sessionapimodels "interview-prep-backend/models/api/session"
	dbmodels "interview-prep-backend/models/db"

	"github.com/stretchr/testify/require"
)

type stubSessionStore struct {
	sessionstore.Provider
	rec *dbmodels.PracticeSession
}

func (s stubSessionStore) GetByID(sessionID string) (*dbmodels.PracticeSession, error) {
	if s.rec != nil && s.rec.ID == sessionID {
		return s.rec, nil
	}
	return nil, nil
}

type stubAnswerStore struct {
	answerstore.Provider
	exist   bool
	created *dbmodels.SessionAnswer
}

func (s *stubAnswerStore) ExistForQuestion(sessionID, questionID string) (bool, error) {
	return s.exist, nil
}

func (s *stubAnswerStore) Create(rec dbmodels.SessionAnswer) (string, error) {
	s.created = &rec
	return "a1", nil
}

func activeSession() *dbmodels.PracticeSession {
	return &dbmodels.PracticeSession{
		BaseModel: dbmodels.BaseModel{ID: "s1"},
		UserID:    "u1",
		Status:    models.SessionActive,
		Deadline:  time.Now().Add(time.Hour),
		Questions: []dbmodels.SessionQuestion{{QuestionID: "q1"}},
	}
}

func TestSubmitAnswer(t *testing.T) {
	request := sessionapimodels.SubmitAnswerRequest{
		QuestionID: "q1",
		AnswerText: "an answer",
		SelfRating: 4,
	}
	newImpl := func(rec *dbmodels.PracticeSession, exist bool) (impl, *stubAnswerStore) {
		answers := &stubAnswerStore{exist: exist}
		return impl{
			sessionStore: stubSessionStore{rec: rec},
			answerStore:  answers,
		}, answers
	}

	t.Run("accepted answer is queued for analysis", func(t *testing.T) {
		i, answers := newImpl(activeSession(), false)
		id, err := i.SubmitAnswer("u1", "s1", request)
		require.NoError(t, err)
		require.Equal(t, "a1", id)
		require.NotNil(t, answers.created)
		require.Equal(t, models.AnalysisPending, answers.created.AnalysisStatus)
		require.Equal(t, "u1", answers.created.UserID)
	})

	t.Run("foreign session", func(t *testing.T) {
		rec := activeSession()
		rec.UserID = "someone-else"
		i, _ := newImpl(rec, false)
		_, err := i.SubmitAnswer("u1", "s1", request)
		require.EqualError(t, err, "session not found")
	})

	t.Run("closed session", func(t *testing.T) {
		rec := activeSession()
		rec.Status = models.SessionCompleted
		i, _ := newImpl(rec, false)
		_, err := i.SubmitAnswer("u1", "s1", request)
		require.EqualError(t, err, "session is closed")
	})

	t.Run("deadline passed", func(t *testing.T) {
		rec := activeSession()
		rec.Deadline = time.Now().Add(-time.Minute)
		i, _ := newImpl(rec, false)
		_, err := i.SubmitAnswer("u1", "s1", request)
		require.EqualError(t, err, "session deadline has passed")
	})

	t.Run("question from another session", func(t *testing.T) {
		i, _ := newImpl(activeSession(), false)
		foreign := request
		foreign.QuestionID = "q2"
		_, err := i.SubmitAnswer("u1", "s1", foreign)
		require.EqualError(t, err, "question does not belong to this session")
	})

	t.Run("duplicate answer", func(t *testing.T) {
		i, _ := newImpl(activeSession(), true)
		_, err := i.SubmitAnswer("u1", "s1", request)
		require.EqualError(t, err, "this question is already answered")
	})
}

func TestSessionScore(t *testing.T) {
	t.Run("mean of analyzed answers", func(t *testing.T) {
		answers := []dbmodels.SessionAnswer{
			{AnalysisStatus: models.AnalysisDone, ConfidenceScore: 70},
			{AnalysisStatus: models.AnalysisDone, ConfidenceScore: 81},
		}
		require.Equal(t, 76, SessionScore(answers))
	})

	t.Run("pending and failed answers are skipped", func(t *testing.T) {
		answers := []dbmodels.SessionAnswer{
			{AnalysisStatus: models.AnalysisDone, ConfidenceScore: 90},
			{AnalysisStatus: models.AnalysisPending, ConfidenceScore: 10},
			{AnalysisStatus: models.AnalysisFailed, ConfidenceScore: 10},
		}
		require.Equal(t, 90, SessionScore(answers))
	})

	t.Run("no analyzed answers", func(t *testing.T) {
		require.Equal(t, 0, SessionScore(nil))
		require.Equal(t, 0, SessionScore([]dbmodels.SessionAnswer{
			{AnalysisStatus: models.AnalysisPending, ConfidenceScore: 50},
		}))
	})
}

func TestSessionHasQuestion(t *testing.T) {
	rec := dbmodels.PracticeSession{
		Questions: []dbmodels.SessionQuestion{
			{QuestionID: "q1"},
			{QuestionID: "q2"},
		},
	}
	require.True(t, sessionHasQuestion(rec, "q1"))
	require.False(t, sessionHasQuestion(rec, "q3"))
}
