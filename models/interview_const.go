package models

type QuestionDifficulty string

const (
	DifficultyEasy   QuestionDifficulty = "EASY"
	DifficultyMedium QuestionDifficulty = "MEDIUM"
	DifficultyHard   QuestionDifficulty = "HARD"
)

func (d QuestionDifficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type SessionStatus string

const (
	SessionActive    SessionStatus = "ACTIVE"
	SessionCompleted SessionStatus = "COMPLETED"
	SessionExpired   SessionStatus = "EXPIRED"
)

var sessionStatusHumanName = map[SessionStatus]string{
	SessionActive:    "In progress",
	SessionCompleted: "Completed",
	SessionExpired:   "Expired",
}

func (s SessionStatus) ToHuman() string {
	if human, exist := sessionStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type AnswerAnalysisStatus string

const (
	AnalysisPending AnswerAnalysisStatus = "PENDING"
	AnalysisDone    AnswerAnalysisStatus = "DONE"
	AnalysisFailed  AnswerAnalysisStatus = "FAILED"
)

const (
	SelfRatingMin = 1
	SelfRatingMax = 5
)
