package db

import (
	"interview-prep-backend/config"
	questionstore "interview-prep-backend/lib/question/store"
	usersstore "interview-prep-backend/lib/users/store"
	authutils "interview-prep-backend/lib/utils/auth-utils"
	"interview-prep-backend/models"
	dbmodels "interview-prep-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addAdmin()
	fillQuestionBank()
}

func addAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("admin account not added, ADMIN_EMAIL is not set")
		return
	}
	userStore := usersstore.NewInstance(DB)
	existedRec, err := userStore.FindByEmail(config.Conf.Admin.Email, false)
	if err != nil {
		log.WithError(err).Error("error adding admin account")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.User{
		IsActive:        true,
		IsEmailVerified: true,
		Role:            models.AdminRole,
		Password:        authutils.GetMD5Hash(config.Conf.Admin.Password),
		FirstName:       config.Conf.Admin.FirstName,
		LastName:        config.Conf.Admin.LastName,
		Email:           config.Conf.Admin.Email,
	}
	_, err = userStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("error adding admin account")
	}
}

// starter bank, inserted once on an empty questions table
func fillQuestionBank() {
	store := questionstore.NewInstance(DB)
	count, err := store.Count()
	if err != nil {
		log.WithError(err).Error("error preloading question bank")
		return
	}
	if count > 0 {
		return
	}
	defaultLimit := config.Conf.Session.DefaultTimeLimitInSec
	seed := []dbmodels.Question{
		{Category: "behavioral", Difficulty: models.DifficultyEasy, Text: "Tell me about yourself and your background.", Guidance: "Structure, relevance to the role, concise timeline."},
		{Category: "behavioral", Difficulty: models.DifficultyMedium, Text: "Describe a conflict with a colleague and how you resolved it.", Guidance: "Situation, actions taken, outcome, lessons learned."},
		{Category: "behavioral", Difficulty: models.DifficultyHard, Text: "Tell me about a time you failed to meet a commitment. What did you change afterwards?", Guidance: "Ownership, root cause, concrete process change."},
		{Category: "technical", Difficulty: models.DifficultyEasy, Text: "What is the difference between a process and a thread?", Guidance: "Memory isolation, scheduling, communication cost."},
		{Category: "technical", Difficulty: models.DifficultyMedium, Text: "How would you find and fix a memory leak in a long-running service?", Guidance: "Profiling tools, reproduction, verification."},
		{Category: "technical", Difficulty: models.DifficultyHard, Text: "Design a rate limiter for a public API. Walk through your trade-offs.", Guidance: "Algorithms, distributed state, failure modes."},
		{Category: "system-design", Difficulty: models.DifficultyMedium, Text: "Design a URL shortening service.", Guidance: "Data model, id generation, caching, redirects at scale."},
		{Category: "system-design", Difficulty: models.DifficultyHard, Text: "Design a news feed with ranking and pagination.", Guidance: "Fan-out strategies, storage, ranking pipeline, consistency."},
	}
	for i := range seed {
		seed[i].IsActive = true
		seed[i].TimeLimitInSec = defaultLimit
		if _, err := store.Create(seed[i]); err != nil {
			log.WithError(err).Error("error preloading question bank")
			return
		}
	}
	log.WithField("count", len(seed)).Info("question bank preloaded")
}
