// Package evaluation rates an answer's quality and completeness. With a
// YandexGPT token configured the feedback text comes from the model; without
// one the provider returns fixed mock values so the pipeline still works.
// The numeric scores are mock in both modes.
package evaluation

import (
	"fmt"
	"interview-prep-backend/config"
	yagptclient "interview-prep-backend/lib/ai/evaluation/yagpt-client"
	aiapimodels "interview-prep-backend/models/api/ai"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Evaluate(questionText, answerText string) (resp aiapimodels.EvaluationResponse, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{}
	if config.Conf.YandexGPT.IAMToken != "" {
		instance.gptClient = yagptclient.NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID)
	}
	Instance = instance
}

type impl struct {
	gptClient yagptclient.Provider
}

const evaluationPromt = "You are an interview coach. Give short, specific feedback on the candidate's answer to the interview question."

const mockFeedback = "Mock evaluation: the answer covers the main points. Add a concrete example to strengthen it."

func (i impl) Evaluate(questionText, answerText string) (resp aiapimodels.EvaluationResponse, err error) {
	resp = aiapimodels.EvaluationResponse{
		Quality:      78,
		Completeness: 82,
		Feedback:     mockFeedback,
		IsMock:       true,
	}
	if i.gptClient == nil {
		return resp, nil
	}
	feedback, err := i.gptClient.GenerateByPromtAndText(
		evaluationPromt,
		fmt.Sprintf("Question: %s\nAnswer: %s", questionText, answerText),
	)
	if err != nil {
		log.WithError(err).Error("error generating feedback via YandexGPT, falling back to mock")
		return resp, nil
	}
	resp.Feedback = feedback
	resp.IsMock = false
	return resp, nil
}
