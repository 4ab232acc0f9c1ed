package apiv1

import (
	"interview-prep-backend/controllers"
	aievaluation "interview-prep-backend/lib/ai/evaluation"
	aifacial "interview-prep-backend/lib/ai/facial"
	aitranscription "interview-prep-backend/lib/ai/transcription"
	"interview-prep-backend/lib/confidence"
	"interview-prep-backend/middleware"
	apimodels "interview-prep-backend/models/api"
	aiapimodels "interview-prep-backend/models/api/ai"

	"github.com/gofiber/fiber/v2"
)

type aiApiController struct {
	controllers.BaseAPIController
}

func InitAiApiRouters(app *fiber.App) {
	controller := aiApiController{}
	app.Route("ai", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("transcription", controller.transcription)
		router.Post("facial-analysis", controller.facialAnalysis)
		router.Post("evaluation", controller.evaluation)
		router.Post("confidence", controller.confidence)
	})
}

// @Summary Transcribe a recording
// @Tags AI
// @Description Transcribe a recording and measure voice metrics
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		aiapimodels.TranscriptionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=aiapimodels.TranscriptionResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai/transcription [post]
func (c *aiApiController) transcription(ctx *fiber.Ctx) error {
	var payload aiapimodels.TranscriptionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := aitranscription.Instance.Transcribe(ctx.UserContext(), payload.RecordingID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Analyze facial expression
// @Tags AI
// @Description Analyze facial expression on a recording
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		aiapimodels.FacialAnalysisRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=aiapimodels.FacialAnalysisResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai/facial-analysis [post]
func (c *aiApiController) facialAnalysis(ctx *fiber.Ctx) error {
	var payload aiapimodels.FacialAnalysisRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := aifacial.Instance.Analyze(ctx.UserContext(), payload.RecordingID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Evaluate an answer
// @Tags AI
// @Description Evaluate answer quality and completeness
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		aiapimodels.EvaluationRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=aiapimodels.EvaluationResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai/evaluation [post]
func (c *aiApiController) evaluation(ctx *fiber.Ctx) error {
	var payload aiapimodels.EvaluationRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := aievaluation.Instance.Evaluate(payload.QuestionText, payload.AnswerText)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Compute confidence score
// @Tags AI
// @Description Compute the weighted confidence score from raw metrics
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		aiapimodels.ConfidenceRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=aiapimodels.ConfidenceResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @router /api/v1/ai/confidence [post]
func (c *aiApiController) confidence(ctx *fiber.Ctx) error {
	var payload aiapimodels.ConfidenceRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	result := confidence.Aggregate(confidence.Inputs{
		VoiceVolume:        payload.VoiceVolume,
		VoiceStability:     payload.VoiceStability,
		PauseFrequency:     payload.PauseFrequency,
		FacialConfidence:   payload.FacialConfidence,
		EmotionPositivity:  payload.EmotionPositivity,
		AnswerQuality:      payload.AnswerQuality,
		AnswerCompleteness: payload.AnswerCompleteness,
	})
	resp := aiapimodels.ConfidenceResponse{
		Score:     result.Score,
		Level:     result.Level,
		Breakdown: result.Breakdown,
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
