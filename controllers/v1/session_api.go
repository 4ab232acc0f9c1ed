package apiv1

import (
	"fmt"
	"interview-prep-backend/controllers"
	"interview-prep-backend/lib/analytics"
	sessionhandler "interview-prep-backend/lib/session"
	authutils "interview-prep-backend/lib/utils/auth-utils"
	"interview-prep-backend/middleware"
	apimodels "interview-prep-backend/models/api"
	sessionapimodels "interview-prep-backend/models/api/session"

	"github.com/gofiber/fiber/v2"
)

type sessionApiController struct {
	controllers.BaseAPIController
}

func InitSessionApiRouters(app *fiber.App) {
	controller := sessionApiController{}
	app.Route("sessions", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.start)
		router.Post("list", controller.getList)
		router.Get(":id", controller.getByID)
		router.Get(":id/report.pdf", controller.reportPdf)
		router.Post(":id/answers", controller.submitAnswer)
		router.Post(":id/complete", controller.complete)
	})
}

// @Summary Start a practice session
// @Tags Sessions
// @Description Start a practice session with randomly picked questions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		sessionapimodels.StartSessionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.Session}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sessions [post]
func (c *sessionApiController) start(ctx *fiber.Ctx) error {
	var payload sessionapimodels.StartSessionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	session, err := sessionhandler.Instance.StartSession(authutils.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(session))
}

// @Summary List own sessions
// @Tags Sessions
// @Description List own sessions with filter
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		sessionapimodels.SessionFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]sessionapimodels.Session}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sessions/list [post]
func (c *sessionApiController) getList(ctx *fiber.Ctx) error {
	var payload sessionapimodels.SessionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, rowCount, err := sessionhandler.Instance.GetList(authutils.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get session by id
// @Tags Sessions
// @Description Get own session with questions and answers
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"session id"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.Session}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sessions/{id} [get]
func (c *sessionApiController) getByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("session id is not set"))
	}
	session, err := sessionhandler.Instance.GetSession(authutils.GetUserID(ctx), id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(session))
}

// @Summary Download session report
// @Tags Sessions
// @Description Download session report as pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"session id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sessions/{id}/report.pdf [get]
func (c *sessionApiController) reportPdf(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("session id is not set"))
	}
	body, err := analytics.Instance.SessionReportPdf(authutils.GetUserID(ctx), id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="session_%v.pdf"`, id))
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Submit an answer
// @Tags Sessions
// @Description Submit an answer to a session question, analysis runs in the background
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"session id"
// @Param	body				body		sessionapimodels.SubmitAnswerRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sessions/{id}/answers [post]
func (c *sessionApiController) submitAnswer(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("session id is not set"))
	}
	var payload sessionapimodels.SubmitAnswerRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	answerID, err := sessionhandler.Instance.SubmitAnswer(authutils.GetUserID(ctx), id, payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(answerID))
}

// @Summary Complete a session
// @Tags Sessions
// @Description Complete an active session and fix its score
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"session id"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.Session}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/sessions/{id}/complete [post]
func (c *sessionApiController) complete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("session id is not set"))
	}
	session, err := sessionhandler.Instance.CompleteSession(authutils.GetUserID(ctx), id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(session))
}
