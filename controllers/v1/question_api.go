package apiv1

import (
	"interview-prep-backend/controllers"
	questionhandler "interview-prep-backend/lib/question"
	"interview-prep-backend/middleware"
	apimodels "interview-prep-backend/models/api"
	questionapimodels "interview-prep-backend/models/api/question"

	"github.com/gofiber/fiber/v2"
)

type questionApiController struct {
	controllers.BaseAPIController
}

func InitQuestionApiRouters(app *fiber.App) {
	controller := questionApiController{}
	app.Route("questions", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("list", controller.getList)
		router.Get("categories", controller.getCategories)
		router.Get(":id", controller.getByID)
		router.Use(middleware.AdminRequired())
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary List questions with filter
// @Tags Questions
// @Description List questions with filter
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		questionapimodels.QuestionFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]questionapimodels.Question}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions/list [post]
func (c *questionApiController) getList(ctx *fiber.Ctx) error {
	var payload questionapimodels.QuestionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, rowCount, err := questionhandler.Instance.GetList(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get question categories
// @Tags Questions
// @Description Get question categories with counts
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]questionapimodels.CategoryCount}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions/categories [get]
func (c *questionApiController) getCategories(ctx *fiber.Ctx) error {
	list, err := questionhandler.Instance.GetCategories()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get question by id
// @Tags Questions
// @Description Get question by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"question id"
// @Success 200 {object} apimodels.Response{data=questionapimodels.Question}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions/{id} [get]
func (c *questionApiController) getByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("question id is not set"))
	}
	question, err := questionhandler.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(question))
}

// @Summary Create a question
// @Tags Questions
// @Description Create a question, admin only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		questionapimodels.QuestionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions [post]
func (c *questionApiController) create(ctx *fiber.Ctx) error {
	var payload questionapimodels.QuestionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := questionhandler.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update a question
// @Tags Questions
// @Description Update a question, admin only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"question id"
// @Param	body				body		questionapimodels.QuestionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions/{id} [put]
func (c *questionApiController) update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("question id is not set"))
	}
	var payload questionapimodels.QuestionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := questionhandler.Instance.Update(id, payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a question
// @Tags Questions
// @Description Delete a question, admin only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"question id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions/{id} [delete]
func (c *questionApiController) delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("question id is not set"))
	}
	if err := questionhandler.Instance.Delete(id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
