package apiv1

import (
	"interview-prep-backend/controllers"
	usershandler "interview-prep-backend/lib/users/handler"
	authutils "interview-prep-backend/lib/utils/auth-utils"
	"interview-prep-backend/middleware"
	apimodels "interview-prep-backend/models/api"
	userapimodels "interview-prep-backend/models/api/user"

	"github.com/gofiber/fiber/v2"
)

type usersApiController struct {
	controllers.BaseAPIController
}

func InitUsersApiRouters(app *fiber.App) {
	controller := usersApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Put("profile", controller.updateProfile)
		router.Delete("profile", controller.deactivate)
		router.Use(middleware.AdminRequired())
		router.Get("", controller.getList)
		router.Get(":id", controller.getByID)
	})
}

// @Summary Update own profile
// @Tags Users
// @Description Update own profile, an email change requires confirmation when smtp is configured
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		userapimodels.UpdateUser	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/profile [put]
func (c *usersApiController) updateProfile(ctx *fiber.Ctx) error {
	var payload userapimodels.UpdateUser
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := usershandler.Instance.UpdateProfile(authutils.GetUserID(ctx), payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Deactivate own account
// @Tags Users
// @Description Deactivate own account
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/profile [delete]
func (c *usersApiController) deactivate(ctx *fiber.Ctx) error {
	if err := usershandler.Instance.Deactivate(authutils.GetUserID(ctx)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List users
// @Tags Users
// @Description List users, admin only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   page				query		int		false	"page number"
// @Param   limit				query		int		false	"rows per page"
// @Success 200 {object} apimodels.Response{data=[]userapimodels.User}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [get]
func (c *usersApiController) getList(ctx *fiber.Ctx) error {
	pagination := apimodels.Pagination{
		Page:  ctx.QueryInt("page"),
		Limit: ctx.QueryInt("limit"),
	}
	page, limit := pagination.GetPage()
	list, err := usershandler.Instance.GetList(page, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get user by id
// @Tags Users
// @Description Get user by id, admin only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"user id"
// @Success 200 {object} apimodels.Response{data=userapimodels.User}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *usersApiController) getByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("user id is not set"))
	}
	user, err := usershandler.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(user))
}
