package apiv1

import (
	"interview-prep-backend/controllers"
	"interview-prep-backend/lib/analytics"
	authutils "interview-prep-backend/lib/utils/auth-utils"
	"interview-prep-backend/middleware"
	apimodels "interview-prep-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type analyticsApiController struct {
	controllers.BaseAPIController
}

func InitAnalyticsApiRouters(app *fiber.App) {
	controller := analyticsApiController{}
	app.Route("analytics", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("summary", controller.summary)
		router.Get("summary/xls", controller.summaryXls)
	})
}

// @Summary Get performance summary
// @Tags Analytics
// @Description Get own performance summary across completed sessions
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.PerformanceSummary}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/summary [get]
func (c *analyticsApiController) summary(ctx *fiber.Ctx) error {
	summary, err := analytics.Instance.Summary(authutils.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(summary))
}

// @Summary Export performance summary
// @Tags Analytics
// @Description Export own performance summary as xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/summary/xls [get]
func (c *analyticsApiController) summaryXls(ctx *fiber.Ctx) error {
	buf, err := analytics.Instance.SummaryExportToXls(authutils.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="performance_summary.xlsx"`)
	return ctx.Status(fiber.StatusOK).SendStream(buf)
}
