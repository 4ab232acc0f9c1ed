package apiv1

import (
	"fmt"
	"interview-prep-backend/controllers"
	filestorage "interview-prep-backend/lib/file-storage"
	authutils "interview-prep-backend/lib/utils/auth-utils"
	"interview-prep-backend/middleware"
	apimodels "interview-prep-backend/models/api"
	"io"

	"github.com/gofiber/fiber/v2"
)

type mediaApiController struct {
	controllers.BaseAPIController
}

func InitMediaApiRouters(app *fiber.App) {
	controller := mediaApiController{}
	app.Route("media", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("recordings", controller.upload)
		router.Get("recordings/:id", controller.download)
	})
}

// @Summary Upload a recording
// @Tags Media
// @Description Upload an answer recording, multipart form field "file"
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file	true	"recording file"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/media/recordings [post]
func (c *mediaApiController) upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is not set"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	fileID, err := filestorage.Instance.UploadRecording(ctx.UserContext(), authutils.GetUserID(ctx), fileHeader.Filename, contentType, body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fileID))
}

// @Summary Download a recording
// @Tags Media
// @Description Download an own recording by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"recording id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/media/recordings/{id} [get]
func (c *mediaApiController) download(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("recording id is not set"))
	}
	body, rec, err := filestorage.Instance.GetRecording(ctx.UserContext(), authutils.GetUserID(ctx), id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if rec.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, rec.ContentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%v"`, rec.FileName))
	return ctx.Status(fiber.StatusOK).Send(body)
}
