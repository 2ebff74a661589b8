package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"hr-automation-hub/controllers"
	candidatehandler "hr-automation-hub/lib/candidate"
	"hr-automation-hub/middleware"
	"hr-automation-hub/models"
	apimodels "hr-automation-hub/models/api"
	candidateapimodels "hr-automation-hub/models/api/candidate"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidates", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("me", controller.profile)
		router.Put("me", controller.upsertProfile)
		router.Post("me/resume", controller.uploadResume)
		router.Get("me/resumes", controller.listResumes)
		router.Get("resumes/:id/download", controller.downloadResume)
	})
	app.Route("hr", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RoleRequired(models.UserRoleHR, models.UserRoleManager, models.UserRoleAdmin))
		router.Get("applications", controller.hrApplications)
		router.Get("candidates", controller.list)
	})
}

// @Summary Профиль кандидата
// @Tags Кандидаты
// @Description Профиль текущего кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} dbmodels.Candidate
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/candidates/me [get]
func (c *candidateApiController) profile(ctx *fiber.Ctx) error {
	resp, err := candidatehandler.Instance.GetProfile(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Обновить профиль
// @Tags Кандидаты
// @Description Создать или обновить профиль текущего кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		candidateapimodels.UpsertProfileRequest	true	"request body"
// @Success 200 {object} dbmodels.Candidate
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/candidates/me [put]
func (c *candidateApiController) upsertProfile(ctx *fiber.Ctx) error {
	var payload candidateapimodels.UpsertProfileRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := candidatehandler.Instance.UpsertProfile(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Загрузить резюме
// @Tags Кандидаты
// @Description Загрузить файл резюме (pdf, doc, docx, txt)
// @Accept  multipart/form-data
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	file	formData	file	true	"файл резюме"
// @Success 201 {object} candidateapimodels.ResumeUploadResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/candidates/me/resume [post]
func (c *candidateApiController) uploadResume(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("File is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, err)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := candidatehandler.Instance.UploadResume(ctx.Context(), middleware.GetUserID(ctx),
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(resp)
}

// @Summary Мои резюме
// @Tags Кандидаты
// @Description Список загруженных резюме текущего кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} dbmodels.Resume
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/candidates/me/resumes [get]
func (c *candidateApiController) listResumes(ctx *fiber.Ctx) error {
	resp, err := candidatehandler.Instance.ListResumes(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Скачать резюме
// @Tags Кандидаты
// @Description Скачать файл резюме из хранилища
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID резюме"
// @Success 200 {file} binary
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/candidates/resumes/{id}/download [get]
func (c *candidateApiController) downloadResume(ctx *fiber.Ctx) error {
	fileName, data, err := candidatehandler.Instance.DownloadResume(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename="+fileName)
	return ctx.Status(fiber.StatusOK).Send(data)
}

// @Summary Кандидаты с резюме
// @Tags Кандидаты
// @Description Кандидаты с последним загруженным резюме, для HR
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} candidateapimodels.HRApplicationView
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/hr/applications [get]
func (c *candidateApiController) hrApplications(ctx *fiber.Ctx) error {
	resp, err := candidatehandler.Instance.HRApplications()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Список кандидатов
// @Tags Кандидаты
// @Description Все профили кандидатов
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} dbmodels.Candidate
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/hr/candidates [get]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	resp, err := candidatehandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}
