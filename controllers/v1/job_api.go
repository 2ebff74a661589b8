package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-automation-hub/controllers"
	jobhandler "hr-automation-hub/lib/job"
	"hr-automation-hub/middleware"
	"hr-automation-hub/models"
	apimodels "hr-automation-hub/models/api"
	jobapimodels "hr-automation-hub/models/api/job"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app *fiber.App) {
	controller := jobApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Use(middleware.RoleRequired(models.UserRoleHR, models.UserRoleManager, models.UserRoleAdmin))
		router.Post("", controller.create)
		router.Post(":id/close", controller.close)
	})
}

// @Summary Создать вакансию
// @Tags Вакансии
// @Description Создать вакансию с текстом JD и требованиями
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		jobapimodels.CreateJobRequest	true	"request body"
// @Success 201 {object} dbmodels.Job
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/jobs [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.CreateJobRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := jobhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(resp)
}

// @Summary Список вакансий
// @Tags Вакансии
// @Description Все вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} dbmodels.Job
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/jobs [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	resp, err := jobhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Вакансия
// @Tags Вакансии
// @Description Вакансия по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID вакансии"
// @Success 200 {object} dbmodels.Job
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/jobs/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	resp, err := jobhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Закрыть вакансию
// @Tags Вакансии
// @Description Перевести вакансию в статус closed
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID вакансии"
// @Success 200 {object} dbmodels.Job
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/jobs/{id}/close [post]
func (c *jobApiController) close(ctx *fiber.Ctx) error {
	resp, err := jobhandler.Instance.Close(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}
