package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-automation-hub/controllers"
	applicationhandler "hr-automation-hub/lib/application"
	"hr-automation-hub/middleware"
	"hr-automation-hub/models"
	apimodels "hr-automation-hub/models/api"
	applicationapimodels "hr-automation-hub/models/api/application"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("applications", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("mine", controller.mine)
		router.Post("", middleware.RoleRequired(models.UserRoleCandidate), controller.apply)
		router.Use(middleware.RoleRequired(models.UserRoleHR, models.UserRoleManager, models.UserRoleAdmin))
		router.Get("", controller.list)
		router.Patch(":id/status", controller.setStatus)
	})
}

// @Summary Откликнуться на вакансию
// @Tags Отклики
// @Description Отклик кандидата на вакансию, с последним резюме если есть
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		applicationapimodels.ApplyRequest	true	"request body"
// @Success 201 {object} dbmodels.Application
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 409 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/applications [post]
func (c *applicationApiController) apply(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplyRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := applicationhandler.Instance.Apply(middleware.GetUserID(ctx), payload.JobID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(resp)
}

// @Summary Мои отклики
// @Tags Отклики
// @Description Отклики текущего кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} dbmodels.Application
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/applications/mine [get]
func (c *applicationApiController) mine(ctx *fiber.Ctx) error {
	resp, err := applicationhandler.Instance.Mine(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Список откликов
// @Tags Отклики
// @Description Все отклики, для HR
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} dbmodels.Application
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/applications [get]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	resp, err := applicationhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Статус отклика
// @Tags Отклики
// @Description Изменить стадию отклика
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID отклика"
// @Param	body	body	applicationapimodels.SetStatusRequest	true	"request body"
// @Success 200 {object} dbmodels.Application
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/applications/{id}/status [patch]
func (c *applicationApiController) setStatus(ctx *fiber.Ctx) error {
	var payload applicationapimodels.SetStatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := applicationhandler.Instance.SetStatus(ctx.Params("id"), payload.Status)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}
