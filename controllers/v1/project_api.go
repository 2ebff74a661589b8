package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-automation-hub/controllers"
	projecthandler "hr-automation-hub/lib/project"
	"hr-automation-hub/middleware"
	apimodels "hr-automation-hub/models/api"
	projectapimodels "hr-automation-hub/models/api/project"
)

type projectApiController struct {
	controllers.BaseAPIController
}

func InitProjectApiRouters(app *fiber.App) {
	controller := projectApiController{}
	app.Route("projects", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Get("mine", controller.mine)
		router.Post("", controller.create)
		router.Patch(":id/status", controller.setStatus)
	})
}

// @Summary Создать проект
// @Tags Проекты
// @Description Создать проект текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		projectapimodels.CreateProjectRequest	true	"request body"
// @Success 201 {object} dbmodels.Project
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/projects [post]
func (c *projectApiController) create(ctx *fiber.Ctx) error {
	var payload projectapimodels.CreateProjectRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := projecthandler.Instance.Create(middleware.GetUserID(ctx), payload.Name, payload.Description)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(resp)
}

// @Summary Список проектов
// @Tags Проекты
// @Description Все проекты
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} dbmodels.Project
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/projects [get]
func (c *projectApiController) list(ctx *fiber.Ctx) error {
	resp, err := projecthandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Мои проекты
// @Tags Проекты
// @Description Проекты текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} dbmodels.Project
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/projects/mine [get]
func (c *projectApiController) mine(ctx *fiber.Ctx) error {
	resp, err := projecthandler.Instance.ListByOwner(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Статус проекта
// @Tags Проекты
// @Description Изменить статус проекта
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID проекта"
// @Param	body	body	projectapimodels.SetStatusRequest	true	"request body"
// @Success 200 {object} dbmodels.Project
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/projects/{id}/status [patch]
func (c *projectApiController) setStatus(ctx *fiber.Ctx) error {
	var payload projectapimodels.SetStatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := projecthandler.Instance.SetStatus(ctx.Params("id"), payload.Status)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}
