package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-automation-hub/controllers"
	adminhandler "hr-automation-hub/lib/admin"
	"hr-automation-hub/middleware"
	"hr-automation-hub/models"
	apimodels "hr-automation-hub/models/api"
	adminapimodels "hr-automation-hub/models/api/admin"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Route("admin/users", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RoleRequired(models.UserRoleAdmin))
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Patch(":id", controller.update)
		router.Post(":id/disable", controller.disable)
		router.Post(":id/reset-password", controller.resetPassword)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Создать пользователя
// @Tags Администрирование
// @Description Создать пользователя с ролью и отделом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		adminapimodels.CreateUserRequest	true	"request body"
// @Success 201 {object} adminapimodels.UserView
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 409 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/admin/users [post]
func (c *adminApiController) create(ctx *fiber.Ctx) error {
	var payload adminapimodels.CreateUserRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	rec, err := adminhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(adminapimodels.Convert(*rec))
}

// @Summary Список пользователей
// @Tags Администрирование
// @Description Все пользователи системы
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} adminapimodels.UserView
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/admin/users [get]
func (c *adminApiController) list(ctx *fiber.Ctx) error {
	list, err := adminhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, err)
	}
	resp := make([]adminapimodels.UserView, 0, len(list))
	for _, rec := range list {
		resp = append(resp, adminapimodels.Convert(rec))
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Пользователь
// @Tags Администрирование
// @Description Пользователь по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID пользователя"
// @Success 200 {object} adminapimodels.UserView
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/admin/users/{id} [get]
func (c *adminApiController) get(ctx *fiber.Ctx) error {
	rec, err := adminhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(adminapimodels.Convert(*rec))
}

// @Summary Изменить пользователя
// @Tags Администрирование
// @Description Частичное изменение пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID пользователя"
// @Param	body				body		adminapimodels.UpdateUserRequest	true	"request body"
// @Success 200 {object} adminapimodels.UserView
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/admin/users/{id} [patch]
func (c *adminApiController) update(ctx *fiber.Ctx) error {
	var payload adminapimodels.UpdateUserRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	rec, err := adminhandler.Instance.Update(middleware.GetUserID(ctx), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(adminapimodels.Convert(*rec))
}

// @Summary Отключить пользователя
// @Tags Администрирование
// @Description Перевести пользователя в статус disabled
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID пользователя"
// @Success 200 {object} adminapimodels.UserView
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/admin/users/{id}/disable [post]
func (c *adminApiController) disable(ctx *fiber.Ctx) error {
	rec, err := adminhandler.Instance.Disable(middleware.GetUserID(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(adminapimodels.Convert(*rec))
}

// @Summary Сбросить пароль
// @Tags Администрирование
// @Description Установить пользователю новый пароль
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID пользователя"
// @Param	body				body		adminapimodels.ResetPasswordRequest	true	"request body"
// @Success 204
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/admin/users/{id}/reset-password [post]
func (c *adminApiController) resetPassword(ctx *fiber.Ctx) error {
	var payload adminapimodels.ResetPasswordRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	err := adminhandler.Instance.ResetPassword(middleware.GetUserID(ctx), ctx.Params("id"), payload.Password)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Удалить пользователя
// @Tags Администрирование
// @Description Удалить пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID пользователя"
// @Success 204
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/admin/users/{id} [delete]
func (c *adminApiController) delete(ctx *fiber.Ctx) error {
	err := adminhandler.Instance.Delete(middleware.GetUserID(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
