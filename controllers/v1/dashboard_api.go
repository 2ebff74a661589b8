package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-automation-hub/controllers"
	dashboardhandler "hr-automation-hub/lib/dashboard"
	"hr-automation-hub/middleware"
	"hr-automation-hub/models"
)

type dashboardApiController struct {
	controllers.BaseAPIController
}

func InitDashboardApiRouters(app *fiber.App) {
	controller := dashboardApiController{}
	app.Route("dashboard", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("hr", middleware.RoleRequired(models.UserRoleHR, models.UserRoleAdmin), controller.hr)
		router.Get("it", middleware.RoleRequired(models.UserRoleIT, models.UserRoleAdmin), controller.it)
		router.Get("manager", middleware.RoleRequired(models.UserRoleManager, models.UserRoleAdmin), controller.manager)
		router.Get("finance", middleware.RoleRequired(models.UserRoleFinance, models.UserRoleAdmin), controller.finance)
	})
}

// @Summary HR дашборд
// @Tags Дашборды
// @Description Воронка откликов и последние результаты скрининга
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} dashboardapimodels.HRDashboard
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/dashboard/hr [get]
func (c *dashboardApiController) hr(ctx *fiber.Ctx) error {
	resp, err := dashboardhandler.Instance.HR()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary IT дашборд
// @Tags Дашборды
// @Description Статистика скринингов и открытых тикетов
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} dashboardapimodels.ITDashboard
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/dashboard/it [get]
func (c *dashboardApiController) it(ctx *fiber.Ctx) error {
	resp, err := dashboardhandler.Instance.IT()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Дашборд руководителя
// @Tags Дашборды
// @Description Кандидаты по стадиям воронки
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} dashboardapimodels.ManagerDashboard
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/dashboard/manager [get]
func (c *dashboardApiController) manager(ctx *fiber.Ctx) error {
	resp, err := dashboardhandler.Instance.Manager()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Финансовый дашборд
// @Tags Дашборды
// @Description Открытые вакансии и ожидающие согласования
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} dashboardapimodels.FinanceDashboard
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/dashboard/finance [get]
func (c *dashboardApiController) finance(ctx *fiber.Ctx) error {
	resp, err := dashboardhandler.Instance.Finance()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}
