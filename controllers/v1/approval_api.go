package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-automation-hub/controllers"
	approvalhandler "hr-automation-hub/lib/approval"
	"hr-automation-hub/middleware"
	"hr-automation-hub/models"
	apimodels "hr-automation-hub/models/api"
	approvalapimodels "hr-automation-hub/models/api/approval"
)

type approvalApiController struct {
	controllers.BaseAPIController
}

func InitApprovalApiRouters(app *fiber.App) {
	controller := approvalApiController{}
	app.Route("approvals", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RoleRequired(models.UserRoleHR, models.UserRoleManager, models.UserRoleAdmin))
		router.Get("pending", controller.pending)
		router.Post(":ticketId/request", controller.request)
		router.Post(":ticketId", controller.decide)
	})
}

// @Summary Запросить согласование
// @Tags Согласования
// @Description Перевести тикет в PendingApproval и создать запись согласования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	ticketId	path	string	true	"ID тикета"
// @Success 201 {object} dbmodels.Approval
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 409 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/approvals/{ticketId}/request [post]
func (c *approvalApiController) request(ctx *fiber.Ctx) error {
	resp, err := approvalhandler.Instance.Request(middleware.GetUserID(ctx), middleware.GetUserName(ctx), ctx.Params("ticketId"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(resp)
}

// @Summary Решение по согласованию
// @Tags Согласования
// @Description Утвердить или отклонить тикет, ожидающий согласования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	ticketId	path	string	true	"ID тикета"
// @Param	body		body	approvalapimodels.DecisionRequest	true	"request body"
// @Success 200 {object} dbmodels.Ticket
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/approvals/{ticketId} [post]
func (c *approvalApiController) decide(ctx *fiber.Ctx) error {
	var payload approvalapimodels.DecisionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := approvalhandler.Instance.Decide(middleware.GetUserID(ctx), middleware.GetUserName(ctx), ctx.Params("ticketId"), payload.Status, payload.Comments)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Ожидающие согласования
// @Tags Согласования
// @Description Список согласований в статусе Pending
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} dbmodels.Approval
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/approvals/pending [get]
func (c *approvalApiController) pending(ctx *fiber.Ctx) error {
	resp, err := approvalhandler.Instance.ListPending()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}
