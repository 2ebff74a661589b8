package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-automation-hub/controllers"
	xlsexport "hr-automation-hub/lib/export/xls"
	tickethandler "hr-automation-hub/lib/ticket"
	"hr-automation-hub/middleware"
	"hr-automation-hub/models"
	apimodels "hr-automation-hub/models/api"
	ticketapimodels "hr-automation-hub/models/api/ticket"
)

type ticketApiController struct {
	controllers.BaseAPIController
}

func InitTicketApiRouters(app *fiber.App) {
	controller := ticketApiController{}
	app.Route("tickets", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Get("summary", controller.summary)
		router.Get("team", controller.teamLoad)
		router.Get("export", controller.export)
		router.Get(":id", controller.get)
		router.Patch(":id/status", controller.updateStatus)
		router.Post(":id/assign", controller.assign)
		router.Post(":id/route", controller.route)
		router.Post(":id/autoroute", controller.autoRoute)
		router.Post(":id/escalate", controller.escalate)
		router.Post(":id/comment", controller.comment)
	})
}

// @Summary Создать тикет
// @Tags Тикеты
// @Description Создать тикет в отделе IT/HR/Finance
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		ticketapimodels.CreateTicketRequest	true	"request body"
// @Success 201 {object} dbmodels.Ticket
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/tickets [post]
func (c *ticketApiController) create(ctx *fiber.Ctx) error {
	var payload ticketapimodels.CreateTicketRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := tickethandler.Instance.Create(middleware.GetUserID(ctx), middleware.GetUserName(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(resp)
}

// @Summary Список тикетов
// @Tags Тикеты
// @Description Список тикетов с фильтрами и пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   dept				query		string	false	"отдел"
// @Param   status				query		string	false	"статус"
// @Param   mine				query		bool	false	"только мои"
// @Success 200 {array} dbmodels.Ticket
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/tickets [get]
func (c *ticketApiController) list(ctx *fiber.Ctx) error {
	var filter ticketapimodels.TicketFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("Invalid query"))
	}
	resp, err := tickethandler.Instance.List(middleware.GetUserID(ctx), filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Тикет с историей
// @Tags Тикеты
// @Description Тикет с историей изменений
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID тикета"
// @Success 200 {object} dbmodels.Ticket
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/tickets/{id} [get]
func (c *ticketApiController) get(ctx *fiber.Ctx) error {
	resp, err := tickethandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Сменить статус тикета
// @Tags Тикеты
// @Description Перевести тикет в новый статус по таблице переходов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID тикета"
// @Param	body				body		ticketapimodels.UpdateStatusRequest	true	"request body"
// @Success 200 {object} dbmodels.Ticket
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 409 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/tickets/{id}/status [patch]
func (c *ticketApiController) updateStatus(ctx *fiber.Ctx) error {
	var payload ticketapimodels.UpdateStatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := tickethandler.Instance.UpdateStatus(middleware.GetUserID(ctx), middleware.GetUserName(ctx), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Назначить исполнителя
// @Tags Тикеты
// @Description Назначить исполнителя тикета
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID тикета"
// @Param	body				body		ticketapimodels.AssignRequest	true	"request body"
// @Success 200 {object} dbmodels.Ticket
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/tickets/{id}/assign [post]
func (c *ticketApiController) assign(ctx *fiber.Ctx) error {
	var payload ticketapimodels.AssignRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := tickethandler.Instance.Assign(middleware.GetUserID(ctx), middleware.GetUserName(ctx), ctx.Params("id"), payload.UserID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Смаршрутизировать тикет
// @Tags Тикеты
// @Description Пометить тикет смаршрутизированным
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID тикета"
// @Param	body				body		ticketapimodels.RouteRequest	true	"request body"
// @Success 200 {object} dbmodels.Ticket
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/tickets/{id}/route [post]
func (c *ticketApiController) route(ctx *fiber.Ctx) error {
	var payload ticketapimodels.RouteRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := tickethandler.Instance.Route(middleware.GetUserID(ctx), middleware.GetUserName(ctx), ctx.Params("id"), payload.Notes)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Автоназначение тикета
// @Tags Тикеты
// @Description Назначить тикет наименее загруженному сотруднику IT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID тикета"
// @Success 200 {object} dbmodels.Ticket
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 409 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/tickets/{id}/autoroute [post]
func (c *ticketApiController) autoRoute(ctx *fiber.Ctx) error {
	resp, err := tickethandler.Instance.AutoRoute(middleware.GetUserID(ctx), middleware.GetUserName(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Эскалировать тикет
// @Tags Тикеты
// @Description Повысить приоритет до urgent и взять в работу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID тикета"
// @Param	body				body		ticketapimodels.EscalateRequest	true	"request body"
// @Success 200 {object} dbmodels.Ticket
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/tickets/{id}/escalate [post]
func (c *ticketApiController) escalate(ctx *fiber.Ctx) error {
	var payload ticketapimodels.EscalateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := tickethandler.Instance.Escalate(middleware.GetUserID(ctx), middleware.GetUserName(ctx), ctx.Params("id"), payload.Note)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Комментарий к тикету
// @Tags Тикеты
// @Description Добавить комментарий в историю тикета
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID тикета"
// @Param	body				body		ticketapimodels.CommentRequest	true	"request body"
// @Success 200 {object} dbmodels.Ticket
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/tickets/{id}/comment [post]
func (c *ticketApiController) comment(ctx *fiber.Ctx) error {
	var payload ticketapimodels.CommentRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := tickethandler.Instance.AddComment(middleware.GetUserID(ctx), middleware.GetUserName(ctx), ctx.Params("id"), payload.Text)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Счётчики отдела
// @Tags Тикеты
// @Description Счётчики тикетов отдела для дашборда
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   dept				query		string	true	"отдел"
// @Success 200 {object} ticketapimodels.Summary
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/tickets/summary [get]
func (c *ticketApiController) summary(ctx *fiber.Ctx) error {
	resp, err := tickethandler.Instance.Summary(models.Department(ctx.Query("dept")))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Загрузка команды
// @Tags Тикеты
// @Description Открытые тикеты на каждого активного сотрудника отдела
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   dept				query		string	true	"отдел"
// @Success 200 {array} ticketapimodels.MemberLoad
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/tickets/team [get]
func (c *ticketApiController) teamLoad(ctx *fiber.Ctx) error {
	resp, err := tickethandler.Instance.TeamLoad(models.Department(ctx.Query("dept")))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Выгрузка тикетов в XLSX
// @Tags Тикеты
// @Description Выгрузка отфильтрованного списка тикетов в XLSX
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   dept				query		string	false	"отдел"
// @Param   status				query		string	false	"статус"
// @Success 200 {file} file
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/tickets/export [get]
func (c *ticketApiController) export(ctx *fiber.Ctx) error {
	var filter ticketapimodels.TicketFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("Invalid query"))
	}
	list, err := tickethandler.Instance.List(middleware.GetUserID(ctx), filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	buf, err := xlsexport.Instance.ExportTicketList(list)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="tickets.xlsx"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
