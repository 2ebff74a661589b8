package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-automation-hub/controllers"
	offerhandler "hr-automation-hub/lib/offer"
	"hr-automation-hub/middleware"
	"hr-automation-hub/models"
	apimodels "hr-automation-hub/models/api"
	offerapimodels "hr-automation-hub/models/api/offer"
)

type offerApiController struct {
	controllers.BaseAPIController
}

func InitOfferApiRouters(app *fiber.App) {
	controller := offerApiController{}
	app.Route("offers", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RoleRequired(models.UserRoleHR, models.UserRoleManager, models.UserRoleFinance, models.UserRoleAdmin))
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get(":id", controller.get)
		router.Patch(":id", controller.update)
		router.Get(":id/letter", controller.letter)
		router.Post(":id/send", controller.send)
	})
}

// @Summary Создать оффер
// @Tags Офферы
// @Description Создать оффер кандидату по вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		offerapimodels.CreateOfferRequest	true	"request body"
// @Success 201 {object} dbmodels.Offer
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/offers [post]
func (c *offerApiController) create(ctx *fiber.Ctx) error {
	var payload offerapimodels.CreateOfferRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := offerhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(resp)
}

// @Summary Список офферов
// @Tags Офферы
// @Description Все офферы
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} dbmodels.Offer
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/offers [get]
func (c *offerApiController) list(ctx *fiber.Ctx) error {
	resp, err := offerhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Оффер
// @Tags Офферы
// @Description Оффер по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID оффера"
// @Success 200 {object} dbmodels.Offer
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/offers/{id} [get]
func (c *offerApiController) get(ctx *fiber.Ctx) error {
	resp, err := offerhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Обновить оффер
// @Tags Офферы
// @Description Изменить статус, зарплату, дату выхода или комментарий
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID оффера"
// @Param	body	body	offerapimodels.UpdateOfferRequest	true	"request body"
// @Success 200 {object} dbmodels.Offer
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/offers/{id} [patch]
func (c *offerApiController) update(ctx *fiber.Ctx) error {
	var payload offerapimodels.UpdateOfferRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := offerhandler.Instance.Update(ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Письмо-оффер
// @Tags Офферы
// @Description Сгенерировать PDF письма с оффером
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID оффера"
// @Success 200 {file} binary
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/offers/{id}/letter [get]
func (c *offerApiController) letter(ctx *fiber.Ctx) error {
	fileName, pdfFile, err := offerhandler.Instance.Letter(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename="+fileName)
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}

// @Summary Отправить оффер
// @Tags Офферы
// @Description Отправить письмо с PDF оффера кандидату
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID оффера"
// @Param	body	body	offerapimodels.SendOfferRequest	false	"request body"
// @Success 200 {object} dbmodels.Offer
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/offers/{id}/send [post]
func (c *offerApiController) send(ctx *fiber.Ctx) error {
	var payload offerapimodels.SendOfferRequest
	if len(ctx.Body()) > 0 {
		if err := c.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	resp, err := offerhandler.Instance.Send(ctx.Params("id"), payload.Email)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}
