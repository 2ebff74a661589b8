package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	apimodels "hr-automation-hub/models/api"
	"hr-automation-hub/models/apperrors"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("Invalid request body")
	}
	return nil
}

// SendError переводит ошибку бизнес-логики в HTTP ответ {message}.
// Внутренние ошибки логируются и уходят клиенту без деталей.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	status, exposable := apperrors.StatusCode(err)
	if !exposable {
		log.WithError(err).Error("внутренняя ошибка обработки запроса")
		return ctx.Status(status).JSON(apimodels.NewError("Internal server error"))
	}
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}
