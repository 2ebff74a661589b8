package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-automation-hub/controllers"
	screeninghandler "hr-automation-hub/lib/screening"
	"hr-automation-hub/middleware"
	"hr-automation-hub/models"
	apimodels "hr-automation-hub/models/api"
	screenerapimodels "hr-automation-hub/models/api/screener"
)

type screenerApiController struct {
	controllers.BaseAPIController
}

func InitScreenerApiRouters(app *fiber.App) {
	controller := screenerApiController{}
	app.Route("hr/screener", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RoleRequired(models.UserRoleHR, models.UserRoleManager, models.UserRoleAdmin))
		router.Post("enqueue", controller.enqueue)
		router.Get("job/:id", controller.pollStatus)
		router.Post("run", controller.run)
		router.Get("results", controller.results)
	})
	app.Route("screenings", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RoleRequired(models.UserRoleHR, models.UserRoleManager, models.UserRoleAdmin))
		router.Post("run", controller.runSingle)
		router.Get("candidate/:id", controller.byCandidate)
	})
}

// @Summary Поставить скрининг в очередь
// @Tags Скрининг
// @Description Создать пакетную задачу скрининга, обработка выполняется фоном
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		screenerapimodels.EnqueueRequest	true	"request body"
// @Success 202 {object} screenerapimodels.EnqueueResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/hr/screener/enqueue [post]
func (c *screenerApiController) enqueue(ctx *fiber.Ctx) error {
	var payload screenerapimodels.EnqueueRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	rec, err := screeninghandler.Instance.Enqueue(payload.JobID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusAccepted).JSON(screenerapimodels.EnqueueResponse{
		ScreeningJob: screenerapimodels.ConvertJob(*rec),
	})
}

// @Summary Статус задачи скрининга
// @Tags Скрининг
// @Description Текущий прогресс пакетной задачи, для поллинга клиентом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID задачи"
// @Success 200 {object} screenerapimodels.JobView
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/hr/screener/job/{id} [get]
func (c *screenerApiController) pollStatus(ctx *fiber.Ctx) error {
	rec, err := screeninghandler.Instance.PollStatus(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(screenerapimodels.ConvertJob(*rec))
}

// @Summary Синхронный пакетный скрининг
// @Tags Скрининг
// @Description Прогнать кандидатов через провайдера в рамках запроса
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		screenerapimodels.RunRequest	true	"request body"
// @Success 200 {array} screenerapimodels.ResultView
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/hr/screener/run [post]
func (c *screenerApiController) run(ctx *fiber.Ctx) error {
	var payload screenerapimodels.RunRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := screeninghandler.Instance.Run(ctx.UserContext(), payload.JobID, payload.CandidateIDs)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Результаты скрининга
// @Tags Скрининг
// @Description Результаты по вакансии, свежие сверху
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   job_id				query		string	true	"ID вакансии"
// @Success 200 {array} screenerapimodels.ResultView
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/hr/screener/results [get]
func (c *screenerApiController) results(ctx *fiber.Ctx) error {
	jobID := ctx.Query("job_id")
	if jobID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("Invalid job_id"))
	}
	resp, err := screeninghandler.Instance.Results(jobID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Скрининг одного кандидата
// @Tags Скрининг
// @Description Оценить одного кандидата против вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		screenerapimodels.SingleRunRequest	true	"request body"
// @Success 200 {object} dbmodels.Screening
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/screenings/run [post]
func (c *screenerApiController) runSingle(ctx *fiber.Ctx) error {
	var payload screenerapimodels.SingleRunRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := screeninghandler.Instance.RunSingle(ctx.UserContext(), payload.CandidateID, payload.JobID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Скрининги кандидата
// @Tags Скрининг
// @Description Все результаты скрининга кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id		path	string	true	"ID кандидата"
// @Success 200 {array} dbmodels.Screening
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/v1/screenings/candidate/{id} [get]
func (c *screenerApiController) byCandidate(ctx *fiber.Ctx) error {
	resp, err := screeninghandler.Instance.ListByCandidate(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}
