package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"horeca-jobs-backend/controllers"
	pipelinehandler "horeca-jobs-backend/lib/pipeline"
	"horeca-jobs-backend/middleware"
	apimodels "horeca-jobs-backend/models/api"
	pipelineapimodels "horeca-jobs-backend/models/api/pipeline"
)

type pipelineApiController struct {
	controllers.BaseAPIController
}

func InitPipelineApiRouters(app fiber.Router) {
	controller := pipelineApiController{}
	app.Route("pipeline", func(router fiber.Router) {
		router.Use(middleware.OrgRequired())

		router.Get("job/:id", controller.view)
		router.Route("application/:id", func(idRoute fiber.Router) {
			idRoute.Put("move", controller.move)
			idRoute.Put("confirm_pre_hire", controller.confirmPreHire)
			idRoute.Get("can_hire", controller.canHire)
		})
	})
}

// @Summary Воронка по вакансии
// @Tags Воронка
// @Description Отклики по вакансии, сгруппированные по этапам, включая пустые этапы
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "job ID"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.StageView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/pipeline/job/{id} [get]
func (c *pipelineApiController) view(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	orgID := middleware.GetUserOrg(ctx)
	result, err := pipelinehandler.Instance.PipelineView(orgID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения воронки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Перевод отклика
// @Tags Воронка
// @Description Перевод отклика на другой этап воронки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "application ID"
// @Param	body body	 pipelineapimodels.MoveRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/pipeline/application/{id}/move [put]
func (c *pipelineApiController) move(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload pipelineapimodels.MoveRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	orgID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := pipelinehandler.Instance.MoveApplication(orgID, id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка перевода отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Подтверждение проверки
// @Tags Воронка
// @Description Фиксация подтверждения проверки перед наймом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "application ID"
// @Param	body body	 pipelineapimodels.ConfirmRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/pipeline/application/{id}/confirm_pre_hire [put]
func (c *pipelineApiController) confirmPreHire(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload pipelineapimodels.ConfirmRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	orgID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := pipelinehandler.Instance.ConfirmPreHireChecks(orgID, id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка подтверждения проверки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Готовность к найму
// @Tags Воронка
// @Description Признак возможности перевода отклика на этап "Принят"
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "application ID"
// @Success 200 {object} apimodels.Response{data=bool}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/pipeline/application/{id}/can_hire [get]
func (c *pipelineApiController) canHire(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	orgID := middleware.GetUserOrg(ctx)
	canHire, err := pipelinehandler.Instance.CanHire(orgID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка проверки готовности к найму")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(canHire))
}
