package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"horeca-jobs-backend/controllers"
	waitlisthandler "horeca-jobs-backend/lib/waitlist"
	"horeca-jobs-backend/middleware"
	apimodels "horeca-jobs-backend/models/api"
	waitlistapimodels "horeca-jobs-backend/models/api/waitlist"
)

type waitlistApiController struct {
	controllers.BaseAPIController
}

// InitWaitlistPublicRouters - публичная заявка в лист ожидания, без авторизации
func InitWaitlistPublicRouters(app fiber.Router) {
	controller := waitlistApiController{}
	app.Post("waitlist", controller.join)
}

func InitWaitlistAdminRouters(app fiber.Router) {
	controller := waitlistApiController{}
	app.Route("waitlist", func(router fiber.Router) {
		router.Use(middleware.SuperAdminRoleRequired())

		router.Post("list", controller.list)
		router.Put(":id/invite", controller.invite)
	})
}

// @Summary Заявка в лист ожидания
// @Tags Лист ожидания
// @Description Заявка на запуск платформы в городе
// @Param	body body	 waitlistapimodels.JoinRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/waitlist [post]
func (c *waitlistApiController) join(ctx *fiber.Ctx) error {
	var payload waitlistapimodels.JoinRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := waitlisthandler.Instance.Join(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Лист ожидания
// @Tags Лист ожидания
// @Description Список заявок в листе ожидания
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 waitlistapimodels.ListFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]waitlistapimodels.EntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/waitlist/list [post]
func (c *waitlistApiController) list(ctx *fiber.Ctx) error {
	var payload waitlistapimodels.ListFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := waitlisthandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения листа ожидания")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Приглашение
// @Tags Лист ожидания
// @Description Приглашение из листа ожидания, письмо со ссылкой на регистрацию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/waitlist/{id}/invite [put]
func (c *waitlistApiController) invite(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = waitlisthandler.Instance.Invite(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка приглашения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
