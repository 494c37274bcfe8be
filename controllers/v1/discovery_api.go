package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"horeca-jobs-backend/controllers"
	discoveryhandler "horeca-jobs-backend/lib/discovery"
	"horeca-jobs-backend/middleware"
	apimodels "horeca-jobs-backend/models/api"
	discoveryapimodels "horeca-jobs-backend/models/api/discovery"
)

type discoveryApiController struct {
	controllers.BaseAPIController
}

func InitDiscoveryApiRouters(app fiber.Router) {
	controller := discoveryApiController{}
	app.Route("discovery", func(router fiber.Router) {
		router.Use(middleware.OrgRequired())

		router.Post("search", controller.search)
		router.Post("worker/:id/contacts", controller.revealContacts)
	})
}

// @Summary Поиск соискателей
// @Tags Поиск соискателей
// @Description Поиск анкет соискателей в радиусе от точки, без контактов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 discoveryapimodels.SearchRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]discoveryapimodels.WorkerView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/discovery/search [post]
func (c *discoveryApiController) search(ctx *fiber.Ctx) error {
	var payload discoveryapimodels.SearchRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	orgID := middleware.GetUserOrg(ctx)
	result, err := discoveryhandler.Instance.Search(orgID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка поиска соискателей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Контакты соискателя
// @Tags Поиск соискателей
// @Description Раскрытие контактов соискателя, списывается кредит исходящих обращений
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "worker ID"
// @Param	body body	 discoveryapimodels.SearchRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=discoveryapimodels.ContactsView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/discovery/worker/{id}/contacts [post]
func (c *discoveryApiController) revealContacts(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload discoveryapimodels.SearchRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	orgID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := discoveryhandler.Instance.RevealContacts(orgID, userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка раскрытия контактов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
