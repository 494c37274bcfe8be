package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"horeca-jobs-backend/controllers"
	billinghandler "horeca-jobs-backend/lib/billing"
	"horeca-jobs-backend/middleware"
	apimodels "horeca-jobs-backend/models/api"
	billingapimodels "horeca-jobs-backend/models/api/billing"
)

type billingApiController struct {
	controllers.BaseAPIController
}

func InitBillingApiRouters(app fiber.Router) {
	controller := billingApiController{}
	app.Route("billing", func(router fiber.Router) {
		router.Use(middleware.OrgRequired())

		router.Get("plan/list", controller.planList)
		router.Get("subscription", controller.subscription)
		router.Post("subscription", controller.subscribe)
		router.Delete("subscription", controller.cancel)
	})
}

// @Summary Тарифы
// @Tags Биллинг
// @Description Список тарифов
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]billingapimodels.PlanView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/billing/plan/list [get]
func (c *billingApiController) planList(ctx *fiber.Ctx) error {
	list, err := billinghandler.Instance.ListPlans()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка тарифов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Подписка
// @Tags Биллинг
// @Description Текущая подписка организации
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=billingapimodels.SubscriptionView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/billing/subscription [get]
func (c *billingApiController) subscription(ctx *fiber.Ctx) error {
	orgID := middleware.GetUserOrg(ctx)
	result, err := billinghandler.Instance.GetOrgSubscription(orgID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения подписки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Оформление подписки
// @Tags Биллинг
// @Description Оформление подписки на тариф
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 billingapimodels.SubscribeRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=billingapimodels.SubscriptionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/billing/subscription [post]
func (c *billingApiController) subscribe(ctx *fiber.Ctx) error {
	var payload billingapimodels.SubscribeRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	orgID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := billinghandler.Instance.Subscribe(orgID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка оформления подписки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Отмена подписки
// @Tags Биллинг
// @Description Отмена подписки организации
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/billing/subscription [delete]
func (c *billingApiController) cancel(ctx *fiber.Ctx) error {
	orgID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	err := billinghandler.Instance.Cancel(orgID, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отмены подписки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
