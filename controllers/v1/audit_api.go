package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"horeca-jobs-backend/controllers"
	"horeca-jobs-backend/lib/audit"
	"horeca-jobs-backend/middleware"
	apimodels "horeca-jobs-backend/models/api"
	auditapimodels "horeca-jobs-backend/models/api/audit"
)

type auditApiController struct {
	controllers.BaseAPIController
}

func InitAuditApiRouters(app fiber.Router) {
	controller := auditApiController{}
	app.Route("audit", func(router fiber.Router) {
		router.Use(middleware.OrgRequired())
		router.Use(middleware.OrgAdminRequired())

		router.Post("list", controller.list)
	})
}

// @Summary Журнал событий
// @Tags Аудит
// @Description Журнал событий организации
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 auditapimodels.EventFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]auditapimodels.EventView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/audit/list [post]
func (c *auditApiController) list(ctx *fiber.Ctx) error {
	var payload auditapimodels.EventFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	orgID := middleware.GetUserOrg(ctx)
	list, rowCount, err := audit.Instance.List(orgID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала событий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
