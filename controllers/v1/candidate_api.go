package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"horeca-jobs-backend/controllers"
	applicationhandler "horeca-jobs-backend/lib/application"
	discoveryhandler "horeca-jobs-backend/lib/discovery"
	documenthandler "horeca-jobs-backend/lib/document"
	jobhandler "horeca-jobs-backend/lib/job"
	"horeca-jobs-backend/middleware"
	apimodels "horeca-jobs-backend/models/api"
	applicationapimodels "horeca-jobs-backend/models/api/application"
	discoveryapimodels "horeca-jobs-backend/models/api/discovery"
	jobapimodels "horeca-jobs-backend/models/api/job"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app fiber.Router) {
	controller := candidateApiController{}
	app.Route("candidate", func(router fiber.Router) {
		router.Use(middleware.CandidateRequired())

		router.Post("job/list", controller.jobList)
		router.Post("application", controller.apply)
		router.Get("application/list", controller.applicationList)
		router.Route("application/:id", func(idRoute fiber.Router) {
			idRoute.Put("withdraw", controller.withdraw)
			idRoute.Get("document/list", controller.documentList)
		})
		router.Get("document/:id", controller.documentDownload)
		router.Put("profile", controller.saveProfile)
	})
}

// @Summary Опубликованные вакансии
// @Tags Соискатель
// @Description Список опубликованных вакансий
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/job/list [post]
func (c *candidateApiController) jobList(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := jobhandler.Instance.ListPublished(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Отклик на вакансию
// @Tags Соискатель
// @Description Создание отклика, повторный отклик на ту же вакансию отклоняется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplyRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/application [post]
func (c *candidateApiController) apply(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplyRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetUserID(ctx)
	result, err := applicationhandler.Instance.Apply(candidateID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Отзыв отклика
// @Tags Соискатель
// @Description Отзыв отклика соискателем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/application/{id}/withdraw [put]
func (c *candidateApiController) withdraw(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetUserID(ctx)
	result, err := applicationhandler.Instance.Withdraw(candidateID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отзыва отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Мои отклики
// @Tags Соискатель
// @Description Список откликов соискателя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/application/list [get]
func (c *candidateApiController) applicationList(ctx *fiber.Ctx) error {
	candidateID := middleware.GetUserID(ctx)
	list, err := applicationhandler.Instance.ListForCandidate(candidateID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка откликов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Документы по отклику
// @Tags Соискатель
// @Description Список документов, расшаренных организацией по отклику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "application ID"
// @Success 200 {object} apimodels.Response{data=[]documentapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/application/{id}/document/list [get]
func (c *candidateApiController) documentList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetUserID(ctx)
	list, err := documenthandler.Instance.ListForCandidate(candidateID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка документов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Скачивание документа
// @Tags Соискатель
// @Description Скачивание документа, расшаренного по отклику соискателя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "document ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/document/{id} [get]
func (c *candidateApiController) documentDownload(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetUserID(ctx)
	rec, body, err := documenthandler.Instance.DownloadForCandidate(ctx.Context(), candidateID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка скачивания документа")
	}
	ctx.Set(fiber.HeaderContentType, rec.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%v"`, rec.Name))
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Анкета соискателя
// @Tags Соискатель
// @Description Сохранение анкеты для поиска работодателями
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 discoveryapimodels.ProfileData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile [put]
func (c *candidateApiController) saveProfile(ctx *fiber.Ctx) error {
	var payload discoveryapimodels.ProfileData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetUserID(ctx)
	id, err := discoveryhandler.Instance.SaveProfile(candidateID, payload.Convert())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения анкеты")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}
