package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"horeca-jobs-backend/controllers"
	documenthandler "horeca-jobs-backend/lib/document"
	"horeca-jobs-backend/middleware"
	apimodels "horeca-jobs-backend/models/api"
	dbmodels "horeca-jobs-backend/models/db"
)

type documentApiController struct {
	controllers.BaseAPIController
}

func InitDocumentApiRouters(app fiber.Router) {
	controller := documentApiController{}
	app.Route("document", func(router fiber.Router) {
		router.Use(middleware.OrgRequired())

		router.Post("upload", controller.upload)
		router.Get("application/:id/list", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.download)
			idRoute.Put("share", controller.share)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Загрузка документа
// @Tags Документы
// @Description Загрузка документа по отклику (multipart/form-data)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   application_id		formData	string	true	"application ID"
// @Param   type				formData	string	false	"тип документа"
// @Param   file				formData	file	true	"файл"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/document/upload [post]
func (c *documentApiController) upload(ctx *fiber.Ctx) error {
	applicationID := ctx.FormValue("application_id")
	if applicationID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан отклик"))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить файл из запроса"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось открыть файл из запроса"))
	}
	defer file.Close()

	info := dbmodels.UploadDocumentInfo{
		OrganizationID: middleware.GetUserOrg(ctx),
		ApplicationID:  applicationID,
		FileName:       fileHeader.Filename,
		Type:           dbmodels.DocumentType(ctx.FormValue("type")),
		ContentType:    fileHeader.Header.Get(fiber.HeaderContentType),
		UploadedByID:   middleware.GetUserID(ctx),
	}
	id, err := documenthandler.Instance.Upload(ctx.Context(), info, file, fileHeader.Size)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки документа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Документы по отклику
// @Tags Документы
// @Description Список документов по отклику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "application ID"
// @Success 200 {object} apimodels.Response{data=[]documentapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/document/application/{id}/list [get]
func (c *documentApiController) list(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	orgID := middleware.GetUserOrg(ctx)
	list, err := documenthandler.Instance.ListForApplication(orgID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка документов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Скачивание документа
// @Tags Документы
// @Description Скачивание документа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/document/{id} [get]
func (c *documentApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	orgID := middleware.GetUserOrg(ctx)
	rec, body, err := documenthandler.Instance.Download(ctx.Context(), orgID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка скачивания документа")
	}
	ctx.Set(fiber.HeaderContentType, rec.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%v"`, rec.Name))
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Доступ соискателю
// @Tags Документы
// @Description Управление доступом соискателя к документу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param   shared				query	bool	false	"доступ открыт"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/document/{id}/share [put]
func (c *documentApiController) share(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	shared := ctx.QueryBool("shared", true)
	orgID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	err = documenthandler.Instance.Share(orgID, userID, id, shared)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения доступа к документу")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление документа
// @Tags Документы
// @Description Удаление документа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/document/{id} [delete]
func (c *documentApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	orgID := middleware.GetUserOrg(ctx)
	err = documenthandler.Instance.Delete(ctx.Context(), orgID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления документа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
