package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"horeca-jobs-backend/middleware"
	"horeca-jobs-backend/models"
	apimodels "horeca-jobs-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("не указан идентификатор записи")
	}
	return id, nil
}

func (c *BaseAPIController) GetParam(ctx *fiber.Ctx, name string) (string, error) {
	value := ctx.Params(name)
	if value == "" {
		return "", errors.Errorf("не указан параметр (%v)", name)
	}
	return value, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.WithField("path", ctx.Path()).
		WithField("method", ctx.Method())
	if orgID := middleware.GetUserOrg(ctx); orgID != "" {
		logger = logger.WithField("organization_id", orgID)
	}
	if userID := middleware.GetUserID(ctx); userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

// SendError - ответ с ошибкой, статус определяется по виду ошибки.
// Внутренние ошибки не раскрываются клиенту
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	status := models.GetHttpStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.WithError(err).Error(hMsg)
		return ctx.Status(status).JSON(apimodels.NewError(hMsg))
	}
	logger.WithError(err).Warn(hMsg)
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}
