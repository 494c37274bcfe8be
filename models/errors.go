package models

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// ErrorKind - классификация ошибок бизнес-логики для маппинга в HTTP статус.
// Все ошибки выявляются до записи в БД и не ретраятся
type ErrorKind int

const (
	ErrorKindInternal ErrorKind = iota
	ErrorKindNotFound
	ErrorKindForbidden
	ErrorKindInvalidState
	ErrorKindPrecondition
)

type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) error {
	return &AppError{Kind: ErrorKindNotFound, Message: message}
}

func NewForbiddenError(message string) error {
	return &AppError{Kind: ErrorKindForbidden, Message: message}
}

func NewInvalidStateError(message string) error {
	return &AppError{Kind: ErrorKindInvalidState, Message: message}
}

func NewPreconditionError(message string) error {
	return &AppError{Kind: ErrorKindPrecondition, Message: message}
}

func GetErrorKind(err error) ErrorKind {
	appErr := &AppError{}
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ErrorKindInternal
}

func GetHttpStatus(err error) int {
	switch GetErrorKind(err) {
	case ErrorKindNotFound:
		return fiber.StatusNotFound
	case ErrorKindForbidden:
		return fiber.StatusForbidden
	case ErrorKindInvalidState:
		return fiber.StatusConflict
	case ErrorKindPrecondition:
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
