package apperrors

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// Типизированные ошибки бизнес-логики.
// Контроллеры мапят их в HTTP статус через StatusCode,
// всё неопознанное превращается в 500 без деталей для клиента.

type kind int

const (
	kindValidation kind = iota
	kindNotFound
	kindAuthorization
	kindConflict
	kindNoCapacity
	kindInvalidOperation
	kindProvider
)

type Error struct {
	kind    kind
	message string
}

func (e *Error) Error() string {
	return e.message
}

func NewValidationError(message string) *Error {
	return &Error{kind: kindValidation, message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{kind: kindNotFound, message: message}
}

func NewAuthorizationError(message string) *Error {
	return &Error{kind: kindAuthorization, message: message}
}

func NewConflictError(message string) *Error {
	return &Error{kind: kindConflict, message: message}
}

func NewNoCapacityError(message string) *Error {
	return &Error{kind: kindNoCapacity, message: message}
}

func NewInvalidOperationError(message string) *Error {
	return &Error{kind: kindInvalidOperation, message: message}
}

func NewProviderError(message string) *Error {
	return &Error{kind: kindProvider, message: message}
}

func IsValidation(err error) bool       { return is(err, kindValidation) }
func IsNotFound(err error) bool         { return is(err, kindNotFound) }
func IsAuthorization(err error) bool    { return is(err, kindAuthorization) }
func IsConflict(err error) bool         { return is(err, kindConflict) }
func IsNoCapacity(err error) bool       { return is(err, kindNoCapacity) }
func IsInvalidOperation(err error) bool { return is(err, kindInvalidOperation) }
func IsProvider(err error) bool         { return is(err, kindProvider) }

func is(err error, k kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind == k
	}
	return false
}

// StatusCode возвращает HTTP статус для ошибки и признак,
// можно ли отдавать текст ошибки клиенту
func StatusCode(err error) (status int, exposable bool) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError, false
	}
	switch appErr.kind {
	case kindValidation, kindInvalidOperation:
		return fiber.StatusBadRequest, true
	case kindNotFound:
		return fiber.StatusNotFound, true
	case kindAuthorization:
		return fiber.StatusForbidden, true
	case kindConflict, kindNoCapacity:
		return fiber.StatusConflict, true
	default:
		return fiber.StatusInternalServerError, false
	}
}
