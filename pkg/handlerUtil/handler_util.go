package handlerUtil

import (
	"FinancialBack/pkg/log"
	"FinancialBack/pkg/response"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Handle translates a service error into the envelope body. Validation
// failures carry their violation list as data; domain errors carry their own
// status code; anything else is an unexpected 500.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var validationErr *response.ValidationError
	if errors.As(err, &validationErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"violations": validationErr.Violations,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation rejected by validation rules")
		return c.Status(fiber.StatusBadRequest).JSON(
			response.NewEnvelope(validationErr.Message, validationErr.Violations))
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(response.NewEnvelope(err.Error(), nil))
	}

	traceID := log.ErrorWithTraceID(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}, "Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(
		response.NewEnvelope("an unexpected error occurred, trace id: "+traceID, nil))
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Request validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(
		response.NewEnvelope("invalid request: "+err.Error(), nil))
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(
		response.NewEnvelope(utils.StatusMessage(fiber.StatusRequestTimeout), nil))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return c.Status(statusCode).JSON(response.NewEnvelope(message, data))
}
