package http

import (
	"errors"

	"github.com/digitalshield/shield/pkg/domain"
	"github.com/gofiber/fiber/v2"
)

const ErrInvalidJsonPayload = "invalid JSON payload"

// errorStatus maps the domain taxonomy onto HTTP statuses so callers can
// tell "try again shortly" (429) from "service unavailable" (402/502) from
// "couldn't understand the input or response" (400/502 malformed).
func errorStatus(err error) int {
	switch {
	case domain.IsInvalidInputError(err):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrRateLimited):
		return fiber.StatusTooManyRequests
	case errors.Is(err, domain.ErrQuotaExhausted):
		return fiber.StatusPaymentRequired
	case domain.IsPreconditionFailedError(err):
		return fiber.StatusConflict
	case domain.IsNotOwnerError(err):
		return fiber.StatusForbidden
	case domain.IsNotFoundError(err):
		return fiber.StatusNotFound
	case domain.IsMalformedVerdictError(err),
		domain.IsUpstreamError(err),
		errors.Is(err, domain.ErrEmptyCompletion):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return "Rate limit exceeded. Please try again in a moment."
	case errors.Is(err, domain.ErrQuotaExhausted):
		return "AI service credits depleted. Please add credits to continue."
	case errors.Is(err, domain.ErrEmptyCompletion):
		return "No response from AI service."
	case domain.IsConfigurationError(err):
		return "Service misconfigured. Please contact the administrator."
	default:
		return err.Error()
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{"error": errorMessage(err)})
}
