package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"worksuite-be/internal/entity"
)

// ErrorHandlerMiddleware maps domain errors onto HTTP statuses so
// controllers can just return errors.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := err.Error()

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
		case errors.Is(err, entity.ErrAlreadyUsedTrial),
			errors.Is(err, entity.ErrInvalidStateTransition),
			errors.Is(err, entity.ErrDefaultPlanConflict),
			errors.Is(err, entity.ErrDefaultCurrencyConflict):
			code = fiber.StatusConflict
		case errors.Is(err, entity.ErrCouponInvalid):
			code = fiber.StatusUnprocessableEntity
		case errors.Is(err, entity.ErrPaymentInitiationFailed):
			code = fiber.StatusBadGateway
			// Never echo provider errors; they can carry credentials.
			message = "payment failed, please try again"
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
