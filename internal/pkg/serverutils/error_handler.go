package serverutils

import (
	"errors"

	"se-trainer-be/internal/dto"
	"se-trainer-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors bubbling out of controllers into
// stable JSON responses. Quota errors map to 429 with the usage details;
// anything unrecognized becomes an opaque 500 so internals never leak.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var quotaErr *dto.QuotaExceededError
		if errors.As(err, &quotaErr) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(Response{
				Success: false,
				Message: quotaErr.Error(),
				Data: dto.QuotaExceededData{
					Limit:           quotaErr.Limit,
					Used:            quotaErr.Used,
					UpgradeRequired: true,
				},
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(FailResponse(fiberErr.Message))
		}

		log.Error("HTTP", "Unhandled error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})

		return ctx.Status(fiber.StatusInternalServerError).JSON(FailResponse("internal server error"))
	}
}
