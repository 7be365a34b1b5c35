package controller

import (
	"worksuite-be/internal/pkg/logger"
	"worksuite-be/internal/pkg/serverutils"
	"worksuite-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IWebhookController receives gateway callbacks. The routes are public;
// authenticity is proven by the signature inside each payload.
type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	Callback(ctx *fiber.Ctx) error
}

type webhookController struct {
	service service.IBillingService
	logger  logger.ILogger
}

func NewWebhookController(service service.IBillingService, log logger.ILogger) IWebhookController {
	return &webhookController{service: service, logger: log}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payment")
	h.Post("/:gateway/callback", c.Callback)
}

func (c *webhookController) Callback(ctx *fiber.Ctx) error {
	gatewayName := ctx.Params("gateway")
	payload := ctx.Body()

	if err := c.service.HandlePaymentCallback(ctx.Context(), gatewayName, payload); err != nil {
		c.logger.Warn("WebhookController", "Callback rejected", map[string]interface{}{
			"gateway": gatewayName,
			"error":   err.Error(),
		})
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Providers only need a 200 to stop redelivering.
	return ctx.JSON(serverutils.SuccessResponse("OK", nil))
}
