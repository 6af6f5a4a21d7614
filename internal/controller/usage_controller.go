package controller

import (
	"se-trainer-be/internal/pkg/serverutils"
	"se-trainer-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUsageController interface {
	RegisterRoutes(r fiber.Router)
	Status(ctx *fiber.Ctx) error
	Ledger(ctx *fiber.Ctx) error
}

type usageController struct {
	quotaService service.IQuotaService
}

func NewUsageController(quotaService service.IQuotaService) IUsageController {
	return &usageController{
		quotaService: quotaService,
	}
}

func (c *usageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/trainer/v1/usage")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Status)
	h.Get("ledger", c.Ledger)
}

func (c *usageController) Status(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.quotaService.GetUsageStatus(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get usage status", res))
}

func (c *usageController) Ledger(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.quotaService.ListLedger(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list usage ledger", res))
}
