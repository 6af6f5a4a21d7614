package controller

import (
	"se-trainer-be/internal/dto"
	"se-trainer-be/internal/pkg/serverutils"
	"se-trainer-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IKBController interface {
	RegisterRoutes(r fiber.Router)
	SaveTemplate(ctx *fiber.Ctx) error
	ListTemplates(ctx *fiber.Ctx) error
	ShowTemplate(ctx *fiber.Ctx) error
	DeleteTemplate(ctx *fiber.Ctx) error
	ListPublicCards(ctx *fiber.Ctx) error
}

type kbController struct {
	templateService service.ITemplateService
}

func NewKBController(templateService service.ITemplateService) IKBController {
	return &kbController{
		templateService: templateService,
	}
}

func (c *kbController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/kb/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("templates", c.SaveTemplate)
	h.Get("templates", c.ListTemplates)
	h.Get("templates/:id", c.ShowTemplate)
	h.Delete("templates/:id", c.DeleteTemplate)
	h.Get("cards", c.ListPublicCards)
}

func (c *kbController) SaveTemplate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SaveTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.templateService.SaveTemplate(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success save template", res))
}

func (c *kbController) ListTemplates(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	scenario := ctx.Query("scenario")

	res, err := c.templateService.ListTemplates(ctx.Context(), userId, scenario)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list templates", res))
}

func (c *kbController) ShowTemplate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid template id")
	}

	res, err := c.templateService.GetTemplate(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show template", res))
}

func (c *kbController) DeleteTemplate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid template id")
	}

	if err := c.templateService.DeleteTemplate(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete template", nil))
}

func (c *kbController) ListPublicCards(ctx *fiber.Ctx) error {
	scenario := ctx.Query("scenario")
	level := ctx.Query("level")

	res, err := c.templateService.ListPublicCards(ctx.Context(), scenario, level)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list public cards", res))
}
