package controller

import (
	"strings"

	"se-trainer-be/internal/dto"
	"se-trainer-be/internal/pkg/serverutils"
	"se-trainer-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITrainerController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	UpdateSession(ctx *fiber.Ctx) error
	SubmitTurn(ctx *fiber.Ctx) error
	ListTurns(ctx *fiber.Ctx) error
}

type trainerController struct {
	sessionService service.ISessionService
	turnService    service.ITurnService
}

func NewTrainerController(sessionService service.ISessionService, turnService service.ITurnService) ITrainerController {
	return &trainerController{
		sessionService: sessionService,
		turnService:    turnService,
	}
}

func (c *trainerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/trainer/v1/sessions")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.CreateSession)
	h.Get("", c.ListSessions)
	h.Get(":id", c.ShowSession)
	h.Patch(":id", c.UpdateSession)
	h.Post(":id/turns", c.SubmitTurn)
	h.Get(":id/turns", c.ListTurns)
}

func (c *trainerController) CreateSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *trainerController) ShowSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	res, err := c.sessionService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *trainerController) ListSessions(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	includeArchived := ctx.QueryBool("include_archived", false)

	res, err := c.sessionService.List(ctx.Context(), userId, includeArchived)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", res))
}

func (c *trainerController) UpdateSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	var req dto.UpdateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.sessionService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update session", res))
}

func (c *trainerController) SubmitTurn(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	var req dto.SubmitTurnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SessionId = sessionId
	req.UserInput = strings.TrimSpace(req.UserInput)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.turnService.SubmitTurn(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success submit turn", res))
}

func (c *trainerController) ListTurns(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	res, err := c.sessionService.ListTurns(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list turns", res))
}
