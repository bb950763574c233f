// FILE: internal/controller/roadmap_controller.go
// Public endpoints: list, submit, vote, unvote
package controller

import (
	"roadmap-voting-be/internal/dto"
	"roadmap-voting-be/internal/pkg/identity"
	"roadmap-voting-be/internal/pkg/serverutils"
	"roadmap-voting-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRoadmapController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	Vote(ctx *fiber.Ctx) error
	Unvote(ctx *fiber.Ctx) error
}

type roadmapController struct {
	roadmapService service.IRoadmapService
}

func NewRoadmapController(roadmapService service.IRoadmapService) IRoadmapController {
	return &roadmapController{
		roadmapService: roadmapService,
	}
}

func (c *roadmapController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/roadmap/v1")
	h.Get("features", c.List)
	h.Post("features", c.Submit)
	h.Post("features/:id/vote", c.Vote)
	h.Delete("features/:id/vote", c.Unvote)
}

func (c *roadmapController) List(ctx *fiber.Ctx) error {
	payload, err := c.roadmapService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Features retrieved", payload))
}

func (c *roadmapController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Invalid request payload")
	}

	userKey := c.userKey(ctx)
	res, err := c.roadmapService.Submit(ctx.Context(), &req, userKey)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Feature submitted successfully!", res))
}

func (c *roadmapController) Vote(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return service.ErrInvalidFeatureId
	}

	userKey := c.userKey(ctx)
	res, err := c.roadmapService.Vote(ctx.Context(), id, userKey)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Vote recorded!", res))
}

func (c *roadmapController) Unvote(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return service.ErrInvalidFeatureId
	}

	userKey := c.userKey(ctx)
	res, err := c.roadmapService.Unvote(ctx.Context(), id, userKey)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Vote removed!", res))
}

// userKey derives the pseudonymous rate-limit key from client-supplied
// query parameters. These fields are part of the public API contract and
// intentionally spoofable; they identify a cooldown bucket, not a person.
func (c *roadmapController) userKey(ctx *fiber.Ctx) string {
	return identity.DeriveUserKey(ctx.Query("userAgent"), ctx.Query("ipAddress"))
}
