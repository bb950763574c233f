// FILE: internal/controller/admin_controller.go
// Admin endpoints for the out-of-band status process
package controller

import (
	"roadmap-voting-be/internal/dto"
	"roadmap-voting-be/internal/pkg/serverutils"
	"roadmap-voting-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetAuditTrail(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{
		adminService: adminService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Post("login", c.Login)

	protected := h.Group("", serverutils.JwtMiddleware)
	protected.Patch("features/:id/status", c.UpdateStatus)
	protected.Get("logs", c.GetLogs)
	protected.Get("audit", c.GetAuditTrail)
}

func (c *adminController) Login(ctx *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Invalid request payload")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *adminController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return service.ErrInvalidFeatureId
	}

	var req dto.UpdateStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Invalid request payload")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.UpdateStatus(ctx.Context(), id, req.Status); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Status updated", nil))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	logs, err := c.adminService.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Logs retrieved", logs))
}

func (c *adminController) GetAuditTrail(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)

	trail, err := c.adminService.GetAuditTrail(ctx.Context(), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Audit trail retrieved", trail))
}
