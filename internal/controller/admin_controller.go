package controller

import (
	"strconv"

	"worksuite-be/internal/dto"
	"worksuite-be/internal/entity"
	"worksuite-be/internal/pkg/serverutils"
	"worksuite-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	admin   service.IAdminService
	billing service.IBillingService
}

func NewAdminController(admin service.IAdminService, billing service.IBillingService) IAdminController {
	return &adminController{admin: admin, billing: billing}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", serverutils.JwtMiddleware, serverutils.RequireRole(string(entity.UserRoleSuperAdmin)))

	h.Get("/dashboard", c.Dashboard)

	h.Get("/plans", c.ListPlans)
	h.Post("/plans", c.CreatePlan)
	h.Put("/plans/:id", c.UpdatePlan)
	h.Delete("/plans/:id", c.DeletePlan)

	h.Get("/coupons", c.ListCoupons)
	h.Post("/coupons", c.CreateCoupon)
	h.Put("/coupons/:id", c.UpdateCoupon)
	h.Delete("/coupons/:id", c.DeleteCoupon)
	h.Get("/coupons/:id/usages", c.CouponUsages)

	h.Get("/currencies", c.ListCurrencies)
	h.Post("/currencies", c.CreateCurrency)
	h.Put("/currencies/:id", c.UpdateCurrency)
	h.Delete("/currencies/:id", c.DeleteCurrency)

	h.Get("/settings/:group", c.GetSettings)
	h.Put("/settings", c.UpdateSettings)
	h.Put("/settings/payment-methods", c.UpdatePaymentMethod)

	h.Get("/orders", c.ListOrders)
	h.Post("/orders/:id/approve", c.ApproveOrder)
	h.Post("/orders/:id/reject", c.RejectOrder)

	h.Get("/requests", c.ListRequests)
	h.Post("/requests/:id/approve", c.ApproveRequest)
	h.Post("/requests/:id/reject", c.RejectRequest)

	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLogDetail)
}

func (c *adminController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.admin.Dashboard(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

// --- Plans ---

func (c *adminController) ListPlans(ctx *fiber.Ctx) error {
	res, err := c.admin.ListPlans(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adminController) CreatePlan(ctx *fiber.Ctx) error {
	var req dto.CreatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.admin.CreatePlan(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Plan created", res))
}

func (c *adminController) UpdatePlan(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.admin.UpdatePlan(ctx.Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan updated", res))
}

func (c *adminController) DeletePlan(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}
	if err := c.admin.DeletePlan(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan deleted", nil))
}

// --- Coupons ---

func (c *adminController) ListCoupons(ctx *fiber.Ctx) error {
	res, err := c.admin.ListCoupons(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adminController) CreateCoupon(ctx *fiber.Ctx) error {
	var req dto.CreateCouponRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.admin.CreateCoupon(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Coupon created", res))
}

func (c *adminController) UpdateCoupon(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdateCouponRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.admin.UpdateCoupon(ctx.Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Coupon updated", res))
}

func (c *adminController) DeleteCoupon(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}
	if err := c.admin.DeleteCoupon(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Coupon deleted", nil))
}

func (c *adminController) CouponUsages(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}
	res, err := c.admin.CouponUsages(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

// --- Currencies ---

func (c *adminController) ListCurrencies(ctx *fiber.Ctx) error {
	res, err := c.admin.ListCurrencies(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adminController) CreateCurrency(ctx *fiber.Ctx) error {
	var req dto.CreateCurrencyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.admin.CreateCurrency(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Currency created", res))
}

func (c *adminController) UpdateCurrency(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdateCurrencyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.admin.UpdateCurrency(ctx.Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Currency updated", res))
}

func (c *adminController) DeleteCurrency(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}
	if err := c.admin.DeleteCurrency(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Currency deleted", nil))
}

// --- Settings ---

func (c *adminController) GetSettings(ctx *fiber.Ctx) error {
	res, err := c.admin.GetSettings(ctx.Context(), ctx.Params("group"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adminController) UpdateSettings(ctx *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.admin.UpdateSettings(ctx.Context(), req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Settings updated", nil))
}

func (c *adminController) UpdatePaymentMethod(ctx *fiber.Ctx) error {
	var req dto.PaymentMethodSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.admin.UpdatePaymentMethod(ctx.Context(), req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment method updated", nil))
}

// --- Orders / Requests ---

func (c *adminController) ListOrders(ctx *fiber.Ctx) error {
	var req dto.OrderListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query")
	}
	res, err := c.admin.ListOrders(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adminController) ApproveOrder(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}
	var req dto.DecisionRequest
	ctx.BodyParser(&req)

	if err := c.billing.ApproveOrder(ctx.Context(), id, req.Notes); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Order approved", nil))
}

func (c *adminController) RejectOrder(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}
	var req dto.DecisionRequest
	ctx.BodyParser(&req)

	if err := c.billing.RejectOrder(ctx.Context(), id, req.Notes); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Order rejected", nil))
}

func (c *adminController) ListRequests(ctx *fiber.Ctx) error {
	var req dto.OrderListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query")
	}
	res, err := c.admin.ListRequests(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adminController) ApproveRequest(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}
	var req dto.DecisionRequest
	ctx.BodyParser(&req)

	if err := c.billing.ApproveRequest(ctx.Context(), id, req.Notes); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Request approved", nil))
}

func (c *adminController) RejectRequest(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}
	var req dto.DecisionRequest
	ctx.BodyParser(&req)

	if err := c.billing.RejectRequest(ctx.Context(), id, req.Notes); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Request rejected", nil))
}

// --- System logs ---

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))
	level := ctx.Query("level", "")

	res, err := c.admin.SystemLogs(ctx.Context(), level, page, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	res, err := c.admin.LogDetail(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "log not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func parseId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}
