package controller

import (
	"worksuite-be/internal/dto"
	"worksuite-be/internal/pkg/serverutils"
	"worksuite-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IBillingController exposes the tenant-facing billing surface: trials,
// checkout, coupon preview, plan change requests and the current plan.
type IBillingController interface {
	RegisterRoutes(r fiber.Router)
	TrialEligibility(ctx *fiber.Ctx) error
	StartTrial(ctx *fiber.Ctx) error
	PreviewCoupon(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
	RequestPlanChange(ctx *fiber.Ctx) error
	CurrentSubscription(ctx *fiber.Ctx) error
	PaymentMethods(ctx *fiber.Ctx) error
}

type billingController struct {
	service service.IBillingService
}

func NewBillingController(service service.IBillingService) IBillingController {
	return &billingController{service: service}
}

func (c *billingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/billing", serverutils.JwtMiddleware)
	h.Get("/trial/eligibility", c.TrialEligibility)
	h.Post("/trial", c.StartTrial)
	h.Post("/coupon/preview", c.PreviewCoupon)
	h.Post("/checkout", c.Checkout)
	h.Post("/request", c.RequestPlanChange)
	h.Get("/subscription", c.CurrentSubscription)
	h.Get("/methods", c.PaymentMethods)
}

// companyId extracts the tenant from the JWT claims.
func companyId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals("company_id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "token is not bound to a company")
	}
	return id, nil
}

func (c *billingController) TrialEligibility(ctx *fiber.Ctx) error {
	company, err := companyId(ctx)
	if err != nil {
		return err
	}
	planId, err := uuid.Parse(ctx.Query("plan_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "plan_id is required")
	}

	res, err := c.service.EvaluateTrialEligibility(ctx.Context(), company, planId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *billingController) StartTrial(ctx *fiber.Ctx) error {
	company, err := companyId(ctx)
	if err != nil {
		return err
	}

	var req dto.StartTrialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.StartTrial(ctx.Context(), company, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Trial started", res))
}

func (c *billingController) PreviewCoupon(ctx *fiber.Ctx) error {
	var req dto.ApplyCouponRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.PreviewCoupon(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Coupon applied", res))
}

func (c *billingController) Checkout(ctx *fiber.Ctx) error {
	company, err := companyId(ctx)
	if err != nil {
		return err
	}

	var req dto.CheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.InitiateCheckout(ctx.Context(), company, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Checkout created", res))
}

func (c *billingController) RequestPlanChange(ctx *fiber.Ctx) error {
	company, err := companyId(ctx)
	if err != nil {
		return err
	}

	var req dto.PlanChangeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.RequestPlanChange(ctx.Context(), company, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Plan change requested", res))
}

func (c *billingController) CurrentSubscription(ctx *fiber.Ctx) error {
	company, err := companyId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.CurrentSubscription(ctx.Context(), company)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.JSON(serverutils.SuccessResponse("No active subscription", nil))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *billingController) PaymentMethods(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success", c.service.PaymentMethods(ctx.Context())))
}
