package serverutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"worksuite-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, handler fiber.Handler) (int, ApiResponse) {
	t.Helper()
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/t", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed ApiResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	return resp.StatusCode, parsed
}

func TestErrorHandlerHidesGatewayDetail(t *testing.T) {
	providerErr := errors.New(`create checkout session: invalid API key "sk_live_51Hxyz"`)

	status, resp := doRequest(t, func(ctx *fiber.Ctx) error {
		return fmt.Errorf("%w: %v", entity.ErrPaymentInitiationFailed, providerErr)
	})

	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Equal(t, "payment failed, please try again", resp.Message)
	assert.NotContains(t, resp.Message, "sk_live")
}

func TestErrorHandlerDomainMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"trial already used", entity.ErrAlreadyUsedTrial, fiber.StatusConflict},
		{"invalid transition", entity.ErrInvalidStateTransition, fiber.StatusConflict},
		{"invalid coupon", entity.ErrCouponInvalid, fiber.StatusUnprocessableEntity},
		{"fiber error passthrough", fiber.NewError(fiber.StatusNotFound, "plan not found"), fiber.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := doRequest(t, func(ctx *fiber.Ctx) error {
				return tc.err
			})
			assert.Equal(t, tc.code, status)
			assert.False(t, resp.Success)
		})
	}
}
