package middleware

import (
	deliveryctx "wishlist/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID assigns every request a tracking ID, honoring one supplied by
// the client in the X-Request-Id header, and echoes it on the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(deliveryctx.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			deliveryctx.SetRequestID(c, requestID)
			c.Response().Header().Set(deliveryctx.HeaderXRequestID, requestID)

			ctx := deliveryctx.WithRequestID(c.Request().Context(), requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
