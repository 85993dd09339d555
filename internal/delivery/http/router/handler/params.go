package handler

import (
	"strconv"

	"wishlist/internal/delivery/http/middleware"
	domainerrors "wishlist/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// authenticatedUserID reads the user ID placed on the context by the auth
// middleware.
func authenticatedUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return userID, nil
}

// pathID parses a numeric path parameter. A malformed ID behaves like a
// missing resource.
func pathID(c echo.Context, name string, notFound error) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.WithStack(notFound)
	}

	return id, nil
}
