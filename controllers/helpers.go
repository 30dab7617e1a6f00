// path: controllers/helpers.go
package controllers

import (
	"errors"
	"os"

	"github.com/HimanshiWW/Doudou/database"
	"github.com/HimanshiWW/Doudou/models"

	"github.com/gofiber/fiber/v2"
)

func detail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(models.ErrorResponse{Detail: msg})
}

func serverErr(c *fiber.Ctx, err error) error {
	return detail(c, fiber.StatusInternalServerError, err.Error())
}

// storeErr maps the repository error taxonomy onto HTTP: malformed id 400,
// absent record 404, anything else 500.
func storeErr(c *fiber.Ctx, err error, invalidMsg, notFoundMsg string) error {
	switch {
	case errors.Is(err, database.ErrInvalidID):
		return detail(c, fiber.StatusBadRequest, invalidMsg)
	case errors.Is(err, database.ErrNotFound):
		return detail(c, fiber.StatusNotFound, notFoundMsg)
	default:
		return serverErr(c, err)
	}
}

// userID resolves the caller identity for saved-location endpoints. The
// store layer requires an explicit user id; the single-user default is
// applied only here at the boundary.
func userID(c *fiber.Ctx) string {
	if v := c.Query("user_id"); v != "" {
		return v
	}
	return defaultUserID()
}

func defaultUserID() string {
	return getenv("DEFAULT_USER_ID", "default_user")
}

// getenv returns env var value or default.
func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
