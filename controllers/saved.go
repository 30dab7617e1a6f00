// path: controllers/saved.go
package controllers

import (
	"github.com/HimanshiWW/Doudou/models"

	"github.com/gofiber/fiber/v2"
)

// HandleSaveLocation bookmarks a location for a user. Saving an already
// saved pair reports success without writing.
func HandleSaveLocation(saved SavedStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.SavedLocationCreate
		if err := c.BodyParser(&p); err != nil {
			return detail(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if p.UserID == "" {
			p.UserID = defaultUserID()
		}

		already, err := saved.Save(c.Context(), p.UserID, p.LocationID)
		if err != nil {
			return serverErr(c, err)
		}

		msg := "Location saved"
		if already {
			msg = "Location already saved"
		}
		return c.JSON(models.SavedResponse{Message: msg, Saved: true})
	}
}

// HandleUnsaveLocation removes the bookmark if present. An absent pair is
// reported the same as a removed one.
func HandleUnsaveLocation(saved SavedStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := saved.Unsave(c.Context(), userID(c), c.Params("location_id")); err != nil {
			return serverErr(c, err)
		}
		return c.JSON(models.SavedResponse{Message: "Location removed from saved", Saved: false})
	}
}

// HandleListSaved returns the full location record for each of the user's
// bookmarks. Pairs whose location id is malformed or no longer resolves are
// skipped, so the result can be shorter than the number of saved pairs.
func HandleListSaved(saved SavedStore, locations LocationStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pairs, err := saved.ListForUser(c.Context(), userID(c))
		if err != nil {
			return serverErr(c, err)
		}

		out := make([]models.LocationResponse, 0, len(pairs))
		for _, pair := range pairs {
			loc, err := locations.Get(c.Context(), pair.LocationID)
			if err != nil {
				continue
			}
			out = append(out, loc.Response())
		}
		return c.JSON(out)
	}
}

func HandleCheckSaved(saved SavedStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, err := saved.IsSaved(c.Context(), userID(c), c.Params("location_id"))
		if err != nil {
			return serverErr(c, err)
		}
		return c.JSON(models.SavedCheckResponse{Saved: ok})
	}
}
