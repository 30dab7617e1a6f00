// path: controllers/locations.go
package controllers

import (
	"time"

	"github.com/HimanshiWW/Doudou/models"

	"github.com/gofiber/fiber/v2"
)

// HandleRoot is the liveness/info endpoint.
func HandleRoot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(models.MessageResponse{Message: "Doudou API - Breastfeeding Location Finder"})
	}
}

// HandleCreateLocation registers a new nursing-friendly location. Verified
// flag, rating aggregate and creation time are stamped here; the caller
// cannot set them.
func HandleCreateLocation(store LocationStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.LocationCreate
		if err := c.BodyParser(&p); err != nil {
			return detail(c, fiber.StatusBadRequest, "Invalid request body")
		}

		loc := models.Location{
			Name:             p.Name,
			Address:          p.Address,
			Latitude:         p.Latitude,
			Longitude:        p.Longitude,
			LocationType:     p.LocationType,
			PrivacyLevel:     p.PrivacyLevel,
			RequiresPurchase: p.RequiresPurchase,
			Description:      p.Description,
			Amenities:        p.Amenities,
			Photos:           p.Photos,
			OwnerID:          p.OwnerID,
			Verified:         false,
			AverageRating:    0.0,
			TotalReviews:     0,
			CreatedAt:        time.Now().UTC(),
		}
		if err := store.Insert(c.Context(), &loc); err != nil {
			return serverErr(c, err)
		}
		return c.JSON(loc.Response())
	}
}

// HandleListLocations lists locations matching the query filters. The lat,
// lng and radius_km parameters are accepted but not applied; results are
// never distance-filtered.
func HandleListLocations(store LocationStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := models.LocationFilter{
			LocationType: c.Query("location_type"),
			PrivacyLevel: c.Query("privacy_level"),
			FreeOnly:     c.QueryBool("free_only", false),
			VerifiedOnly: c.QueryBool("verified_only", false),
		}

		locations, err := store.List(c.Context(), filter)
		if err != nil {
			return serverErr(c, err)
		}

		out := make([]models.LocationResponse, 0, len(locations))
		for i := range locations {
			out = append(out, locations[i].Response())
		}
		return c.JSON(out)
	}
}

func HandleGetLocation(store LocationStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		loc, err := store.Get(c.Context(), c.Params("id"))
		if err != nil {
			return storeErr(c, err, "Invalid location ID", "Location not found")
		}
		return c.JSON(loc.Response())
	}
}

// HandleDeleteLocation removes a location. Reviews and saved pairs that
// reference it are left behind.
func HandleDeleteLocation(store LocationStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.Delete(c.Context(), c.Params("id")); err != nil {
			return storeErr(c, err, "Invalid location ID", "Location not found")
		}
		return c.JSON(models.MessageResponse{Message: "Location deleted successfully"})
	}
}
