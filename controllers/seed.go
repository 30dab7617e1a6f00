// path: controllers/seed.go
package controllers

import (
	"github.com/HimanshiWW/Doudou/models"

	"github.com/gofiber/fiber/v2"
)

// HandleSeed wipes the database and loads the demo data set.
func HandleSeed(seeder Seeder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := seeder.Reset(c.Context())
		if err != nil {
			return serverErr(c, err)
		}
		return c.JSON(models.SeedResponse{
			Message:        "Database seeded with sample data",
			LocationsCount: count,
		})
	}
}
