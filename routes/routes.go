// path: routes/routes.go
package routes

import (
	"github.com/HimanshiWW/Doudou/controllers"

	"github.com/gofiber/fiber/v2"
)

// Register attaches all API endpoints to the app.
func Register(app *fiber.App,
	locations controllers.LocationStore,
	reviews controllers.ReviewStore,
	saved controllers.SavedStore,
	seeder controllers.Seeder,
) {
	api := app.Group("/api")

	api.Get("/", controllers.HandleRoot())

	api.Post("/locations", controllers.HandleCreateLocation(locations))
	api.Get("/locations", controllers.HandleListLocations(locations))
	api.Get("/locations/:id", controllers.HandleGetLocation(locations))
	api.Delete("/locations/:id", controllers.HandleDeleteLocation(locations))

	api.Post("/reviews", controllers.HandleCreateReview(reviews, locations))
	api.Get("/reviews/:location_id", controllers.HandleListReviews(reviews))
	api.Post("/reviews/:id/helpful", controllers.HandleMarkHelpful(reviews))

	api.Post("/saved", controllers.HandleSaveLocation(saved))
	api.Get("/saved", controllers.HandleListSaved(saved, locations))
	api.Get("/saved/check/:location_id", controllers.HandleCheckSaved(saved))
	api.Delete("/saved/:location_id", controllers.HandleUnsaveLocation(saved))

	api.Post("/seed", controllers.HandleSeed(seeder))
}
