// path: controllers/reviews.go
package controllers

import (
	"time"

	"github.com/HimanshiWW/Doudou/models"

	"github.com/gofiber/fiber/v2"
)

// HandleCreateReview creates a review for an existing location, then
// synchronously recomputes that location's rating aggregate. Insert and
// recompute are two separate writes; a failure in between leaves the
// aggregate stale until the next review lands.
func HandleCreateReview(reviews ReviewStore, locations LocationStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.ReviewCreate
		if err := c.BodyParser(&p); err != nil {
			return detail(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if _, err := locations.Get(c.Context(), p.LocationID); err != nil {
			return storeErr(c, err, "Invalid location ID", "Location not found")
		}

		rev := models.Review{
			LocationID:    p.LocationID,
			StaffRating:   p.StaffRating,
			ComfortRating: p.ComfortRating,
			PrivacyRating: p.PrivacyRating,
			SafetyRating:  p.SafetyRating,
			OverallRating: models.OverallRating(p.StaffRating, p.ComfortRating, p.PrivacyRating, p.SafetyRating),
			WouldReturn:   p.WouldReturn,
			Comment:       p.Comment,
			Issues:        p.Issues,
			Photos:        p.Photos,
			Anonymous:     p.Anonymous,
			ReviewerName:  p.ReviewerName,
			HelpfulCount:  0,
			CreatedAt:     time.Now().UTC(),
		}
		if err := reviews.Insert(c.Context(), &rev); err != nil {
			return serverErr(c, err)
		}

		if err := reviews.RecalculateRating(c.Context(), p.LocationID); err != nil {
			return serverErr(c, err)
		}

		return c.JSON(rev.Response())
	}
}

// HandleListReviews lists a location's reviews, newest first. The location
// id is not validated or resolved; an unknown id simply yields [].
func HandleListReviews(reviews ReviewStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := reviews.ListByLocation(c.Context(), c.Params("location_id"))
		if err != nil {
			return serverErr(c, err)
		}

		out := make([]models.ReviewResponse, 0, len(list))
		for i := range list {
			out = append(out, list[i].Response())
		}
		return c.JSON(out)
	}
}

func HandleMarkHelpful(reviews ReviewStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := reviews.MarkHelpful(c.Context(), c.Params("id")); err != nil {
			return storeErr(c, err, "Invalid review ID", "Review not found")
		}
		return c.JSON(models.MessageResponse{Message: "Review marked as helpful"})
	}
}
