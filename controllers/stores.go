// path: controllers/stores.go
package controllers

import (
	"context"

	"github.com/HimanshiWW/Doudou/models"
)

// Store interfaces consumed by the handlers. The mongo-backed
// implementations live in the database package; tests substitute mocks.

type LocationStore interface {
	Insert(ctx context.Context, loc *models.Location) error
	List(ctx context.Context, f models.LocationFilter) ([]models.Location, error)
	Get(ctx context.Context, id string) (*models.Location, error)
	Delete(ctx context.Context, id string) error
}

type ReviewStore interface {
	Insert(ctx context.Context, rev *models.Review) error
	ListByLocation(ctx context.Context, locationID string) ([]models.Review, error)
	MarkHelpful(ctx context.Context, id string) error
	RecalculateRating(ctx context.Context, locationID string) error
}

type SavedStore interface {
	// Save reports whether the pair already existed.
	Save(ctx context.Context, userID, locationID string) (bool, error)
	Unsave(ctx context.Context, userID, locationID string) error
	IsSaved(ctx context.Context, userID, locationID string) (bool, error)
	ListForUser(ctx context.Context, userID string) ([]models.SavedLocation, error)
}

type Seeder interface {
	// Reset wipes all collections, loads the demo data and returns the
	// number of seeded locations.
	Reset(ctx context.Context) (int, error)
}
