// path: database/saved.go
package database

import (
	"context"
	"time"

	"github.com/HimanshiWW/Doudou/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SavedRepo owns the saved_locations collection: the many-to-many relation
// between users and bookmarked locations.
type SavedRepo struct {
	col *mongo.Collection
}

func NewSavedRepo(db *DB) *SavedRepo {
	return &SavedRepo{col: db.Collection("saved_locations")}
}

func pairFilter(userID, locationID string) bson.M {
	return bson.M{"user_id": userID, "location_id": locationID}
}

// Save records the bookmark. Re-saving an existing pair is a no-op; the
// returned flag reports whether the pair was already present. The location
// id is not checked against the locations collection.
func (r *SavedRepo) Save(ctx context.Context, userID, locationID string) (bool, error) {
	err := r.col.FindOne(ctx, pairFilter(userID, locationID)).Err()
	if err == nil {
		return true, nil
	}
	if err != mongo.ErrNoDocuments {
		return false, err
	}

	_, err = r.col.InsertOne(ctx, models.SavedLocation{
		UserID:     userID,
		LocationID: locationID,
		SavedAt:    time.Now().UTC(),
	})
	return false, err
}

// Unsave deletes the pair if it exists. An absent pair is not an error.
func (r *SavedRepo) Unsave(ctx context.Context, userID, locationID string) error {
	_, err := r.col.DeleteOne(ctx, pairFilter(userID, locationID))
	return err
}

// IsSaved reports whether the pair exists.
func (r *SavedRepo) IsSaved(ctx context.Context, userID, locationID string) (bool, error) {
	err := r.col.FindOne(ctx, pairFilter(userID, locationID)).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}

// ListForUser returns up to 100 saved pairs. Resolving each pair to its
// location happens at the handler so unresolvable references can be skipped.
func (r *SavedRepo) ListForUser(ctx context.Context, userID string) ([]models.SavedLocation, error) {
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, options.Find().SetLimit(maxListResults))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	saved := []models.SavedLocation{}
	if err := cur.All(ctx, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}
