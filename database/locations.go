// path: database/locations.go
package database

import (
	"context"

	"github.com/HimanshiWW/Doudou/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LocationRepo owns the locations collection.
type LocationRepo struct {
	col *mongo.Collection
}

func NewLocationRepo(db *DB) *LocationRepo {
	return &LocationRepo{col: db.Collection("locations")}
}

// objectID parses a caller-supplied hex id, classifying malformed input as
// ErrInvalidID so handlers can tell it apart from an absent record.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// Insert persists the location and stamps its generated id onto the struct.
func (r *LocationRepo) Insert(ctx context.Context, loc *models.Location) error {
	res, err := r.col.InsertOne(ctx, loc)
	if err != nil {
		return err
	}
	loc.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// locationFilter builds the mongo query for a filtered list. Unset fields
// add no clause.
func locationFilter(f models.LocationFilter) bson.M {
	filter := bson.M{}
	if f.LocationType != "" {
		filter["location_type"] = f.LocationType
	}
	if f.PrivacyLevel != "" {
		filter["privacy_level"] = f.PrivacyLevel
	}
	if f.FreeOnly {
		filter["requires_purchase"] = false
	}
	if f.VerifiedOnly {
		filter["verified"] = true
	}
	return filter
}

// List returns up to 100 matching locations in store-native order.
func (r *LocationRepo) List(ctx context.Context, f models.LocationFilter) ([]models.Location, error) {
	cur, err := r.col.Find(ctx, locationFilter(f), options.Find().SetLimit(maxListResults))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	locations := []models.Location{}
	if err := cur.All(ctx, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *LocationRepo) Get(ctx context.Context, id string) (*models.Location, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var loc models.Location
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&loc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &loc, nil
}

// Delete removes the location. Dependent reviews and saved pairs are left
// in place; nothing cascades.
func (r *LocationRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
