// path: models/saved_location.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedLocation is one user's bookmark of a location. The (user_id,
// location_id) pair is the identity; the ObjectID is never exposed.
// The referenced location is not checked at save time and may be deleted
// later, leaving a dangling pair.
type SavedLocation struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	LocationID string             `bson:"location_id"`
	SavedAt    time.Time          `bson:"saved_at"`
}

// SavedLocationCreate is the JSON body for POST /api/saved.
type SavedLocationCreate struct {
	LocationID string `json:"location_id"`
	UserID     string `json:"user_id"`
}
