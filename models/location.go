// path: models/location.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location is a catalogued breastfeeding-friendly place.
type Location struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	Address          string             `bson:"address"`
	Latitude         float64            `bson:"latitude"`
	Longitude        float64            `bson:"longitude"`
	LocationType     string             `bson:"location_type"` // cafe, restaurant, park, library, ...
	PrivacyLevel     string             `bson:"privacy_level"` // private, semi-private, public
	RequiresPurchase bool               `bson:"requires_purchase"`
	Description      string             `bson:"description,omitempty"`
	Amenities        []string           `bson:"amenities"` // changing_table, high_chairs, quiet_area, ...
	Photos           []string           `bson:"photos"`    // base64 encoded images
	OwnerID          string             `bson:"owner_id,omitempty"`
	Verified         bool               `bson:"verified"`
	AverageRating    float64            `bson:"average_rating"`
	TotalReviews     int                `bson:"total_reviews"`
	CreatedAt        time.Time          `bson:"created_at"`
}

// LocationCreate is the JSON body for POST /api/locations.
type LocationCreate struct {
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	LocationType     string   `json:"location_type"`
	PrivacyLevel     string   `json:"privacy_level"`
	RequiresPurchase bool     `json:"requires_purchase"`
	Description      string   `json:"description"`
	Amenities        []string `json:"amenities"`
	Photos           []string `json:"photos"`
	OwnerID          string   `json:"owner_id"`
}

// LocationFilter holds the query filters for GET /api/locations.
// Latitude/longitude/radius are accepted by the endpoint but are not part
// of the filter; distance filtering has never been implemented.
type LocationFilter struct {
	LocationType string
	PrivacyLevel string
	FreeOnly     bool
	VerifiedOnly bool
}

// Response converts the document to its wire shape.
func (l *Location) Response() LocationResponse {
	return LocationResponse{
		ID:               l.ID.Hex(),
		Name:             l.Name,
		Address:          l.Address,
		Latitude:         l.Latitude,
		Longitude:        l.Longitude,
		LocationType:     l.LocationType,
		PrivacyLevel:     l.PrivacyLevel,
		RequiresPurchase: l.RequiresPurchase,
		Description:      l.Description,
		Amenities:        orEmpty(l.Amenities),
		Photos:           orEmpty(l.Photos),
		OwnerID:          l.OwnerID,
		AverageRating:    l.AverageRating,
		TotalReviews:     l.TotalReviews,
		CreatedAt:        l.CreatedAt,
		Verified:         l.Verified,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
