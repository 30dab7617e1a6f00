// path: database/seed.go
package database

import (
	"context"
	"time"

	"github.com/HimanshiWW/Doudou/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Seeder wipes every collection and loads the fixed demo data set. Strictly
// a development/demo bootstrap: destructive and irreversible.
type Seeder struct {
	locations *mongo.Collection
	reviews   *mongo.Collection
	saved     *mongo.Collection
}

func NewSeeder(db *DB) *Seeder {
	return &Seeder{
		locations: db.Collection("locations"),
		reviews:   db.Collection("reviews"),
		saved:     db.Collection("saved_locations"),
	}
}

// Reset deletes all records in all three collections, then inserts the
// sample locations and two sample reviews attached to the first of them.
// The samples carry pre-set verified/rating/count values, bypassing the
// normal create-time defaulting and rating derivation. Returns the number
// of seeded locations.
func (s *Seeder) Reset(ctx context.Context) (int, error) {
	for _, col := range []*mongo.Collection{s.locations, s.reviews, s.saved} {
		if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
			return 0, err
		}
	}

	locations := sampleLocations(time.Now().UTC())
	docs := make([]interface{}, len(locations))
	for i := range locations {
		docs[i] = locations[i]
	}
	res, err := s.locations.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}

	firstID := res.InsertedIDs[0].(primitive.ObjectID).Hex()
	reviews := sampleReviews(firstID, time.Now().UTC())
	revDocs := make([]interface{}, len(reviews))
	for i := range reviews {
		revDocs[i] = reviews[i]
	}
	if _, err := s.reviews.InsertMany(ctx, revDocs); err != nil {
		return 0, err
	}

	return len(locations), nil
}

func sampleLocations(now time.Time) []models.Location {
	return []models.Location{
		{
			Name:             "Le Petit Jardin Café",
			Address:          "123 Rue de la Paix, Paris 75001",
			Latitude:         48.8566,
			Longitude:        2.3522,
			LocationType:     "cafe",
			PrivacyLevel:     "semi-private",
			RequiresPurchase: true,
			Description:      "Cozy café with a private nursing corner and changing facilities.",
			Amenities:        []string{"changing_table", "high_chairs", "quiet_area", "wifi"},
			Photos:           []string{},
			Verified:         true,
			AverageRating:    4.5,
			TotalReviews:     128,
			CreatedAt:        now,
		},
		{
			Name:             "Family Park Gardens",
			Address:          "45 Avenue des Enfants, Paris 75008",
			Latitude:         48.8606,
			Longitude:        2.3376,
			LocationType:     "park",
			PrivacyLevel:     "public",
			RequiresPurchase: false,
			Description:      "Beautiful park with shaded seating areas perfect for nursing.",
			Amenities:        []string{"benches", "shade", "playground", "restrooms"},
			Photos:           []string{},
			Verified:         true,
			AverageRating:    4.2,
			TotalReviews:     85,
			CreatedAt:        now,
		},
		{
			Name:             "Mama's Kitchen Restaurant",
			Address:          "78 Rue Saint-Honoré, Paris 75001",
			Latitude:         48.8636,
			Longitude:        2.3311,
			LocationType:     "restaurant",
			PrivacyLevel:     "private",
			RequiresPurchase: true,
			Description:      "Family-friendly restaurant with private nursing rooms.",
			Amenities:        []string{"private_room", "changing_table", "high_chairs", "kids_menu"},
			Photos:           []string{},
			Verified:         true,
			AverageRating:    4.8,
			TotalReviews:     256,
			CreatedAt:        now,
		},
		{
			Name:             "City Library - Nursing Room",
			Address:          "15 Place de la République, Paris 75011",
			Latitude:         48.8674,
			Longitude:        2.3646,
			LocationType:     "library",
			PrivacyLevel:     "private",
			RequiresPurchase: false,
			Description:      "Quiet library with dedicated nursing room and baby corner.",
			Amenities:        []string{"private_room", "comfortable_seating", "air_conditioning", "wifi"},
			Photos:           []string{},
			Verified:         true,
			AverageRating:    4.6,
			TotalReviews:     92,
			CreatedAt:        now,
		},
		{
			Name:             "Baby Café Lounge",
			Address:          "200 Boulevard Haussmann, Paris 75009",
			Latitude:         48.8738,
			Longitude:        2.3285,
			LocationType:     "cafe",
			PrivacyLevel:     "semi-private",
			RequiresPurchase: true,
			Description:      "Café designed for new moms with play area and nursing booths.",
			Amenities:        []string{"nursing_booths", "play_area", "changing_table", "stroller_parking"},
			Photos:           []string{},
			Verified:         true,
			AverageRating:    4.7,
			TotalReviews:     180,
			CreatedAt:        now,
		},
	}
}

func sampleReviews(locationID string, now time.Time) []models.Review {
	return []models.Review{
		{
			LocationID:    locationID,
			StaffRating:   5,
			ComfortRating: 4,
			PrivacyRating: 4,
			SafetyRating:  5,
			OverallRating: 4.5,
			WouldReturn:   true,
			Comment:       "The back corner is perfect for breastfeeding! Staff were so patient when my little one had a meltdown.",
			Issues:        []string{},
			Photos:        []string{},
			Anonymous:     false,
			ReviewerName:  "Sarah M.",
			HelpfulCount:  24,
			CreatedAt:     now,
		},
		{
			LocationID:    locationID,
			StaffRating:   4,
			ComfortRating: 4,
			PrivacyRating: 3,
			SafetyRating:  4,
			OverallRating: 3.75,
			WouldReturn:   true,
			Comment:       "Decent space, though it gets quite loud during the morning rush.",
			Issues:        []string{},
			Photos:        []string{},
			Anonymous:     false,
			ReviewerName:  "Jessica W.",
			HelpfulCount:  8,
			CreatedAt:     now,
		},
	}
}
