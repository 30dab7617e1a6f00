// path: models/responses.go
package models

import "time"

// LocationResponse is the wire shape of a location.
type LocationResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	LocationType     string    `json:"location_type"`
	PrivacyLevel     string    `json:"privacy_level"`
	RequiresPurchase bool      `json:"requires_purchase"`
	Description      string    `json:"description"`
	Amenities        []string  `json:"amenities"`
	Photos           []string  `json:"photos"`
	OwnerID          string    `json:"owner_id"`
	AverageRating    float64   `json:"average_rating"`
	TotalReviews     int       `json:"total_reviews"`
	CreatedAt        time.Time `json:"created_at"`
	Verified         bool      `json:"verified"`
}

// ReviewResponse is the wire shape of a review.
type ReviewResponse struct {
	ID            string    `json:"id"`
	LocationID    string    `json:"location_id"`
	StaffRating   int       `json:"staff_rating"`
	ComfortRating int       `json:"comfort_rating"`
	PrivacyRating int       `json:"privacy_rating"`
	SafetyRating  int       `json:"safety_rating"`
	OverallRating float64   `json:"overall_rating"`
	WouldReturn   bool      `json:"would_return"`
	Comment       string    `json:"comment"`
	Issues        []string  `json:"issues"`
	Photos        []string  `json:"photos"`
	Anonymous     bool      `json:"anonymous"`
	ReviewerName  string    `json:"reviewer_name"`
	HelpfulCount  int       `json:"helpful_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// MessageResponse is the generic {message} success body.
type MessageResponse struct {
	Message string `json:"message"`
}

// SavedResponse reports the outcome of a save/unsave call.
type SavedResponse struct {
	Message string `json:"message"`
	Saved   bool   `json:"saved"`
}

// SavedCheckResponse is the body of GET /api/saved/check/{location_id}.
type SavedCheckResponse struct {
	Saved bool `json:"saved"`
}

// SeedResponse is the body of POST /api/seed.
type SeedResponse struct {
	Message        string `json:"message"`
	LocationsCount int    `json:"locations_count"`
}

// ErrorResponse is the body of every 4xx/5xx reply.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
