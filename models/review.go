// path: models/review.go
package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a structured rating attached to one location. Reviews are
// immutable after creation except for the helpful counter.
type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	LocationID    string             `bson:"location_id"`
	StaffRating   int                `bson:"staff_rating"`   // 1-5
	ComfortRating int                `bson:"comfort_rating"` // 1-5
	PrivacyRating int                `bson:"privacy_rating"` // 1-5
	SafetyRating  int                `bson:"safety_rating"`  // 1-5
	OverallRating float64            `bson:"overall_rating"`
	WouldReturn   bool               `bson:"would_return"`
	Comment       string             `bson:"comment,omitempty"`
	Issues        []string           `bson:"issues"` // red flags
	Photos        []string           `bson:"photos"` // base64 encoded images
	Anonymous     bool               `bson:"anonymous"`
	ReviewerName  string             `bson:"reviewer_name,omitempty"`
	HelpfulCount  int                `bson:"helpful_count"`
	CreatedAt     time.Time          `bson:"created_at"`
}

// ReviewCreate is the JSON body for POST /api/reviews.
type ReviewCreate struct {
	LocationID    string   `json:"location_id"`
	StaffRating   int      `json:"staff_rating"`
	ComfortRating int      `json:"comfort_rating"`
	PrivacyRating int      `json:"privacy_rating"`
	SafetyRating  int      `json:"safety_rating"`
	WouldReturn   bool     `json:"would_return"`
	Comment       string   `json:"comment"`
	Issues        []string `json:"issues"`
	Photos        []string `json:"photos"`
	Anonymous     bool     `json:"anonymous"`
	ReviewerName  string   `json:"reviewer_name"`
}

// OverallRating derives the single-number summary of the four sub-ratings.
func OverallRating(staff, comfort, privacy, safety int) float64 {
	return Round1(float64(staff+comfort+privacy+safety) / 4.0)
}

// Round1 rounds to one decimal place, ties to even.
func Round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}

// Response converts the document to its wire shape.
func (r *Review) Response() ReviewResponse {
	return ReviewResponse{
		ID:            r.ID.Hex(),
		LocationID:    r.LocationID,
		StaffRating:   r.StaffRating,
		ComfortRating: r.ComfortRating,
		PrivacyRating: r.PrivacyRating,
		SafetyRating:  r.SafetyRating,
		OverallRating: r.OverallRating,
		WouldReturn:   r.WouldReturn,
		Comment:       r.Comment,
		Issues:        orEmpty(r.Issues),
		Photos:        orEmpty(r.Photos),
		Anonymous:     r.Anonymous,
		ReviewerName:  r.ReviewerName,
		HelpfulCount:  r.HelpfulCount,
		CreatedAt:     r.CreatedAt,
	}
}
