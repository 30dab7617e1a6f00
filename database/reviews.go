// path: database/reviews.go
package database

import (
	"context"

	"github.com/HimanshiWW/Doudou/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewRepo owns the reviews collection. It also holds a handle to the
// locations collection so the rating aggregate can be written back after
// each review insert.
type ReviewRepo struct {
	reviews   *mongo.Collection
	locations *mongo.Collection
}

func NewReviewRepo(db *DB) *ReviewRepo {
	return &ReviewRepo{
		reviews:   db.Collection("reviews"),
		locations: db.Collection("locations"),
	}
}

// Insert persists the review and stamps its generated id onto the struct.
func (r *ReviewRepo) Insert(ctx context.Context, rev *models.Review) error {
	res, err := r.reviews.InsertOne(ctx, rev)
	if err != nil {
		return err
	}
	rev.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// listReviewsOptions returns the find options for a location's reviews:
// newest first, capped at 100. This is the one list with an explicit
// ordering guarantee.
func listReviewsOptions() *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(maxListResults)
}

// ListByLocation returns up to 100 reviews for the location, newest first.
// The id is matched as a plain string field, so an unknown or malformed id
// yields an empty list rather than an error.
func (r *ReviewRepo) ListByLocation(ctx context.Context, locationID string) ([]models.Review, error) {
	cur, err := r.reviews.Find(ctx, bson.M{"location_id": locationID}, listReviewsOptions())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reviews := []models.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// MarkHelpful atomically bumps the helpful counter. Any caller may bump any
// review any number of times.
func (r *ReviewRepo) MarkHelpful(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.reviews.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"helpful_count": 1}})
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RecalculateRating re-reads every review for the location (up to 1000) and
// writes the new average and count onto the location record. When the
// re-read comes back empty the location is left untouched. The read and the
// write are not transactional; concurrent reviews race last-write-wins.
func (r *ReviewRepo) RecalculateRating(ctx context.Context, locationID string) error {
	oid, err := objectID(locationID)
	if err != nil {
		return err
	}

	cur, err := r.reviews.Find(ctx, bson.M{"location_id": locationID},
		options.Find().SetLimit(maxRatingReviews))
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	var all []models.Review
	if err := cur.All(ctx, &all); err != nil {
		return err
	}

	avg, count := averageRating(all)
	if count == 0 {
		return nil
	}

	_, err = r.locations.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"average_rating": avg,
		"total_reviews":  count,
	}})
	return err
}

// averageRating computes the rating aggregate written onto a location: the
// mean of the reviews' overall ratings rounded to one decimal, and the
// review count. An empty slice yields (0, 0) and no aggregate update.
func averageRating(reviews []models.Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	var sum float64
	for _, rev := range reviews {
		sum += rev.OverallRating
	}
	return models.Round1(sum / float64(len(reviews))), len(reviews)
}
