// path: database/reviews_test.go
package database

import (
	"testing"

	"github.com/HimanshiWW/Doudou/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAverageRating(t *testing.T) {
	cases := []struct {
		name      string
		ratings   []float64
		wantAvg   float64
		wantCount int
	}{
		{"single review", []float64{4.5}, 4.5, 1},
		{"mean is rounded to one decimal", []float64{4.5, 3.75, 5.0}, 4.4, 3}, // 13.25/3 = 4.4166...
		{"ties round to even", []float64{4.0, 3.5}, 3.8, 2},                   // mean 3.75
		{"all equal", []float64{2.0, 2.0, 2.0, 2.0}, 2.0, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reviews := make([]models.Review, len(tc.ratings))
			for i, r := range tc.ratings {
				reviews[i] = models.Review{OverallRating: r}
			}
			avg, count := averageRating(reviews)
			assert.InDelta(t, tc.wantAvg, avg, 1e-9)
			assert.Equal(t, tc.wantCount, count)
		})
	}
}

func TestAverageRatingEmptyLeavesAggregateAlone(t *testing.T) {
	avg, count := averageRating(nil)
	assert.Zero(t, avg)
	assert.Zero(t, count)

	avg, count = averageRating([]models.Review{})
	assert.Zero(t, avg)
	assert.Zero(t, count)
}

func TestListReviewsOptionsNewestFirst(t *testing.T) {
	opts := listReviewsOptions()

	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, opts.Sort)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(100), *opts.Limit)
}
