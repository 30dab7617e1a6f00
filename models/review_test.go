// path: models/review_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverallRating(t *testing.T) {
	cases := []struct {
		staff, comfort, privacy, safety int
		want                            float64
	}{
		{5, 4, 5, 4, 4.5},
		{5, 5, 5, 5, 5.0},
		{1, 1, 1, 1, 1.0},
		{3, 4, 4, 5, 4.0},
		{4, 4, 3, 4, 3.8}, // 3.75 rounds up to the even digit
		{4, 4, 4, 5, 4.2}, // 4.25 rounds down to the even digit
	}
	for _, tc := range cases {
		got := OverallRating(tc.staff, tc.comfort, tc.privacy, tc.safety)
		assert.InDelta(t, tc.want, got, 1e-9,
			"(%d,%d,%d,%d)", tc.staff, tc.comfort, tc.privacy, tc.safety)
	}
}

func TestRound1(t *testing.T) {
	assert.InDelta(t, 4.3, Round1(4.26), 1e-9)
	assert.InDelta(t, 4.2, Round1(4.24), 1e-9)
	assert.InDelta(t, 4.1, Round1(4.125000001), 1e-9)
	assert.InDelta(t, 0.0, Round1(0.0), 1e-9)
}

func TestReviewResponseCoalescesNilSlices(t *testing.T) {
	r := Review{}
	resp := r.Response()
	assert.NotNil(t, resp.Issues)
	assert.NotNil(t, resp.Photos)
	assert.Empty(t, resp.Issues)
}
