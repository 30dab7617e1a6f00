// path: controllers/controllers_test.go
package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HimanshiWW/Doudou/models"
	"github.com/HimanshiWW/Doudou/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type mockLocationStore struct {
	insertFn func(ctx context.Context, loc *models.Location) error
	listFn   func(ctx context.Context, f models.LocationFilter) ([]models.Location, error)
	getFn    func(ctx context.Context, id string) (*models.Location, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockLocationStore) Insert(ctx context.Context, loc *models.Location) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, loc)
	}
	return nil
}

func (m *mockLocationStore) List(ctx context.Context, f models.LocationFilter) ([]models.Location, error) {
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return []models.Location{}, nil
}

func (m *mockLocationStore) Get(ctx context.Context, id string) (*models.Location, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &models.Location{}, nil
}

func (m *mockLocationStore) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockReviewStore struct {
	insertFn         func(ctx context.Context, rev *models.Review) error
	listByLocationFn func(ctx context.Context, locationID string) ([]models.Review, error)
	markHelpfulFn    func(ctx context.Context, id string) error
	recalculateFn    func(ctx context.Context, locationID string) error
}

func (m *mockReviewStore) Insert(ctx context.Context, rev *models.Review) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, rev)
	}
	return nil
}

func (m *mockReviewStore) ListByLocation(ctx context.Context, locationID string) ([]models.Review, error) {
	if m.listByLocationFn != nil {
		return m.listByLocationFn(ctx, locationID)
	}
	return []models.Review{}, nil
}

func (m *mockReviewStore) MarkHelpful(ctx context.Context, id string) error {
	if m.markHelpfulFn != nil {
		return m.markHelpfulFn(ctx, id)
	}
	return nil
}

func (m *mockReviewStore) RecalculateRating(ctx context.Context, locationID string) error {
	if m.recalculateFn != nil {
		return m.recalculateFn(ctx, locationID)
	}
	return nil
}

type mockSavedStore struct {
	saveFn        func(ctx context.Context, userID, locationID string) (bool, error)
	unsaveFn      func(ctx context.Context, userID, locationID string) error
	isSavedFn     func(ctx context.Context, userID, locationID string) (bool, error)
	listForUserFn func(ctx context.Context, userID string) ([]models.SavedLocation, error)
}

func (m *mockSavedStore) Save(ctx context.Context, userID, locationID string) (bool, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, userID, locationID)
	}
	return false, nil
}

func (m *mockSavedStore) Unsave(ctx context.Context, userID, locationID string) error {
	if m.unsaveFn != nil {
		return m.unsaveFn(ctx, userID, locationID)
	}
	return nil
}

func (m *mockSavedStore) IsSaved(ctx context.Context, userID, locationID string) (bool, error) {
	if m.isSavedFn != nil {
		return m.isSavedFn(ctx, userID, locationID)
	}
	return false, nil
}

func (m *mockSavedStore) ListForUser(ctx context.Context, userID string) ([]models.SavedLocation, error) {
	if m.listForUserFn != nil {
		return m.listForUserFn(ctx, userID)
	}
	return []models.SavedLocation{}, nil
}

type mockSeeder struct {
	resetFn func(ctx context.Context) (int, error)
}

func (m *mockSeeder) Reset(ctx context.Context) (int, error) {
	if m.resetFn != nil {
		return m.resetFn(ctx)
	}
	return 0, nil
}

type deps struct {
	locations *mockLocationStore
	reviews   *mockReviewStore
	saved     *mockSavedStore
	seeder    *mockSeeder
}

func newApp(d deps) *fiber.App {
	if d.locations == nil {
		d.locations = &mockLocationStore{}
	}
	if d.reviews == nil {
		d.reviews = &mockReviewStore{}
	}
	if d.saved == nil {
		d.saved = &mockSavedStore{}
	}
	if d.seeder == nil {
		d.seeder = &mockSeeder{}
	}
	app := fiber.New()
	routes.Register(app, d.locations, d.reviews, d.saved, d.seeder)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func decodeJSON[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}
