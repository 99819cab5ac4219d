package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wanderai/internal/models/db_models"
	"wanderai/internal/models/request_models"
	"wanderai/pkg/utils"
)

type fakeItineraryRepo struct {
	docs    []db_models.Itinerary
	inserts int
}

func (f *fakeItineraryRepo) Insert(_ context.Context, itinerary *db_models.Itinerary) (primitive.ObjectID, error) {
	f.inserts++
	itinerary.ID = primitive.NewObjectID()
	f.docs = append(f.docs, *itinerary)
	return itinerary.ID, nil
}

func (f *fakeItineraryRepo) ListByUser(_ context.Context, userID primitive.ObjectID) ([]db_models.Itinerary, error) {
	var out []db_models.Itinerary
	for _, doc := range f.docs {
		if doc.UserID == userID {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeItineraryRepo) FindByIDAndUser(_ context.Context, id, userID primitive.ObjectID) (*db_models.Itinerary, error) {
	for _, doc := range f.docs {
		if doc.ID == id && doc.UserID == userID {
			found := doc
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeItineraryRepo) DeleteByIDAndUser(_ context.Context, id, userID primitive.ObjectID) (bool, error) {
	for i, doc := range f.docs {
		if doc.ID == id && doc.UserID == userID {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type staticGenerator struct {
	text string
}

func (g *staticGenerator) GenerateItinerary(_ context.Context, _ string, _ int, _ string) GenerationResult {
	return GenerationResult{Text: g.text}
}

func newTestService() (*fakeItineraryRepo, ItineraryServiceInterface) {
	repo := &fakeItineraryRepo{}
	gen := &staticGenerator{text: "DAY 1: Arrival\nMorning: Visit Eiffel Tower\nEvening: Dinner at Le Jules Verne"}
	return repo, NewItineraryService(repo, gen)
}

func TestCreateItinerary_Valid(t *testing.T) {
	repo, svc := newTestService()
	owner := primitive.NewObjectID().Hex()

	resp, err := svc.CreateItinerary(context.Background(), owner, request_models.GenerateItineraryRequest{
		Destination: "  Paris  ",
		Days:        3,
		Budget:      "Mid-range",
	})
	require.NoError(t, err)

	assert.Equal(t, "Paris", resp.Destination)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, "Mid-range", resp.Budget)
	assert.NotEmpty(t, resp.Itinerary)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Paris", resp.MapsLink)
	assert.Equal(t, 1, repo.inserts)
}

func TestCreateItinerary_InvalidRequestsWriteNothing(t *testing.T) {
	tests := []struct {
		name string
		req  request_models.GenerateItineraryRequest
	}{
		{"missing destination", request_models.GenerateItineraryRequest{Days: 3, Budget: "Budget"}},
		{"blank destination", request_models.GenerateItineraryRequest{Destination: "   ", Days: 3, Budget: "Budget"}},
		{"zero days", request_models.GenerateItineraryRequest{Destination: "Paris", Budget: "Budget"}},
		{"too many days", request_models.GenerateItineraryRequest{Destination: "Paris", Days: 31, Budget: "Budget"}},
		{"missing budget", request_models.GenerateItineraryRequest{Destination: "Paris", Days: 3}},
		{"unknown budget", request_models.GenerateItineraryRequest{Destination: "Paris", Days: 3, Budget: "Cheap"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newTestService()
			owner := primitive.NewObjectID().Hex()

			_, err := svc.CreateItinerary(context.Background(), owner, tt.req)
			assert.ErrorIs(t, err, utils.ErrValidation)
			assert.Equal(t, 0, repo.inserts)
		})
	}
}

func TestListItineraries_NewestFirst(t *testing.T) {
	repo, svc := newTestService()
	owner := primitive.NewObjectID()

	older := db_models.Itinerary{
		ID: primitive.NewObjectID(), UserID: owner, Destination: "Rome",
		Days: 3, Budget: "Budget", Itinerary: "text", CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := db_models.Itinerary{
		ID: primitive.NewObjectID(), UserID: owner, Destination: "Oslo",
		Days: 2, Budget: "Luxury", Itinerary: "text", CreatedAt: time.Now(),
	}
	repo.docs = append(repo.docs, older, newer)

	out, err := svc.ListItineraries(context.Background(), owner.Hex())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Oslo", out[0].Destination)
	assert.Equal(t, "Rome", out[1].Destination)
}

func TestGetItinerary_OwnershipMismatchLooksLikeMissing(t *testing.T) {
	repo, svc := newTestService()
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	doc := db_models.Itinerary{
		ID: primitive.NewObjectID(), UserID: owner, Destination: "Rome",
		Days: 3, Budget: "Budget", Itinerary: "text", CreatedAt: time.Now(),
	}
	repo.docs = append(repo.docs, doc)

	_, errStranger := svc.GetItinerary(context.Background(), stranger.Hex(), doc.ID.Hex())
	_, errMissing := svc.GetItinerary(context.Background(), owner.Hex(), primitive.NewObjectID().Hex())
	_, errBadID := svc.GetItinerary(context.Background(), owner.Hex(), "not-an-id")

	assert.ErrorIs(t, errStranger, utils.ErrItineraryNotFound)
	assert.ErrorIs(t, errMissing, utils.ErrItineraryNotFound)
	assert.ErrorIs(t, errBadID, utils.ErrItineraryNotFound)

	got, err := svc.GetItinerary(context.Background(), owner.Hex(), doc.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Rome", got.Destination)
}

func TestDeleteItinerary(t *testing.T) {
	repo, svc := newTestService()
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	doc := db_models.Itinerary{
		ID: primitive.NewObjectID(), UserID: owner, Destination: "Rome",
		Days: 3, Budget: "Budget", Itinerary: "text", CreatedAt: time.Now(),
	}
	repo.docs = append(repo.docs, doc)

	err := svc.DeleteItinerary(context.Background(), stranger.Hex(), doc.ID.Hex())
	assert.ErrorIs(t, err, utils.ErrItineraryNotFound)
	require.Len(t, repo.docs, 1)

	require.NoError(t, svc.DeleteItinerary(context.Background(), owner.Hex(), doc.ID.Hex()))
	assert.Empty(t, repo.docs)

	err = svc.DeleteItinerary(context.Background(), owner.Hex(), doc.ID.Hex())
	assert.ErrorIs(t, err, utils.ErrItineraryNotFound)
}

func TestGetItineraryBreakdown(t *testing.T) {
	_, svc := newTestService()
	owner := primitive.NewObjectID().Hex()

	created, err := svc.CreateItinerary(context.Background(), owner, request_models.GenerateItineraryRequest{
		Destination: "Paris", Days: 3, Budget: "Mid-range",
	})
	require.NoError(t, err)

	breakdown, err := svc.GetItineraryBreakdown(context.Background(), owner, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Paris", breakdown.Destination)
	require.Len(t, breakdown.Days, 1)
	require.Len(t, breakdown.Days[0].Activities, 2)

	first := breakdown.Days[0].Activities[0]
	assert.Equal(t, "Morning", first.Time)
	assert.Equal(t, "Eiffel Tower", first.Location)
	assert.Contains(t, first.DirectionsURL, "Eiffel%20Tower%2C%20Paris")
	assert.NotEmpty(t, breakdown.Raw)
}

func TestExportItineraryPDF(t *testing.T) {
	_, svc := newTestService()
	owner := primitive.NewObjectID().Hex()

	created, err := svc.CreateItinerary(context.Background(), owner, request_models.GenerateItineraryRequest{
		Destination: "Paris", Days: 3, Budget: "Luxury",
	})
	require.NoError(t, err)

	pdf, filename, err := svc.ExportItineraryPDF(context.Background(), owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paris-itinerary.pdf", filename)
	require.True(t, len(pdf) > 4)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
