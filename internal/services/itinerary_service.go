package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"wanderai/internal/models/db_models"
	"wanderai/internal/models/request_models"
	"wanderai/internal/models/response_models"
	"wanderai/internal/repositories"
	"wanderai/pkg/itinerarytext"
	"wanderai/pkg/pdfexport"
	"wanderai/pkg/utils"
)

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context, ownerID string, req request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error)
	ListItineraries(ctx context.Context, ownerID string) ([]response_models.ItineraryResponse, error)
	GetItinerary(ctx context.Context, ownerID, id string) (*response_models.ItineraryResponse, error)
	GetItineraryBreakdown(ctx context.Context, ownerID, id string) (*response_models.ItineraryBreakdownResponse, error)
	ExportItineraryPDF(ctx context.Context, ownerID, id string) ([]byte, string, error)
	DeleteItinerary(ctx context.Context, ownerID, id string) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	generator     GeneratorServiceInterface
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository, generator GeneratorServiceInterface) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		generator:     generator,
	}
}

func (s *ItineraryService) CreateItinerary(ctx context.Context, ownerID string, req request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error) {
	destination := strings.TrimSpace(req.Destination)
	if destination == "" || req.Days < 1 || req.Days > 30 || !db_models.IsValidBudgetTier(req.Budget) {
		return nil, utils.ErrValidation
	}

	ownerOID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, utils.ErrValidation
	}

	result := s.generator.GenerateItinerary(ctx, destination, req.Days, req.Budget)

	itinerary := &db_models.Itinerary{
		UserID:      ownerOID,
		Destination: destination,
		Days:        req.Days,
		Budget:      req.Budget,
		Itinerary:   result.Text,
		MapsLink:    itinerarytext.MapSearchURL(destination),
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.itineraryRepo.Insert(ctx, itinerary)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	itinerary.ID = id

	resp := toItineraryResponse(itinerary)
	return &resp, nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, ownerID string) ([]response_models.ItineraryResponse, error) {
	ownerOID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	itineraries, err := s.itineraryRepo.ListByUser(ctx, ownerOID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for i := range itineraries {
		out = append(out, toItineraryResponse(&itineraries[i]))
	}
	return out, nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, ownerID, id string) (*response_models.ItineraryResponse, error) {
	itinerary, err := s.findOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	resp := toItineraryResponse(itinerary)
	return &resp, nil
}

// GetItineraryBreakdown runs the heuristic parser over the stored text and
// attaches a directions link to every activity with a location guess.
func (s *ItineraryService) GetItineraryBreakdown(ctx context.Context, ownerID, id string) (*response_models.ItineraryBreakdownResponse, error) {
	itinerary, err := s.findOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	parsed := itinerarytext.Parse(itinerary.Itinerary)
	days := make([]response_models.DayResponse, 0, len(parsed))
	for _, day := range parsed {
		activities := make([]response_models.ActivityResponse, 0, len(day.Activities))
		for _, act := range day.Activities {
			activities = append(activities, response_models.ActivityResponse{
				Time:          act.Time,
				Description:   act.Description,
				Location:      act.Location,
				DirectionsURL: itinerarytext.DirectionsURL(act.Location, itinerary.Destination, act.Description),
			})
		}
		days = append(days, response_models.DayResponse{Title: day.Title, Activities: activities})
	}

	return &response_models.ItineraryBreakdownResponse{
		Destination: itinerary.Destination,
		Days:        days,
		Raw:         itinerarytext.CleanMarkup(itinerary.Itinerary),
	}, nil
}

func (s *ItineraryService) ExportItineraryPDF(ctx context.Context, ownerID, id string) ([]byte, string, error) {
	itinerary, err := s.findOwned(ctx, ownerID, id)
	if err != nil {
		return nil, "", err
	}

	pdf, err := pdfexport.Render(itinerary.Destination, itinerary.Days, itinerary.Budget, itinerary.Itinerary)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s-itinerary.pdf", itinerary.Destination)
	return pdf, filename, nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, ownerID, id string) error {
	ownerOID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return utils.ErrItineraryNotFound
	}
	itineraryOID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrItineraryNotFound
	}

	deleted, err := s.itineraryRepo.DeleteByIDAndUser(ctx, itineraryOID, ownerOID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrItineraryNotFound
	}
	return nil
}

// findOwned collapses malformed ids, missing documents and ownership
// mismatches into the same not-found error.
func (s *ItineraryService) findOwned(ctx context.Context, ownerID, id string) (*db_models.Itinerary, error) {
	ownerOID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, utils.ErrItineraryNotFound
	}
	itineraryOID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ErrItineraryNotFound
	}

	itinerary, err := s.itineraryRepo.FindByIDAndUser(ctx, itineraryOID, ownerOID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return itinerary, nil
}

func toItineraryResponse(itinerary *db_models.Itinerary) response_models.ItineraryResponse {
	return response_models.ItineraryResponse{
		ID:          itinerary.ID.Hex(),
		Destination: itinerary.Destination,
		Days:        itinerary.Days,
		Budget:      itinerary.Budget,
		Itinerary:   itinerary.Itinerary,
		MapsLink:    itinerary.MapsLink,
		CreatedAt:   itinerary.CreatedAt,
	}
}
