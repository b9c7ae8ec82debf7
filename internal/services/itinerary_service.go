package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"wanderly/internal/models/db_models"
	"wanderly/internal/models/request_models"
	"wanderly/internal/models/response_models"
	"wanderly/internal/repositories"
	"wanderly/pkg/utils"
)

// rawLogLimit caps how much of a rejected completion goes to the server log.
const rawLogLimit = 2048

const auditWriteTimeout = 5 * time.Second

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, trip request_models.TripRequest, meta GenerationMeta) (*GeneratedItinerary, error)
	SaveItinerary(ctx context.Context, userID string, request request_models.SaveItineraryRequest) (*db_models.StoredItinerary, error)
	ListItineraries(ctx context.Context, userID string) ([]db_models.StoredItinerary, error)
}

// GenerationMeta identifies the request on whose behalf a generation runs.
type GenerationMeta struct {
	TraceID string
	UserID  string
}

type GeneratedItinerary struct {
	Trip   request_models.TripRequest
	Result *response_models.ItineraryResult
}

func (g *GeneratedItinerary) Presentable() response_models.PresentableItinerary {
	return Envelope(*g.Result, g.Trip)
}

type ItineraryService struct {
	generator   utils.GenerationClientInterface
	accountRepo repositories.AccountRepository
	auditRepo   repositories.GenerationLogRepository
	now         func() time.Time
}

func NewItineraryService(
	generator utils.GenerationClientInterface,
	accountRepo repositories.AccountRepository,
	auditRepo repositories.GenerationLogRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		generator:   generator,
		accountRepo: accountRepo,
		auditRepo:   auditRepo,
		now:         time.Now,
	}
}

// Generate runs one normalize, prompt, generate, parse pass. There is no retry;
// any failure ends the request.
func (s *ItineraryService) Generate(ctx context.Context, trip request_models.TripRequest, meta GenerationMeta) (*GeneratedItinerary, error) {
	normalized, err := trip.Normalize()
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(normalized)
	started := s.now()
	raw, genErr := s.generator.Generate(ctx, SystemInstruction, prompt)
	latency := s.now().Sub(started)

	entry := &db_models.GenerationLog{
		TraceID:     meta.TraceID,
		UserID:      meta.UserID,
		Provider:    s.generator.Provider(),
		Model:       s.generator.Model(),
		Destination: normalized.Destination,
		TripDays:    normalized.TripDays,
		Currency:    normalized.Currency,
		Interests:   normalized.Interests,
		Prompt:      prompt,
		RawResponse: raw,
		LatencyMs:   latency.Milliseconds(),
	}

	if genErr != nil {
		entry.Outcome = db_models.OutcomeGenerationError
		entry.ErrorDetail = genErr.Error()
		s.audit(ctx, entry)
		var typed *utils.GenerationError
		if !errors.As(genErr, &typed) {
			genErr = &utils.GenerationError{Provider: s.generator.Provider(), Err: genErr}
		}
		return nil, genErr
	}

	result, err := ParseItinerary(raw)
	if err == nil {
		err = CheckDayCount(result, normalized.TripDays)
	}
	if err != nil {
		entry.Outcome = outcomeFor(err)
		entry.ErrorDetail = err.Error()
		s.audit(ctx, entry)
		log.Printf("[%s] rejected completion from %s (%v): %s", meta.TraceID, s.generator.Model(), err, truncate(raw, rawLogLimit))
		return nil, err
	}

	for _, issue := range CheckItinerary(result) {
		log.Printf("[%s] itinerary issue: %s", meta.TraceID, issue)
	}

	entry.Outcome = db_models.OutcomeSuccess
	s.audit(ctx, entry)

	log.Printf("[%s] generated %d-day itinerary for %s in %s", meta.TraceID, len(result.Days), normalized.Destination, latency)
	return &GeneratedItinerary{Trip: normalized, Result: result}, nil
}

// SaveItinerary snapshots a finished itinerary onto the user. Selections, when
// present, are validated against the itinerary and stored finalized.
func (s *ItineraryService) SaveItinerary(ctx context.Context, userID string, request request_models.SaveItineraryRequest) (*db_models.StoredItinerary, error) {
	trip, err := request.Trip.Normalize()
	if err != nil {
		return nil, err
	}
	if request.Itinerary == nil {
		return nil, utils.NewMissingFieldError("itinerary")
	}
	if len(request.Itinerary.Days) == 0 {
		return nil, utils.NewInvalidFieldError("itinerary", "must contain at least one day")
	}
	if err := CheckDayCount(request.Itinerary, trip.TripDays); err != nil {
		return nil, utils.NewInvalidFieldError("itinerary",
			fmt.Sprintf("has %d days but the trip spans %d", len(request.Itinerary.Days), trip.TripDays))
	}

	var selections *response_models.SelectionState
	if request.Selections != nil {
		if err := request.Selections.ValidateAgainst(request.Itinerary); err != nil {
			return nil, err
		}
		finalized := *request.Selections
		finalized.Finalize()
		selections = &finalized
	}

	stored := db_models.StoredItinerary{
		ID:         uuid.NewString(),
		SavedAt:    s.now().UTC(),
		Trip:       trip,
		Itinerary:  Envelope(*request.Itinerary, trip),
		Selections: selections,
	}

	if err := s.accountRepo.AppendItinerary(ctx, userID, stored); err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			return nil, err
		}
		log.Printf("save itinerary for %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}

	return &stored, nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, userID string) ([]db_models.StoredItinerary, error) {
	itineraries, err := s.accountRepo.ListItineraries(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			return nil, err
		}
		log.Printf("list itineraries for %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}
	return itineraries, nil
}

// audit never fails the request; the entry outlives a cancelled client.
func (s *ItineraryService) audit(ctx context.Context, entry *db_models.GenerationLog) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
	defer cancel()
	if err := s.auditRepo.Insert(ctx, entry); err != nil {
		log.Printf("[%s] write generation log: %v", entry.TraceID, err)
	}
}

func outcomeFor(err error) string {
	var schemaErr *utils.SchemaMismatchError
	if errors.As(err, &schemaErr) {
		return db_models.OutcomeSchemaError
	}
	return db_models.OutcomeFormatError
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "...(truncated)"
}
