package db_models

import (
	"time"

	"wanderly/internal/models/request_models"
	"wanderly/internal/models/response_models"
)

// StoredItinerary is a full snapshot taken at save time. It is never updated.
type StoredItinerary struct {
	ID         string                               `json:"id" bson:"id"`
	SavedAt    time.Time                            `json:"savedAt" bson:"savedAt"`
	Trip       request_models.TripRequest           `json:"trip" bson:"trip"`
	Itinerary  response_models.PresentableItinerary `json:"itinerary" bson:"itinerary"`
	Selections *response_models.SelectionState      `json:"selections,omitempty" bson:"selections,omitempty"`
}
