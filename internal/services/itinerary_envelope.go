package services

import (
	"fmt"

	"wanderly/internal/models/request_models"
	"wanderly/internal/models/response_models"
)

// Envelope attaches the trip metadata the generator is not trusted to echo.
func Envelope(result response_models.ItineraryResult, req request_models.TripRequest) response_models.PresentableItinerary {
	return response_models.PresentableItinerary{
		ItineraryResult: result,
		Duration:        fmt.Sprintf("%d days", req.TripDays),
		Travelers:       TravelersLabel(req),
		Budget:          req.Budget,
	}
}
