package request_models

import "wanderly/internal/models/response_models"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	DisplayName string `json:"displayName" binding:"required,min=1,max=80"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

// SaveItineraryRequest is what the client posts once the user has finished
// picking options. Selections is optional.
type SaveItineraryRequest struct {
	Trip       TripRequest                      `json:"trip"`
	Itinerary  *response_models.ItineraryResult `json:"itinerary"`
	Selections *response_models.SelectionState  `json:"selections"`
}
