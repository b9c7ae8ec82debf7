package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderly/internal/models/request_models"
	"wanderly/internal/services"
	"wanderly/pkg/middleware"
	"wanderly/pkg/utils"
)

const viewPresentable = "presentable"

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate an itinerary
// @Description Builds a day-by-day plan for the trip. With view=presentable the
// @Description response also carries duration, travelers and budget.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip request"
// @Param view query string false "presentable"
// @Success 200 {object} response_models.ItineraryResult
// @Failure 400 {object} utils.ErrorResponse
// @Failure 429 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/itinerary [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	generated, err := i.itineraryService.Generate(c.Request.Context(), req, services.GenerationMeta{
		TraceID: c.GetString(middleware.ContextTraceID),
		UserID:  c.GetString(middleware.ContextUserID),
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if c.Query("view") == viewPresentable {
		utils.RespondJSON(c, http.StatusOK, generated.Presentable())
		return
	}
	utils.RespondJSON(c, http.StatusOK, generated.Result)
}

// SaveItinerary godoc
// @Summary Save an itinerary
// @Description Appends a finalized itinerary snapshot to the signed-in user
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.SaveItineraryRequest true "Itinerary to save"
// @Success 201 {object} db_models.StoredItinerary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/itineraries [post]
func (i *ItineraryController) SaveItinerary(c *gin.Context) {
	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	stored, err := i.itineraryService.SaveItinerary(c.Request.Context(), c.GetString(middleware.ContextUserID), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, stored)
}

// ListItineraries godoc
// @Summary List saved itineraries
// @Description Returns the signed-in user's saved itineraries, oldest first
// @Tags Itinerary
// @Produce json
// @Success 200 {object} map[string][]db_models.StoredItinerary
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/itineraries [get]
func (i *ItineraryController) ListItineraries(c *gin.Context) {
	itineraries, err := i.itineraryService.ListItineraries(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"itineraries": itineraries})
}

// respondBindError names the offending field when the body has a value of the
// wrong JSON type.
func respondBindError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		utils.HandleServiceError(c, utils.NewInvalidFieldError(typeErr.Field, "must be of type "+typeErr.Type.String()))
		return
	}
	utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
}
