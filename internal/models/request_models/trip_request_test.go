package request_models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wanderly/pkg/utils"
)

func validTrip() TripRequest {
	return TripRequest{
		Destination: "  Jaipur ",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-03",
		TripDays:    99,
		Budget:      "Medium",
		Currency:    "inr",
		Interests:   []string{" History", "history", "", "Food"},
	}
}

func TestNormalizeAppliesDefaults(t *testing.T) {
	got, err := validTrip().Normalize()
	require.NoError(t, err)

	assert.Equal(t, "Jaipur", got.Destination)
	assert.Equal(t, 3, got.TripDays, "tripDays is derived from the dates")
	assert.Equal(t, 1, got.Adults)
	assert.Equal(t, 0, got.Children)
	assert.Equal(t, BudgetMedium, got.Budget)
	assert.Equal(t, "INR", got.Currency)
	assert.Equal(t, []string{"history", "food"}, got.Interests)
	assert.Equal(t, DefaultAccommodation, got.Accommodation)
	assert.Equal(t, DefaultTransportation, got.Transportation)
}

func TestNormalizeDefaultsCurrencyAndBudget(t *testing.T) {
	trip := validTrip()
	trip.Currency = ""
	trip.Budget = ""

	got, err := trip.Normalize()
	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, got.Currency)
	assert.Equal(t, BudgetMedium, got.Budget)
	assert.NotNil(t, got.Interests)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	trip := validTrip()
	_, err := trip.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "  Jaipur ", trip.Destination)
	assert.Equal(t, 99, trip.TripDays)
}

func TestNormalizeRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TripRequest)
		field  string
	}{
		{"missing destination", func(r *TripRequest) { r.Destination = "   " }, "destination"},
		{"missing start", func(r *TripRequest) { r.StartDate = "" }, "startDate"},
		{"missing end", func(r *TripRequest) { r.EndDate = "" }, "endDate"},
		{"bad start", func(r *TripRequest) { r.StartDate = "01/01/2024" }, "startDate"},
		{"end before start", func(r *TripRequest) { r.EndDate = "2023-12-31" }, "endDate"},
		{"end equals start", func(r *TripRequest) { r.EndDate = r.StartDate }, "endDate"},
		{"negative adults", func(r *TripRequest) { r.Adults = -1 }, "adults"},
		{"negative children", func(r *TripRequest) { r.Children = -2 }, "children"},
		{"unknown budget", func(r *TripRequest) { r.Budget = "luxury" }, "budget"},
		{"negative budget per person", func(r *TripRequest) { r.BudgetPerPerson = -5 }, "budgetPerPerson"},
		{"bad currency", func(r *TripRequest) { r.Currency = "RUPEES" }, "currency"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trip := validTrip()
			tc.mutate(&trip)

			_, err := trip.Normalize()
			var validationErr *utils.ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestNormalizeMissingFieldMessage(t *testing.T) {
	_, err := TripRequest{StartDate: "2024-01-01", EndDate: "2024-01-02"}.Normalize()
	require.Error(t, err)
	assert.Equal(t, "Missing required fields: destination", err.Error())
}
