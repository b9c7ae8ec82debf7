package request_models

import (
	"strings"

	"wanderly/pkg/utils"
)

const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"

	DefaultCurrency       = "INR"
	DefaultAccommodation  = "hotel"
	DefaultTransportation = "mixed"
)

// TripRequest is the trip-planning form as posted by the client. Use
// Normalize to obtain the canonical value handed to the prompt builder.
type TripRequest struct {
	Destination           string   `json:"destination" bson:"destination"`
	StartDate             string   `json:"startDate" bson:"startDate"`
	EndDate               string   `json:"endDate" bson:"endDate"`
	TripDays              int      `json:"tripDays" bson:"tripDays"`
	Adults                int      `json:"adults" bson:"adults"`
	Children              int      `json:"children" bson:"children"`
	Budget                string   `json:"budget" bson:"budget"`
	BudgetPerPerson       float64  `json:"budgetPerPerson" bson:"budgetPerPerson"`
	Currency              string   `json:"currency" bson:"currency"`
	Interests             []string `json:"interests" bson:"interests"`
	FoodPreferences       string   `json:"foodPreferences" bson:"foodPreferences"`
	Accommodation         string   `json:"accommodation" bson:"accommodation"`
	Transportation        string   `json:"transportation" bson:"transportation"`
	TripType              string   `json:"tripType,omitempty" bson:"tripType,omitempty"`
	PreferredStayLocation string   `json:"preferredStayLocation,omitempty" bson:"preferredStayLocation,omitempty"`
	SpecialRequests       string   `json:"specialRequests,omitempty" bson:"specialRequests,omitempty"`
}

// Normalize validates the request and returns its canonical form. TripDays is
// always recomputed from the dates; the client's value is ignored.
func (r TripRequest) Normalize() (TripRequest, error) {
	out := r
	out.Destination = strings.TrimSpace(r.Destination)
	out.StartDate = strings.TrimSpace(r.StartDate)
	out.EndDate = strings.TrimSpace(r.EndDate)

	switch {
	case out.Destination == "":
		return TripRequest{}, utils.NewMissingFieldError("destination")
	case out.StartDate == "":
		return TripRequest{}, utils.NewMissingFieldError("startDate")
	case out.EndDate == "":
		return TripRequest{}, utils.NewMissingFieldError("endDate")
	}

	start, err := utils.ParseTripDate(out.StartDate)
	if err != nil {
		return TripRequest{}, utils.NewInvalidFieldError("startDate", "expected YYYY-MM-DD")
	}
	end, err := utils.ParseTripDate(out.EndDate)
	if err != nil {
		return TripRequest{}, utils.NewInvalidFieldError("endDate", "expected YYYY-MM-DD")
	}
	if !end.After(start) {
		return TripRequest{}, utils.NewInvalidFieldError("endDate", "End date must be after start date")
	}
	out.TripDays = utils.InclusiveDayCount(start, end)

	if out.Adults == 0 {
		out.Adults = 1
	}
	if out.Adults < 0 {
		return TripRequest{}, utils.NewInvalidFieldError("adults", "must be at least 1")
	}
	if out.Children < 0 {
		return TripRequest{}, utils.NewInvalidFieldError("children", "must not be negative")
	}

	out.Budget = strings.ToLower(strings.TrimSpace(r.Budget))
	switch out.Budget {
	case "":
		out.Budget = BudgetMedium
	case BudgetLow, BudgetMedium, BudgetHigh:
	default:
		return TripRequest{}, utils.NewInvalidFieldError("budget", "must be one of low, medium, high")
	}

	if out.BudgetPerPerson < 0 {
		return TripRequest{}, utils.NewInvalidFieldError("budgetPerPerson", "must be positive")
	}

	out.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	if out.Currency == "" {
		out.Currency = DefaultCurrency
	}
	if !isCurrencyCode(out.Currency) {
		return TripRequest{}, utils.NewInvalidFieldError("currency", "expected a 3-letter code such as INR or USD")
	}

	out.Interests = normalizeInterests(r.Interests)
	out.FoodPreferences = strings.TrimSpace(r.FoodPreferences)
	out.Accommodation = defaultString(strings.TrimSpace(r.Accommodation), DefaultAccommodation)
	out.Transportation = defaultString(strings.TrimSpace(r.Transportation), DefaultTransportation)
	out.TripType = strings.TrimSpace(r.TripType)
	out.PreferredStayLocation = strings.TrimSpace(r.PreferredStayLocation)
	out.SpecialRequests = strings.TrimSpace(r.SpecialRequests)

	return out, nil
}

func normalizeInterests(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, raw := range in {
		tag := strings.ToLower(strings.TrimSpace(raw))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
