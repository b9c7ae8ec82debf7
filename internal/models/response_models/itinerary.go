package response_models

// ItineraryResult is the structured plan returned by the generation service.
type ItineraryResult struct {
	Destination   string        `json:"destination" bson:"destination"`
	TripSummary   string        `json:"tripSummary" bson:"tripSummary"`
	OverallBudget OverallBudget `json:"overallBudget" bson:"overallBudget"`
	Days          []DayPlan     `json:"days" bson:"days"`
	GeneralTips   []string      `json:"generalTips" bson:"generalTips"`
}

type OverallBudget struct {
	Estimate string `json:"estimate" bson:"estimate"`
	Notes    string `json:"notes" bson:"notes"`
}

type DayPlan struct {
	Day                  int             `json:"day" bson:"day"`
	Title                string          `json:"title" bson:"title"`
	DailySummary         string          `json:"dailySummary" bson:"dailySummary"`
	Weather              *Weather        `json:"weather,omitempty" bson:"weather,omitempty"`
	AccommodationOptions []Offering      `json:"accommodationOptions" bson:"accommodationOptions"`
	ActivityOptions      [][]Offering    `json:"activityOptions" bson:"activityOptions"`
	FoodSuggestions      FoodSuggestions `json:"foodSuggestions" bson:"foodSuggestions"`
}

type Weather struct {
	Temperature string `json:"temperature" bson:"temperature"`
	Condition   string `json:"condition" bson:"condition"`
	Icon        string `json:"icon,omitempty" bson:"icon,omitempty"`
}

type FoodSuggestions struct {
	BreakfastOptions []Offering `json:"breakfastOptions" bson:"breakfastOptions"`
	LunchOptions     []Offering `json:"lunchOptions" bson:"lunchOptions"`
	DinnerOptions    []Offering `json:"dinnerOptions" bson:"dinnerOptions"`
}

// Offering is one selectable suggestion: an activity, a place to stay or a meal.
// Activities use Description/Details, stays and meals use Name/Notes.
type Offering struct {
	Name               string `json:"name,omitempty" bson:"name,omitempty"`
	Description        string `json:"description,omitempty" bson:"description,omitempty"`
	Details            string `json:"details,omitempty" bson:"details,omitempty"`
	Notes              string `json:"notes,omitempty" bson:"notes,omitempty"`
	Cuisine            string `json:"cuisine,omitempty" bson:"cuisine,omitempty"`
	ImageURL           string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	EstimatedCost      string `json:"estimatedCost" bson:"estimatedCost"`
	GoogleMapsURL      string `json:"googleMapsUrl,omitempty" bson:"googleMapsUrl,omitempty"`
	BookingURL         string `json:"bookingUrl,omitempty" bson:"bookingUrl,omitempty"`
	TransportationNote string `json:"transportationNote,omitempty" bson:"transportationNote,omitempty"`
}

// Label is the offering's display text, name first.
func (o Offering) Label() string {
	if o.Name != "" {
		return o.Name
	}
	return o.Description
}

// PresentableItinerary is an ItineraryResult plus the trip metadata the
// generator is not trusted to echo back.
type PresentableItinerary struct {
	ItineraryResult `bson:",inline"`
	Duration        string `json:"duration" bson:"duration"`
	Travelers       string `json:"travelers" bson:"travelers"`
	Budget          string `json:"budget" bson:"budget"`
}
