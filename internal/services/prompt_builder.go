package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"wanderly/internal/models/request_models"
	"wanderly/internal/models/response_models"
	"wanderly/pkg/utils"
)

// NativePricingCurrency is the currency generation models price in by default.
// Any other requested currency needs an explicit conversion rate.
const NativePricingCurrency = "USD"

// Cardinalities requested from the generator. They are requested only; the
// parser accepts whatever counts come back.
const (
	accommodationOptionsPerDay = 2
	activitySlotsPerDay        = 2
	optionsPerActivitySlot     = 2
	optionsPerMealSlot         = 2
)

const SystemInstruction = "You are a world-class digital concierge and expert travel planner. " +
	"Your goal is to create a detailed, realistic, and inspiring travel plan based on user preferences. " +
	"You must respond with a single, valid JSON object and nothing else. " +
	"Ensure your suggestions are practical, creative, and provide real-world context."

// BuildPrompt renders the user message for one generation call. It is
// deterministic: the same normalized request always yields the same text.
func BuildPrompt(req request_models.TripRequest) string {
	var prompt strings.Builder

	prompt.WriteString("Please create a highly detailed, realistic, and optimized travel itinerary based on the user's request.\n")
	prompt.WriteString("The output MUST be a single, valid JSON object. Do not include any text or markdown formatting before or after the JSON.\n\n")

	prompt.WriteString("User Input:\n")
	prompt.WriteString(fmt.Sprintf("- Destination: %s\n", req.Destination))
	prompt.WriteString(fmt.Sprintf("- Travel Dates: %s to %s (%d days)\n", req.StartDate, req.EndDate, req.TripDays))
	prompt.WriteString(fmt.Sprintf("- Travelers: %s\n", TravelersLabel(req)))
	prompt.WriteString(fmt.Sprintf("- Budget: %s\n", req.Budget))
	prompt.WriteString(fmt.Sprintf("- Budget per Person: %s\n", budgetPerPersonText(req)))
	prompt.WriteString(fmt.Sprintf("- Currency: %s\n", req.Currency))
	prompt.WriteString(fmt.Sprintf("- Interests: %s\n", orNone(strings.Join(req.Interests, ", "))))
	prompt.WriteString(fmt.Sprintf("- Food Preferences: %s\n", orNone(req.FoodPreferences)))
	prompt.WriteString(fmt.Sprintf("- Accommodation Preference: %s\n", req.Accommodation))
	prompt.WriteString(fmt.Sprintf("- Transportation Preference: %s\n", req.Transportation))
	prompt.WriteString(fmt.Sprintf("- Trip Type: %s\n", orNone(req.TripType)))
	prompt.WriteString(fmt.Sprintf("- Preferred Stay Location: %s\n", orNone(req.PreferredStayLocation)))
	prompt.WriteString(fmt.Sprintf("- Special Requests: %s\n\n", orNone(req.SpecialRequests)))

	prompt.WriteString("IMPORTANT:\n")
	prompt.WriteString("- Respond with ONLY the JSON object. No prose, no markdown code fences, no comments.\n")
	prompt.WriteString(fmt.Sprintf("- All monetary figures (overall budget, accommodation, activities, food, transport) must be expressed in %s.\n", req.Currency))
	if req.Currency != NativePricingCurrency {
		prompt.WriteString(fmt.Sprintf(
			"- Prices are usually known in %s. State the exact conversion rate you used (e.g. \"1 %s = X %s\") in overallBudget.notes.\n",
			NativePricingCurrency, NativePricingCurrency, req.Currency))
	}
	prompt.WriteString("- Use realistic local prices for the destination.\n")
	prompt.WriteString(fmt.Sprintf(
		"- For every physical place (accommodation, activity, restaurant) provide a Google Maps search URL in exactly this format: \"%s\". Replace spaces in the name and city with '+'.\n",
		utils.GoogleMapsSearchPrefix+"NAME,CITY"))
	prompt.WriteString("- Do NOT include a time field for activities. List activity slots in the order they should be done each day.\n")
	prompt.WriteString(fmt.Sprintf(
		"- Each day must have exactly %d accommodation options, activity slots with exactly %d options each, and exactly %d options for each of breakfast, lunch and dinner.\n",
		accommodationOptionsPerDay, optionsPerActivitySlot, optionsPerMealSlot))
	prompt.WriteString("- If some information is unknown, use an empty string \"\" or an empty array []. Never omit a field.\n\n")

	prompt.WriteString("Generate the itinerary in the following JSON format:\n\n")
	prompt.WriteString(exampleSchema(req))
	prompt.WriteString("\n\n")

	prompt.WriteString(fmt.Sprintf(
		"Ensure the number of day objects in the 'days' array matches the trip duration (%d days), numbered 1 to %d.\n",
		req.TripDays, req.TripDays))
	prompt.WriteString("Fill in all fields with creative, relevant, and genuinely helpful suggestions, like a seasoned local traveler who is also a professional planner.\n")

	return prompt.String()
}

// TravelersLabel renders the party size as "A adults, C children".
func TravelersLabel(req request_models.TripRequest) string {
	return fmt.Sprintf("%d adults, %d children", req.Adults, req.Children)
}

func budgetPerPersonText(req request_models.TripRequest) string {
	if req.BudgetPerPerson <= 0 {
		return "not specified"
	}
	return strconv.FormatFloat(req.BudgetPerPerson, 'f', -1, 64) + " " + req.Currency
}

func orNone(s string) string {
	if s == "" {
		return "none specified"
	}
	return s
}

// exampleSchema renders one sample day as indented JSON. It is built from the
// response types so field names cannot drift from what ParseItinerary reads.
func exampleSchema(req request_models.TripRequest) string {
	city := req.Destination
	cost := func(what string) string {
		return fmt.Sprintf("e.g. cost of %s in %s", what, req.Currency)
	}

	accommodations := make([]response_models.Offering, 0, accommodationOptionsPerDay)
	for i := 1; i <= accommodationOptionsPerDay; i++ {
		name := fmt.Sprintf("Hotel Name %d", i)
		accommodations = append(accommodations, response_models.Offering{
			Name:          name,
			Notes:         "Why it fits the traveler's accommodation preference and location.",
			ImageURL:      "A photo URL of the property, or \"\" if unknown.",
			EstimatedCost: cost("one night"),
			GoogleMapsURL: utils.GoogleMapsURL(name, city),
			BookingURL:    "A booking link, or \"\" if unknown.",
		})
	}

	activities := make([][]response_models.Offering, 0, activitySlotsPerDay)
	for slot := 1; slot <= activitySlotsPerDay; slot++ {
		options := make([]response_models.Offering, 0, optionsPerActivitySlot)
		for i := 1; i <= optionsPerActivitySlot; i++ {
			place := fmt.Sprintf("Place Name %d%c", slot, 'A'+rune(i-1))
			options = append(options, response_models.Offering{
				Description:        "Clear and exciting description of the activity (e.g. 'Explore " + place + "').",
				Details:            "Practical information and tips. Explain WHY this fits the user's interests.",
				EstimatedCost:      cost("the activity per person"),
				TransportationNote: "How to get there and what it costs.",
				GoogleMapsURL:      utils.GoogleMapsURL(place, city),
			})
		}
		activities = append(activities, options)
	}

	meal := func(label string) []response_models.Offering {
		options := make([]response_models.Offering, 0, optionsPerMealSlot)
		for i := 1; i <= optionsPerMealSlot; i++ {
			name := fmt.Sprintf("%s Restaurant %d", label, i)
			options = append(options, response_models.Offering{
				Name:          name,
				Cuisine:       "e.g. local cuisine",
				Notes:         "Why it is recommended.",
				EstimatedCost: cost(strings.ToLower(label) + " per person"),
				GoogleMapsURL: utils.GoogleMapsURL(name, city),
			})
		}
		return options
	}

	example := response_models.ItineraryResult{
		Destination: req.Destination,
		TripSummary: "A vibrant and engaging summary of the trip, highlighting the key experiences based on user interests.",
		OverallBudget: response_models.OverallBudget{
			Estimate: fmt.Sprintf("e.g. total range in %s", req.Currency),
			Notes:    "What this budget realistically covers and what it excludes.",
		},
		Days: []response_models.DayPlan{{
			Day:          1,
			Title:        "A catchy title for the day's theme.",
			DailySummary: "A short summary of what the day entails.",
			Weather: &response_models.Weather{
				Temperature: "e.g. 24°C",
				Condition:   "e.g. Sunny",
			},
			AccommodationOptions: accommodations,
			ActivityOptions:      activities,
			FoodSuggestions: response_models.FoodSuggestions{
				BreakfastOptions: meal("Breakfast"),
				LunchOptions:     meal("Lunch"),
				DinnerOptions:    meal("Dinner"),
			},
		}},
		GeneralTips: []string{
			"A useful, specific tip for the destination.",
			"Another practical tip.",
		},
	}

	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false) // keep '&' in map URLs literal
	enc.SetIndent("", "  ")
	if err := enc.Encode(example); err != nil {
		// static value of known types
		panic(err)
	}
	return strings.TrimRight(out.String(), "\n")
}
