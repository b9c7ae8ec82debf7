package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"wanderly/internal/models/response_models"
	"wanderly/pkg/utils"
)

// ItineraryIssue is a soft problem in a parsed itinerary. Issues are logged,
// never patched and never fatal.
type ItineraryIssue struct {
	Day     int
	Field   string
	Message string
}

func (i ItineraryIssue) String() string {
	if i.Day == 0 {
		return fmt.Sprintf("%s: %s", i.Field, i.Message)
	}
	return fmt.Sprintf("day %d %s: %s", i.Day, i.Field, i.Message)
}

// ParseItinerary decodes a completion into an ItineraryResult. The whole text
// must be one JSON object; nothing is extracted from surrounding prose.
func ParseItinerary(raw string) (*response_models.ItineraryResult, error) {
	body := bytes.TrimSpace([]byte(raw))
	if len(body) == 0 {
		return nil, &utils.ResponseFormatError{Raw: raw, Err: errors.New("empty completion")}
	}
	if body[0] != '{' {
		return nil, &utils.ResponseFormatError{Raw: raw, Err: errors.New("completion is not a JSON object")}
	}
	if !json.Valid(body) {
		// re-decode only to get a positional error message without the text itself
		var probe json.RawMessage
		err := json.Unmarshal(body, &probe)
		if err == nil {
			err = errors.New("invalid JSON")
		}
		return nil, &utils.ResponseFormatError{Raw: raw, Err: err}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, &utils.ResponseFormatError{Raw: raw, Err: err}
	}
	for _, required := range []string{"destination", "days"} {
		if v, ok := fields[required]; !ok || string(v) == "null" {
			return nil, &utils.SchemaMismatchError{Field: required, Reason: "is missing", Raw: raw}
		}
	}

	var result response_models.ItineraryResult
	if err := json.Unmarshal(body, &result); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &utils.SchemaMismatchError{
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("has type %s, expected %s", typeErr.Value, typeErr.Type),
				Raw:    raw,
			}
		}
		return nil, &utils.ResponseFormatError{Raw: raw, Err: err}
	}

	if strings.TrimSpace(result.Destination) == "" {
		return nil, &utils.SchemaMismatchError{Field: "destination", Reason: "is empty", Raw: raw}
	}
	if len(result.Days) == 0 {
		return nil, &utils.SchemaMismatchError{Field: "days", Reason: "is empty", Raw: raw}
	}

	return &result, nil
}

// CheckDayCount rejects an itinerary whose day count differs from the trip's.
func CheckDayCount(result *response_models.ItineraryResult, tripDays int) error {
	if len(result.Days) != tripDays {
		return &utils.SchemaMismatchError{
			Field:  "days",
			Reason: fmt.Sprintf("has %d entries, expected %d", len(result.Days), tripDays),
		}
	}
	return nil
}

// CheckItinerary lists soft issues. Option counts per slot are not checked.
func CheckItinerary(result *response_models.ItineraryResult) []ItineraryIssue {
	var issues []ItineraryIssue

	for i, day := range result.Days {
		n := i + 1
		if day.Day != n {
			issues = append(issues, ItineraryIssue{Day: n, Field: "day", Message: fmt.Sprintf("numbered %d", day.Day)})
		}
		if strings.TrimSpace(day.Title) == "" {
			issues = append(issues, ItineraryIssue{Day: n, Field: "title", Message: "is empty"})
		}

		issues = append(issues, checkMapLinks(n, "accommodationOptions", day.AccommodationOptions)...)
		for slot, options := range day.ActivityOptions {
			issues = append(issues, checkMapLinks(n, fmt.Sprintf("activityOptions[%d]", slot), options)...)
		}
		issues = append(issues, checkMapLinks(n, "breakfastOptions", day.FoodSuggestions.BreakfastOptions)...)
		issues = append(issues, checkMapLinks(n, "lunchOptions", day.FoodSuggestions.LunchOptions)...)
		issues = append(issues, checkMapLinks(n, "dinnerOptions", day.FoodSuggestions.DinnerOptions)...)
	}

	return issues
}

func checkMapLinks(day int, field string, options []response_models.Offering) []ItineraryIssue {
	var issues []ItineraryIssue
	for i, o := range options {
		if !utils.IsGoogleMapsURL(o.GoogleMapsURL) {
			issues = append(issues, ItineraryIssue{
				Day:     day,
				Field:   fmt.Sprintf("%s[%d].googleMapsUrl", field, i),
				Message: fmt.Sprintf("%q is not a map search link", o.GoogleMapsURL),
			})
		}
	}
	return issues
}
