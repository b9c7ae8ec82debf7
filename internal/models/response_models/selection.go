package response_models

import (
	"fmt"

	"wanderly/pkg/utils"
)

type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
)

// DaySelection holds the chosen option index per slot of one day. nil means
// nothing has been chosen yet.
type DaySelection struct {
	Accommodation *int   `json:"accommodation" bson:"accommodation"`
	Activities    []*int `json:"activities" bson:"activities"`
	Breakfast     *int   `json:"breakfast" bson:"breakfast"`
	Lunch         *int   `json:"lunch" bson:"lunch"`
	Dinner        *int   `json:"dinner" bson:"dinner"`
}

// SelectionState tracks a user's picks across an itinerary. Once finalized it
// can no longer change.
type SelectionState struct {
	Days      []DaySelection `json:"days" bson:"days"`
	Finalized bool           `json:"finalized" bson:"finalized"`
}

// NewSelectionState returns an all-unset state shaped like the itinerary.
func NewSelectionState(it *ItineraryResult) SelectionState {
	days := make([]DaySelection, len(it.Days))
	for i, d := range it.Days {
		days[i].Activities = make([]*int, len(d.ActivityOptions))
	}
	return SelectionState{Days: days}
}

func (s *SelectionState) SelectAccommodation(it *ItineraryResult, day, option int) error {
	sel, plan, err := s.dayFor(it, day)
	if err != nil {
		return err
	}
	if err := checkOption("accommodation", option, len(plan.AccommodationOptions)); err != nil {
		return err
	}
	sel.Accommodation = &option
	return nil
}

func (s *SelectionState) SelectActivity(it *ItineraryResult, day, slot, option int) error {
	sel, plan, err := s.dayFor(it, day)
	if err != nil {
		return err
	}
	if slot < 0 || slot >= len(plan.ActivityOptions) || slot >= len(sel.Activities) {
		return fmt.Errorf("%w: activity slot %d out of range", utils.ErrInvalidSelection, slot)
	}
	if err := checkOption("activity", option, len(plan.ActivityOptions[slot])); err != nil {
		return err
	}
	sel.Activities[slot] = &option
	return nil
}

func (s *SelectionState) SelectMeal(it *ItineraryResult, day int, meal Meal, option int) error {
	sel, plan, err := s.dayFor(it, day)
	if err != nil {
		return err
	}
	switch meal {
	case MealBreakfast:
		if err := checkOption(string(meal), option, len(plan.FoodSuggestions.BreakfastOptions)); err != nil {
			return err
		}
		sel.Breakfast = &option
	case MealLunch:
		if err := checkOption(string(meal), option, len(plan.FoodSuggestions.LunchOptions)); err != nil {
			return err
		}
		sel.Lunch = &option
	case MealDinner:
		if err := checkOption(string(meal), option, len(plan.FoodSuggestions.DinnerOptions)); err != nil {
			return err
		}
		sel.Dinner = &option
	default:
		return fmt.Errorf("%w: unknown meal %q", utils.ErrInvalidSelection, meal)
	}
	return nil
}

func (s *SelectionState) Finalize() {
	s.Finalized = true
}

// ValidateAgainst checks that a state received from a client fits the
// itinerary: same number of days and slots, every set index in range. The
// picks are replayed onto a fresh state so the bounds rules match Select*.
func (s SelectionState) ValidateAgainst(it *ItineraryResult) error {
	if len(s.Days) != len(it.Days) {
		return fmt.Errorf("%w: expected %d days, got %d", utils.ErrInvalidSelection, len(it.Days), len(s.Days))
	}

	replay := NewSelectionState(it)
	for i, sel := range s.Days {
		plan := it.Days[i]
		if len(sel.Activities) != len(plan.ActivityOptions) {
			return fmt.Errorf("%w: day %d expected %d activity slots, got %d",
				utils.ErrInvalidSelection, i+1, len(plan.ActivityOptions), len(sel.Activities))
		}

		if sel.Accommodation != nil {
			if err := replay.SelectAccommodation(it, i, *sel.Accommodation); err != nil {
				return fmt.Errorf("day %d: %w", i+1, err)
			}
		}
		for slot, chosen := range sel.Activities {
			if chosen == nil {
				continue
			}
			if err := replay.SelectActivity(it, i, slot, *chosen); err != nil {
				return fmt.Errorf("day %d: %w", i+1, err)
			}
		}
		meals := []struct {
			meal   Meal
			chosen *int
		}{
			{MealBreakfast, sel.Breakfast},
			{MealLunch, sel.Lunch},
			{MealDinner, sel.Dinner},
		}
		for _, m := range meals {
			if m.chosen == nil {
				continue
			}
			if err := replay.SelectMeal(it, i, m.meal, *m.chosen); err != nil {
				return fmt.Errorf("day %d: %w", i+1, err)
			}
		}
	}
	return nil
}

func (s *SelectionState) dayFor(it *ItineraryResult, day int) (*DaySelection, *DayPlan, error) {
	if s.Finalized {
		return nil, nil, utils.ErrSelectionFinalized
	}
	if day < 0 || day >= len(it.Days) || day >= len(s.Days) {
		return nil, nil, fmt.Errorf("%w: day index %d out of range", utils.ErrInvalidSelection, day)
	}
	return &s.Days[day], &it.Days[day], nil
}

func checkOption(what string, option, count int) error {
	if option < 0 || option >= count {
		return fmt.Errorf("%w: %s option %d out of range (%d available)", utils.ErrInvalidSelection, what, option, count)
	}
	return nil
}
