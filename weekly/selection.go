package weekly

import (
	"errors"
	"time"
)

var (
	ErrEmptySelection     = errors.New("selection must pick an option or mark no meal")
	ErrAmbiguousSelection = errors.New("selection cannot both pick an option and mark no meal")
	ErrBadOptionIndex     = errors.New("option index must be zero or positive")
	ErrBadSelectionDate   = errors.New("selection date is not a valid ISO date")
)

// Selection is a single day's choice: either an explicit no-meal marker
// or a (menu, option index) pair. Exactly one of the two arms must be
// set; Validate rejects everything else.
type Selection struct {
	NoMeal      bool `json:"no_meal"`
	MenuID      uint `json:"menu_id,omitempty"`
	OptionIndex *int `json:"option_index,omitempty"`
}

// Validate checks the tagged-union shape of the selection.
func (s Selection) Validate() error {
	picked := s.MenuID != 0 || s.OptionIndex != nil
	switch {
	case s.NoMeal && picked:
		return ErrAmbiguousSelection
	case !s.NoMeal && (s.MenuID == 0 || s.OptionIndex == nil):
		return ErrEmptySelection
	case !s.NoMeal && *s.OptionIndex < 0:
		return ErrBadOptionIndex
	}
	return nil
}

// SelectionSet maps ISO date strings to that day's selection.
type SelectionSet map[string]Selection

// Validate checks every date key and selection in the set.
func (ss SelectionSet) Validate() error {
	for date, sel := range ss {
		if _, err := time.Parse(DateFormat, date); err != nil {
			return ErrBadSelectionDate
		}
		if err := sel.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Complete reports whether every given date has a selection. Submission
// requires all workdays of the window to be covered.
func (ss SelectionSet) Complete(dates []string) bool {
	for _, d := range dates {
		if _, ok := ss[d]; !ok {
			return false
		}
	}
	return true
}

// Missing returns the dates without a selection, for error reporting.
func (ss SelectionSet) Missing(dates []string) []string {
	var out []string
	for _, d := range dates {
		if _, ok := ss[d]; !ok {
			out = append(out, d)
		}
	}
	return out
}
