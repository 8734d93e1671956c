package model

import "errors"

var (
	// ErrInvalidAmount indicates an expense amount that is zero, negative, non-numeric or non-finite.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidBudget indicates a monthly budget that is zero, negative or non-finite.
	ErrInvalidBudget = errors.New("invalid budget")
	// ErrUnknownCategory indicates a category outside SpendCategories.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownMood indicates a mood outside Moods.
	ErrUnknownMood = errors.New("unknown mood")
)
