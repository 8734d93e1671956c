package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category classifies an expense.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryEntertainment Category = "entertainment"
	CategoryTransport     Category = "transport"
	CategoryStudy         Category = "study"
	CategoryMedicine      Category = "medicine"
	CategoryPersonal      Category = "personal"
	CategoryOther         Category = "other"
	CategoryEmergency     Category = "emergency"
)

// SpendCategories are the categories a regular (non-emergency) expense can use,
// in the order the pickers show them.
var SpendCategories = []Category{
	CategoryFood,
	CategoryEntertainment,
	CategoryTransport,
	CategoryStudy,
	CategoryMedicine,
	CategoryPersonal,
	CategoryOther,
}

// ParseCategory resolves a regular spend category by name (case-insensitive).
// "emergency" is rejected: emergency spend has its own path.
func ParseCategory(s string) (Category, error) {
	name := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range SpendCategories {
		if c == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownCategory, s)
}

// Mood is the self-reported mood at the time of a purchase.
type Mood string

const (
	MoodNeutral  Mood = "neutral"
	MoodHappy    Mood = "happy"
	MoodStressed Mood = "stressed"
	MoodSad      Mood = "sad"
)

// Moods lists every mood in picker order.
var Moods = []Mood{MoodNeutral, MoodHappy, MoodStressed, MoodSad}

// ParseMood resolves a mood by name (case-insensitive). Empty input means neutral.
func ParseMood(s string) (Mood, error) {
	name := Mood(strings.ToLower(strings.TrimSpace(s)))
	if name == "" {
		return MoodNeutral, nil
	}
	for _, m := range Moods {
		if m == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownMood, s)
}

// ExpenseRecord is one recorded expense. Records are never modified after creation.
type ExpenseRecord struct {
	ID          uuid.UUID `json:"id"`
	Amount      Money     `json:"amount"`
	Category    Category  `json:"category"`
	Mood        Mood      `json:"mood"`
	Timestamp   time.Time `json:"timestamp"`
	IsEmergency bool      `json:"is_emergency"`
}

// LedgerState is a point-in-time copy of the expense ledger.
type LedgerState struct {
	Expenses      []ExpenseRecord `json:"expenses"`
	TodaySpending Money           `json:"today_spending"`
	TotalSpending Money           `json:"total_spending"`
}
