package pipeline

import (
	"sort"
	"time"

	"github.com/theirongolddev/pocketguard/internal/model"
)

// AggregateDays totals expenses per local calendar day within [since, until).
// Every day in the range is present so gaps show as zeros. Most recent day first.
func AggregateDays(expenses []model.ExpenseRecord, since, until time.Time) []model.DailySpend {
	dayMap := make(map[string]*model.DailySpend)

	for _, e := range FilterByTime(expenses, since, until) {
		dayKey := e.Timestamp.Local().Format("2006-01-02")
		ds, ok := dayMap[dayKey]
		if !ok {
			t, _ := time.ParseInLocation("2006-01-02", dayKey, time.Local)
			ds = &model.DailySpend{Date: t}
			dayMap[dayKey] = ds
		}

		ds.Count++
		if e.IsEmergency {
			ds.Emergency += e.Amount
		} else {
			ds.Spent += e.Amount
		}
	}

	if !since.IsZero() && !until.IsZero() {
		for day := startOfDay(since); day.Before(until); day = day.AddDate(0, 0, 1) {
			dayKey := day.Format("2006-01-02")
			if _, ok := dayMap[dayKey]; !ok {
				dayMap[dayKey] = &model.DailySpend{Date: day}
			}
		}
	}

	days := make([]model.DailySpend, 0, len(dayMap))
	for _, ds := range dayMap {
		days = append(days, *ds)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.After(days[j].Date)
	})

	return days
}

// AggregateMoods totals regular spending per mood, largest first.
// Emergency expenses are left out: their mood is not self-reported.
func AggregateMoods(expenses []model.ExpenseRecord) []model.MoodSpend {
	moodMap := make(map[model.Mood]*model.MoodSpend)
	for _, e := range expenses {
		if e.IsEmergency {
			continue
		}
		ms, ok := moodMap[e.Mood]
		if !ok {
			ms = &model.MoodSpend{Mood: e.Mood}
			moodMap[e.Mood] = ms
		}
		ms.Spent += e.Amount
		ms.Count++
	}

	moods := make([]model.MoodSpend, 0, len(moodMap))
	for _, ms := range moodMap {
		moods = append(moods, *ms)
	}
	sort.Slice(moods, func(i, j int) bool {
		if moods[i].Spent != moods[j].Spent {
			return moods[i].Spent > moods[j].Spent
		}
		return moods[i].Mood < moods[j].Mood
	})
	return moods
}

// FilterByTime returns expenses whose timestamp falls within [since, until).
// A zero bound is open.
func FilterByTime(expenses []model.ExpenseRecord, since, until time.Time) []model.ExpenseRecord {
	if since.IsZero() && until.IsZero() {
		return expenses
	}

	var result []model.ExpenseRecord
	for _, e := range expenses {
		if !since.IsZero() && e.Timestamp.Before(since) {
			continue
		}
		if !until.IsZero() && !e.Timestamp.Before(until) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// LastDays returns the [since, until) window covering the n local calendar days
// that end with the day containing now.
func LastDays(now time.Time, n int) (since, until time.Time) {
	today := startOfDay(now)
	return today.AddDate(0, 0, 1-n), today.AddDate(0, 0, 1)
}

func startOfDay(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}
