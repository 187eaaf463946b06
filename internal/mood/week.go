package mood

import "time"

// Entry is a mood log row reduced to what the weekly view needs.
type Entry struct {
	Mood      int
	CreatedAt time.Time
}

// WeekStart returns the Monday of the week containing t, at midnight in t's
// location.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Mon=0 ... Sun=6
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}

// BucketWeek folds a newest-first slice of entries into seven Mon..Sun values.
// The first (most recent) entry per weekday wins; days without a log stay 0.
func BucketWeek(entries []Entry) [7]int {
	var week [7]int
	for _, e := range entries {
		idx := (int(e.CreatedAt.Weekday()) + 6) % 7
		if week[idx] == 0 {
			week[idx] = e.Mood
		}
	}
	return week
}
