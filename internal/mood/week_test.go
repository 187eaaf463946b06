package mood

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(weekday time.Weekday, hour int) time.Time {
	// 2025-06-02 is a Monday.
	base := time.Date(2025, 6, 2, hour, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, (int(weekday)+6)%7)
}

func TestWeekStart(t *testing.T) {
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	for wd := time.Monday; ; wd++ {
		assert.Equal(t, monday, WeekStart(day(wd, 15)), wd.String())
		if wd == time.Saturday {
			break
		}
	}
	assert.Equal(t, monday, WeekStart(day(time.Sunday, 23)))
	assert.Equal(t, monday, WeekStart(monday))
}

func TestBucketWeekEmpty(t *testing.T) {
	assert.Equal(t, [7]int{}, BucketWeek(nil))
}

func TestBucketWeekSingleDay(t *testing.T) {
	week := BucketWeek([]Entry{{Mood: 5, CreatedAt: day(time.Wednesday, 9)}})
	assert.Equal(t, [7]int{0, 0, 5, 0, 0, 0, 0}, week)
}

func TestBucketWeekNewestEntryWinsPerDay(t *testing.T) {
	// Newest first: the 18:00 log shadows the 08:00 one.
	week := BucketWeek([]Entry{
		{Mood: 6, CreatedAt: day(time.Tuesday, 18)},
		{Mood: 2, CreatedAt: day(time.Tuesday, 8)},
	})
	assert.Equal(t, 6, week[1])
}

func TestBucketWeekFullWeek(t *testing.T) {
	var entries []Entry
	for wd := 0; wd < 7; wd++ {
		entries = append(entries, Entry{
			Mood:      wd + 1,
			CreatedAt: time.Date(2025, 6, 2+wd, 12, 0, 0, 0, time.UTC),
		})
	}
	assert.Equal(t, [7]int{1, 2, 3, 4, 5, 6, 7}, BucketWeek(entries))
}
