package domain

import "time"

// Application represents an approved Vice President duty slot.
// Timestamps are stored in UTC; the community's local offset is applied
// only for calendar-day computations.
type Application struct {
	ID         int64
	Name       string
	Federation string
	StartTime  time.Time
	EndTime    time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the length of the slot.
func (a *Application) Duration() time.Duration {
	return a.EndTime.Sub(a.StartTime)
}

// Overlaps reports whether the slot intersects the half-open interval
// [start, end). Touching intervals do not overlap.
func (a *Application) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && start.Before(a.EndTime)
}

// ScheduleWindow is the rolling visibility window around "now" used for
// the public schedule.
type ScheduleWindow struct {
	Before time.Duration
	After  time.Duration
}

// Contains reports whether a slot ending at end falls inside the window
// anchored at now: end in (now-Before, now+After].
func (w ScheduleWindow) Contains(now, end time.Time) bool {
	return end.After(now.Add(-w.Before)) && !end.After(now.Add(w.After))
}

// ScheduleFilter bounds a repository read to slots visible in a window.
type ScheduleFilter struct {
	EndsAfter      time.Time // exclusive lower bound on end_time
	EndsAtOrBefore time.Time // inclusive upper bound on end_time
}

// FilterAt converts the window into repository bounds anchored at now.
func (w ScheduleWindow) FilterAt(now time.Time) ScheduleFilter {
	return ScheduleFilter{
		EndsAfter:      now.Add(-w.Before),
		EndsAtOrBefore: now.Add(w.After),
	}
}

// OverlapRange bounds a repository read to slots that could intersect
// the half-open interval [From, To).
type OverlapRange struct {
	From time.Time
	To   time.Time
}

// LocalDayBounds returns the [start, end) bounds of the local calendar day
// containing t, in the given location.
func LocalDayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// SameLocalDay reports whether two instants fall on the same local
// calendar day in the given location.
func SameLocalDay(t1, t2 time.Time, loc *time.Location) bool {
	y1, m1, d1 := t1.In(loc).Date()
	y2, m2, d2 := t2.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
