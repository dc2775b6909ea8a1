package model

import (
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidWindow = errors.New("invalid cost query window")

// CostQueryWindow is the [Start, End) date range of a cost query, with daily granularity
type CostQueryWindow struct {
	Start time.Time
	End   time.Time
}

// NewWindow returns the window covering the given number of days up to, but excluding, the day of now.
// days=1 is yesterday, days=7 is the last seven days through yesterday.
func NewWindow(now time.Time, days int) CostQueryWindow {
	end := TruncateDay(now)
	return CostQueryWindow{
		Start: end.AddDate(0, 0, -days),
		End:   end,
	}
}

// TruncateDay returns midnight UTC of the day t falls on, in UTC
func TruncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (w CostQueryWindow) Validate() error {
	if !w.Start.Before(w.End) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidWindow, w.StartString(), w.EndString())
	}
	return nil
}

func (w CostQueryWindow) StartString() string {
	return w.Start.Format(DateLayout)
}

func (w CostQueryWindow) EndString() string {
	return w.End.Format(DateLayout)
}

// LastDay is the last date included in the window
func (w CostQueryWindow) LastDay() time.Time {
	return w.End.AddDate(0, 0, -1)
}

// Days lists every date of the window in chronological order
func (w CostQueryWindow) Days() []time.Time {
	var days []time.Time
	for d := TruncateDay(w.Start); d.Before(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether the date of t is inside the window
func (w CostQueryWindow) Contains(t time.Time) bool {
	d := TruncateDay(t)
	return !d.Before(TruncateDay(w.Start)) && d.Before(w.End)
}
