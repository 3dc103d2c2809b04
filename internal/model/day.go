package model

import (
	"errors"
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

var ErrInvalidDay = errors.New("model: invalid day")

// Day is a calendar date in YYYY-MM-DD form. The ISO layout makes string
// comparison agree with chronological order.
type Day string

func ParseDay(s string) (Day, error) {
	if _, err := time.Parse(dayLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return Day(s), nil
}

func DayOf(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

// Today returns the current calendar date in the given location. A nil
// location means local time.
func Today(loc *time.Location) Day {
	if loc == nil {
		loc = time.Local
	}
	return DayOf(time.Now().In(loc))
}

func (d Day) Validate() error {
	_, err := ParseDay(string(d))
	return err
}

func (d Day) Time() time.Time {
	t, err := time.Parse(dayLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

func (d Day) Before(other Day) bool {
	return string(d) < string(other)
}

func (d Day) After(other Day) bool {
	return string(d) > string(other)
}

// DaysBetween returns the number of calendar days from a to b. Positive when
// b is later than a.
func DaysBetween(a, b Day) int {
	return int(b.Time().Sub(a.Time()).Hours() / 24)
}

func (d Day) String() string {
	return string(d)
}
