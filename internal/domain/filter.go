package domain

import (
	"fmt"
	"time"
)

type FilterType string

const (
	FilterDate     FilterType = "date"
	FilterCategory FilterType = "category"
	FilterTag      FilterType = "tag"
	FilterStarred  FilterType = "starred"
)

// Filter selects which articles the session shows.
type Filter struct {
	Type  FilterType `json:"type"`
	Value string     `json:"value"`
}

const DateLayout = "2006-01-02"

func DateFilter(date string) Filter    { return Filter{Type: FilterDate, Value: date} }
func CategoryFilter(name string) Filter { return Filter{Type: FilterCategory, Value: name} }
func TagFilter(name string) Filter      { return Filter{Type: FilterTag, Value: name} }
func StarredFilter() Filter             { return Filter{Type: FilterStarred, Value: "true"} }

func (f Filter) IsZero() bool {
	return f == Filter{}
}

func (f Filter) Validate() error {
	switch f.Type {
	case FilterDate:
		if _, err := time.Parse(DateLayout, f.Value); err != nil {
			return fmt.Errorf("%w: date filter value %q is not YYYY-MM-DD", ErrValidation, f.Value)
		}
	case FilterCategory, FilterTag:
		if f.Value == "" {
			return fmt.Errorf("%w: %s filter requires a name", ErrValidation, f.Type)
		}
	case FilterStarred:
	default:
		return fmt.Errorf("%w: unknown filter type %q", ErrValidation, f.Type)
	}
	return nil
}

type TimeSlot string

const (
	SlotAll       TimeSlot = ""
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// Shanghai is UTC+8 without DST; a fixed zone keeps tzdata out of the binary.
var Shanghai = time.FixedZone("UTC+8", 8*60*60)

func ParseTimeSlot(s string) (TimeSlot, error) {
	switch slot := TimeSlot(s); slot {
	case SlotAll, SlotMorning, SlotAfternoon, SlotEvening:
		return slot, nil
	default:
		return "", fmt.Errorf("%w: unknown time slot %q", ErrValidation, s)
	}
}

// Window returns the inclusive [start, end] bounds of the slot on the given
// Shanghai calendar date.
func (s TimeSlot) Window(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, Shanghai)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: parse date %q: %v", ErrValidation, date, err)
	}

	var fromHour, toHour int
	switch s {
	case SlotMorning:
		fromHour, toHour = 0, 12
	case SlotAfternoon:
		fromHour, toHour = 12, 18
	case SlotEvening:
		fromHour, toHour = 18, 24
	case SlotAll:
		fromHour, toHour = 0, 24
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown time slot %q", ErrValidation, s)
	}

	start := day.Add(time.Duration(fromHour) * time.Hour)
	end := day.Add(time.Duration(toHour)*time.Hour - time.Millisecond)
	return start, end, nil
}
