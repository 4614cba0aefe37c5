package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeLayout is the persisted form. Fixed width and always UTC, so string
// comparison in SQL is chronological.
const TimeLayout = "2006-01-02T15:04:05.000Z"

var (
	RangeStart = Timestamp{time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)}
	RangeEnd   = Timestamp{time.Date(2999, 12, 31, 0, 0, 0, 0, time.UTC)}
)

var inputLayouts = []string{
	TimeLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC().Truncate(time.Millisecond)}
}

// ParseTimestamp accepts ISO-8601 forms; inputs without a zone are read as UTC.
func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(t), nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
}

func (t Timestamp) String() string {
	return t.UTC().Format(TimeLayout)
}

func (t Timestamp) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		*t = NewTimestamp(v)
		return nil
	case string:
		ts, err := ParseTimestamp(v)
		if err != nil {
			return err
		}
		*t = ts
		return nil
	case []byte:
		return t.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
}

// DateRange is an inclusive [From, To] window.
type DateRange struct {
	From Timestamp
	To   Timestamp
}

func DefaultRange() DateRange {
	return DateRange{From: RangeStart, To: RangeEnd}
}

// ParseRange fills blank bounds with the open defaults.
func ParseRange(from, to string) (DateRange, error) {
	r := DefaultRange()
	if from != "" {
		ts, err := ParseTimestamp(from)
		if err != nil {
			return r, err
		}
		r.From = ts
	}
	if to != "" {
		ts, err := ParseTimestamp(to)
		if err != nil {
			return r, err
		}
		r.To = ts
	}
	return r, nil
}

// ParseOptionalTimestamp returns nil for a blank string.
func ParseOptionalTimestamp(s string) (*Timestamp, error) {
	if s == "" {
		return nil, nil
	}
	ts, err := ParseTimestamp(s)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
