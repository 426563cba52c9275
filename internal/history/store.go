// Package history models the append-only log of past interactions that the
// preference analyzer mines.
package history

import (
	"fmt"
	"strings"
	"time"
)

// Kind distinguishes what an entry recorded: a free-form query or a
// confirmed restaurant/category selection.
type Kind string

const (
	KindQuery     Kind = "query"
	KindSelection Kind = "selection"
)

// Entry is one immutable record of a past interaction.
type Entry struct {
	ID             string       `json:"id"`
	Weekday        time.Weekday `json:"-"`
	RawText        string       `json:"text"`
	Timestamp      int64        `json:"timestamp"`
	Kind           Kind         `json:"kind"`
	Category       string       `json:"category,omitempty"`
	RestaurantName string       `json:"restaurantName,omitempty"`
}

// Store is the contract every history backend must satisfy. Implementations
// must serialize concurrent appends; ReadAll never mutates the log.
type Store interface {
	// Append writes one entry to the log, assigning an id if missing.
	Append(e Entry) error

	// ReadAll returns entries, optionally filtered to one weekday.
	ReadAll(weekday *time.Weekday) ([]Entry, error)
}

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// ParseWeekday maps a weekday name ("Friday", "fri") to time.Weekday.
func ParseWeekday(s string) (time.Weekday, error) {
	if d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return time.Sunday, fmt.Errorf("invalid weekday %q", s)
}
