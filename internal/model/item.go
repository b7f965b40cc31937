package model

import (
	"fmt"
	"time"
)

const (
	doneMarker   = "X"
	undoneMarker = " "

	// dueLayout spells out weekday and month, day without padding: "Saturday April 15".
	dueLayout = "Monday January 2"
)

// Item is the domain model for a todo entry.
type Item struct {
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Done        bool       `json:"done" yaml:"done"`
	DueDate     *time.Time `json:"due_date,omitempty" yaml:"due_date,omitempty"`
}

// NewItem returns a pending item with no due date.
func NewItem(title, description string) *Item {
	return &Item{Title: title, Description: description}
}

func (it *Item) MarkDone()    { it.Done = true }
func (it *Item) MarkUndone()  { it.Done = false }
func (it *Item) IsDone() bool { return it.Done }

// SetDueDate stores the calendar date of t; the time of day is dropped.
func (it *Item) SetDueDate(t time.Time) {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	it.DueDate = &d
}

func (it *Item) ClearDueDate() { it.DueDate = nil }

// Equal compares title, description and done flag. The due date is not part
// of an item's equality.
func (it *Item) Equal(other *Item) bool {
	if it == nil || other == nil {
		return it == other
	}
	return it.Title == other.Title &&
		it.Description == other.Description &&
		it.Done == other.Done
}

// String renders "[X] title" or "[ ] title", with a " (Due: Saturday April 15)"
// suffix when a due date is set.
func (it *Item) String() string {
	marker := undoneMarker
	if it.Done {
		marker = doneMarker
	}
	s := fmt.Sprintf("[%s] %s", marker, it.Title)
	if it.DueDate != nil {
		s += " (Due: " + it.DueDate.Format(dueLayout) + ")"
	}
	return s
}
