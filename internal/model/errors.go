package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotItem is returned when a value that is not a *Item is added to a List.
	ErrNotItem = errors.New("can only add todo items")
	// ErrIndexOutOfRange is returned by index-based operations given a bad index.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// TypeError reports the value that was rejected by List.Push.
type TypeError struct {
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: got %T", ErrNotItem, e.Value)
}

// Unwrap returns ErrNotItem.
func (e *TypeError) Unwrap() error {
	return ErrNotItem
}

// IndexError carries the offending index and the list size at the time of the call.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: have %d, got %d", e.Size, e.Index)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
