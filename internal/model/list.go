// Package model holds the todo item and the named, ordered list of items.
//
// A List is not safe for concurrent use.
package model

import "strings"

const (
	doneListTitle    = "All done"
	pendingListTitle = "Not done"
)

// List is an ordered, named sequence of items. Insertion order is the
// canonical order; equal items may appear more than once.
type List struct {
	title string
	items []*Item
}

// NewList returns an empty list.
func NewList(title string) *List {
	return &List{title: title, items: []*Item{}}
}

func (l *List) Title() string { return l.title }

// Add appends item to the tail. A nil item is rejected with a *TypeError.
func (l *List) Add(item *Item) error {
	if item == nil {
		return &TypeError{Value: item}
	}
	l.items = append(l.items, item)
	return nil
}

// Push is the dynamically typed form of Add: anything other than a non-nil
// *Item fails with a *TypeError and leaves the list untouched.
func (l *List) Push(v any) error {
	item, ok := v.(*Item)
	if !ok {
		return &TypeError{Value: v}
	}
	return l.Add(item)
}

func (l *List) Len() int { return len(l.items) }

// First returns the head item, or nil when the list is empty.
func (l *List) First() *Item {
	if len(l.items) == 0 {
		return nil
	}
	return l.items[0]
}

// Last returns the tail item, or nil when the list is empty.
func (l *List) Last() *Item {
	if len(l.items) == 0 {
		return nil
	}
	return l.items[len(l.items)-1]
}

// Items returns a copy of the sequence. The items themselves are shared.
func (l *List) Items() []*Item {
	out := make([]*Item, len(l.items))
	copy(out, l.items)
	return out
}

// IsDone reports whether every item is done. An empty list is done.
func (l *List) IsDone() bool {
	for _, it := range l.items {
		if !it.Done {
			return false
		}
	}
	return true
}

// Counts returns the number of done and pending items.
func (l *List) Counts() (done, pending int) {
	for _, it := range l.items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func (l *List) check(idx int) error {
	if idx < 0 || idx >= len(l.items) {
		return &IndexError{Index: idx, Size: len(l.items)}
	}
	return nil
}

func (l *List) ItemAt(idx int) (*Item, error) {
	if err := l.check(idx); err != nil {
		return nil, err
	}
	return l.items[idx], nil
}

func (l *List) MarkDoneAt(idx int) error {
	if err := l.check(idx); err != nil {
		return err
	}
	l.items[idx].MarkDone()
	return nil
}

func (l *List) MarkUndoneAt(idx int) error {
	if err := l.check(idx); err != nil {
		return err
	}
	l.items[idx].MarkUndone()
	return nil
}

func (l *List) MarkAllDone() {
	for _, it := range l.items {
		it.MarkDone()
	}
}

func (l *List) MarkAllUndone() {
	for _, it := range l.items {
		it.MarkUndone()
	}
}

// Shift removes and returns the head item. ok is false on an empty list.
func (l *List) Shift() (item *Item, ok bool) {
	if len(l.items) == 0 {
		return nil, false
	}
	item = l.items[0]
	l.items[0] = nil
	l.items = l.items[1:]
	return item, true
}

// Pop removes and returns the tail item. ok is false on an empty list.
func (l *List) Pop() (item *Item, ok bool) {
	n := len(l.items)
	if n == 0 {
		return nil, false
	}
	item = l.items[n-1]
	l.items[n-1] = nil
	l.items = l.items[:n-1]
	return item, true
}

// RemoveAt removes the item at idx, moving later items toward the head.
func (l *List) RemoveAt(idx int) (*Item, error) {
	if err := l.check(idx); err != nil {
		return nil, err
	}
	item := l.items[idx]
	copy(l.items[idx:], l.items[idx+1:])
	l.items[len(l.items)-1] = nil
	l.items = l.items[:len(l.items)-1]
	return item, nil
}

// IndexOf returns the position of item by identity, or -1.
func (l *List) IndexOf(item *Item) int {
	for i, it := range l.items {
		if it == item {
			return i
		}
	}
	return -1
}

// Each calls fn once per item in order and returns l for chaining.
func (l *List) Each(fn func(*Item)) *List {
	for i := 0; i < len(l.items); i++ {
		fn(l.items[i])
	}
	return l
}

// Select returns the items for which keep is true, in order.
func (l *List) Select(keep func(*Item) bool) []*Item {
	var out []*Item
	for _, it := range l.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// FindByTitle returns every item whose title equals title exactly.
// ok is false when nothing matches.
func (l *List) FindByTitle(title string) (items []*Item, ok bool) {
	items = l.Select(func(it *Item) bool { return it.Title == title })
	return items, len(items) > 0
}

// DoneItems returns a list named "All done" holding the done items. The
// returned list shares its items with l.
func (l *List) DoneItems() *List {
	return l.subset(doneListTitle, (*Item).IsDone)
}

// PendingItems returns a list named "Not done" holding the pending items.
// The returned list shares its items with l.
func (l *List) PendingItems() *List {
	return l.subset(pendingListTitle, func(it *Item) bool { return !it.Done })
}

func (l *List) subset(title string, keep func(*Item) bool) *List {
	out := NewList(title)
	if items := l.Select(keep); items != nil {
		out.items = items
	}
	return out
}

// MarkDoneByTitle marks the first pending item titled title as done. It is a
// no-op when there is no such item.
func (l *List) MarkDoneByTitle(title string) {
	for _, it := range l.items {
		if !it.Done && it.Title == title {
			it.MarkDone()
			return
		}
	}
}

// String renders the "---- title ----" header followed by one line per item,
// without a trailing newline.
func (l *List) String() string {
	var b strings.Builder
	b.WriteString("---- " + l.title + " ----\n")
	for i, it := range l.items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(it.String())
	}
	return b.String()
}
