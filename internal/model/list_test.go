package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newABC(t *testing.T) (*List, *Item, *Item, *Item) {
	t.Helper()
	a, b, c := NewItem("A", ""), NewItem("B", ""), NewItem("C", "")
	l := NewList("Letters")
	for _, it := range []*Item{a, b, c} {
		require.NoError(t, l.Add(it))
	}
	return l, a, b, c
}

func TestListAdd(t *testing.T) {
	l := NewList("Today")
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.First())
	assert.Nil(t, l.Last())

	first := NewItem("Buy milk", "")
	require.NoError(t, l.Add(first))
	second := NewItem("Buy milk", "")
	require.NoError(t, l.Add(second))

	assert.Equal(t, 2, l.Len())
	assert.Same(t, first, l.First())
	assert.Same(t, second, l.Last())
}

func TestListRejectsNonItems(t *testing.T) {
	l, _, _, _ := newABC(t)

	for _, v := range []any{42, "Buy milk", Item{Title: "value not pointer"}, (*Item)(nil), nil} {
		err := l.Push(v)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotItem)

		var te *TypeError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, v, te.Value)
	}

	assert.ErrorIs(t, l.Add(nil), ErrNotItem)
	assert.Equal(t, 3, l.Len())
	for _, it := range l.Items() {
		assert.NotNil(t, it)
	}
}

func TestListPush(t *testing.T) {
	l := NewList("Today")
	it := NewItem("Buy milk", "")
	require.NoError(t, l.Push(it))
	assert.Same(t, it, l.Last())
}

func TestListItemAt(t *testing.T) {
	l, a, _, c := newABC(t)

	got, err := l.ItemAt(0)
	require.NoError(t, err)
	assert.Same(t, a, got)

	got, err = l.ItemAt(l.Len() - 1)
	require.NoError(t, err)
	assert.Same(t, c, got)

	for _, idx := range []int{l.Len(), 100, -1} {
		_, err := l.ItemAt(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", idx)

		var ie *IndexError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, idx, ie.Index)
		assert.Equal(t, 3, ie.Size)
	}

	_, err = NewList("empty").ItemAt(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestListMarkAt(t *testing.T) {
	l, a, b, c := newABC(t)

	require.NoError(t, l.MarkDoneAt(1))
	assert.False(t, a.Done)
	assert.True(t, b.Done)
	assert.False(t, c.Done)

	require.NoError(t, l.MarkUndoneAt(1))
	assert.False(t, a.Done)
	assert.False(t, b.Done)
	assert.False(t, c.Done)

	assert.ErrorIs(t, l.MarkDoneAt(3), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.MarkUndoneAt(-1), ErrIndexOutOfRange)
	assert.False(t, l.IsDone())
}

func TestListMarkAll(t *testing.T) {
	empty := NewList("empty")
	assert.True(t, empty.IsDone())
	empty.MarkAllDone()
	assert.True(t, empty.IsDone())

	l, _, _, _ := newABC(t)
	assert.False(t, l.IsDone())

	l.MarkAllDone()
	assert.True(t, l.IsDone())
	done, pending := l.Counts()
	assert.Equal(t, 3, done)
	assert.Equal(t, 0, pending)

	l.MarkAllUndone()
	l.Each(func(it *Item) { assert.False(t, it.Done) })
}

func TestListShiftPop(t *testing.T) {
	l, a, b, c := newABC(t)

	got, ok := l.Shift()
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.Equal(t, []*Item{b, c}, l.Items())

	l, a, b, c = newABC(t)
	got, ok = l.Pop()
	require.True(t, ok)
	assert.Same(t, c, got)
	assert.Equal(t, []*Item{a, b}, l.Items())

	empty := NewList("empty")
	got, ok = empty.Shift()
	assert.False(t, ok)
	assert.Nil(t, got)
	got, ok = empty.Pop()
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestListRemoveAt(t *testing.T) {
	l, a, b, c := newABC(t)

	_, err := l.RemoveAt(100)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, []*Item{a, b, c}, l.Items())

	got, err := l.RemoveAt(0)
	require.NoError(t, err)
	assert.Same(t, a, got)
	assert.Equal(t, []*Item{b, c}, l.Items())

	got, err = l.RemoveAt(1)
	require.NoError(t, err)
	assert.Same(t, c, got)
	assert.Equal(t, []*Item{b}, l.Items())
}

func TestListItemsIsACopy(t *testing.T) {
	l, a, _, _ := newABC(t)

	items := l.Items()
	items[0] = nil

	assert.Equal(t, 3, l.Len())
	assert.Same(t, a, l.First())

	l.Items()[0].MarkDone()
	assert.True(t, a.Done, "items are shared")
}

func TestListEachAndSelect(t *testing.T) {
	l, a, b, c := newABC(t)
	require.NoError(t, l.MarkDoneAt(1))
	require.NoError(t, l.MarkDoneAt(2))

	var visited []*Item
	ret := l.Each(func(it *Item) { visited = append(visited, it) })
	assert.Same(t, l, ret)
	assert.Equal(t, []*Item{a, b, c}, visited)

	calls := 0
	selected := l.Select(func(it *Item) bool {
		calls++
		return it.IsDone()
	})
	assert.Equal(t, 3, calls)
	assert.Equal(t, []*Item{b, c}, selected)
	assert.Equal(t, 3, l.Len())
}

func TestListFindByTitle(t *testing.T) {
	l, a, _, _ := newABC(t)
	dup := NewItem("A", "second")
	require.NoError(t, l.Add(dup))

	found, ok := l.FindByTitle("A")
	require.True(t, ok)
	assert.Equal(t, []*Item{a, dup}, found)

	found, ok = l.FindByTitle("a")
	assert.False(t, ok)
	assert.Empty(t, found)
}

func TestListSubsetsShareItems(t *testing.T) {
	l, a, b, c := newABC(t)
	require.NoError(t, l.MarkDoneAt(0))
	require.NoError(t, l.MarkDoneAt(2))

	done := l.DoneItems()
	assert.Equal(t, "All done", done.Title())
	assert.Equal(t, []*Item{a, c}, done.Items())

	pending := l.PendingItems()
	assert.Equal(t, "Not done", pending.Title())
	assert.Equal(t, []*Item{b}, pending.Items())

	pending.MarkAllDone()
	assert.True(t, b.Done)
	assert.True(t, l.IsDone())

	assert.Equal(t, 0, NewList("empty").DoneItems().Len())
	assert.NotNil(t, NewList("empty").PendingItems().Items())
}

func TestListMarkDoneByTitle(t *testing.T) {
	l := NewList("Today")
	first, second := NewItem("Walk dog", ""), NewItem("Walk dog", "")
	require.NoError(t, l.Add(first))
	require.NoError(t, l.Add(second))

	l.MarkDoneByTitle("Walk dog")
	assert.True(t, first.Done)
	assert.False(t, second.Done)

	l.MarkDoneByTitle("Walk dog")
	assert.True(t, second.Done)

	l.MarkDoneByTitle("Nope")
	assert.True(t, l.IsDone())
}

func TestListIndexOf(t *testing.T) {
	l, _, b, _ := newABC(t)
	assert.Equal(t, 1, l.IndexOf(b))
	assert.Equal(t, -1, l.IndexOf(NewItem("B", "")))
}

func TestListString(t *testing.T) {
	l := NewList("Today's Todos")
	milk := NewItem("Buy milk", "")
	room := NewItem("Clean room", "")
	gym := NewItem("Go to gym", "")
	gym.SetDueDate(time.Date(2017, time.April, 15, 0, 0, 0, 0, time.UTC))
	for _, it := range []*Item{milk, room, gym} {
		require.NoError(t, l.Add(it))
	}
	room.MarkDone()

	want := "---- Today's Todos ----\n" +
		"[ ] Buy milk\n" +
		"[X] Clean room\n" +
		"[ ] Go to gym (Due: Saturday April 15)"
	assert.Equal(t, want, l.String())

	assert.Equal(t, "---- Empty ----\n", NewList("Empty").String())
}

func TestListAcceptsEmptyTitles(t *testing.T) {
	l := NewList("Today")
	require.NoError(t, l.Add(NewItem("", "")))
	assert.Equal(t, "---- Today ----\n[ ] ", l.String())
}
