package ui

import (
	"fmt"

	"github.com/Makepad-fr/todolist/internal/model"
)

const maxTitleWidth = 80

// Header returns the list title with done/pending/total counts.
func Header(l *model.List) string {
	d, p := l.Counts()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		C(Current().Title, l.Title()),
		C(Current().Success, Current().SymDone), d,
		C(Current().Pending, Current().SymUnchecked), p,
		C(Current().Accent, "Total"), l.Len(),
	)
}

// ListLines builds the panel body for l: header, progress bar, then either
// every item in order or pending and done sections.
func ListLines(l *model.List, group bool) []string {
	d, p := l.Counts()
	lines := []string{
		Header(l),
		C(Current().Muted, ProgressBar(d, d+p, 28)),
		"",
	}
	if group {
		lines = append(lines, groupLines(l)...)
	} else {
		lines = append(lines, flatLines(l)...)
	}
	return lines
}

func flatLines(l *model.List) []string {
	if l.Len() == 0 {
		return []string{C(Current().Muted, "no items")}
	}
	out := make([]string, 0, l.Len())
	i := 0
	l.Each(func(it *model.Item) {
		i++
		out = append(out, itemLine(i, it))
	})
	return out
}

func itemLine(n int, it *model.Item) string {
	box, color := Current().BoxUnchecked, Current().Muted
	if it.Done {
		box, color = Current().BoxChecked, Current().Success
	}
	title := it.Title
	if r := []rune(title); len(r) > maxTitleWidth {
		title = string(r[:maxTitleWidth-3]) + "..."
	}
	line := fmt.Sprintf("%s %s %s", C(dim, fmt.Sprintf("%2d.", n)), C(color, box), title)
	if it.DueDate != nil {
		line += " " + C(Current().Accent, "(Due: "+it.DueDate.Format("Monday January 2")+")")
	}
	return line
}

func groupLines(l *model.List) []string {
	var lines []string
	for _, sub := range []*model.List{l.PendingItems(), l.DoneItems()} {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, C(Current().Accent, sub.Title()))
		if sub.Len() == 0 {
			lines = append(lines, C(Current().Muted, "(none)"))
			continue
		}
		lines = append(lines, flatLines(sub)...)
	}
	return lines
}
