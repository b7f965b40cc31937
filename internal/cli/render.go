package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/todolist/internal/listdoc"
	"github.com/Makepad-fr/todolist/internal/model"
	"github.com/Makepad-fr/todolist/internal/ui"
)

// renderOptions are applied in field order.
type renderOptions struct {
	completeAll bool
	reset       bool
	doneAt      []int
	undoneAt    []int
	complete    []string
	remove      []int
	shift       bool
	pop         bool

	only   string
	find   string
	output string
}

func (a *app) renderCmd() *cobra.Command {
	var opt renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Read a YAML list from stdin, apply edits and print it",
		Example: `  printf 'title: Chores\nitems:\n  - title: Buy milk\n' | todolist render --plain
  todolist render --complete "Buy milk" --only pending < today.yaml`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := listdoc.Decode(a.in)
			if err != nil {
				return fmt.Errorf("read list: %w", err)
			}
			a.log.Debug("decoded list", "title", l.Title(), "items", l.Len())

			if err := a.apply(l, opt); err != nil {
				return err
			}
			view, err := a.selectView(l, opt)
			if err != nil {
				return err
			}
			switch opt.output {
			case "yaml":
				if err := listdoc.Encode(a.out, view); err != nil {
					return err
				}
				ui.OK(a.errOut, fmt.Sprintf("encoded %d items", view.Len()))
				return nil
			case "text":
				a.show(view)
				return nil
			default:
				return usagef("render: unknown output %q", opt.output)
			}
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opt.completeAll, "complete-all", false, "mark every item done")
	f.BoolVar(&opt.reset, "reset", false, "mark every item not done")
	f.IntSliceVar(&opt.doneAt, "done-at", nil, "mark the item at 1-based `index` done")
	f.IntSliceVar(&opt.undoneAt, "undone-at", nil, "mark the item at 1-based `index` not done")
	f.StringArrayVar(&opt.complete, "complete", nil, "mark the first pending item with this `title` done")
	f.IntSliceVar(&opt.remove, "remove", nil, "remove the item at 1-based `index`")
	f.BoolVar(&opt.shift, "shift", false, "remove the first item")
	f.BoolVar(&opt.pop, "pop", false, "remove the last item")
	f.StringVar(&opt.only, "only", "", "show only done or pending items")
	f.StringVar(&opt.find, "find", "", "show only items with this exact `title`")
	f.StringVar(&opt.output, "output", "text", "output format: text or yaml")
	return cmd
}

func (a *app) apply(l *model.List, opt renderOptions) error {
	if opt.completeAll {
		l.MarkAllDone()
	}
	if opt.reset {
		l.MarkAllUndone()
	}
	for _, n := range opt.doneAt {
		if err := l.MarkDoneAt(n - 1); err != nil {
			return fmt.Errorf("done-at %d: %w", n, err)
		}
	}
	for _, n := range opt.undoneAt {
		if err := l.MarkUndoneAt(n - 1); err != nil {
			return fmt.Errorf("undone-at %d: %w", n, err)
		}
	}
	for _, title := range opt.complete {
		l.MarkDoneByTitle(title)
	}
	for _, n := range opt.remove {
		it, err := l.RemoveAt(n - 1)
		if err != nil {
			return fmt.Errorf("remove %d: %w", n, err)
		}
		a.log.Info("removed", "item", it.Title)
	}
	if opt.shift {
		if it, ok := l.Shift(); ok {
			a.log.Info("shifted", "item", it.Title)
		} else {
			a.log.Warn("shift on empty list")
		}
	}
	if opt.pop {
		if it, ok := l.Pop(); ok {
			a.log.Info("popped", "item", it.Title)
		} else {
			a.log.Warn("pop on empty list")
		}
	}
	return nil
}

func (a *app) selectView(l *model.List, opt renderOptions) (*model.List, error) {
	view := l
	switch opt.only {
	case "":
	case "done":
		view = l.DoneItems()
	case "pending":
		view = l.PendingItems()
	default:
		return nil, usagef("render: --only must be done or pending, got %q", opt.only)
	}

	if opt.find == "" {
		return view, nil
	}
	found, ok := view.FindByTitle(opt.find)
	if !ok {
		return nil, fmt.Errorf("no item titled %q", opt.find)
	}
	out := model.NewList(view.Title())
	for _, it := range found {
		if err := out.Add(it); err != nil {
			return nil, err
		}
	}
	return out, nil
}
