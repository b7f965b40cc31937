package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/todolist/internal/model"
	"github.com/Makepad-fr/todolist/internal/tui"
)

func (a *app) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [title...]",
		Short: "Edit a fresh list interactively; nothing is saved",
		Long: `Starts an interactive session over a new list seeded with the given titles.
Keys: space toggle, a add, d remove, A/U mark all done/undone, tab switch view, q quit.
The final list is printed when the session ends.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := model.NewList(a.cfg.Title)
			for _, title := range args {
				title = strings.TrimSpace(title)
				if title == "" {
					return usagef("tui: empty title")
				}
				if err := l.Add(model.NewItem(title, "")); err != nil {
					return err
				}
			}
			if err := tui.Run(l); err != nil {
				return err
			}
			a.log.Debug("session ended", "items", l.Len())
			a.show(l)
			return nil
		},
	}
}
