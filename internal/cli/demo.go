package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/todolist/internal/model"
)

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Render the sample \"Today's Todos\" list",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := demoList()
			if err != nil {
				return err
			}
			a.log.Debug("built demo list", "items", l.Len())
			a.show(l)
			return nil
		},
	}
}

func demoList() (*model.List, error) {
	l := model.NewList("Today's Todos")
	for _, title := range []string{"Buy milk", "Clean room", "Go to gym", "Study for exam", "Take dog for walk"} {
		if err := l.Add(model.NewItem(title, "")); err != nil {
			return nil, err
		}
	}
	l.MarkDoneByTitle("Clean room")
	if gym, ok := l.FindByTitle("Go to gym"); ok {
		gym[0].SetDueDate(time.Date(2017, time.April, 15, 0, 0, 0, 0, time.UTC))
	}
	return l, nil
}
