// Package listdoc decodes YAML list documents into a model.List.
//
//	title: Today's Todos
//	items:
//	  - title: Go to gym
//	    done: false
//	    due: 2017-04-15
package listdoc

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/todolist/internal/model"
)

// DefaultTitle names a list whose document has no title.
const DefaultTitle = "Todos"

// DateLayout is the layout of the due field.
const DateLayout = "2006-01-02"

var ErrEmptyTitle = errors.New("empty title")

// Document is the on-the-wire shape of a list.
type Document struct {
	Title string  `yaml:"title"`
	Items []Entry `yaml:"items"`
}

// Entry is one item of a Document.
type Entry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Done        bool   `yaml:"done,omitempty"`
	Due         string `yaml:"due,omitempty"`
}

// Decode reads a single YAML document from r. An empty input yields an empty
// list named DefaultTitle.
func Decode(r io.Reader) (*model.List, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	return doc.List()
}

// List builds a model.List from the document.
func (d Document) List() (*model.List, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = DefaultTitle
	}
	l := model.NewList(title)
	for i, e := range d.Items {
		it, err := e.item()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		if err := l.Add(it); err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	return l, nil
}

func (e Entry) item() (*model.Item, error) {
	title := strings.TrimSpace(e.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	it := model.NewItem(title, e.Description)
	if e.Done {
		it.MarkDone()
	}
	if due := strings.TrimSpace(e.Due); due != "" {
		t, err := time.Parse(DateLayout, due)
		if err != nil {
			return nil, fmt.Errorf("due date %q: %w", due, err)
		}
		it.SetDueDate(t)
	}
	return it, nil
}

// Encode writes l as a YAML document.
func Encode(w io.Writer, l *model.List) error {
	doc := Document{Title: l.Title()}
	l.Each(func(it *model.Item) {
		e := Entry{Title: it.Title, Description: it.Description, Done: it.Done}
		if it.DueDate != nil {
			e.Due = it.DueDate.Format(DateLayout)
		}
		doc.Items = append(doc.Items, e)
	})
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
