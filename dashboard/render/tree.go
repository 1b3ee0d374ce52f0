// Package render turns container and cpu snapshots into display trees and
// writes them as HTML tables.
package render

import "context"

// Table is a disposable display tree. A new one is built for every render.
type Table struct {
	Class string
	Rows  []Row
}

type Row struct {
	Class string
	Cells []Cell
}

// Cell is a td, or a th when Header is set.
type Cell struct {
	Header  bool
	Class   string
	Style   string
	Width   string
	Colspan int
	Content []Node
}

type NodeKind string

const (
	KindText    NodeKind = "text"
	KindBold    NodeKind = "bold"
	KindItalic  NodeKind = "italic"
	KindBar     NodeKind = "bar"
	KindSpinner NodeKind = "spinner"
	KindButton  NodeKind = "button"
)

// Node is the content of a cell.
type Node interface {
	Kind() NodeKind
}

type Text struct {
	Text string
}

func (Text) Kind() NodeKind { return KindText }

type Bold struct {
	Class string
	Text  string
}

func (Bold) Kind() NodeKind { return KindBold }

type Italic struct {
	Class string
	Text  string
}

func (Italic) Kind() NodeKind { return KindItalic }

// Spinner is the non-interactive marker shown while an action is in flight.
type Spinner struct {
	Label string
}

func (Spinner) Kind() NodeKind { return KindSpinner }

// Button offers one lifecycle action. Click is bound to the verb and the
// container name the button was rendered for; Path is where the HTML form
// posts the same action.
type Button struct {
	Label string
	Class string
	Path  string
	Click func(ctx context.Context)
}

func (Button) Kind() NodeKind { return KindButton }

// FindButton returns the button whose form posts to path.
func (t *Table) FindButton(path string) (Button, bool) {
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			for _, node := range cell.Content {
				if b, ok := node.(Button); ok && b.Path == path {
					return b, true
				}
			}
		}
	}
	return Button{}, false
}

func textCell(class, style, text string) Cell {
	return Cell{Class: class, Style: style, Content: []Node{Text{Text: text}}}
}
