package render

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/Gthulhu/podboard/dashboard/domain"
)

const (
	// Columns is the width of the container table.
	Columns = 6

	NoContainersMessage = "This system does not have containers or container management is offline."
	PodlessTitle        = "Podless"
	InfraLabel          = "INFRA"
	BusyLabel           = "Busy"
	NoActionLabel       = "---"

	buttonClass = "btn cbi-button cbi-button-apply important"

	topRowStyle  = "padding-bottom: 2px;"
	rowStyle     = "padding-top: 2px; padding-bottom: 2px; border-top: 0;"
	lastRowStyle = "padding-top: 2px; border-top: 0;"
	indentStyle  = "padding-left: 20px; "
)

// Options tune a container render.
type Options struct {
	// ShowInfra appends the rows of pod-sandbox containers after the pod's
	// regular containers. They are computed either way.
	ShowInfra bool
	// Dispatcher receives button clicks. Buttons carry no Click when nil.
	Dispatcher domain.Dispatcher
	// ActionPath builds the form target of a button. Defaults to
	// /containers/<name>/<verb>.
	ActionPath func(verb domain.Verb, name string) string
}

// DefaultActionPath is the route the REST layer serves container actions on.
func DefaultActionPath(verb domain.Verb, name string) string {
	return "/containers/" + url.PathEscape(name) + "/" + url.PathEscape(verb.String())
}

// Containers lays the snapshot out as grouped table rows. It only reads the
// snapshot.
func Containers(snapshot *domain.Snapshot, opts Options) *Table {
	var pods []domain.Pod
	if snapshot != nil {
		pods = snapshot.Pods
	}
	if len(pods) == 0 {
		return messageTable(NoContainersMessage)
	}
	if opts.ActionPath == nil {
		opts.ActionPath = DefaultActionPath
	}

	table := &Table{Class: "table containers"}
	for i := range pods {
		pod := &pods[i]
		if title, ok := podTitle(pod, len(pods)); ok {
			table.Rows = append(table.Rows, Row{
				Class: "tr table-titles",
				Cells: []Cell{{
					Header:  true,
					Class:   "th",
					Colspan: Columns,
					Content: []Node{Text{Text: title}},
				}},
			})
		}

		var infraRows []Row
		for j := range pod.Containers {
			rows := containerRows(&pod.Containers[j], opts)
			if pod.Containers[j].Infra {
				infraRows = append(infraRows, rows...)
				continue
			}
			table.Rows = append(table.Rows, rows...)
		}
		if opts.ShowInfra {
			table.Rows = append(table.Rows, infraRows...)
		}
	}
	return table
}

// podTitle returns the header text of a pod, or false when the pod is the
// implicit default one.
func podTitle(pod *domain.Pod, podCount int) (string, bool) {
	if pod.Name != "" {
		return pod.Name, true
	}
	if podCount == 1 {
		return "", false
	}
	return PodlessTitle, true
}

// StatusLabel is the human readable state of a container.
func StatusLabel(c *domain.Container) string {
	switch {
	case c.Infra:
		return InfraLabel
	case c.Busy.State:
		return capitalize(c.Busy.Reason)
	default:
		return capitalize(c.State)
	}
}

// UptimeValue formats the uptime cell.
func UptimeValue(u domain.Uptime) string {
	return strconv.Itoa(u.Days) + "d " + strconv.Itoa(u.Hours) + "h " + strconv.Itoa(u.Minutes) + "m"
}

// RAMTitle is the tooltip of the RAM bar.
func RAMTitle(ram domain.RAM) string {
	return fmt.Sprintf("%s / %s (%s%%)", ram.Used, ram.Max, strconv.FormatFloat(ram.Percent, 'f', -1, 64))
}

func containerRows(c *domain.Container, opts Options) []Row {
	resources := c.ShowsResources()
	primary := PrimaryAction(c)
	secondary := SecondaryAction(c, primary)

	first := Row{Class: "tr", Cells: []Cell{
		{
			Class:   "td left",
			Style:   indentStyle + topRowStyle,
			Content: []Node{Bold{Class: "container-name", Text: c.Name}},
		},
		textCell("td left", indentStyle+topRowStyle, StatusLabel(c)),
		textCell("td left", topRowStyle, when(resources, "Uptime")),
		textCell("td right", topRowStyle, when(resources, "RAM:")),
		resourceCell(resources, topRowStyle, c.RAM.Percent, RAMTitle(c.RAM)),
		actionCell(primary, c.Name, topRowStyle, opts),
	}}

	second := Row{Class: "tr", Cells: []Cell{
		{
			Class:   "td left",
			Style:   indentStyle + rowStyle,
			Colspan: 2,
			Content: []Node{Italic{Class: "container-image", Text: c.Image}},
		},
		textCell("td left", rowStyle, when(resources, UptimeValue(c.Uptime))),
		textCell("td right", rowStyle, when(resources, "CPU:")),
		resourceCell(resources, rowStyle, c.CPU.Percent, c.CPU.Load),
		actionCell(secondary, c.Name, rowStyle, opts),
	}}

	cmd := c.Cmd
	if c.Infra {
		cmd = ""
	}
	third := Row{Class: "tr", Cells: []Cell{{
		Class:   "td left",
		Style:   indentStyle + lastRowStyle,
		Colspan: Columns,
		Content: []Node{Text{Text: cmd}},
	}}}

	return []Row{first, second, third}
}

func resourceCell(show bool, style string, percent float64, title string) Cell {
	if !show {
		return textCell("td left", style, "")
	}
	return Cell{Class: "td left", Style: style, Content: []Node{ProgressBar(percent, title)}}
}

func actionCell(kind ActionKind, name, style string, opts Options) Cell {
	cell := Cell{Class: "td right", Style: style}
	switch kind {
	case ActionBusy:
		cell.Content = []Node{Spinner{Label: BusyLabel}}
	case ActionNone:
		cell.Content = []Node{Text{Text: NoActionLabel}}
	case ActionStart, ActionStop, ActionRestart:
		verb, _ := kind.Verb()
		cell.Content = []Node{newButton(verb, name, opts)}
	default:
		cell.Content = []Node{Text{}}
	}
	return cell
}

func newButton(verb domain.Verb, name string, opts Options) Button {
	b := Button{
		Label: capitalize(verb.String()),
		Class: buttonClass,
		Path:  opts.ActionPath(verb, name),
	}
	if d := opts.Dispatcher; d != nil {
		b.Click = func(ctx context.Context) {
			d.Dispatch(ctx, verb, name)
		}
	}
	return b
}

func messageTable(message string) *Table {
	return &Table{
		Class: "table",
		Rows: []Row{{
			Class: "tr",
			Cells: []Cell{{
				Class:   "td left",
				Width:   "100%",
				Content: []Node{Text{Text: message}},
			}},
		}},
	}
}

func when(ok bool, s string) string {
	if ok {
		return s
	}
	return ""
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
