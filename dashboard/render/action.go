package render

import "github.com/Gthulhu/podboard/dashboard/domain"

// ActionKind is the single thing an action cell may hold.
type ActionKind int

const (
	// ActionEmpty is a blank cell.
	ActionEmpty ActionKind = iota
	// ActionNone is the "---" placeholder for a container with no legal action.
	ActionNone
	ActionBusy
	ActionStart
	ActionStop
	ActionRestart
)

var actionNames = map[ActionKind]string{
	ActionEmpty:   "empty",
	ActionNone:    "none",
	ActionBusy:    "busy",
	ActionStart:   "start",
	ActionStop:    "stop",
	ActionRestart: "restart",
}

func (k ActionKind) String() string {
	return actionNames[k]
}

// Verb returns the lifecycle verb bound to a button kind.
func (k ActionKind) Verb() (domain.Verb, bool) {
	switch k {
	case ActionStart:
		return domain.VerbStart, true
	case ActionStop:
		return domain.VerbStop, true
	case ActionRestart:
		return domain.VerbRestart, true
	}
	return "", false
}

// PrimaryAction picks the action of the first container row. The order is
// fixed: infra, busy, start, stop, restart, then the placeholder.
func PrimaryAction(c *domain.Container) ActionKind {
	switch {
	case c.Infra:
		return ActionEmpty
	case c.Busy.State:
		return ActionBusy
	case c.Actions.Start:
		return ActionStart
	case c.Actions.Stop:
		return ActionStop
	case c.Actions.Restart:
		return ActionRestart
	default:
		return ActionNone
	}
}

// SecondaryAction picks the action of the second row. Restart lands here
// only when the first row did not already offer it.
func SecondaryAction(c *domain.Container, primary ActionKind) ActionKind {
	switch {
	case c.Infra:
		return ActionEmpty
	case c.Busy.State:
		return ActionBusy
	case c.Actions.Restart && primary != ActionRestart:
		return ActionRestart
	default:
		return ActionEmpty
	}
}
