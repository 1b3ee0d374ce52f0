package domain

import "strings"

// Verb is a lifecycle transition exposed to the operator.
type Verb string

const (
	VerbStart   Verb = "start"
	VerbStop    Verb = "stop"
	VerbRestart Verb = "restart"
)

// ContainerGroup is the fixed group identifier sent with every exec call.
const ContainerGroup = "container"

// ParseVerb returns ErrUnknownVerb for anything but start, stop and restart.
func ParseVerb(s string) (Verb, error) {
	switch v := Verb(strings.ToLower(strings.TrimSpace(s))); v {
	case VerbStart, VerbStop, VerbRestart:
		return v, nil
	default:
		return "", ErrUnknownVerb
	}
}

func (v Verb) String() string {
	return string(v)
}
