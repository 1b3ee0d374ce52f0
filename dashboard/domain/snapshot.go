package domain

// Snapshot is the pod/container inventory produced for one refresh cycle.
type Snapshot struct {
	Pods []Pod `json:"pods"`
}

// EmptySnapshot is what the loader hands to the renderer when the inventory
// could not be fetched.
func EmptySnapshot() *Snapshot {
	return &Snapshot{Pods: []Pod{}}
}

// Pod groups containers sharing a sandbox. An empty name means no pod.
type Pod struct {
	Name       string      `json:"name"`
	Containers []Container `json:"containers"`
}

type Container struct {
	Name    string  `json:"name"`
	Image   string  `json:"image"`
	Cmd     string  `json:"cmd"`
	Infra   bool    `json:"infra"`
	Running bool    `json:"running"`
	State   string  `json:"state"`
	Busy    Busy    `json:"busy"`
	Actions Actions `json:"actions"`
	RAM     RAM     `json:"ram"`
	CPU     CPU     `json:"cpu"`
	Uptime  Uptime  `json:"uptime"`
}

// ShowsResources reports whether ram, cpu and uptime carry meaningful values.
func (c *Container) ShowsResources() bool {
	return c.Running && !c.Busy.State
}

// Busy is set while a lifecycle action is in flight.
type Busy struct {
	State  bool   `json:"state"`
	Reason string `json:"reason"`
}

// Actions lists the lifecycle transitions currently legal for a container.
type Actions struct {
	Start   bool `json:"start"`
	Stop    bool `json:"stop"`
	Restart bool `json:"restart"`
}

type RAM struct {
	Used    string  `json:"used"`
	Max     string  `json:"max"`
	Percent float64 `json:"percent"`
}

type CPU struct {
	Load    string  `json:"load"`
	Percent float64 `json:"percent"`
}

type Uptime struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}
