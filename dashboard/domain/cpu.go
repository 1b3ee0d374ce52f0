package domain

// MaxCPUCores is the highest per-core index the cpu widget looks for.
const MaxCPUCores = 16

// CPUInfo carries the `system.cpu list` reply: "cpu" is the total load and
// "cpu0".."cpu15" the per-core loads. Absent keys mean the core does not exist.
type CPUInfo map[string]float64

// SystemInfo is the subset of `system.info list` the cpu widget reads.
type SystemInfo struct {
	SystembusLoaded bool `json:"systembus_loaded"`
}

// CPUReport is the normalised input of the cpu widget.
type CPUReport struct {
	CPU    CPUInfo
	System SystemInfo
}
