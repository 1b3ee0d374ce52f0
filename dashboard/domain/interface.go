package domain

import "context"

// Transport is the remote collaborator that owns the containers.
type Transport interface {
	// ListContainers returns the current inventory.
	ListContainers(ctx context.Context) (*Snapshot, error)
	// Exec asks the collaborator to perform verb on the named member of group.
	Exec(ctx context.Context, verb Verb, group, name string) error
}

// CPUSource feeds the cpu widget. Transports that cannot report per-core
// load simply do not implement it.
type CPUSource interface {
	CPUInfo(ctx context.Context) (CPUInfo, error)
	SystemInfo(ctx context.Context) (SystemInfo, error)
}

// Dispatcher forwards an operator action. It never reports failure.
type Dispatcher interface {
	Dispatch(ctx context.Context, verb Verb, name string)
}

type Service interface {
	Dispatcher
	LoadSnapshot(ctx context.Context) *Snapshot
	LoadCPU(ctx context.Context) *CPUReport
}
