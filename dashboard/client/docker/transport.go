// Package docker reads the inventory from a Docker Engine compatible API,
// which covers both dockerd and the podman system service.
package docker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/Gthulhu/podboard/config"
	"github.com/Gthulhu/podboard/dashboard/domain"
	"github.com/Gthulhu/podboard/pkg/logger"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

const (
	// ComposeProjectLabel groups compose services when no pod label is set.
	ComposeProjectLabel = "com.docker.compose.project"

	prevCPUTTL = 5 * time.Minute
)

var _ domain.Transport = (*Transport)(nil)

type cpuPrev struct {
	containerCPU uint64
	systemCPU    uint64
}

func NewTransport(cfg config.DockerConfig) (*Transport, error) {
	c, err := client.NewClientWithOpts(
		client.WithHost(dockerHost(cfg.Socket)),
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, errors.WithMessage(err, "docker client")
	}
	return newTransport(c, cfg), nil
}

func newTransport(c *client.Client, cfg config.DockerConfig) *Transport {
	return &Transport{
		client:     c,
		podLabel:   cfg.PodLabel,
		infraLabel: cfg.InfraLabel,
		prevCPU:    cache.New[string, cpuPrev](),
		now:        time.Now,
	}
}

// Transport maps engine containers onto pods. Containers sharing the pod
// label value form one pod; the rest land in the unnamed pod.
type Transport struct {
	client     *client.Client
	podLabel   string
	infraLabel string

	// Previous CPU counters per container for delta calculation.
	prevCPU *cache.Cache[string, cpuPrev]
	now     func() time.Time
}

func (t *Transport) Close() error {
	return t.client.Close()
}

func (t *Transport) ListContainers(ctx context.Context) (*domain.Snapshot, error) {
	containers, err := t.client.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, errors.WithMessage(err, "container list")
	}

	byPod := map[string][]domain.Container{}
	for _, summary := range containers {
		c := t.toContainer(ctx, summary)
		pod := t.podName(summary.Labels)
		byPod[pod] = append(byPod[pod], c)
	}

	names := make([]string, 0, len(byPod))
	for name := range byPod {
		names = append(names, name)
	}
	sort.Strings(names)

	snapshot := &domain.Snapshot{Pods: make([]domain.Pod, 0, len(names))}
	for _, name := range names {
		members := byPod[name]
		sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
		snapshot.Pods = append(snapshot.Pods, domain.Pod{Name: name, Containers: members})
	}
	return snapshot, nil
}

func (t *Transport) Exec(ctx context.Context, verb domain.Verb, group, name string) error {
	if group != domain.ContainerGroup {
		return errors.WithMessagef(domain.ErrActionUnsupported, "group %q", group)
	}
	var err error
	switch verb {
	case domain.VerbStart:
		err = t.client.ContainerStart(ctx, name, container.StartOptions{})
	case domain.VerbStop:
		err = t.client.ContainerStop(ctx, name, container.StopOptions{})
	case domain.VerbRestart:
		err = t.client.ContainerRestart(ctx, name, container.StopOptions{})
	default:
		return errors.WithMessagef(domain.ErrUnknownVerb, "%q", verb)
	}
	return errors.WithMessagef(err, "container %s %s", verb, name)
}

func (t *Transport) podName(labels map[string]string) string {
	if t.podLabel != "" {
		if name := labels[t.podLabel]; name != "" {
			return name
		}
	}
	return labels[ComposeProjectLabel]
}

func (t *Transport) toContainer(ctx context.Context, summary container.Summary) domain.Container {
	running := summary.State == "running"
	c := domain.Container{
		Name:    containerName(summary.Names),
		Image:   summary.Image,
		Cmd:     summary.Command,
		Infra:   t.infraLabel != "" && summary.Labels[t.infraLabel] == "true",
		Running: running,
		State:   summary.State,
		Busy:    busyFor(summary.State),
		Actions: domain.Actions{Start: !running, Stop: running, Restart: running},
	}
	if !running {
		return c
	}

	inspect, err := t.client.ContainerInspect(ctx, summary.ID)
	if err != nil {
		logger.Logger(ctx).Warn().Err(err).Str("container", c.Name).Msg("failed to inspect container")
	} else if inspect.ContainerJSONBase != nil && inspect.State != nil {
		c.Uptime = uptimeSince(inspect.State.StartedAt, t.now())
	}

	stats, err := t.containerStats(ctx, summary.ID)
	if err != nil {
		logger.Logger(ctx).Warn().Err(err).Str("container", c.Name).Msg("failed to get container stats")
		return c
	}
	usage, limit, memPct := memoryUsage(stats.MemoryStats)
	cpuPct := t.calcCPUPercent(summary.ID, stats)
	c.RAM = domain.RAM{
		Used:    humanize.IBytes(usage),
		Max:     humanize.IBytes(limit),
		Percent: round2(memPct),
	}
	c.CPU = domain.CPU{
		Load:    fmt.Sprintf("%.2f%%", cpuPct),
		Percent: round2(cpuPct),
	}
	return c
}

func (t *Transport) containerStats(ctx context.Context, id string) (*container.StatsResponse, error) {
	resp, err := t.client.ContainerStatsOneShot(ctx, id)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var stats container.StatsResponse
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// calcCPUPercent turns the container's cumulative counters into a load figure.
// The reading is taken against the one this transport saw on the previous
// refresh; the engine's own precpu block only seeds the first refresh.
func (t *Transport) calcCPUPercent(id string, stats *container.StatsResponse) float64 {
	cur := cpuPrev{
		containerCPU: stats.CPUStats.CPUUsage.TotalUsage,
		systemCPU:    stats.CPUStats.SystemUsage,
	}
	prev, ok := t.prevCPU.Get(id)
	if !ok {
		prev = cpuPrev{
			containerCPU: stats.PreCPUStats.CPUUsage.TotalUsage,
			systemCPU:    stats.PreCPUStats.SystemUsage,
		}
	}
	t.prevCPU.Set(id, cur, cache.WithExpiration(prevCPUTTL))
	return cpuLoad(prev, cur, stats.CPUStats.OnlineCPUs)
}

// cpuLoad scales the container's share of system time by the online CPUs,
// so a container saturating two cores reads 200. A restarted container
// resets its counters and reads 0 for that refresh.
func cpuLoad(prev, cur cpuPrev, onlineCPUs uint32) float64 {
	if cur.containerCPU <= prev.containerCPU || cur.systemCPU <= prev.systemCPU {
		return 0
	}
	cpus := max(float64(onlineCPUs), 1)
	used := float64(cur.containerCPU - prev.containerCPU)
	elapsed := float64(cur.systemCPU - prev.systemCPU)
	return used / elapsed * cpus * 100
}

// memoryUsage reports the working set: page cache that the kernel can drop
// does not count. cgroup v2 reports it as inactive_file, v1 as
// total_inactive_file.
func memoryUsage(mem container.MemoryStats) (usage, limit uint64, pct float64) {
	usage, limit = mem.Usage, mem.Limit
	cached, ok := mem.Stats["inactive_file"]
	if !ok {
		cached = mem.Stats["total_inactive_file"]
	}
	if cached < usage {
		usage -= cached
	}
	if limit > 0 {
		pct = float64(usage) / float64(limit) * 100
	}
	return usage, limit, pct
}

// busyFor flags the transitional engine states.
func busyFor(state string) domain.Busy {
	switch state {
	case "restarting", "removing":
		return domain.Busy{State: true, Reason: state}
	}
	return domain.Busy{}
}

func uptimeSince(startedAt string, now time.Time) domain.Uptime {
	started, err := time.Parse(time.RFC3339Nano, startedAt)
	if err != nil || started.IsZero() || now.Before(started) {
		return domain.Uptime{}
	}
	elapsed := now.Sub(started)
	return domain.Uptime{
		Days:    int(elapsed / (24 * time.Hour)),
		Hours:   int(elapsed % (24 * time.Hour) / time.Hour),
		Minutes: int(elapsed % time.Hour / time.Minute),
	}
}

// containerName strips the leading slash docker puts on names.
func containerName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return strings.TrimPrefix(names[0], "/")
}

func dockerHost(socket string) string {
	if socket == "" {
		return client.DefaultDockerHost
	}
	if strings.Contains(socket, "://") {
		return socket
	}
	return "unix://" + socket
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
