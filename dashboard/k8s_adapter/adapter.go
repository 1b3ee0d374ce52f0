package k8sadapter

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Gthulhu/podboard/config"
	"github.com/Gthulhu/podboard/dashboard/domain"
	"github.com/Gthulhu/podboard/pkg/logger"
	"github.com/pkg/errors"
	apiv1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/informers"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/cache"
	"k8s.io/client-go/tools/clientcmd"
)

var (
	_ domain.Transport = (*Adapter)(nil)
)

// Adapter shows cluster pods as a read only inventory. Pods are served from
// an informer cache once it has synced, and listed live before that.
type Adapter struct {
	client         kubernetes.Interface
	namespaces     []string
	podCache       map[string]apiv1.Pod
	podCacheMu     sync.RWMutex
	stopCh         chan struct{}
	startWatcher   sync.Once
	stopWatcher    sync.Once
	cacheHasSynced atomic.Bool
	now            func() time.Time
}

func NewAdapter(cfg config.KubernetesConfig) (*Adapter, error) {
	restConfig, err := buildConfig(cfg)
	if err != nil {
		return nil, err
	}

	restConfig.Timeout = 10 * time.Second
	restConfig.QPS = 20
	restConfig.Burst = 50

	client, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("create kubernetes client: %w", err)
	}

	adapter := newAdapter(client, cfg.Namespaces)
	go adapter.startPodWatcher()
	return adapter, nil
}

func newAdapter(client kubernetes.Interface, namespaces []string) *Adapter {
	return &Adapter{
		client:     client,
		namespaces: namespaces,
		podCache:   make(map[string]apiv1.Pod),
		stopCh:     make(chan struct{}),
		now:        time.Now,
	}
}

func buildConfig(cfg config.KubernetesConfig) (*rest.Config, error) {
	if cfg.InCluster {
		restConfig, err := rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("build in-cluster config: %w", err)
		}
		return restConfig, nil
	}

	if cfg.KubeConfigPath == "" {
		return nil, domain.ErrNoKubeConfig
	}

	restConfig, err := clientcmd.BuildConfigFromFlags("", cfg.KubeConfigPath)
	if err != nil {
		return nil, fmt.Errorf("build kubeconfig from %s: %w", cfg.KubeConfigPath, err)
	}
	return restConfig, nil
}

func (a *Adapter) startPodWatcher() {
	a.startWatcher.Do(func() {
		informerFactory := informers.NewSharedInformerFactory(a.client, 0)
		podInformer := informerFactory.Core().V1().Pods().Informer()

		_, _ = podInformer.AddEventHandler(cache.ResourceEventHandlerFuncs{
			AddFunc: func(obj interface{}) {
				if pod, ok := obj.(*apiv1.Pod); ok {
					a.setPodCache(*pod)
				}
			},
			UpdateFunc: func(_, newObj interface{}) {
				if pod, ok := newObj.(*apiv1.Pod); ok {
					a.setPodCache(*pod)
				}
			},
			DeleteFunc: func(obj interface{}) {
				switch pod := obj.(type) {
				case *apiv1.Pod:
					logger.Logger(context.Background()).Debug().Msgf("pod deleted: %s/%s", pod.Namespace, pod.Name)
					a.deletePodCache(string(pod.UID))
				case cache.DeletedFinalStateUnknown:
					if p, ok := pod.Obj.(*apiv1.Pod); ok {
						a.deletePodCache(string(p.UID))
					}
				}
			},
		})

		informerFactory.Start(a.stopCh)

		synced := cache.WaitForCacheSync(a.stopCh, podInformer.HasSynced)
		a.cacheHasSynced.Store(synced)
		logger.Logger(context.Background()).Info().Msg("k8s pod watcher synced")
	})
}

func (a *Adapter) StopPodWatcher() {
	a.stopWatcher.Do(func() {
		if a.stopCh != nil {
			close(a.stopCh)
		}
	})
}

func (a *Adapter) ListContainers(ctx context.Context) (*domain.Snapshot, error) {
	if a == nil || a.client == nil {
		return nil, domain.ErrNoClient
	}

	pods, err := a.listPods(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(pods, func(i, j int) bool {
		return podName(pods[i]) < podName(pods[j])
	})

	now := a.now()
	snapshot := &domain.Snapshot{Pods: make([]domain.Pod, 0, len(pods))}
	for _, pod := range pods {
		snapshot.Pods = append(snapshot.Pods, domain.Pod{
			Name:       podName(pod),
			Containers: buildContainers(pod, now),
		})
	}
	return snapshot, nil
}

// Exec is refused: the dashboard never mutates cluster workloads.
func (a *Adapter) Exec(ctx context.Context, verb domain.Verb, group, name string) error {
	return errors.WithMessagef(domain.ErrActionUnsupported, "%s %s on kubernetes", verb, name)
}

func (a *Adapter) listPods(ctx context.Context) ([]apiv1.Pod, error) {
	namespaces := a.namespaces
	if len(namespaces) == 0 {
		namespaces = []string{metav1.NamespaceAll}
	}
	if a.cacheHasSynced.Load() {
		return a.podsFromCache(namespaces), nil
	}
	return a.listPodsLive(ctx, namespaces)
}

func (a *Adapter) podsFromCache(namespaces []string) []apiv1.Pod {
	nsAll := len(namespaces) == 1 && namespaces[0] == metav1.NamespaceAll
	nsSet := make(map[string]struct{}, len(namespaces))
	for _, ns := range namespaces {
		nsSet[ns] = struct{}{}
	}

	a.podCacheMu.RLock()
	defer a.podCacheMu.RUnlock()

	pods := make([]apiv1.Pod, 0, len(a.podCache))
	for _, pod := range a.podCache {
		if !nsAll {
			if _, ok := nsSet[pod.Namespace]; !ok {
				continue
			}
		}
		pods = append(pods, pod)
	}
	return pods
}

func (a *Adapter) listPodsLive(ctx context.Context, namespaces []string) ([]apiv1.Pod, error) {
	results := make([]apiv1.Pod, 0)
	for _, ns := range namespaces {
		pods, err := a.client.CoreV1().Pods(ns).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, fmt.Errorf("list pods in namespace %s: %w", ns, err)
		}
		results = append(results, pods.Items...)
	}
	return results, nil
}

func (a *Adapter) setPodCache(pod apiv1.Pod) {
	a.podCacheMu.Lock()
	a.podCache[string(pod.UID)] = pod
	a.podCacheMu.Unlock()
}

func (a *Adapter) deletePodCache(uid string) {
	a.podCacheMu.Lock()
	delete(a.podCache, uid)
	a.podCacheMu.Unlock()
}

func podName(pod apiv1.Pod) string {
	return pod.Namespace + "/" + pod.Name
}

func buildContainers(pod apiv1.Pod, now time.Time) []domain.Container {
	statusByName := make(map[string]apiv1.ContainerStatus, len(pod.Status.ContainerStatuses))
	for _, status := range pod.Status.ContainerStatuses {
		statusByName[status.Name] = status
	}
	terminating := pod.DeletionTimestamp != nil

	result := make([]domain.Container, 0, len(pod.Spec.Containers))
	for _, container := range pod.Spec.Containers {
		command := append([]string{}, container.Command...)
		command = append(command, container.Args...)

		c := domain.Container{
			Name:  container.Name,
			Image: container.Image,
			Cmd:   strings.Join(command, " "),
		}
		if status, ok := statusByName[container.Name]; ok {
			c.State, c.Running = containerState(status.State)
			if status.State.Running != nil {
				c.Uptime = uptimeSince(status.State.Running.StartedAt.Time, now)
			}
		}
		if terminating {
			c.Busy = domain.Busy{State: true, Reason: "terminating"}
		}
		result = append(result, c)
	}
	return result
}

func containerState(state apiv1.ContainerState) (string, bool) {
	switch {
	case state.Running != nil:
		return "running", true
	case state.Waiting != nil:
		if state.Waiting.Reason != "" {
			return strings.ToLower(state.Waiting.Reason), false
		}
		return "waiting", false
	case state.Terminated != nil:
		return "terminated", false
	}
	return "", false
}

func uptimeSince(started, now time.Time) domain.Uptime {
	if started.IsZero() || now.Before(started) {
		return domain.Uptime{}
	}
	elapsed := now.Sub(started)
	return domain.Uptime{
		Days:    int(elapsed / (24 * time.Hour)),
		Hours:   int(elapsed % (24 * time.Hour) / time.Hour),
		Minutes: int(elapsed % time.Hour / time.Minute),
	}
}
