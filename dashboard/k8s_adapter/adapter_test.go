package k8sadapter

import (
	"context"
	"testing"
	"time"

	"github.com/Gthulhu/podboard/config"
	"github.com/Gthulhu/podboard/dashboard/domain"
	"github.com/Gthulhu/podboard/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apiv1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/kubernetes/fake"
)

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func newPod(ns, name, uid string, containers []apiv1.Container, statuses []apiv1.ContainerStatus) *apiv1.Pod {
	return &apiv1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: ns, UID: types.UID("uid-" + uid)},
		Spec:       apiv1.PodSpec{Containers: containers},
		Status:     apiv1.PodStatus{ContainerStatuses: statuses},
	}
}

func newTestAdapter(t *testing.T, namespaces []string, pods ...*apiv1.Pod) *Adapter {
	t.Helper()
	logger.InitLogger()
	client := fake.NewSimpleClientset()
	for _, pod := range pods {
		_, err := client.CoreV1().Pods(pod.Namespace).Create(context.Background(), pod, metav1.CreateOptions{})
		require.NoError(t, err)
	}
	adapter := newAdapter(client, namespaces)
	adapter.now = func() time.Time { return testNow }
	return adapter
}

func TestListContainersLive(t *testing.T) {
	web := newPod("default", "web", "1",
		[]apiv1.Container{
			{Name: "nginx", Image: "nginx:1.27", Command: []string{"nginx"}, Args: []string{"-g", "daemon off;"}},
			{Name: "sidecar", Image: "envoy:v1"},
		},
		[]apiv1.ContainerStatus{
			{Name: "nginx", State: apiv1.ContainerState{Running: &apiv1.ContainerStateRunning{StartedAt: metav1.NewTime(testNow.Add(-(26*time.Hour + 7*time.Minute)))}}},
			{Name: "sidecar", State: apiv1.ContainerState{Waiting: &apiv1.ContainerStateWaiting{Reason: "CrashLoopBackOff"}}},
		})
	job := newPod("batch", "job", "2",
		[]apiv1.Container{{Name: "worker", Image: "busybox"}},
		[]apiv1.ContainerStatus{{Name: "worker", State: apiv1.ContainerState{Terminated: &apiv1.ContainerStateTerminated{ExitCode: 0}}}})

	adapter := newTestAdapter(t, nil, web, job)
	snapshot, err := adapter.ListContainers(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot.Pods, 2)
	assert.Equal(t, "batch/job", snapshot.Pods[0].Name)
	assert.Equal(t, "default/web", snapshot.Pods[1].Name)

	nginx := snapshot.Pods[1].Containers[0]
	assert.Equal(t, "nginx", nginx.Name)
	assert.Equal(t, "nginx:1.27", nginx.Image)
	assert.Equal(t, "nginx -g daemon off;", nginx.Cmd)
	assert.True(t, nginx.Running)
	assert.Equal(t, "running", nginx.State)
	assert.Equal(t, domain.Uptime{Days: 1, Hours: 2, Minutes: 7}, nginx.Uptime)
	assert.Equal(t, domain.Actions{}, nginx.Actions)

	sidecar := snapshot.Pods[1].Containers[1]
	assert.False(t, sidecar.Running)
	assert.Equal(t, "crashloopbackoff", sidecar.State)

	assert.Equal(t, "terminated", snapshot.Pods[0].Containers[0].State)
}

func TestListContainersFiltersNamespaces(t *testing.T) {
	a := newPod("default", "a", "1", []apiv1.Container{{Name: "c"}}, nil)
	b := newPod("kube-system", "b", "2", []apiv1.Container{{Name: "c"}}, nil)
	c := newPod("other", "c", "3", []apiv1.Container{{Name: "c"}}, nil)

	adapter := newTestAdapter(t, []string{"default", "kube-system"}, a, b, c)
	snapshot, err := adapter.ListContainers(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot.Pods, 2)
	assert.Equal(t, "default/a", snapshot.Pods[0].Name)
	assert.Equal(t, "kube-system/b", snapshot.Pods[1].Name)
	assert.Equal(t, "", snapshot.Pods[0].Containers[0].State, "no status yet")
}

func TestListContainersFromCache(t *testing.T) {
	adapter := newTestAdapter(t, []string{"default"})
	pod := newPod("default", "cached", "9", []apiv1.Container{{Name: "c"}}, nil)
	now := metav1.NewTime(testNow)
	pod.DeletionTimestamp = &now
	adapter.setPodCache(*pod)
	adapter.setPodCache(*newPod("elsewhere", "skip", "10", nil, nil))
	adapter.cacheHasSynced.Store(true)

	snapshot, err := adapter.ListContainers(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot.Pods, 1)
	assert.Equal(t, domain.Busy{State: true, Reason: "terminating"}, snapshot.Pods[0].Containers[0].Busy)

	adapter.deletePodCache(string(pod.UID))
	snapshot, err = adapter.ListContainers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snapshot.Pods)
}

func TestPodWatcherFillsCache(t *testing.T) {
	pod := newPod("default", "watched", "5", []apiv1.Container{{Name: "c"}}, nil)
	adapter := newTestAdapter(t, nil, pod)
	adapter.startPodWatcher()
	t.Cleanup(adapter.StopPodWatcher)

	require.True(t, adapter.cacheHasSynced.Load())
	require.Eventually(t, func() bool {
		adapter.podCacheMu.RLock()
		defer adapter.podCacheMu.RUnlock()
		return len(adapter.podCache) == 1
	}, 5*time.Second, 20*time.Millisecond)
}

func TestExecUnsupported(t *testing.T) {
	adapter := newTestAdapter(t, nil)
	err := adapter.Exec(context.Background(), domain.VerbRestart, domain.ContainerGroup, "web")
	assert.ErrorIs(t, err, domain.ErrActionUnsupported)
}

func TestNilAdapter(t *testing.T) {
	var adapter *Adapter
	_, err := adapter.ListContainers(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoClient)
}

func TestBuildConfigRequiresKubeConfig(t *testing.T) {
	_, err := NewAdapter(config.KubernetesConfig{})
	assert.ErrorIs(t, err, domain.ErrNoKubeConfig)
}
