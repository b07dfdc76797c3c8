package kubeapi

import (
	"context"
	"fmt"
	"strconv"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/duration"
	"k8s.io/client-go/kubernetes"

	"github.com/doeshing/rkl-go/internal/domain"
	"github.com/doeshing/rkl-go/internal/ports"
)

const none = "<none>"

// Lister implements ports.PodLister with a clientset.
type Lister struct {
	clientset kubernetes.Interface
	namespace string
	now       func() time.Time
}

// NewLister builds a Lister for one namespace.
func NewLister(clientset kubernetes.Interface, namespace string) *Lister {
	return &Lister{clientset: clientset, namespace: namespace, now: time.Now}
}

// ListPods implements ports.PodLister. Rows come back in API order, which
// is name order, the same as `kubectl get po`.
func (l *Lister) ListPods(ctx context.Context) ([]domain.PodRecord, error) {
	list, err := l.clientset.CoreV1().Pods(l.namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list pods in %q: %w", l.namespace, err)
	}
	now := l.now()
	pods := make([]domain.PodRecord, 0, len(list.Items))
	for _, pod := range list.Items {
		pods = append(pods, toPodRecord(pod, now))
	}
	return pods, nil
}

func toPodRecord(pod corev1.Pod, now time.Time) domain.PodRecord {
	ready, total := readyCount(pod)
	var restarts int32
	for _, cs := range pod.Status.ContainerStatuses {
		restarts += cs.RestartCount
	}
	age := "<unknown>"
	if !pod.CreationTimestamp.IsZero() {
		age = duration.HumanDuration(now.Sub(pod.CreationTimestamp.Time))
	}
	return domain.PodRecord{
		Name:           pod.Name,
		Ready:          fmt.Sprintf("%d/%d", ready, total),
		Status:         podStatus(pod),
		Restarts:       strconv.Itoa(int(restarts)),
		Age:            age,
		IP:             orNone(pod.Status.PodIP),
		Node:           orNone(pod.Spec.NodeName),
		NominatedNode:  orNone(pod.Status.NominatedNodeName),
		ReadinessGates: readinessGates(pod),
	}
}

func podStatus(pod corev1.Pod) string {
	if pod.DeletionTimestamp != nil {
		return "Terminating"
	}
	for _, cs := range pod.Status.InitContainerStatuses {
		if cs.State.Waiting != nil && cs.State.Waiting.Reason != "" && cs.State.Waiting.Reason != "PodInitializing" {
			return "Init:" + cs.State.Waiting.Reason
		}
		if cs.State.Terminated != nil && cs.State.Terminated.ExitCode != 0 {
			return "Init:Error"
		}
	}
	for _, cs := range pod.Status.ContainerStatuses {
		if cs.State.Waiting != nil && cs.State.Waiting.Reason != "" {
			return cs.State.Waiting.Reason
		}
		if cs.State.Terminated != nil && cs.State.Terminated.Reason != "" {
			return cs.State.Terminated.Reason
		}
	}
	if pod.Status.Reason != "" {
		return pod.Status.Reason
	}
	return string(pod.Status.Phase)
}

func readyCount(pod corev1.Pod) (int, int) {
	ready := 0
	for _, cs := range pod.Status.ContainerStatuses {
		if cs.Ready {
			ready++
		}
	}
	return ready, len(pod.Spec.Containers)
}

func readinessGates(pod corev1.Pod) string {
	if len(pod.Spec.ReadinessGates) == 0 {
		return none
	}
	conditions := make(map[corev1.PodConditionType]corev1.ConditionStatus, len(pod.Status.Conditions))
	for _, c := range pod.Status.Conditions {
		conditions[c.Type] = c.Status
	}
	passed := 0
	for _, gate := range pod.Spec.ReadinessGates {
		if conditions[gate.ConditionType] == corev1.ConditionTrue {
			passed++
		}
	}
	return fmt.Sprintf("%d/%d", passed, len(pod.Spec.ReadinessGates))
}

func orNone(s string) string {
	if s == "" {
		return none
	}
	return s
}

var _ ports.PodLister = (*Lister)(nil)
