package kubernetes

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// APIClient lists jobs through the Kubernetes batch/v1 API.
type APIClient struct {
	clientset kubernetes.Interface
}

// Ensure APIClient implements the JobLister interface.
var _ JobLister = (*APIClient)(nil)

// NewClient creates a JobLister backed by the real cluster API. It prefers
// in-cluster configuration and falls back to the local kubeconfig, so the
// exporter runs both as a pod and on a developer machine.
func NewClient() (*APIClient, error) {
	config, err := rest.InClusterConfig()
	if err != nil {
		log.Info("Not running in-cluster, falling back to kubeconfig", "reason", err)
		rules := clientcmd.NewDefaultClientConfigLoadingRules()
		config, err = clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, &clientcmd.ConfigOverrides{}).ClientConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load cluster configuration: %w", err)
		}
	}
	config.Timeout = 30 * time.Second

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes clientset: %w", err)
	}
	return &APIClient{clientset: clientset}, nil
}

// NewClientForClientset wraps an existing clientset. Used by tests with a fake
// clientset.
func NewClientForClientset(clientset kubernetes.Interface) *APIClient {
	return &APIClient{clientset: clientset}
}

// ListJobs fetches all jobs in the given namespace and maps them to the
// exporter's view type.
func (c *APIClient) ListJobs(ctx context.Context, namespace string) ([]Job, error) {
	list, err := c.clientset.BatchV1().Jobs(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("error listing jobs in namespace %q: %w", namespace, err)
	}

	jobs := make([]Job, 0, len(list.Items))
	for i := range list.Items {
		jobs = append(jobs, fromBatchJob(&list.Items[i]))
	}
	log.Debug("Fetched jobs from cluster", "namespace", namespace, "count", len(jobs))
	return jobs, nil
}
