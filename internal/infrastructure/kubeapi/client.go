// Package kubeapi lists pods through the Kubernetes API instead of parsing
// kubectl output.
package kubeapi

import (
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/doeshing/rkl-go/internal/domain"
)

// NewClientset builds a clientset from kubeconfig (KUBECONFIG or
// ~/.kube/config when empty) and returns the namespace to list: the given
// one, else the kubeconfig context's namespace.
func NewClientset(kubeconfig, namespace string) (kubernetes.Interface, string, error) {
	path := resolveKubeconfig(kubeconfig)
	loadingRules := &clientcmd.ClientConfigLoadingRules{ExplicitPath: path}
	overrides := &clientcmd.ConfigOverrides{}
	if namespace != "" {
		overrides.Context.Namespace = namespace
	}
	clientConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, overrides)

	restConfig, err := clientConfig.ClientConfig()
	if err != nil {
		return nil, "", fmt.Errorf("load kubeconfig %s: %w", path, err)
	}
	ns, _, err := clientConfig.Namespace()
	if err != nil {
		return nil, "", fmt.Errorf("resolve namespace: %w", err)
	}
	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, "", fmt.Errorf("create clientset: %w", err)
	}
	return clientset, ns, nil
}

func resolveKubeconfig(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(domain.EnvKubeconfig); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".kube", "config")
}
