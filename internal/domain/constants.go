package domain

// Candidate window bounds.
const (
	// DefaultCandidateSize is used when no valid window size is configured.
	DefaultCandidateSize = 5
	// MaxCandidateSize caps the window; 'z' is reserved for "apply to all".
	MaxCandidateSize = 25
)

// Environment variables.
const (
	EnvCandidateSize = "RKL_CANDIDATE_SIZE"
	EnvConfig        = "RKL_CONFIG"
	EnvDebug         = "RKL_DEBUG"
	EnvKubeconfig    = "KUBECONFIG"
)

// Defaults for the cluster integration.
const (
	DefaultKubectlCommand = "kubectl"
	DefaultExecShell      = "/bin/sh"
)

// SelectAllOption is the menu key that applies the action to every displayed candidate.
const SelectAllOption = 'z'
