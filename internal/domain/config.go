package domain

// Config mirrors ~/.rkl/config.yaml.
type Config struct {
	Kubectl    KubectlSettings    `yaml:"kubectl"`
	Exec       ExecSettings       `yaml:"exec"`
	Resolution ResolutionSettings `yaml:"resolution"`
	Lister     ListerKind         `yaml:"lister"`
	Kubeconfig string             `yaml:"kubeconfig,omitempty"`
}

// KubectlSettings holds the cluster-connection command prefix.
type KubectlSettings struct {
	// Command is the full prefix, connection flags included,
	// e.g. "kubectl -s https://127.0.0.1:6443 --certificate-authority=...".
	Command   string `yaml:"command"`
	Namespace string `yaml:"namespace,omitempty"`
}

// ExecSettings controls interactive exec sessions.
type ExecSettings struct {
	Shell string `yaml:"shell"`
}

// ResolutionSettings tunes fragment matching.
type ResolutionSettings struct {
	CandidateSize int            `yaml:"candidate_size"`
	MiddleName    string         `yaml:"middle_name,omitempty"`
	Similarity    SimilarityKind `yaml:"similarity"`
}

// ListerKind selects how pods are listed.
type ListerKind string

const (
	ListerKubectl ListerKind = "kubectl"
	ListerAPI     ListerKind = "api"
)

// SimilarityKind selects the fuzzy ranking metric.
type SimilarityKind string

const (
	SimilarityJaccard     SimilarityKind = "jaccard"
	SimilarityLevenshtein SimilarityKind = "levenshtein"
)
