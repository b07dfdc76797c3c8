package domain

import "fmt"

// Validate checks enum fields and bounds.
func (c *Config) Validate() error {
	switch c.Lister {
	case "", ListerKubectl, ListerAPI:
	default:
		return fmt.Errorf("lister must be %q or %q, got %q", ListerKubectl, ListerAPI, c.Lister)
	}
	switch c.Resolution.Similarity {
	case "", SimilarityJaccard, SimilarityLevenshtein:
	default:
		return fmt.Errorf("resolution.similarity must be %q or %q, got %q",
			SimilarityJaccard, SimilarityLevenshtein, c.Resolution.Similarity)
	}
	if c.Resolution.CandidateSize < 0 {
		return fmt.Errorf("resolution.candidate_size must be >= 0, got %d", c.Resolution.CandidateSize)
	}
	return nil
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Kubectl.Command == "" {
		c.Kubectl.Command = DefaultKubectlCommand
	}
	if c.Lister == "" {
		c.Lister = ListerKubectl
	}
	if c.Resolution.Similarity == "" {
		c.Resolution.Similarity = SimilarityJaccard
	}
	c.Resolution.CandidateSize = ClampCandidateSize(c.Resolution.CandidateSize)
}

// ClampCandidateSize maps n into [1, MaxCandidateSize], treating n < 1 as unset.
func ClampCandidateSize(n int) int {
	if n < 1 {
		return DefaultCandidateSize
	}
	if n > MaxCandidateSize {
		return MaxCandidateSize
	}
	return n
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	cfg := Config{
		Exec: ExecSettings{Shell: DefaultExecShell},
	}
	cfg.ApplyDefaults()
	return cfg
}
