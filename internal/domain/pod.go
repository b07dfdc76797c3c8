package domain

import "strings"

// PodFieldCount is the number of columns in a `get po -owide` row.
const PodFieldCount = 9

// PodRecord is one row of a pod listing. Name is the only field used for
// matching; the rest are carried for display.
type PodRecord struct {
	Name           string
	Ready          string
	Status         string
	Restarts       string
	Age            string
	IP             string
	Node           string
	NominatedNode  string
	ReadinessGates string
}

// String renders the record tab-separated in listing column order.
func (p PodRecord) String() string {
	return strings.Join([]string{
		p.Name, p.Ready, p.Status, p.Restarts, p.Age,
		p.IP, p.Node, p.NominatedNode, p.ReadinessGates,
	}, "\t")
}

// CandidateSet is an ordered resolution result. Order decides menu labels.
type CandidateSet []PodRecord

// Names returns the pod names in order.
func (c CandidateSet) Names() []string {
	names := make([]string, 0, len(c))
	for _, pod := range c {
		names = append(names, pod.Name)
	}
	return names
}

// Resolution is the outcome of matching a fragment against a listing.
type Resolution struct {
	Fragment   string
	Candidates CandidateSet
	// Fuzzy is set when no pod name contained the fragment and the
	// candidates were ranked by similarity instead.
	Fuzzy bool
}
