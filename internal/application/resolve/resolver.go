package resolve

import (
	"sort"
	"strings"

	"github.com/doeshing/rkl-go/internal/domain"
	"github.com/doeshing/rkl-go/internal/ports"
)

// Resolver matches a fragment against a pod listing.
type Resolver struct {
	Scorer     ports.SimilarityScorer
	WindowSize int
}

// NewResolver builds a Resolver; windowSize is clamped into [1, 25].
func NewResolver(scorer ports.SimilarityScorer, windowSize int) *Resolver {
	return &Resolver{Scorer: scorer, WindowSize: domain.ClampCandidateSize(windowSize)}
}

// Resolve returns every pod whose name contains fragment, in listing order.
// If there is none, it falls back to the WindowSize pods closest to fragment.
// An empty candidate set means no match.
func (r *Resolver) Resolve(fragment string, pods []domain.PodRecord) domain.Resolution {
	if exact := Exact(fragment, pods); len(exact) > 0 {
		return domain.Resolution{Fragment: fragment, Candidates: exact}
	}
	return domain.Resolution{
		Fragment:   fragment,
		Candidates: r.Fuzzy(fragment, pods),
		Fuzzy:      true,
	}
}

// Exact filters pods to those whose name contains fragment (case-sensitive).
func Exact(fragment string, pods []domain.PodRecord) domain.CandidateSet {
	var matches domain.CandidateSet
	for _, pod := range pods {
		if strings.Contains(pod.Name, fragment) {
			matches = append(matches, pod)
		}
	}
	return matches
}

// Fuzzy ranks pods by distance to fragment, closest first. Equal distances
// keep listing order.
func (r *Resolver) Fuzzy(fragment string, pods []domain.PodRecord) domain.CandidateSet {
	if len(pods) == 0 || r.Scorer == nil {
		return nil
	}

	type scored struct {
		pod      domain.PodRecord
		distance float64
	}
	ranked := make([]scored, len(pods))
	for i, pod := range pods {
		ranked[i] = scored{pod: pod, distance: r.Scorer.Distance(pod.Name, fragment)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].distance < ranked[j].distance
	})

	limit := min(domain.ClampCandidateSize(r.WindowSize), len(ranked))
	out := make(domain.CandidateSet, 0, limit)
	for _, item := range ranked[:limit] {
		out = append(out, item.pod)
	}
	return out
}
