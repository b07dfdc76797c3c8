package resolve

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/rkl-go/internal/domain"
)

func TestResolverExactMatchSkipsScoring(t *testing.T) {
	scorer := &countingScorer{}
	resolver := NewResolver(scorer, 5)
	pods := podsNamed("sophon-kg-sophon2-x", "sophon-ui-sophon2-y", "other-kg-z")

	res := resolver.Resolve("kg", pods)

	if res.Fuzzy {
		t.Fatal("expected exact resolution")
	}
	if scorer.calls != 0 {
		t.Fatalf("scorer called %d times on exact match", scorer.calls)
	}
	want := []string{"sophon-kg-sophon2-x", "other-kg-z"}
	if diff := cmp.Diff(want, res.Candidates.Names()); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestResolverExactIsCaseSensitive(t *testing.T) {
	resolver := NewResolver(&countingScorer{}, 5)
	res := resolver.Resolve("KG", podsNamed("sophon-kg-1"))
	if !res.Fuzzy {
		t.Fatal("expected fuzzy fallback for different case")
	}
}

func TestResolverFuzzyRanksAndKeepsTiesInOrder(t *testing.T) {
	scorer := mapScorer{
		"p1": 0.5,
		"p2": 0.1,
		"p3": 0.5,
		"p4": 0.9,
		"p5": 0.1,
		"p6": 0.3,
	}
	resolver := NewResolver(scorer, 4)

	res := resolver.Resolve("nothing-matches", podsNamed("p1", "p2", "p3", "p4", "p5", "p6"))

	if !res.Fuzzy {
		t.Fatal("expected fuzzy resolution")
	}
	want := []string{"p2", "p5", "p6", "p1"}
	if diff := cmp.Diff(want, res.Candidates.Names()); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestResolverFuzzyBoundedByPodCountAndCap(t *testing.T) {
	names := make([]string, 30)
	for i := range names {
		names[i] = string(rune('A'+i%26)) + "-pod"
	}
	pods := podsNamed(names...)

	tests := []struct {
		name   string
		window int
		pods   []domain.PodRecord
		want   int
	}{
		{name: "window smaller than pods", window: 3, pods: pods, want: 3},
		{name: "window capped at 25", window: 100, pods: pods, want: domain.MaxCandidateSize},
		{name: "fewer pods than window", window: 10, pods: pods[:2], want: 2},
		{name: "no pods", window: 5, pods: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &Resolver{Scorer: &countingScorer{}, WindowSize: tt.window}
			got := resolver.Resolve("zzz", tt.pods)
			if len(got.Candidates) != tt.want {
				t.Errorf("got %d candidates, want %d", len(got.Candidates), tt.want)
			}
		})
	}
}

type countingScorer struct {
	calls int
}

func (s *countingScorer) Distance(a, b string) float64 {
	s.calls++
	return 0
}

type mapScorer map[string]float64

func (m mapScorer) Distance(a, _ string) float64 {
	return m[a]
}

func podsNamed(names ...string) []domain.PodRecord {
	pods := make([]domain.PodRecord, 0, len(names))
	for _, name := range names {
		pods = append(pods, domain.PodRecord{Name: name, Ready: "1/1", Status: "Running"})
	}
	return pods
}
