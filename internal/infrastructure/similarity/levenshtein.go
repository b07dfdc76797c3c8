package similarity

import (
	"github.com/agnivade/levenshtein"

	"github.com/doeshing/rkl-go/internal/ports"
)

// Levenshtein scores by edit distance.
type Levenshtein struct{}

// NewLevenshtein builds an edit-distance scorer.
func NewLevenshtein() *Levenshtein {
	return &Levenshtein{}
}

// Distance implements ports.SimilarityScorer.
func (Levenshtein) Distance(a, b string) float64 {
	return float64(levenshtein.ComputeDistance(a, b))
}

var _ ports.SimilarityScorer = (*Levenshtein)(nil)
