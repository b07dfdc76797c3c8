package similarity

import (
	"fmt"

	"github.com/doeshing/rkl-go/internal/domain"
	"github.com/doeshing/rkl-go/internal/ports"
)

// ForKind returns the scorer configured by resolution.similarity.
func ForKind(kind domain.SimilarityKind) (ports.SimilarityScorer, error) {
	switch kind {
	case "", domain.SimilarityJaccard:
		return NewJaccard(1), nil
	case domain.SimilarityLevenshtein:
		return NewLevenshtein(), nil
	default:
		return nil, fmt.Errorf("unknown similarity metric %q", kind)
	}
}
