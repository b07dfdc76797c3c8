// Package similarity provides the distance metrics used to rank pods when
// no pod name contains the typed fragment.
package similarity

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/doeshing/rkl-go/internal/ports"
)

// Jaccard measures 1 - |A∩B| / |A∪B| over the sets of n-grams of two strings.
type Jaccard struct {
	n int
}

// NewJaccard builds a Jaccard scorer over n-grams; n < 1 means single characters.
func NewJaccard(n int) *Jaccard {
	if n < 1 {
		n = 1
	}
	return &Jaccard{n: n}
}

// Distance implements ports.SimilarityScorer. Two strings with no n-grams
// at all are identical (distance 0).
func (j *Jaccard) Distance(a, b string) float64 {
	setA := j.grams(a)
	setB := j.grams(b)
	union := setA.Union(setB).Cardinality()
	if union == 0 {
		return 0
	}
	inter := setA.Intersect(setB).Cardinality()
	return 1 - float64(inter)/float64(union)
}

func (j *Jaccard) grams(s string) mapset.Set[string] {
	runes := []rune(s)
	set := mapset.NewThreadUnsafeSet[string]()
	for i := 0; i+j.n <= len(runes); i++ {
		set.Add(string(runes[i : i+j.n]))
	}
	return set
}

var _ ports.SimilarityScorer = (*Jaccard)(nil)
