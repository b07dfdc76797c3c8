package resolve

import (
	"os"
	"strconv"

	"github.com/doeshing/rkl-go/internal/domain"
)

// WindowSizeFromEnv reads RKL_CANDIDATE_SIZE from the process environment.
func WindowSizeFromEnv() int {
	return WindowSize(os.LookupEnv)
}

// WindowSize resolves the candidate window from lookup. A missing,
// unparsable or non-positive value yields the default; larger values are
// capped at domain.MaxCandidateSize.
func WindowSize(lookup func(string) (string, bool)) int {
	raw, ok := lookup(domain.EnvCandidateSize)
	if !ok {
		return domain.DefaultCandidateSize
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return domain.DefaultCandidateSize
	}
	return domain.ClampCandidateSize(n)
}

// Labels returns the menu letters for n candidates: "a", "ab", ... up to
// the first domain.MaxCandidateSize letters.
func Labels(n int) string {
	n = min(n, domain.MaxCandidateSize)
	if n <= 0 {
		return ""
	}
	letters := make([]byte, n)
	for i := range letters {
		letters[i] = byte('a' + i)
	}
	return string(letters)
}
