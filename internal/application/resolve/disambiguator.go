package resolve

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/doeshing/rkl-go/internal/domain"
	"github.com/doeshing/rkl-go/internal/ports"
)

// Disambiguator shows a lettered menu of candidates and reads the
// operator's choice.
type Disambiguator struct {
	Out        io.Writer
	Input      ports.LineReader
	WindowSize int
}

// NewDisambiguator builds a Disambiguator writing its menu to out.
func NewDisambiguator(out io.Writer, input ports.LineReader, windowSize int) *Disambiguator {
	return &Disambiguator{Out: out, Input: input, WindowSize: domain.ClampCandidateSize(windowSize)}
}

// Choose returns the pod names the operator picked. A single letter selects
// one candidate; 'z' selects every displayed candidate in menu order. Any
// other input fails with *domain.InvalidSelectionError and is not retried.
func (d *Disambiguator) Choose(candidates domain.CandidateSet) ([]string, error) {
	switch len(candidates) {
	case 0:
		return nil, domain.ErrNoMatch
	case 1:
		return []string{candidates[0].Name}, nil
	}

	labels := Labels(min(domain.ClampCandidateSize(d.WindowSize), len(candidates)))
	d.printMenu(labels, candidates)

	line, err := d.Input.ReadLine()
	if err != nil {
		return nil, fmt.Errorf("read choice: %w", err)
	}
	indices, err := ParseSelection(line, labels)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(indices))
	for _, idx := range indices {
		names = append(names, candidates[idx].Name)
	}
	return names, nil
}

func (d *Disambiguator) printMenu(labels string, candidates domain.CandidateSet) {
	fmt.Fprintf(d.Out, "showing %d candidate(s), set %s to view more\n", len(labels), domain.EnvCandidateSize)
	for i, label := range labels {
		fmt.Fprintf(d.Out, "%c: %s\n", label, candidates[i])
	}
	fmt.Fprintf(d.Out, "%c: apply to all\n", domain.SelectAllOption)
	fmt.Fprint(d.Out, "type your choice: ")
}

// ParseSelection validates raw menu input against labels and returns the
// chosen candidate positions. Input is trimmed and lowercased; it must be
// exactly one character that is either one of labels or 'z'.
func ParseSelection(raw, labels string) ([]int, error) {
	choice := strings.ToLower(strings.TrimSpace(raw))
	invalid := &domain.InvalidSelectionError{Input: choice, Valid: labels + string(domain.SelectAllOption)}
	if utf8.RuneCountInString(choice) != 1 {
		return nil, invalid
	}

	r, _ := utf8.DecodeRuneInString(choice)
	if r == domain.SelectAllOption {
		all := make([]int, len(labels))
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	idx := strings.IndexRune(labels, r)
	if idx < 0 {
		return nil, invalid
	}
	return []int{idx}, nil
}
