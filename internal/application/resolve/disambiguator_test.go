package resolve

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/rkl-go/internal/domain"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		labels  string
		want    []int
		wantErr bool
	}{
		{name: "first label", input: "a", labels: "abc", want: []int{0}},
		{name: "trimmed and lowercased", input: "  C\n", labels: "abc", want: []int{2}},
		{name: "select all", input: "z", labels: "abc", want: []int{0, 1, 2}},
		{name: "select all uppercase", input: "Z", labels: "ab", want: []int{0, 1}},
		{name: "label out of range", input: "d", labels: "abc", wantErr: true},
		{name: "single non-label char", input: "q", labels: "abcde", wantErr: true},
		{name: "digit", input: "1", labels: "abc", wantErr: true},
		{name: "two chars", input: "ab", labels: "abc", wantErr: true},
		{name: "empty", input: "   ", labels: "abc", wantErr: true},
		{name: "word", input: "all", labels: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelection(tt.input, tt.labels)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidSelection) {
					t.Fatalf("expected ErrInvalidSelection, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("selection mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDisambiguatorSelectAllReturnsDisplayedInOrder(t *testing.T) {
	var out bytes.Buffer
	d := NewDisambiguator(&out, &stubReader{line: "z\n"}, 3)
	candidates := domain.CandidateSet(podsNamed("p1", "p2", "p3", "p4", "p5"))

	got, err := d.Choose(candidates)
	if err != nil {
		t.Fatalf("Choose error: %v", err)
	}
	if diff := cmp.Diff([]string{"p1", "p2", "p3"}, got); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}

	menu := out.String()
	for _, want := range []string{"a: p1", "b: p2", "c: p3", "z: apply to all"} {
		if !strings.Contains(menu, want) {
			t.Errorf("menu missing %q:\n%s", want, menu)
		}
	}
	if strings.Contains(menu, "d: p4") {
		t.Errorf("menu shows more than the window:\n%s", menu)
	}
}

func TestDisambiguatorSelectAllWithFewerCandidatesThanWindow(t *testing.T) {
	d := NewDisambiguator(&bytes.Buffer{}, &stubReader{line: "z"}, 5)
	got, err := d.Choose(domain.CandidateSet(podsNamed("p1", "p2")))
	if err != nil {
		t.Fatalf("Choose error: %v", err)
	}
	if diff := cmp.Diff([]string{"p1", "p2"}, got); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestDisambiguatorSingleLetter(t *testing.T) {
	d := NewDisambiguator(&bytes.Buffer{}, &stubReader{line: "b"}, 5)
	got, err := d.Choose(domain.CandidateSet(podsNamed("p1", "p2", "p3")))
	if err != nil {
		t.Fatalf("Choose error: %v", err)
	}
	if diff := cmp.Diff([]string{"p2"}, got); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestDisambiguatorRejectsLetterBeyondDisplayed(t *testing.T) {
	d := NewDisambiguator(&bytes.Buffer{}, &stubReader{line: "d"}, 3)
	_, err := d.Choose(domain.CandidateSet(podsNamed("p1", "p2", "p3", "p4")))
	if !errors.Is(err, domain.ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestDisambiguatorReadFailure(t *testing.T) {
	readErr := errors.New("eof")
	d := NewDisambiguator(&bytes.Buffer{}, &stubReader{err: readErr}, 3)
	_, err := d.Choose(domain.CandidateSet(podsNamed("p1", "p2")))
	if !errors.Is(err, readErr) {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestDisambiguatorSingleCandidateSkipsPrompt(t *testing.T) {
	reader := &stubReader{line: "a"}
	d := NewDisambiguator(&bytes.Buffer{}, reader, 5)
	got, err := d.Choose(domain.CandidateSet(podsNamed("only")))
	if err != nil {
		t.Fatalf("Choose error: %v", err)
	}
	if reader.reads != 0 {
		t.Errorf("reader used %d times for a single candidate", reader.reads)
	}
	if diff := cmp.Diff([]string{"only"}, got); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

type stubReader struct {
	line  string
	err   error
	reads int
}

func (s *stubReader) ReadLine() (string, error) {
	s.reads++
	return s.line, s.err
}
