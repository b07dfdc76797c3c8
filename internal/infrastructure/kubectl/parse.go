package kubectl

import (
	"strings"

	"github.com/doeshing/rkl-go/internal/domain"
)

// ParsePodTable parses `get po -owide --no-headers` output. Blank lines are
// skipped. A RESTARTS cell such as `4 (2d ago)` counts as one column; after
// that, every row must have exactly domain.PodFieldCount columns.
func ParsePodTable(output string) ([]domain.PodRecord, error) {
	var pods []domain.PodRecord
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := foldRestarts(strings.Fields(line))
		if len(fields) != domain.PodFieldCount {
			return nil, &domain.ListingParseError{Line: line, Fields: len(fields)}
		}
		pods = append(pods, domain.PodRecord{
			Name:           fields[0],
			Ready:          fields[1],
			Status:         fields[2],
			Restarts:       fields[3],
			Age:            fields[4],
			IP:             fields[5],
			Node:           fields[6],
			NominatedNode:  fields[7],
			ReadinessGates: fields[8],
		})
	}
	return pods, nil
}

// foldRestarts joins the "(<age> ago)" suffix kubectl prints after a
// non-zero restart count back into the RESTARTS column.
func foldRestarts(fields []string) []string {
	const restarts = 3
	if len(fields) <= domain.PodFieldCount || !strings.HasPrefix(fields[restarts+1], "(") {
		return fields
	}
	for end := restarts + 1; end < len(fields); end++ {
		if !strings.HasSuffix(fields[end], ")") {
			continue
		}
		folded := make([]string, 0, len(fields)-(end-restarts))
		folded = append(folded, fields[:restarts]...)
		folded = append(folded, strings.Join(fields[restarts:end+1], " "))
		return append(folded, fields[end+1:]...)
	}
	return fields
}
