package detect

import (
	"sort"

	"github.com/celarium/celarium/pkg/models"
)

// Merge resolves overlapping candidate spans into an ordered,
// non-overlapping set. Candidates are sorted by start ascending with longer
// spans first on ties, then scanned left to right: a candidate overlapping
// the last accepted span replaces it only on strictly higher confidence, or
// equal confidence and strictly greater length. A candidate wholly inside
// an accepted span with lower priority is dropped and never re-examined.
func Merge(candidates []models.Span) []models.MergedSpan {
	if len(candidates) == 0 {
		return nil
	}

	spans := make([]models.Span, len(candidates))
	copy(spans, candidates)
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].Len() > spans[j].Len()
	})

	merged := make([]models.MergedSpan, 0, len(spans))
	for _, s := range spans {
		if len(merged) == 0 {
			merged = append(merged, models.MergedSpan{Span: s})
			continue
		}

		last := &merged[len(merged)-1]
		if s.Start < last.End {
			if s.Score > last.Score || (s.Score == last.Score && s.Len() > last.Len()) {
				last.Span = s
			}
			continue
		}
		merged = append(merged, models.MergedSpan{Span: s})
	}

	return merged
}
