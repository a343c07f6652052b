package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/celarium/celarium/pkg/models"
)

func span(start, end int, category models.Category, score float64) models.Span {
	return models.Span{Start: start, End: end, Category: category, Score: score}
}

func TestMerge(t *testing.T) {
	testCases := []struct {
		name       string
		candidates []models.Span
		want       []models.Span
	}{
		{
			name:       "empty input",
			candidates: nil,
			want:       nil,
		},
		{
			name: "no overlap preserves all, ordered by start",
			candidates: []models.Span{
				span(20, 30, models.CategoryPhone, 1.0),
				span(0, 10, models.CategoryPerson, 0.8),
			},
			want: []models.Span{
				span(0, 10, models.CategoryPerson, 0.8),
				span(20, 30, models.CategoryPhone, 1.0),
			},
		},
		{
			name: "higher confidence wins overlap",
			candidates: []models.Span{
				span(0, 10, models.CategoryPerson, 0.5),
				span(5, 15, models.CategoryEmail, 0.9),
			},
			want: []models.Span{
				span(5, 15, models.CategoryEmail, 0.9),
			},
		},
		{
			name: "lower confidence overlap is discarded",
			candidates: []models.Span{
				span(0, 10, models.CategoryPerson, 0.9),
				span(5, 15, models.CategoryEmail, 0.5),
			},
			want: []models.Span{
				span(0, 10, models.CategoryPerson, 0.9),
			},
		},
		{
			name: "equal confidence, longer span wins",
			candidates: []models.Span{
				span(0, 8, models.CategoryPerson, 1.0),
				span(0, 20, models.CategoryAddress, 1.0),
			},
			want: []models.Span{
				span(0, 20, models.CategoryAddress, 1.0),
			},
		},
		{
			name: "contained lower-priority candidate is dropped, not re-examined",
			candidates: []models.Span{
				span(0, 30, models.CategoryAddress, 1.0),
				span(5, 12, models.CategoryPerson, 0.7),
				span(31, 40, models.CategoryEmail, 1.0),
			},
			want: []models.Span{
				span(0, 30, models.CategoryAddress, 1.0),
				span(31, 40, models.CategoryEmail, 1.0),
			},
		},
		{
			name: "equal confidence and equal length keeps the first accepted",
			candidates: []models.Span{
				span(0, 10, models.CategoryPerson, 1.0),
				span(5, 15, models.CategoryEmail, 1.0),
			},
			want: []models.Span{
				span(0, 10, models.CategoryPerson, 1.0),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			merged := Merge(tc.candidates)
			assert.Len(t, merged, len(tc.want))
			for i, w := range tc.want {
				assert.Equal(t, w, merged[i].Span)
			}
		})
	}
}

func TestMergeRetainsOnePerCluster(t *testing.T) {
	// A cluster of mutually overlapping candidates collapses to exactly one
	// span, selected by (confidence desc, length desc).
	candidates := []models.Span{
		span(0, 10, models.CategoryPerson, 0.4),
		span(2, 12, models.CategoryOrganization, 0.6),
		span(4, 14, models.CategoryAddress, 0.6),
		span(6, 16, models.CategoryEmail, 0.2),
	}

	merged := Merge(candidates)
	assert.Len(t, merged, 1)
	assert.Equal(t, span(2, 12, models.CategoryOrganization, 0.6), merged[0].Span)
}

func TestMergeIsDeterministic(t *testing.T) {
	candidates := []models.Span{
		span(0, 12, models.CategoryPerson, 0.5),
		span(0, 12, models.CategoryOrganization, 0.5),
		span(3, 9, models.CategoryEmail, 0.5),
	}

	first := Merge(candidates)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Merge(candidates))
	}
}
