package detect

import (
	"context"
	"regexp"

	"github.com/celarium/celarium/pkg/models"
)

// Force compiler to validate that RuleSource implements DetectionSource.
var _ models.DetectionSource = &RuleSource{}

// rulePatterns are the structural PII shapes matched deterministically.
// Rule findings always carry confidence 1.0.
var rulePatterns = []struct {
	category models.Category
	re       *regexp.Regexp
}{
	{models.CategoryEmail, regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)},
	{models.CategoryPhone, regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)},
	{models.CategoryMRN, regexp.MustCompile(`\bMRN[-_]\w+\b`)},
	{models.CategorySSN, regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)},
	{models.CategoryInsuranceGroup, regexp.MustCompile(`\bG\d{5,}\b`)},
	{models.CategoryInsurancePolicy, regexp.MustCompile(`\b(?:POL|POLICY)[-_]?\d+\b`)},
	{models.CategoryAddress, regexp.MustCompile(`\d+\s+[A-Za-z0-9\s.]+,\s+[A-Za-z\s.]+,\s+[A-Z]{2}\s+\d{5}(?:-\d{4})?`)},
	{models.CategoryURL, regexp.MustCompile(`\bhttps?://[^\s<>"]+`)},
}

// RuleSource scans text for fixed structural categories with deterministic
// regular expressions.
type RuleSource struct{}

func NewRuleSource() *RuleSource {
	return &RuleSource{}
}

func (s *RuleSource) Name() string {
	return "rules"
}

func (s *RuleSource) Detect(_ context.Context, text string) ([]models.Span, error) {
	var spans []models.Span
	for _, p := range rulePatterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			spans = append(spans, models.Span{
				Start:    loc[0],
				End:      loc[1],
				Category: p.category,
				Score:    1.0,
			})
		}
	}
	return spans, nil
}
