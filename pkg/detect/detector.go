// Package detect finds candidate PII spans in text and resolves them into a
// non-overlapping ordered set. Detection runs a deterministic rule matcher
// and, when configured, an external entity model; model failures degrade to
// rule-only findings and never abort the request.
package detect

import (
	"context"

	"github.com/celarium/celarium/config"
	"github.com/celarium/celarium/internal"
	"github.com/celarium/celarium/pkg/models"
)

var log = internal.GetLogger()

// Detector fans text over a pluggable set of detection sources and
// concatenates their candidate spans.
type Detector struct {
	sources []models.DetectionSource
}

// NewDetector builds a Detector from config: the rule source is always on,
// the entity model source only when nlp.enabled is set.
func NewDetector(cfg *config.Config) *Detector {
	sources := []models.DetectionSource{NewRuleSource()}
	if cfg.NLP.Enabled {
		sources = append(sources, NewEntitySource(cfg))
	}
	return &Detector{sources: sources}
}

// NewDetectorWithSources builds a Detector from an explicit source set.
func NewDetectorWithSources(sources ...models.DetectionSource) *Detector {
	return &Detector{sources: sources}
}

// Detect returns all candidate spans from every source. A source error is
// logged and that source contributes nothing; detection itself never fails.
func (d *Detector) Detect(ctx context.Context, text string) []models.Span {
	var candidates []models.Span
	for _, source := range d.sources {
		spans, err := source.Detect(ctx, text)
		if err != nil {
			log.Warnf("detection source %s failed, continuing without it: %v", source.Name(), err)
			continue
		}
		candidates = append(candidates, spans...)
	}
	return candidates
}
