// Package anonymizer rewrites PII spans in text with generated fake values
// and records the forward mapping used to reverse the substitution later.
package anonymizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/celarium/celarium/internal"
	"github.com/celarium/celarium/pkg/detect"
	"github.com/celarium/celarium/pkg/fake"
	"github.com/celarium/celarium/pkg/models"
)

var log = internal.GetLogger()

// skipTokens are structural field names that detection sources sometimes
// flag inside serialized records. Replacing them would mangle the document
// structure, so matched text equal to one of these is left untouched.
// Comparison is case-insensitive.
var skipTokens = map[string]struct{}{
	"person_name":   {},
	"date_of_birth": {},
	"ssn":           {},
	"mrn":           {},
	"email":         {},
	"phone":         {},
	"address":       {},
}

var _ models.Anonymizer = &Anonymizer{}

// Anonymizer runs detect -> merge -> generate -> substitute over a payload.
type Anonymizer struct {
	detector  *detect.Detector
	generator *fake.Generator
}

func New(detector *detect.Detector, generator *fake.Generator) *Anonymizer {
	return &Anonymizer{detector: detector, generator: generator}
}

// Anonymize dispatches on the payload shape. Arrays are anonymized item by
// item, which bounds the text length handed to the detector per unit and
// keeps entities from bleeding across items; the per-item mappings merge
// into one session-level mapping. Objects and scalars are serialized once
// and treated as a single text unit.
func (a *Anonymizer) Anonymize(
	ctx context.Context,
	input interface{},
) (string, *models.Mapping, error) {
	switch payload := input.(type) {
	case string:
		return a.anonymizeText(ctx, payload)
	case []interface{}:
		return a.anonymizeList(ctx, payload)
	default:
		serialized, err := json.Marshal(payload)
		if err != nil {
			return "", nil, fmt.Errorf("serializing payload: %w", err)
		}
		return a.anonymizeText(ctx, string(serialized))
	}
}

func (a *Anonymizer) anonymizeList(
	ctx context.Context,
	items []interface{},
) (string, *models.Mapping, error) {
	mapping := models.NewMapping()
	anonymized := make([]interface{}, 0, len(items))

	for i, item := range items {
		serialized, err := json.Marshal(item)
		if err != nil {
			return "", nil, fmt.Errorf("serializing item %d: %w", i, err)
		}

		itemText, itemMapping, err := a.anonymizeText(ctx, string(serialized))
		if err != nil {
			return "", nil, err
		}

		var reparsed interface{}
		if err := json.Unmarshal([]byte(itemText), &reparsed); err != nil {
			return "", nil, fmt.Errorf("anonymized item %d is no longer valid JSON: %w", i, err)
		}

		anonymized = append(anonymized, reparsed)
		mapping.Merge(itemMapping)
	}

	out, err := json.MarshalIndent(anonymized, "", "  ")
	if err != nil {
		return "", nil, err
	}
	return string(out), mapping, nil
}

// anonymizeText rewrites a single text unit. All text outside the merged
// spans is preserved byte for byte.
func (a *Anonymizer) anonymizeText(
	ctx context.Context,
	text string,
) (string, *models.Mapping, error) {
	candidates := a.detector.Detect(ctx, text)
	merged := detect.Merge(candidates)

	mapping := models.NewMapping()
	if len(merged) == 0 {
		return text, mapping, nil
	}

	type replacement struct {
		start, end int
		fake       string
	}
	replacements := make([]replacement, 0, len(merged))

	genCtx := &fake.Context{}
	used := make(map[string]struct{})

	for _, span := range merged {
		original := span.Text(text)
		if _, skip := skipTokens[strings.ToLower(original)]; skip {
			continue
		}

		fakeVal := a.generator.Value(span.Category, genCtx, used)
		used[fakeVal] = struct{}{}

		mapping.Add(fakeVal, original)
		replacements = append(replacements, replacement{
			start: span.Start,
			end:   span.End,
			fake:  fakeVal,
		})
	}

	// Replace back to front so earlier offsets stay valid while later
	// regions are rewritten.
	buf := []byte(text)
	for i := len(replacements) - 1; i >= 0; i-- {
		r := replacements[i]
		buf = append(buf[:r.start], append([]byte(r.fake), buf[r.end:]...)...)
	}

	log.Debugf("anonymized %d of %d detected spans", len(replacements), len(merged))
	return string(buf), mapping, nil
}
