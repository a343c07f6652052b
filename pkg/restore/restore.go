// Package restore reverses anonymization in text that has passed through an
// external processor. The processor may have paraphrased the fake values,
// reformatted them, dropped parts of multi-word values, or embedded them
// inside derived strings, so restoration layers progressively fuzzier
// matching on top of exact replacement. Strict layers run first and are
// idempotent against the looser layers behind them; a layer that matches
// nothing leaves the text unchanged. Restoration never fails: partial
// recovery beats a hard error on best-effort repair.
package restore

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/celarium/celarium/pkg/models"
)

// phoneShapeRe matches anything phone-shaped: an optional leading +, then
// 10 or more digits interleaved with common phone punctuation.
var phoneShapeRe = regexp.MustCompile(`\+?\(?\d[\d\s().-]{8,}\d`)

const minPhoneDigits = 10

// minPartialKeyLen gates the aggressive substring layer: only partial keys
// longer than this are re-applied case-insensitively.
const minPartialKeyLen = 5

// Apply reverses the mapping's substitutions in text, tolerating processor
// mutation of the fake values.
func Apply(mapping *models.Mapping, text string) string {
	if mapping == nil || mapping.Len() == 0 || text == "" {
		return text
	}

	pairs := byFakeLenDesc(mapping.Pairs())

	restored := exactPass(pairs, text)
	restored = phonePass(pairs, restored)

	wordMap := buildWordMap(pairs)
	restored = wordBoundaryPass(wordMap, restored)
	restored = substringPass(wordMap, restored)

	return restored
}

// byFakeLenDesc orders pairs longest fake value first so a short fake name
// never clobbers a longer fake value containing it as a prefix.
func byFakeLenDesc(pairs []models.MappingPair) []models.MappingPair {
	sorted := make([]models.MappingPair, len(pairs))
	copy(sorted, pairs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Fake) > len(sorted[j].Fake)
	})
	return sorted
}

// exactPass replaces verbatim occurrences of each fake value.
func exactPass(pairs []models.MappingPair, text string) string {
	for _, p := range pairs {
		text = strings.ReplaceAll(text, p.Fake, p.Original)
	}
	return text
}

// phonePass repairs phone numbers the processor reformatted. Every fake
// value with at least ten digits is indexed by its digit-only form; any
// phone-shaped region of the text whose digits contain an indexed string is
// replaced wholesale with the corresponding original.
func phonePass(pairs []models.MappingPair, text string) string {
	index := make(map[string]string)
	for _, p := range pairs {
		digits := digitsOnly(p.Fake)
		if len(digits) >= minPhoneDigits {
			index[digits] = p.Original
		}
	}
	if len(index) == 0 {
		return text
	}

	return phoneShapeRe.ReplaceAllStringFunc(text, func(match string) string {
		matchDigits := digitsOnly(match)
		for digits, original := range index {
			if strings.Contains(matchDigits, digits) {
				return original
			}
		}
		return match
	})
}

// buildWordMap derives word-level repair keys from multi-word fake values.
//
// Equal word counts yield a positional word-to-word map, restricted to
// capitalized words longer than 2 characters so filler words are never
// corrupted. Unequal counts anchor on the last word (surname heuristic for
// title or prefix mismatches). A first word longer than 5 characters
// additionally maps to the entire original value, catching derived compound
// tokens such as organization-based email domains.
func buildWordMap(pairs []models.MappingPair) map[string]string {
	wordMap := make(map[string]string)
	for _, p := range pairs {
		fakeWords := strings.Fields(p.Fake)
		if len(fakeWords) < 2 {
			continue
		}
		origWords := strings.Fields(p.Original)
		if len(origWords) == 0 {
			continue
		}

		if len(fakeWords) == len(origWords) {
			for i, fw := range fakeWords {
				if len(fw) > 2 && isCapitalized(fw) {
					wordMap[fw] = origWords[i]
				}
			}
		} else {
			wordMap[fakeWords[len(fakeWords)-1]] = origWords[len(origWords)-1]
		}

		if first := fakeWords[0]; len(first) > minPartialKeyLen {
			wordMap[first] = p.Original
		}
	}
	return wordMap
}

// wordBoundaryPass applies the word map as whole-word replacements, longest
// key first.
func wordBoundaryPass(wordMap map[string]string, text string) string {
	for _, key := range keysByLenDesc(wordMap) {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(key) + `\b`)
		if err != nil {
			continue
		}
		text = re.ReplaceAllLiteralString(text, wordMap[key])
	}
	return text
}

// substringPass is the loosest layer: remaining occurrences of long partial
// keys are replaced case-insensitively, even inside compound tokens like
// email domains. Originals are collapsed to a single token so a replacement
// inside a compound token does not split it.
func substringPass(wordMap map[string]string, text string) string {
	for _, key := range keysByLenDesc(wordMap) {
		if len(key) <= minPartialKeyLen {
			continue
		}
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(key))
		if err != nil {
			continue
		}
		text = re.ReplaceAllLiteralString(text, collapseWhitespace(wordMap[key]))
	}
	return text
}

func keysByLenDesc(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
