package fake

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/celarium/celarium/pkg/models"
)

func TestValueShapes(t *testing.T) {
	testCases := []struct {
		category models.Category
		pattern  string
	}{
		{models.CategoryPerson, `^[A-Z][a-zA-Z'-]+ [A-Z][a-zA-Z'-]+$`},
		{models.CategoryPhone, `^\+1-\d{3}-\d{3}-\d{4}$`},
		{models.CategoryMRN, `^MRN-\d{8}$`},
		{models.CategorySSN, `^\d{3}-\d{2}-\d{4}$`},
		{models.CategoryInsurancePolicy, `^POL-\d{9}$`},
		{models.CategoryInsuranceGroup, `^G\d{5}$`},
		{models.CategoryDate, `^\d{4}-\d{2}-\d{2}$`},
		{models.CategoryURL, `^https?://`},
		{models.CategoryGeneric, `^REDACTED_[0-9a-f]{6}$`},
	}

	g := NewSeededGenerator(11)
	for _, tc := range testCases {
		t.Run(string(tc.category), func(t *testing.T) {
			val := g.Value(tc.category, &Context{}, map[string]struct{}{})
			assert.Regexp(t, regexp.MustCompile(tc.pattern), val)
		})
	}
}

func TestValueAddressIsFullBlock(t *testing.T) {
	// A bare city would leak the surrounding address structure; the value
	// must always be a street, city, state and zip block.
	g := NewSeededGenerator(7)
	val := g.Value(models.CategoryAddress, &Context{}, map[string]struct{}{})

	parts := strings.Split(val, ", ")
	assert.Len(t, parts, 3)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z]{2} \d{5}$`), parts[2])
}

func TestValueEmailFollowsLastPerson(t *testing.T) {
	g := NewSeededGenerator(3)
	genCtx := &Context{}
	used := map[string]struct{}{}

	person := g.Value(models.CategoryPerson, genCtx, used)
	assert.Equal(t, person, genCtx.LastPerson)

	email := g.Value(models.CategoryEmail, genCtx, used)
	names := strings.Fields(strings.ToLower(person))
	assert.True(
		t,
		strings.HasPrefix(email, names[0]+names[1]),
		"email %q should start with %q", email, names[0]+names[1],
	)
	assert.True(t, strings.HasSuffix(email, "@example.com"))
}

func TestValueEmailWithoutPersonContext(t *testing.T) {
	g := NewSeededGenerator(3)
	email := g.Value(models.CategoryEmail, &Context{}, map[string]struct{}{})
	assert.Regexp(t, regexp.MustCompile(`^user\d{4}@example\.com$`), email)
}

func TestValueOrganizationSuffix(t *testing.T) {
	g := NewSeededGenerator(5)
	val := g.Value(models.CategoryOrganization, &Context{}, map[string]struct{}{})

	matched := false
	for _, suffix := range orgSuffixes {
		if strings.HasSuffix(val, " "+suffix) {
			matched = true
		}
	}
	assert.True(t, matched, "organization %q should end in a known suffix", val)
}

func TestValueAvoidsCollisions(t *testing.T) {
	g := NewSeededGenerator(1)
	genCtx := &Context{}
	used := map[string]struct{}{}

	for i := 0; i < 50; i++ {
		val := g.Value(models.CategoryPerson, genCtx, used)
		_, taken := used[val]
		assert.False(t, taken, "duplicate fake value %q", val)
		used[val] = struct{}{}
	}
}

func TestValueCollisionFallbackSuffix(t *testing.T) {
	// With a fixed-format category, pre-filling the used set forces the
	// bounded retries to exhaust and the suffix fallback to kick in.
	g := NewSeededGenerator(2)
	genCtx := &Context{}

	used := map[string]struct{}{}
	for i := 0; i < 2000; i++ {
		used[fmt.Sprintf("G%05d", i)] = struct{}{}
	}
	// Also block every value the generator would produce on its own.
	probe := NewSeededGenerator(2)
	for i := 0; i < maxAttempts; i++ {
		used[probe.generate(models.CategoryInsuranceGroup, genCtx)] = struct{}{}
	}

	val := g.Value(models.CategoryInsuranceGroup, genCtx, used)
	_, taken := used[val]
	assert.False(t, taken)
}
