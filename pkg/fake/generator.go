// Package fake produces category-appropriate synthetic replacement values.
// Values are plausible rather than masked: a downstream language model sees
// realistic names, phones and addresses and treats them as ordinary text,
// which is what makes later restoration workable.
package fake

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/celarium/celarium/pkg/models"
)

const maxAttempts = 10

// orgSuffixes is the healthcare-style vocabulary appended to a city or
// surname prefix for ORGANIZATION values.
var orgSuffixes = []string{
	"Medical Center", "Regional Health", "General Hospital",
	"Health Group", "Family Clinic", "Community Care",
	"Medical Associates", "Health System", "Diagnostics Lab",
}

// Context carries cross-entity coherence within one anonymization call:
// the most recently generated person name informs a subsequent email's
// local part.
type Context struct {
	LastPerson string
}

// Generator produces synthetic values from the gofakeit corpus.
type Generator struct {
	faker *gofakeit.Faker
}

func NewGenerator() *Generator {
	return &Generator{faker: gofakeit.New(0)}
}

// NewSeededGenerator returns a Generator with a fixed seed for
// reproducible output in tests.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(int64(seed))}
}

// Value returns a synthetic value for the category that is not present in
// used. Generation is retried a bounded number of times on collision, then
// falls back to a randomly suffixed value. Callers own the used set and
// must add the returned value to it.
func (g *Generator) Value(
	category models.Category,
	genCtx *Context,
	used map[string]struct{},
) string {
	var val string
	for attempt := 0; attempt < maxAttempts; attempt++ {
		val = g.generate(category, genCtx)
		if _, taken := used[val]; !taken {
			return val
		}
	}

	suffixed := fmt.Sprintf("%s_%d", val, g.faker.Number(1, 99))
	if _, taken := used[suffixed]; !taken {
		return suffixed
	}
	return fmt.Sprintf("%s_%s", val, shortHex())
}

func (g *Generator) generate(category models.Category, genCtx *Context) string {
	switch category {
	case models.CategoryPerson:
		val := fmt.Sprintf("%s %s", g.faker.FirstName(), g.faker.LastName())
		genCtx.LastPerson = val
		return val
	case models.CategoryEmail:
		return g.matchingEmail(genCtx.LastPerson)
	case models.CategoryPhone:
		return fmt.Sprintf("+1-%d-%d-%d",
			g.faker.Number(200, 999), g.faker.Number(200, 999), g.faker.Number(1000, 9999))
	case models.CategoryAddress:
		// Always a full street+city+state+zip block. A bare city leaks the
		// surrounding address structure and does not round-trip.
		return fmt.Sprintf("%s, %s, %s %s",
			g.faker.Street(), g.faker.City(), g.faker.StateAbr(), g.faker.Zip())
	case models.CategoryMRN:
		return "MRN-" + g.faker.DigitN(8)
	case models.CategorySSN:
		return fmt.Sprintf("%s-%s-%s", g.faker.DigitN(3), g.faker.DigitN(2), g.faker.DigitN(4))
	case models.CategoryInsurancePolicy:
		return "POL-" + g.faker.DigitN(9)
	case models.CategoryInsuranceGroup:
		return "G" + g.faker.DigitN(5)
	case models.CategoryDate:
		return g.birthDate()
	case models.CategoryOrganization:
		return g.medicalOrg()
	case models.CategoryURL:
		return g.faker.URL()
	default:
		return "REDACTED_" + shortHex()
	}
}

// matchingEmail derives an email local part from the last generated person
// name so that a name and its email stay coherent within one call.
func (g *Generator) matchingEmail(lastPerson string) string {
	if lastPerson == "" {
		return fmt.Sprintf("user%d@example.com", g.faker.Number(1000, 9999))
	}
	parts := strings.Fields(strings.ToLower(lastPerson))
	base := parts[0]
	if len(parts) >= 2 {
		base = parts[0] + parts[1]
	}
	return fmt.Sprintf("%s%d@example.com", base, g.faker.Number(100, 9999))
}

// medicalOrg composes a healthcare-style organization name from either a
// city or a surname prefix, split evenly.
func (g *Generator) medicalOrg() string {
	prefix := g.faker.LastName()
	if g.faker.Bool() {
		prefix = g.faker.City()
	}
	return fmt.Sprintf("%s %s", prefix, g.faker.RandomString(orgSuffixes))
}

// birthDate returns a plausible date of birth within an adult age range.
func (g *Generator) birthDate() string {
	now := time.Now()
	oldest := now.AddDate(-90, 0, 0)
	youngest := now.AddDate(-18, 0, 0)
	return g.faker.DateRange(oldest, youngest).Format("2006-01-02")
}

func shortHex() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
}
