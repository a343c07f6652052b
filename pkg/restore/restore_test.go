package restore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/celarium/celarium/pkg/models"
)

func mappingOf(pairs ...[2]string) *models.Mapping {
	m := models.NewMapping()
	for _, p := range pairs {
		m.Add(p[0], p[1])
	}
	return m
}

func TestApplyEmptyMapping(t *testing.T) {
	assert.Equal(t, "hello", Apply(models.NewMapping(), "hello"))
	assert.Equal(t, "hello", Apply(nil, "hello"))
	assert.Equal(t, "", Apply(mappingOf([2]string{"a", "b"}), ""))
}

func TestApplyExactRoundTrip(t *testing.T) {
	m := mappingOf(
		[2]string{"user8821@example.com", "jane@x.com"},
		[2]string{"+1-555-867-5309", "+1-212-555-0100"},
	)

	anonymized := "Email user8821@example.com or call +1-555-867-5309"
	assert.Equal(
		t,
		"Email jane@x.com or call +1-212-555-0100",
		Apply(m, anonymized),
	)
}

func TestApplyLongestFakeFirst(t *testing.T) {
	// "Anna Lee" is a prefix of "Anna Leeds"; replacing the shorter fake
	// first would clobber the longer one.
	m := mappingOf(
		[2]string{"Anna Lee", "Beth Chan"},
		[2]string{"Anna Leeds", "Carol Diaz"},
	)

	out := Apply(m, "Anna Leeds met Anna Lee")
	assert.Equal(t, "Carol Diaz met Beth Chan", out)
}

func TestApplyPhoneReformatted(t *testing.T) {
	m := mappingOf([2]string{"+1-555-867-5309", "+1-212-555-0100"})

	testCases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "dots for dashes",
			in:   "call +1.555.867.5309 today",
			want: "call +1-212-555-0100 today",
		},
		{
			name: "spaces and parens",
			in:   "call +1 (555) 867 5309 today",
			want: "call +1-212-555-0100 today",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Apply(m, tc.in))
		})
	}
}

func TestApplySurnameAnchor(t *testing.T) {
	// Fake and original have different word counts, so the last words are
	// anchored to each other.
	m := mappingOf([2]string{"Maria Gonzalez", "Dr. Emily Chen"})

	out := Apply(m, "I spoke with Ms. Gonzalez yesterday")
	assert.Equal(t, "I spoke with Ms. Chen yesterday", out)
}

func TestApplyPositionalWordRepair(t *testing.T) {
	// Equal word counts build a positional map for capitalized words, so a
	// surviving surname restores even when the first name was altered.
	m := mappingOf([2]string{"Maria Gonzalez", "Jane Doe"})

	out := Apply(m, "Mrs. Gonzalez called, and Maria confirmed")
	assert.Equal(t, "Mrs. Doe called, and Jane confirmed", out)
}

func TestApplyShortWordsNotMapped(t *testing.T) {
	// Words of one or two characters never enter the word map, keeping
	// filler words intact.
	m := mappingOf([2]string{"Li Na Chen", "Yu Ho Park"})

	out := Apply(m, "Li said hi to Chen")
	assert.Equal(t, "Li said hi to Park", out)
}

func TestApplyFirstWordMapsToWholeValue(t *testing.T) {
	// A long first word stands in for the entire value, catching derived
	// compound tokens.
	m := mappingOf([2]string{"Lakeside Medical Center", "Mercy General Hospital"})

	out := Apply(m, "Lakeside will follow up")
	assert.Equal(t, "Mercy General Hospital will follow up", out)
}

func TestApplyEmailDomainFragment(t *testing.T) {
	// The processor derived an email domain from a fake organization name;
	// the aggressive substring layer catches it case-insensitively and
	// keeps the token unbroken.
	m := mappingOf([2]string{"Lakeside Medical Center", "Mercy General Hospital"})

	out := Apply(m, "write to billing@lakeside.org")
	assert.Equal(t, "write to billing@MercyGeneralHospital.org", out)
}

func TestApplyUnmatchedTextUnchanged(t *testing.T) {
	m := mappingOf([2]string{"Maria Gonzalez", "Jane Doe"})

	text := "nothing here relates to the mapping"
	assert.Equal(t, text, Apply(m, text))
}

func TestApplyIdempotentOnExactRestore(t *testing.T) {
	// Once the exact layer has restored a value, the fuzzy layers must not
	// touch the restored original.
	m := mappingOf([2]string{"Maria Gonzalez", "Jane Doe"})

	out := Apply(m, "Maria Gonzalez signed")
	assert.Equal(t, "Jane Doe signed", out)
	assert.Equal(t, "Jane Doe signed", Apply(m, out))
}
