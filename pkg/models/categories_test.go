package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		label string
		want  Category
	}{
		{"person", CategoryPerson},
		{"PERSON", CategoryPerson},
		{"EMAIL_ADDRESS", CategoryEmail},
		{"physical address", CategoryAddress},
		{"LOCATION", CategoryAddress},
		{"PHONE_NUMBER", CategoryPhone},
		{"MRN", CategoryMRN},
		{"SSN", CategorySSN},
		{"INSURANCE_GROUP", CategoryInsuranceGroup},
		{"INSURANCE_POLICY", CategoryInsurancePolicy},
		{"organization", CategoryOrganization},
		{"date of birth", CategoryDate},
		{"URL", CategoryURL},
		{"something else entirely", CategoryGeneric},
		{"", CategoryGeneric},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCategory(tc.label))
		})
	}
}
