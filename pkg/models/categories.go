package models

import "strings"

// Category classifies a detected span and selects the fake-generation and
// restoration strategy applied to it.
type Category string

const (
	CategoryPerson          Category = "PERSON"
	CategoryEmail           Category = "EMAIL_ADDRESS"
	CategoryPhone           Category = "PHONE_NUMBER"
	CategoryAddress         Category = "FULL_ADDRESS"
	CategoryMRN             Category = "MRN"
	CategorySSN             Category = "SSN"
	CategoryInsuranceGroup  Category = "INSURANCE_GROUP"
	CategoryInsurancePolicy Category = "INSURANCE_POLICY"
	CategoryOrganization    Category = "ORGANIZATION"
	CategoryDate            Category = "DATE"
	CategoryURL             Category = "URL"
	CategoryGeneric         Category = "GENERIC"
)

// ParseCategory maps a detection source label onto a Category. Labels from
// the entity model are free-form ("person", "physical address", "date of
// birth"), so matching is on normalized substrings. Unrecognized labels map
// to CategoryGeneric, which generates a clearly marked placeholder.
func ParseCategory(label string) Category {
	l := strings.ToUpper(label)
	switch {
	case strings.Contains(l, "PERSON"):
		return CategoryPerson
	case strings.Contains(l, "EMAIL"):
		return CategoryEmail
	case strings.Contains(l, "PHONE"):
		return CategoryPhone
	case strings.Contains(l, "ADDRESS"), strings.Contains(l, "LOCATION"):
		return CategoryAddress
	case strings.Contains(l, "MRN"):
		return CategoryMRN
	case strings.Contains(l, "SSN"):
		return CategorySSN
	case strings.Contains(l, "GROUP"):
		return CategoryInsuranceGroup
	case strings.Contains(l, "POLICY"):
		return CategoryInsurancePolicy
	case strings.Contains(l, "ORGANIZATION"), strings.Contains(l, "ORG"):
		return CategoryOrganization
	case strings.Contains(l, "DATE"):
		return CategoryDate
	case strings.Contains(l, "URL"):
		return CategoryURL
	default:
		return CategoryGeneric
	}
}
