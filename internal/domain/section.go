package domain

import (
	"regexp"
	"strings"
)

// SectionType is the pedagogical category of a section
type SectionType string

const (
	TypeLecture      SectionType = "T"
	TypeLectureOrTP  SectionType = "T/TP"
	TypeOther        SectionType = "OT"
	TypePractical    SectionType = "PL"
	TypeTheoretical  SectionType = "TP"
	TypeUnclassified SectionType = ""
)

// DeriveSectionType resolves the type of a section.
//
// An explicit type wins. Without one, the code prefix convention applies:
// codes starting with "TP" are TP, codes starting with "PL" are PL and
// everything else is unclassified.
func DeriveSectionType(explicit, code string) SectionType {
	if t := strings.ToUpper(strings.TrimSpace(explicit)); t != "" {
		return SectionType(t)
	}
	upper := strings.ToUpper(strings.TrimSpace(code))
	switch {
	case strings.HasPrefix(upper, "TP"):
		return TypeTheoretical
	case strings.HasPrefix(upper, "PL"):
		return TypePractical
	default:
		return TypeUnclassified
	}
}

// Section is one schedulable variant ("turma") of a discipline
type Section struct {
	Capacity *int
	Code     string
	Meetings []Meeting
	Type     SectionType
}

var trailingDigits = regexp.MustCompile(`(\d+)$`)

// Number returns the numeric suffix of the section code ("TP1" -> "1").
// Codes without a numeric suffix are returned whole.
func (s *Section) Number() string {
	return SectionNumber(s.Code)
}

// SectionNumber returns the numeric suffix of a section code
func SectionNumber(code string) string {
	if m := trailingDigits.FindStringSubmatch(code); m != nil {
		return m[1]
	}
	return code
}
