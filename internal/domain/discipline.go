package domain

import (
	"slices"
	"strings"
	"unicode"
)

// Discipline is a course offering one or more sections
type Discipline struct {
	ClassID  string
	Name     string
	codes    []string
	sections map[string]*Section
}

// NewDiscipline creates an empty discipline
func NewDiscipline(name, classID string) *Discipline {
	return &Discipline{
		ClassID:  classID,
		Name:     name,
		sections: make(map[string]*Section),
	}
}

// AddSection registers a section. The first section with a given code wins.
func (d *Discipline) AddSection(s *Section) bool {
	if _, exists := d.sections[s.Code]; exists {
		return false
	}
	d.sections[s.Code] = s
	d.codes = append(d.codes, s.Code)
	return true
}

// Section looks up a section by code
func (d *Discipline) Section(code string) (*Section, bool) {
	s, ok := d.sections[code]
	return s, ok
}

// Codes returns section codes in catalog order
func (d *Discipline) Codes() []string {
	return slices.Clone(d.codes)
}

// Sections returns sections in catalog order
func (d *Discipline) Sections() []*Section {
	out := make([]*Section, 0, len(d.codes))
	for _, code := range d.codes {
		out = append(out, d.sections[code])
	}
	return out
}

// Len returns the number of sections
func (d *Discipline) Len() int {
	return len(d.codes)
}

// Types returns the classified section types present in the catalog, in
// first-seen order. Unclassified sections contribute nothing.
func (d *Discipline) Types() []SectionType {
	var types []SectionType
	for _, code := range d.codes {
		t := d.sections[code].Type
		if t == TypeUnclassified || slices.Contains(types, t) {
			continue
		}
		types = append(types, t)
	}
	return types
}

var acronymStopWords = map[string]bool{
	"a": true, "as": true, "da": true, "das": true, "de": true, "do": true,
	"dos": true, "e": true, "em": true, "o": true, "os": true, "para": true,
}

// Acronym builds an upper-case abbreviation from the significant words of the
// name ("Análise de Dados" -> "AD"). Roman numerals and digits are kept whole.
func (d *Discipline) Acronym() string {
	var b strings.Builder
	for _, word := range strings.Fields(d.Name) {
		lower := strings.ToLower(word)
		if acronymStopWords[lower] {
			continue
		}
		if isRomanOrNumber(word) {
			b.WriteString(word)
			continue
		}
		for _, r := range word {
			if unicode.IsLetter(r) {
				b.WriteRune(unicode.ToUpper(r))
				break
			}
		}
	}
	if b.Len() == 0 {
		return strings.ToUpper(d.Name)
	}
	return foldAccents(b.String())
}

func isRomanOrNumber(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) && !strings.ContainsRune("IVX", r) {
			return false
		}
	}
	return word != ""
}

// ScheduleIndex maps discipline names to disciplines. It is read-only once
// built.
type ScheduleIndex struct {
	disciplines map[string]*Discipline
	names       []string
}

// NewScheduleIndex creates an empty index
func NewScheduleIndex() *ScheduleIndex {
	return &ScheduleIndex{disciplines: make(map[string]*Discipline)}
}

func (idx *ScheduleIndex) add(d *Discipline) bool {
	if _, exists := idx.disciplines[d.Name]; exists {
		return false
	}
	idx.disciplines[d.Name] = d
	idx.names = append(idx.names, d.Name)
	return true
}

// Discipline looks up a discipline by name
func (idx *ScheduleIndex) Discipline(name string) (*Discipline, bool) {
	if idx == nil {
		return nil, false
	}
	d, ok := idx.disciplines[name]
	return d, ok
}

// Section looks up a section of a discipline
func (idx *ScheduleIndex) Section(discipline, code string) (*Section, bool) {
	d, ok := idx.Discipline(discipline)
	if !ok {
		return nil, false
	}
	return d.Section(code)
}

// Names returns discipline names in catalog order
func (idx *ScheduleIndex) Names() []string {
	if idx == nil {
		return nil
	}
	return slices.Clone(idx.names)
}

// Disciplines returns disciplines in catalog order
func (idx *ScheduleIndex) Disciplines() []*Discipline {
	if idx == nil {
		return nil
	}
	out := make([]*Discipline, 0, len(idx.names))
	for _, name := range idx.names {
		out = append(out, idx.disciplines[name])
	}
	return out
}

// Len returns the number of disciplines
func (idx *ScheduleIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.names)
}

// SearchKey folds case and accents so "calculo" matches "Cálculo"
func SearchKey(s string) string {
	return foldAccents(strings.ToLower(strings.TrimSpace(s)))
}
